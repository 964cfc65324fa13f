// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

// ListScope selects which slice of the local ledger is listed.
type ListScope string

const (
	// ListScopePeriod lists the transactions of the current period that match the filters.
	ListScopePeriod ListScope = "period"
	// ListScopeAll lists the whole local ledger.
	ListScopeAll ListScope = "all"
	// ListScopeTransfers lists every transfer regardless of period.
	ListScopeTransfers ListScope = "transfers"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Scope   ListScope
	Period  entity.TimePeriod
	Filters entity.FilterOptions
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Total        int
}

// ListTransactionsUseCase handles listing transactions from the local ledger.
type ListTransactionsUseCase struct {
	store  adapter.LedgerStore
	clock  adapter.Clock
	window valueobject.EditWindow
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	store adapter.LedgerStore,
	clock adapter.Clock,
	window valueobject.EditWindow,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		store:  store,
		clock:  clock,
		window: window,
	}
}

// Execute lists transactions newest first, each annotated with its edit window state.
func (uc *ListTransactionsUseCase) Execute(_ context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	now := uc.clock.Now()
	all := uc.store.Transactions()

	var selected []*entity.Transaction
	switch input.Scope {
	case ListScopeAll:
		selected = all
		dashboard.SortByDateDesc(selected)
	case ListScopeTransfers:
		selected = dashboard.Transfers(all)
	case ListScopePeriod, "":
		period := input.Period
		if period == "" {
			period = entity.DefaultTimePeriod
		}
		if !period.IsValid() {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidTimePeriod,
				"period must be: weekly, monthly, or yearly",
				domainerror.ErrInvalidTimePeriod,
			)
		}
		selected = dashboard.FilterTransactions(all, input.Filters, period, now)
	default:
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidFilterValue,
			"scope must be: period, all, or transfers",
			domainerror.ErrInvalidFilterValue,
		)
	}

	return &ListTransactionsOutput{
		Transactions: newTransactionOutputs(selected, uc.window, now),
		Total:        len(selected),
	}, nil
}
