// Package account contains account-related use cases.
package account

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct{}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts     []*entity.Account
	TotalBalance decimal.Decimal
	LastSyncedAt time.Time
}

// ListAccountsUseCase handles listing the accounts held by the local ledger.
type ListAccountsUseCase struct {
	store adapter.LedgerStore
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(store adapter.LedgerStore) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		store: store,
	}
}

// Execute returns the accounts from the last successful sync.
func (uc *ListAccountsUseCase) Execute(_ context.Context, _ ListAccountsInput) (*ListAccountsOutput, error) {
	accounts := uc.store.Accounts()

	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}

	return &ListAccountsOutput{
		Accounts:     accounts,
		TotalBalance: total,
		LastSyncedAt: uc.store.LastSyncedAt(),
	}, nil
}
