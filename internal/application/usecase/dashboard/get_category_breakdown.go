// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// GetCategoryBreakdownInput represents the input for getting the category summary.
type GetCategoryBreakdownInput struct {
	Query
}

// GetCategoryBreakdownOutput represents the output of getting the category summary.
type GetCategoryBreakdownOutput struct {
	Window      Window
	PeriodLabel string
	Total       decimal.Decimal // income plus expense of the filtered set
	Categories  []CategoryBreakdownItem
}

// GetCategoryBreakdownUseCase handles getting the per-category summary of the filtered ledger.
type GetCategoryBreakdownUseCase struct {
	ledger LedgerReader
	clock  adapter.Clock
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(ledger LedgerReader, clock adapter.Clock) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		ledger: ledger,
		clock:  clock,
	}
}

// Execute retrieves the category breakdown for the selected period and filters.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
	query, err := input.Query.normalize()
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	filtered := FilterTransactions(uc.ledger.Transactions(), query.Filters, query.Period, now)
	stats := ComputeStats(filtered)
	window := CurrentWindow(query.Period, now)

	return &GetCategoryBreakdownOutput{
		Window:      window,
		PeriodLabel: GeneratePeriodLabel(window),
		Total:       stats.Income.Add(stats.Expense),
		Categories:  ComputeCategoryBreakdown(filtered),
	}, nil
}
