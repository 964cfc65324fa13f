// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Type   *entity.TransactionType // Optional: restrict to the categories offered for this type
	Period *entity.TimePeriod      // Optional: attach usage statistics for the current period
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	Category         entity.Category
	Label            string
	Income           bool // Offered for income
	Expense          bool // Offered for expenses
	TransactionCount int
	PeriodTotal      decimal.Decimal
}

// ListCategoriesUseCase handles listing the category catalog.
type ListCategoriesUseCase struct {
	ledger adapter.LedgerStore
	clock  adapter.Clock
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(ledger adapter.LedgerStore, clock adapter.Clock) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		ledger: ledger,
		clock:  clock,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(_ context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	catalog := entity.AllCategories
	if input.Type != nil {
		switch *input.Type {
		case entity.TransactionTypeIncome:
			catalog = entity.IncomeCategories
		case entity.TransactionTypeExpense:
			catalog = entity.ExpenseCategories
		case entity.TransactionTypeTransfer:
		default:
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidFilterValue,
				"type must be: income, expense, or transfer",
				domainerror.ErrInvalidFilterValue,
			)
		}
	}

	// Get usage statistics if a period is provided
	var stats map[entity.Category]dashboard.CategoryBreakdownItem
	if input.Period != nil {
		if !input.Period.IsValid() {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidTimePeriod,
				"period must be: weekly, monthly, or yearly",
				domainerror.ErrInvalidTimePeriod,
			)
		}
		inPeriod := dashboard.FilterTransactions(uc.ledger.Transactions(), entity.FilterOptions{}, *input.Period, uc.clock.Now())
		stats = make(map[entity.Category]dashboard.CategoryBreakdownItem)
		for _, item := range dashboard.ComputeCategoryBreakdown(inPeriod) {
			stats[item.Category] = item
		}
	}

	income := toSet(entity.IncomeCategories)
	expense := toSet(entity.ExpenseCategories)

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, len(catalog)),
	}
	for i, c := range catalog {
		categoryOutput := &CategoryOutput{
			Category:    c,
			Label:       c.Label(),
			Income:      income[c],
			Expense:     expense[c],
			PeriodTotal: decimal.Zero,
		}
		if item, ok := stats[c]; ok {
			categoryOutput.TransactionCount = item.Count
			categoryOutput.PeriodTotal = item.Amount
		}
		output.Categories[i] = categoryOutput
	}

	return output, nil
}

func toSet(categories []entity.Category) map[entity.Category]bool {
	set := make(map[entity.Category]bool, len(categories))
	for _, c := range categories {
		set[c] = true
	}
	return set
}
