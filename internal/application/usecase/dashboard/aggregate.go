// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// Stats holds the totals of a filtered transaction set.
type Stats struct {
	Income           decimal.Decimal
	Expense          decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
}

// CategoryBreakdownItem is the aggregate of one category over a filtered set.
type CategoryBreakdownItem struct {
	Category   entity.Category
	Label      string
	Amount     decimal.Decimal
	Count      int
	Percentage float64
}

// ComputeStats sums income and expense amounts. Transfers count towards
// TransactionCount but not towards either sum. No rounding is applied.
func ComputeStats(filtered []*entity.Transaction) Stats {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range filtered {
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return Stats{
		Income:           income,
		Expense:          expense,
		Balance:          income.Sub(expense),
		TransactionCount: len(filtered),
	}
}

// ComputeCategoryBreakdown groups income and expense transactions by category,
// ordered by amount descending and then by category name. Transfers are left out.
// Percentage is the share of income plus expense, rounded to two places.
func ComputeCategoryBreakdown(filtered []*entity.Transaction) []CategoryBreakdownItem {
	byCategory := make(map[entity.Category]*CategoryBreakdownItem)
	total := decimal.Zero

	for _, t := range filtered {
		if t.IsTransfer() {
			continue
		}
		item, ok := byCategory[t.Category]
		if !ok {
			item = &CategoryBreakdownItem{
				Category: t.Category,
				Label:    t.Category.Label(),
				Amount:   decimal.Zero,
			}
			byCategory[t.Category] = item
		}
		item.Amount = item.Amount.Add(t.Amount)
		item.Count++
		total = total.Add(t.Amount)
	}

	breakdown := make([]CategoryBreakdownItem, 0, len(byCategory))
	for _, item := range byCategory {
		if !total.IsZero() {
			pct := item.Amount.Mul(decimal.NewFromInt(100)).Div(total)
			item.Percentage, _ = pct.Round(2).Float64()
		}
		breakdown = append(breakdown, *item)
	}

	slices.SortFunc(breakdown, func(a, b CategoryBreakdownItem) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(string(a.Category), string(b.Category))
	})

	return breakdown
}
