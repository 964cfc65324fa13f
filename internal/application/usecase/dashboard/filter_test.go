package dashboard

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

func TestFilterTransactions(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	sundayNight := time.Date(2025, 3, 16, 23, 59, 59, 0, time.UTC)
	lastWeek := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2025, 2, 27, 12, 0, 0, 0, time.UTC)
	lastYear := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)

	salary := txn(entity.TransactionTypeIncome, "5000", entity.CategorySalary, monday)
	food := txn(entity.TransactionTypeExpense, "42.50", entity.CategoryFood, testNow)
	office := txn(entity.TransactionTypeExpense, "120", entity.CategoryUtilities, sundayNight)
	office.Division = entity.DivisionOffice
	fuel := txn(entity.TransactionTypeExpense, "60", entity.CategoryFuel, lastWeek)
	rent := txn(entity.TransactionTypeExpense, "1500", entity.CategoryRent, lastMonth)
	bonus := txn(entity.TransactionTypeIncome, "900", entity.CategoryBonus, lastYear)

	all := []*entity.Transaction{salary, food, office, fuel, rent, bonus}

	tests := []struct {
		name     string
		filters  entity.FilterOptions
		period   entity.TimePeriod
		expected []*entity.Transaction
	}{
		{
			name:     "weekly window includes monday start and sunday end",
			period:   entity.TimePeriodWeekly,
			expected: []*entity.Transaction{office, food, salary},
		},
		{
			name:     "monthly window",
			period:   entity.TimePeriodMonthly,
			expected: []*entity.Transaction{office, food, salary, fuel},
		},
		{
			name:     "yearly window",
			period:   entity.TimePeriodYearly,
			expected: []*entity.Transaction{office, food, salary, fuel, rent},
		},
		{
			name:     "division filter",
			period:   entity.TimePeriodMonthly,
			filters:  entity.FilterOptions{Division: ptr(entity.DivisionOffice)},
			expected: []*entity.Transaction{office},
		},
		{
			name:     "category filter",
			period:   entity.TimePeriodYearly,
			filters:  entity.FilterOptions{Category: ptr(entity.CategoryRent)},
			expected: []*entity.Transaction{rent},
		},
		{
			name:     "type filter",
			period:   entity.TimePeriodMonthly,
			filters:  entity.FilterOptions{Type: ptr(entity.TransactionTypeIncome)},
			expected: []*entity.Transaction{salary},
		},
		{
			name:   "date range is inclusive on both ends",
			period: entity.TimePeriodMonthly,
			filters: entity.FilterOptions{
				DateFrom: ptr(monday),
				DateTo:   ptr(testNow),
			},
			expected: []*entity.Transaction{food, salary},
		},
		{
			name:     "date range never widens the period window",
			period:   entity.TimePeriodWeekly,
			filters:  entity.FilterOptions{DateFrom: ptr(lastYear)},
			expected: []*entity.Transaction{office, food, salary},
		},
		{
			name:   "no match",
			period: entity.TimePeriodWeekly,
			filters: entity.FilterOptions{
				Division: ptr(entity.DivisionOffice),
				Type:     ptr(entity.TransactionTypeIncome),
			},
			expected: []*entity.Transaction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTransactions(all, tt.filters, tt.period, testNow)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFilterTransactions_StableForEqualDates(t *testing.T) {
	first := txn(entity.TransactionTypeExpense, "1", entity.CategoryFood, testNow)
	second := txn(entity.TransactionTypeExpense, "2", entity.CategoryFood, testNow)
	third := txn(entity.TransactionTypeExpense, "3", entity.CategoryFood, testNow)
	newest := txn(entity.TransactionTypeIncome, "4", entity.CategorySalary, testNow.Add(time.Hour))

	got := FilterTransactions([]*entity.Transaction{first, second, third, newest}, entity.FilterOptions{}, entity.TimePeriodWeekly, testNow)

	assert.Equal(t, []*entity.Transaction{newest, first, second, third}, got)
}

func TestFilterTransactions_DoesNotModifyInput(t *testing.T) {
	older := txn(entity.TransactionTypeExpense, "1", entity.CategoryFood, testNow.Add(-time.Hour))
	newer := txn(entity.TransactionTypeExpense, "2", entity.CategoryFood, testNow)
	all := []*entity.Transaction{older, newer}

	FilterTransactions(all, entity.FilterOptions{}, entity.TimePeriodMonthly, testNow)

	assert.Equal(t, []*entity.Transaction{older, newer}, all)
}

func TestFilterTransactions_ResultsStayInWindow(t *testing.T) {
	f := gofakeit.New(20250312)
	all := randomTransactions(f, 500)

	for _, period := range []entity.TimePeriod{entity.TimePeriodWeekly, entity.TimePeriodMonthly, entity.TimePeriodYearly} {
		t.Run(string(period), func(t *testing.T) {
			window := CurrentWindow(period, testNow)
			got := FilterTransactions(all, entity.FilterOptions{}, period, testNow)

			expectedCount := 0
			for _, tx := range all {
				if window.Contains(tx.Date) {
					expectedCount++
				}
			}
			require.Len(t, got, expectedCount)

			for i, tx := range got {
				assert.True(t, window.Contains(tx.Date), "transaction %s dated %v outside %v", tx.ID, tx.Date, window)
				if i > 0 {
					assert.False(t, tx.Date.After(got[i-1].Date), "result not ordered newest first at %d", i)
				}
			}
		})
	}
}

func TestTransfersAndRecent(t *testing.T) {
	from, to := "acc-1", "acc-2"
	older := txn(entity.TransactionTypeTransfer, "100", entity.CategoryOther, testNow.AddDate(-1, 0, 0))
	older.FromAccount, older.ToAccount = &from, &to
	newer := txn(entity.TransactionTypeTransfer, "50", entity.CategoryOther, testNow)
	newer.FromAccount, newer.ToAccount = &to, &from
	expense := txn(entity.TransactionTypeExpense, "10", entity.CategoryFood, testNow)

	transfers := Transfers([]*entity.Transaction{older, expense, newer})
	assert.Equal(t, []*entity.Transaction{newer, older}, transfers)

	assert.Len(t, Recent(transfers, 1), 1)
	assert.Len(t, Recent(transfers, 5), 2)
	assert.Empty(t, Recent(transfers, -1))
}
