package dashboard

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

func bucketLabels(buckets []ChartBucket) []string {
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	return labels
}

func TestBuildOverviewChart_Weekly(t *testing.T) {
	all := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, "100", entity.CategorySalary, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "40", entity.CategoryFood, testNow),
		txn(entity.TransactionTypeExpense, "2", entity.CategoryFood, testNow.Add(time.Hour)),
		txn(entity.TransactionTypeExpense, "7", entity.CategoryFuel, time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "999", entity.CategoryRent, time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)),
		txn(entity.TransactionTypeTransfer, "500", entity.CategoryOther, testNow),
	}

	buckets := BuildOverviewChart(all, entity.TimePeriodWeekly, testNow)

	require.Len(t, buckets, 7)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, bucketLabels(buckets))
	assert.True(t, buckets[0].Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, buckets[2].Expense.Equal(decimal.NewFromInt(42)))
	assert.True(t, buckets[2].Balance.Equal(decimal.NewFromInt(-42)))
	assert.True(t, buckets[6].Expense.Equal(decimal.NewFromInt(7)))
	for i, b := range buckets {
		if i > 0 {
			assert.True(t, b.Start.After(buckets[i-1].End), "bucket %d overlaps its predecessor", i)
		}
	}
}

func TestBuildOverviewChart_Yearly(t *testing.T) {
	all := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, "10", entity.CategorySalary, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "3", entity.CategoryFood, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeIncome, "77", entity.CategoryBonus, time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)),
	}

	buckets := BuildOverviewChart(all, entity.TimePeriodYearly, testNow)

	require.Len(t, buckets, 12)
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}, bucketLabels(buckets))
	assert.True(t, buckets[0].Income.Equal(decimal.NewFromInt(10)))
	assert.True(t, buckets[11].Expense.Equal(decimal.NewFromInt(3)))
}

func TestBuildOverviewChart_MonthlyBoundaries(t *testing.T) {
	// March 2025 starts on a Saturday and ends on a Monday.
	all := []*entity.Transaction{
		txn(entity.TransactionTypeExpense, "500", entity.CategoryRent, time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "20", entity.CategoryFood, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "5", entity.CategoryFood, time.Date(2025, 3, 2, 23, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeIncome, "1000", entity.CategorySalary, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "8", entity.CategoryFuel, time.Date(2025, 3, 31, 18, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "900", entity.CategoryTravel, time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)),
	}

	buckets := BuildOverviewChart(all, entity.TimePeriodMonthly, testNow)

	require.Len(t, buckets, 6)
	assert.Equal(t, []string{"Week 9", "Week 10", "Week 11", "Week 12", "Week 13", "Week 14"}, bucketLabels(buckets))

	first := buckets[0]
	assert.True(t, first.Start.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), "first bucket clipped to month start, got %v", first.Start)
	assert.True(t, first.Expense.Equal(decimal.NewFromInt(25)), "february spending leaked into march: %s", first.Expense)

	assert.True(t, buckets[1].Income.Equal(decimal.NewFromInt(1000)))

	last := buckets[5]
	assert.True(t, last.End.Equal(time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC)), "last bucket clipped to month end, got %v", last.End)
	assert.True(t, last.Expense.Equal(decimal.NewFromInt(8)), "april spending leaked into march: %s", last.Expense)
}

func TestBuildOverviewChart_MonthlyLabelsUseISOWeeks(t *testing.T) {
	// Jan 1 2027 is a Friday inside ISO week 53 of 2026; Jan 4 starts ISO week 1.
	now := time.Date(2027, 1, 15, 12, 0, 0, 0, time.UTC)

	buckets := BuildOverviewChart(nil, entity.TimePeriodMonthly, now)

	assert.Equal(t, []string{"Week 53", "Week 1", "Week 2", "Week 3", "Week 4"}, bucketLabels(buckets))
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), buckets[0].Start)
	assert.Equal(t, time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC), buckets[1].Start)
}

func TestBuildOverviewChart_IgnoresFilterDimensions(t *testing.T) {
	personal := txn(entity.TransactionTypeExpense, "10", entity.CategoryFood, testNow)
	office := txn(entity.TransactionTypeExpense, "15", entity.CategoryUtilities, testNow)
	office.Division = entity.DivisionOffice

	buckets := BuildOverviewChart([]*entity.Transaction{personal, office}, entity.TimePeriodWeekly, testNow)

	assert.True(t, buckets[2].Expense.Equal(decimal.NewFromInt(25)))
}

// calendarWeeksInMonth counts the Monday-start weeks that contain at least one day of the month of now.
func calendarWeeksInMonth(now time.Time) int {
	seen := map[time.Time]bool{}
	for day := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()); day.Month() == now.Month(); day = day.AddDate(0, 0, 1) {
		seen[getWeekStartDate(day)] = true
	}
	return len(seen)
}

func TestBuildOverviewChart_RandomizedInvariants(t *testing.T) {
	f := gofakeit.New(99)
	all := randomTransactions(f, 400)

	for round := 0; round < 40; round++ {
		now := f.DateRange(testNow.AddDate(-1, 0, 0), testNow.AddDate(1, 0, 0)).UTC()

		weekly := BuildOverviewChart(all, entity.TimePeriodWeekly, now)
		monthly := BuildOverviewChart(all, entity.TimePeriodMonthly, now)
		yearly := BuildOverviewChart(all, entity.TimePeriodYearly, now)

		require.Len(t, weekly, 7)
		require.Len(t, yearly, 12)
		require.Len(t, monthly, calendarWeeksInMonth(now), "month of %v", now)

		for _, period := range []entity.TimePeriod{entity.TimePeriodWeekly, entity.TimePeriodMonthly, entity.TimePeriodYearly} {
			buckets := BuildOverviewChart(all, period, now)
			window := CurrentWindow(period, now)

			wantIncome, wantExpense := decimal.Zero, decimal.Zero
			for _, tx := range all {
				if !window.Contains(tx.Date) {
					continue
				}
				switch tx.Type {
				case entity.TransactionTypeIncome:
					wantIncome = wantIncome.Add(tx.Amount)
				case entity.TransactionTypeExpense:
					wantExpense = wantExpense.Add(tx.Amount)
				}
			}

			gotIncome, gotExpense := decimal.Zero, decimal.Zero
			for _, b := range buckets {
				gotIncome = gotIncome.Add(b.Income)
				gotExpense = gotExpense.Add(b.Expense)
			}

			assert.True(t, wantIncome.Equal(gotIncome), "%s %v: income %s != %s", period, now, gotIncome, wantIncome)
			assert.True(t, wantExpense.Equal(gotExpense), "%s %v: expense %s != %s", period, now, gotExpense, wantExpense)
		}
	}
}
