package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

func TestGetDashboardUseCase_Execute(t *testing.T) {
	ledger := &stubLedger{syncedAt: testNow.Add(-time.Minute)}
	for i := 0; i < 7; i++ {
		ledger.transactions = append(ledger.transactions,
			txn(entity.TransactionTypeExpense, "10", entity.CategoryFood, testNow.Add(-time.Duration(i)*time.Hour)))
	}
	ledger.transactions = append(ledger.transactions,
		txn(entity.TransactionTypeIncome, "1000", entity.CategorySalary, testNow.AddDate(0, 0, -2)))

	uc := NewGetDashboardUseCase(ledger, fixedClock{now: testNow}, 0)

	t.Run("defaults to the monthly period", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetDashboardInput{})
		require.NoError(t, err)

		assert.Equal(t, entity.TimePeriodMonthly, out.Period)
		assert.Equal(t, "Mar 1 - Mar 31, 2025", out.PeriodLabel)
		assert.Equal(t, 8, out.Stats.TransactionCount)
		assert.True(t, out.Stats.Balance.Equal(decimal.NewFromInt(930)))
		assert.Len(t, out.Recent, DefaultRecentCount)
		assert.Equal(t, ledger.transactions[0].ID, out.Recent[0].ID)
		assert.Len(t, out.Chart, 6)
		require.Len(t, out.CategoryBreakdown, 2)
		assert.Equal(t, entity.CategorySalary, out.CategoryBreakdown[0].Category)
		assert.Equal(t, ledger.syncedAt, out.LastSyncedAt)
	})

	t.Run("filters apply to stats but not to the chart", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetDashboardInput{Query: Query{
			Period:  entity.TimePeriodWeekly,
			Filters: entity.FilterOptions{Type: ptr(entity.TransactionTypeIncome)},
		}})
		require.NoError(t, err)

		assert.Equal(t, 1, out.ActiveFilters)
		assert.Equal(t, 1, out.Stats.TransactionCount)
		assert.True(t, out.Stats.Expense.IsZero())

		chartExpense := decimal.Zero
		for _, b := range out.Chart {
			chartExpense = chartExpense.Add(b.Expense)
		}
		assert.True(t, chartExpense.Equal(decimal.NewFromInt(70)))
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetDashboardInput{Query: Query{Period: "daily"}})

		var dashErr *domainerror.DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, domainerror.ErrCodeInvalidTimePeriod, dashErr.Code)
		assert.ErrorIs(t, err, domainerror.ErrInvalidTimePeriod)
	})

	t.Run("inverted date range", func(t *testing.T) {
		from := testNow
		to := testNow.AddDate(0, 0, -1)
		_, err := uc.Execute(context.Background(), GetDashboardInput{Query: Query{
			Filters: entity.FilterOptions{DateFrom: &from, DateTo: &to},
		}})

		assert.ErrorIs(t, err, domainerror.ErrInvalidDateRange)
	})
}

func TestGetCategoryBreakdownUseCase_Execute(t *testing.T) {
	ledger := &stubLedger{transactions: []*entity.Transaction{
		txn(entity.TransactionTypeExpense, "20", entity.CategoryFood, testNow),
		txn(entity.TransactionTypeExpense, "30", entity.CategoryFood, testNow),
		txn(entity.TransactionTypeIncome, "50", entity.CategoryFreelance, testNow),
	}}

	out, err := NewGetCategoryBreakdownUseCase(ledger, fixedClock{now: testNow}).Execute(
		context.Background(),
		GetCategoryBreakdownInput{Query: Query{Period: entity.TimePeriodWeekly}},
	)
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.NewFromInt(100)))
	require.Len(t, out.Categories, 2)
	assert.Equal(t, entity.CategoryFood, out.Categories[0].Category)
	assert.Equal(t, 2, out.Categories[0].Count)
	assert.Equal(t, 50.0, out.Categories[0].Percentage)
}

func TestGetTrendsUseCase_Execute(t *testing.T) {
	uc := NewGetTrendsUseCase(&stubLedger{}, fixedClock{now: testNow})

	out, err := uc.Execute(context.Background(), GetTrendsInput{Period: entity.TimePeriodYearly})
	require.NoError(t, err)
	assert.Len(t, out.Buckets, 12)

	_, err = uc.Execute(context.Background(), GetTrendsInput{Period: "hourly"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidTimePeriod)
}
