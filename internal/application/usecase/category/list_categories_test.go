package category

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/integration/persistence"
)

var testNow = time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestListCategoriesUseCase_Execute(t *testing.T) {
	store := persistence.NewLedgerStore(fixedClock{now: testNow})
	store.ReplaceAll(store.NextGeneration(), []*entity.Transaction{
		{ID: "1", Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(30), Category: entity.CategoryFood, Date: testNow},
		{ID: "2", Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(20), Category: entity.CategoryFood, Date: testNow},
		{ID: "3", Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(99), Category: entity.CategoryFood, Date: testNow.AddDate(0, -2, 0)},
	}, nil)
	uc := NewListCategoriesUseCase(store, fixedClock{now: testNow})

	t.Run("full catalog", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListCategoriesInput{})
		require.NoError(t, err)
		require.Len(t, out.Categories, len(entity.AllCategories))

		other := out.Categories[len(out.Categories)-1]
		assert.Equal(t, entity.CategoryOther, other.Category)
		assert.True(t, other.Income)
		assert.True(t, other.Expense)
		assert.Zero(t, other.TransactionCount)
	})

	t.Run("income subset", func(t *testing.T) {
		typ := entity.TransactionTypeIncome
		out, err := uc.Execute(context.Background(), ListCategoriesInput{Type: &typ})
		require.NoError(t, err)

		var got []entity.Category
		for _, c := range out.Categories {
			got = append(got, c.Category)
		}
		assert.Equal(t, entity.IncomeCategories, got)
	})

	t.Run("usage for the current month", func(t *testing.T) {
		period := entity.TimePeriodMonthly
		out, err := uc.Execute(context.Background(), ListCategoriesInput{Period: &period})
		require.NoError(t, err)

		for _, c := range out.Categories {
			if c.Category == entity.CategoryFood {
				assert.Equal(t, "Food", c.Label)
				assert.Equal(t, 2, c.TransactionCount)
				assert.True(t, c.PeriodTotal.Equal(decimal.NewFromInt(50)))
			}
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		typ := entity.TransactionType("refund")
		_, err := uc.Execute(context.Background(), ListCategoriesInput{Type: &typ})
		assert.ErrorIs(t, err, domainerror.ErrInvalidFilterValue)

		period := entity.TimePeriod("daily")
		_, err = uc.Execute(context.Background(), ListCategoriesInput{Period: &period})
		assert.ErrorIs(t, err, domainerror.ErrInvalidTimePeriod)
	})
}
