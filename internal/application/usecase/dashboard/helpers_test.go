package dashboard

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// Wednesday 12 March 2025, 15:00 UTC.
var testNow = time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type stubLedger struct {
	transactions []*entity.Transaction
	syncedAt     time.Time
}

func (l *stubLedger) Transactions() []*entity.Transaction { return l.transactions }
func (l *stubLedger) LastSyncedAt() time.Time             { return l.syncedAt }

var idSeq int

func txn(typ entity.TransactionType, amount string, category entity.Category, date time.Time) *entity.Transaction {
	idSeq++
	return &entity.Transaction{
		ID:          fmt.Sprintf("txn-%d", idSeq),
		Type:        typ,
		Amount:      decimal.RequireFromString(amount),
		Description: "test transaction",
		Category:    category,
		Division:    entity.DivisionPersonal,
		Date:        date,
		CreatedAt:   date,
	}
}

// randomTransactions builds n transactions spread over the two years around testNow.
func randomTransactions(f *gofakeit.Faker, n int) []*entity.Transaction {
	types := []entity.TransactionType{
		entity.TransactionTypeIncome,
		entity.TransactionTypeExpense,
		entity.TransactionTypeTransfer,
	}
	divisions := []entity.Division{entity.DivisionPersonal, entity.DivisionOffice}

	from := testNow.AddDate(-1, 0, 0)
	to := testNow.AddDate(1, 0, 0)

	out := make([]*entity.Transaction, 0, n)
	for i := 0; i < n; i++ {
		date := f.DateRange(from, to).UTC()
		out = append(out, &entity.Transaction{
			ID:          f.UUID(),
			Type:        types[f.IntRange(0, len(types)-1)],
			Amount:      decimal.NewFromFloat(f.Price(0, 5000)).Round(2),
			Description: f.Sentence(3),
			Category:    entity.AllCategories[f.IntRange(0, len(entity.AllCategories)-1)],
			Division:    divisions[f.IntRange(0, 1)],
			Date:        date,
			CreatedAt:   date,
		})
	}
	return out
}

func ptr[T any](v T) *T { return &v }
