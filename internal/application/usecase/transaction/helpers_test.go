package transaction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

var testNow = time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// fakeLedgerAPI records calls and answers from in-memory state.
type fakeLedgerAPI struct {
	mu           sync.Mutex
	transactions []*entity.Transaction
	accounts     []*entity.Account
	calls        []string
	err          error
	block        chan struct{} // when set, mutations wait on it
	onList       func()        // runs while a list is in flight
	listFilters  []entity.FilterOptions
	nextID       int
}

func (f *fakeLedgerAPI) record(call string) error {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	err := f.err
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return err
}

func (f *fakeLedgerAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeLedgerAPI) ListTransactions(_ context.Context, filters entity.FilterOptions) ([]*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "list")
	f.listFilters = append(f.listFilters, filters)
	if f.err != nil {
		return nil, domainerror.NewFetchError("failed to list transactions", 500, f.err)
	}
	if f.onList != nil {
		f.onList()
	}
	return f.transactions, nil
}

func (f *fakeLedgerAPI) CreateTransaction(_ context.Context, draft entity.TransactionDraft) (*entity.Transaction, error) {
	if err := f.record("create"); err != nil {
		return nil, domainerror.NewMutationError("failed to create transaction", 500, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return &entity.Transaction{
		ID:          fmt.Sprintf("srv-%d", f.nextID),
		Type:        draft.Type,
		Amount:      draft.Amount,
		Description: draft.Description,
		Category:    draft.Category,
		Division:    draft.Division,
		Date:        draft.Date,
		CreatedAt:   testNow,
		FromAccount: draft.FromAccount,
		ToAccount:   draft.ToAccount,
	}, nil
}

func (f *fakeLedgerAPI) UpdateTransaction(_ context.Context, id string, draft entity.TransactionDraft) (*entity.Transaction, error) {
	if err := f.record("update:" + id); err != nil {
		return nil, domainerror.NewMutationError("failed to update transaction", 500, err)
	}
	return &entity.Transaction{
		ID:          id,
		Type:        draft.Type,
		Amount:      draft.Amount,
		Description: draft.Description,
		Category:    draft.Category,
		Division:    draft.Division,
		Date:        draft.Date,
		FromAccount: draft.FromAccount,
		ToAccount:   draft.ToAccount,
	}, nil
}

func (f *fakeLedgerAPI) DeleteTransaction(_ context.Context, id string) error {
	if err := f.record("delete:" + id); err != nil {
		return domainerror.NewMutationError("failed to delete transaction", 500, err)
	}
	return nil
}

func (f *fakeLedgerAPI) ListAccounts(_ context.Context) ([]*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "accounts")
	if f.err != nil {
		return nil, domainerror.NewFetchError("failed to list accounts", 500, f.err)
	}
	return f.accounts, nil
}

func (f *fakeLedgerAPI) GetAccountStats(_ context.Context) (entity.AccountStats, error) {
	return entity.AccountStats(`{}`), nil
}

var errServiceDown = errors.New("connection refused")

type fakeMetrics struct {
	mu         sync.Mutex
	violations int
	duplicates int
	syncs      []bool
}

func (m *fakeMetrics) RecordRemoteCall(string, time.Duration, error) {}

func (m *fakeMetrics) RecordEditWindowViolation(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.violations++
}

func (m *fakeMetrics) RecordDuplicateSubmission(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duplicates++
}

func (m *fakeMetrics) RecordSync(applied bool, _, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncs = append(m.syncs, applied)
}

func existingTxn(id string, createdAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:          id,
		Type:        entity.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(25),
		Description: "groceries",
		Category:    entity.CategoryFood,
		Division:    entity.DivisionPersonal,
		Date:        createdAt,
		CreatedAt:   createdAt,
	}
}

func validDraft() entity.TransactionDraft {
	return entity.TransactionDraft{
		Type:        entity.TransactionTypeExpense,
		Amount:      decimal.RequireFromString("12.34"),
		Description: "lunch",
		Category:    entity.CategoryFood,
		Division:    entity.DivisionOffice,
		Date:        testNow,
	}
}

func ptr[T any](v T) *T { return &v }
