// Package persistence implements the local ledger held by the dashboard process.
package persistence

import (
	"sync"
	"time"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// ledgerStore implements the adapter.LedgerStore interface in memory.
type ledgerStore struct {
	mu           sync.RWMutex
	transactions []*entity.Transaction
	accounts     []*entity.Account
	issued       uint64 // last generation handed out
	applied      uint64 // generation of the last applied write
	lastSyncedAt time.Time
	now          func() time.Time
}

// NewLedgerStore creates an empty ledger store.
func NewLedgerStore(clock adapter.Clock) adapter.LedgerStore {
	return &ledgerStore{
		transactions: make([]*entity.Transaction, 0),
		accounts:     make([]*entity.Account, 0),
		now:          clock.Now,
	}
}

// Transactions returns a deep copy of the collection.
func (s *ledgerStore) Transactions() []*entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Transaction, len(s.transactions))
	for i, t := range s.transactions {
		out[i] = t.Clone()
	}
	return out
}

// Accounts returns a copy of the accounts.
func (s *ledgerStore) Accounts() []*entity.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Account, len(s.accounts))
	for i, a := range s.accounts {
		c := *a
		out[i] = &c
	}
	return out
}

// FindByID returns a copy of the transaction with the given ID.
func (s *ledgerStore) FindByID(id string) (*entity.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.transactions[i].Clone(), true
	}
	return nil, false
}

// NextGeneration reserves a generation for a sync.
func (s *ledgerStore) NextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	return s.issued
}

// ReplaceAll swaps the whole collection unless a newer write was already applied.
func (s *ledgerStore) ReplaceAll(gen uint64, transactions []*entity.Transaction, accounts []*entity.Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.applied {
		return false
	}

	s.transactions = make([]*entity.Transaction, len(transactions))
	for i, t := range transactions {
		s.transactions[i] = t.Clone()
	}
	s.accounts = make([]*entity.Account, len(accounts))
	for i, a := range accounts {
		c := *a
		s.accounts[i] = &c
	}
	s.applied = gen
	s.lastSyncedAt = s.now()
	return true
}

// Append adds a transaction.
func (s *ledgerStore) Append(t *entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append(s.transactions, t.Clone())
	s.markWrite()
}

// Replace swaps the transaction with the same ID.
func (s *ledgerStore) Replace(t *entity.Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(t.ID)
	if i < 0 {
		return false
	}
	s.transactions[i] = t.Clone()
	s.markWrite()
	return true
}

// Remove deletes the transaction with the given ID.
func (s *ledgerStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
	s.markWrite()
	return true
}

// LastSyncedAt returns when a sync was last applied.
func (s *ledgerStore) LastSyncedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSyncedAt
}

// markWrite stamps a local write with a fresh generation so that syncs issued
// before it cannot overwrite it. Caller must hold the write lock.
func (s *ledgerStore) markWrite() {
	s.issued++
	s.applied = s.issued
}

// indexOf returns the position of id, or -1. Caller must hold the lock.
func (s *ledgerStore) indexOf(id string) int {
	for i, t := range s.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}
