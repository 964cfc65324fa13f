// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"time"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// LedgerStore holds the local copy of the remote ledger.
//
// Every write is stamped with a generation. A sync reserves its generation
// with NextGeneration before issuing the remote request and ReplaceAll drops
// the result when any newer write has already been applied.
type LedgerStore interface {
	// Transactions returns a deep copy of the collection in insertion order.
	Transactions() []*entity.Transaction

	// Accounts returns a copy of the accounts from the last applied sync.
	Accounts() []*entity.Account

	// FindByID returns a copy of the transaction with the given ID.
	FindByID(id string) (*entity.Transaction, bool)

	// NextGeneration reserves a generation for a sync that is about to start.
	NextGeneration() uint64

	// ReplaceAll swaps the whole collection if gen is newer than the last applied write.
	// It reports whether the result was applied.
	ReplaceAll(gen uint64, transactions []*entity.Transaction, accounts []*entity.Account) bool

	// Append adds a transaction created remotely.
	Append(t *entity.Transaction)

	// Replace swaps the transaction with the same ID. It reports whether one was found.
	Replace(t *entity.Transaction) bool

	// Remove deletes the transaction with the given ID. It reports whether one was found.
	Remove(id string) bool

	// LastSyncedAt returns when a sync was last applied, zero if never.
	LastSyncedAt() time.Time
}
