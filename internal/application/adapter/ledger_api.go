// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// LedgerAPI defines the remote ledger service the dashboard reads from and writes to.
// Implementations wrap failures in domainerror.SyncError.
type LedgerAPI interface {
	// ListTransactions fetches the transactions matching the filter options.
	ListTransactions(ctx context.Context, filters entity.FilterOptions) ([]*entity.Transaction, error)

	// CreateTransaction submits a draft and returns the transaction with its server-assigned ID and CreatedAt.
	CreateTransaction(ctx context.Context, draft entity.TransactionDraft) (*entity.Transaction, error)

	// UpdateTransaction replaces every editable field of a transaction and returns the updated transaction.
	UpdateTransaction(ctx context.Context, id string, draft entity.TransactionDraft) (*entity.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, id string) error

	// ListAccounts fetches every account.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// GetAccountStats fetches the aggregate account statistics document.
	GetAccountStats(ctx context.Context) (entity.AccountStats, error)
}
