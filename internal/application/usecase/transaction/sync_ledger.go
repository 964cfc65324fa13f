// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// SyncLedgerInput represents the input for refreshing the local ledger.
type SyncLedgerInput struct {
	Filters entity.FilterOptions // Forwarded to the ledger service as query parameters

	// KeepFilters ignores Filters and repeats the filters of the last applied sync,
	// so a periodic refresh never widens or narrows the snapshot on its own.
	KeepFilters bool
}

// SyncLedgerOutput represents the result of a sync.
type SyncLedgerOutput struct {
	Generation   uint64
	Applied      bool
	Filters      entity.FilterOptions
	Transactions int
	Accounts     int
	SyncedAt     time.Time
}

// SyncLedgerUseCase handles refreshing the local ledger from the remote service.
type SyncLedgerUseCase struct {
	ledgerAPI adapter.LedgerAPI
	store     adapter.LedgerStore
	clock     adapter.Clock
	metrics   adapter.MetricsRecorder

	mu          sync.Mutex
	lastFilters entity.FilterOptions
}

// NewSyncLedgerUseCase creates a new SyncLedgerUseCase instance.
func NewSyncLedgerUseCase(
	ledgerAPI adapter.LedgerAPI,
	store adapter.LedgerStore,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
) *SyncLedgerUseCase {
	return &SyncLedgerUseCase{
		ledgerAPI: ledgerAPI,
		store:     store,
		clock:     clock,
		metrics:   metrics,
	}
}

// Execute fetches transactions and accounts concurrently and replaces the local
// ledger with them. If either fetch fails, or a newer write landed while the
// sync was in flight, the local ledger is left unchanged.
func (uc *SyncLedgerUseCase) Execute(ctx context.Context, input SyncLedgerInput) (*SyncLedgerOutput, error) {
	filters := input.Filters
	if input.KeepFilters {
		uc.mu.Lock()
		filters = uc.lastFilters
		uc.mu.Unlock()
	}

	gen := uc.store.NextGeneration()

	var (
		transactions []*entity.Transaction
		accounts     []*entity.Account
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = uc.ledgerAPI.ListTransactions(gctx, filters)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = uc.ledgerAPI.ListAccounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.WarnContext(ctx, "Ledger sync failed", "generation", gen, "error", err)
		return nil, err
	}

	applied := uc.store.ReplaceAll(gen, transactions, accounts)
	uc.metrics.RecordSync(applied, len(transactions), len(accounts))

	if !applied {
		slog.InfoContext(ctx, "Discarded stale sync result", "generation", gen)
		return nil, domainerror.NewStaleSyncError(gen)
	}

	uc.mu.Lock()
	uc.lastFilters = filters
	uc.mu.Unlock()

	slog.InfoContext(ctx, "Ledger synced",
		"generation", gen,
		"transactions", len(transactions),
		"accounts", len(accounts),
		"active_filters", filters.ActiveCount(),
	)

	return &SyncLedgerOutput{
		Generation:   gen,
		Applied:      applied,
		Filters:      filters,
		Transactions: len(transactions),
		Accounts:     len(accounts),
		SyncedAt:     uc.clock.Now(),
	}, nil
}
