// Package worker provides background jobs for the dashboard.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finance-tracker/dashboard/internal/application/usecase/transaction"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// Syncer refreshes the local ledger.
type Syncer interface {
	Execute(ctx context.Context, input transaction.SyncLedgerInput) (*transaction.SyncLedgerOutput, error)
}

// SyncWorker periodically re-fetches the ledger from the remote service.
type SyncWorker struct {
	syncer          Syncer
	refreshInterval time.Duration
	syncOnStart     bool
}

// SyncWorkerConfig holds configuration for the sync worker.
type SyncWorkerConfig struct {
	RefreshInterval time.Duration
	SyncOnStart     bool
}

// DefaultSyncWorkerConfig returns the default worker configuration.
func DefaultSyncWorkerConfig() SyncWorkerConfig {
	return SyncWorkerConfig{
		RefreshInterval: time.Minute,
		SyncOnStart:     true,
	}
}

// NewSyncWorker creates a new sync worker.
func NewSyncWorker(syncer Syncer, config SyncWorkerConfig) *SyncWorker {
	return &SyncWorker{
		syncer:          syncer,
		refreshInterval: config.RefreshInterval,
		syncOnStart:     config.SyncOnStart,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
// With a non-positive refresh interval only the startup sync runs.
func (w *SyncWorker) Start(ctx context.Context) {
	slog.Info("Sync worker started",
		"refresh_interval", w.refreshInterval,
		"sync_on_start", w.syncOnStart,
	)

	if w.syncOnStart {
		w.SyncNow(ctx)
	}

	if w.refreshInterval <= 0 {
		<-ctx.Done()
		slog.Info("Sync worker shutting down")
		return
	}

	ticker := time.NewTicker(w.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Sync worker shutting down")
			return
		case <-ticker.C:
			w.SyncNow(ctx)
		}
	}
}

// SyncNow runs one sync with the filters of the last applied sync.
// Failures are logged and the previous ledger is kept.
func (w *SyncWorker) SyncNow(ctx context.Context) bool {
	out, err := w.syncer.Execute(ctx, transaction.SyncLedgerInput{KeepFilters: true})
	if errors.Is(err, domainerror.ErrStaleSync) {
		slog.Debug("Background sync superseded", "error", err)
		return false
	}
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("Background sync failed", "error", err)
		}
		return false
	}

	slog.Debug("Background sync finished",
		"generation", out.Generation,
		"applied", out.Applied,
		"transactions", out.Transactions,
	)
	return out.Applied
}
