// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

// editableTransaction loads a transaction from the local ledger and checks that
// its edit window is still open. Nothing is sent to the remote service.
func editableTransaction(
	ctx context.Context,
	store adapter.LedgerStore,
	clock adapter.Clock,
	window valueobject.EditWindow,
	metrics adapter.MetricsRecorder,
	operation, id string,
) (*entity.Transaction, error) {
	existing, ok := store.FindByID(id)
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	now := clock.Now()
	if !window.Allows(existing.CreatedAt, now) {
		metrics.RecordEditWindowViolation(operation)
		slog.InfoContext(ctx, "Edit window closed",
			"operation", operation,
			"transaction_id", id,
			"created_at", existing.CreatedAt,
			"elapsed_hours", valueobject.ElapsedHours(existing.CreatedAt, now),
		)
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEditWindowViolation,
			fmt.Sprintf("transactions can only be changed within %d hours of creation", window.Hours),
			domainerror.ErrEditWindowViolation,
		)
	}

	return existing, nil
}
