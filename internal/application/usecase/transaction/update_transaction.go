// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	TransactionID  string
	Patch          entity.TransactionPatch
	IdempotencyKey string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	ledgerAPI adapter.LedgerAPI
	store     adapter.LedgerStore
	guard     adapter.MutationGuard
	clock     adapter.Clock
	window    valueobject.EditWindow
	metrics   adapter.MetricsRecorder
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	ledgerAPI adapter.LedgerAPI,
	store adapter.LedgerStore,
	guard adapter.MutationGuard,
	clock adapter.Clock,
	window valueobject.EditWindow,
	metrics adapter.MetricsRecorder,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		ledgerAPI: ledgerAPI,
		store:     store,
		guard:     guard,
		clock:     clock,
		window:    window,
		metrics:   metrics,
	}
}

// Execute applies the patch to a transaction that is still inside its edit window.
// The window is checked against the local ledger before any request is sent.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if input.Patch.IsEmpty() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyUpdate,
			"at least one field must be provided",
			domainerror.ErrEmptyUpdate,
		)
	}

	existing, err := editableTransaction(ctx, uc.store, uc.clock, uc.window, uc.metrics, "update", input.TransactionID)
	if err != nil {
		return nil, err
	}

	draft := input.Patch.ApplyTo(existing)
	draft.ApplyDefaults()
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	var updated *entity.Transaction
	key := mutationKey("update:"+input.TransactionID, input.IdempotencyKey, draft)
	err = withGuard(ctx, uc.guard, uc.metrics, "update", key, func() error {
		var err error
		updated, err = uc.ledgerAPI.UpdateTransaction(ctx, input.TransactionID, draft)
		return err
	})
	if err != nil {
		slog.WarnContext(ctx, "Failed to update transaction", "transaction_id", input.TransactionID, "error", err)
		return nil, err
	}

	// The service owns CreatedAt; keep ours if it was omitted from the response.
	if updated.CreatedAt.IsZero() {
		updated.CreatedAt = existing.CreatedAt
	}
	if !uc.store.Replace(updated) {
		// Removed by a concurrent sync while the request was in flight.
		uc.store.Append(updated)
	}

	slog.InfoContext(ctx, "Transaction updated", "transaction_id", updated.ID)

	return &UpdateTransactionOutput{
		Transaction: newTransactionOutput(updated, uc.window, uc.clock.Now()),
	}, nil
}
