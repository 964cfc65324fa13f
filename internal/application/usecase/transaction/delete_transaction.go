// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID string
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	ledgerAPI adapter.LedgerAPI
	store     adapter.LedgerStore
	guard     adapter.MutationGuard
	clock     adapter.Clock
	window    valueobject.EditWindow
	metrics   adapter.MetricsRecorder
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	ledgerAPI adapter.LedgerAPI,
	store adapter.LedgerStore,
	guard adapter.MutationGuard,
	clock adapter.Clock,
	window valueobject.EditWindow,
	metrics adapter.MetricsRecorder,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		ledgerAPI: ledgerAPI,
		store:     store,
		guard:     guard,
		clock:     clock,
		window:    window,
		metrics:   metrics,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	if _, err := editableTransaction(ctx, uc.store, uc.clock, uc.window, uc.metrics, "delete", input.TransactionID); err != nil {
		return nil, err
	}

	key := mutationKey("delete", input.TransactionID, nil)
	err := withGuard(ctx, uc.guard, uc.metrics, "delete", key, func() error {
		return uc.ledgerAPI.DeleteTransaction(ctx, input.TransactionID)
	})
	if err != nil {
		slog.WarnContext(ctx, "Failed to delete transaction", "transaction_id", input.TransactionID, "error", err)
		return nil, err
	}

	uc.store.Remove(input.TransactionID)

	slog.InfoContext(ctx, "Transaction deleted", "transaction_id", input.TransactionID)

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
