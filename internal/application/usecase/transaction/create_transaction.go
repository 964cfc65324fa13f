// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Draft          entity.TransactionDraft
	IdempotencyKey string // Optional; identical drafts are de-duplicated without it
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	ledgerAPI adapter.LedgerAPI
	store     adapter.LedgerStore
	guard     adapter.MutationGuard
	clock     adapter.Clock
	window    valueobject.EditWindow
	metrics   adapter.MetricsRecorder
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	ledgerAPI adapter.LedgerAPI,
	store adapter.LedgerStore,
	guard adapter.MutationGuard,
	clock adapter.Clock,
	window valueobject.EditWindow,
	metrics adapter.MetricsRecorder,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		ledgerAPI: ledgerAPI,
		store:     store,
		guard:     guard,
		clock:     clock,
		window:    window,
		metrics:   metrics,
	}
}

// Execute validates the draft, submits it to the ledger service and appends the
// created transaction to the local ledger. The local ledger is untouched on failure.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	draft := input.Draft
	draft.ApplyDefaults()

	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	var created *entity.Transaction
	key := mutationKey("create", input.IdempotencyKey, draft)
	err := withGuard(ctx, uc.guard, uc.metrics, "create", key, func() error {
		var err error
		created, err = uc.ledgerAPI.CreateTransaction(ctx, draft)
		return err
	})
	if err != nil {
		slog.WarnContext(ctx, "Failed to create transaction", "error", err)
		return nil, err
	}

	uc.store.Append(created)

	slog.InfoContext(ctx, "Transaction created",
		"transaction_id", created.ID,
		"type", created.Type,
		"category", created.Category,
	)

	return &CreateTransactionOutput{
		Transaction: newTransactionOutput(created, uc.window, uc.clock.Now()),
	}, nil
}
