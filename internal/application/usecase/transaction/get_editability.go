// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

// GetEditabilityInput represents the input for checking a transaction's edit window.
type GetEditabilityInput struct {
	TransactionID string
}

// GetEditabilityOutput represents the edit window state of one transaction.
type GetEditabilityOutput struct {
	TransactionID  string
	State          valueobject.EditState
	Editable       bool
	HoursRemaining int64
	ClosesAt       time.Time
	CheckedAt      time.Time
}

// GetEditabilityUseCase handles checking whether a transaction can still be changed.
type GetEditabilityUseCase struct {
	store  adapter.LedgerStore
	clock  adapter.Clock
	window valueobject.EditWindow
}

// NewGetEditabilityUseCase creates a new GetEditabilityUseCase instance.
func NewGetEditabilityUseCase(
	store adapter.LedgerStore,
	clock adapter.Clock,
	window valueobject.EditWindow,
) *GetEditabilityUseCase {
	return &GetEditabilityUseCase{
		store:  store,
		clock:  clock,
		window: window,
	}
}

// Execute evaluates the edit window at the current time.
func (uc *GetEditabilityUseCase) Execute(_ context.Context, input GetEditabilityInput) (*GetEditabilityOutput, error) {
	t, ok := uc.store.FindByID(input.TransactionID)
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	now := uc.clock.Now()
	return &GetEditabilityOutput{
		TransactionID:  t.ID,
		State:          uc.window.State(t.CreatedAt, now),
		Editable:       uc.window.Allows(t.CreatedAt, now),
		HoursRemaining: uc.window.HoursRemaining(t.CreatedAt, now),
		ClosesAt:       uc.window.ClosesAt(t.CreatedAt),
		CheckedAt:      now,
	}, nil
}
