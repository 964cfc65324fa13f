// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
	"github.com/finance-tracker/dashboard/internal/domain/valueobject"
)

// TransactionOutput represents a single transaction with its editability at evaluation time.
type TransactionOutput struct {
	*entity.Transaction
	Editable       bool
	HoursRemaining int64
}

// newTransactionOutput evaluates the edit window for t at now.
func newTransactionOutput(t *entity.Transaction, window valueobject.EditWindow, now time.Time) *TransactionOutput {
	return &TransactionOutput{
		Transaction:    t,
		Editable:       window.Allows(t.CreatedAt, now),
		HoursRemaining: window.HoursRemaining(t.CreatedAt, now),
	}
}

func newTransactionOutputs(transactions []*entity.Transaction, window valueobject.EditWindow, now time.Time) []*TransactionOutput {
	out := make([]*TransactionOutput, len(transactions))
	for i, t := range transactions {
		out[i] = newTransactionOutput(t, window, now)
	}
	return out
}
