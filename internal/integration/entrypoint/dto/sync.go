package dto

import (
	"time"

	"github.com/finance-tracker/dashboard/internal/application/usecase/transaction"
)

// SyncResponse represents the result of a manual sync.
type SyncResponse struct {
	Generation   uint64    `json:"generation"`
	Applied      bool      `json:"applied"`
	Transactions int       `json:"transactions"`
	Accounts     int       `json:"accounts"`
	SyncedAt     time.Time `json:"synced_at"`
}

// ToSyncResponse converts a SyncLedgerOutput to a SyncResponse DTO.
func ToSyncResponse(output *transaction.SyncLedgerOutput) SyncResponse {
	return SyncResponse{
		Generation:   output.Generation,
		Applied:      output.Applied,
		Transactions: output.Transactions,
		Accounts:     output.Accounts,
		SyncedAt:     output.SyncedAt,
	}
}
