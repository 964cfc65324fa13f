package dto

import (
	"encoding/json"
	"time"

	"github.com/finance-tracker/dashboard/internal/application/usecase/account"
)

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Type    string  `json:"type"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts     []AccountResponse `json:"accounts"`
	TotalBalance float64           `json:"total_balance"`
	LastSyncedAt *time.Time        `json:"last_synced_at"`
}

// ToAccountListResponse converts a ListAccountsOutput to an AccountListResponse DTO.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		accounts[i] = AccountResponse{
			ID:      a.ID,
			Name:    a.Name,
			Balance: toFloat(a.Balance),
			Type:    string(a.Type),
		}
	}

	response := AccountListResponse{
		Accounts:     accounts,
		TotalBalance: toFloat(output.TotalBalance),
	}
	if !output.LastSyncedAt.IsZero() {
		synced := output.LastSyncedAt
		response.LastSyncedAt = &synced
	}
	return response
}

// ToAccountStatsResponse returns the remote statistics document unchanged.
func ToAccountStatsResponse(output *account.GetAccountStatsOutput) json.RawMessage {
	if len(output.Stats) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(output.Stats)
}
