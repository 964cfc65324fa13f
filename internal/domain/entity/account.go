// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// AccountType represents the kind of balance holder.
type AccountType string

const (
	AccountTypeCash    AccountType = "cash"
	AccountTypeBank    AccountType = "bank"
	AccountTypeCredit  AccountType = "credit"
	AccountTypeSavings AccountType = "savings"
)

// Account is a named balance holder. Read-only from the dashboard's perspective.
type Account struct {
	ID      string
	Name    string
	Balance decimal.Decimal // Signed
	Type    AccountType
}

// AccountStats is the aggregate statistics document returned by the remote
// service. Its shape is owned by the service and passed through unchanged.
type AccountStats = json.RawMessage
