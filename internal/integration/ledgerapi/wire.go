package ledgerapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// dateOnlyLayout is accepted alongside RFC 3339 for transaction dates.
const dateOnlyLayout = "2006-01-02"

// wireTime decodes RFC 3339 timestamps and plain dates.
type wireTime struct {
	time.Time
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, dateOnlyLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid time %q", s)
}

// transactionResponse is a transaction as served by the ledger service.
// decimal.Decimal accepts both JSON numbers and numeric strings.
type transactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Division    string          `json:"division"`
	Date        wireTime        `json:"date"`
	CreatedAt   wireTime        `json:"createdAt"`
	FromAccount *string         `json:"fromAccount,omitempty"`
	ToAccount   *string         `json:"toAccount,omitempty"`
}

func (r *transactionResponse) toEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          r.ID,
		Type:        entity.TransactionType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
		Category:    entity.Category(r.Category),
		Division:    entity.Division(r.Division),
		Date:        r.Date.Time,
		CreatedAt:   r.CreatedAt.Time,
		FromAccount: r.FromAccount,
		ToAccount:   r.ToAccount,
	}
}

// transactionRequest is the body of create and update requests.
// Amounts are sent as JSON numbers.
type transactionRequest struct {
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Division    string      `json:"division"`
	Date        time.Time   `json:"date"`
	FromAccount *string     `json:"fromAccount,omitempty"`
	ToAccount   *string     `json:"toAccount,omitempty"`
}

func newTransactionRequest(d entity.TransactionDraft) transactionRequest {
	return transactionRequest{
		Type:        string(d.Type),
		Amount:      json.Number(d.Amount.String()),
		Description: d.Description,
		Category:    string(d.Category),
		Division:    string(d.Division),
		Date:        d.Date,
		FromAccount: d.FromAccount,
		ToAccount:   d.ToAccount,
	}
}

type accountResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Type    string          `json:"type"`
}

func (r *accountResponse) toEntity() *entity.Account {
	return &entity.Account{
		ID:      r.ID,
		Name:    r.Name,
		Balance: r.Balance,
		Type:    entity.AccountType(r.Type),
	}
}
