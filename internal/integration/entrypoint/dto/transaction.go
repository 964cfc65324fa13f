package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/application/usecase/transaction"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Field validation happens in the use case so that errors carry domain codes.
type CreateTransactionRequest struct {
	Type        string   `json:"type"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Division    string   `json:"division"`
	Date        string   `json:"date"`
	FromAccount *string  `json:"from_account,omitempty"`
	ToAccount   *string  `json:"to_account,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Division    *string  `json:"division,omitempty"`
	Date        *string  `json:"date,omitempty"`
	FromAccount *string  `json:"from_account,omitempty"`
	ToAccount   *string  `json:"to_account,omitempty"`
}

// ToDraft converts the request to a draft. An unparsable date yields a zero
// date, which fails validation.
func (r CreateTransactionRequest) ToDraft(loc *time.Location) entity.TransactionDraft {
	draft := entity.TransactionDraft{
		Type:        entity.TransactionType(r.Type),
		Description: r.Description,
		Category:    entity.Category(r.Category),
		Division:    entity.Division(r.Division),
		FromAccount: r.FromAccount,
		ToAccount:   r.ToAccount,
	}
	if r.Amount != nil {
		draft.Amount = decimal.NewFromFloat(*r.Amount)
	}
	if date, err := ParseDate(r.Date, loc, false); err == nil {
		draft.Date = date
	}
	return draft
}

// ToPatch converts the request to a patch.
func (r UpdateTransactionRequest) ToPatch(loc *time.Location) (entity.TransactionPatch, error) {
	patch := entity.TransactionPatch{
		Description: r.Description,
		FromAccount: r.FromAccount,
		ToAccount:   r.ToAccount,
	}
	if r.Type != nil {
		t := entity.TransactionType(*r.Type)
		patch.Type = &t
	}
	if r.Amount != nil {
		amount := decimal.NewFromFloat(*r.Amount)
		patch.Amount = &amount
	}
	if r.Category != nil {
		c := entity.Category(*r.Category)
		patch.Category = &c
	}
	if r.Division != nil {
		d := entity.Division(*r.Division)
		patch.Division = &d
	}
	if r.Date != nil {
		date, err := ParseDate(*r.Date, loc, false)
		if err != nil {
			return patch, err
		}
		patch.Date = &date
	}
	return patch, nil
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Amount         string    `json:"amount"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	CategoryLabel  string    `json:"category_label"`
	Division       string    `json:"division"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
	FromAccount    *string   `json:"from_account,omitempty"`
	ToAccount      *string   `json:"to_account,omitempty"`
	Editable       bool      `json:"editable"`
	HoursRemaining int64     `json:"hours_remaining"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// EditabilityResponse represents the edit window state of one transaction.
type EditabilityResponse struct {
	TransactionID  string    `json:"transaction_id"`
	State          string    `json:"state"`
	Editable       bool      `json:"editable"`
	HoursRemaining int64     `json:"hours_remaining"`
	ClosesAt       time.Time `json:"closes_at"`
	CheckedAt      time.Time `json:"checked_at"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:             txn.ID,
		Type:           string(txn.Type),
		Amount:         txn.Amount.String(),
		Description:    txn.Description,
		Category:       string(txn.Category),
		CategoryLabel:  txn.Category.Label(),
		Division:       string(txn.Division),
		Date:           txn.Date,
		CreatedAt:      txn.CreatedAt,
		FromAccount:    txn.FromAccount,
		ToAccount:      txn.ToAccount,
		Editable:       txn.Editable,
		HoursRemaining: txn.HoursRemaining,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Total:        output.Total,
	}
}

// ToEditabilityResponse converts a GetEditabilityOutput to an EditabilityResponse DTO.
func ToEditabilityResponse(output *transaction.GetEditabilityOutput) EditabilityResponse {
	return EditabilityResponse{
		TransactionID:  output.TransactionID,
		State:          string(output.State),
		Editable:       output.Editable,
		HoursRemaining: output.HoursRemaining,
		ClosesAt:       output.ClosesAt,
		CheckedAt:      output.CheckedAt,
	}
}
