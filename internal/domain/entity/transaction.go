// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// Division is the cost-center tag attached to each transaction.
type Division string

const (
	DivisionPersonal Division = "personal"
	DivisionOffice   Division = "office"
)

// IsValid reports whether d is one of the known divisions.
func (d Division) IsValid() bool {
	return d == DivisionPersonal || d == DivisionOffice
}

// MaxDescriptionLength is the maximum number of characters in a description.
const MaxDescriptionLength = 100

// Transaction represents one money movement as held by the remote ledger service.
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Category    Category
	Division    Division
	Date        time.Time
	CreatedAt   time.Time // Assigned by the remote service, immutable
	FromAccount *string   // Transfers only
	ToAccount   *string   // Transfers only
}

// IsTransfer reports whether the transaction moves money between accounts.
func (t *Transaction) IsTransfer() bool {
	return t.Type == TransactionTypeTransfer
}

// Clone returns a deep copy of the transaction.
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.FromAccount != nil {
		from := *t.FromAccount
		c.FromAccount = &from
	}
	if t.ToAccount != nil {
		to := *t.ToAccount
		c.ToAccount = &to
	}
	return &c
}

// TransactionDraft is a transaction that has not been assigned an ID or creation time yet.
type TransactionDraft struct {
	Type        TransactionType `json:"type" validate:"required,txn_type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,max=100"`
	Category    Category        `json:"category" validate:"required,category"`
	Division    Division        `json:"division" validate:"required,division"`
	Date        time.Time       `json:"date" validate:"required"`
	FromAccount *string         `json:"fromAccount,omitempty"`
	ToAccount   *string         `json:"toAccount,omitempty"`
}

// ApplyDefaults gives a transfer without a category the "other" category.
func (d *TransactionDraft) ApplyDefaults() {
	if d.Type == TransactionTypeTransfer && d.Category == "" {
		d.Category = CategoryOther
	}
}

// DraftFrom returns the replaceable fields of an existing transaction as a draft.
func DraftFrom(t *Transaction) TransactionDraft {
	c := t.Clone()
	return TransactionDraft{
		Type:        c.Type,
		Amount:      c.Amount,
		Description: c.Description,
		Category:    c.Category,
		Division:    c.Division,
		Date:        c.Date,
		FromAccount: c.FromAccount,
		ToAccount:   c.ToAccount,
	}
}

// TransactionPatch carries the fields to replace on update. Nil fields are left untouched.
type TransactionPatch struct {
	Type        *TransactionType
	Amount      *decimal.Decimal
	Description *string
	Category    *Category
	Division    *Division
	Date        *time.Time
	FromAccount *string
	ToAccount   *string
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Type == nil && p.Amount == nil && p.Description == nil && p.Category == nil &&
		p.Division == nil && p.Date == nil && p.FromAccount == nil && p.ToAccount == nil
}

// ApplyTo returns the draft that results from applying the patch to an existing transaction.
func (p TransactionPatch) ApplyTo(t *Transaction) TransactionDraft {
	d := DraftFrom(t)
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Amount != nil {
		d.Amount = *p.Amount
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Division != nil {
		d.Division = *p.Division
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.FromAccount != nil {
		d.FromAccount = p.FromAccount
	}
	if p.ToAccount != nil {
		d.ToAccount = p.ToAccount
	}
	// Accounts inherited from a former transfer go away with the type change.
	if d.Type != TransactionTypeTransfer {
		if p.FromAccount == nil {
			d.FromAccount = nil
		}
		if p.ToAccount == nil {
			d.ToAccount = nil
		}
	}
	return d
}
