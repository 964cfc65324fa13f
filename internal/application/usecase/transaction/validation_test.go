package transaction

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(d *entity.TransactionDraft)
		expectedCode domainerror.TransactionErrorCode
	}{
		{
			name:   "valid draft",
			mutate: func(d *entity.TransactionDraft) {},
		},
		{
			name:   "zero amount is allowed",
			mutate: func(d *entity.TransactionDraft) { d.Amount = decimal.Zero },
		},
		{
			name:   "description of exactly 100 multibyte characters",
			mutate: func(d *entity.TransactionDraft) { d.Description = strings.Repeat("é", 100) },
		},
		{
			name:         "missing type",
			mutate:       func(d *entity.TransactionDraft) { d.Type = "" },
			expectedCode: domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name:         "unknown type",
			mutate:       func(d *entity.TransactionDraft) { d.Type = "refund" },
			expectedCode: domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name:         "negative amount",
			mutate:       func(d *entity.TransactionDraft) { d.Amount = decimal.NewFromInt(-1) },
			expectedCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:         "empty description",
			mutate:       func(d *entity.TransactionDraft) { d.Description = "" },
			expectedCode: domainerror.ErrCodeMissingDescription,
		},
		{
			name:         "description too long",
			mutate:       func(d *entity.TransactionDraft) { d.Description = strings.Repeat("a", 101) },
			expectedCode: domainerror.ErrCodeDescriptionTooLong,
		},
		{
			name:         "unknown category",
			mutate:       func(d *entity.TransactionDraft) { d.Category = "groceries" },
			expectedCode: domainerror.ErrCodeInvalidCategory,
		},
		{
			name:         "unknown division",
			mutate:       func(d *entity.TransactionDraft) { d.Division = "family" },
			expectedCode: domainerror.ErrCodeInvalidDivision,
		},
		{
			name:         "missing date",
			mutate:       func(d *entity.TransactionDraft) { d.Date = time.Time{} },
			expectedCode: domainerror.ErrCodeInvalidTransactionDate,
		},
		{
			name:         "accounts on an expense",
			mutate:       func(d *entity.TransactionDraft) { d.FromAccount = ptr("acc-1") },
			expectedCode: domainerror.ErrCodeAccountsOnlyForTransfers,
		},
		{
			name: "accounts on a transfer",
			mutate: func(d *entity.TransactionDraft) {
				d.Type = entity.TransactionTypeTransfer
				d.FromAccount = ptr("acc-1")
				d.ToAccount = ptr("acc-2")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := ValidateDraft(draft)

			if tt.expectedCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) {
				t.Fatalf("expected TransactionError, got %v", err)
			}
			if txnErr.Code != tt.expectedCode {
				t.Errorf("code = %s, want %s", txnErr.Code, tt.expectedCode)
			}
		})
	}
}

func TestTransactionDraft_ApplyDefaults(t *testing.T) {
	draft := entity.TransactionDraft{Type: entity.TransactionTypeTransfer}
	draft.ApplyDefaults()

	if draft.Category != entity.CategoryOther {
		t.Errorf("transfer category = %q, want other", draft.Category)
	}
}
