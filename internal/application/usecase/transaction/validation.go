// Package transaction contains transaction-related use cases.
package transaction

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

var validate = newValidator()

// newValidator creates a validator with the ledger enumerations registered as tags
// and field names reported by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("txn_type", func(fl validator.FieldLevel) bool {
		return entity.TransactionType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("division", func(fl validator.FieldLevel) bool {
		return entity.Division(fl.Field().String()).IsValid()
	})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateDraft checks a draft against the transaction invariants.
func ValidateDraft(draft entity.TransactionDraft) error {
	if err := validate.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fieldError(fieldErrs[0])
		}
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"invalid transaction",
			err,
		)
	}

	if draft.Amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if draft.Type != entity.TransactionTypeTransfer && (draft.FromAccount != nil || draft.ToAccount != nil) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeAccountsOnlyForTransfers,
			"fromAccount and toAccount can only be set on transfers",
			domainerror.ErrAccountsOnlyForTransfers,
		)
	}

	return nil
}

func fieldError(fe validator.FieldError) error {
	switch fe.Field() {
	case "type":
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be: income, expense, or transfer",
			domainerror.ErrInvalidTransactionType,
		)
	case "description":
		if fe.Tag() == "max" {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", entity.MaxDescriptionLength),
				domainerror.ErrDescriptionTooLong,
			)
		}
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	case "category":
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("category %q is not valid", fe.Value()),
			domainerror.ErrInvalidCategory,
		)
	case "division":
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDivision,
			"division must be: personal or office",
			domainerror.ErrInvalidDivision,
		)
	case "date":
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	default:
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()),
			fe,
		)
	}
}
