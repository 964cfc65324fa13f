// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not in the local ledger.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrEditWindowViolation is returned when a transaction is modified or deleted after its edit window closed.
	ErrEditWindowViolation = errors.New("transaction edit window has closed")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is negative.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidTransactionDate is returned when the transaction date is missing or malformed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidCategory is returned when the category is not part of the catalog.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidDivision is returned when the division is neither personal nor office.
	ErrInvalidDivision = errors.New("invalid division")

	// ErrMissingDescription is returned when the description is empty.
	ErrMissingDescription = errors.New("description is required")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrAccountsOnlyForTransfers is returned when a non-transfer references accounts.
	ErrAccountsOnlyForTransfers = errors.New("accounts can only be set on transfers")

	// ErrEmptyUpdate is returned when an update carries no fields.
	ErrEmptyUpdate = errors.New("update contains no fields")

	// ErrDuplicateSubmission is returned when an identical mutation is already in flight.
	ErrDuplicateSubmission = errors.New("identical request already in progress")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidCategory          TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidDivision          TransactionErrorCode = "TXN-010005"
	ErrCodeMissingDescription       TransactionErrorCode = "TXN-010006"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010007"
	ErrCodeAccountsOnlyForTransfers TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010009"
	ErrCodeEmptyUpdate              TransactionErrorCode = "TXN-010010"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"

	// Policy errors (03XXXX)
	ErrCodeEditWindowViolation TransactionErrorCode = "TXN-030001"
	ErrCodeDuplicateSubmission TransactionErrorCode = "TXN-030002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
