// Package error defines domain-specific errors for the finance dashboard.
package error

import (
	"errors"
	"fmt"
)

// Remote ledger service errors.
var (
	// ErrFetchFailed is returned when reading from the remote ledger service fails.
	ErrFetchFailed = errors.New("failed to fetch from ledger service")

	// ErrMutationFailed is returned when a create, update or delete against the remote ledger service fails.
	ErrMutationFailed = errors.New("ledger service rejected the change")

	// ErrStaleSync is returned when a sync response arrives after a newer one was already applied.
	ErrStaleSync = errors.New("sync result superseded by a newer sync")
)

// SyncErrorCode defines error codes for remote service errors.
// Format: SYN-XXYYYY where XX is category and YYYY is specific error.
type SyncErrorCode string

const (
	ErrCodeFetchFailed    SyncErrorCode = "SYN-010001"
	ErrCodeMutationFailed SyncErrorCode = "SYN-010002"
	ErrCodeStaleSync      SyncErrorCode = "SYN-010003"
)

// SyncError represents a failure talking to the remote ledger service.
type SyncError struct {
	Code       SyncErrorCode
	Message    string
	StatusCode int // HTTP status returned by the remote service, 0 on transport errors
	Err        error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewFetchError wraps a read failure.
func NewFetchError(message string, statusCode int, err error) *SyncError {
	return &SyncError{
		Code:       ErrCodeFetchFailed,
		Message:    message,
		StatusCode: statusCode,
		Err:        errors.Join(ErrFetchFailed, err),
	}
}

// NewMutationError wraps a create, update or delete failure.
func NewMutationError(message string, statusCode int, err error) *SyncError {
	return &SyncError{
		Code:       ErrCodeMutationFailed,
		Message:    message,
		StatusCode: statusCode,
		Err:        errors.Join(ErrMutationFailed, err),
	}
}

// NewStaleSyncError reports a sync result dropped because a newer write was already applied.
func NewStaleSyncError(generation uint64) *SyncError {
	return &SyncError{
		Code:    ErrCodeStaleSync,
		Message: fmt.Sprintf("sync %d was superseded by a newer ledger state", generation),
		Err:     ErrStaleSync,
	}
}
