// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidTimePeriod is returned when period is not weekly, monthly or yearly.
	ErrInvalidTimePeriod = errors.New("period must be: weekly, monthly, or yearly")

	// ErrInvalidDateRange is returned when dateTo is before dateFrom.
	ErrInvalidDateRange = errors.New("dateTo must not be before dateFrom")

	// ErrInvalidDateFormat is returned when a date filter cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD or RFC 3339")

	// ErrInvalidFilterValue is returned when a division, category or type filter is unknown.
	ErrInvalidFilterValue = errors.New("invalid filter value")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTimePeriod  DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidDateRange   DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidDateFormat  DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidFilterValue DashboardErrorCode = "DSH-010004"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
