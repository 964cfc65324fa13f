// Package error defines domain-specific errors for the finance dashboard.
package error

// RequestErrorCode defines error codes raised before a request reaches a use case.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	ErrCodeInvalidRequestBody RequestErrorCode = "REQ-010001"
	ErrCodeRateLimited        RequestErrorCode = "REQ-020001"
)
