// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// handleError maps domain errors to HTTP responses. Remote failures are
// reported as 502 and never abort the process.
func handleError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(getStatusCodeForDashboardError(dashErr.Code), dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	var syncErr *domainerror.SyncError
	if errors.As(err, &syncErr) {
		response := dto.ErrorResponse{
			Error: syncErr.Message,
			Code:  string(syncErr.Code),
		}
		switch {
		case syncErr.Code == domainerror.ErrCodeStaleSync:
		case syncErr.StatusCode > 0:
			response.Details = fmt.Sprintf("ledger service responded with status %d", syncErr.StatusCode)
		default:
			response.Details = "ledger service unreachable"
		}
		ctx.JSON(getStatusCodeForSyncError(syncErr.Code), response)
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "Unhandled error", "error", err)

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEditWindowViolation:
		return http.StatusForbidden
	case domainerror.ErrCodeDuplicateSubmission:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeInvalidDivision,
		domainerror.ErrCodeMissingDescription,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeAccountsOnlyForTransfers,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeEmptyUpdate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTimePeriod,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidFilterValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForSyncError maps remote service error codes to HTTP status codes.
func getStatusCodeForSyncError(code domainerror.SyncErrorCode) int {
	switch code {
	case domainerror.ErrCodeFetchFailed,
		domainerror.ErrCodeMutationFailed:
		return http.StatusBadGateway
	case domainerror.ErrCodeStaleSync:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
