package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/dashboard/internal/application/usecase/transaction"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// IdempotencyKeyHeader lets clients tag retries of the same mutation.
const IdempotencyKeyHeader = "Idempotency-Key"

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase        *transaction.ListTransactionsUseCase
	createUseCase      *transaction.CreateTransactionUseCase
	updateUseCase      *transaction.UpdateTransactionUseCase
	deleteUseCase      *transaction.DeleteTransactionUseCase
	editabilityUseCase *transaction.GetEditabilityUseCase
	location           *time.Location
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	editabilityUseCase *transaction.GetEditabilityUseCase,
	location *time.Location,
) *TransactionController {
	return &TransactionController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		editabilityUseCase: editabilityUseCase,
		location:           location,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	filters, err := parseFilters(ctx, c.location)
	if err != nil {
		handleError(ctx, err)
		return
	}

	c.list(ctx, transaction.ListTransactionsInput{
		Scope:   transaction.ListScopePeriod,
		Period:  entity.TimePeriod(ctx.Query("period")),
		Filters: filters,
	})
}

// ListAll handles GET /transactions/all requests.
func (c *TransactionController) ListAll(ctx *gin.Context) {
	c.list(ctx, transaction.ListTransactionsInput{Scope: transaction.ListScopeAll})
}

// ListTransfers handles GET /transactions/transfers requests.
func (c *TransactionController) ListTransfers(ctx *gin.Context) {
	c.list(ctx, transaction.ListTransactionsInput{Scope: transaction.ListScopeTransfers})
}

func (c *TransactionController) list(ctx *gin.Context, input transaction.ListTransactionsInput) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Build response
	response := dto.ToTransactionListResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	// Parse request body
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRequestBody),
			Details: err.Error(),
		})
		return
	}

	if req.Amount == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amount is required",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	// Build input
	input := transaction.CreateTransactionInput{
		Draft:          req.ToDraft(c.location),
		IdempotencyKey: ctx.GetHeader(IdempotencyKeyHeader),
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Build response
	response := dto.ToTransactionResponse(output.Transaction)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	// Parse request body
	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRequestBody),
			Details: err.Error(),
		})
		return
	}

	patch, err := req.ToPatch(c.location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD or RFC 3339",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	// Build input
	input := transaction.UpdateTransactionInput{
		TransactionID:  ctx.Param("id"),
		Patch:          patch,
		IdempotencyKey: ctx.GetHeader(IdempotencyKeyHeader),
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Build response
	response := dto.ToTransactionResponse(output.Transaction)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	input := transaction.DeleteTransactionInput{
		TransactionID: ctx.Param("id"),
	}

	// Execute use case
	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// GetEditability handles GET /transactions/:id/editability requests.
func (c *TransactionController) GetEditability(ctx *gin.Context) {
	output, err := c.editabilityUseCase.Execute(ctx.Request.Context(), transaction.GetEditabilityInput{
		TransactionID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEditabilityResponse(output))
}
