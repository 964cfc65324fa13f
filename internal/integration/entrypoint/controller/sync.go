package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/dashboard/internal/application/usecase/transaction"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// SyncController handles manual refreshes of the local ledger.
type SyncController struct {
	syncUseCase *transaction.SyncLedgerUseCase
	location    *time.Location
}

// NewSyncController creates a new sync controller instance.
func NewSyncController(syncUseCase *transaction.SyncLedgerUseCase, location *time.Location) *SyncController {
	return &SyncController{
		syncUseCase: syncUseCase,
		location:    location,
	}
}

// Sync handles POST /sync requests. The filter query parameters are forwarded
// to the ledger service.
func (c *SyncController) Sync(ctx *gin.Context) {
	filters, err := parseFilters(ctx, c.location)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.syncUseCase.Execute(ctx.Request.Context(), transaction.SyncLedgerInput{Filters: filters})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSyncResponse(output))
}
