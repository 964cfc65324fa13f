package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/dashboard/internal/application/usecase/account"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	listUseCase  *account.ListAccountsUseCase
	statsUseCase *account.GetAccountStatsUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	statsUseCase *account.GetAccountStatsUseCase,
) *AccountController {
	return &AccountController{
		listUseCase:  listUseCase,
		statsUseCase: statsUseCase,
	}
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output))
}

// Stats handles GET /accounts/stats requests.
func (c *AccountController) Stats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", dto.ToAccountStatsResponse(output))
}
