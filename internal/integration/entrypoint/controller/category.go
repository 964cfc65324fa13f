package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/dashboard/internal/application/usecase/category"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase *category.ListCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(listUseCase *category.ListCategoriesUseCase) *CategoryController {
	return &CategoryController{
		listUseCase: listUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	var input category.ListCategoriesInput

	// Filter by transaction type if provided
	if v := ctx.Query("type"); v != "" {
		txnType := entity.TransactionType(v)
		input.Type = &txnType
	}

	// Attach usage statistics if a period is provided
	if v := ctx.Query("period"); v != "" {
		period := entity.TimePeriod(v)
		input.Period = &period
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output))
}
