package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase         *dashboard.GetDashboardUseCase
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	getTrendsUseCase            *dashboard.GetTrendsUseCase
	location                    *time.Location
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getDashboardUseCase *dashboard.GetDashboardUseCase,
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	getTrendsUseCase *dashboard.GetTrendsUseCase,
	location *time.Location,
) *DashboardController {
	return &DashboardController{
		getDashboardUseCase:         getDashboardUseCase,
		getCategoryBreakdownUseCase: getCategoryBreakdownUseCase,
		getTrendsUseCase:            getTrendsUseCase,
		location:                    location,
	}
}

// GetDashboard handles GET /dashboard requests.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	query, err := parseQuery(ctx, c.location)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{Query: query})
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Transform to response DTO
	response := dto.ToDashboardResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// GetSummary handles GET /summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	query, err := parseQuery(ctx, c.location)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.getCategoryBreakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{Query: query})
	if err != nil {
		handleError(ctx, err)
		return
	}

	response := dto.ToCategorySummaryResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// GetChart handles GET /chart requests.
func (c *DashboardController) GetChart(ctx *gin.Context) {
	input := dashboard.GetTrendsInput{
		Period: entity.TimePeriod(ctx.Query("period")),
	}

	output, err := c.getTrendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	response := dto.ToChartResponse(output)
	ctx.JSON(http.StatusOK, response)
}
