package controller

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
	"github.com/finance-tracker/dashboard/internal/integration/entrypoint/dto"
)

// parseFilters reads division, category, type, dateFrom and dateTo from the query string.
// A calendar dateTo covers the whole day.
func parseFilters(ctx *gin.Context, loc *time.Location) (entity.FilterOptions, error) {
	var filters entity.FilterOptions

	if v := ctx.Query("division"); v != "" {
		division := entity.Division(v)
		if !division.IsValid() {
			return filters, invalidFilter("division must be: personal or office")
		}
		filters.Division = &division
	}

	if v := ctx.Query("category"); v != "" {
		category := entity.Category(v)
		if !category.IsValid() {
			return filters, invalidFilter(fmt.Sprintf("unknown category %q", v))
		}
		filters.Category = &category
	}

	if v := ctx.Query("type"); v != "" {
		txnType := entity.TransactionType(v)
		if !txnType.IsValid() {
			return filters, invalidFilter("type must be: income, expense, or transfer")
		}
		filters.Type = &txnType
	}

	for _, bound := range []struct {
		param    string
		endOfDay bool
		target   **time.Time
	}{
		{"dateFrom", false, &filters.DateFrom},
		{"dateTo", true, &filters.DateTo},
	} {
		v := ctx.Query(bound.param)
		if v == "" {
			continue
		}
		t, err := dto.ParseDate(v, loc, bound.endOfDay)
		if err != nil {
			return filters, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidDateFormat,
				fmt.Sprintf("invalid %s format, expected YYYY-MM-DD or RFC 3339", bound.param),
				domainerror.ErrInvalidDateFormat,
			)
		}
		*bound.target = &t
	}

	return filters, nil
}

// parseQuery reads the period and filters of a dashboard request.
// Period validation is left to the use case.
func parseQuery(ctx *gin.Context, loc *time.Location) (dashboard.Query, error) {
	filters, err := parseFilters(ctx, loc)
	if err != nil {
		return dashboard.Query{}, err
	}
	return dashboard.Query{
		Period:  entity.TimePeriod(ctx.Query("period")),
		Filters: filters,
	}, nil
}

func invalidFilter(message string) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeInvalidFilterValue,
		message,
		domainerror.ErrInvalidFilterValue,
	)
}
