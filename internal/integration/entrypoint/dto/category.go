package dto

import (
	"github.com/finance-tracker/dashboard/internal/application/usecase/category"
)

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	Category         string  `json:"category"`
	Label            string  `json:"label"`
	Income           bool    `json:"income"`
	Expense          bool    `json:"expense"`
	TransactionCount int     `json:"transaction_count"`
	PeriodTotal      float64 `json:"period_total"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse converts a ListCategoriesOutput to a CategoryListResponse DTO.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryResponse{
			Category:         string(c.Category),
			Label:            c.Label,
			Income:           c.Income,
			Expense:          c.Expense,
			TransactionCount: c.TransactionCount,
			PeriodTotal:      toFloat(c.PeriodTotal),
		}
	}
	return CategoryListResponse{Categories: categories}
}
