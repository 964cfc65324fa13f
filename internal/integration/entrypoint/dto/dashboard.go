package dto

import (
	"time"

	"github.com/finance-tracker/dashboard/internal/application/usecase/dashboard"
)

// StatsResponse represents the totals of the filtered transactions.
type StatsResponse struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}

// CategoryBreakdownResponse represents one category in the breakdown.
type CategoryBreakdownResponse struct {
	Category   string  `json:"category"`
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ChartBucketResponse represents one bucket of the overview chart.
type ChartBucketResponse struct {
	Label   string    `json:"label"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Income  float64   `json:"income"`
	Expense float64   `json:"expense"`
	Balance float64   `json:"balance"`
}

// RecentTransactionResponse is a transaction in the dashboard's recent list.
type RecentTransactionResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Division      string    `json:"division"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

// DashboardResponse represents the response for the dashboard API.
type DashboardResponse struct {
	Period            string                      `json:"period"`
	Window            WindowResponse              `json:"window"`
	PeriodLabel       string                      `json:"period_label"`
	ActiveFilters     int                         `json:"active_filters"`
	Stats             StatsResponse               `json:"stats"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"category_breakdown"`
	Chart             []ChartBucketResponse       `json:"chart"`
	Recent            []RecentTransactionResponse `json:"recent"`
	GeneratedAt       time.Time                   `json:"generated_at"`
	LastSyncedAt      *time.Time                  `json:"last_synced_at"`
}

// CategorySummaryResponse represents the response for the category summary API.
type CategorySummaryResponse struct {
	Window      WindowResponse              `json:"window"`
	PeriodLabel string                      `json:"period_label"`
	Total       float64                     `json:"total"`
	Categories  []CategoryBreakdownResponse `json:"categories"`
}

// ChartResponse represents the response for the overview chart API.
type ChartResponse struct {
	Period  string                `json:"period"`
	Window  WindowResponse        `json:"window"`
	Buckets []ChartBucketResponse `json:"buckets"`
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	recent := make([]RecentTransactionResponse, len(output.Recent))
	for i, t := range output.Recent {
		recent[i] = RecentTransactionResponse{
			ID:            t.ID,
			Type:          string(t.Type),
			Amount:        t.Amount.String(),
			Description:   t.Description,
			Category:      string(t.Category),
			CategoryLabel: t.Category.Label(),
			Division:      string(t.Division),
			Date:          t.Date,
			CreatedAt:     t.CreatedAt,
		}
	}

	response := DashboardResponse{
		Period:        string(output.Period),
		Window:        toWindowResponse(output.Window),
		PeriodLabel:   output.PeriodLabel,
		ActiveFilters: output.ActiveFilters,
		Stats: StatsResponse{
			TotalIncome:      toFloat(output.Stats.Income),
			TotalExpense:     toFloat(output.Stats.Expense),
			Balance:          toFloat(output.Stats.Balance),
			TransactionCount: output.Stats.TransactionCount,
		},
		CategoryBreakdown: toCategoryBreakdownResponses(output.CategoryBreakdown),
		Chart:             toChartBucketResponses(output.Chart),
		Recent:            recent,
		GeneratedAt:       output.GeneratedAt,
	}
	if !output.LastSyncedAt.IsZero() {
		synced := output.LastSyncedAt
		response.LastSyncedAt = &synced
	}
	return response
}

// ToCategorySummaryResponse converts a GetCategoryBreakdownOutput to a CategorySummaryResponse DTO.
func ToCategorySummaryResponse(output *dashboard.GetCategoryBreakdownOutput) CategorySummaryResponse {
	return CategorySummaryResponse{
		Window:      toWindowResponse(output.Window),
		PeriodLabel: output.PeriodLabel,
		Total:       toFloat(output.Total),
		Categories:  toCategoryBreakdownResponses(output.Categories),
	}
}

// ToChartResponse converts a GetTrendsOutput to a ChartResponse DTO.
func ToChartResponse(output *dashboard.GetTrendsOutput) ChartResponse {
	return ChartResponse{
		Period:  string(output.Period),
		Window:  toWindowResponse(output.Window),
		Buckets: toChartBucketResponses(output.Buckets),
	}
}

func toWindowResponse(w dashboard.Window) WindowResponse {
	return WindowResponse{Start: w.Start, End: w.End}
}

func toCategoryBreakdownResponses(items []dashboard.CategoryBreakdownItem) []CategoryBreakdownResponse {
	out := make([]CategoryBreakdownResponse, len(items))
	for i, item := range items {
		out[i] = CategoryBreakdownResponse{
			Category:   string(item.Category),
			Label:      item.Label,
			Amount:     toFloat(item.Amount),
			Count:      item.Count,
			Percentage: item.Percentage,
		}
	}
	return out
}

func toChartBucketResponses(buckets []dashboard.ChartBucket) []ChartBucketResponse {
	out := make([]ChartBucketResponse, len(buckets))
	for i, b := range buckets {
		out[i] = ChartBucketResponse{
			Label:   b.Label,
			Start:   b.Start,
			End:     b.End,
			Income:  toFloat(b.Income),
			Expense: toFloat(b.Expense),
			Balance: toFloat(b.Balance),
		}
	}
	return out
}
