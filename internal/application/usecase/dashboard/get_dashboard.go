// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// DefaultRecentCount is the number of recent transactions shown on the dashboard.
const DefaultRecentCount = 5

// GetDashboardInput represents the input for building the dashboard.
type GetDashboardInput struct {
	Query
}

// GetDashboardOutput represents the derived state of the dashboard view.
type GetDashboardOutput struct {
	Period            entity.TimePeriod
	Window            Window
	PeriodLabel       string
	ActiveFilters     int
	Stats             Stats
	CategoryBreakdown []CategoryBreakdownItem
	Chart             []ChartBucket
	Recent            []*entity.Transaction
	GeneratedAt       time.Time
	LastSyncedAt      time.Time
}

// GetDashboardUseCase handles building the full dashboard view.
type GetDashboardUseCase struct {
	ledger      LedgerReader
	clock       adapter.Clock
	recentCount int
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(ledger LedgerReader, clock adapter.Clock, recentCount int) *GetDashboardUseCase {
	if recentCount <= 0 {
		recentCount = DefaultRecentCount
	}
	return &GetDashboardUseCase{
		ledger:      ledger,
		clock:       clock,
		recentCount: recentCount,
	}
}

// Execute filters the local ledger and derives stats, breakdown, chart and recent transactions.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	query, err := input.Query.normalize()
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	all := uc.ledger.Transactions()
	filtered := FilterTransactions(all, query.Filters, query.Period, now)
	window := CurrentWindow(query.Period, now)

	slog.DebugContext(ctx, "Dashboard computed",
		"period", query.Period,
		"total", len(all),
		"filtered", len(filtered),
		"active_filters", query.Filters.ActiveCount(),
	)

	return &GetDashboardOutput{
		Period:            query.Period,
		Window:            window,
		PeriodLabel:       GeneratePeriodLabel(window),
		ActiveFilters:     query.Filters.ActiveCount(),
		Stats:             ComputeStats(filtered),
		CategoryBreakdown: ComputeCategoryBreakdown(filtered),
		Chart:             BuildOverviewChart(all, query.Period, now),
		Recent:            Recent(filtered, uc.recentCount),
		GeneratedAt:       now,
		LastSyncedAt:      uc.ledger.LastSyncedAt(),
	}, nil
}
