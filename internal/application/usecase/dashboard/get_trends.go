// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// GetTrendsInput represents the input for getting the overview chart.
type GetTrendsInput struct {
	Period entity.TimePeriod
}

// GetTrendsOutput represents the output of getting the overview chart.
type GetTrendsOutput struct {
	Period  entity.TimePeriod
	Window  Window
	Buckets []ChartBucket
}

// GetTrendsUseCase handles getting income/expense buckets for the overview chart.
type GetTrendsUseCase struct {
	ledger LedgerReader
	clock  adapter.Clock
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(ledger LedgerReader, clock adapter.Clock) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		ledger: ledger,
		clock:  clock,
	}
}

// Execute buckets the whole local ledger for the selected period.
func (uc *GetTrendsUseCase) Execute(_ context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	period := input.Period
	if period == "" {
		period = entity.DefaultTimePeriod
	}
	if !period.IsValid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTimePeriod,
			"period must be: weekly, monthly, or yearly",
			domainerror.ErrInvalidTimePeriod,
		)
	}

	now := uc.clock.Now()
	return &GetTrendsOutput{
		Period:  period,
		Window:  CurrentWindow(period, now),
		Buckets: BuildOverviewChart(uc.ledger.Transactions(), period, now),
	}, nil
}
