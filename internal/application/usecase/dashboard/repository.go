// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// LedgerReader defines the read side of the local ledger used by dashboard use cases.
type LedgerReader interface {
	// Transactions returns a snapshot of every transaction held locally.
	Transactions() []*entity.Transaction

	// LastSyncedAt returns when the local ledger was last refreshed from the remote service.
	LastSyncedAt() time.Time
}

// Query is the view state shared by dashboard use cases.
type Query struct {
	Period  entity.TimePeriod
	Filters entity.FilterOptions
}

// normalize fills in the default period and validates the query.
func (q Query) normalize() (Query, error) {
	if q.Period == "" {
		q.Period = entity.DefaultTimePeriod
	}

	if !q.Period.IsValid() {
		return q, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTimePeriod,
			"period must be: weekly, monthly, or yearly",
			domainerror.ErrInvalidTimePeriod,
		)
	}

	if q.Filters.DateFrom != nil && q.Filters.DateTo != nil && q.Filters.DateTo.Before(*q.Filters.DateFrom) {
		return q, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"dateTo must not be before dateFrom",
			domainerror.ErrInvalidDateRange,
		)
	}

	return q, nil
}
