// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// ChartBucket is one point of the overview chart.
type ChartBucket struct {
	Label   string
	Start   time.Time
	End     time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// BuildOverviewChart partitions all transactions into the calendar buckets of
// the current period and sums income and expense per bucket.
//
//   - weekly: 7 days, Monday to Sunday, labelled "Mon".."Sun".
//   - monthly: one bucket per Monday-start week intersecting the current month,
//     labelled "Week N" with N the ISO week of that Monday. Buckets are clipped
//     to the month so dates outside it are never counted.
//   - yearly: 12 months, labelled "Jan".."Dec".
//
// Only the period is applied; division, category and type filters are not.
func BuildOverviewChart(all []*entity.Transaction, period entity.TimePeriod, now time.Time) []ChartBucket {
	buckets := generateBuckets(period, now)

	for _, t := range all {
		if t.IsTransfer() {
			continue
		}
		i := findBucket(buckets, t.Date.In(now.Location()))
		if i < 0 {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			buckets[i].Income = buckets[i].Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			buckets[i].Expense = buckets[i].Expense.Add(t.Amount)
		}
	}

	for i := range buckets {
		buckets[i].Balance = buckets[i].Income.Sub(buckets[i].Expense)
	}
	return buckets
}

// generateBuckets returns the empty buckets of the current period in chronological order.
func generateBuckets(period entity.TimePeriod, now time.Time) []ChartBucket {
	window := CurrentWindow(period, now)
	var buckets []ChartBucket

	switch period {
	case entity.TimePeriodWeekly:
		for day := window.Start; !day.After(window.End); day = day.AddDate(0, 0, 1) {
			buckets = append(buckets, newBucket(day.Format("Mon"), day, endOfDay(day)))
		}

	case entity.TimePeriodYearly:
		for month := window.Start; !month.After(window.End); month = month.AddDate(0, 1, 0) {
			buckets = append(buckets, newBucket(month.Format("Jan"), month, month.AddDate(0, 1, 0).Add(-time.Nanosecond)))
		}

	default:
		for weekStart := getWeekStartDate(window.Start); !weekStart.After(window.End); weekStart = weekStart.AddDate(0, 0, 7) {
			_, week := weekStart.ISOWeek()
			weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond)
			buckets = append(buckets, newBucket(
				fmt.Sprintf("Week %d", week),
				maxTime(weekStart, window.Start),
				minTime(weekEnd, window.End),
			))
		}
	}

	return buckets
}

func newBucket(label string, start, end time.Time) ChartBucket {
	return ChartBucket{
		Label:   label,
		Start:   start,
		End:     end,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Balance: decimal.Zero,
	}
}

// findBucket returns the index of the bucket containing date, or -1.
func findBucket(buckets []ChartBucket, date time.Time) int {
	for i := range buckets {
		if !date.Before(buckets[i].Start) && !date.After(buckets[i].End) {
			return i
		}
	}
	return -1
}
