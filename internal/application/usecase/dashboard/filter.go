// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"slices"
	"time"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// FilterTransactions returns the transactions dated inside the current window for period
// that satisfy every set filter option, newest first. Transactions with equal dates keep
// their relative order. The input slice is not modified.
func FilterTransactions(
	all []*entity.Transaction,
	filters entity.FilterOptions,
	period entity.TimePeriod,
	now time.Time,
) []*entity.Transaction {
	window := CurrentWindow(period, now)

	filtered := make([]*entity.Transaction, 0, len(all))
	for _, t := range all {
		if !window.Contains(t.Date) {
			continue
		}
		if !filters.Matches(t) {
			continue
		}
		filtered = append(filtered, t)
	}

	SortByDateDesc(filtered)
	return filtered
}

// SortByDateDesc orders transactions newest first, keeping ties in their current order.
func SortByDateDesc(transactions []*entity.Transaction) {
	slices.SortStableFunc(transactions, func(a, b *entity.Transaction) int {
		return b.Date.Compare(a.Date)
	})
}

// Transfers returns every transfer in all, newest first, regardless of period.
func Transfers(all []*entity.Transaction) []*entity.Transaction {
	transfers := make([]*entity.Transaction, 0)
	for _, t := range all {
		if t.IsTransfer() {
			transfers = append(transfers, t)
		}
	}
	SortByDateDesc(transfers)
	return transfers
}

// Recent returns at most n transactions from an already ordered slice.
func Recent(ordered []*entity.Transaction, n int) []*entity.Transaction {
	if n < 0 {
		n = 0
	}
	if len(ordered) <= n {
		return ordered
	}
	return ordered[:n]
}
