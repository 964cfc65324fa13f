// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// TimePeriod selects both the reporting window and the chart bucketing granularity.
type TimePeriod string

const (
	TimePeriodWeekly  TimePeriod = "weekly"
	TimePeriodMonthly TimePeriod = "monthly"
	TimePeriodYearly  TimePeriod = "yearly"
)

// DefaultTimePeriod is used when no period is selected.
const DefaultTimePeriod = TimePeriodMonthly

// IsValid reports whether p is one of the known periods.
func (p TimePeriod) IsValid() bool {
	switch p {
	case TimePeriodWeekly, TimePeriodMonthly, TimePeriodYearly:
		return true
	}
	return false
}

// FilterOptions is an optional predicate over transactions.
// A nil field places no constraint on that dimension.
type FilterOptions struct {
	Division *Division
	Category *Category
	Type     *TransactionType
	DateFrom *time.Time
	DateTo   *time.Time
}

// ActiveCount returns how many constraints are set.
func (f FilterOptions) ActiveCount() int {
	n := 0
	if f.Division != nil {
		n++
	}
	if f.Category != nil {
		n++
	}
	if f.Type != nil {
		n++
	}
	if f.DateFrom != nil {
		n++
	}
	if f.DateTo != nil {
		n++
	}
	return n
}

// Matches reports whether t satisfies every set constraint.
func (f FilterOptions) Matches(t *Transaction) bool {
	if f.Division != nil && t.Division != *f.Division {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.DateFrom != nil && t.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && t.Date.After(*f.DateTo) {
		return false
	}
	return true
}
