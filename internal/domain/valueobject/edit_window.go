// Package valueobject contains domain value objects for the finance dashboard.
package valueobject

import "time"

// DefaultEditWindowHours is how long a transaction stays editable after creation.
const DefaultEditWindowHours = 12

// EditWindow decides whether a transaction may still be modified or deleted.
// Eligibility is a pure function of createdAt and the current time; once the
// window has closed it never reopens.
type EditWindow struct {
	Hours int64
}

// DefaultEditWindow returns the 12 hour edit window.
func DefaultEditWindow() EditWindow {
	return EditWindow{Hours: DefaultEditWindowHours}
}

// NewEditWindow returns an edit window of the given size, falling back to the default for non-positive values.
func NewEditWindow(hours int) EditWindow {
	if hours <= 0 {
		return DefaultEditWindow()
	}
	return EditWindow{Hours: int64(hours)}
}

// ElapsedHours returns the whole hours between createdAt and now, truncated toward zero.
func ElapsedHours(createdAt, now time.Time) int64 {
	return int64(now.Sub(createdAt) / time.Hour)
}

// Allows reports whether a transaction created at createdAt is still editable at now.
func (w EditWindow) Allows(createdAt, now time.Time) bool {
	return ElapsedHours(createdAt, now) < w.Hours
}

// HoursRemaining returns the whole hours left before the window closes, never negative.
func (w EditWindow) HoursRemaining(createdAt, now time.Time) int64 {
	remaining := w.Hours - ElapsedHours(createdAt, now)
	if remaining < 0 {
		return 0
	}
	if remaining > w.Hours {
		// createdAt in the future (clock skew with the remote service)
		return w.Hours
	}
	return remaining
}

// ClosesAt returns the first instant at which the transaction is locked.
func (w EditWindow) ClosesAt(createdAt time.Time) time.Time {
	return createdAt.Add(time.Duration(w.Hours) * time.Hour)
}

// EditState is the editability of a single transaction.
type EditState string

const (
	EditStateEditable EditState = "editable"
	EditStateLocked   EditState = "locked"
)

// State returns Editable or Locked for the transaction at now.
func (w EditWindow) State(createdAt, now time.Time) EditState {
	if w.Allows(createdAt, now) {
		return EditStateEditable
	}
	return EditStateLocked
}
