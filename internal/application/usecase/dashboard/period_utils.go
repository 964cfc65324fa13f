// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

// Window is an inclusive time range [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// CurrentWindow returns the reporting window for period anchored to now:
// the Monday-start week, the calendar month or the calendar year containing now,
// computed in now's location.
// Unknown periods fall back to the default period.
func CurrentWindow(period entity.TimePeriod, now time.Time) Window {
	loc := now.Location()

	var start, next time.Time
	switch period {
	case entity.TimePeriodWeekly:
		start = getWeekStartDate(now)
		next = start.AddDate(0, 0, 7)
	case entity.TimePeriodYearly:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(1, 0, 0)
	default:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 1, 0)
	}
	return Window{Start: start, End: next.Add(-time.Nanosecond)}
}

// GeneratePeriodLabel formats a window as "Jan 2 - Jan 8, 2006".
func GeneratePeriodLabel(w Window) string {
	return fmt.Sprintf("%s - %s", w.Start.Format("Jan 2"), w.End.Format("Jan 2, 2006"))
}

// getWeekStartDate returns the Monday of the week containing the given date.
func getWeekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, date.Location())
}

// endOfDay returns the last instant of the day starting at dayStart.
func endOfDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
