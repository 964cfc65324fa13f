package adapters

import (
	"time"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// systemClock implements adapter.Clock in a fixed location.
type systemClock struct {
	loc *time.Location
}

// NewSystemClock creates a clock reporting wall time in loc. A nil loc means UTC.
func NewSystemClock(loc *time.Location) adapter.Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
