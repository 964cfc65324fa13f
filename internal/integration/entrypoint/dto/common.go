// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in requests and responses.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// WindowResponse represents an inclusive time range.
type WindowResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ParseDate accepts a calendar date (interpreted in loc) or an RFC 3339 timestamp.
// endOfDay moves a calendar date to its last instant so it can be used as an
// inclusive upper bound.
func ParseDate(s string, loc *time.Location, endOfDay bool) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		if endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
