package dashboard

import (
	"testing"
	"time"

	"github.com/finance-tracker/dashboard/internal/domain/entity"
)

func TestCurrentWindow(t *testing.T) {
	tests := []struct {
		name          string
		period        entity.TimePeriod
		now           time.Time
		expectedStart time.Time
		expectedEnd   time.Time
		expectedLabel string
	}{
		{
			name:          "weekly from wednesday",
			period:        entity.TimePeriodWeekly,
			now:           testNow,
			expectedStart: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 3, 16, 23, 59, 59, 999999999, time.UTC),
			expectedLabel: "Mar 10 - Mar 16, 2025",
		},
		{
			name:          "weekly from sunday belongs to the week started the previous monday",
			period:        entity.TimePeriodWeekly,
			now:           time.Date(2025, 3, 16, 22, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 3, 16, 23, 59, 59, 999999999, time.UTC),
			expectedLabel: "Mar 10 - Mar 16, 2025",
		},
		{
			name:          "weekly spanning a year boundary",
			period:        entity.TimePeriodWeekly,
			now:           time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 1, 5, 23, 59, 59, 999999999, time.UTC),
			expectedLabel: "Dec 30 - Jan 5, 2025",
		},
		{
			name:          "monthly",
			period:        entity.TimePeriodMonthly,
			now:           testNow,
			expectedStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC),
			expectedLabel: "Mar 1 - Mar 31, 2025",
		},
		{
			name:          "monthly in a leap february",
			period:        entity.TimePeriodMonthly,
			now:           time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC),
			expectedLabel: "Feb 1 - Feb 29, 2024",
		},
		{
			name:          "yearly",
			period:        entity.TimePeriodYearly,
			now:           testNow,
			expectedStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 12, 31, 23, 59, 59, 999999999, time.UTC),
			expectedLabel: "Jan 1 - Dec 31, 2025",
		},
		{
			name:          "unknown period falls back to monthly",
			period:        entity.TimePeriod("daily"),
			now:           testNow,
			expectedStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC),
			expectedLabel: "Mar 1 - Mar 31, 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := CurrentWindow(tt.period, tt.now)
			if !w.Start.Equal(tt.expectedStart) {
				t.Errorf("Start = %v, want %v", w.Start, tt.expectedStart)
			}
			if !w.End.Equal(tt.expectedEnd) {
				t.Errorf("End = %v, want %v", w.End, tt.expectedEnd)
			}
			if got := GeneratePeriodLabel(w); got != tt.expectedLabel {
				t.Errorf("GeneratePeriodLabel() = %q, want %q", got, tt.expectedLabel)
			}
		})
	}
}

func TestCurrentWindow_UsesLocationOfNow(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	// 01:00 UTC on April 1st is still March 31st at UTC-3.
	now := time.Date(2025, 4, 1, 1, 0, 0, 0, time.UTC).In(loc)

	w := CurrentWindow(entity.TimePeriodMonthly, now)

	if w.Start.Month() != time.March || w.Start.Location() != loc {
		t.Errorf("expected a March window in %v, got %v", loc, w.Start)
	}
}

func TestGetWeekStartDate(t *testing.T) {
	for day := 10; day <= 16; day++ {
		date := time.Date(2025, 3, day, 13, 30, 0, 0, time.UTC)
		got := getWeekStartDate(date)
		want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("getWeekStartDate(%s) = %v, want %v", date.Weekday(), got, want)
		}
	}
}
