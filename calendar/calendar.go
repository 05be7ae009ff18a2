package calendar

import (
	"time"
)

// Midnight truncates t to 00:00 UTC on its civil date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar day n days after t.
func AddDays(t time.Time, n int) time.Time {
	return Midnight(t).AddDate(0, 0, n)
}

// DaysBetween returns the inclusive day count from a to b.
// Same date yields 1; b before a yields a non-positive count.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Hours()/24) + 1
}

// IsMonday reports whether t falls on a Monday.
func IsMonday(t time.Time) bool {
	return t.Weekday() == time.Monday
}

// MonthDay formats t for daily breakdown display, e.g. "Jan 02".
func MonthDay(t time.Time) string {
	return t.Format("Jan 02")
}

// WeekSpan is a run of consecutive trip days belonging to one calendar
// week. Start and Days are offsets/counts relative to the trip's first day.
type WeekSpan struct {
	Start int
	Days  int
}

// WeekSpans partitions a trip of n days starting on first into calendar
// weeks. A new span opens at every Monday after the first day, so the
// first span may be a short partial week when the trip does not begin on
// a Monday.
func WeekSpans(first time.Time, n int) []WeekSpan {
	if n <= 0 {
		return nil
	}
	spans := []WeekSpan{}
	start := 0
	for i := 1; i < n; i++ {
		if IsMonday(AddDays(first, i)) {
			spans = append(spans, WeekSpan{Start: start, Days: i - start})
			start = i
		}
	}
	return append(spans, WeekSpan{Start: start, Days: n - start})
}
