package AbstractFunctions

import (
	"math"
	"time"
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"02/01/2006",
}

// ParseDate tries the known layouts in order. Returns the zero time and
// false when nothing matches, never an error.
func ParseDate(dateStr string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDateRange resolves optional startDate/endDate query strings,
// defaulting to the current month when both are empty. Malformed values
// fall back to the defaults instead of erroring.
func ParseDateRange(startStr, endStr string, now time.Time) (time.Time, time.Time) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	start, end := monthStart, monthEnd
	if startStr != "" {
		if t, ok := ParseDate(startStr); ok {
			start = t
		}
	}
	if endStr != "" {
		if t, ok := ParseDate(endStr); ok {
			end = t
		}
	}
	if end.Before(start) {
		return monthStart, monthEnd
	}
	return start, end
}

// CeilDays is the day span between two moments, rounded up. Zero when
// to is not after from.
func CeilDays(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
