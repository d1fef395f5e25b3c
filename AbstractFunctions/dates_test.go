package AbstractFunctions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2026-03-15", true},
		{"2026-03-15 08:30:00", true},
		{"15/03/2026", true},
		{"not a date", false},
		{"", false},
		{"2026-13-45", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, ok := ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				assert.True(t, parsed.IsZero(), "failed parse must return the zero time")
			}
		})
	}
}

func TestParseDateRangeDefaults(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	start, end := ParseDateRange("", "", now)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.March, end.Month())

	// Garbage falls back instead of erroring.
	start, end = ParseDateRange("garbage", "alsogarbage", now)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)

	// Inverted range resets to the default month.
	start, end = ParseDateRange("2026-06-01", "2026-01-01", now)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.After(start))
}

func TestCeilDays(t *testing.T) {
	base := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, CeilDays(base, base))
	assert.Equal(t, 0, CeilDays(base, base.Add(-time.Hour)))
	assert.Equal(t, 1, CeilDays(base, base.Add(time.Hour)))
	assert.Equal(t, 1, CeilDays(base, base.Add(24*time.Hour)))
	assert.Equal(t, 2, CeilDays(base, base.Add(25*time.Hour)))
}
