package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tm := time.Date(2025, 12, 15, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, "2025-12-15", FormatDate(tm))
}

func TestFormatTime(t *testing.T) {
	tm := time.Date(2025, 12, 15, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, "14:30", FormatTime(tm))
}

func TestFormatHumanDate(t *testing.T) {
	tm := time.Date(2025, 12, 16, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "Tue, Dec 16", FormatHumanDate(tm))
}

func TestStartOfDay_PreservesLocation(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	tm := time.Date(2025, 12, 15, 23, 59, 0, 0, loc)

	start := StartOfDay(tm)

	assert.Equal(t, time.Date(2025, 12, 15, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 12, 15, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"same day", time.Date(2025, 12, 15, 6, 0, 0, 0, time.UTC), 0},
		{"tomorrow early", time.Date(2025, 12, 16, 1, 0, 0, 0, time.UTC), 1},
		{"three weeks", time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC), 21},
		{"past", time.Date(2025, 12, 10, 8, 0, 0, 0, time.UTC), -5},
		{"foreign offset uses wall clock day", time.Date(2025, 12, 20, 8, 0, 0, 0, time.FixedZone("JST", 9*3600)), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(now, tt.target))
		})
	}
}

func TestNextWeekday(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{
			name: "monday to tuesday",
			from: time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 12, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "tuesday rolls to next week",
			from: time.Date(2025, 12, 16, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "saturday to tuesday",
			from: time.Date(2025, 12, 20, 23, 0, 0, 0, time.UTC),
			want: time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextWeekday(tt.from, time.Tuesday)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Tuesday, got.Weekday())
		})
	}
}
