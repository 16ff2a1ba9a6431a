package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestFixedClock_Now(t *testing.T) {
	fixed := time.Date(2025, 12, 15, 10, 30, 0, 0, time.UTC)
	clock := NewFixedClock(fixed)

	assert.Equal(t, fixed, clock.Now())
	assert.Equal(t, fixed, clock.Now())
}

func TestNewFixedClockFromDate(t *testing.T) {
	clock := NewFixedClockFromDate("2025-12-15")

	assert.Equal(t, time.Date(2025, 12, 15, 12, 0, 0, 0, time.UTC), clock.Now())
}

func TestNewFixedClockFromDate_Panic(t *testing.T) {
	assert.Panics(t, func() {
		NewFixedClockFromDate("15/12/2025")
	})
}

func TestFixedClock_AdvanceDays(t *testing.T) {
	clock := NewFixedClockFromDate("2025-12-30")

	clock.AdvanceDays(3)

	assert.Equal(t, time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC), clock.Now())
	assert.Equal(t, 3, DaysUntil(time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC), clock.Now()))
}
