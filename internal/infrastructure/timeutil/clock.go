// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import "time"

// Clock provides an abstraction over time.Now() so that booking-window advice
// can be computed against a fixed "today" in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	at time.Time
}

// NewFixedClock creates a clock pinned to t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{at: t}
}

// NewFixedClockFromDate creates a clock pinned to midday UTC of a YYYY-MM-DD date.
// Panics if the date is invalid (for use in tests and fixtures only).
func NewFixedClockFromDate(date string) *FixedClock {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("invalid date: " + err.Error())
	}
	return &FixedClock{at: t.Add(12 * time.Hour)}
}

// Now returns the pinned time.
func (c *FixedClock) Now() time.Time {
	return c.at
}

// AdvanceDays moves the clock forward by the given number of days.
func (c *FixedClock) AdvanceDays(days int) {
	c.at = c.at.AddDate(0, 0, days)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*FixedClock)(nil)
)
