// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import "time"

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime formats a time as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatHumanDate formats a time as "Tue, Jan 2".
func FormatHumanDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of calendar days from now until target.
// Both dates are compared by their own wall-clock calendar day, so a
// departure timestamp carrying a foreign offset still counts whole days.
// The result is negative when target is in the past.
func DaysUntil(now, target time.Time) int {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// NextWeekday returns the start of the next given weekday strictly after t.
func NextWeekday(t time.Time, day time.Weekday) time.Time {
	offset := (int(day) - int(t.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return StartOfDay(t).AddDate(0, 0, offset)
}
