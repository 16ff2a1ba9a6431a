package domain

import (
	"strings"
	"time"
)

// FilterOptions defines optional filters applied to candidates before scoring.
// Filtered-out candidates still contribute their price to the price context.
type FilterOptions struct {
	// MaxPrice filters out candidates priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops filters out candidates with more stops than this on any leg
	// 0 = nonstop only, 1 = max 1 stop per leg, etc.
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines keeps only candidates whose primary airline matches one of these
	// Empty slice means no filtering by airline
	Airlines []string `json:"airlines,omitempty"`

	// DepartureTimeRange keeps candidates whose first departure falls in the window
	DepartureTimeRange *TimeRange `json:"departureTimeRange,omitempty"`

	// DurationRange filters candidates by total duration in minutes
	DurationRange *DurationRange `json:"durationRange,omitempty"`
}

// AirlineMatcher decides whether a raw airline string matches an entry in a list.
type AirlineMatcher func(raw string, list []string) bool

// TimeRange represents a time-of-day window for filtering.
type TimeRange struct {
	// Start is the beginning of the time range (inclusive)
	Start time.Time `json:"start"`

	// End is the end of the time range (inclusive)
	End time.Time `json:"end"`
}

// DurationRange represents a duration range filter for candidates.
type DurationRange struct {
	// MinMinutes is the minimum acceptable total duration in minutes (inclusive)
	MinMinutes *int `json:"minMinutes,omitempty"`

	// MaxMinutes is the maximum acceptable total duration in minutes (inclusive)
	MaxMinutes *int `json:"maxMinutes,omitempty"`
}

// IsValid checks if the duration range is valid.
// Returns false if min > max, or if any values are negative.
func (dr *DurationRange) IsValid() bool {
	if dr == nil {
		return true
	}

	if dr.MinMinutes != nil && *dr.MinMinutes < 0 {
		return false
	}
	if dr.MaxMinutes != nil && *dr.MaxMinutes < 0 {
		return false
	}

	if dr.MinMinutes != nil && dr.MaxMinutes != nil && *dr.MinMinutes > *dr.MaxMinutes {
		return false
	}

	return true
}

// Contains checks if a given duration (in minutes) falls within the range.
func (dr *DurationRange) Contains(durationMinutes int) bool {
	if dr == nil {
		return true
	}

	if dr.MinMinutes != nil && durationMinutes < *dr.MinMinutes {
		return false
	}
	if dr.MaxMinutes != nil && durationMinutes > *dr.MaxMinutes {
		return false
	}

	return true
}

// Contains checks if the time-of-day of t falls within the range.
// Windows that wrap midnight (e.g., 22:00-05:00) are supported.
func (tr *TimeRange) Contains(t time.Time) bool {
	if tr == nil {
		return true
	}
	tMinutes := t.Hour()*60 + t.Minute()
	startMinutes := tr.Start.Hour()*60 + tr.Start.Minute()
	endMinutes := tr.End.Hour()*60 + tr.End.Minute()

	if startMinutes <= endMinutes {
		return tMinutes >= startMinutes && tMinutes <= endMinutes
	}
	return tMinutes >= startMinutes || tMinutes <= endMinutes
}

// IsEmpty reports whether no filter is set.
func (f *FilterOptions) IsEmpty() bool {
	return f == nil || (f.MaxPrice == nil && f.MaxStops == nil && len(f.Airlines) == 0 &&
		f.DepartureTimeRange == nil && f.DurationRange == nil)
}

// MatchesCandidate checks if a candidate matches all the filter criteria.
// totalMinutes is the candidate's summed segment duration. When match is nil,
// airlines are compared case-insensitively.
func (f *FilterOptions) MatchesCandidate(c FlightCandidate, totalMinutes int, match AirlineMatcher) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && c.Price > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && c.MaxSegmentsPerLeg()-1 > *f.MaxStops {
		return false
	}

	if len(f.Airlines) > 0 {
		if match == nil {
			match = equalFoldAny
		}
		if !match(c.PrimaryAirline(), f.Airlines) {
			return false
		}
	}

	if f.DepartureTimeRange != nil {
		dep, ok := c.firstDeparture()
		if !ok || !f.DepartureTimeRange.Contains(dep) {
			return false
		}
	}

	if f.DurationRange != nil && !f.DurationRange.Contains(totalMinutes) {
		return false
	}

	return true
}

func (c FlightCandidate) firstDeparture() (time.Time, bool) {
	if len(c.Itineraries) == 0 {
		return time.Time{}, false
	}
	seg, ok := c.Itineraries[0].FirstSegment()
	if !ok {
		return time.Time{}, false
	}
	return ParseTimestamp(seg.DepartureTime)
}

func equalFoldAny(raw string, list []string) bool {
	for _, entry := range list {
		if strings.EqualFold(strings.TrimSpace(entry), strings.TrimSpace(raw)) {
			return true
		}
	}
	return false
}
