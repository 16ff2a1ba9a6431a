// Package domain contains the core business entities and rules for the flight ranking engine.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FlightCandidate is one priced itinerary option submitted for ranking.
// Candidates are treated as immutable input; the engine only produces annotated copies.
type FlightCandidate struct {
	// ID uniquely identifies the candidate within a search
	ID string `json:"id"`

	// Price is the total fare for all travellers in Currency
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`

	// Provider optionally names where the offer came from
	Provider string `json:"provider,omitempty"`

	// Itineraries holds one leg per direction (outbound, return, ...)
	Itineraries []Leg `json:"itineraries"`
}

// Leg is one directional portion of a trip made of ordered segments.
type Leg struct {
	Segments []Segment `json:"segments"`
}

// Segment is a single physical flight between two airports.
type Segment struct {
	// DepartureAirport is the IATA code of the origin airport (e.g., "JFK")
	DepartureAirport string `json:"departureAirport"`

	// ArrivalAirport is the IATA code of the destination airport (e.g., "LAX")
	ArrivalAirport string `json:"arrivalAirport"`

	// DepartureTerminal is optional and only used for connection risk
	DepartureTerminal string `json:"departureTerminal,omitempty"`

	// ArrivalTerminal is optional and only used for connection risk
	ArrivalTerminal string `json:"arrivalTerminal,omitempty"`

	// DepartureTime is the local departure timestamp (RFC3339 or zone-less ISO 8601)
	DepartureTime string `json:"departureTime,omitempty"`

	// ArrivalTime is the local arrival timestamp (RFC3339 or zone-less ISO 8601)
	ArrivalTime string `json:"arrivalTime,omitempty"`

	// Airline is a raw airline identifier: code, name, or flight-number prefix
	Airline string `json:"airline"`

	// FlightNumber is the marketing flight number (e.g., "B61707")
	FlightNumber string `json:"flightNumber,omitempty"`

	// Duration is the segment duration in minutes or a duration string
	Duration FlexDuration `json:"duration"`

	// Cabin is the optional cabin for this segment (economy, premium_economy, business, first)
	Cabin string `json:"cabin,omitempty"`

	// Amenities are free-text amenity tags (e.g., "Free Wi-Fi", "32 in legroom")
	Amenities []string `json:"amenities,omitempty"`
}

// Stops returns the number of intermediate stops on the leg.
func (l Leg) Stops() int {
	if len(l.Segments) == 0 {
		return 0
	}
	return len(l.Segments) - 1
}

// FirstSegment returns the first segment of the leg.
func (l Leg) FirstSegment() (Segment, bool) {
	if len(l.Segments) == 0 {
		return Segment{}, false
	}
	return l.Segments[0], true
}

// LastSegment returns the last segment of the leg.
func (l Leg) LastSegment() (Segment, bool) {
	if len(l.Segments) == 0 {
		return Segment{}, false
	}
	return l.Segments[len(l.Segments)-1], true
}

// PrimaryAirline returns the airline of the first segment of the first leg.
func (c FlightCandidate) PrimaryAirline() string {
	if len(c.Itineraries) == 0 {
		return ""
	}
	seg, ok := c.Itineraries[0].FirstSegment()
	if !ok {
		return ""
	}
	return seg.Airline
}

// Segments returns every segment of every leg in itinerary order.
func (c FlightCandidate) Segments() []Segment {
	var all []Segment
	for _, leg := range c.Itineraries {
		all = append(all, leg.Segments...)
	}
	return all
}

// TotalStops returns the number of stops across all legs.
func (c FlightCandidate) TotalStops() int {
	stops := 0
	for _, leg := range c.Itineraries {
		stops += leg.Stops()
	}
	return stops
}

// MaxSegmentsPerLeg returns the segment count of the longest leg.
func (c FlightCandidate) MaxSegmentsPerLeg() int {
	maxSegs := 0
	for _, leg := range c.Itineraries {
		if len(leg.Segments) > maxSegs {
			maxSegs = len(leg.Segments)
		}
	}
	return maxSegs
}

// FlexDuration is a segment duration that accepts either a number of minutes
// or a duration string in JSON.
type FlexDuration struct {
	// Raw is the original string form when the duration was given as text
	Raw string

	minutes int
	valid   bool
}

// DurationMinutes builds a FlexDuration from a number of minutes.
func DurationMinutes(minutes int) FlexDuration {
	return FlexDuration{minutes: minutes, valid: minutes >= 0}
}

// DurationString builds a FlexDuration from text such as "2h 30m" or "PT2H30M".
func DurationString(raw string) FlexDuration {
	minutes, ok := ParseDurationMinutes(raw)
	return FlexDuration{Raw: raw, minutes: minutes, valid: ok}
}

// Minutes returns the duration in minutes, or 0 when it could not be parsed.
func (d FlexDuration) Minutes() int {
	if !d.valid {
		return 0
	}
	return d.minutes
}

// Valid reports whether the duration was parsed successfully.
func (d FlexDuration) Valid() bool {
	return d.valid
}

// IsZero reports whether no duration was provided at all.
func (d FlexDuration) IsZero() bool {
	return d.Raw == "" && d.minutes == 0
}

// UnmarshalJSON accepts numbers (minutes) and strings.
func (d *FlexDuration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = FlexDuration{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DurationString(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("duration must be minutes or a duration string: %w", err)
	}
	*d = DurationMinutes(int(f))
	return nil
}

// MarshalJSON always emits minutes.
func (d FlexDuration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(d.Minutes())), nil
}

// UnmarshalYAML mirrors UnmarshalJSON for fixture files.
func (d *FlexDuration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var minutes int
	if err := unmarshal(&minutes); err == nil {
		*d = DurationMinutes(minutes)
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*d = DurationString(s)
	return nil
}

var (
	isoDurationPattern   = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
	humanDurationPattern = regexp.MustCompile(`^(?:(\d+)\s*(?:h|hr|hrs|hour|hours))?\s*(?:(\d+)\s*(?:m|min|mins|minute|minutes))?$`)
	plainMinutesPattern  = regexp.MustCompile(`^\d+$`)
)

// ParseDurationMinutes parses "150", "2h 30m", "2h30m", "45m", "3 hours" or ISO 8601
// "PT2H30M" into minutes. It returns false when the text is not recognised.
func ParseDurationMinutes(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if plainMinutesPattern.MatchString(s) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	}

	upper := strings.ToUpper(s)
	if strings.HasPrefix(upper, "P") {
		m := isoDurationPattern.FindStringSubmatch(upper)
		if m == nil || upper == "P" || upper == "PT" {
			return 0, false
		}
		return atoiOrZero(m[1])*24*60 + atoiOrZero(m[2])*60 + atoiOrZero(m[3]) + atoiOrZero(m[4])/60, true
	}

	m := humanDurationPattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, false
	}
	return atoiOrZero(m[1])*60 + atoiOrZero(m[2]), true
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// timestampLayouts are the accepted segment timestamp formats.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp parses a segment timestamp, keeping its embedded offset so that
// Hour() reports the local wall-clock hour. Zone-less values are read as local times.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDuration formats minutes as "Xh Ym", "Xh" or "Ym".
func FormatDuration(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}
