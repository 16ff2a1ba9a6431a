// Package testutil provides test helper functions and candidate fixtures for
// unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/timeutil"
)

// Today is the fixed "now" used by integration tests. Fixture departures
// fall about five weeks later.
const Today = "2026-03-02"

// timestampLayout is the zone-less local layout used by fixtures.
const timestampLayout = "2006-01-02T15:04:05"

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	testDataPath := filepath.Join(filepath.Dir(currentFile), "..", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// MustParseTime parses a segment timestamp (RFC3339 or zone-less local).
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, ok := domain.ParseTimestamp(value)
	if !ok {
		t.Fatalf("Failed to parse time %s", value)
	}
	return parsed
}

// FixedClock returns a clock pinned to Today.
func FixedClock() *timeutil.FixedClock {
	return timeutil.NewFixedClockFromDate(Today)
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// Segment builds a segment departing at dep (zone-less local time) and
// lasting minutes. The arrival time is derived from the duration.
func Segment(from, to, airline, dep string, minutes int) domain.Segment {
	s := domain.Segment{
		DepartureAirport: from,
		ArrivalAirport:   to,
		Airline:          airline,
		FlightNumber:     airline + "100",
		DepartureTime:    dep,
		Duration:         domain.DurationMinutes(minutes),
	}
	if t, ok := domain.ParseTimestamp(dep); ok {
		s.ArrivalTime = t.Add(time.Duration(minutes) * time.Minute).Format(timestampLayout)
	}
	return s
}

// Candidate builds a USD candidate from legs, one slice of segments per leg.
func Candidate(id string, price float64, legs ...[]domain.Segment) domain.FlightCandidate {
	c := domain.FlightCandidate{ID: id, Price: price, Currency: "USD"}
	for _, segs := range legs {
		c.Itineraries = append(c.Itineraries, domain.Leg{Segments: segs})
	}
	return c
}

// Nonstop builds a one-leg JFK-LAX candidate.
func Nonstop(id string, price float64, airline, dep string, minutes int) domain.FlightCandidate {
	return Candidate(id, price, []domain.Segment{Segment("JFK", "LAX", airline, dep, minutes)})
}

// OneStop builds a one-leg JFK-LAX candidate connecting at via after layover minutes.
func OneStop(id string, price float64, airline, via, dep string, layover int) domain.FlightCandidate {
	first := Segment("JFK", via, airline, dep, 150)
	arrived, _ := domain.ParseTimestamp(first.ArrivalTime)
	second := Segment(via, "LAX", airline, arrived.Add(time.Duration(layover)*time.Minute).Format(timestampLayout), 200)
	return Candidate(id, price, []domain.Segment{first, second})
}
