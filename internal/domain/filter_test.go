package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRange_Contains(t *testing.T) {
	// 08:00 to 12:00
	morning := &TimeRange{
		Start: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	// 22:00 to 05:00, wrapping midnight
	overnight := &TimeRange{
		Start: time.Date(2025, 1, 1, 22, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 2, 5, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		timeRange *TimeRange
		testTime  time.Time
		want      bool
	}{
		{
			name:      "time within range",
			timeRange: morning,
			testTime:  time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "time at start boundary",
			timeRange: morning,
			testTime:  time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "time at end boundary",
			timeRange: morning,
			testTime:  time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "time before range",
			timeRange: morning,
			testTime:  time.Date(2026, 6, 15, 7, 30, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "time after range",
			timeRange: morning,
			testTime:  time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "overnight late evening",
			timeRange: overnight,
			testTime:  time.Date(2026, 6, 15, 23, 15, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "overnight early morning",
			timeRange: overnight,
			testTime:  time.Date(2026, 6, 15, 4, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "overnight excludes midday",
			timeRange: overnight,
			testTime:  time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "nil time range always contains",
			timeRange: nil,
			testTime:  time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.timeRange.Contains(tt.testTime))
		})
	}
}

func TestDurationRange(t *testing.T) {
	intPtr := func(i int) *int { return &i }

	tests := []struct {
		name      string
		dr        *DurationRange
		minutes   int
		wantValid bool
		wantIn    bool
	}{
		{name: "nil range", dr: nil, minutes: 300, wantValid: true, wantIn: true},
		{name: "within bounds", dr: &DurationRange{MinMinutes: intPtr(60), MaxMinutes: intPtr(400)}, minutes: 300, wantValid: true, wantIn: true},
		{name: "below minimum", dr: &DurationRange{MinMinutes: intPtr(60)}, minutes: 30, wantValid: true, wantIn: false},
		{name: "above maximum", dr: &DurationRange{MaxMinutes: intPtr(200)}, minutes: 300, wantValid: true, wantIn: false},
		{name: "inclusive maximum", dr: &DurationRange{MaxMinutes: intPtr(300)}, minutes: 300, wantValid: true, wantIn: true},
		{name: "min above max", dr: &DurationRange{MinMinutes: intPtr(500), MaxMinutes: intPtr(100)}, minutes: 300, wantValid: false, wantIn: false},
		{name: "negative minimum", dr: &DurationRange{MinMinutes: intPtr(-1)}, minutes: 300, wantValid: false, wantIn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantValid, tt.dr.IsValid())
			assert.Equal(t, tt.wantIn, tt.dr.Contains(tt.minutes))
		})
	}
}

func TestFilterOptions_IsEmpty(t *testing.T) {
	price := 100.0

	var nilOpts *FilterOptions
	assert.True(t, nilOpts.IsEmpty())
	assert.True(t, (&FilterOptions{}).IsEmpty())
	assert.True(t, (&FilterOptions{Airlines: []string{}}).IsEmpty())
	assert.False(t, (&FilterOptions{MaxPrice: &price}).IsEmpty())
	assert.False(t, (&FilterOptions{Airlines: []string{"B6"}}).IsEmpty())
}

func TestFilterOptions_MatchesCandidate(t *testing.T) {
	base := FlightCandidate{
		ID:       "test-1",
		Price:    450,
		Currency: "USD",
		Itineraries: []Leg{{Segments: []Segment{
			{DepartureAirport: "JFK", ArrivalAirport: "ORD", Airline: "B6", DepartureTime: "2026-04-10T10:00:00"},
			{DepartureAirport: "ORD", ArrivalAirport: "LAX", Airline: "B6", DepartureTime: "2026-04-10T14:00:00"},
		}}},
	}
	noTimestamp := base
	noTimestamp.Itineraries = []Leg{{Segments: []Segment{{DepartureAirport: "JFK", ArrivalAirport: "LAX", Airline: "B6"}}}}

	floatPtr := func(f float64) *float64 { return &f }
	intPtr := func(i int) *int { return &i }
	window := func(from, to int) *TimeRange {
		return &TimeRange{
			Start: time.Date(2025, 1, 1, from, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 1, to, 0, 0, 0, time.UTC),
		}
	}
	// prefixMatcher stands in for the engine's preference matcher
	prefixMatcher := func(raw string, list []string) bool {
		for _, entry := range list {
			if strings.HasPrefix(strings.ToLower(entry), "jet") && raw == "B6" {
				return true
			}
		}
		return false
	}

	tests := []struct {
		name      string
		filter    *FilterOptions
		candidate FlightCandidate
		minutes   int
		match     AirlineMatcher
		want      bool
	}{
		{name: "nil filter matches all", filter: nil, candidate: base, want: true},
		{name: "empty filter matches all", filter: &FilterOptions{}, candidate: base, want: true},
		{name: "max price passes when under limit", filter: &FilterOptions{MaxPrice: floatPtr(500)}, candidate: base, want: true},
		{name: "max price is inclusive", filter: &FilterOptions{MaxPrice: floatPtr(450)}, candidate: base, want: true},
		{name: "max price fails when over limit", filter: &FilterOptions{MaxPrice: floatPtr(400)}, candidate: base, want: false},
		{name: "max stops passes when equal", filter: &FilterOptions{MaxStops: intPtr(1)}, candidate: base, want: true},
		{name: "max stops fails when exceeded", filter: &FilterOptions{MaxStops: intPtr(0)}, candidate: base, want: false},
		{name: "airline filter case-insensitive by default", filter: &FilterOptions{Airlines: []string{" b6 "}}, candidate: base, want: true},
		{name: "airline filter fails when not matched", filter: &FilterOptions{Airlines: []string{"DL"}}, candidate: base, want: false},
		{name: "airline filter uses supplied matcher", filter: &FilterOptions{Airlines: []string{"JetBlue"}}, candidate: base, match: prefixMatcher, want: true},
		{name: "departure window passes", filter: &FilterOptions{DepartureTimeRange: window(8, 12)}, candidate: base, want: true},
		{name: "departure window fails", filter: &FilterOptions{DepartureTimeRange: window(14, 18)}, candidate: base, want: false},
		{name: "departure window needs a timestamp", filter: &FilterOptions{DepartureTimeRange: window(0, 23)}, candidate: noTimestamp, want: false},
		{name: "duration range passes", filter: &FilterOptions{DurationRange: &DurationRange{MaxMinutes: intPtr(400)}}, candidate: base, minutes: 350, want: true},
		{name: "duration range fails", filter: &FilterOptions{DurationRange: &DurationRange{MaxMinutes: intPtr(300)}}, candidate: base, minutes: 350, want: false},
		{
			name: "all criteria combined",
			filter: &FilterOptions{
				MaxPrice:           floatPtr(500),
				MaxStops:           intPtr(1),
				Airlines:           []string{"B6"},
				DepartureTimeRange: window(9, 11),
				DurationRange:      &DurationRange{MinMinutes: intPtr(300)},
			},
			candidate: base,
			minutes:   350,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.MatchesCandidate(tt.candidate, tt.minutes, tt.match))
		})
	}
}
