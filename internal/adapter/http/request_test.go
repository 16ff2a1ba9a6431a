package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// TestIsValidTimeFormat tests the time format validation function.
func TestIsValidTimeFormat(t *testing.T) {
	tests := []struct {
		name     string
		timeStr  string
		expected bool
	}{
		// Valid formats
		{name: "valid morning time", timeStr: "08:00", expected: true},
		{name: "valid evening time", timeStr: "18:30", expected: true},
		{name: "valid midnight", timeStr: "00:00", expected: true},
		{name: "valid end of day", timeStr: "23:59", expected: true},

		// Invalid hours and minutes
		{name: "hour too high", timeStr: "24:00", expected: false},
		{name: "hour negative", timeStr: "-01:00", expected: false},
		{name: "minute too high", timeStr: "12:60", expected: false},

		// Invalid formats
		{name: "missing colon", timeStr: "1200", expected: false},
		{name: "single digit hour", timeStr: "8:00", expected: false},
		{name: "empty string", timeStr: "", expected: false},
		{name: "text", timeStr: "noon", expected: false},
		{name: "too many parts", timeStr: "12:30:00", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isValidTimeFormat(tt.timeStr)
			assert.Equal(t, tt.expected, result, "isValidTimeFormat(%q) should be %v", tt.timeStr, tt.expected)
		})
	}
}

// TestValidateDepartureTimeRange tests departure time range validation.
func TestValidateDepartureTimeRange(t *testing.T) {
	tests := []struct {
		name        string
		timeRange   *TimeRangeDTO
		errorFields []string
	}{
		{name: "valid time range", timeRange: &TimeRangeDTO{Start: "06:00", End: "12:00"}},
		{name: "overnight window is allowed", timeRange: &TimeRangeDTO{Start: "22:00", End: "05:00"}},
		{
			name:        "missing start time",
			timeRange:   &TimeRangeDTO{End: "12:00"},
			errorFields: []string{"filters.departureTimeRange.start"},
		},
		{
			name:        "missing both",
			timeRange:   &TimeRangeDTO{},
			errorFields: []string{"filters.departureTimeRange.start", "filters.departureTimeRange.end"},
		},
		{
			name:        "invalid end format",
			timeRange:   &TimeRangeDTO{Start: "06:00", End: "25:00"},
			errorFields: []string{"filters.departureTimeRange.end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest()
			req.Filters = &FilterDTO{DepartureTimeRange: tt.timeRange}

			err := req.Validate()
			assertValidationFields(t, err, tt.errorFields)
		})
	}
}

// TestValidateDurationRange tests duration range validation.
func TestValidateDurationRange(t *testing.T) {
	tests := []struct {
		name        string
		dr          *DurationRangeDTO
		errorFields []string
	}{
		{name: "valid range", dr: &DurationRangeDTO{MinMinutes: intPtr(60), MaxMinutes: intPtr(480)}},
		{name: "max only", dr: &DurationRangeDTO{MaxMinutes: intPtr(300)}},
		{name: "equal bounds", dr: &DurationRangeDTO{MinMinutes: intPtr(90), MaxMinutes: intPtr(90)}},
		{
			name:        "negative min",
			dr:          &DurationRangeDTO{MinMinutes: intPtr(-1)},
			errorFields: []string{"filters.durationRange.minMinutes"},
		},
		{
			name:        "min above max",
			dr:          &DurationRangeDTO{MinMinutes: intPtr(500), MaxMinutes: intPtr(100)},
			errorFields: []string{"filters.durationRange"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest()
			req.Filters = &FilterDTO{DurationRange: tt.dr}

			err := req.Validate()
			assertValidationFields(t, err, tt.errorFields)
		})
	}
}

// TestValidateFilters tests the remaining filter fields.
func TestValidateFilters(t *testing.T) {
	tests := []struct {
		name        string
		filters     *FilterDTO
		errorFields []string
	}{
		{name: "nil filters", filters: nil},
		{name: "nonstop only", filters: &FilterDTO{MaxStops: intPtr(0)}},
		{name: "zero max price", filters: &FilterDTO{MaxPrice: floatPtr(0)}},
		{
			name:        "negative max price",
			filters:     &FilterDTO{MaxPrice: floatPtr(-10)},
			errorFields: []string{"filters.maxPrice"},
		},
		{
			name:        "blank airline",
			filters:     &FilterDTO{Airlines: []string{"B6", " "}},
			errorFields: []string{"filters.airlines[1]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest()
			req.Filters = tt.filters

			err := req.Validate()
			assertValidationFields(t, err, tt.errorFields)
		})
	}
}

// =====================================================
// Candidate and Profile Validation Tests
// =====================================================

func TestRankFlightsRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *RankFlightsRequest)
		errorFields []string
	}{
		{name: "valid request", mutate: func(r *RankFlightsRequest) {}},
		{
			name:        "missing id",
			mutate:      func(r *RankFlightsRequest) { r.Candidates[0].ID = "" },
			errorFields: []string{"candidates[0]"},
		},
		{
			name:        "leg without segments",
			mutate:      func(r *RankFlightsRequest) { r.Candidates[1].Itineraries = []domain.Leg{{}} },
			errorFields: []string{"candidates[1]"},
		},
		{
			name:        "negative price context",
			mutate:      func(r *RankFlightsRequest) { r.PriceContext = []float64{100, -1} },
			errorFields: []string{"priceContext[1]"},
		},
		{
			name: "unknown amenity",
			mutate: func(r *RankFlightsRequest) {
				r.Preferences.AmenityRequirements = map[domain.Amenity]domain.AmenityLevel{"jacuzzi": domain.AmenityMustHave}
			},
			errorFields: []string{"preferences"},
		},
		{
			name:        "infants without adults",
			mutate:      func(r *RankFlightsRequest) { r.Passengers = &PassengersDTO{Infants: 1} },
			errorFields: []string{"passengers"},
		},
		{
			name:   "cabin is case insensitive",
			mutate: func(r *RankFlightsRequest) { r.CabinClass = "Business" },
		},
		{
			name: "multiple errors are collected",
			mutate: func(r *RankFlightsRequest) {
				r.Candidates[0].Price = -1
				r.CabinClass = "steerage"
			},
			errorFields: []string{"candidates[0]", "cabinClass"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest()
			tt.mutate(&req)

			err := req.Validate()
			assertValidationFields(t, err, tt.errorFields)
		})
	}
}

func TestRankFlightsRequest_Validate_MessagesDropSentinel(t *testing.T) {
	req := sampleRequest()
	req.Candidates[0].ID = " "

	err := req.Validate()
	require.Error(t, err)

	verrs, ok := asValidationErrors(err)
	require.True(t, ok)
	msg := verrs.ToMap()["candidates[0]"]
	assert.Equal(t, "candidate id is required", msg)
	assert.NotContains(t, msg, "invalid request")
}

func TestRankFlightsRequest_Validate_DuplicateIDs(t *testing.T) {
	req := sampleRequest()
	req.Candidates = append(req.Candidates, sampleCandidate("b6", "B6", 300))

	err := req.Validate()
	require.Error(t, err)

	verrs, ok := asValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs.ToMap()["candidates[2].id"], `duplicate candidate id "b6" (also at index 0)`)
}

func TestRankFlightsRequest_Validate_NormalizesAirports(t *testing.T) {
	req := sampleRequest()
	seg := &req.Candidates[0].Itineraries[0].Segments[0]
	seg.DepartureAirport = " jfk"
	seg.ArrivalAirport = "lax "

	require.NoError(t, req.Validate())
	assert.Equal(t, "JFK", seg.DepartureAirport)
	assert.Equal(t, "LAX", seg.ArrivalAirport)
}

// =====================================================
// Batch and Resolve Validation Tests
// =====================================================

func TestRankBatchRequest_Validate(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		err := (&RankBatchRequest{}).Validate()
		assertValidationFields(t, err, []string{"searches"})
	})

	t.Run("fields are prefixed with the search index", func(t *testing.T) {
		bad := sampleRequest()
		bad.Candidates[1].Price = -3
		bad.Filters = &FilterDTO{MaxStops: intPtr(-2)}

		req := &RankBatchRequest{Searches: []RankFlightsRequest{sampleRequest(), bad}}
		err := req.Validate()
		assertValidationFields(t, err, []string{"searches[1].candidates[1]", "searches[1].filters.maxStops"})
	})

	t.Run("valid batch", func(t *testing.T) {
		req := &RankBatchRequest{Searches: []RankFlightsRequest{sampleRequest(), sampleRequest()}}
		assert.NoError(t, req.Validate())
	})
}

func TestResolveAirlineRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ResolveAirlineRequest{Airline: "UA123"}).Validate())

	err := (&ResolveAirlineRequest{Airline: "\t"}).Validate()
	assertValidationFields(t, err, []string{"airline"})
}

func TestValidationErrors_Error(t *testing.T) {
	empty := &ValidationErrors{}
	assert.Equal(t, "validation failed", empty.Error())
	assert.False(t, empty.HasErrors())

	errs := &ValidationErrors{}
	errs.Add("candidates", "at least one candidate is required")
	errs.Add("cabinClass", "bad cabin")
	assert.Equal(t, "at least one candidate is required", errs.Error())
	assert.Len(t, errs.ToMap(), 2)
}

// assertValidationFields checks that err reports exactly the given fields.
// An empty list expects no error.
func assertValidationFields(t *testing.T, err error, fields []string) {
	t.Helper()

	if len(fields) == 0 {
		assert.NoError(t, err)
		return
	}

	require.Error(t, err)
	verrs, ok := asValidationErrors(err)
	require.True(t, ok, "expected *ValidationErrors, got %T", err)

	got := verrs.ToMap()
	assert.Len(t, got, len(fields), "unexpected fields: %v", got)
	for _, f := range fields {
		assert.Contains(t, got, f)
	}
}
