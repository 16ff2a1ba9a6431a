// Package http provides the HTTP handler layer for the flight ranking API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// RankFlightsRequest represents the request body for ranking one search.
type RankFlightsRequest struct {
	// Candidates are the priced itineraries to rank
	Candidates []domain.FlightCandidate `json:"candidates"`

	// Preferences is the traveller's preference profile (all fields optional)
	Preferences domain.PreferenceProfile `json:"preferences"`

	// PriceContext optionally carries prices of the wider search when Candidates is a subset
	PriceContext []float64 `json:"priceContext,omitempty"`

	// Passengers breaks the party down for per-ticket prices and fees (default 1 adult)
	Passengers *PassengersDTO `json:"passengers,omitempty"`

	// CabinClass overrides preferences.cabinClass when set
	CabinClass string `json:"cabinClass,omitempty" example:"economy"`

	// Filters contains optional criteria applied before scoring
	Filters *FilterDTO `json:"filters,omitempty"`
}

// RankBatchRequest represents several independent searches ranked in one call.
type RankBatchRequest struct {
	Searches []RankFlightsRequest `json:"searches"`
}

// ResolveAirlineRequest asks for the canonical identity of a raw airline string.
type ResolveAirlineRequest struct {
	// Airline is a code, name, alias or flight number (e.g., "B61707", "jet blue")
	Airline string `json:"airline" example:"jet blue"`
}

// PassengersDTO is the passenger breakdown.
type PassengersDTO struct {
	Adults   int `json:"adults" example:"2"`
	Children int `json:"children" example:"1"`
	Infants  int `json:"infants" example:"0"`
}

// FilterDTO represents optional filters applied before scoring.
// Example: {"maxPrice": 600, "maxStops": 1, "airlines": ["B6", "Delta"], "departureTimeRange": {"start": "06:00", "end": "12:00"}}
type FilterDTO struct {
	// MaxPrice filters out candidates priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"600"`

	// MaxStops filters out candidates with more stops per leg than this value (0 = nonstop only)
	MaxStops *int `json:"maxStops,omitempty" example:"1"`

	// Airlines keeps only candidates whose primary airline matches (codes, names or aliases)
	Airlines []string `json:"airlines,omitempty" example:"B6,Delta"`

	// DepartureTimeRange keeps candidates whose first departure falls in a time window
	DepartureTimeRange *TimeRangeDTO `json:"departureTimeRange,omitempty"`

	// DurationRange filters candidates by total duration in minutes
	DurationRange *DurationRangeDTO `json:"durationRange,omitempty"`
}

// TimeRangeDTO represents a time window for filtering.
type TimeRangeDTO struct {
	// Start is the beginning of the time range (HH:MM format, e.g., "06:00")
	Start string `json:"start"`

	// End is the end of the time range (HH:MM format, e.g., "12:00")
	End string `json:"end"`
}

// DurationRangeDTO represents a duration range filter in minutes.
// Example: {"minMinutes": 60, "maxMinutes": 480} keeps trips between 1 and 8 hours.
type DurationRangeDTO struct {
	MinMinutes *int `json:"minMinutes,omitempty" example:"60"`
	MaxMinutes *int `json:"maxMinutes,omitempty" example:"480"`
}

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// addDomain records a domain validation error without its sentinel prefix.
func (v *ValidationErrors) addDomain(field string, err error) {
	msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidRequest.Error()+": ")
	v.Add(field, msg)
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request structure and returns any validation errors.
// It covers what the engine assumes of its input: candidate IDs, airports,
// non-negative prices and a well-formed profile. Unparseable times and
// durations are not rejected here; the engine tolerates them.
func (r *RankFlightsRequest) Validate() error {
	errs := &ValidationErrors{}
	r.validate("", errs)
	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *RankFlightsRequest) validate(prefix string, errs *ValidationErrors) {
	r.validateCandidates(prefix, errs)
	r.validatePriceContext(prefix, errs)

	if err := r.Preferences.Validate(); err != nil {
		errs.addDomain(prefix+"preferences", err)
	}

	if r.Passengers != nil {
		pax := domain.PassengerCounts{Adults: r.Passengers.Adults, Children: r.Passengers.Children, Infants: r.Passengers.Infants}
		if err := pax.Validate(); err != nil {
			errs.addDomain(prefix+"passengers", err)
		}
	}

	if !domain.IsValidCabin(r.CabinClass) {
		errs.Add(prefix+"cabinClass", "cabinClass must be one of: economy, basic_economy, premium_economy, business, first")
	}

	r.validateFilters(prefix, errs)
}

func (r *RankFlightsRequest) validateCandidates(prefix string, errs *ValidationErrors) {
	if len(r.Candidates) == 0 {
		errs.Add(prefix+"candidates", "at least one candidate is required")
		return
	}

	seen := make(map[string]int, len(r.Candidates))
	for i := range r.Candidates {
		c := &r.Candidates[i]
		field := fmt.Sprintf("%scandidates[%d]", prefix, i)

		if err := c.Validate(); err != nil {
			errs.addDomain(field, err)
			continue
		}
		if first, dup := seen[c.ID]; dup {
			errs.Add(field+".id", fmt.Sprintf("duplicate candidate id %q (also at index %d)", c.ID, first))
			continue
		}
		seen[c.ID] = i

		normalizeAirports(c)
	}
}

func (r *RankFlightsRequest) validatePriceContext(prefix string, errs *ValidationErrors) {
	for i, p := range r.PriceContext {
		if p < 0 {
			errs.Add(fmt.Sprintf("%spriceContext[%d]", prefix, i), "prices must not be negative")
		}
	}
}

func (r *RankFlightsRequest) validateFilters(prefix string, errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}
	prefix += "filters."

	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add(prefix+"maxPrice", "maxPrice must be a positive number")
	}

	if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
		errs.Add(prefix+"maxStops", "maxStops must be a non-negative number")
	}

	for i, airline := range r.Filters.Airlines {
		if strings.TrimSpace(airline) == "" {
			errs.Add(fmt.Sprintf("%sairlines[%d]", prefix, i), "airline must not be empty")
		}
	}

	if tr := r.Filters.DepartureTimeRange; tr != nil {
		validateTimeRange(prefix+"departureTimeRange", tr, errs)
	}

	if dr := r.Filters.DurationRange; dr != nil {
		validateDurationRange(prefix+"durationRange", dr, errs)
	}
}

func validateTimeRange(field string, tr *TimeRangeDTO, errs *ValidationErrors) {
	if tr.Start == "" {
		errs.Add(field+".start", "start time is required when a time range is specified")
	} else if !isValidTimeFormat(tr.Start) {
		errs.Add(field+".start", "start must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}

	if tr.End == "" {
		errs.Add(field+".end", "end time is required when a time range is specified")
	} else if !isValidTimeFormat(tr.End) {
		errs.Add(field+".end", "end must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}
}

func validateDurationRange(field string, dr *DurationRangeDTO, errs *ValidationErrors) {
	if dr.MinMinutes != nil && *dr.MinMinutes < 0 {
		errs.Add(field+".minMinutes", "minMinutes must be a non-negative number")
	}
	if dr.MaxMinutes != nil && *dr.MaxMinutes < 0 {
		errs.Add(field+".maxMinutes", "maxMinutes must be a non-negative number")
	}
	if dr.MinMinutes != nil && dr.MaxMinutes != nil && *dr.MinMinutes > *dr.MaxMinutes {
		errs.Add(field, "minMinutes must be less than or equal to maxMinutes")
	}
}

// Validate checks every search of the batch. Field names are prefixed with
// the search index, e.g. "searches[2].candidates[0]".
func (r *RankBatchRequest) Validate() error {
	errs := &ValidationErrors{}
	if len(r.Searches) == 0 {
		errs.Add("searches", "at least one search is required")
		return errs
	}

	for i := range r.Searches {
		r.Searches[i].validate(fmt.Sprintf("searches[%d].", i), errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the resolve request.
func (r *ResolveAirlineRequest) Validate() error {
	if strings.TrimSpace(r.Airline) == "" {
		errs := &ValidationErrors{}
		errs.Add("airline", "airline is required")
		return errs
	}
	return nil
}

// normalizeAirports upper-cases airport codes so lookups and comparisons agree.
func normalizeAirports(c *domain.FlightCandidate) {
	for li := range c.Itineraries {
		segs := c.Itineraries[li].Segments
		for si := range segs {
			segs[si].DepartureAirport = strings.ToUpper(strings.TrimSpace(segs[si].DepartureAirport))
			segs[si].ArrivalAirport = strings.ToUpper(strings.TrimSpace(segs[si].ArrivalAirport))
		}
	}
}

// isValidTimeFormat validates that a time string is in HH:MM format with valid values.
func isValidTimeFormat(timeStr string) bool {
	if !timePattern.MatchString(timeStr) {
		return false
	}

	var hour, minute int
	if _, err := fmt.Sscanf(timeStr, "%02d:%02d", &hour, &minute); err != nil {
		return false
	}

	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// asValidationErrors extracts structured validation errors from err.
func asValidationErrors(err error) (*ValidationErrors, bool) {
	var v *ValidationErrors
	ok := errors.As(err, &v)
	return v, ok
}
