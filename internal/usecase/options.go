package usecase

import (
	"strings"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// RankRequest is one ranking invocation: the candidates of a single search
// and the traveller's preferences.
type RankRequest struct {
	// Candidates are the priced itineraries to rank (unordered)
	Candidates []domain.FlightCandidate

	// Profile is the traveller's preference profile
	Profile domain.PreferenceProfile

	// PriceContext optionally carries the prices of a larger search when
	// Candidates is a subset; they widen the price distribution only
	PriceContext []float64

	// Passengers sizes per-ticket prices, fees and the booking link (default 1 adult)
	Passengers *domain.PassengerCounts

	// CabinClass overrides the profile's cabin class when set
	CabinClass string

	// Filters contains optional criteria applied before scoring
	Filters *domain.FilterOptions
}

// PassengerCounts returns the passenger breakdown, defaulting to one adult.
func (r RankRequest) PassengerCounts() domain.PassengerCounts {
	if r.Passengers == nil || r.Passengers.Total() == 0 {
		return domain.PassengerCounts{Adults: 1}
	}
	return *r.Passengers
}

// Cabin returns the effective cabin class.
func (r RankRequest) Cabin() string {
	if c := strings.TrimSpace(r.CabinClass); c != "" {
		return strings.ToLower(c)
	}
	return strings.ToLower(strings.TrimSpace(r.Profile.CabinClass))
}

// WithKids reports whether connection buffers should account for children.
func (r RankRequest) WithKids() bool {
	return r.Profile.FamilyMode || r.PassengerCounts().HasKids()
}
