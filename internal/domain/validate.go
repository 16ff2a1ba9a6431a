package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// airportCodeRegex matches IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// validCabins defines the accepted cabin classes.
var validCabins = map[string]bool{
	"":                true,
	"economy":         true,
	"basic_economy":   true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
}

// IsAirportCode reports whether s looks like an IATA airport code.
func IsAirportCode(s string) bool {
	return airportCodeRegex.MatchString(s)
}

// IsValidCabin reports whether the cabin class is known (empty allowed).
func IsValidCabin(cabin string) bool {
	return validCabins[strings.ToLower(cabin)]
}

// Validate checks the structural invariants of a candidate: an ID, a
// non-negative price and at least one leg, every leg with at least one segment.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (c *FlightCandidate) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: candidate id is required", ErrInvalidRequest)
	}
	if c.Price < 0 {
		return fmt.Errorf("%w: candidate %s: price must not be negative", ErrInvalidRequest, c.ID)
	}
	if len(c.Itineraries) == 0 {
		return fmt.Errorf("%w: candidate %s: at least one itinerary is required", ErrInvalidRequest, c.ID)
	}
	for i, leg := range c.Itineraries {
		if len(leg.Segments) == 0 {
			return fmt.Errorf("%w: candidate %s: itinerary %d has no segments", ErrInvalidRequest, c.ID, i)
		}
		for j, seg := range leg.Segments {
			if !IsAirportCode(strings.ToUpper(seg.DepartureAirport)) {
				return fmt.Errorf("%w: candidate %s: itinerary %d segment %d: invalid departure airport %q",
					ErrInvalidRequest, c.ID, i, j, seg.DepartureAirport)
			}
			if !IsAirportCode(strings.ToUpper(seg.ArrivalAirport)) {
				return fmt.Errorf("%w: candidate %s: itinerary %d segment %d: invalid arrival airport %q",
					ErrInvalidRequest, c.ID, i, j, seg.ArrivalAirport)
			}
		}
	}
	return nil
}

// Validate checks enumerated values and numeric ranges of the profile.
func (p *PreferenceProfile) Validate() error {
	for _, b := range p.PreferredDepartureTimes {
		if !b.IsValid() {
			return fmt.Errorf("%w: unknown departure time bucket %q", ErrInvalidRequest, b)
		}
	}

	for amenity, level := range p.AmenityRequirements {
		if !amenity.IsValid() {
			return fmt.Errorf("%w: unknown amenity %q", ErrInvalidRequest, amenity)
		}
		if !level.IsValid() {
			return fmt.Errorf("%w: amenity %s: level must be one of: none, nice_to_have, must_have; got %q",
				ErrInvalidRequest, amenity, level)
		}
	}

	if p.MinConnectionMinutes < 0 || p.MaxConnectionMinutes < 0 ||
		p.FamilyMinConnectionMinutes < 0 || p.FamilyMaxConnectionMinutes < 0 {
		return fmt.Errorf("%w: connection minutes must not be negative", ErrInvalidRequest)
	}
	if p.MaxConnectionMinutes > 0 && p.MinConnectionMinutes > p.MaxConnectionMinutes {
		return fmt.Errorf("%w: minConnectionMinutes must not exceed maxConnectionMinutes", ErrInvalidRequest)
	}
	if p.FamilyMaxConnectionMinutes > 0 && p.FamilyMinConnectionMinutes > p.FamilyMaxConnectionMinutes {
		return fmt.Errorf("%w: familyMinConnectionMinutes must not exceed familyMaxConnectionMinutes", ErrInvalidRequest)
	}
	if p.MaxTotalTravelHours < 0 {
		return fmt.Errorf("%w: maxTotalTravelHours must not be negative", ErrInvalidRequest)
	}
	if p.MinLegroomInches < 0 {
		return fmt.Errorf("%w: minLegroomInches must not be negative", ErrInvalidRequest)
	}
	if p.DefaultCheckedBags < 0 || p.DefaultCheckedBags > 5 {
		return fmt.Errorf("%w: defaultCheckedBags must be between 0 and 5", ErrInvalidRequest)
	}
	if !IsValidCabin(p.CabinClass) {
		return fmt.Errorf("%w: cabinClass must be one of: economy, basic_economy, premium_economy, business, first; got %q",
			ErrInvalidRequest, p.CabinClass)
	}
	return nil
}

// Validate checks the passenger breakdown.
func (p *PassengerCounts) Validate() error {
	if p.Adults < 0 || p.Children < 0 || p.Infants < 0 {
		return fmt.Errorf("%w: passenger counts must not be negative", ErrInvalidRequest)
	}
	if p.Total() > 9 {
		return fmt.Errorf("%w: passengers cannot exceed 9", ErrInvalidRequest)
	}
	if p.Infants > p.Adults {
		return fmt.Errorf("%w: each lap infant needs an accompanying adult", ErrInvalidRequest)
	}
	return nil
}
