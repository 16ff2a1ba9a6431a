package usecase

import (
	"fmt"
	"strings"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// Preference keys used in domain.PreferenceMatch.
const (
	prefNonstop          = "nonstop"
	prefPreferredAirline = "preferred_airline"
	prefAvoidedAirline   = "avoided_airline"
	prefAlliance         = "alliance"
	prefDepartureTime    = "departure_time"
	prefRedEye           = "red_eye"
	prefMaxTravelTime    = "max_travel_time"
	prefConnection       = "connection_time"
	prefAmenity          = "amenity"
	prefCabin            = "cabin"
)

// preferenceMatches lists which of the traveller's stated preferences the
// itinerary satisfies. Only preferences the profile actually sets are reported.
func (s *Scorer) preferenceMatches(sc scoredCandidate, cabin string) []domain.PreferenceMatch {
	p := s.profile
	it := sc.Itinerary
	airline := sc.Identity.DisplayName(it.Candidate.PrimaryAirline())
	matches := []domain.PreferenceMatch{}

	if p.PreferNonstop {
		if it.AllNonstop() {
			matches = append(matches, domain.PreferenceMatch{Preference: prefNonstop, Positive: true, Detail: "Nonstop, as you prefer"})
		} else {
			matches = append(matches, domain.PreferenceMatch{Preference: prefNonstop,
				Detail: fmt.Sprintf("Includes %s", stopsPhrase(it.Candidate.TotalStops()))})
		}
	}

	if sc.IsAvoided {
		avoided := s.resolver.Resolve(sc.AvoidedAirline).DisplayName(sc.AvoidedAirline)
		matches = append(matches, domain.PreferenceMatch{Preference: prefAvoidedAirline, Subject: avoided,
			Detail: fmt.Sprintf("Includes %s, which you asked to avoid", avoided)})
	}

	if len(p.PreferredAirlines) > 0 {
		if sc.IsPreferred {
			matches = append(matches, domain.PreferenceMatch{Preference: prefPreferredAirline, Positive: true, Subject: airline,
				Detail: fmt.Sprintf("Flies %s, one of your preferred airlines", airline)})
		} else if !sc.IsAvoided {
			matches = append(matches, domain.PreferenceMatch{Preference: prefPreferredAirline, Subject: airline,
				Detail: fmt.Sprintf("%s is not one of your preferred airlines", airline)})
		}
	}

	if len(p.PreferredAlliances) > 0 && sc.AllianceMatch {
		matches = append(matches, domain.PreferenceMatch{Preference: prefAlliance, Positive: true, Subject: sc.Identity.Alliance,
			Detail: fmt.Sprintf("%s is a %s member", airline, sc.Identity.Alliance)})
	}

	bucket := domain.BucketForHour(it.Outbound().DepartureHour())
	if bucket == domain.BucketRedEye && !p.AllowsRedEye() {
		matches = append(matches, domain.PreferenceMatch{Preference: prefRedEye, Detail: "Red-eye departure, which you prefer to avoid"})
	} else if len(p.PreferredDepartureTimes) > 0 {
		matches = append(matches, domain.PreferenceMatch{
			Preference: prefDepartureTime,
			Positive:   p.PrefersBucket(bucket),
			Subject:    string(bucket),
			Detail:     departureDetail(bucket, p.PrefersBucket(bucket)),
		})
	}

	if p.MaxTotalTravelHours > 0 {
		longest := 0
		for _, leg := range it.Legs {
			longest = max(longest, leg.Minutes)
		}
		limit := int(p.MaxTotalTravelHours * 60)
		matches = append(matches, domain.PreferenceMatch{
			Preference: prefMaxTravelTime,
			Positive:   longest <= limit,
			Detail:     fmt.Sprintf("Longest leg takes %s (limit %s)", domain.FormatDuration(longest), domain.FormatDuration(limit)),
		})
	}

	matches = append(matches, s.connectionMatches(it)...)

	for _, amenity := range domain.AllAmenities {
		level := p.AmenityLevelFor(amenity)
		if level == domain.AmenityNone {
			continue
		}
		present := s.hasAmenity(it, amenity)
		if !present && level != domain.AmenityMustHave {
			continue
		}
		detail := fmt.Sprintf("Has %s", amenity.Label())
		if !present {
			detail = fmt.Sprintf("No %s listed", amenity.Label())
		}
		matches = append(matches, domain.PreferenceMatch{Preference: prefAmenity, Positive: present, Subject: string(amenity), Detail: detail})
	}

	if cabin != "" {
		if segCabin := mismatchedCabin(it.Candidate, cabin); segCabin != "" {
			matches = append(matches, domain.PreferenceMatch{Preference: prefCabin, Subject: segCabin,
				Detail: fmt.Sprintf("Some flights are in %s rather than %s", cabinLabel(segCabin), cabinLabel(cabin))})
		}
	}

	return matches
}

// connectionMatches flags connections outside the traveller's bounds. Family
// bounds apply in family mode.
func (s *Scorer) connectionMatches(it itinerary) []domain.PreferenceMatch {
	lo, hi := s.profile.MinConnection(), s.profile.MaxConnection()
	if s.profile.FamilyMode {
		lo, hi = s.profile.FamilyMinConnection(), s.profile.FamilyMaxConnection()
	}

	var matches []domain.PreferenceMatch
	for _, conn := range it.Connections {
		switch {
		case conn.Minutes < lo:
			matches = append(matches, domain.PreferenceMatch{Preference: prefConnection, Subject: conn.Airport,
				Detail: fmt.Sprintf("Tight %s connection at %s (you prefer at least %s)",
					domain.FormatDuration(conn.Minutes), conn.Airport, domain.FormatDuration(lo))})
		case conn.Minutes > hi:
			matches = append(matches, domain.PreferenceMatch{Preference: prefConnection, Subject: conn.Airport,
				Detail: fmt.Sprintf("Long %s layover at %s (you prefer at most %s)",
					domain.FormatDuration(conn.Minutes), conn.Airport, domain.FormatDuration(hi))})
		}
	}
	return matches
}

func departureDetail(bucket domain.TimeBucket, preferred bool) string {
	if preferred {
		return fmt.Sprintf("Departs in the %s, as you prefer", bucket.Label())
	}
	return fmt.Sprintf("Departs in the %s, outside your preferred times", bucket.Label())
}

// mismatchedCabin returns the first segment cabin that differs from the requested one.
func mismatchedCabin(c domain.FlightCandidate, cabin string) string {
	for _, seg := range c.Segments() {
		if seg.Cabin != "" && !strings.EqualFold(seg.Cabin, cabin) {
			return strings.ToLower(seg.Cabin)
		}
	}
	return ""
}

func cabinLabel(cabin string) string {
	return strings.ReplaceAll(strings.ToLower(cabin), "_", " ")
}
