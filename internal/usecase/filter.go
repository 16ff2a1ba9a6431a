package usecase

import (
	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// applyFilters returns the itineraries that pass every filter criterion.
//
// Behavior:
//   - Returns the original slice if opts is nil or empty (no filtering)
//   - Airlines are compared through the preference matcher, so codes, names
//     and aliases all work
//   - Does NOT mutate the original slice
//   - Performance is O(n*m) where n = itineraries, m = airline filter entries
func applyFilters(its []itinerary, opts *domain.FilterOptions, matcher *PreferenceMatcher) []itinerary {
	if opts.IsEmpty() {
		return its
	}

	var match domain.AirlineMatcher
	if matcher != nil {
		match = matcher.Matches
	}

	result := make([]itinerary, 0, len(its))
	for _, it := range its {
		if opts.MatchesCandidate(it.Candidate, it.SegmentMinutes, match) {
			result = append(result, it)
		}
	}
	return result
}
