// Package usecase provides the flight ranking engine: airline resolution,
// preference matching, scoring, risk and cost analysis, price insight and
// rank-consistent explanations.
package usecase

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// Category thresholds relative to the top non-avoided score.
const (
	goodAlternativeWithin = 10
	acceptableWithin      = 25
	acceptableFloor       = 60
)

// Ranker turns scored flights into the final display order. Each stage
// returns a new slice and never mutates its input.
type Ranker struct{}

// NewRanker creates a Ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank runs sort, categorize and explain in that order.
func (r *Ranker) Rank(flights []domain.ScoredFlight, profile domain.PreferenceProfile) []domain.ScoredFlight {
	return explain(categorize(sortScored(flights)), profile)
}

// sortScored orders flights under the avoided-airline partition.
//
// Ordering:
//   - every non-avoided flight precedes every avoided flight
//   - within a partition, adjusted total score descending
//   - ties: price ascending, total duration ascending, first departure
//     ascending (missing timestamps last), ID ascending
//
// Behavior:
//   - Returns empty slice for empty input
//   - Does NOT mutate the original flights slice
func sortScored(flights []domain.ScoredFlight) []domain.ScoredFlight {
	result := make([]domain.ScoredFlight, len(flights))
	copy(result, flights)

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.IsAvoidedAirline != b.IsAvoidedAirline {
			return !a.IsAvoidedAirline
		}
		if a.Breakdown.Total != b.Breakdown.Total {
			return a.Breakdown.Total > b.Breakdown.Total
		}
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		if a.TotalDurationMinutes != b.TotalDurationMinutes {
			return a.TotalDurationMinutes < b.TotalDurationMinutes
		}
		if da, db := departureSortKey(a.FlightCandidate), departureSortKey(b.FlightCandidate); !da.Equal(db) {
			return da.Before(db)
		}
		return a.ID < b.ID
	})

	return result
}

// farFuture sorts flights without a departure timestamp last.
var farFuture = time.Date(9999, time.December, 31, 23, 59, 0, 0, time.UTC)

// departureSortKey returns the first departure, or farFuture when missing.
func departureSortKey(c domain.FlightCandidate) time.Time {
	if len(c.Itineraries) == 0 {
		return farFuture
	}
	seg, ok := c.Itineraries[0].FirstSegment()
	if !ok {
		return farFuture
	}
	t, ok := domain.ParseTimestamp(seg.DepartureTime)
	if !ok {
		return farFuture
	}
	return t
}

// categorize assigns rank numbers and categories from sorted position.
// Non-avoided flights are numbered 1..k; avoided flights continue at k+1 and
// are always not_recommended.
func categorize(sorted []domain.ScoredFlight) []domain.ScoredFlight {
	result := make([]domain.ScoredFlight, len(sorted))
	copy(result, sorted)

	top := 0
	for i := range result {
		f := &result[i]
		f.Rank = i + 1

		if f.IsAvoidedAirline {
			f.RankCategory = domain.CategoryNotRecommended
			continue
		}
		if i == 0 {
			top = f.Breakdown.Total
			f.RankCategory = domain.CategoryBest
			continue
		}

		gap := top - f.Breakdown.Total
		switch {
		case gap <= goodAlternativeWithin:
			f.RankCategory = domain.CategoryGoodAlternative
		case gap <= acceptableWithin || f.Breakdown.Total >= acceptableFloor:
			f.RankCategory = domain.CategoryAcceptable
		default:
			f.RankCategory = domain.CategoryNotRecommended
		}
	}

	return result
}

// batchStats are the batch-level figures explanations compare against.
type batchStats struct {
	minPrice    float64
	minDuration int
	maxDuration int
}

func newBatchStats(flights []domain.ScoredFlight) batchStats {
	var s batchStats
	for i, f := range flights {
		if i == 0 || f.Price < s.minPrice {
			s.minPrice = f.Price
		}
		if i == 0 || f.TotalDurationMinutes < s.minDuration {
			s.minDuration = f.TotalDurationMinutes
		}
		if i == 0 || f.TotalDurationMinutes > s.maxDuration {
			s.maxDuration = f.TotalDurationMinutes
		}
	}
	return s
}

// shortTravel reports a duration in the fastest quarter of the batch range.
func (s batchStats) shortTravel(minutes int) bool {
	if s.maxDuration == s.minDuration {
		return false
	}
	return float64(minutes-s.minDuration) <= float64(s.maxDuration-s.minDuration)*0.25
}

// priceGapPercent returns how far price sits above the cheapest option.
func (s batchStats) priceGapPercent(price float64) int {
	if s.minPrice <= 0 || price <= s.minPrice {
		return 0
	}
	return int(math.Round((price - s.minPrice) / s.minPrice * 100))
}

// joinReasons renders ["a", "b", "c"] as "a, b and c".
func joinReasons(reasons []string) string {
	switch len(reasons) {
	case 0:
		return ""
	case 1:
		return reasons[0]
	default:
		return strings.Join(reasons[:len(reasons)-1], ", ") + " and " + reasons[len(reasons)-1]
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
