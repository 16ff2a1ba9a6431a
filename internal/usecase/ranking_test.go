package usecase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// scored builds a ScoredFlight around a JFK-LAX nonstop.
func scored(id string, total int, price float64, avoided bool) domain.ScoredFlight {
	c := nonstop(id, price, "AA", "2026-04-10T08:00:00", 330)
	return domain.ScoredFlight{
		FlightCandidate:      c,
		Breakdown:            domain.ScoreBreakdown{Total: total, Nonstop: 100, TravelTime: 100, Price: 100, DepartureTime: 70, AirlineReliability: 80, ArrivalTime: 85, LayoverQuality: 100, Amenities: 70},
		IsAvoidedAirline:     avoided,
		TotalDurationMinutes: 330,
		DelayRisk:            domain.RiskMedium,
	}
}

func ids(flights []domain.ScoredFlight) []string {
	out := make([]string, len(flights))
	for i, f := range flights {
		out[i] = f.ID
	}
	return out
}

// =====================================================
// Sort Tests
// =====================================================

func TestSortScored_AvoidedPartition(t *testing.T) {
	flights := []domain.ScoredFlight{
		scored("avoided-high", 95, 100, true),
		scored("low", 40, 300, false),
		scored("avoided-low", 10, 100, true),
		scored("high", 80, 300, false),
	}

	result := sortScored(flights)

	assert.Equal(t, []string{"high", "low", "avoided-high", "avoided-low"}, ids(result))
}

func TestSortScored_TieBreakers(t *testing.T) {
	tests := []struct {
		name  string
		build func() []domain.ScoredFlight
		want  []string
	}{
		{
			name: "price ascending",
			build: func() []domain.ScoredFlight {
				return []domain.ScoredFlight{scored("b", 70, 300, false), scored("a", 70, 200, false)}
			},
			want: []string{"a", "b"},
		},
		{
			name: "duration ascending",
			build: func() []domain.ScoredFlight {
				slow, fast := scored("slow", 70, 200, false), scored("fast", 70, 200, false)
				slow.TotalDurationMinutes = 400
				return []domain.ScoredFlight{slow, fast}
			},
			want: []string{"fast", "slow"},
		},
		{
			name: "earlier departure first",
			build: func() []domain.ScoredFlight {
				late, early := scored("late", 70, 200, false), scored("early", 70, 200, false)
				late.Itineraries[0].Segments[0].DepartureTime = "2026-04-10T15:00:00"
				return []domain.ScoredFlight{late, early}
			},
			want: []string{"early", "late"},
		},
		{
			name: "missing departure sorts last",
			build: func() []domain.ScoredFlight {
				unknown, known := scored("unknown", 70, 200, false), scored("known", 70, 200, false)
				unknown.Itineraries[0].Segments[0].DepartureTime = ""
				return []domain.ScoredFlight{unknown, known}
			},
			want: []string{"known", "unknown"},
		},
		{
			name: "id ascending",
			build: func() []domain.ScoredFlight {
				return []domain.ScoredFlight{scored("b", 70, 200, false), scored("a", 70, 200, false)}
			},
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(sortScored(tt.build())))
		})
	}
}

func TestSortScored_DoesNotMutateInput(t *testing.T) {
	flights := []domain.ScoredFlight{scored("low", 40, 100, false), scored("high", 90, 100, false)}

	_ = sortScored(flights)

	assert.Equal(t, []string{"low", "high"}, ids(flights))
}

func TestSortScored_Empty(t *testing.T) {
	result := sortScored(nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

// =====================================================
// Categorize Tests
// =====================================================

func TestCategorize(t *testing.T) {
	sorted := sortScored([]domain.ScoredFlight{
		scored("best", 90, 100, false),
		scored("close", 82, 100, false),
		scored("within-25", 70, 100, false),
		scored("above-floor", 62, 100, false),
		scored("far", 50, 100, false),
		scored("avoided", 99, 100, true),
	})

	result := categorize(sorted)

	want := []struct {
		id       string
		rank     int
		category domain.RankCategory
	}{
		{"best", 1, domain.CategoryBest},
		{"close", 2, domain.CategoryGoodAlternative},
		{"within-25", 3, domain.CategoryAcceptable},
		{"above-floor", 4, domain.CategoryAcceptable},
		{"far", 5, domain.CategoryNotRecommended},
		{"avoided", 6, domain.CategoryNotRecommended},
	}
	require.Len(t, result, len(want))
	for i, w := range want {
		assert.Equal(t, w.id, result[i].ID)
		assert.Equal(t, w.rank, result[i].Rank, w.id)
		assert.Equal(t, w.category, result[i].RankCategory, w.id)
	}
}

func TestCategorize_BoundaryGaps(t *testing.T) {
	result := categorize([]domain.ScoredFlight{
		scored("top", 80, 100, false),
		scored("gap-10", 70, 100, false),
		scored("gap-25", 55, 100, false),
		scored("gap-26", 54, 100, false),
	})

	assert.Equal(t, domain.CategoryGoodAlternative, result[1].RankCategory)
	assert.Equal(t, domain.CategoryAcceptable, result[2].RankCategory)
	assert.Equal(t, domain.CategoryNotRecommended, result[3].RankCategory)
}

// =====================================================
// Ranker Tests
// =====================================================

func TestRanker_ExplanationsFollowRank(t *testing.T) {
	flights := []domain.ScoredFlight{
		scored("c", 60, 300, false),
		scored("a", 88, 250, false),
		scored("nk", 95, 90, true),
		scored("b", 80, 400, false),
		scored("d", 20, 700, false),
	}
	flights[2].PreferenceMatches = []domain.PreferenceMatch{{Preference: prefAvoidedAirline, Subject: "Spirit Airlines"}}

	result := NewRanker().Rank(flights, domain.PreferenceProfile{AvoidedAirlines: []string{"Spirit"}})

	require.Len(t, result, 5)
	topPicks := 0
	for i, f := range result {
		assert.Equal(t, i+1, f.Rank)
		assert.True(t, strings.HasPrefix(f.Explanation, fmt.Sprintf("#%d ", f.Rank)), f.Explanation)
		if strings.Contains(f.Explanation, "Top pick") {
			topPicks++
			assert.Equal(t, 0, i)
		}
	}
	assert.Equal(t, 1, topPicks)

	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "nk", result[4].ID)
	assert.Contains(t, result[4].Explanation, "Includes Spirit Airlines, an airline you asked to avoid")
	assert.True(t, strings.HasPrefix(result[1].Explanation, "#2 Strong alternative."))
	assert.True(t, strings.HasPrefix(result[2].Explanation, "#3 Acceptable option."))
	assert.True(t, strings.HasPrefix(result[3].Explanation, "#4 Not recommended."))
}

func TestRanker_DoesNotMutateInput(t *testing.T) {
	flights := []domain.ScoredFlight{scored("b", 50, 300, false), scored("a", 80, 200, false)}

	_ = NewRanker().Rank(flights, domain.PreferenceProfile{})

	assert.Equal(t, []string{"b", "a"}, ids(flights))
	assert.Empty(t, flights[0].Explanation)
	assert.Zero(t, flights[0].Rank)
}

func TestExplanationText_Strengths(t *testing.T) {
	f := scored("1", 90, 200, false)
	f.Rank = 1
	f.RankCategory = domain.CategoryBest
	f.IsPreferredAirline = true
	f.PrimaryAirline = domain.AirlineIdentity{Code: "AA", Name: "American Airlines", Known: true}
	f.DelayRisk = domain.RiskLow

	text := explanationText(f, domain.PreferenceProfile{}, newBatchStats([]domain.ScoredFlight{f}))

	assert.Equal(t, "#1 Top pick. Nonstop flight, your preferred airline (American Airlines) and low delay risk.", text)
}

func TestExplanationText_Weaknesses(t *testing.T) {
	cheap := scored("cheap", 80, 100, false)
	f := scored("1", 30, 150, false)
	f.Rank = 4
	f.RankCategory = domain.CategoryNotRecommended
	f.Breakdown.TravelTime = 10
	f.TotalDurationMinutes = 600
	f.Itineraries = oneStop("1", 150, "AA", "ORD", "2026-04-10T08:00:00", 90).Itineraries

	text := explanationText(f, domain.PreferenceProfile{}, newBatchStats([]domain.ScoredFlight{cheap, f}))

	assert.Equal(t, "#4 Not recommended. Costs 50% more than the cheapest option, long total travel time (10h) and 1 stop.", text)
}

func TestMatchExplanation(t *testing.T) {
	perfect := scored("1", 100, 100, false)
	assert.Nil(t, matchExplanation(perfect, domain.PreferenceProfile{}))

	f := scored("2", 60, 100, false)
	f.Breakdown.Nonstop = 60
	f.Breakdown.TravelTime = 30
	f.Breakdown.DepartureTime = departureRedEyeBanned
	f.Breakdown.LayoverQuality = 50
	f.Itineraries = oneStop("2", 100, "AA", "ORD", "2026-04-10T08:00:00", 90).Itineraries
	f.PrimaryAirline = domain.AirlineIdentity{Code: "AA", Name: "American Airlines", Known: true}

	m := matchExplanation(f, domain.PreferenceProfile{PreferredAirlines: []string{"Delta"}})

	require.NotNil(t, m)
	assert.Equal(t, []string{
		"American Airlines is not one of your preferred airlines",
		"Has 1 stop",
		"Longer travel time than other options",
	}, m.WhyNotPerfect)
	assert.Equal(t, []string{"Among the lowest prices"}, m.WhyStillGood)
}

func TestMatchExplanation_EmptyListsAreNotNil(t *testing.T) {
	f := scored("1", 50, 100, false)
	f.Breakdown = domain.ScoreBreakdown{Total: 50, Nonstop: 100, TravelTime: 70, DepartureTime: 70, LayoverQuality: 100,
		Price: 60, AirlineReliability: 80, ArrivalTime: 85, Amenities: 70}

	m := matchExplanation(f, domain.PreferenceProfile{})

	require.NotNil(t, m)
	assert.NotNil(t, m.WhyNotPerfect)
	assert.Empty(t, m.WhyNotPerfect)
	assert.Equal(t, []string{"Nonstop"}, m.WhyStillGood)
}

// =====================================================
// Helper Tests
// =====================================================

func TestJoinReasons(t *testing.T) {
	assert.Equal(t, "", joinReasons(nil))
	assert.Equal(t, "a", joinReasons([]string{"a"}))
	assert.Equal(t, "a and b", joinReasons([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", joinReasons([]string{"a", "b", "c"}))
}

func TestBatchStats(t *testing.T) {
	a, b, c := scored("a", 0, 100, false), scored("b", 0, 150, false), scored("c", 0, 400, false)
	a.TotalDurationMinutes, b.TotalDurationMinutes, c.TotalDurationMinutes = 300, 400, 700

	stats := newBatchStats([]domain.ScoredFlight{a, b, c})

	assert.Equal(t, 0, stats.priceGapPercent(100))
	assert.Equal(t, 50, stats.priceGapPercent(150))
	assert.Equal(t, 300, stats.priceGapPercent(400))
	assert.True(t, stats.shortTravel(300))
	assert.True(t, stats.shortTravel(400))
	assert.False(t, stats.shortTravel(401))
	assert.False(t, newBatchStats([]domain.ScoredFlight{a}).shortTravel(300))
}
