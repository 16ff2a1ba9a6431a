package usecase

import (
	"math"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// Weights are the per-dimension weights of the aggregate score.
type Weights struct {
	Nonstop            int
	TravelTime         int
	LayoverQuality     int
	DepartureTime      int
	ArrivalTime        int
	AirlineReliability int
	Price              int
	Amenities          int
}

// DefaultWeights are the fixed production weights. They sum to 100.
var DefaultWeights = Weights{
	Nonstop:            22,
	TravelTime:         18,
	LayoverQuality:     8,
	DepartureTime:      10,
	ArrivalTime:        5,
	AirlineReliability: 14,
	Price:              15,
	Amenities:          8,
}

// Sum returns the total of all weights.
func (w Weights) Sum() int {
	return w.Nonstop + w.TravelTime + w.LayoverQuality + w.DepartureTime +
		w.ArrivalTime + w.AirlineReliability + w.Price + w.Amenities
}

// Aggregate returns round(sum(dimension*weight) / 100).
func (w Weights) Aggregate(b domain.ScoreBreakdown) int {
	sum := b.Nonstop*w.Nonstop +
		b.TravelTime*w.TravelTime +
		b.LayoverQuality*w.LayoverQuality +
		b.DepartureTime*w.DepartureTime +
		b.ArrivalTime*w.ArrivalTime +
		b.AirlineReliability*w.AirlineReliability +
		b.Price*w.Price +
		b.Amenities*w.Amenities
	return int(math.Round(float64(sum) / 100))
}

// Post-aggregation adjustments, applied in this order.
const (
	AvoidedAirlinePenalty = 50
	PreferredAirlineBoost = 15
	HighPriceTierPenalty  = 5
)

// Dimension rule constants.
const (
	nonstopAllSingle      = 100
	nonstopOneConnection  = 60
	nonstopMultiConnect   = 30
	nonstopPreferPenalty  = 30
	departurePreferred    = 100
	departureNotPreferred = 50
	departureNoPreference = 70
	departureRedEyeBanned = 10
	arrivalLate           = 50
	arrivalEarly          = 60
	arrivalNormal         = 85
	preferredReliability  = 20
	allianceReliability   = 10
	amenityBase           = 70
	amenityPresentBonus   = 10
	amenityMissingPenalty = 25
	legroomAboveAverage   = 2
)

// Scorer computes the eight dimension scores for one ranking invocation.
// Price and travel-time ranges are fixed at construction from the batch.
type Scorer struct {
	weights  Weights
	profile  domain.PreferenceProfile
	resolver *AirlineResolver
	matcher  *PreferenceMatcher
	airports domain.AirportDirectory

	minPrice, maxPrice     float64
	minMinutes, maxMinutes int
	legroomThreshold       float64
}

// scoredCandidate is the scorer's output for one itinerary, before adjustments.
type scoredCandidate struct {
	Itinerary   itinerary
	Identity    domain.AirlineIdentity
	Breakdown   domain.ScoreBreakdown
	Aggregate   int
	IsPreferred bool
	IsAvoided   bool
	// AvoidedAirline is the raw airline string that triggered the avoided flag
	AvoidedAirline string
	AllianceMatch  bool
}

// newScorer prepares a scorer for the given batch. prices is the full price
// distribution (batch plus any external context).
func newScorer(weights Weights, profile domain.PreferenceProfile, resolver *AirlineResolver,
	matcher *PreferenceMatcher, airports domain.AirportDirectory, batch []itinerary, prices []float64) *Scorer {
	s := &Scorer{
		weights:  weights,
		profile:  profile,
		resolver: resolver,
		matcher:  matcher,
		airports: airports,
	}

	s.minPrice, s.maxPrice = floatRange(prices)

	legroomSum, legroomCount := 0, 0
	for i, it := range batch {
		if i == 0 || it.SegmentMinutes < s.minMinutes {
			s.minMinutes = it.SegmentMinutes
		}
		if i == 0 || it.SegmentMinutes > s.maxMinutes {
			s.maxMinutes = it.SegmentMinutes
		}
		if it.LegroomInches > 0 {
			legroomSum += it.LegroomInches
			legroomCount++
		}
	}

	switch {
	case profile.MinLegroomInches > 0:
		s.legroomThreshold = float64(profile.MinLegroomInches)
	case legroomCount > 0:
		s.legroomThreshold = float64(legroomSum)/float64(legroomCount) + legroomAboveAverage
	}

	return s
}

// score computes every dimension for one itinerary.
func (s *Scorer) score(it itinerary) scoredCandidate {
	primary := it.Candidate.PrimaryAirline()
	sc := scoredCandidate{
		Itinerary: it,
		Identity:  s.resolver.Resolve(primary),
	}

	for _, airline := range it.Airlines {
		if s.matcher.Matches(airline, s.profile.AvoidedAirlines) {
			sc.IsAvoided = true
			sc.AvoidedAirline = airline
			break
		}
	}
	sc.IsPreferred = !sc.IsAvoided && s.matcher.Matches(primary, s.profile.PreferredAirlines)
	sc.AllianceMatch = allianceMatches(sc.Identity.Alliance, s.profile.PreferredAlliances)

	sc.Breakdown = domain.ScoreBreakdown{
		Nonstop:            clampScore(s.nonstopScore(it)),
		TravelTime:         inverseLinear(float64(it.SegmentMinutes), float64(s.minMinutes), float64(s.maxMinutes)),
		LayoverQuality:     clampScore(s.layoverScore(it)),
		DepartureTime:      clampScore(s.departureScore(it)),
		ArrivalTime:        clampScore(arrivalScore(it.Outbound().ArrivalHour())),
		AirlineReliability: clampScore(s.reliabilityScore(sc)),
		Price:              inverseLinear(it.Candidate.Price, s.minPrice, s.maxPrice),
		Amenities:          clampScore(s.amenityScore(it)),
	}
	sc.Aggregate = clampScore(s.weights.Aggregate(sc.Breakdown))

	return sc
}

func (s *Scorer) nonstopScore(it itinerary) int {
	var score int
	switch maxSegs := it.Candidate.MaxSegmentsPerLeg(); {
	case maxSegs <= 1:
		score = nonstopAllSingle
	case maxSegs <= 2:
		score = nonstopOneConnection
	default:
		score = nonstopMultiConnect
	}
	if s.profile.PreferNonstop && !it.AllNonstop() {
		score -= nonstopPreferPenalty
	}
	return score
}

func (s *Scorer) layoverScore(it itinerary) int {
	if len(it.Connections) == 0 {
		return 100
	}
	worst := 100
	for _, conn := range it.Connections {
		if q := airportQuality(s.airports, conn.Airport); q < worst {
			worst = q
		}
	}
	return worst
}

func (s *Scorer) departureScore(it itinerary) int {
	bucket := domain.BucketForHour(it.Outbound().DepartureHour())
	switch {
	case bucket == domain.BucketRedEye && !s.profile.AllowsRedEye():
		return departureRedEyeBanned
	case len(s.profile.PreferredDepartureTimes) == 0:
		return departureNoPreference
	case s.profile.PrefersBucket(bucket):
		return departurePreferred
	default:
		return departureNotPreferred
	}
}

func arrivalScore(hour int) int {
	switch {
	case hour >= 22:
		return arrivalLate
	case hour <= 6:
		return arrivalEarly
	default:
		return arrivalNormal
	}
}

func (s *Scorer) reliabilityScore(sc scoredCandidate) int {
	if sc.IsAvoided {
		return 0
	}
	score := sc.Identity.ReliabilityOrDefault()
	if sc.IsPreferred {
		score = min(score+preferredReliability, 100)
	}
	if sc.AllianceMatch {
		score = min(score+allianceReliability, 100)
	}
	return score
}

func (s *Scorer) amenityScore(it itinerary) int {
	score := amenityBase
	for _, amenity := range domain.AllAmenities {
		level := s.profile.AmenityLevelFor(amenity)
		if level == domain.AmenityNone {
			continue
		}
		present := s.hasAmenity(it, amenity)
		switch {
		case present:
			score += amenityPresentBonus
		case level == domain.AmenityMustHave:
			score -= amenityMissingPenalty
		}
	}
	return score
}

// hasAmenity reports whether the itinerary advertises the amenity. Legroom
// also counts when the advertised inches reach the threshold.
func (s *Scorer) hasAmenity(it itinerary, amenity domain.Amenity) bool {
	if it.Amenities[amenity] {
		return true
	}
	if amenity == domain.AmenityLegroom && it.LegroomInches > 0 && s.legroomThreshold > 0 {
		return float64(it.LegroomInches) >= s.legroomThreshold
	}
	return false
}

// allianceMatches compares an airline's alliance with the preferred list by
// normalized whole words, so "Star" matches "Star Alliance".
func allianceMatches(alliance string, preferred []string) bool {
	a := normalizeKey(alliance)
	if a == "" {
		return false
	}
	for _, p := range preferred {
		n := normalizeKey(p)
		if n == "" {
			continue
		}
		if a == n || containsWords(a, n) || containsWords(n, a) {
			return true
		}
	}
	return false
}

// inverseLinear maps v onto 100 at min and 0 at max. A zero range counts as 1.
func inverseLinear(v, lo, hi float64) int {
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}
	return clampScore(int(math.Round(100 - (v-lo)/rng*100)))
}

func floatRange(values []float64) (lo, hi float64) {
	for i, v := range values {
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}
	return lo, hi
}

func clampScore(v int) int {
	return max(0, min(100, v))
}
