package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/timeutil"
)

// Default limits.
const (
	DefaultMaxCandidates        = 500
	DefaultMaxPreferenceEntries = 50
	DefaultBatchMaxSearches     = 10
	DefaultBatchConcurrency     = 4
)

//go:generate mockgen -source=ranking_usecase.go -destination=mock_ranking_usecase.go -package=usecase

// FlightRankingUseCase defines the flight ranking operations.
type FlightRankingUseCase interface {
	// Rank scores, sorts, categorizes and explains the candidates of one search.
	Rank(ctx context.Context, req RankRequest) (*domain.RankResponse, error)

	// RankBatch ranks independent searches concurrently. Results keep request order.
	RankBatch(ctx context.Context, reqs []RankRequest) ([]*domain.RankResponse, error)

	// ResolveAirline returns the canonical identity of a raw airline string.
	ResolveAirline(raw string) domain.AirlineIdentity
}

// Config contains configuration options for the use case.
type Config struct {
	// MaxCandidates bounds one search; cost grows as candidates x preference entries
	MaxCandidates        int
	MaxPreferenceEntries int
	BatchMaxSearches     int
	BatchConcurrency     int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxCandidates:        DefaultMaxCandidates,
		MaxPreferenceEntries: DefaultMaxPreferenceEntries,
		BatchMaxSearches:     DefaultBatchMaxSearches,
		BatchConcurrency:     DefaultBatchConcurrency,
	}
}

// flightRankingUseCase implements FlightRankingUseCase. Its only shared state
// is read-only reference data; every call builds its own resolver cache.
type flightRankingUseCase struct {
	index    *AirlineIndex
	airports domain.AirportDirectory
	clock    timeutil.Clock
	log      *logger.Logger
	weights  Weights
	ranker   *Ranker
	config   Config
}

// NewFlightRankingUseCase creates a FlightRankingUseCase over the given
// reference data. If config is nil, default limits are used. A nil clock
// uses the wall clock and a nil logger discards output.
func NewFlightRankingUseCase(airlines domain.AirlineDirectory, airports domain.AirportDirectory,
	clock timeutil.Clock, log *logger.Logger, config *Config) FlightRankingUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.MaxCandidates > 0 {
			cfg.MaxCandidates = config.MaxCandidates
		}
		if config.MaxPreferenceEntries > 0 {
			cfg.MaxPreferenceEntries = config.MaxPreferenceEntries
		}
		if config.BatchMaxSearches > 0 {
			cfg.BatchMaxSearches = config.BatchMaxSearches
		}
		if config.BatchConcurrency > 0 {
			cfg.BatchConcurrency = config.BatchConcurrency
		}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	return &flightRankingUseCase{
		index:    NewAirlineIndex(airlines),
		airports: airports,
		clock:    clock,
		log:      log.OrNop(),
		weights:  DefaultWeights,
		ranker:   NewRanker(),
		config:   cfg,
	}
}

// Rank implements FlightRankingUseCase.Rank.
func (uc *flightRankingUseCase) Rank(ctx context.Context, req RankRequest) (*domain.RankResponse, error) {
	startTime := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := uc.checkLimits(req); err != nil {
		return nil, err
	}

	searchID := uuid.NewString()
	log := uc.log.FromContext(ctx).WithSearchID(searchID)

	resolver := uc.index.NewResolver()
	matcher := NewPreferenceMatcher(resolver)
	pax := req.PassengerCounts()
	cabin := req.Cabin()

	all := make([]itinerary, len(req.Candidates))
	prices := make([]float64, 0, len(req.Candidates)+len(req.PriceContext))
	for i, c := range req.Candidates {
		all[i] = analyzeItinerary(c, log)
		prices = append(prices, c.Price)
	}
	prices = append(prices, req.PriceContext...)

	filtered := applyFilters(all, req.Filters, matcher)

	scorer := newScorer(uc.weights, req.Profile, resolver, matcher, uc.airports, filtered, prices)
	risks := NewRiskAnalyzer(uc.airports, resolver)
	costs := NewHiddenCostDetector(resolver, uc.airports)
	insights := NewPriceInsightEngine(uc.clock, uc.airports)
	dist := newPriceDistribution(prices)

	scored := make([]domain.ScoredFlight, 0, len(filtered))
	for _, it := range filtered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scored = append(scored, uc.annotate(it, scorer, risks, costs, insights, dist, req, pax, cabin))
	}

	ranked := uc.ranker.Rank(scored, req.Profile)

	response := domain.NewRankResponse(ranked, domain.RankMetadata{
		SearchID:        searchID,
		TotalCandidates: len(req.Candidates),
		FilteredOut:     len(req.Candidates) - len(filtered),
		RankingTimeMs:   time.Since(startTime).Milliseconds(),
	})

	log.Debug().
		Int("candidates", response.Metadata.TotalCandidates).
		Int("filtered_out", response.Metadata.FilteredOut).
		Int("avoided", response.Metadata.AvoidedResults).
		Int64("elapsed_ms", response.Metadata.RankingTimeMs).
		Msg("ranking completed")

	return &response, nil
}

// annotate scores one itinerary and attaches every independent signal.
func (uc *flightRankingUseCase) annotate(it itinerary, scorer *Scorer, risks *RiskAnalyzer,
	costs *HiddenCostDetector, insights *PriceInsightEngine, dist priceDistribution,
	req RankRequest, pax domain.PassengerCounts, cabin string) domain.ScoredFlight {
	sc := scorer.score(it)
	outbound := it.Outbound()

	insight := insights.Insight(it.Candidate.Price, dist, outbound.Origin, outbound.Destination,
		outbound.Departure, outbound.HasDeparture)

	total, penalty, boost, tierPenalty := applyAdjustments(sc.Aggregate, sc.IsAvoided, sc.IsPreferred,
		insight.Level == domain.PriceHigh)
	breakdown := sc.Breakdown
	breakdown.Total = total

	delayLevel, delayPoints := risks.DelayRisk(it)
	var stress *int
	if req.Profile.FamilyMode {
		s := risks.FamilyStress(it, req.Profile)
		stress = &s
	}

	hidden, hiddenTotal := costs.Detect(it, req.Profile, pax.Ticketed(), cabin)

	return domain.ScoredFlight{
		FlightCandidate:      it.Candidate,
		PrimaryAirline:       sc.Identity,
		Breakdown:            breakdown,
		IsPreferredAirline:   sc.IsPreferred,
		IsAvoidedAirline:     sc.IsAvoided,
		AvoidedPenalty:       penalty,
		PreferredBoost:       boost,
		PriceTierPenalty:     tierPenalty,
		DelayRisk:            delayLevel,
		DelayRiskPoints:      delayPoints,
		FamilyStressScore:    stress,
		HiddenCosts:          hidden,
		ConnectionRisks:      risks.ConnectionRisks(it, req.WithKids()),
		PreferenceMatches:    scorer.preferenceMatches(sc, cabin),
		PriceInsight:         insight,
		HiddenCostTotal:      hiddenTotal,
		EstimatedTotalPrice:  estimatedTotal(it.Candidate, hiddenTotal),
		PricePerTicket:       pricePerTicket(it.Candidate.Price, pax),
		BookingURL:           bookingURL(it.Candidate, pax, cabin),
		TotalDurationMinutes: it.SegmentMinutes,
	}
}

// applyAdjustments applies, in order, the avoided-airline penalty, the
// preferred-airline boost and the high-price-tier penalty, and reports the
// amounts actually applied after clamping.
func applyAdjustments(aggregate int, avoided, preferred, highPrice bool) (total, penalty, boost, tierPenalty int) {
	total = aggregate
	if avoided {
		next := max(total-AvoidedAirlinePenalty, 0)
		penalty, total = total-next, next
	}
	if preferred {
		next := min(total+PreferredAirlineBoost, 100)
		boost, total = next-total, next
	}
	if highPrice {
		next := max(total-HighPriceTierPenalty, 0)
		tierPenalty, total = total-next, next
	}
	return total, penalty, boost, tierPenalty
}

// checkLimits rejects batches the engine will not rank.
func (uc *flightRankingUseCase) checkLimits(req RankRequest) error {
	if len(req.Candidates) == 0 {
		return domain.ErrNoCandidates
	}
	if len(req.Candidates) > uc.config.MaxCandidates {
		return fmt.Errorf("%w: got %d, limit is %d", domain.ErrTooManyCandidates, len(req.Candidates), uc.config.MaxCandidates)
	}
	p := req.Profile
	if n := max(len(p.PreferredAirlines), len(p.AvoidedAirlines), len(p.PreferredAlliances)); n > uc.config.MaxPreferenceEntries {
		return fmt.Errorf("%w: preference lists are limited to %d entries", domain.ErrInvalidRequest, uc.config.MaxPreferenceEntries)
	}
	return nil
}

// RankBatch implements FlightRankingUseCase.RankBatch. The first failing
// search cancels the rest.
func (uc *flightRankingUseCase) RankBatch(ctx context.Context, reqs []RankRequest) ([]*domain.RankResponse, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: batch contains no searches", domain.ErrInvalidRequest)
	}
	if len(reqs) > uc.config.BatchMaxSearches {
		return nil, fmt.Errorf("%w: got %d searches, limit is %d", domain.ErrBatchTooLarge, len(reqs), uc.config.BatchMaxSearches)
	}

	results := make([]*domain.RankResponse, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.config.BatchConcurrency)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			resp, err := uc.Rank(gctx, req)
			if err != nil {
				return fmt.Errorf("search %d: %w", i, err)
			}
			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ResolveAirline implements FlightRankingUseCase.ResolveAirline.
func (uc *flightRankingUseCase) ResolveAirline(raw string) domain.AirlineIdentity {
	return uc.index.NewResolver().Resolve(raw)
}

// Ensure flightRankingUseCase implements FlightRankingUseCase at compile time.
var _ FlightRankingUseCase = (*flightRankingUseCase)(nil)
