package usecase

import (
	"fmt"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// Explanation limits.
const (
	maxExplanationReasons = 3
	maxMatchItems         = 3
)

// explain attaches the explanation and, below a perfect score, the match
// explanation. Text is derived only from each flight's final rank and category.
func explain(categorized []domain.ScoredFlight, profile domain.PreferenceProfile) []domain.ScoredFlight {
	result := make([]domain.ScoredFlight, len(categorized))
	copy(result, categorized)

	stats := newBatchStats(result)
	for i := range result {
		f := &result[i]
		f.Explanation = explanationText(*f, profile, stats)
		f.MatchExplanation = matchExplanation(*f, profile)
	}
	return result
}

func explanationText(f domain.ScoredFlight, profile domain.PreferenceProfile, stats batchStats) string {
	switch {
	case f.IsAvoidedAirline:
		text := fmt.Sprintf("#%d Not recommended. Includes %s, an airline you asked to avoid.",
			f.Rank, avoidedAirlineName(f, profile))
		if reasons := weaknesses(f, stats); len(reasons) > 0 {
			text += " Also: " + joinReasons(reasons) + "."
		}
		return text

	case f.RankCategory == domain.CategoryBest:
		return fmt.Sprintf("#%d Top pick. %s.", f.Rank, capitalize(orDefault(strengths(f, profile, stats),
			"best overall balance of price, schedule and comfort")))

	case f.RankCategory == domain.CategoryGoodAlternative:
		return fmt.Sprintf("#%d Strong alternative. %s.", f.Rank, capitalize(orDefault(strengths(f, profile, stats),
			"close to the top pick on overall score")))

	case f.RankCategory == domain.CategoryAcceptable:
		return fmt.Sprintf("#%d Acceptable option. %s.", f.Rank, capitalize(orDefault(strengths(f, profile, stats),
			fmt.Sprintf("a reasonable trade-off at %d/100 overall", f.Breakdown.Total))))

	default:
		return fmt.Sprintf("#%d Not recommended. %s.", f.Rank, capitalize(orDefault(weaknesses(f, stats),
			"scores well below the top options")))
	}
}

func orDefault(reasons []string, fallback string) string {
	if len(reasons) == 0 {
		return fallback
	}
	return joinReasons(reasons)
}

// strengths lists up to three reasons a top-tier flight ranks well.
func strengths(f domain.ScoredFlight, profile domain.PreferenceProfile, stats batchStats) []string {
	var reasons []string
	add := func(ok bool, reason string) {
		if ok && len(reasons) < maxExplanationReasons {
			reasons = append(reasons, reason)
		}
	}

	add(f.MaxSegmentsPerLeg() <= 1, "nonstop flight")
	add(f.IsPreferredAirline, fmt.Sprintf("your preferred airline (%s)", f.PrimaryAirline.DisplayName(f.FlightCandidate.PrimaryAirline())))
	if len(profile.PreferredDepartureTimes) > 0 && f.Breakdown.DepartureTime == departurePreferred {
		add(true, fmt.Sprintf("departure in your preferred %s window", departureBucket(f).Label()))
	}
	add(stats.shortTravel(f.TotalDurationMinutes),
		fmt.Sprintf("one of the shortest travel times (%s)", domain.FormatDuration(f.TotalDurationMinutes)))
	add(f.DelayRisk == domain.RiskLow, "low delay risk")

	return reasons
}

// weaknesses lists up to three reasons a flight ranks poorly.
func weaknesses(f domain.ScoredFlight, stats batchStats) []string {
	var reasons []string
	add := func(ok bool, reason string) {
		if ok && len(reasons) < maxExplanationReasons {
			reasons = append(reasons, reason)
		}
	}

	gap := stats.priceGapPercent(f.Price)
	add(gap >= 20, fmt.Sprintf("costs %d%% more than the cheapest option", gap))
	add(f.Breakdown.TravelTime < 40,
		fmt.Sprintf("long total travel time (%s)", domain.FormatDuration(f.TotalDurationMinutes)))
	if stops := f.TotalStops(); stops > 0 {
		add(true, stopsPhrase(stops))
	}
	add(f.Breakdown.AirlineReliability < 60, "airline with a weaker on-time record")
	add(f.DelayRisk == domain.RiskHigh, "high delay risk")

	return reasons
}

func stopsPhrase(stops int) string {
	if stops == 1 {
		return "1 stop"
	}
	return fmt.Sprintf("%d stops", stops)
}

// departureBucket returns the bucket of the outbound departure.
func departureBucket(f domain.ScoredFlight) domain.TimeBucket {
	hour := neutralHour
	if t := departureSortKey(f.FlightCandidate); !t.Equal(farFuture) {
		hour = t.Hour()
	}
	return domain.BucketForHour(hour)
}

// avoidedAirlineName names the avoided airline carried by the flight.
func avoidedAirlineName(f domain.ScoredFlight, profile domain.PreferenceProfile) string {
	for _, m := range f.PreferenceMatches {
		if m.Preference == prefAvoidedAirline && m.Subject != "" {
			return m.Subject
		}
	}
	return f.PrimaryAirline.DisplayName(f.FlightCandidate.PrimaryAirline())
}

// matchExplanation lists why a flight is not a perfect match and why it is
// still worth a look. Airline-preference reasons come first and replace the
// generic reliability reason.
func matchExplanation(f domain.ScoredFlight, profile domain.PreferenceProfile) *domain.MatchExplanation {
	if f.Breakdown.Total >= 100 {
		return nil
	}
	b := f.Breakdown
	airlineName := f.PrimaryAirline.DisplayName(f.FlightCandidate.PrimaryAirline())

	notPerfect := newCappedList(maxMatchItems)
	airlineReason := false
	switch {
	case f.IsAvoidedAirline:
		notPerfect.add(fmt.Sprintf("Includes %s, an airline you asked to avoid", avoidedAirlineName(f, profile)))
		airlineReason = true
	case len(profile.PreferredAirlines) > 0 && !f.IsPreferredAirline:
		notPerfect.add(fmt.Sprintf("%s is not one of your preferred airlines", airlineName))
		airlineReason = true
	}
	if b.Nonstop < 100 {
		notPerfect.add(fmt.Sprintf("Has %s", stopsPhrase(f.TotalStops())))
	}
	if b.TravelTime < 50 {
		notPerfect.add("Longer travel time than other options")
	}
	if b.DepartureTime < departureNoPreference {
		if b.DepartureTime == departureRedEyeBanned {
			notPerfect.add("Red-eye departure")
		} else {
			notPerfect.add("Departs outside your preferred time window")
		}
	}
	if b.LayoverQuality < 70 {
		notPerfect.add("Connects through a lower-rated airport")
	}
	if b.Price < 50 {
		notPerfect.add("Pricier than most options")
	}
	if !airlineReason && b.AirlineReliability < 75 {
		notPerfect.add("Airline has a below-average on-time record")
	}
	if b.ArrivalTime < arrivalNormal {
		notPerfect.add("Arrives at an inconvenient hour")
	}
	if b.Amenities < amenityBase {
		notPerfect.add("Missing an amenity you require")
	}

	stillGood := newCappedList(maxMatchItems)
	if f.IsPreferredAirline {
		stillGood.add(fmt.Sprintf("Flies %s, one of your preferred airlines", airlineName))
	}
	if b.Nonstop == 100 {
		stillGood.add("Nonstop")
	}
	if b.Price >= 80 {
		stillGood.add("Among the lowest prices")
	}
	if b.TravelTime >= 80 {
		stillGood.add("Among the shortest travel times")
	}
	if !f.IsPreferredAirline && !f.IsAvoidedAirline && b.AirlineReliability >= 85 {
		stillGood.add("Reliable airline")
	}
	if b.DepartureTime == departurePreferred {
		stillGood.add("Departs in your preferred time window")
	}
	if f.DelayRisk == domain.RiskLow {
		stillGood.add("Low delay risk")
	}
	if b.Amenities > amenityBase {
		stillGood.add("Has the amenities you asked for")
	}

	return &domain.MatchExplanation{
		WhyNotPerfect: notPerfect.items,
		WhyStillGood:  stillGood.items,
	}
}

type cappedList struct {
	limit int
	items []string
}

func newCappedList(limit int) *cappedList {
	return &cappedList{limit: limit, items: []string{}}
}

func (l *cappedList) add(item string) {
	if len(l.items) < l.limit {
		l.items = append(l.items, item)
	}
}
