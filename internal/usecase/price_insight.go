package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/timeutil"
)

// Percentile tier ceilings.
const (
	lowPricePercentile    = 25
	mediumPricePercentile = 60
)

// bookingWindow is the recommended advance-purchase range in days.
type bookingWindow struct {
	MinDays int
	MaxDays int
	Label   string
}

var (
	domesticWindow      = bookingWindow{MinDays: 21, MaxDays: 42, Label: "3-6 weeks"}
	internationalWindow = bookingWindow{MinDays: 60, MaxDays: 90, Label: "2-3 months"}
)

// PriceInsightEngine classifies prices against the batch and gives booking advice.
type PriceInsightEngine struct {
	clock    timeutil.Clock
	airports domain.AirportDirectory
}

// NewPriceInsightEngine creates an engine reading "now" from clock.
func NewPriceInsightEngine(clock timeutil.Clock, airports domain.AirportDirectory) *PriceInsightEngine {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &PriceInsightEngine{clock: clock, airports: airports}
}

// priceDistribution summarizes the prices a candidate is compared against.
type priceDistribution struct {
	min, max float64
	distinct int
}

func newPriceDistribution(prices []float64) priceDistribution {
	seen := make(map[float64]bool, len(prices))
	for _, p := range prices {
		seen[p] = true
	}
	lo, hi := floatRange(prices)
	return priceDistribution{min: lo, max: hi, distinct: len(seen)}
}

// Insight classifies price within dist and builds the advice text for a trip
// from origin to destination departing at departure.
func (e *PriceInsightEngine) Insight(price float64, dist priceDistribution, origin, destination string,
	departure time.Time, hasDeparture bool) domain.PriceInsight {
	insight := domain.PriceInsight{
		Level:      domain.PriceMedium,
		Label:      "Average price",
		Percentile: 50,
	}

	if dist.distinct >= 2 {
		pct := (price - dist.min) / (dist.max - dist.min) * 100
		insight.Percentile = math.Round(pct*10) / 10
		switch {
		case pct <= lowPricePercentile:
			insight.Level, insight.Label = domain.PriceLow, "Great price"
		case pct <= mediumPricePercentile:
			insight.Level, insight.Label = domain.PriceMedium, "Fair price"
		default:
			insight.Level, insight.Label = domain.PriceHigh, "Higher price"
		}
	}

	insight.Domestic = isDomestic(origin, destination, e.airports)
	window := internationalWindow
	kind := "international"
	if insight.Domestic {
		window, kind = domesticWindow, "domestic"
	}
	insight.BookingWindow = window.Label

	now := e.clock.Now()
	var days *int
	if hasDeparture {
		d := timeutil.DaysUntil(now, departure)
		days = &d
	}
	insight.DaysUntilDeparture = days
	insight.Advice = bookingAdvice(days, window, kind)

	if insight.Level == domain.PriceHigh {
		tuesday := timeutil.NextWeekday(now, time.Tuesday)
		insight.RecheckDate = timeutil.FormatDate(tuesday)
		insight.Advice += fmt.Sprintf(" This fare is on the high side; recheck on %s, when midweek fare updates often bring prices down.",
			timeutil.FormatHumanDate(tuesday))
	}

	return insight
}

func bookingAdvice(days *int, window bookingWindow, kind string) string {
	if days == nil {
		return fmt.Sprintf("For %s trips, fares are usually lowest when booked %s before departure.", kind, window.Label)
	}

	d := *days
	switch {
	case d < 0:
		return "This departure date has already passed; check the itinerary dates."
	case d < window.MinDays:
		return fmt.Sprintf("Departure is in %s, inside the last-minute zone for %s trips (best booked %s out); fares rarely drop from here, so book soon.",
			pluralDays(d), kind, window.Label)
	case d <= window.MaxDays:
		return fmt.Sprintf("Departure is in %s, right in the %s booking sweet spot for %s trips.",
			pluralDays(d), window.Label, kind)
	default:
		return fmt.Sprintf("Departure is in %s; %s fares are usually lowest %s out, so you can watch prices for now.",
			pluralDays(d), kind, window.Label)
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
