package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/timeutil"
)

// bookingSearchURL is the flight search page booking links point at.
const bookingSearchURL = "https://www.google.com/travel/flights"

// pricePerTicket divides the fare across ticketed travellers, rounded to cents.
func pricePerTicket(price float64, pax domain.PassengerCounts) decimal.Decimal {
	tickets := pax.Ticketed()
	if tickets < 1 {
		tickets = 1
	}
	return decimal.NewFromFloat(price).Div(decimal.NewFromInt(int64(tickets))).Round(2)
}

// estimatedTotal adds fee estimates to the fare when both share a currency.
func estimatedTotal(c domain.FlightCandidate, fees decimal.Decimal) decimal.Decimal {
	fare := decimal.NewFromFloat(c.Price).Round(2)
	if c.Currency == "" || strings.EqualFold(c.Currency, FeeCurrency) {
		return fare.Add(fees)
	}
	return fare
}

// bookingURL builds a search link for the candidate's route, dates,
// passengers and cabin. Returns "" when the candidate has no legs.
func bookingURL(c domain.FlightCandidate, pax domain.PassengerCounts, cabin string) string {
	if len(c.Itineraries) == 0 {
		return ""
	}
	first, okFirst := c.Itineraries[0].FirstSegment()
	last, okLast := c.Itineraries[0].LastSegment()
	if !okFirst || !okLast {
		return ""
	}

	var q strings.Builder
	fmt.Fprintf(&q, "Flights from %s to %s", strings.ToUpper(first.DepartureAirport), strings.ToUpper(last.ArrivalAirport))
	if dep, ok := domain.ParseTimestamp(first.DepartureTime); ok {
		fmt.Fprintf(&q, " on %s", timeutil.FormatDate(dep))
	}
	if len(c.Itineraries) > 1 {
		if ret, ok := c.Itineraries[len(c.Itineraries)-1].FirstSegment(); ok {
			if t, ok := domain.ParseTimestamp(ret.DepartureTime); ok {
				fmt.Fprintf(&q, " returning %s", timeutil.FormatDate(t))
			}
		}
	}
	if phrase := passengerPhrase(pax); phrase != "" {
		q.WriteString(" for " + phrase)
	}
	if cabin != "" {
		fmt.Fprintf(&q, " in %s", cabinLabel(cabin))
	}

	v := url.Values{}
	v.Set("q", q.String())
	return bookingSearchURL + "?" + v.Encode()
}

// passengerPhrase renders "2 adults, 1 child" and is empty for a single adult.
func passengerPhrase(pax domain.PassengerCounts) string {
	if pax.Total() <= 1 && pax.Adults == 1 {
		return ""
	}
	var parts []string
	add := func(n int, singular, plural string) {
		switch {
		case n == 1:
			parts = append(parts, "1 "+singular)
		case n > 1:
			parts = append(parts, fmt.Sprintf("%d %s", n, plural))
		}
	}
	add(pax.Adults, "adult", "adults")
	add(pax.Children, "child", "children")
	add(pax.Infants, "infant", "infants")
	return strings.Join(parts, ", ")
}
