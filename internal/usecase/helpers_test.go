package usecase

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/timeutil"
)

// testToday is the fixed "now" of every use case test (a Monday).
const testToday = "2026-03-02"

var testAirlines = []domain.AirlineInfo{
	{Code: "AA", Name: "American Airlines", Reliability: 80, Alliance: "oneworld"},
	{Code: "AC", Name: "Air Canada", Reliability: 73, Alliance: "Star Alliance"},
	{Code: "AM", Name: "Aeroméxico", Reliability: 78, Alliance: "SkyTeam"},
	{Code: "B6", Name: "JetBlue Airways", Reliability: 74},
	{Code: "DL", Name: "Delta Air Lines", Reliability: 88, Alliance: "SkyTeam"},
	{Code: "F9", Name: "Frontier Airlines", Reliability: 62},
	{Code: "NH", Name: "All Nippon Airways", Reliability: 90, Alliance: "Star Alliance"},
	{Code: "NK", Name: "Spirit Airlines", Reliability: 63},
	{Code: "UA", Name: "United Airlines", Reliability: 79, Alliance: "Star Alliance"},
	{Code: "WN", Name: "Southwest Airlines", Reliability: 77},
}

var testAliases = map[string]string{
	"jet blue":  "JetBlue Airways",
	"aal":       "American Airlines",
	"ana":       "All Nippon Airways",
	"fly delta": "Delta Air Lines",
	"save":      "Spirit Airlines",
}

var testAirports = map[string]domain.AirportInfo{
	"JFK": {Code: "JFK", Country: "US", Quality: 58, Congested: true},
	"LAX": {Code: "LAX", Country: "US", Quality: 52, Congested: true},
	"ORD": {Code: "ORD", Country: "US", Quality: 56, Congested: true},
	"DEN": {Code: "DEN", Country: "US", Quality: 74, Congested: true},
	"SEA": {Code: "SEA", Country: "US", Quality: 80},
	"MSP": {Code: "MSP", Country: "US", Quality: 82},
	"SLC": {Code: "SLC", Country: "US", Quality: 85},
	"PDX": {Code: "PDX", Country: "US", Quality: 88},
	"LHR": {Code: "LHR", Country: "GB", Quality: 62, Congested: true},
	"CDG": {Code: "CDG", Country: "FR", Quality: 50, Congested: true},
}

// newTestDirectories returns gomock reference directories backed by the fixtures above.
func newTestDirectories(t *testing.T) (*domain.MockAirlineDirectory, *domain.MockAirportDirectory) {
	t.Helper()
	ctrl := gomock.NewController(t)

	airlines := domain.NewMockAirlineDirectory(ctrl)
	airlines.EXPECT().Airlines().DoAndReturn(func() []domain.AirlineInfo {
		out := make([]domain.AirlineInfo, len(testAirlines))
		copy(out, testAirlines)
		return out
	}).AnyTimes()
	airlines.EXPECT().Aliases().Return(testAliases).AnyTimes()

	airports := domain.NewMockAirportDirectory(ctrl)
	airports.EXPECT().Airport(gomock.Any()).DoAndReturn(func(code string) (domain.AirportInfo, bool) {
		info, ok := testAirports[code]
		return info, ok
	}).AnyTimes()

	return airlines, airports
}

func newTestIndex(t *testing.T) *AirlineIndex {
	t.Helper()
	airlines, _ := newTestDirectories(t)
	return NewAirlineIndex(airlines)
}

func newTestUseCase(t *testing.T) FlightRankingUseCase {
	t.Helper()
	airlines, airports := newTestDirectories(t)
	return NewFlightRankingUseCase(airlines, airports, timeutil.NewFixedClockFromDate(testToday), logger.Nop(), nil)
}

// seg builds a segment departing at dep (local, zone-less) and lasting minutes.
func seg(from, to, airline, dep string, minutes int) domain.Segment {
	s := domain.Segment{
		DepartureAirport: from,
		ArrivalAirport:   to,
		Airline:          airline,
		FlightNumber:     airline + "100",
		DepartureTime:    dep,
		Duration:         domain.DurationMinutes(minutes),
	}
	if t, ok := domain.ParseTimestamp(dep); ok {
		s.ArrivalTime = t.Add(time.Duration(minutes) * time.Minute).Format("2006-01-02T15:04:05")
	}
	return s
}

func leg(segments ...domain.Segment) domain.Leg {
	return domain.Leg{Segments: segments}
}

func candidate(id string, price float64, legs ...domain.Leg) domain.FlightCandidate {
	return domain.FlightCandidate{ID: id, Price: price, Currency: "USD", Itineraries: legs}
}

// nonstop builds a one-leg JFK-LAX candidate.
func nonstop(id string, price float64, airline, dep string, minutes int) domain.FlightCandidate {
	return candidate(id, price, leg(seg("JFK", "LAX", airline, dep, minutes)))
}

// oneStop builds a one-leg candidate connecting at via after layover minutes.
func oneStop(id string, price float64, airline, via, dep string, layover int) domain.FlightCandidate {
	first := seg("JFK", via, airline, dep, 150)
	t, _ := domain.ParseTimestamp(first.ArrivalTime)
	second := seg(via, "LAX", airline, t.Add(time.Duration(layover)*time.Minute).Format("2006-01-02T15:04:05"), 200)
	return candidate(id, price, leg(first, second))
}

func analyze(c domain.FlightCandidate) itinerary {
	return analyzeItinerary(c, logger.Nop())
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func findByID(t *testing.T, flights []domain.ScoredFlight, id string) domain.ScoredFlight {
	t.Helper()
	for _, f := range flights {
		if f.ID == id {
			return f
		}
	}
	t.Fatalf("flight %s not found", id)
	return domain.ScoredFlight{}
}
