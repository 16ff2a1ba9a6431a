package usecase

import (
	"strings"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// homeCountry is assumed for airports missing from the directory.
const homeCountry = "US"

// isDomestic decides whether two airports are in the same country. Directory
// countries win; otherwise two well-formed 3-letter codes count as domestic.
func isDomestic(a, b string, airports domain.AirportDirectory) bool {
	a, b = strings.ToUpper(strings.TrimSpace(a)), strings.ToUpper(strings.TrimSpace(b))

	infoA, okA := lookupAirport(airports, a)
	infoB, okB := lookupAirport(airports, b)

	switch {
	case okA && okB && infoA.Country != "" && infoB.Country != "":
		return infoA.Country == infoB.Country
	case okA && infoA.Country != "" && infoA.Country != homeCountry:
		return false
	case okB && infoB.Country != "" && infoB.Country != homeCountry:
		return false
	}
	return domain.IsAirportCode(a) && domain.IsAirportCode(b)
}

// airportQuality returns the directory quality score or the documented default.
func airportQuality(airports domain.AirportDirectory, code string) int {
	if info, ok := lookupAirport(airports, code); ok {
		return info.Quality
	}
	return domain.DefaultAirportQuality
}

// isCongested reports whether the airport is listed as congested.
func isCongested(airports domain.AirportDirectory, code string) bool {
	info, ok := lookupAirport(airports, code)
	return ok && info.Congested
}

func lookupAirport(airports domain.AirportDirectory, code string) (domain.AirportInfo, bool) {
	if airports == nil || code == "" {
		return domain.AirportInfo{}, false
	}
	return airports.Airport(strings.ToUpper(code))
}
