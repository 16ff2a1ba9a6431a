// Package mock provides test doubles for the flight ranking system.
// These doubles are designed for integration testing where we need
// configurable reference data and call accounting.
package mock

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// Directory is a configurable in-memory implementation of both
// domain.AirlineDirectory and domain.AirportDirectory. It counts calls so
// tests can verify how often the engine reads reference data.
type Directory struct {
	airlines []domain.AirlineInfo
	aliases  map[string]string
	airports map[string]domain.AirportInfo

	airlineCalls int
	airportCalls int
	mu           sync.Mutex
}

// NewDirectory creates an empty directory.
// The directory is configured using the builder pattern methods.
func NewDirectory() *Directory {
	return &Directory{
		aliases:  make(map[string]string),
		airports: make(map[string]domain.AirportInfo),
	}
}

// WithAirline adds an airline entry.
func (d *Directory) WithAirline(code, name string, reliability int, alliance string) *Directory {
	d.airlines = append(d.airlines, domain.AirlineInfo{
		Code:        code,
		Name:        name,
		Reliability: reliability,
		Alliance:    alliance,
	})
	return d
}

// WithAlias maps an informal name to a canonical airline name.
func (d *Directory) WithAlias(alias, canonical string) *Directory {
	d.aliases[strings.ToLower(alias)] = canonical
	return d
}

// WithAirport adds an airport entry.
func (d *Directory) WithAirport(code, country string, quality int, congested bool) *Directory {
	d.airports[code] = domain.AirportInfo{
		Code:      code,
		Country:   country,
		Quality:   quality,
		Congested: congested,
	}
	return d
}

// Airlines implements domain.AirlineDirectory.Airlines.
func (d *Directory) Airlines() []domain.AirlineInfo {
	d.mu.Lock()
	d.airlineCalls++
	d.mu.Unlock()

	out := make([]domain.AirlineInfo, len(d.airlines))
	copy(out, d.airlines)
	return out
}

// Aliases implements domain.AirlineDirectory.Aliases.
func (d *Directory) Aliases() map[string]string {
	out := make(map[string]string, len(d.aliases))
	for k, v := range d.aliases {
		out[k] = v
	}
	return out
}

// Airport implements domain.AirportDirectory.Airport.
func (d *Directory) Airport(code string) (domain.AirportInfo, bool) {
	d.mu.Lock()
	d.airportCalls++
	d.mu.Unlock()

	info, ok := d.airports[code]
	return info, ok
}

// AirlineCalls returns the number of times Airlines was called.
func (d *Directory) AirlineCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.airlineCalls
}

// AirportCalls returns the number of airport lookups.
func (d *Directory) AirportCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.airportCalls
}

// Reset resets the call counts to zero.
func (d *Directory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.airlineCalls = 0
	d.airportCalls = 0
}

// Ensure Directory implements both reference interfaces at compile time.
var (
	_ domain.AirlineDirectory = (*Directory)(nil)
	_ domain.AirportDirectory = (*Directory)(nil)
)

// SampleCandidates returns count nonstop JFK-LAX candidates on airline.
// Departures are two hours apart from 06:00 and prices rise by 25 from 200.
func SampleCandidates(airline string, count int) []domain.FlightCandidate {
	candidates := make([]domain.FlightCandidate, count)

	base := time.Date(2026, 4, 10, 6, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		dep := base.Add(time.Duration(i*2) * time.Hour)
		arr := dep.Add(6*time.Hour + 10*time.Minute)

		candidates[i] = domain.FlightCandidate{
			ID:       fmt.Sprintf("%s-%d", strings.ToLower(airline), i+1),
			Price:    200 + float64(i*25),
			Currency: "USD",
			Itineraries: []domain.Leg{{Segments: []domain.Segment{{
				DepartureAirport: "JFK",
				ArrivalAirport:   "LAX",
				DepartureTime:    dep.Format("2006-01-02T15:04:05"),
				ArrivalTime:      arr.Format("2006-01-02T15:04:05"),
				Airline:          airline,
				FlightNumber:     fmt.Sprintf("%s%d", airline, 100+i),
				Duration:         domain.DurationMinutes(370),
			}}}},
		}
	}

	return candidates
}
