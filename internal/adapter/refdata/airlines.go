// Package refdata provides the static airline and airport reference directories
// consumed by the ranking engine. The tables are read-only after construction.
package refdata

import (
	"sort"
	"strings"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// Alliance names.
const (
	AllianceStar     = "Star Alliance"
	AllianceOneworld = "oneworld"
	AllianceSkyTeam  = "SkyTeam"
)

// defaultAirlines is the built-in airline directory.
var defaultAirlines = []domain.AirlineInfo{
	{Code: "AA", Name: "American Airlines", Reliability: 80, Alliance: AllianceOneworld},
	{Code: "AC", Name: "Air Canada", Reliability: 73, Alliance: AllianceStar},
	{Code: "AF", Name: "Air France", Reliability: 77, Alliance: AllianceSkyTeam},
	{Code: "AM", Name: "Aeroméxico", Reliability: 78, Alliance: AllianceSkyTeam},
	{Code: "AS", Name: "Alaska Airlines", Reliability: 85, Alliance: AllianceOneworld},
	{Code: "B6", Name: "JetBlue Airways", Reliability: 74},
	{Code: "BA", Name: "British Airways", Reliability: 78, Alliance: AllianceOneworld},
	{Code: "DL", Name: "Delta Air Lines", Reliability: 88, Alliance: AllianceSkyTeam},
	{Code: "EK", Name: "Emirates", Reliability: 85},
	{Code: "F9", Name: "Frontier Airlines", Reliability: 62},
	{Code: "FR", Name: "Ryanair", Reliability: 72},
	{Code: "G4", Name: "Allegiant Air", Reliability: 64},
	{Code: "HA", Name: "Hawaiian Airlines", Reliability: 87},
	{Code: "IB", Name: "Iberia", Reliability: 79, Alliance: AllianceOneworld},
	{Code: "JL", Name: "Japan Airlines", Reliability: 89, Alliance: AllianceOneworld},
	{Code: "KL", Name: "KLM Royal Dutch Airlines", Reliability: 81, Alliance: AllianceSkyTeam},
	{Code: "LH", Name: "Lufthansa", Reliability: 76, Alliance: AllianceStar},
	{Code: "NH", Name: "All Nippon Airways", Reliability: 90, Alliance: AllianceStar},
	{Code: "NK", Name: "Spirit Airlines", Reliability: 63},
	{Code: "QR", Name: "Qatar Airways", Reliability: 86, Alliance: AllianceOneworld},
	{Code: "SQ", Name: "Singapore Airlines", Reliability: 91, Alliance: AllianceStar},
	{Code: "SY", Name: "Sun Country Airlines", Reliability: 71},
	{Code: "TK", Name: "Turkish Airlines", Reliability: 75, Alliance: AllianceStar},
	{Code: "U2", Name: "easyJet", Reliability: 70},
	{Code: "UA", Name: "United Airlines", Reliability: 79, Alliance: AllianceStar},
	{Code: "VS", Name: "Virgin Atlantic", Reliability: 80, Alliance: AllianceSkyTeam},
	{Code: "WN", Name: "Southwest Airlines", Reliability: 77},
	{Code: "WS", Name: "WestJet", Reliability: 72},
}

// defaultAliases maps informal names, ICAO codes and tickers to canonical names.
var defaultAliases = map[string]string{
	"american":         "American Airlines",
	"aal":              "American Airlines",
	"delta":            "Delta Air Lines",
	"dal":              "Delta Air Lines",
	"united":           "United Airlines",
	"ual":              "United Airlines",
	"jet blue":         "JetBlue Airways",
	"jetblue":          "JetBlue Airways",
	"jbu":              "JetBlue Airways",
	"jblu":             "JetBlue Airways",
	"southwest":        "Southwest Airlines",
	"swa":              "Southwest Airlines",
	"luv":              "Southwest Airlines",
	"spirit":           "Spirit Airlines",
	"nks":              "Spirit Airlines",
	"save":             "Spirit Airlines",
	"frontier":         "Frontier Airlines",
	"fft":              "Frontier Airlines",
	"alaska":           "Alaska Airlines",
	"asa":              "Alaska Airlines",
	"allegiant":        "Allegiant Air",
	"hawaiian":         "Hawaiian Airlines",
	"sun country":      "Sun Country Airlines",
	"ba":               "British Airways",
	"baw":              "British Airways",
	"speedbird":        "British Airways",
	"klm":              "KLM Royal Dutch Airlines",
	"ana":              "All Nippon Airways",
	"jal":              "Japan Airlines",
	"virgin":           "Virgin Atlantic",
	"aeromexico":       "Aeroméxico",
	"turkish":          "Turkish Airlines",
	"thy":              "Turkish Airlines",
	"qatar":            "Qatar Airways",
	"singapore":        "Singapore Airlines",
	"easy jet":         "easyJet",
	"westjet":          "WestJet",
	"dlh":              "Lufthansa",
	"air canada":       "Air Canada",
	"aca":              "Air Canada",
	"afr":              "Air France",
	"uae":              "Emirates",
	"fly emirates":     "Emirates",
	"ryan air":         "Ryanair",
	"iberia express":   "Iberia",
	"delta connection": "Delta Air Lines",
	"united express":   "United Airlines",
	"american eagle":   "American Airlines",
}

// AirlineDirectory is a static, read-only airline directory.
type AirlineDirectory struct {
	airlines []domain.AirlineInfo
	aliases  map[string]string
}

// NewAirlineDirectory creates a directory from the given entries and aliases.
// Entries are copied and sorted by code so iteration order is deterministic.
func NewAirlineDirectory(airlines []domain.AirlineInfo, aliases map[string]string) *AirlineDirectory {
	list := make([]domain.AirlineInfo, len(airlines))
	copy(list, airlines)
	sort.Slice(list, func(i, j int) bool {
		return list[i].Code < list[j].Code
	})

	aliasCopy := make(map[string]string, len(aliases))
	for k, v := range aliases {
		aliasCopy[strings.ToLower(strings.TrimSpace(k))] = v
	}

	return &AirlineDirectory{
		airlines: list,
		aliases:  aliasCopy,
	}
}

// DefaultAirlineDirectory returns the built-in airline directory.
func DefaultAirlineDirectory() *AirlineDirectory {
	return NewAirlineDirectory(defaultAirlines, defaultAliases)
}

// Airlines returns a copy of every known airline sorted by code.
func (d *AirlineDirectory) Airlines() []domain.AirlineInfo {
	out := make([]domain.AirlineInfo, len(d.airlines))
	copy(out, d.airlines)
	return out
}

// Aliases returns a copy of the alias table.
func (d *AirlineDirectory) Aliases() map[string]string {
	out := make(map[string]string, len(d.aliases))
	for k, v := range d.aliases {
		out[k] = v
	}
	return out
}

// Ensure AirlineDirectory implements domain.AirlineDirectory at compile time.
var _ domain.AirlineDirectory = (*AirlineDirectory)(nil)
