package refdata

import (
	"strings"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// defaultAirports is the built-in airport-quality directory.
var defaultAirports = map[string]domain.AirportInfo{
	"ATL": {Code: "ATL", Name: "Hartsfield-Jackson Atlanta", Country: "US", Quality: 72, Notes: "Huge but efficient Plane Train; long walks between concourses", Congested: true},
	"BOS": {Code: "BOS", Name: "Boston Logan", Country: "US", Quality: 68, Notes: "Terminal changes require re-screening", Congested: true},
	"CLT": {Code: "CLT", Name: "Charlotte Douglas", Country: "US", Quality: 70, Notes: "Busy hub; crowded concourses at peak", Congested: false},
	"DCA": {Code: "DCA", Name: "Ronald Reagan Washington National", Country: "US", Quality: 75, Notes: "Compact and easy", Congested: false},
	"DEN": {Code: "DEN", Name: "Denver International", Country: "US", Quality: 74, Notes: "Train between concourses; winter weather delays", Congested: true},
	"DFW": {Code: "DFW", Name: "Dallas/Fort Worth", Country: "US", Quality: 78, Notes: "Skylink makes terminal changes quick", Congested: true},
	"DTW": {Code: "DTW", Name: "Detroit Metropolitan", Country: "US", Quality: 82, Notes: "Efficient tram in McNamara terminal", Congested: false},
	"EWR": {Code: "EWR", Name: "Newark Liberty", Country: "US", Quality: 55, Notes: "Frequent delays; terminal changes need AirTrain", Congested: true},
	"FLL": {Code: "FLL", Name: "Fort Lauderdale-Hollywood", Country: "US", Quality: 62, Notes: "Terminals not connected airside", Congested: false},
	"HNL": {Code: "HNL", Name: "Daniel K. Inouye Honolulu", Country: "US", Quality: 66, Notes: "Open-air walkways; long distances", Congested: false},
	"IAD": {Code: "IAD", Name: "Washington Dulles", Country: "US", Quality: 65, Notes: "Train plus long walks between concourses", Congested: true},
	"IAH": {Code: "IAH", Name: "Houston George Bush", Country: "US", Quality: 73, Notes: "Skyway connects terminals", Congested: false},
	"JFK": {Code: "JFK", Name: "New York John F. Kennedy", Country: "US", Quality: 58, Notes: "Terminal changes require AirTrain and re-screening", Congested: true},
	"LAS": {Code: "LAS", Name: "Las Vegas Harry Reid", Country: "US", Quality: 71, Notes: "Tram between gates", Congested: false},
	"LAX": {Code: "LAX", Name: "Los Angeles International", Country: "US", Quality: 52, Notes: "Terminal changes are slow; frequent congestion", Congested: true},
	"LGA": {Code: "LGA", Name: "New York LaGuardia", Country: "US", Quality: 60, Notes: "Rebuilt terminals but chronic delays", Congested: true},
	"MCO": {Code: "MCO", Name: "Orlando International", Country: "US", Quality: 67, Notes: "Tram to airside; heavy family traffic", Congested: false},
	"MIA": {Code: "MIA", Name: "Miami International", Country: "US", Quality: 60, Notes: "Long walks; busy immigration", Congested: true},
	"MSP": {Code: "MSP", Name: "Minneapolis-Saint Paul", Country: "US", Quality: 84, Notes: "Easy connections", Congested: false},
	"ORD": {Code: "ORD", Name: "Chicago O'Hare", Country: "US", Quality: 56, Notes: "Frequent weather and congestion delays", Congested: true},
	"PDX": {Code: "PDX", Name: "Portland International", Country: "US", Quality: 90, Notes: "Consistently rated best US airport", Congested: false},
	"PHL": {Code: "PHL", Name: "Philadelphia International", Country: "US", Quality: 57, Notes: "Crowded, slow security", Congested: true},
	"PHX": {Code: "PHX", Name: "Phoenix Sky Harbor", Country: "US", Quality: 79, Notes: "Sky Train between terminals", Congested: false},
	"SAN": {Code: "SAN", Name: "San Diego International", Country: "US", Quality: 76, Notes: "Compact", Congested: false},
	"SEA": {Code: "SEA", Name: "Seattle-Tacoma", Country: "US", Quality: 74, Notes: "Satellite train to S gates", Congested: false},
	"SFO": {Code: "SFO", Name: "San Francisco International", Country: "US", Quality: 69, Notes: "Fog delays; AirTrain between terminals", Congested: true},
	"SLC": {Code: "SLC", Name: "Salt Lake City International", Country: "US", Quality: 80, Notes: "New terminal, long walk to B gates", Congested: false},
	"AMS": {Code: "AMS", Name: "Amsterdam Schiphol", Country: "NL", Quality: 80, Notes: "Single terminal; efficient transfers", Congested: false},
	"CDG": {Code: "CDG", Name: "Paris Charles de Gaulle", Country: "FR", Quality: 50, Notes: "Confusing layout; long terminal transfers", Congested: true},
	"DOH": {Code: "DOH", Name: "Doha Hamad", Country: "QA", Quality: 92, Notes: "Excellent transfer experience", Congested: false},
	"DXB": {Code: "DXB", Name: "Dubai International", Country: "AE", Quality: 85, Notes: "Huge but well signed", Congested: false},
	"FRA": {Code: "FRA", Name: "Frankfurt", Country: "DE", Quality: 70, Notes: "Long walks; passport control for non-Schengen", Congested: true},
	"HND": {Code: "HND", Name: "Tokyo Haneda", Country: "JP", Quality: 93, Notes: "Efficient and punctual", Congested: false},
	"ICN": {Code: "ICN", Name: "Seoul Incheon", Country: "KR", Quality: 94, Notes: "Top-rated transfer airport", Congested: false},
	"IST": {Code: "IST", Name: "Istanbul", Country: "TR", Quality: 72, Notes: "Very large; long walks", Congested: false},
	"LHR": {Code: "LHR", Name: "London Heathrow", Country: "GB", Quality: 62, Notes: "Terminal transfers need buses and re-screening", Congested: true},
	"MAD": {Code: "MAD", Name: "Madrid Barajas", Country: "ES", Quality: 71, Notes: "T4S satellite needs train", Congested: false},
	"MUC": {Code: "MUC", Name: "Munich", Country: "DE", Quality: 86, Notes: "Smooth transfers", Congested: false},
	"NRT": {Code: "NRT", Name: "Tokyo Narita", Country: "JP", Quality: 84, Notes: "Efficient", Congested: false},
	"SIN": {Code: "SIN", Name: "Singapore Changi", Country: "SG", Quality: 96, Notes: "World's best transfer airport", Congested: false},
	"YVR": {Code: "YVR", Name: "Vancouver International", Country: "CA", Quality: 83, Notes: "Well organised", Congested: false},
	"YYZ": {Code: "YYZ", Name: "Toronto Pearson", Country: "CA", Quality: 63, Notes: "Long connection times; US preclearance", Congested: true},
	"ZRH": {Code: "ZRH", Name: "Zurich", Country: "CH", Quality: 88, Notes: "Compact and punctual", Congested: false},
}

// AirportDirectory is a static, read-only airport directory.
type AirportDirectory struct {
	airports map[string]domain.AirportInfo
}

// NewAirportDirectory creates a directory from the given entries keyed by IATA code.
func NewAirportDirectory(airports map[string]domain.AirportInfo) *AirportDirectory {
	copied := make(map[string]domain.AirportInfo, len(airports))
	for code, info := range airports {
		copied[strings.ToUpper(code)] = info
	}
	return &AirportDirectory{airports: copied}
}

// DefaultAirportDirectory returns the built-in airport directory.
func DefaultAirportDirectory() *AirportDirectory {
	return NewAirportDirectory(defaultAirports)
}

// Airport looks up an airport by IATA code (case-insensitive).
func (d *AirportDirectory) Airport(code string) (domain.AirportInfo, bool) {
	info, ok := d.airports[strings.ToUpper(strings.TrimSpace(code))]
	return info, ok
}

// Len returns the number of airports in the directory.
func (d *AirportDirectory) Len() int {
	return len(d.airports)
}

// Ensure AirportDirectory implements domain.AirportDirectory at compile time.
var _ domain.AirportDirectory = (*AirportDirectory)(nil)
