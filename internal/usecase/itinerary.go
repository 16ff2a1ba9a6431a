package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/logger"
)

// AssumedConnectionMinutes replaces a missing or implausible connection time.
const AssumedConnectionMinutes = 60

// neutralHour stands in for a missing departure or arrival timestamp.
const neutralHour = 12

// connection is the gap between two consecutive segments of one leg.
type connection struct {
	LegIndex int
	Inbound  domain.Segment
	Outbound domain.Segment
	Airport  string
	Minutes  int
	// Assumed is true when Minutes was clamped to AssumedConnectionMinutes
	Assumed bool
}

// TerminalChange reports a terminal change inside the same airport.
func (c connection) TerminalChange() bool {
	return c.Inbound.ArrivalTerminal != "" && c.Outbound.DepartureTerminal != "" &&
		!strings.EqualFold(c.Inbound.ArrivalTerminal, c.Outbound.DepartureTerminal)
}

// AirportChange reports a connection that arrives at one airport and departs another.
func (c connection) AirportChange() bool {
	return !strings.EqualFold(c.Inbound.ArrivalAirport, c.Outbound.DepartureAirport)
}

// legFacts are the derived timing facts of one leg.
type legFacts struct {
	Origin         string
	Destination    string
	Departure      time.Time
	HasDeparture   bool
	Arrival        time.Time
	HasArrival     bool
	Minutes        int
	Connections    int
	PrimaryAirline string
}

// DepartureHour returns the local departure hour, or the neutral midday hour.
func (l legFacts) DepartureHour() int {
	if !l.HasDeparture {
		return neutralHour
	}
	return l.Departure.Hour()
}

// ArrivalHour returns the local arrival hour, or the neutral midday hour.
func (l legFacts) ArrivalHour() int {
	if !l.HasArrival {
		return neutralHour
	}
	return l.Arrival.Hour()
}

// itinerary holds everything the scorer and analyzers derive from one
// candidate, computed once so anomalies are logged once.
type itinerary struct {
	Candidate   domain.FlightCandidate
	Legs        []legFacts
	Connections []connection
	// SegmentMinutes is the summed segment duration across all legs
	SegmentMinutes int
	Airlines       []string
	Amenities      map[domain.Amenity]bool
	// LegroomInches is the smallest legroom advertised on any segment, 0 when unknown
	LegroomInches int
}

// Outbound returns the facts of the first leg.
func (it itinerary) Outbound() legFacts {
	if len(it.Legs) == 0 {
		return legFacts{}
	}
	return it.Legs[0]
}

// AllNonstop reports whether every leg is a single segment.
func (it itinerary) AllNonstop() bool {
	return it.Candidate.MaxSegmentsPerLeg() <= 1
}

// analyzeItinerary derives timing and amenity facts from a candidate. It
// never fails; malformed values degrade to documented defaults with a warning.
func analyzeItinerary(c domain.FlightCandidate, log *logger.Logger) itinerary {
	log = log.WithCandidate(c.ID)
	it := itinerary{
		Candidate: c,
		Amenities: make(map[domain.Amenity]bool),
	}

	seenAirline := make(map[string]bool)
	for legIndex, leg := range c.Itineraries {
		lf := legFacts{Connections: leg.Stops()}

		for i, seg := range leg.Segments {
			if i == 0 {
				lf.Origin = strings.ToUpper(seg.DepartureAirport)
				lf.PrimaryAirline = seg.Airline
				lf.Departure, lf.HasDeparture = parseTimestamp(seg.DepartureTime, "departure", log)
			}
			if i == len(leg.Segments)-1 {
				lf.Destination = strings.ToUpper(seg.ArrivalAirport)
				lf.Arrival, lf.HasArrival = parseTimestamp(seg.ArrivalTime, "arrival", log)
			}

			minutes := segmentMinutes(seg, log)
			lf.Minutes += minutes
			it.SegmentMinutes += minutes

			if i > 0 {
				conn := newConnection(legIndex, leg.Segments[i-1], seg, log)
				lf.Minutes += conn.Minutes
				it.Connections = append(it.Connections, conn)
			}

			if key := strings.TrimSpace(seg.Airline); key != "" && !seenAirline[key] {
				seenAirline[key] = true
				it.Airlines = append(it.Airlines, key)
			}

			for _, tag := range seg.Amenities {
				detectAmenities(tag, it.Amenities)
				if inches, ok := parseLegroom(tag); ok && (it.LegroomInches == 0 || inches < it.LegroomInches) {
					it.LegroomInches = inches
				}
			}
		}

		it.Legs = append(it.Legs, lf)
	}

	return it
}

func parseTimestamp(value, field string, log *logger.Logger) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, false
	}
	t, ok := domain.ParseTimestamp(value)
	if !ok {
		log.Warn().Str("field", field).Str("value", value).Msg("unparseable timestamp, using neutral default")
	}
	return t, ok
}

// segmentMinutes returns the segment duration. An absent or zero duration is
// derived from the timestamps when both parse; an unparseable one counts as 0.
func segmentMinutes(seg domain.Segment, log *logger.Logger) int {
	if seg.Duration.Valid() && seg.Duration.Minutes() > 0 {
		return seg.Duration.Minutes()
	}
	if !seg.Duration.Valid() && !seg.Duration.IsZero() {
		log.Warn().Str("duration", seg.Duration.Raw).Str("flight", seg.FlightNumber).
			Msg("unparseable segment duration, counting as 0")
		return 0
	}

	dep, okDep := domain.ParseTimestamp(seg.DepartureTime)
	arr, okArr := domain.ParseTimestamp(seg.ArrivalTime)
	if !okDep || !okArr {
		return 0
	}
	minutes := int(arr.Sub(dep).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

func newConnection(legIndex int, inbound, outbound domain.Segment, log *logger.Logger) connection {
	conn := connection{
		LegIndex: legIndex,
		Inbound:  inbound,
		Outbound: outbound,
		Airport:  strings.ToUpper(inbound.ArrivalAirport),
	}

	arr, okArr := domain.ParseTimestamp(inbound.ArrivalTime)
	dep, okDep := domain.ParseTimestamp(outbound.DepartureTime)
	if !okArr || !okDep {
		log.Warn().Str("airport", conn.Airport).Int("leg", legIndex).
			Msg("connection time unknown, assuming minimum")
		conn.Minutes = AssumedConnectionMinutes
		conn.Assumed = true
		return conn
	}

	minutes := int(dep.Sub(arr).Minutes())
	if minutes < 0 {
		log.Warn().Str("airport", conn.Airport).Int("leg", legIndex).Int("computed_minutes", minutes).
			Msg("negative connection time, clamping to assumed minimum")
		conn.Minutes = AssumedConnectionMinutes
		conn.Assumed = true
		return conn
	}

	conn.Minutes = minutes
	return conn
}

// amenityKeywords are matched against lower-cased free-text tags.
var amenityKeywords = map[domain.Amenity][]string{
	domain.AmenityWifi: {"wi-fi", "wifi", "wi fi", "internet", "wireless"},
	domain.AmenitySeatbackScreen: {
		"seatback", "seat-back", "seat back", "personal screen", "personal video",
		"individual screen", "in-seat entertainment", "on-demand video",
	},
	domain.AmenityMobileStreaming: {
		"streaming", "stream to", "personal device", "your device", "mobile entertainment",
	},
	domain.AmenityUSBPower: {"usb", "power outlet", "ac power", "in-seat power", "charging"},
	domain.AmenityLegroom: {
		"extra legroom", "above average legroom", "more legroom", "even more space",
		"economy plus", "comfort+", "main cabin extra",
	},
}

// negatedAmenityMarkers mark a tag as the absence of an amenity ("No Wi-Fi").
var negatedAmenityMarkers = []string{"no ", "not available", "unavailable", "without "}

// detectAmenities records every amenity a tag advertises. Detection is a
// best-effort substring heuristic over free text.
func detectAmenities(tag string, found map[domain.Amenity]bool) {
	lower := strings.ToLower(strings.TrimSpace(tag))
	if lower == "" {
		return
	}
	for _, marker := range negatedAmenityMarkers {
		if strings.HasPrefix(lower, marker) || strings.Contains(lower, " "+marker) {
			return
		}
	}
	for amenity, keywords := range amenityKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				found[amenity] = true
				break
			}
		}
	}
}

// legroomRegex captures the inch figure of tags like "32 in legroom",
// "Average legroom (31 in)" or `seat pitch 34"`.
var legroomRegex = regexp.MustCompile(`(\d{2})(?:\.\d+)?\s*(?:"|”|in\b|inch|inches)`)

func parseLegroom(tag string) (int, bool) {
	lower := strings.ToLower(tag)
	if !strings.Contains(lower, "legroom") && !strings.Contains(lower, "pitch") {
		return 0, false
	}
	m := legroomRegex.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	inches, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return inches, true
}
