package usecase

import (
	"fmt"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// Delay risk points, accumulated per leg.
const (
	delayCongestedDeparture = 15
	delayCongestedArrival   = 10
	delayAfternoonDeparture = 10
	delayLowReliability     = 15
	delayHasConnection      = 20

	delayReliabilityFloor = 75
	delayMediumThreshold  = 20
	delayHighThreshold    = 40
)

// Family stress points.
const (
	stressBelowFamilyMinimum = 30
	stressShortConnection    = 15
	stressPoorAirport        = 15
	stressEarlyDeparture     = 20
	stressLateArrival        = 15

	stressShortConnectionMinutes = 90
	stressPoorAirportQuality     = 70
	stressEarlyHour              = 7
	stressLateHour               = 22
	maxFamilyStress              = 100
)

// Connection risk minutes.
const (
	connectionBaseDomestic      = 60
	connectionBaseInternational = 120
	connectionKidsExtra         = 30
	connectionTerminalExtra     = 15
	connectionAirportExtra      = 120
)

// RiskAnalyzer computes delay risk, family stress and per-connection risk.
// All signals are independent of the aggregate score.
type RiskAnalyzer struct {
	airports domain.AirportDirectory
	resolver *AirlineResolver
}

// NewRiskAnalyzer creates an analyzer for one ranking invocation.
func NewRiskAnalyzer(airports domain.AirportDirectory, resolver *AirlineResolver) *RiskAnalyzer {
	return &RiskAnalyzer{airports: airports, resolver: resolver}
}

// DelayRisk accumulates per-leg delay points and maps them to a tier.
func (a *RiskAnalyzer) DelayRisk(it itinerary) (domain.RiskLevel, int) {
	points := 0
	for _, leg := range it.Legs {
		if isCongested(a.airports, leg.Origin) {
			points += delayCongestedDeparture
		}
		if isCongested(a.airports, leg.Destination) {
			points += delayCongestedArrival
		}
		if h := leg.DepartureHour(); leg.HasDeparture && h >= 14 && h < 20 {
			points += delayAfternoonDeparture
		}
		if a.resolver.Resolve(leg.PrimaryAirline).ReliabilityOrDefault() < delayReliabilityFloor {
			points += delayLowReliability
		}
		if leg.Connections > 0 {
			points += delayHasConnection
		}
	}
	return delayLevel(points), points
}

func delayLevel(points int) domain.RiskLevel {
	switch {
	case points >= delayHighThreshold:
		return domain.RiskHigh
	case points >= delayMediumThreshold:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// FamilyStress scores how hard the itinerary is on a family, capped at 100.
// Departure and arrival are taken from the outbound leg.
func (a *RiskAnalyzer) FamilyStress(it itinerary, profile domain.PreferenceProfile) int {
	familyMin := profile.FamilyMinConnection()
	score := 0

	for _, conn := range it.Connections {
		switch {
		case conn.Minutes < familyMin:
			score += stressBelowFamilyMinimum
		case conn.Minutes < stressShortConnectionMinutes:
			score += stressShortConnection
		}
		if airportQuality(a.airports, conn.Airport) < stressPoorAirportQuality {
			score += stressPoorAirport
		}
	}

	outbound := it.Outbound()
	if outbound.HasDeparture && outbound.DepartureHour() < stressEarlyHour {
		score += stressEarlyDeparture
	}
	if outbound.HasArrival && lateArrival(outbound) {
		score += stressLateArrival
	}

	return min(score, maxFamilyStress)
}

// lateArrival reports an arrival strictly after 22:00.
func lateArrival(leg legFacts) bool {
	h, m := leg.Arrival.Hour(), leg.Arrival.Minute()
	return h > stressLateHour || (h == stressLateHour && m > 0)
}

// ConnectionRisks assesses every connection of every leg.
func (a *RiskAnalyzer) ConnectionRisks(it itinerary, withKids bool) []domain.ConnectionRisk {
	risks := make([]domain.ConnectionRisk, 0, len(it.Connections))
	for _, conn := range it.Connections {
		risks = append(risks, a.connectionRisk(conn, withKids))
	}
	return risks
}

func (a *RiskAnalyzer) connectionRisk(conn connection, withKids bool) domain.ConnectionRisk {
	international := !isDomestic(conn.Inbound.DepartureAirport, conn.Inbound.ArrivalAirport, a.airports) ||
		!isDomestic(conn.Outbound.DepartureAirport, conn.Outbound.ArrivalAirport, a.airports)

	required := connectionBaseDomestic
	if international {
		required = connectionBaseInternational
	}
	if withKids {
		required += connectionKidsExtra
	}
	terminalChange := conn.TerminalChange()
	if terminalChange {
		required += connectionTerminalExtra
	}
	airportChange := conn.AirportChange()
	if airportChange {
		required += connectionAirportExtra
	}
	comfortable := required * 3 / 2

	risk := domain.ConnectionRisk{
		LegIndex:           conn.LegIndex,
		Airport:            conn.Airport,
		Minutes:            conn.Minutes,
		RequiredMinutes:    required,
		ComfortableMinutes: comfortable,
		International:      international,
		TerminalChange:     terminalChange,
		AirportChange:      airportChange,
	}

	switch {
	case conn.Minutes < required:
		risk.Level = domain.RiskHigh
		risk.Advisory = fmt.Sprintf(
			"%d min at %s is below the %d min needed and a missed connection is likely. "+
				"Keep both flights on one ticket so the airline must rebook you, or pick a later connection.",
			conn.Minutes, conn.Airport, required)
	case conn.Minutes < comfortable:
		risk.Level = domain.RiskMedium
		risk.Advisory = fmt.Sprintf(
			"%d min at %s is workable but tight; sit near the front and head straight to the next gate.",
			conn.Minutes, conn.Airport)
	default:
		risk.Level = domain.RiskLow
		risk.Advisory = fmt.Sprintf("%d min at %s leaves comfortable time to connect.", conn.Minutes, conn.Airport)
	}

	if airportChange {
		risk.Advisory += fmt.Sprintf(" You must travel from %s to %s between flights.",
			conn.Inbound.ArrivalAirport, conn.Outbound.DepartureAirport)
	} else if terminalChange {
		risk.Advisory += fmt.Sprintf(" Terminal change from %s to %s.",
			conn.Inbound.ArrivalTerminal, conn.Outbound.DepartureTerminal)
	}
	if conn.Assumed {
		risk.Advisory += " Connection time could not be computed from the schedule."
	}

	return risk
}
