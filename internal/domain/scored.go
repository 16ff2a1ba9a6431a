package domain

import "github.com/shopspring/decimal"

// RankCategory is the display tier assigned after sorting.
type RankCategory string

// Rank categories.
const (
	CategoryBest            RankCategory = "best"
	CategoryGoodAlternative RankCategory = "good_alternative"
	CategoryAcceptable      RankCategory = "acceptable"
	CategoryNotRecommended  RankCategory = "not_recommended"
)

// RiskLevel is a three-step risk tier shared by delay and connection risk.
type RiskLevel string

// Risk tiers.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// PriceLevel is the percentile tier of a candidate's price within the batch.
type PriceLevel string

// Price tiers.
const (
	PriceLow    PriceLevel = "low"
	PriceMedium PriceLevel = "medium"
	PriceHigh   PriceLevel = "high"
)

// ScoreBreakdown holds the eight dimension scores in [0,100] and the adjusted total.
type ScoreBreakdown struct {
	Nonstop            int `json:"nonstop"`
	TravelTime         int `json:"travelTime"`
	LayoverQuality     int `json:"layoverQuality"`
	DepartureTime      int `json:"departureTime"`
	ArrivalTime        int `json:"arrivalTime"`
	AirlineReliability int `json:"airlineReliability"`
	Price              int `json:"price"`
	Amenities          int `json:"amenities"`

	// Total is the weighted aggregate after penalty, boost and price-tier adjustments
	Total int `json:"total"`
}

// Dimensions returns the eight dimension scores keyed by name.
func (b ScoreBreakdown) Dimensions() map[string]int {
	return map[string]int{
		"nonstop":            b.Nonstop,
		"travelTime":         b.TravelTime,
		"layoverQuality":     b.LayoverQuality,
		"departureTime":      b.DepartureTime,
		"arrivalTime":        b.ArrivalTime,
		"airlineReliability": b.AirlineReliability,
		"price":              b.Price,
		"amenities":          b.Amenities,
	}
}

// PreferenceMatch records whether one traveller preference was satisfied.
type PreferenceMatch struct {
	// Preference is a machine-readable key (e.g., "nonstop", "preferred_airline")
	Preference string `json:"preference"`

	// Positive is true when the preference is satisfied
	Positive bool `json:"positive"`

	// Detail is a short human-readable description
	Detail string `json:"detail"`

	// Subject names what the preference was checked against (airline, airport, amenity)
	Subject string `json:"subject,omitempty"`
}

// HiddenCostType classifies a hidden-cost line item.
type HiddenCostType string

// Hidden cost types.
const (
	HiddenCostCarryOn       HiddenCostType = "carry_on_fee"
	HiddenCostSeatSelection HiddenCostType = "seat_selection_fee"
	HiddenCostCheckedBag    HiddenCostType = "checked_bag_fee"
	HiddenCostCarSeat       HiddenCostType = "car_seat_advisory"
)

// HiddenCost is one estimated fee or advisory not included in the fare.
type HiddenCost struct {
	Type        HiddenCostType  `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`

	// Advisory items carry no cost of their own
	Advisory bool `json:"advisory"`
}

// ConnectionRisk is the misconnect assessment for one connection.
type ConnectionRisk struct {
	LegIndex           int       `json:"legIndex"`
	Airport            string    `json:"airport"`
	Minutes            int       `json:"minutes"`
	RequiredMinutes    int       `json:"requiredMinutes"`
	ComfortableMinutes int       `json:"comfortableMinutes"`
	International      bool      `json:"international"`
	TerminalChange     bool      `json:"terminalChange"`
	AirportChange      bool      `json:"airportChange"`
	Level              RiskLevel `json:"level"`
	Advisory           string    `json:"advisory"`
}

// PriceInsight classifies a price against the batch and gives booking advice.
type PriceInsight struct {
	Level              PriceLevel `json:"level"`
	Label              string     `json:"label"`
	Percentile         float64    `json:"percentile"`
	DaysUntilDeparture *int       `json:"daysUntilDeparture,omitempty"`
	Domestic           bool       `json:"domestic"`
	BookingWindow      string     `json:"bookingWindow"`
	Advice             string     `json:"advice"`
	RecheckDate        string     `json:"recheckDate,omitempty"`
}

// MatchExplanation lists why a candidate is not a perfect match and why it is still good.
type MatchExplanation struct {
	WhyNotPerfect []string `json:"whyNotPerfect"`
	WhyStillGood  []string `json:"whyStillGood"`
}

// ScoredFlight is an annotated copy of a candidate in final display order.
type ScoredFlight struct {
	FlightCandidate

	// PrimaryAirline is the resolved identity of the first segment's airline
	PrimaryAirline AirlineIdentity `json:"primaryAirline"`

	Breakdown ScoreBreakdown `json:"breakdown"`

	IsPreferredAirline bool `json:"isPreferredAirline"`
	IsAvoidedAirline   bool `json:"isAvoidedAirline"`

	// AvoidedPenalty and PreferredBoost are the flat adjustments actually applied
	AvoidedPenalty   int `json:"avoidedPenalty"`
	PreferredBoost   int `json:"preferredBoost"`
	PriceTierPenalty int `json:"priceTierPenalty"`

	DelayRisk         RiskLevel         `json:"delayRisk"`
	DelayRiskPoints   int               `json:"delayRiskPoints"`
	FamilyStressScore *int              `json:"familyStressScore,omitempty"`
	HiddenCosts       []HiddenCost      `json:"hiddenCosts"`
	ConnectionRisks   []ConnectionRisk  `json:"connectionRisks"`
	PreferenceMatches []PreferenceMatch `json:"preferenceMatches"`
	PriceInsight      PriceInsight      `json:"priceInsight"`

	HiddenCostTotal     decimal.Decimal `json:"hiddenCostTotal"`
	EstimatedTotalPrice decimal.Decimal `json:"estimatedTotalPrice"`
	PricePerTicket      decimal.Decimal `json:"pricePerTicket"`
	BookingURL          string          `json:"bookingUrl,omitempty"`

	// Rank is the 1-based display position; avoided candidates continue after the rest
	Rank             int               `json:"rank"`
	RankCategory     RankCategory      `json:"rankCategory"`
	Explanation      string            `json:"explanation"`
	MatchExplanation *MatchExplanation `json:"matchExplanation,omitempty"`

	// TotalDurationMinutes is the summed segment duration across all legs
	TotalDurationMinutes int `json:"totalDurationMinutes"`
}
