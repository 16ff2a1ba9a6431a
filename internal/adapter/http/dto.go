package http

import (
	"github.com/shopspring/decimal"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// RankResponseDTO is the data transfer object for ranking responses.
// Results are in display order; clients must not re-sort them.
type RankResponseDTO struct {
	Metadata MetadataDTO       `json:"metadata"`
	Results  []RankedFlightDTO `json:"results"`
}

// RankBatchResponseDTO wraps the responses of a batch call in request order.
type RankBatchResponseDTO struct {
	Results []RankResponseDTO `json:"results"`
}

// MetadataDTO contains metadata about the ranking execution.
type MetadataDTO struct {
	SearchID        string `json:"search_id"`
	TotalCandidates int    `json:"total_candidates"`
	FilteredOut     int    `json:"filtered_out"`
	TotalResults    int    `json:"total_results"`
	AvoidedResults  int    `json:"avoided_results"`
	RankingTimeMs   int64  `json:"ranking_time_ms"`
}

// RankedFlightDTO is one ranked, annotated candidate.
type RankedFlightDTO struct {
	Rank             int                  `json:"rank"`
	ID               string               `json:"id"`
	Category         string               `json:"category"`
	Explanation      string               `json:"explanation"`
	MatchExplanation *MatchExplanationDTO `json:"match_explanation,omitempty"`
	Provider         string               `json:"provider,omitempty"`

	Airline            AirlineDTO `json:"airline"`
	IsPreferredAirline bool       `json:"is_preferred_airline"`
	IsAvoidedAirline   bool       `json:"is_avoided_airline"`

	Stops    int         `json:"stops"`
	Duration DurationDTO `json:"duration"`
	Price    PriceDTO    `json:"price"`
	Score    ScoreDTO    `json:"score"`

	DelayRisk         RiskDTO              `json:"delay_risk"`
	FamilyStressScore *int                 `json:"family_stress_score,omitempty"`
	ConnectionRisks   []ConnectionRiskDTO  `json:"connection_risks"`
	HiddenCosts       []HiddenCostDTO      `json:"hidden_costs"`
	PreferenceMatches []PreferenceMatchDTO `json:"preference_matches"`
	PriceInsight      PriceInsightDTO      `json:"price_insight"`

	BookingURL  string   `json:"booking_url,omitempty"`
	Itineraries []LegDTO `json:"itineraries"`
}

// AirlineDTO is the resolved identity of an airline.
type AirlineDTO struct {
	Code        string `json:"code,omitempty"`
	Name        string `json:"name"`
	Alliance    string `json:"alliance,omitempty"`
	Reliability int    `json:"reliability"`
	Known       bool   `json:"known"`
}

// DurationDTO represents total flying time.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

// PriceDTO carries the fare and derived amounts as fixed-point strings.
type PriceDTO struct {
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	PerTicket       string  `json:"per_ticket"`
	HiddenCostTotal string  `json:"hidden_cost_total"`
	EstimatedTotal  string  `json:"estimated_total"`
}

// ScoreDTO is the total score, its dimensions and the flat adjustments applied.
type ScoreDTO struct {
	Total       int            `json:"total"`
	Breakdown   map[string]int `json:"breakdown"`
	Adjustments AdjustmentsDTO `json:"adjustments"`
}

// AdjustmentsDTO lists the flat adjustments applied after weighting.
type AdjustmentsDTO struct {
	AvoidedPenalty   int `json:"avoided_penalty"`
	PreferredBoost   int `json:"preferred_boost"`
	PriceTierPenalty int `json:"price_tier_penalty"`
}

// RiskDTO is a risk tier with the points behind it.
type RiskDTO struct {
	Level  string `json:"level"`
	Points int    `json:"points"`
}

// ConnectionRiskDTO is the misconnect assessment for one connection.
type ConnectionRiskDTO struct {
	Leg                int    `json:"leg"`
	Airport            string `json:"airport"`
	Minutes            int    `json:"minutes"`
	RequiredMinutes    int    `json:"required_minutes"`
	ComfortableMinutes int    `json:"comfortable_minutes"`
	International      bool   `json:"international"`
	TerminalChange     bool   `json:"terminal_change"`
	AirportChange      bool   `json:"airport_change"`
	Level              string `json:"level"`
	Advisory           string `json:"advisory"`
}

// HiddenCostDTO is one estimated fee or advisory.
type HiddenCostDTO struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Advisory    bool   `json:"advisory"`
}

// PreferenceMatchDTO records one satisfied or unmet preference.
type PreferenceMatchDTO struct {
	Preference string `json:"preference"`
	Positive   bool   `json:"positive"`
	Detail     string `json:"detail"`
	Subject    string `json:"subject,omitempty"`
}

// PriceInsightDTO is the price tier and booking advice.
type PriceInsightDTO struct {
	Level              string  `json:"level"`
	Label              string  `json:"label"`
	Percentile         float64 `json:"percentile"`
	DaysUntilDeparture *int    `json:"days_until_departure,omitempty"`
	BookingWindow      string  `json:"booking_window"`
	Advice             string  `json:"advice"`
	RecheckDate        string  `json:"recheck_date,omitempty"`
}

// MatchExplanationDTO explains a non-perfect top result.
type MatchExplanationDTO struct {
	WhyNotPerfect []string `json:"why_not_perfect"`
	WhyStillGood  []string `json:"why_still_good"`
}

// LegDTO is one directional leg.
type LegDTO struct {
	Stops    int          `json:"stops"`
	Segments []SegmentDTO `json:"segments"`
}

// SegmentDTO is one flight of a leg.
type SegmentDTO struct {
	FlightNumber     string   `json:"flight_number,omitempty"`
	Airline          string   `json:"airline"`
	DepartureAirport string   `json:"departure_airport"`
	ArrivalAirport   string   `json:"arrival_airport"`
	DepartureTime    string   `json:"departure_time,omitempty"`
	ArrivalTime      string   `json:"arrival_time,omitempty"`
	DurationMinutes  int      `json:"duration_minutes"`
	Cabin            string   `json:"cabin,omitempty"`
	Amenities        []string `json:"amenities"`
}

// ResolveAirlineResponseDTO is the response of the resolve endpoint.
type ResolveAirlineResponseDTO struct {
	Input   string     `json:"input"`
	Airline AirlineDTO `json:"airline"`
}

// ToRankResponseDTO converts a domain RankResponse to a RankResponseDTO.
func ToRankResponseDTO(resp *domain.RankResponse) *RankResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &RankResponseDTO{
		Metadata: MetadataDTO{
			SearchID:        resp.Metadata.SearchID,
			TotalCandidates: resp.Metadata.TotalCandidates,
			FilteredOut:     resp.Metadata.FilteredOut,
			TotalResults:    resp.Metadata.TotalResults,
			AvoidedResults:  resp.Metadata.AvoidedResults,
			RankingTimeMs:   resp.Metadata.RankingTimeMs,
		},
		Results: make([]RankedFlightDTO, len(resp.Results)),
	}

	for i := range resp.Results {
		dto.Results[i] = ToRankedFlightDTO(&resp.Results[i])
	}

	return dto
}

// ToRankBatchResponseDTO converts batch responses, keeping request order.
func ToRankBatchResponseDTO(resps []*domain.RankResponse) *RankBatchResponseDTO {
	dto := &RankBatchResponseDTO{Results: make([]RankResponseDTO, 0, len(resps))}
	for _, r := range resps {
		if converted := ToRankResponseDTO(r); converted != nil {
			dto.Results = append(dto.Results, *converted)
		}
	}
	return dto
}

// ToRankedFlightDTO converts a domain ScoredFlight to a RankedFlightDTO.
func ToRankedFlightDTO(f *domain.ScoredFlight) RankedFlightDTO {
	dto := RankedFlightDTO{
		Rank:               f.Rank,
		ID:                 f.ID,
		Category:           string(f.RankCategory),
		Explanation:        f.Explanation,
		Provider:           f.Provider,
		Airline:            ToAirlineDTO(f.PrimaryAirline, f.FlightCandidate.PrimaryAirline()),
		IsPreferredAirline: f.IsPreferredAirline,
		IsAvoidedAirline:   f.IsAvoidedAirline,
		Stops:              f.TotalStops(),
		Duration: DurationDTO{
			TotalMinutes: f.TotalDurationMinutes,
			Formatted:    domain.FormatDuration(f.TotalDurationMinutes),
		},
		Price: PriceDTO{
			Amount:          f.Price,
			Currency:        f.Currency,
			PerTicket:       money(f.PricePerTicket),
			HiddenCostTotal: money(f.HiddenCostTotal),
			EstimatedTotal:  money(f.EstimatedTotalPrice),
		},
		Score: ScoreDTO{
			Total:     f.Breakdown.Total,
			Breakdown: f.Breakdown.Dimensions(),
			Adjustments: AdjustmentsDTO{
				AvoidedPenalty:   f.AvoidedPenalty,
				PreferredBoost:   f.PreferredBoost,
				PriceTierPenalty: f.PriceTierPenalty,
			},
		},
		DelayRisk: RiskDTO{
			Level:  string(f.DelayRisk),
			Points: f.DelayRiskPoints,
		},
		FamilyStressScore: f.FamilyStressScore,
		ConnectionRisks:   make([]ConnectionRiskDTO, len(f.ConnectionRisks)),
		HiddenCosts:       make([]HiddenCostDTO, len(f.HiddenCosts)),
		PreferenceMatches: make([]PreferenceMatchDTO, len(f.PreferenceMatches)),
		PriceInsight: PriceInsightDTO{
			Level:              string(f.PriceInsight.Level),
			Label:              f.PriceInsight.Label,
			Percentile:         f.PriceInsight.Percentile,
			DaysUntilDeparture: f.PriceInsight.DaysUntilDeparture,
			BookingWindow:      f.PriceInsight.BookingWindow,
			Advice:             f.PriceInsight.Advice,
			RecheckDate:        f.PriceInsight.RecheckDate,
		},
		BookingURL:  f.BookingURL,
		Itineraries: make([]LegDTO, len(f.Itineraries)),
	}

	if f.MatchExplanation != nil {
		dto.MatchExplanation = &MatchExplanationDTO{
			WhyNotPerfect: f.MatchExplanation.WhyNotPerfect,
			WhyStillGood:  f.MatchExplanation.WhyStillGood,
		}
	}

	for i, r := range f.ConnectionRisks {
		dto.ConnectionRisks[i] = ConnectionRiskDTO{
			Leg:                r.LegIndex,
			Airport:            r.Airport,
			Minutes:            r.Minutes,
			RequiredMinutes:    r.RequiredMinutes,
			ComfortableMinutes: r.ComfortableMinutes,
			International:      r.International,
			TerminalChange:     r.TerminalChange,
			AirportChange:      r.AirportChange,
			Level:              string(r.Level),
			Advisory:           r.Advisory,
		}
	}

	for i, c := range f.HiddenCosts {
		dto.HiddenCosts[i] = HiddenCostDTO{
			Type:        string(c.Type),
			Description: c.Description,
			Amount:      money(c.Amount),
			Currency:    c.Currency,
			Advisory:    c.Advisory,
		}
	}

	for i, m := range f.PreferenceMatches {
		dto.PreferenceMatches[i] = PreferenceMatchDTO{
			Preference: m.Preference,
			Positive:   m.Positive,
			Detail:     m.Detail,
			Subject:    m.Subject,
		}
	}

	for i, leg := range f.Itineraries {
		dto.Itineraries[i] = toLegDTO(leg)
	}

	return dto
}

// ToAirlineDTO converts a resolved identity, falling back to the raw string for the name.
func ToAirlineDTO(id domain.AirlineIdentity, raw string) AirlineDTO {
	return AirlineDTO{
		Code:        id.Code,
		Name:        id.DisplayName(raw),
		Alliance:    id.Alliance,
		Reliability: id.ReliabilityOrDefault(),
		Known:       id.Known,
	}
}

func toLegDTO(leg domain.Leg) LegDTO {
	dto := LegDTO{
		Stops:    leg.Stops(),
		Segments: make([]SegmentDTO, len(leg.Segments)),
	}
	for i, s := range leg.Segments {
		amenities := s.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		dto.Segments[i] = SegmentDTO{
			FlightNumber:     s.FlightNumber,
			Airline:          s.Airline,
			DepartureAirport: s.DepartureAirport,
			ArrivalAirport:   s.ArrivalAirport,
			DepartureTime:    s.DepartureTime,
			ArrivalTime:      s.ArrivalTime,
			DurationMinutes:  s.Duration.Minutes(),
			Cabin:            s.Cabin,
			Amenities:        amenities,
		}
	}
	return dto
}

// money formats an amount with two decimals.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
