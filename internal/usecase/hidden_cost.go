package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
)

// FeeCurrency is the currency all fee estimates are expressed in.
const FeeCurrency = "USD"

// ultraLowCostCarriers charge for carry-on bags and every seat assignment.
var ultraLowCostCarriers = map[string]bool{"NK": true, "F9": true, "G4": true}

// seatFeeCarriers charge economy passengers for choosing a specific seat.
var seatFeeCarriers = map[string]bool{
	"AA": true, "DL": true, "UA": true, "AS": true, "B6": true,
	"AC": true, "BA": true, "LH": true, "AF": true, "KL": true,
}

// freeBagCarriers include checked bags in every fare.
var freeBagCarriers = map[string]int{"WN": 2}

// Fee estimates in USD.
var (
	ulccCarryOnFee      = decimal.NewFromInt(65)
	ulccSeatFee         = decimal.NewFromInt(25)
	majorSeatFee        = decimal.NewFromInt(30)
	standardBagFees     = []decimal.Decimal{decimal.NewFromInt(35), decimal.NewFromInt(45), decimal.NewFromInt(150)}
	ulccBagFees         = []decimal.Decimal{decimal.NewFromInt(60), decimal.NewFromInt(70), decimal.NewFromInt(100)}
	internationalBagFee = []decimal.Decimal{decimal.Zero, decimal.NewFromInt(100), decimal.NewFromInt(200)}
)

// premiumCabins include seat selection.
var premiumCabins = map[string]bool{"premium_economy": true, "business": true, "first": true}

// HiddenCostDetector estimates fees that are not part of the quoted fare.
type HiddenCostDetector struct {
	resolver *AirlineResolver
	airports domain.AirportDirectory
}

// NewHiddenCostDetector creates a detector for one ranking invocation.
func NewHiddenCostDetector(resolver *AirlineResolver, airports domain.AirportDirectory) *HiddenCostDetector {
	return &HiddenCostDetector{resolver: resolver, airports: airports}
}

// Detect returns the hidden-cost line items for one itinerary and their total.
// Amounts cover every ticketed traveller.
func (d *HiddenCostDetector) Detect(it itinerary, profile domain.PreferenceProfile, travellers int, cabin string) ([]domain.HiddenCost, decimal.Decimal) {
	if travellers < 1 {
		travellers = 1
	}
	people := decimal.NewFromInt(int64(travellers))

	var costs []domain.HiddenCost
	costs = append(costs, d.ulccFees(it, profile, people)...)
	if c, ok := d.directionalSeatFee(it, profile, people, cabin); ok {
		costs = append(costs, c)
	}
	if profile.UsesCarSeat {
		costs = append(costs, domain.HiddenCost{
			Type: domain.HiddenCostCarSeat,
			Description: "Car seats must go in a window seat and not in an exit row; " +
				"reserve window seats for the child's row when booking.",
			Amount:   decimal.Zero,
			Currency: FeeCurrency,
			Advisory: true,
		})
	}
	if c, ok := d.checkedBagFees(it, profile.DefaultCheckedBags, people); ok {
		costs = append(costs, c)
	}

	total := decimal.Zero
	for _, c := range costs {
		total = total.Add(c.Amount)
	}
	if costs == nil {
		costs = []domain.HiddenCost{}
	}
	return costs, total
}

// ulccFees adds carry-on (per leg) and seat (per segment) fees for every leg
// flown on an ultra-low-cost carrier.
func (d *HiddenCostDetector) ulccFees(it itinerary, profile domain.PreferenceProfile, people decimal.Decimal) []domain.HiddenCost {
	var (
		legs, segments int
		carrier        string
	)
	for _, leg := range it.Candidate.Itineraries {
		onULCC := false
		for _, seg := range leg.Segments {
			id := d.resolver.Resolve(seg.Airline)
			if ultraLowCostCarriers[id.Code] {
				onULCC = true
				segments++
				if carrier == "" {
					carrier = id.DisplayName(seg.Airline)
				}
			}
		}
		if onULCC {
			legs++
		}
	}
	if legs == 0 {
		return nil
	}

	costs := []domain.HiddenCost{{
		Type: domain.HiddenCostCarryOn,
		Description: fmt.Sprintf("%s charges for carry-on bags (about $%s per traveller per direction)",
			carrier, ulccCarryOnFee.StringFixed(0)),
		Amount:   ulccCarryOnFee.Mul(decimal.NewFromInt(int64(legs))).Mul(people),
		Currency: FeeCurrency,
	}}

	if len(profile.SeatPreferences) > 0 || profile.FamilyMode {
		costs = append(costs, domain.HiddenCost{
			Type: domain.HiddenCostSeatSelection,
			Description: fmt.Sprintf("%s assigns seats at random unless you pay (about $%s per seat per flight)",
				carrier, ulccSeatFee.StringFixed(0)),
			Amount:   ulccSeatFee.Mul(decimal.NewFromInt(int64(segments))).Mul(people),
			Currency: FeeCurrency,
		})
	}
	return costs
}

// directionalSeatFee estimates the cost of guaranteeing a window or aisle seat
// on major carriers in economy.
func (d *HiddenCostDetector) directionalSeatFee(it itinerary, profile domain.PreferenceProfile,
	people decimal.Decimal, cabin string) (domain.HiddenCost, bool) {
	seat := profile.DirectionalSeatPreference()
	if seat == "" || premiumCabins[strings.ToLower(cabin)] {
		return domain.HiddenCost{}, false
	}

	segments := 0
	carrier := ""
	for _, seg := range it.Candidate.Segments() {
		id := d.resolver.Resolve(seg.Airline)
		if seatFeeCarriers[id.Code] {
			segments++
			if carrier == "" {
				carrier = id.DisplayName(seg.Airline)
			}
		}
	}
	if segments == 0 {
		return domain.HiddenCost{}, false
	}

	return domain.HiddenCost{
		Type: domain.HiddenCostSeatSelection,
		Description: fmt.Sprintf("Choosing %s seats on %s usually costs extra in economy (about $%s per seat per flight)",
			seat, carrier, majorSeatFee.StringFixed(0)),
		Amount:   majorSeatFee.Mul(decimal.NewFromInt(int64(segments))).Mul(people),
		Currency: FeeCurrency,
	}, true
}

// checkedBagFees estimates checked-bag cost per leg using the fee schedule of
// the leg's primary carrier.
func (d *HiddenCostDetector) checkedBagFees(it itinerary, bags int, people decimal.Decimal) (domain.HiddenCost, bool) {
	if bags <= 0 {
		return domain.HiddenCost{}, false
	}

	perTraveller := decimal.Zero
	for _, leg := range it.Legs {
		id := d.resolver.Resolve(leg.PrimaryAirline)
		intl := !isDomestic(leg.Origin, leg.Destination, d.airports)
		perTraveller = perTraveller.Add(bagFee(id.Code, bags, intl))
	}
	if perTraveller.IsZero() {
		return domain.HiddenCost{}, false
	}

	noun := "bag"
	if bags > 1 {
		noun = "bags"
	}
	return domain.HiddenCost{
		Type: domain.HiddenCostCheckedBag,
		Description: fmt.Sprintf("%d checked %s per traveller, about $%s each way in total",
			bags, noun, perTraveller.Div(decimal.NewFromInt(int64(max(len(it.Legs), 1)))).StringFixed(0)),
		Amount:   perTraveller.Mul(people),
		Currency: FeeCurrency,
	}, true
}

// bagFee returns the one-way fee for n checked bags on one carrier.
func bagFee(code string, n int, international bool) decimal.Decimal {
	schedule := standardBagFees
	switch {
	case ultraLowCostCarriers[code]:
		schedule = ulccBagFees
	case international:
		schedule = internationalBagFee
	}

	free := freeBagCarriers[code]
	total := decimal.Zero
	for i := 0; i < n; i++ {
		if i < free {
			continue
		}
		total = total.Add(schedule[min(i, len(schedule)-1)])
	}
	return total
}
