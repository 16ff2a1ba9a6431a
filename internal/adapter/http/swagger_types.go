// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerRankFlightsRequest documents the body of POST /api/v1/flights/rank.
// @Description Candidates of one search and the traveller's preferences
type SwaggerRankFlightsRequest struct {
	// Candidates are the priced itineraries to rank
	Candidates []SwaggerFlightCandidate `json:"candidates"`

	// Preferences is the traveller's preference profile
	Preferences SwaggerPreferenceProfile `json:"preferences"`

	// PriceContext carries prices of the wider search when candidates is a subset
	PriceContext []float64 `json:"priceContext,omitempty" example:"289,315,410"`

	// Passengers breaks the party down (default 1 adult)
	Passengers *PassengersDTO `json:"passengers,omitempty"`

	// CabinClass overrides preferences.cabinClass
	CabinClass string `json:"cabinClass,omitempty" example:"economy"`

	// Filters are applied before scoring
	Filters *FilterDTO `json:"filters,omitempty"`
}

// SwaggerRankBatchRequest documents the body of POST /api/v1/flights/rank/batch.
// @Description Independent searches ranked concurrently
type SwaggerRankBatchRequest struct {
	Searches []SwaggerRankFlightsRequest `json:"searches"`
}

// SwaggerFlightCandidate represents one priced itinerary option.
// @Description Flight candidate submitted for ranking
type SwaggerFlightCandidate struct {
	// ID uniquely identifies the candidate within a search
	ID string `json:"id" example:"b6-1707-jfk-lax"`

	// Price is the total fare for all travellers
	Price float64 `json:"price" example:"289"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"USD"`

	// Provider optionally names where the offer came from
	Provider string `json:"provider,omitempty" example:"gds"`

	// Itineraries holds one leg per direction
	Itineraries []SwaggerLeg `json:"itineraries"`
}

// SwaggerLeg is one directional portion of a trip.
// @Description Outbound or return leg
type SwaggerLeg struct {
	Segments []SwaggerSegment `json:"segments"`
}

// SwaggerSegment is a single flight between two airports.
// @Description Flight segment
type SwaggerSegment struct {
	DepartureAirport  string `json:"departureAirport" example:"JFK"`
	ArrivalAirport    string `json:"arrivalAirport" example:"LAX"`
	DepartureTerminal string `json:"departureTerminal,omitempty" example:"5"`
	ArrivalTerminal   string `json:"arrivalTerminal,omitempty" example:"5"`

	// DepartureTime is local time, RFC3339 or zone-less ISO 8601
	DepartureTime string `json:"departureTime,omitempty" example:"2026-04-10T08:15:00"`
	ArrivalTime   string `json:"arrivalTime,omitempty" example:"2026-04-10T11:40:00"`

	// Airline is a code, name or flight-number prefix
	Airline      string `json:"airline" example:"B6"`
	FlightNumber string `json:"flightNumber,omitempty" example:"B61707"`

	// Duration accepts minutes or a string such as "6h 25m" or "PT6H25M"
	Duration int `json:"duration" example:"385"`

	Cabin     string   `json:"cabin,omitempty" example:"economy"`
	Amenities []string `json:"amenities,omitempty" example:"Free Wi-Fi,Seatback screen"`
}

// SwaggerPreferenceProfile describes what the traveller wants.
// @Description Traveller preference profile; every field is optional
type SwaggerPreferenceProfile struct {
	PreferNonstop           bool     `json:"preferNonstop" example:"true"`
	PreferredAirlines       []string `json:"preferredAirlines,omitempty" example:"JetBlue,DL"`
	AvoidedAirlines         []string `json:"avoidedAirlines,omitempty" example:"Spirit"`
	PreferredAlliances      []string `json:"preferredAlliances,omitempty" example:"oneworld"`
	PreferredDepartureTimes []string `json:"preferredDepartureTimes,omitempty" example:"morning,afternoon"`
	AllowRedEye             *bool    `json:"allowRedEye,omitempty" example:"false"`

	MinConnectionMinutes       int `json:"minConnectionMinutes,omitempty" example:"45"`
	MaxConnectionMinutes       int `json:"maxConnectionMinutes,omitempty" example:"360"`
	FamilyMinConnectionMinutes int `json:"familyMinConnectionMinutes,omitempty" example:"75"`
	FamilyMaxConnectionMinutes int `json:"familyMaxConnectionMinutes,omitempty" example:"300"`

	MaxTotalTravelHours float64 `json:"maxTotalTravelHours,omitempty" example:"8"`

	// AmenityRequirements maps wifi, seatback_screen, mobile_streaming, usb_power, legroom
	// to none, nice_to_have or must_have
	AmenityRequirements map[string]string `json:"amenityRequirements,omitempty"`

	MinLegroomInches   int      `json:"minLegroomInches,omitempty" example:"32"`
	SeatPreferences    []string `json:"seatPreferences,omitempty" example:"aisle"`
	DefaultCheckedBags int      `json:"defaultCheckedBags,omitempty" example:"1"`
	FamilyMode         bool     `json:"familyMode" example:"false"`
	UsesCarSeat        bool     `json:"usesCarSeat,omitempty" example:"false"`
	CabinClass         string   `json:"cabinClass,omitempty" example:"economy"`
}
