package domain

import "strings"

// TimeBucket is a named window of the day used for departure preferences.
type TimeBucket string

// Departure time buckets keyed by local hour.
const (
	BucketEarlyMorning TimeBucket = "early_morning" // 05:00-07:59
	BucketMorning      TimeBucket = "morning"       // 08:00-11:59
	BucketAfternoon    TimeBucket = "afternoon"     // 12:00-16:59
	BucketEvening      TimeBucket = "evening"       // 17:00-20:59
	BucketRedEye       TimeBucket = "red_eye"       // 21:00-04:59
)

// IsValid checks if the bucket is a known value.
func (b TimeBucket) IsValid() bool {
	switch b {
	case BucketEarlyMorning, BucketMorning, BucketAfternoon, BucketEvening, BucketRedEye:
		return true
	default:
		return false
	}
}

// Label returns a human-readable name for explanation text.
func (b TimeBucket) Label() string {
	return strings.ReplaceAll(string(b), "_", " ")
}

// BucketForHour maps a local hour (0-23) to its time bucket.
func BucketForHour(hour int) TimeBucket {
	switch {
	case hour >= 5 && hour < 8:
		return BucketEarlyMorning
	case hour >= 8 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 17:
		return BucketAfternoon
	case hour >= 17 && hour < 21:
		return BucketEvening
	default:
		return BucketRedEye
	}
}

// AmenityLevel expresses how much the traveller cares about an amenity.
type AmenityLevel string

// Amenity requirement levels.
const (
	AmenityNone       AmenityLevel = "none"
	AmenityNiceToHave AmenityLevel = "nice_to_have"
	AmenityMustHave   AmenityLevel = "must_have"
)

// IsValid checks if the level is a known value.
func (l AmenityLevel) IsValid() bool {
	switch l {
	case AmenityNone, AmenityNiceToHave, AmenityMustHave, "":
		return true
	default:
		return false
	}
}

// Amenity identifies a detectable on-board amenity.
type Amenity string

// Amenities detected from free-text segment tags.
const (
	AmenityWifi            Amenity = "wifi"
	AmenitySeatbackScreen  Amenity = "seatback_screen"
	AmenityMobileStreaming Amenity = "mobile_streaming"
	AmenityUSBPower        Amenity = "usb_power"
	AmenityLegroom         Amenity = "legroom"
)

// AllAmenities lists amenities in a stable evaluation order.
var AllAmenities = []Amenity{
	AmenityWifi,
	AmenitySeatbackScreen,
	AmenityMobileStreaming,
	AmenityUSBPower,
	AmenityLegroom,
}

// IsValid checks if the amenity is a known value.
func (a Amenity) IsValid() bool {
	for _, known := range AllAmenities {
		if a == known {
			return true
		}
	}
	return false
}

// Label returns a human-readable amenity name.
func (a Amenity) Label() string {
	switch a {
	case AmenityWifi:
		return "Wi-Fi"
	case AmenitySeatbackScreen:
		return "seatback screen"
	case AmenityMobileStreaming:
		return "mobile streaming"
	case AmenityUSBPower:
		return "USB/power outlets"
	case AmenityLegroom:
		return "extra legroom"
	default:
		return string(a)
	}
}

// Default connection bounds in minutes.
const (
	DefaultMinConnectionMinutes       = 45
	DefaultMaxConnectionMinutes       = 360
	DefaultFamilyMinConnectionMinutes = 75
	DefaultFamilyMaxConnectionMinutes = 300
)

// PreferenceProfile describes what a traveller wants. It is read-only per ranking call.
type PreferenceProfile struct {
	// PreferNonstop penalises connecting itineraries in the nonstop dimension
	PreferNonstop bool `json:"preferNonstop" yaml:"prefer_nonstop"`

	// PreferredAirlines and AvoidedAirlines accept codes, names or aliases
	PreferredAirlines []string `json:"preferredAirlines,omitempty" yaml:"preferred_airlines"`
	AvoidedAirlines   []string `json:"avoidedAirlines,omitempty" yaml:"avoided_airlines"`

	// PreferredAlliances lists alliance names (e.g., "Star Alliance", "oneworld")
	PreferredAlliances []string `json:"preferredAlliances,omitempty" yaml:"preferred_alliances"`

	// PreferredDepartureTimes lists acceptable departure buckets; empty means no preference
	PreferredDepartureTimes []TimeBucket `json:"preferredDepartureTimes,omitempty" yaml:"preferred_departure_times"`

	// AllowRedEye defaults to true when unset
	AllowRedEye *bool `json:"allowRedEye,omitempty" yaml:"allow_red_eye"`

	MinConnectionMinutes       int `json:"minConnectionMinutes,omitempty" yaml:"min_connection_minutes"`
	MaxConnectionMinutes       int `json:"maxConnectionMinutes,omitempty" yaml:"max_connection_minutes"`
	FamilyMinConnectionMinutes int `json:"familyMinConnectionMinutes,omitempty" yaml:"family_min_connection_minutes"`
	FamilyMaxConnectionMinutes int `json:"familyMaxConnectionMinutes,omitempty" yaml:"family_max_connection_minutes"`

	// MaxTotalTravelHours caps acceptable door-to-door flying time; 0 means no cap
	MaxTotalTravelHours float64 `json:"maxTotalTravelHours,omitempty" yaml:"max_total_travel_hours"`

	// AmenityRequirements maps amenity to requirement level
	AmenityRequirements map[Amenity]AmenityLevel `json:"amenityRequirements,omitempty" yaml:"amenity_requirements"`

	// MinLegroomInches overrides the batch-derived legroom threshold when positive
	MinLegroomInches int `json:"minLegroomInches,omitempty" yaml:"min_legroom_inches"`

	// SeatPreferences lists seat wishes such as "window", "aisle", "extra_legroom"
	SeatPreferences []string `json:"seatPreferences,omitempty" yaml:"seat_preferences"`

	// DefaultCheckedBags sizes checked-bag cost estimates
	DefaultCheckedBags int `json:"defaultCheckedBags,omitempty" yaml:"default_checked_bags"`

	// FamilyMode enables family-stress scoring and family connection bounds
	FamilyMode bool `json:"familyMode" yaml:"family_mode"`

	// UsesCarSeat triggers the car-seat window-seat advisory
	UsesCarSeat bool `json:"usesCarSeat,omitempty" yaml:"uses_car_seat"`

	// CabinClass is the requested cabin (economy, premium_economy, business, first)
	CabinClass string `json:"cabinClass,omitempty" yaml:"cabin_class"`
}

// AllowsRedEye reports whether red-eye departures are acceptable.
func (p PreferenceProfile) AllowsRedEye() bool {
	if p.AllowRedEye == nil {
		return true
	}
	return *p.AllowRedEye
}

// MinConnection returns the effective minimum comfortable connection.
func (p PreferenceProfile) MinConnection() int {
	if p.MinConnectionMinutes > 0 {
		return p.MinConnectionMinutes
	}
	return DefaultMinConnectionMinutes
}

// MaxConnection returns the effective maximum acceptable connection.
func (p PreferenceProfile) MaxConnection() int {
	if p.MaxConnectionMinutes > 0 {
		return p.MaxConnectionMinutes
	}
	return DefaultMaxConnectionMinutes
}

// FamilyMinConnection returns the minimum connection for family travel.
func (p PreferenceProfile) FamilyMinConnection() int {
	if p.FamilyMinConnectionMinutes > 0 {
		return p.FamilyMinConnectionMinutes
	}
	return DefaultFamilyMinConnectionMinutes
}

// FamilyMaxConnection returns the maximum connection for family travel.
func (p PreferenceProfile) FamilyMaxConnection() int {
	if p.FamilyMaxConnectionMinutes > 0 {
		return p.FamilyMaxConnectionMinutes
	}
	return DefaultFamilyMaxConnectionMinutes
}

// AmenityLevelFor returns the requirement level for an amenity, defaulting to none.
func (p PreferenceProfile) AmenityLevelFor(a Amenity) AmenityLevel {
	if level, ok := p.AmenityRequirements[a]; ok && level != "" {
		return level
	}
	return AmenityNone
}

// PrefersBucket reports whether the bucket is in the preferred set.
func (p PreferenceProfile) PrefersBucket(b TimeBucket) bool {
	for _, pref := range p.PreferredDepartureTimes {
		if pref == b {
			return true
		}
	}
	return false
}

// HasDirectionalSeatPreference reports a window or aisle seat preference.
func (p PreferenceProfile) HasDirectionalSeatPreference() bool {
	for _, s := range p.SeatPreferences {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "window", "aisle":
			return true
		}
	}
	return false
}

// DirectionalSeatPreference returns the first window/aisle preference, if any.
func (p PreferenceProfile) DirectionalSeatPreference() string {
	for _, s := range p.SeatPreferences {
		switch v := strings.ToLower(strings.TrimSpace(s)); v {
		case "window", "aisle":
			return v
		}
	}
	return ""
}

// PassengerCounts breaks the party down for per-ticket pricing and booking links.
type PassengerCounts struct {
	Adults   int `json:"adults" yaml:"adults"`
	Children int `json:"children" yaml:"children"`
	Infants  int `json:"infants" yaml:"infants"`
}

// Ticketed returns the number of travellers holding a seat (lap infants excluded).
func (p PassengerCounts) Ticketed() int {
	return p.Adults + p.Children
}

// Total returns the number of travellers including infants.
func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants
}

// HasKids reports whether children or infants are travelling.
func (p PassengerCounts) HasKids() bool {
	return p.Children > 0 || p.Infants > 0
}
