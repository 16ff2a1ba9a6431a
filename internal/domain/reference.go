package domain

//go:generate mockgen -source=reference.go -destination=mock_reference.go -package=domain

// Defaults applied when reference data has no entry.
const (
	DefaultAirlineReliability = 70
	DefaultAirportQuality     = 70
)

// AirlineInfo is one entry of the airline directory.
type AirlineInfo struct {
	// Code is the IATA airline code (e.g., "B6")
	Code string `json:"code" yaml:"code"`

	// Name is the full airline name (e.g., "JetBlue Airways")
	Name string `json:"name" yaml:"name"`

	// Reliability is an on-time performance score in [0,100]
	Reliability int `json:"reliability" yaml:"reliability"`

	// Alliance is the alliance name, empty when unaffiliated
	Alliance string `json:"alliance,omitempty" yaml:"alliance"`
}

// AirportInfo is one entry of the airport-quality directory.
type AirportInfo struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`

	// Quality is a connection-experience score in [0,100]
	Quality int `json:"quality"`

	// Notes is a short description of the connection experience
	Notes string `json:"notes,omitempty"`

	// Congested marks airports with chronic delay problems
	Congested bool `json:"congested"`
}

// AirlineDirectory is read-only airline reference data.
type AirlineDirectory interface {
	// Airlines returns every known airline.
	Airlines() []AirlineInfo

	// Aliases maps informal names and codes to canonical airline names.
	Aliases() map[string]string
}

// AirportDirectory is read-only airport reference data.
type AirportDirectory interface {
	// Airport looks up an airport by IATA code.
	Airport(code string) (AirportInfo, bool)
}

// AirlineIdentity is the canonical identity an airline string resolves to.
// The zero value is the "unknown" identity.
type AirlineIdentity struct {
	Code        string `json:"code,omitempty"`
	Name        string `json:"name,omitempty"`
	Reliability int    `json:"reliability,omitempty"`
	Alliance    string `json:"alliance,omitempty"`
	Known       bool   `json:"known"`
}

// ReliabilityOrDefault returns the reliability, or the documented default when unknown.
func (id AirlineIdentity) ReliabilityOrDefault() int {
	if !id.Known {
		return DefaultAirlineReliability
	}
	return id.Reliability
}

// DisplayName returns the resolved name, falling back to the raw string.
func (id AirlineIdentity) DisplayName(raw string) string {
	if id.Known && id.Name != "" {
		return id.Name
	}
	return raw
}

// IdentityFromInfo converts a directory entry to a resolved identity.
func IdentityFromInfo(info AirlineInfo) AirlineIdentity {
	return AirlineIdentity{
		Code:        info.Code,
		Name:        info.Name,
		Reliability: info.Reliability,
		Alliance:    info.Alliance,
		Known:       true,
	}
}
