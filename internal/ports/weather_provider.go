package ports

import (
	"context"
	"time"
)

// Coordinates represents a position fix reported by the device
type Coordinates struct {
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}

// TemperatureUnit identifies the unit a provider reported a temperature in
type TemperatureUnit int

const (
	UnitKelvin TemperatureUnit = iota
	UnitCelsius
	UnitFahrenheit
)

// String returns the string representation of the unit
func (u TemperatureUnit) String() string {
	switch u {
	case UnitCelsius:
		return "C"
	case UnitFahrenheit:
		return "F"
	default:
		return "K"
	}
}

// Temperature is a provider value tagged with its unit
type Temperature struct {
	Value float64
	Unit  TemperatureUnit
}

// ConditionCode carries either a numeric provider code or a condition keyword.
// When IsKeyword is set the keyword is mapped through the condition table, even if empty.
type ConditionCode struct {
	Code      int
	Keyword   string
	IsKeyword bool
}

// ConditionsReading represents a provider's current conditions before normalization
type ConditionsReading struct {
	Condition   ConditionCode
	Temperature Temperature
	Sunrise     int64
	Sunset      int64
	Locale      string
	Published   time.Time
}

// HourlySlice represents one forward time slice of an hourly forecast
type HourlySlice struct {
	Temperature       Temperature
	Condition         int
	Time              int64
	PrecipProbability int
}

// ForecastReading represents a provider's hourly forecast before normalization
type ForecastReading struct {
	Slices []HourlySlice
}

// RequestOptions carries everything an adapter needs besides coordinates
type RequestOptions struct {
	Unit          TemperatureUnit
	APIKey        string
	HourlyOffsets [2]int
	Location      *time.Location
	Now           time.Time
}

// ConditionsProvider defines the contract for current conditions adapters
type ConditionsProvider interface {
	Name() string
	BuildRequest(coords Coordinates, opts RequestOptions) (string, error)
	Parse(body []byte, opts RequestOptions) (*ConditionsReading, error)
}

// ForecastProvider defines the contract for hourly forecast adapters
type ForecastProvider interface {
	Name() string
	BuildRequest(coords Coordinates, opts RequestOptions) (string, error)
	Parse(body []byte, opts RequestOptions) (*ForecastReading, error)
}

// ProviderRegistry resolves adapters by service tag
type ProviderRegistry interface {
	Conditions(service string) ConditionsProvider
	Forecast() ForecastProvider
	GetProviderInfo() map[string]interface{}
}

// JSONFetcher retrieves a URL and returns the body once it is known to be valid JSON
type JSONFetcher interface {
	FetchJSON(ctx context.Context, url string) ([]byte, error)
}
