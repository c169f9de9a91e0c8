package weather

import (
	"fmt"
	"math"
	"time"

	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// ConditionUnknown is used for keywords missing from the condition table
const ConditionUnknown = 7

var keywordConditions = map[string]int{
	"clear":          1,
	"sunny":          1,
	"mostlysunny":    2,
	"partlycloudy":   2,
	"mostlycloudy":   3,
	"partlysunny":    3,
	"cloudy":         4,
	"hazy":           5,
	"fog":            6,
	"chancerain":     12,
	"rain":           13,
	"chancetstorms":  14,
	"tstorms":        15,
	"unknown":        15,
	"flurries":       16,
	"sleet":          16,
	"chancesnow":     20,
	"snow":           21,
	"chanceflurries": 22,
	"chancesleet":    22,
}

// ConditionFromKeyword maps a condition keyword to its device condition code
func ConditionFromKeyword(keyword string) int {
	if code, ok := keywordConditions[keyword]; ok {
		return code
	}
	return ConditionUnknown
}

// ConvertTemperature converts value to the target unit and rounds half up
func ConvertTemperature(value float64, from, to ports.TemperatureUnit) int {
	celsius := value
	switch from {
	case ports.UnitKelvin:
		celsius = value - 273.15
	case ports.UnitFahrenheit:
		if to == ports.UnitFahrenheit {
			return round(value)
		}
		celsius = (value - 32) / 1.8
	case ports.UnitCelsius:
	}

	switch to {
	case ports.UnitFahrenheit:
		return round(celsius*1.8 + 32)
	case ports.UnitKelvin:
		return round(celsius + 273.15)
	default:
		return round(celsius)
	}
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Normalizer turns provider readings into canonical device records
type Normalizer struct {
	location *time.Location
	now      func() time.Time
}

// NewNormalizer creates a normalizer rendering times in the device time zone
func NewNormalizer(location *time.Location) *Normalizer {
	if location == nil {
		location = time.Local
	}
	return &Normalizer{location: location, now: time.Now}
}

// Conditions builds the canonical weather record
func (n *Normalizer) Conditions(reading *ports.ConditionsReading, scale ports.TemperatureUnit) (*WeatherRecord, error) {
	if reading == nil {
		return nil, errors.NewParseError("empty conditions reading", nil)
	}
	if reading.Published.IsZero() {
		return nil, errors.NewParseError("conditions reading has no publication time", nil)
	}

	condition := reading.Condition.Code
	if reading.Condition.IsKeyword {
		condition = ConditionFromKeyword(reading.Condition.Keyword)
	}

	locale := reading.Locale
	if locale == "" {
		locale = "unknown"
	}

	published := reading.Published.In(n.location)

	return &WeatherRecord{
		Condition:   condition,
		Temperature: ConvertTemperature(reading.Temperature.Value, reading.Temperature.Unit, scale),
		Sunrise:     reading.Sunrise,
		Sunset:      reading.Sunset,
		Locale:      locale,
		PubDate:     fmt.Sprintf("%d:%02d", published.Hour(), published.Minute()),
		TZOffset:    n.tzOffset(),
	}, nil
}

// Forecast builds the canonical hourly record. Condition codes are passed through unchanged.
func (n *Normalizer) Forecast(reading *ports.ForecastReading, scale ports.TemperatureUnit) (*HourlyRecord, error) {
	if reading == nil || len(reading.Slices) < 2 {
		return nil, errors.NewParseError("hourly forecast needs two slices", nil)
	}

	slice := func(s ports.HourlySlice) HourlySlice {
		return HourlySlice{
			Temperature: ConvertTemperature(s.Temperature.Value, s.Temperature.Unit, scale),
			Condition:   s.Condition,
			Time:        s.Time,
			Pop:         s.PrecipProbability,
		}
	}

	return &HourlyRecord{
		First:  slice(reading.Slices[0]),
		Second: slice(reading.Slices[1]),
	}, nil
}

// tzOffset returns the zone offset in seconds, positive west of UTC
func (n *Normalizer) tzOffset() int {
	_, offset := n.now().In(n.location).Zone()
	return -offset
}
