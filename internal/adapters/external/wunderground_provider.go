package external

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// WundergroundProviderAdapter implements ConditionsProvider for Weather Underground.
// The API key is part of the request path, so a missing key fails the build step.
type WundergroundProviderAdapter struct {
	baseURL string
}

// WundergroundProviderParams holds parameters for creating the Weather Underground adapters
type WundergroundProviderParams struct {
	BaseURL string
}

// wuNumber accepts both JSON numbers and numeric strings. Empty values stay zero.
type wuNumber float64

func (n *wuNumber) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = wuNumber(v)
	return nil
}

type wuClock struct {
	Hour   wuNumber `json:"hour"`
	Minute wuNumber `json:"minute"`
}

type wundergroundConditionsResponse struct {
	CurrentObservation *struct {
		Icon             string   `json:"icon"`
		TempC            wuNumber `json:"temp_c"`
		TempF            wuNumber `json:"temp_f"`
		ObservationEpoch wuNumber `json:"observation_epoch"`
		DisplayLocation  struct {
			City string `json:"city"`
		} `json:"display_location"`
	} `json:"current_observation"`
	SunPhase *struct {
		Sunrise wuClock `json:"sunrise"`
		Sunset  wuClock `json:"sunset"`
	} `json:"sun_phase"`
}

type wundergroundHourlyResponse struct {
	HourlyForecast []struct {
		Temp struct {
			Metric  wuNumber `json:"metric"`
			English wuNumber `json:"english"`
		} `json:"temp"`
		FCTCode wuNumber `json:"fctcode"`
		FCTTime struct {
			Epoch wuNumber `json:"epoch"`
		} `json:"FCTTIME"`
		Pop wuNumber `json:"pop"`
	} `json:"hourly_forecast"`
}

// NewWundergroundProviderAdapter creates a new Weather Underground conditions adapter
func NewWundergroundProviderAdapter(params WundergroundProviderParams) *WundergroundProviderAdapter {
	return &WundergroundProviderAdapter{baseURL: wundergroundBaseURL(params.BaseURL)}
}

// Name returns the name of this weather provider
func (p *WundergroundProviderAdapter) Name() string {
	return "wunderground"
}

// BuildRequest returns the combined astronomy and conditions URL
func (p *WundergroundProviderAdapter) BuildRequest(coords ports.Coordinates, opts ports.RequestOptions) (string, error) {
	return wundergroundURL(p.baseURL, "astronomy/conditions", coords, opts)
}

// Parse extracts the current conditions. Sunrise and sunset are placed on the observation's local date.
func (p *WundergroundProviderAdapter) Parse(body []byte, opts ports.RequestOptions) (*ports.ConditionsReading, error) {
	var apiResp wundergroundConditionsResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, errors.NewParseError("failed to decode Weather Underground response", err)
	}

	obs := apiResp.CurrentObservation
	if obs == nil {
		return nil, errors.NewParseError("Weather Underground response has no current observation", nil)
	}
	if apiResp.SunPhase == nil {
		return nil, errors.NewParseError("Weather Underground response has no sun phase", nil)
	}
	if obs.ObservationEpoch == 0 {
		return nil, errors.NewParseError("Weather Underground response has no observation time", nil)
	}

	observed := time.Unix(int64(obs.ObservationEpoch), 0).In(deviceLocation(opts))

	temperature := ports.Temperature{Value: float64(obs.TempF), Unit: ports.UnitFahrenheit}
	if opts.Unit == ports.UnitCelsius {
		temperature = ports.Temperature{Value: float64(obs.TempC), Unit: ports.UnitCelsius}
	}

	return &ports.ConditionsReading{
		Condition:   ports.ConditionCode{Keyword: obs.Icon, IsKeyword: true},
		Temperature: temperature,
		Sunrise:     onDate(observed, apiResp.SunPhase.Sunrise).Unix(),
		Sunset:      onDate(observed, apiResp.SunPhase.Sunset).Unix(),
		Locale:      obs.DisplayLocation.City,
		Published:   observed,
	}, nil
}

// WundergroundHourlyProviderAdapter implements ForecastProvider for the Weather Underground hourly forecast
type WundergroundHourlyProviderAdapter struct {
	baseURL string
}

// NewWundergroundHourlyProviderAdapter creates a new Weather Underground hourly adapter
func NewWundergroundHourlyProviderAdapter(params WundergroundProviderParams) *WundergroundHourlyProviderAdapter {
	return &WundergroundHourlyProviderAdapter{baseURL: wundergroundBaseURL(params.BaseURL)}
}

// Name returns the name of this weather provider
func (p *WundergroundHourlyProviderAdapter) Name() string {
	return "wunderground_hourly"
}

// BuildRequest returns the hourly forecast URL
func (p *WundergroundHourlyProviderAdapter) BuildRequest(coords ports.Coordinates, opts ports.RequestOptions) (string, error) {
	return wundergroundURL(p.baseURL, "hourly", coords, opts)
}

// Parse reads the two forecast slices at the configured offsets
func (p *WundergroundHourlyProviderAdapter) Parse(body []byte, opts ports.RequestOptions) (*ports.ForecastReading, error) {
	var apiResp wundergroundHourlyResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, errors.NewParseError("failed to decode Weather Underground hourly response", err)
	}

	reading := &ports.ForecastReading{}
	for _, offset := range opts.HourlyOffsets {
		if offset < 0 || offset >= len(apiResp.HourlyForecast) {
			return nil, errors.NewParseError(
				fmt.Sprintf("hourly offset %d out of range (%d slices)", offset, len(apiResp.HourlyForecast)), nil)
		}
		h := apiResp.HourlyForecast[offset]

		temperature := ports.Temperature{Value: float64(h.Temp.English), Unit: ports.UnitFahrenheit}
		if opts.Unit == ports.UnitCelsius {
			temperature = ports.Temperature{Value: float64(h.Temp.Metric), Unit: ports.UnitCelsius}
		}

		reading.Slices = append(reading.Slices, ports.HourlySlice{
			Temperature:       temperature,
			Condition:         int(h.FCTCode),
			Time:              int64(h.FCTTime.Epoch),
			PrecipProbability: int(h.Pop),
		})
	}

	return reading, nil
}

func wundergroundBaseURL(baseURL string) string {
	if baseURL == "" {
		return "http://api.wunderground.com/api"
	}
	return baseURL
}

func wundergroundURL(baseURL, features string, coords ports.Coordinates, opts ports.RequestOptions) (string, error) {
	if opts.APIKey == "" {
		return "", errors.NewValidationError("Weather Underground API key is required")
	}
	return fmt.Sprintf("%s/%s/%s/q/%s,%s.json",
		baseURL, opts.APIKey, features, formatCoordinate(coords.Latitude), formatCoordinate(coords.Longitude)), nil
}

func onDate(day time.Time, clock wuClock) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, int(clock.Hour), int(clock.Minute), 0, 0, day.Location())
}
