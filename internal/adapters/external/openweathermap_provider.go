package external

import (
	"encoding/json"
	"fmt"
	"time"

	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// OpenWeatherMapProviderAdapter implements ConditionsProvider for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
}

// OpenWeatherMapResponse represents the response from OpenWeatherMap API
type OpenWeatherMapResponse struct {
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		ID int `json:"id"`
	} `json:"weather"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "http://api.openweathermap.org/data/2.5"
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
	}
}

// Name returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) Name() string {
	return "openweathermap"
}

// BuildRequest returns the current weather URL. Temperatures come back in Kelvin.
func (p *OpenWeatherMapProviderAdapter) BuildRequest(coords ports.Coordinates, _ ports.RequestOptions) (string, error) {
	url := fmt.Sprintf("%s/weather?lat=%s&lon=%s&cnt=1",
		p.baseURL, formatCoordinate(coords.Latitude), formatCoordinate(coords.Longitude))
	if p.apiKey != "" {
		url += "&appid=" + p.apiKey
	}
	return url, nil
}

// Parse extracts the current conditions from an OpenWeatherMap response
func (p *OpenWeatherMapProviderAdapter) Parse(body []byte, _ ports.RequestOptions) (*ports.ConditionsReading, error) {
	var apiResp OpenWeatherMapResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, errors.NewParseError("failed to decode OpenWeatherMap response", err)
	}

	if apiResp.Main == nil {
		return nil, errors.NewParseError("OpenWeatherMap response has no main section", nil)
	}
	if len(apiResp.Weather) == 0 {
		return nil, errors.NewParseError("OpenWeatherMap response has no weather entries", nil)
	}
	if apiResp.Dt == 0 {
		return nil, errors.NewParseError("OpenWeatherMap response has no publication time", nil)
	}

	return &ports.ConditionsReading{
		Condition:   ports.ConditionCode{Code: apiResp.Weather[0].ID},
		Temperature: ports.Temperature{Value: apiResp.Main.Temp, Unit: ports.UnitKelvin},
		Sunrise:     apiResp.Sys.Sunrise,
		Sunset:      apiResp.Sys.Sunset,
		Locale:      apiResp.Name,
		Published:   time.Unix(apiResp.Dt, 0),
	}, nil
}
