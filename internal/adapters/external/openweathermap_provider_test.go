package external

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

const openWeatherMapBody = `{
	"weather": [{"id": 800, "main": "Clear"}],
	"main": {"temp": 300.0, "humidity": 60},
	"sys": {"sunrise": 1700000000, "sunset": 1700040000},
	"name": "Kyiv",
	"dt": 1700030000
}`

func TestOpenWeatherMapProvider_BuildRequest(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		expected string
	}{
		{
			name:     "WithoutKey",
			expected: "http://owm.test/weather?lat=50.45&lon=30.5234&cnt=1",
		},
		{
			name:     "WithKey",
			apiKey:   "test-api-key",
			expected: "http://owm.test/weather?lat=50.45&lon=30.5234&cnt=1&appid=test-api-key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
				APIKey:  tt.apiKey,
				BaseURL: "http://owm.test",
			})

			url, err := provider.BuildRequest(ports.Coordinates{Latitude: 50.45, Longitude: 30.5234}, ports.RequestOptions{})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestOpenWeatherMapProvider_Parse_Success(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{})

	reading, err := provider.Parse([]byte(openWeatherMapBody), ports.RequestOptions{Unit: ports.UnitCelsius})

	require.NoError(t, err)
	assert.Equal(t, ports.ConditionCode{Code: 800}, reading.Condition)
	assert.Equal(t, ports.Temperature{Value: 300.0, Unit: ports.UnitKelvin}, reading.Temperature)
	assert.Equal(t, int64(1700000000), reading.Sunrise)
	assert.Equal(t, int64(1700040000), reading.Sunset)
	assert.Equal(t, "Kyiv", reading.Locale)
	assert.True(t, reading.Published.Equal(time.Unix(1700030000, 0)))
}

func TestOpenWeatherMapProvider_Parse_Failures(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "InvalidJSON",
			body:   `{"invalid": json`,
			errMsg: "failed to decode",
		},
		{
			name:   "NoWeatherEntries",
			body:   `{"weather": [], "main": {"temp": 290}, "dt": 1700030000}`,
			errMsg: "no weather entries",
		},
		{
			name:   "NoMainSection",
			body:   `{"weather": [{"id": 800}], "dt": 1700030000}`,
			errMsg: "no main section",
		},
		{
			name:   "NoPublicationTime",
			body:   `{"weather": [{"id": 800}], "main": {"temp": 290}}`,
			errMsg: "no publication time",
		},
	}

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, err := provider.Parse([]byte(tt.body), ports.RequestOptions{})

			assert.Nil(t, reading)
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errors.ParseError, appErr.Type)
			assert.Contains(t, appErr.Message, tt.errMsg)
		})
	}
}

func TestOpenWeatherMapProvider_DefaultBaseURL(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{})

	url, err := provider.BuildRequest(ports.Coordinates{Latitude: 1, Longitude: 2}, ports.RequestOptions{})

	require.NoError(t, err)
	assert.Equal(t, "http://api.openweathermap.org/data/2.5/weather?lat=1&lon=2&cnt=1", url)
	assert.Equal(t, "openweathermap", provider.Name())
}
