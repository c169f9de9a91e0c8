package external

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wristweather.app/internal/core/weather"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

const wundergroundConditionsBody = `{
	"current_observation": {
		"display_location": {"city": "Kyiv"},
		"observation_epoch": "1700000000",
		"icon": "chancetstorms",
		"temp_c": 12.4,
		"temp_f": 54.3
	},
	"sun_phase": {
		"sunrise": {"hour": "6", "minute": "5"},
		"sunset": {"hour": "16", "minute": "45"}
	}
}`

func wundergroundHourlyBody(slices int) string {
	body := `{"hourly_forecast": [`
	for i := 0; i < slices; i++ {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{
			"FCTTIME": {"epoch": "%d"},
			"temp": {"english": "%d", "metric": "%d"},
			"fctcode": "%d",
			"pop": "%d"
		}`, 1700000000+i*3600, 50+i, 10+i, i+1, i*10)
	}
	return body + `]}`
}

func wundergroundOptions() ports.RequestOptions {
	return ports.RequestOptions{
		Unit:          ports.UnitCelsius,
		APIKey:        "wu-key",
		HourlyOffsets: [2]int{2, 5},
		Location:      time.UTC,
	}
}

func TestWundergroundProvider_BuildRequest(t *testing.T) {
	provider := NewWundergroundProviderAdapter(WundergroundProviderParams{BaseURL: "http://wu.test/api"})

	url, err := provider.BuildRequest(ports.Coordinates{Latitude: 50.45, Longitude: 30.52}, wundergroundOptions())

	require.NoError(t, err)
	assert.Equal(t, "http://wu.test/api/wu-key/astronomy/conditions/q/50.45,30.52.json", url)
}

func TestWundergroundProvider_BuildRequest_MissingKey(t *testing.T) {
	provider := NewWundergroundProviderAdapter(WundergroundProviderParams{})
	opts := wundergroundOptions()
	opts.APIKey = ""

	url, err := provider.BuildRequest(ports.Coordinates{Latitude: 1, Longitude: 2}, opts)

	assert.Empty(t, url)
	assert.True(t, errors.IsValidationError(err))
}

func TestWundergroundProvider_Parse_Success(t *testing.T) {
	provider := NewWundergroundProviderAdapter(WundergroundProviderParams{})

	reading, err := provider.Parse([]byte(wundergroundConditionsBody), wundergroundOptions())

	require.NoError(t, err)
	assert.Equal(t, ports.ConditionCode{Keyword: "chancetstorms", IsKeyword: true}, reading.Condition)
	assert.Equal(t, ports.Temperature{Value: 12.4, Unit: ports.UnitCelsius}, reading.Temperature)
	assert.Equal(t, time.Date(2023, 11, 14, 6, 5, 0, 0, time.UTC).Unix(), reading.Sunrise)
	assert.Equal(t, time.Date(2023, 11, 14, 16, 45, 0, 0, time.UTC).Unix(), reading.Sunset)
	assert.Equal(t, "Kyiv", reading.Locale)
	assert.Equal(t, int64(1700000000), reading.Published.Unix())
}

func TestWundergroundProvider_Parse_EmptyIcon(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Empty", strings.Replace(wundergroundConditionsBody, `"icon": "chancetstorms"`, `"icon": ""`, 1)},
		{"Missing", strings.Replace(wundergroundConditionsBody, `"icon": "chancetstorms",`, "", 1)},
	}

	provider := NewWundergroundProviderAdapter(WundergroundProviderParams{})
	normalizer := weather.NewNormalizer(time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, err := provider.Parse([]byte(tt.body), wundergroundOptions())
			require.NoError(t, err)
			assert.Equal(t, ports.ConditionCode{IsKeyword: true}, reading.Condition)

			record, err := normalizer.Conditions(reading, ports.UnitCelsius)

			require.NoError(t, err)
			assert.Equal(t, 7, record.Condition)
		})
	}
}

func TestWundergroundProvider_Parse_Fahrenheit(t *testing.T) {
	provider := NewWundergroundProviderAdapter(WundergroundProviderParams{})
	opts := wundergroundOptions()
	opts.Unit = ports.UnitFahrenheit

	reading, err := provider.Parse([]byte(wundergroundConditionsBody), opts)

	require.NoError(t, err)
	assert.Equal(t, ports.Temperature{Value: 54.3, Unit: ports.UnitFahrenheit}, reading.Temperature)
}

func TestWundergroundProvider_Parse_DeviceZoneDate(t *testing.T) {
	provider := NewWundergroundProviderAdapter(WundergroundProviderParams{})
	tokyo := time.FixedZone("JST", 9*3600)
	opts := wundergroundOptions()
	opts.Location = tokyo

	reading, err := provider.Parse([]byte(wundergroundConditionsBody), opts)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 11, 15, 6, 5, 0, 0, tokyo).Unix(), reading.Sunrise)
}

func TestWundergroundProvider_Parse_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"InvalidJSON", `{"current_observation": `},
		{"NoObservation", `{"sun_phase": {"sunrise": {"hour": "6", "minute": "5"}}}`},
		{"NoSunPhase", `{"current_observation": {"observation_epoch": "1700000000", "icon": "clear"}}`},
		{"NoEpoch", `{"current_observation": {"icon": "clear"}, "sun_phase": {}}`},
		{"BadTemperature", `{"current_observation": {"temp_c": "warm"}, "sun_phase": {}}`},
	}

	provider := NewWundergroundProviderAdapter(WundergroundProviderParams{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, err := provider.Parse([]byte(tt.body), wundergroundOptions())

			assert.Nil(t, reading)
			assert.True(t, errors.IsParseError(err), "expected parse error, got %v", err)
		})
	}
}

func TestWundergroundHourlyProvider_BuildRequest(t *testing.T) {
	provider := NewWundergroundHourlyProviderAdapter(WundergroundProviderParams{})

	url, err := provider.BuildRequest(ports.Coordinates{Latitude: 50.45, Longitude: 30.52}, wundergroundOptions())

	require.NoError(t, err)
	assert.Equal(t, "http://api.wunderground.com/api/wu-key/hourly/q/50.45,30.52.json", url)
	assert.Equal(t, "wunderground_hourly", provider.Name())
}

func TestWundergroundHourlyProvider_Parse_Offsets(t *testing.T) {
	provider := NewWundergroundHourlyProviderAdapter(WundergroundProviderParams{})

	reading, err := provider.Parse([]byte(wundergroundHourlyBody(8)), wundergroundOptions())

	require.NoError(t, err)
	require.Len(t, reading.Slices, 2)
	assert.Equal(t, ports.HourlySlice{
		Temperature:       ports.Temperature{Value: 12, Unit: ports.UnitCelsius},
		Condition:         3,
		Time:              1700007200,
		PrecipProbability: 20,
	}, reading.Slices[0])
	assert.Equal(t, ports.HourlySlice{
		Temperature:       ports.Temperature{Value: 15, Unit: ports.UnitCelsius},
		Condition:         6,
		Time:              1700018000,
		PrecipProbability: 50,
	}, reading.Slices[1])
}

func TestWundergroundHourlyProvider_Parse_Fahrenheit(t *testing.T) {
	provider := NewWundergroundHourlyProviderAdapter(WundergroundProviderParams{})
	opts := wundergroundOptions()
	opts.Unit = ports.UnitFahrenheit
	opts.HourlyOffsets = [2]int{0, 1}

	reading, err := provider.Parse([]byte(wundergroundHourlyBody(2)), opts)

	require.NoError(t, err)
	assert.Equal(t, ports.Temperature{Value: 50, Unit: ports.UnitFahrenheit}, reading.Slices[0].Temperature)
	assert.Equal(t, ports.Temperature{Value: 51, Unit: ports.UnitFahrenheit}, reading.Slices[1].Temperature)
}

func TestWundergroundHourlyProvider_Parse_OffsetOutOfRange(t *testing.T) {
	provider := NewWundergroundHourlyProviderAdapter(WundergroundProviderParams{})

	reading, err := provider.Parse([]byte(wundergroundHourlyBody(4)), wundergroundOptions())

	assert.Nil(t, reading)
	assert.True(t, errors.IsParseError(err))
	assert.Contains(t, err.Error(), "hourly offset 5 out of range")
}
