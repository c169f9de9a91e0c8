package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, ServiceWunder, s.Service)
	assert.Equal(t, ColorRed, s.Color)
	assert.Equal(t, ScaleFahrenheit, s.Scale)
	assert.False(t, s.Debug)
	assert.True(t, s.BluetoothAlert)
	assert.True(t, s.BatteryEnabled)
	assert.False(t, s.TimeSignature)
	assert.False(t, s.StopHourly)
}

func TestEnumFallbacks(t *testing.T) {
	assert.Equal(t, ServiceOpen, ServiceFromString("open"))
	assert.Equal(t, ServiceYahoo, ServiceFromString("yahoo"))
	assert.Equal(t, ServiceWunder, ServiceFromString("wundr"))
	assert.Equal(t, ServiceWunder, ServiceFromString("darksky"))
	assert.Equal(t, ServiceWunder, ServiceFromString(""))

	assert.Equal(t, ColorDuke, ColorFromString("duke"))
	assert.Equal(t, ColorBlack, ColorFromString("black"))
	assert.Equal(t, ColorRed, ColorFromString("green"))

	assert.Equal(t, ScaleCelsius, ScaleFromString("C"))
	assert.Equal(t, ScaleFahrenheit, ScaleFromString("c"))
	assert.Equal(t, ScaleFahrenheit, ScaleFromString("K"))
}

func TestScale_Unit(t *testing.T) {
	assert.Equal(t, ports.UnitCelsius, ScaleCelsius.Unit())
	assert.Equal(t, ports.UnitFahrenheit, ScaleFahrenheit.Unit())
}

func TestDecodeSettings(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]interface{}
		expected Settings
	}{
		{
			name: "DeviceMessageNumericFlags",
			raw: map[string]interface{}{
				"service":    "open",
				"color":      "duke",
				"scale":      "C",
				"debug":      float64(1),
				"bluetooth":  float64(0),
				"battery":    float64(1),
				"timesig":    float64(1),
				"stophourly": float64(0),
			},
			expected: Settings{
				Service:        ServiceOpen,
				Color:          ColorDuke,
				Scale:          ScaleCelsius,
				Debug:          true,
				BluetoothAlert: false,
				BatteryEnabled: true,
				TimeSignature:  true,
				StopHourly:     false,
			},
		},
		{
			name: "ConfigPageStringFlags",
			raw: map[string]interface{}{
				"service":    "yahoo",
				"color":      "black",
				"scale":      "F",
				"debug":      "true",
				"bluetooth":  "on",
				"battery":    "off",
				"timesig":    "1",
				"stophourly": "on",
			},
			expected: Settings{
				Service:        ServiceYahoo,
				Color:          ColorBlack,
				Scale:          ScaleFahrenheit,
				Debug:          true,
				BluetoothAlert: true,
				BatteryEnabled: false,
				TimeSignature:  true,
				StopHourly:     true,
			},
		},
		{
			name: "UnknownValuesFallBack",
			raw: map[string]interface{}{
				"service": "bogus",
				"color":   "purple",
				"scale":   "kelvin",
				"debug":   true,
			},
			expected: Settings{
				Service: ServiceWunder,
				Color:   ColorRed,
				Scale:   ScaleFahrenheit,
				Debug:   true,
			},
		},
		{
			name: "EmptyPayload",
			raw:  map[string]interface{}{},
			expected: Settings{
				Service: ServiceWunder,
				Color:   ColorRed,
				Scale:   ScaleFahrenheit,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeSettings(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestDecodeSettings_WrongTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{
			name: "ServiceNotString",
			raw:  map[string]interface{}{"service": float64(3)},
		},
		{
			name: "FlagIsObject",
			raw:  map[string]interface{}{"debug": map[string]interface{}{"on": true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSettings(tt.raw)

			require.Error(t, err)
			assert.True(t, errors.IsConfigParseError(err))
		})
	}
}

func TestSettings_EchoMessage(t *testing.T) {
	s := Settings{
		Service:        ServiceOpen,
		Color:          ColorBlack,
		Scale:          ScaleCelsius,
		Debug:          false,
		BluetoothAlert: true,
		BatteryEnabled: false,
		TimeSignature:  true,
		StopHourly:     true,
	}

	assert.Equal(t, ports.AppMessage{
		"service":    "open",
		"color":      "black",
		"scale":      "C",
		"debug":      0,
		"bluetooth":  1,
		"battery":    0,
		"timesig":    1,
		"stophourly": 1,
	}, s.EchoMessage())
}
