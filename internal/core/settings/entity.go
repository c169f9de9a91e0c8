package settings

import (
	"fmt"
	"strings"

	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// Service identifies the weather provider used for current conditions
type Service string

const (
	ServiceOpen   Service = "open"
	ServiceYahoo  Service = "yahoo"
	ServiceWunder Service = "wundr"
)

// ServiceFromString converts a raw value to Service, falling back to ServiceWunder
func ServiceFromString(s string) Service {
	switch Service(s) {
	case ServiceOpen, ServiceYahoo:
		return Service(s)
	default:
		return ServiceWunder
	}
}

// Color identifies the display background color
type Color string

const (
	ColorDuke  Color = "duke"
	ColorBlack Color = "black"
	ColorRed   Color = "red"
)

// ColorFromString converts a raw value to Color, falling back to ColorRed
func ColorFromString(s string) Color {
	switch Color(s) {
	case ColorDuke, ColorBlack:
		return Color(s)
	default:
		return ColorRed
	}
}

// Scale identifies the temperature scale shown on the display
type Scale string

const (
	ScaleCelsius    Scale = "C"
	ScaleFahrenheit Scale = "F"
)

// ScaleFromString converts a raw value to Scale. Anything but "C" is Fahrenheit.
func ScaleFromString(s string) Scale {
	if s == string(ScaleCelsius) {
		return ScaleCelsius
	}
	return ScaleFahrenheit
}

// Unit returns the temperature unit matching the scale
func (s Scale) Unit() ports.TemperatureUnit {
	if s == ScaleCelsius {
		return ports.UnitCelsius
	}
	return ports.UnitFahrenheit
}

// Settings represents the user configuration shared with the device
type Settings struct {
	Service        Service
	Color          Color
	Scale          Scale
	Debug          bool
	BluetoothAlert bool
	BatteryEnabled bool
	TimeSignature  bool
	StopHourly     bool
}

// Defaults returns the settings used before the device reports any
func Defaults() Settings {
	return Settings{
		Service:        ServiceWunder,
		Color:          ColorRed,
		Scale:          ScaleFahrenheit,
		Debug:          false,
		BluetoothAlert: true,
		BatteryEnabled: true,
		TimeSignature:  false,
		StopHourly:     false,
	}
}

// EchoMessage builds the settings echo sent back to the device after a configuration page round trip
func (s Settings) EchoMessage() ports.AppMessage {
	return ports.AppMessage{
		"service":    string(s.Service),
		"color":      string(s.Color),
		"scale":      string(s.Scale),
		"debug":      boolToInt(s.Debug),
		"bluetooth":  boolToInt(s.BluetoothAlert),
		"battery":    boolToInt(s.BatteryEnabled),
		"timesig":    boolToInt(s.TimeSignature),
		"stophourly": boolToInt(s.StopHourly),
	}
}

// DecodeSettings converts a raw key/value payload into Settings.
// Device messages carry booleans as 1/0, the configuration page as "on"/"off" and "true"/"false";
// both shapes are accepted. Unknown enum values fall back to defaults.
func DecodeSettings(raw map[string]interface{}) (Settings, error) {
	var s Settings

	service, err := stringField(raw, "service")
	if err != nil {
		return Settings{}, err
	}
	color, err := stringField(raw, "color")
	if err != nil {
		return Settings{}, err
	}
	scale, err := stringField(raw, "scale")
	if err != nil {
		return Settings{}, err
	}

	s.Service = ServiceFromString(service)
	s.Color = ColorFromString(color)
	s.Scale = ScaleFromString(scale)

	flags := []struct {
		key    string
		target *bool
	}{
		{"debug", &s.Debug},
		{"bluetooth", &s.BluetoothAlert},
		{"battery", &s.BatteryEnabled},
		{"timesig", &s.TimeSignature},
		{"stophourly", &s.StopHourly},
	}
	for _, f := range flags {
		v, err := truthyField(raw, f.key)
		if err != nil {
			return Settings{}, err
		}
		*f.target = v
	}

	return s, nil
}

func stringField(raw map[string]interface{}, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.NewConfigParseError(fmt.Sprintf("field %q must be a string, got %T", key, v), nil)
	}
	return s, nil
}

func truthyField(raw map[string]interface{}, key string) (bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return false, nil
	}

	switch t := v.(type) {
	case bool:
		return t, nil
	case float64:
		return t == 1, nil
	case int:
		return t == 1, nil
	case int64:
		return t == 1, nil
	case string:
		switch strings.ToLower(t) {
		case "1", "on", "true":
			return true, nil
		default:
			return false, nil
		}
	default:
		return false, errors.NewConfigParseError(fmt.Sprintf("field %q has unsupported type %T", key, v), nil)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
