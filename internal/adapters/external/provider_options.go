package external

import (
	"strconv"
	"time"

	"wristweather.app/internal/ports"
)

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func deviceLocation(opts ports.RequestOptions) *time.Location {
	if opts.Location == nil {
		return time.Local
	}
	return opts.Location
}

func requestTime(opts ports.RequestOptions) time.Time {
	if opts.Now.IsZero() {
		return time.Now()
	}
	return opts.Now
}

// scaleUnit returns the unit providers that honor the device scale report in
func scaleUnit(opts ports.RequestOptions) ports.TemperatureUnit {
	if opts.Unit == ports.UnitCelsius {
		return ports.UnitCelsius
	}
	return ports.UnitFahrenheit
}
