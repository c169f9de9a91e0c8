package external

import (
	"wristweather.app/internal/ports"
)

// ConditionsProviderLoggingDecorator decorates conditions adapters with structured logging
type ConditionsProviderLoggingDecorator struct {
	provider ports.ConditionsProvider
	logger   ports.Logger
}

// NewConditionsProviderLoggingDecorator creates a new logging decorator for conditions adapters
func NewConditionsProviderLoggingDecorator(provider ports.ConditionsProvider, logger ports.Logger) *ConditionsProviderLoggingDecorator {
	return &ConditionsProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// Name returns the name of the wrapped provider
func (d *ConditionsProviderLoggingDecorator) Name() string {
	return d.provider.Name()
}

// BuildRequest wraps the provider call with structured logging
func (d *ConditionsProviderLoggingDecorator) BuildRequest(coords ports.Coordinates, opts ports.RequestOptions) (string, error) {
	url, err := d.provider.BuildRequest(coords, opts)
	if err != nil {
		d.logger.Error("Weather API request rejected",
			ports.F("provider", d.provider.Name()),
			ports.F("event", "request_error"),
			ports.F("error", err.Error()))
		return "", err
	}

	d.logger.Info("Weather API request started",
		ports.F("provider", d.provider.Name()),
		ports.F("event", "request"),
		ports.F("latitude", coords.Latitude),
		ports.F("longitude", coords.Longitude),
		ports.F("unit", opts.Unit.String()))
	return url, nil
}

// Parse wraps the provider call with structured logging
func (d *ConditionsProviderLoggingDecorator) Parse(body []byte, opts ports.RequestOptions) (*ports.ConditionsReading, error) {
	reading, err := d.provider.Parse(body, opts)
	if err != nil {
		d.logger.Error("Weather API response rejected",
			ports.F("provider", d.provider.Name()),
			ports.F("event", "error"),
			ports.F("body_bytes", len(body)),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", d.provider.Name()),
		ports.F("event", "response"),
		ports.F("body_bytes", len(body)),
		ports.F("temperature", reading.Temperature.Value),
		ports.F("unit", reading.Temperature.Unit.String()),
		ports.F("locale", reading.Locale))
	return reading, nil
}

// ForecastProviderLoggingDecorator decorates hourly adapters with structured logging
type ForecastProviderLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

// NewForecastProviderLoggingDecorator creates a new logging decorator for hourly adapters
func NewForecastProviderLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) *ForecastProviderLoggingDecorator {
	return &ForecastProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// Name returns the name of the wrapped provider
func (d *ForecastProviderLoggingDecorator) Name() string {
	return d.provider.Name()
}

// BuildRequest wraps the provider call with structured logging
func (d *ForecastProviderLoggingDecorator) BuildRequest(coords ports.Coordinates, opts ports.RequestOptions) (string, error) {
	url, err := d.provider.BuildRequest(coords, opts)
	if err != nil {
		d.logger.Error("Forecast API request rejected",
			ports.F("provider", d.provider.Name()),
			ports.F("event", "request_error"),
			ports.F("error", err.Error()))
		return "", err
	}

	d.logger.Info("Forecast API request started",
		ports.F("provider", d.provider.Name()),
		ports.F("event", "request"),
		ports.F("offsets", opts.HourlyOffsets))
	return url, nil
}

// Parse wraps the provider call with structured logging
func (d *ForecastProviderLoggingDecorator) Parse(body []byte, opts ports.RequestOptions) (*ports.ForecastReading, error) {
	reading, err := d.provider.Parse(body, opts)
	if err != nil {
		d.logger.Error("Forecast API response rejected",
			ports.F("provider", d.provider.Name()),
			ports.F("event", "error"),
			ports.F("body_bytes", len(body)),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast API request completed",
		ports.F("provider", d.provider.Name()),
		ports.F("event", "response"),
		ports.F("body_bytes", len(body)),
		ports.F("slices", len(reading.Slices)))
	return reading, nil
}
