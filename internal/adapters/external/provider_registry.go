package external

import (
	"sort"

	"wristweather.app/internal/ports"
)

// Service tags selectable from the device settings
const (
	ServiceOpenWeatherMap = "open"
	ServiceYahoo          = "yahoo"
	ServiceWunderground   = "wundr"

	DefaultService = ServiceWunderground
)

// ProviderRegistryAdapter dispatches adapters by service tag.
// Unknown tags resolve to the default Weather Underground adapter.
type ProviderRegistryAdapter struct {
	conditions     map[string]ports.ConditionsProvider
	forecast       ports.ForecastProvider
	loggingEnabled bool
	logger         ports.Logger
}

// ProviderRegistryConfig holds configuration for creating the provider registry
type ProviderRegistryConfig struct {
	OpenWeatherMapKey string
	OpenWeatherMapURL string
	YahooURL          string
	WundergroundURL   string
	EnableLogging     bool
	ProviderLogger    ports.Logger
	Logger            ports.Logger
}

// NewProviderRegistryAdapter creates the registry with all three conditions adapters and the hourly adapter
func NewProviderRegistryAdapter(config ProviderRegistryConfig) *ProviderRegistryAdapter {
	registry := &ProviderRegistryAdapter{
		conditions:     make(map[string]ports.ConditionsProvider),
		loggingEnabled: config.EnableLogging && config.ProviderLogger != nil,
		logger:         config.Logger,
	}

	registry.register(ServiceOpenWeatherMap, NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  config.OpenWeatherMapKey,
		BaseURL: config.OpenWeatherMapURL,
	}), config.ProviderLogger)
	registry.register(ServiceYahoo, NewYahooProviderAdapter(YahooProviderParams{
		BaseURL: config.YahooURL,
	}), config.ProviderLogger)
	registry.register(ServiceWunderground, NewWundergroundProviderAdapter(WundergroundProviderParams{
		BaseURL: config.WundergroundURL,
	}), config.ProviderLogger)

	var forecast ports.ForecastProvider = NewWundergroundHourlyProviderAdapter(WundergroundProviderParams{
		BaseURL: config.WundergroundURL,
	})
	if registry.loggingEnabled {
		forecast = NewForecastProviderLoggingDecorator(forecast, config.ProviderLogger)
	}
	registry.forecast = forecast

	return registry
}

func (r *ProviderRegistryAdapter) register(service string, provider ports.ConditionsProvider, providerLogger ports.Logger) {
	if r.loggingEnabled {
		provider = NewConditionsProviderLoggingDecorator(provider, providerLogger)
	}
	r.conditions[service] = provider

	if r.logger != nil {
		r.logger.Debug("Registered weather provider",
			ports.F("service", service),
			ports.F("provider", provider.Name()))
	}
}

// Conditions returns the adapter for a service tag
func (r *ProviderRegistryAdapter) Conditions(service string) ports.ConditionsProvider {
	if provider, ok := r.conditions[service]; ok {
		return provider
	}

	if r.logger != nil {
		r.logger.Debug("Unknown weather service, using default",
			ports.F("service", service),
			ports.F("default", DefaultService))
	}
	return r.conditions[DefaultService]
}

// Forecast returns the hourly forecast adapter
func (r *ProviderRegistryAdapter) Forecast() ports.ForecastProvider {
	return r.forecast
}

// GetProviderInfo returns information about configured providers
func (r *ProviderRegistryAdapter) GetProviderInfo() map[string]interface{} {
	services := make([]string, 0, len(r.conditions))
	providers := make(map[string]string, len(r.conditions))
	for service, provider := range r.conditions {
		services = append(services, service)
		providers[service] = provider.Name()
	}
	sort.Strings(services)

	return map[string]interface{}{
		"total_providers": len(r.conditions),
		"services":        services,
		"providers":       providers,
		"default_service": DefaultService,
		"hourly_provider": r.forecast.Name(),
		"logging_enabled": r.loggingEnabled,
	}
}
