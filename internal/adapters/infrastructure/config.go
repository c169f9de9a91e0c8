package infrastructure

import (
	"time"

	"wristweather.app/internal/config"
	"wristweather.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config   *config.Config
	location *time.Location
}

// NewConfigProviderAdapter creates a new config provider adapter. The device
// time zone is resolved once; an unknown zone falls back to the local one.
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	loc, err := cfg.Device.Location()
	if err != nil {
		loc = time.Local
	}

	return &ConfigProviderAdapter{
		config:   cfg,
		location: loc,
	}
}

// GetUpdateConfig returns update pipeline configuration
func (c *ConfigProviderAdapter) GetUpdateConfig() ports.UpdateConfig {
	return ports.UpdateConfig{
		Cooldown:           time.Duration(c.config.Update.CooldownSeconds) * time.Second,
		GeolocationTimeout: time.Duration(c.config.Update.GeolocationTimeoutSeconds) * time.Second,
		GeolocationMaxAge:  time.Duration(c.config.Update.GeolocationMaxAgeSeconds) * time.Second,
		HourlyOffsets:      c.config.Weather.Offsets(),
	}
}

// GetDeliveryConfig returns delivery retry configuration
func (c *ConfigProviderAdapter) GetDeliveryConfig() ports.DeliveryConfig {
	return ports.DeliveryConfig{
		MaxRetry:  c.config.Delivery.MaxRetry,
		RetryWait: time.Duration(c.config.Delivery.RetryWaitMs) * time.Millisecond,
	}
}

// GetDeviceConfig returns device configuration
func (c *ConfigProviderAdapter) GetDeviceConfig() ports.DeviceConfig {
	return ports.DeviceConfig{
		Location: c.location,
	}
}

// GetConfigPageConfig returns configuration page settings
func (c *ConfigProviderAdapter) GetConfigPageConfig() ports.ConfigPageConfig {
	return ports.ConfigPageConfig{
		URL: c.config.ConfigPageURL,
	}
}

// GetCredentialConfig returns the weather API credential defaults
func (c *ConfigProviderAdapter) GetCredentialConfig() ports.CredentialConfig {
	return ports.CredentialConfig{
		DefaultAPIKey: c.config.Weather.WundergroundDefaultKey,
	}
}
