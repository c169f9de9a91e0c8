package ports

import "time"

// UpdateConfig represents update pipeline configuration
type UpdateConfig struct {
	Cooldown           time.Duration
	GeolocationTimeout time.Duration
	GeolocationMaxAge  time.Duration
	HourlyOffsets      [2]int
}

// DeliveryConfig represents delivery retry configuration
type DeliveryConfig struct {
	MaxRetry  int
	RetryWait time.Duration
}

// DeviceConfig represents device related configuration
type DeviceConfig struct {
	Location *time.Location
}

// ConfigPageConfig represents configuration page settings
type ConfigPageConfig struct {
	URL string
}

// CredentialConfig represents the weather API credential defaults
type CredentialConfig struct {
	DefaultAPIKey string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetUpdateConfig() UpdateConfig
	GetDeliveryConfig() DeliveryConfig
	GetDeviceConfig() DeviceConfig
	GetConfigPageConfig() ConfigPageConfig
	GetCredentialConfig() CredentialConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// LogLevelController toggles verbose logging at runtime
type LogLevelController interface {
	SetDebug(enabled bool)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordUpdate(outcome string)
	RecordProviderFetch(provider string, success bool)
	RecordDelivery(result string)
}
