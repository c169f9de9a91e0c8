package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"wristweather.app/pkg/errors"
)

const (
	maxRedisDB         = 15
	maxPortNumber      = 65535
	maxRetryLimit      = 10
	maxRefreshInterval = 1440
)

// Config represents the application configuration structure
type Config struct {
	Server        ServerConfig   `split_words:"true"`
	Device        DeviceConfig   `split_words:"true"`
	Weather       WeatherConfig  `split_words:"true"`
	Update        UpdateConfig   `split_words:"true"`
	Delivery      DeliveryConfig `split_words:"true"`
	Store         StoreConfig    `split_words:"true"`
	Debug         DebugConfig    `split_words:"true"`
	Log           LogConfig      `split_words:"true"`
	ConfigPageURL string         `envconfig:"CONFIG_PAGE_URL" default:"https://wristweather.app/config/phone.html"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type DeviceConfig struct {
	BrokerHost            string  `envconfig:"MQTT_BROKER_HOST" default:"localhost"`
	BrokerPort            int     `envconfig:"MQTT_BROKER_PORT" default:"1883"`
	ClientID              string  `envconfig:"MQTT_CLIENT_ID" default:"wristweather-relay"`
	Username              string  `envconfig:"MQTT_USERNAME"`
	Password              string  `envconfig:"MQTT_PASSWORD"`
	TopicPrefix           string  `envconfig:"MQTT_TOPIC_PREFIX" default:"wristweather"`
	PublishTimeoutSeconds int     `envconfig:"MQTT_PUBLISH_TIMEOUT_SECONDS" default:"5"`
	DeviceID              string  `envconfig:"DEVICE_ID" default:"watch"`
	Timezone              string  `envconfig:"DEVICE_TIMEZONE" default:"Local"`
	StaticLocation        bool    `envconfig:"DEVICE_STATIC_LOCATION" default:"false"`
	StaticLatitude        float64 `envconfig:"DEVICE_STATIC_LATITUDE" default:"0"`
	StaticLongitude       float64 `envconfig:"DEVICE_STATIC_LONGITUDE" default:"0"`
}

// BrokerURL returns the MQTT broker address in paho format
func (d DeviceConfig) BrokerURL() string {
	return fmt.Sprintf("tcp://%s:%d", d.BrokerHost, d.BrokerPort)
}

// Location resolves the device time zone
func (d DeviceConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("DEVICE_TIMEZONE %q is not a known time zone", d.Timezone), err)
	}
	return loc, nil
}

type WeatherConfig struct {
	OpenWeatherMapKey      string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL  string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"http://api.openweathermap.org/data/2.5"`
	YahooBaseURL           string `envconfig:"YAHOO_YQL_BASE_URL" default:"https://query.yahooapis.com/v1/public/yql"`
	WundergroundBaseURL    string `envconfig:"WUNDERGROUND_API_BASE_URL" default:"http://api.wunderground.com/api"`
	WundergroundDefaultKey string `envconfig:"WUNDERGROUND_DEFAULT_API_KEY"`
	HourlyOffsets          []int  `envconfig:"WEATHER_HOURLY_OFFSETS" default:"2,5"`
	FetchTimeoutSeconds    int    `envconfig:"WEATHER_FETCH_TIMEOUT_SECONDS" default:"10"`
	BreakerMaxFailures     int    `envconfig:"WEATHER_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenSeconds     int    `envconfig:"WEATHER_BREAKER_OPEN_SECONDS" default:"30"`
	EnableLogging          bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"false"`
	LogFilePath            string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
}

type UpdateConfig struct {
	CooldownSeconds           int `envconfig:"UPDATE_COOLDOWN_SECONDS" default:"60"`
	GeolocationTimeoutSeconds int `envconfig:"UPDATE_GEOLOCATION_TIMEOUT_SECONDS" default:"15"`
	GeolocationMaxAgeSeconds  int `envconfig:"UPDATE_GEOLOCATION_MAX_AGE_SECONDS" default:"60"`
	RefreshIntervalMinutes    int `envconfig:"UPDATE_REFRESH_INTERVAL_MINUTES" default:"30"`
}

type DeliveryConfig struct {
	MaxRetry    int `envconfig:"DELIVERY_MAX_RETRY" default:"3"`
	RetryWaitMs int `envconfig:"DELIVERY_RETRY_WAIT_MS" default:"500"`
}

// StoreType represents the backend holding persisted settings
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
	StoreTypeDatabase
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	case StoreTypeDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis || s == StoreTypeDatabase
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch s {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	case "database":
		return StoreTypeDatabase
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StoreConfig struct {
	Type     StoreType      `envconfig:"STORE_TYPE" default:"memory"`
	Redis    RedisConfig    `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"wristweather:"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"wristweather.db"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"wristweather"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type DebugConfig struct {
	SinkEnabled bool   `envconfig:"DEBUG_SINK_ENABLED" default:"false"`
	SinkURL     string `envconfig:"DEBUG_SINK_URL"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Device.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Update.Validate(); err != nil {
		return err
	}
	if err := c.Delivery.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Debug.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := validateHTTPURL("CONFIG_PAGE_URL", c.ConfigPageURL); err != nil {
		return err
	}
	return nil
}

func validateHTTPURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DeviceConfig) Validate() error {
	if d.BrokerHost == "" {
		return errors.NewConfigurationError("MQTT_BROKER_HOST cannot be empty", nil)
	}
	if d.BrokerPort < 1 || d.BrokerPort > maxPortNumber {
		return errors.NewConfigurationError("MQTT_BROKER_PORT must be between 1 and 65535", nil)
	}
	if d.ClientID == "" {
		return errors.NewConfigurationError("MQTT_CLIENT_ID cannot be empty", nil)
	}
	if d.TopicPrefix == "" {
		return errors.NewConfigurationError("MQTT_TOPIC_PREFIX cannot be empty", nil)
	}
	if strings.ContainsAny(d.TopicPrefix+d.DeviceID, "#+") {
		return errors.NewConfigurationError("MQTT_TOPIC_PREFIX and DEVICE_ID cannot contain MQTT wildcards", nil)
	}
	if d.DeviceID == "" {
		return errors.NewConfigurationError("DEVICE_ID cannot be empty", nil)
	}
	if d.PublishTimeoutSeconds < 1 {
		return errors.NewConfigurationError("MQTT_PUBLISH_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if _, err := d.Location(); err != nil {
		return err
	}
	if d.StaticLocation {
		if d.StaticLatitude < -90 || d.StaticLatitude > 90 {
			return errors.NewConfigurationError("DEVICE_STATIC_LATITUDE must be between -90 and 90", nil)
		}
		if d.StaticLongitude < -180 || d.StaticLongitude > 180 {
			return errors.NewConfigurationError("DEVICE_STATIC_LONGITUDE must be between -180 and 180", nil)
		}
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	urls := []struct {
		name  string
		value string
	}{
		{"OPENWEATHERMAP_API_BASE_URL", w.OpenWeatherMapBaseURL},
		{"YAHOO_YQL_BASE_URL", w.YahooBaseURL},
		{"WUNDERGROUND_API_BASE_URL", w.WundergroundBaseURL},
	}
	for _, u := range urls {
		if err := validateHTTPURL(u.name, u.value); err != nil {
			return err
		}
	}

	if len(w.HourlyOffsets) != 2 {
		return errors.NewConfigurationError("WEATHER_HOURLY_OFFSETS must list exactly two offsets", nil)
	}
	for _, offset := range w.HourlyOffsets {
		if offset < 0 {
			return errors.NewConfigurationError("WEATHER_HOURLY_OFFSETS cannot be negative", nil)
		}
	}

	if w.FetchTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_FETCH_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if w.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if w.BreakerOpenSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_OPEN_SECONDS must be at least 1 second", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is set", nil)
	}
	return nil
}

// Offsets returns the hourly forecast offsets as a fixed pair
func (w *WeatherConfig) Offsets() [2]int {
	var offsets [2]int
	copy(offsets[:], w.HourlyOffsets)
	return offsets
}

func (u *UpdateConfig) Validate() error {
	if u.CooldownSeconds < 1 {
		return errors.NewConfigurationError("UPDATE_COOLDOWN_SECONDS must be at least 1 second", nil)
	}
	if u.GeolocationTimeoutSeconds < 1 {
		return errors.NewConfigurationError("UPDATE_GEOLOCATION_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if u.GeolocationMaxAgeSeconds < 0 {
		return errors.NewConfigurationError("UPDATE_GEOLOCATION_MAX_AGE_SECONDS cannot be negative", nil)
	}
	if u.RefreshIntervalMinutes < 0 || u.RefreshIntervalMinutes > maxRefreshInterval {
		return errors.NewConfigurationError("UPDATE_REFRESH_INTERVAL_MINUTES must be between 0 and 1440 minutes", nil)
	}
	return nil
}

func (d *DeliveryConfig) Validate() error {
	if d.MaxRetry < 1 || d.MaxRetry > maxRetryLimit {
		return errors.NewConfigurationError("DELIVERY_MAX_RETRY must be between 1 and 10", nil)
	}
	if d.RetryWaitMs < 0 {
		return errors.NewConfigurationError("DELIVERY_RETRY_WAIT_MS cannot be negative", nil)
	}
	return nil
}

func (s *StoreConfig) Validate() error {
	if !s.Type.IsValid() {
		return errors.NewConfigurationError("STORE_TYPE must be one of: memory, redis, database", nil)
	}

	switch s.Type {
	case StoreTypeRedis:
		return s.Redis.Validate()
	case StoreTypeDatabase:
		return s.Database.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (d *DebugConfig) Validate() error {
	if d.SinkEnabled {
		return validateHTTPURL("DEBUG_SINK_URL", d.SinkURL)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	switch l.Format {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	return nil
}
