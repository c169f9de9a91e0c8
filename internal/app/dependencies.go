package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
	"wristweather.app/internal/adapters/database"
	"wristweather.app/internal/adapters/device"
	"wristweather.app/internal/adapters/external"
	"wristweather.app/internal/adapters/infrastructure"
	"wristweather.app/internal/config"
	"wristweather.app/internal/ports"
)

// DependencyContainer builds the adapters behind every port
type DependencyContainer struct {
	config *config.Config
	logger *infrastructure.SlogLoggerAdapter

	db             *gorm.DB
	store          ports.StoreBackend
	providerLogger *infrastructure.FileLoggerAdapter
	fetcher        *external.HTTPFetcherAdapter
	mqtt           *device.Client
	topics         device.Topics
	locator        *device.Locator
	metricsHandler http.Handler

	ports *ports.ApplicationPorts
}

// DependencyOptions overrides process-wide defaults, mainly for tests
type DependencyOptions struct {
	// Registry receives the relay metrics. Nil uses the default Prometheus registry.
	Registry *prometheus.Registry
}

func NewDependencyContainer(cfg *config.Config, logger *infrastructure.SlogLoggerAdapter, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
		logger: logger,
		topics: device.NewTopics(cfg.Device.TopicPrefix, cfg.Device.DeviceID),
	}

	if err := container.initializeStore(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	if err := container.initializePorts(opts); err != nil {
		container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeStore() error {
	c.logger.Info("Initializing settings store", ports.F("type", c.config.Store.Type.String()))

	if c.config.Store.Type == config.StoreTypeDatabase {
		db, err := database.Open(c.config.Store.Database)
		if err != nil {
			return err
		}
		c.db = db
		c.store = database.NewSettingsRepositoryAdapter(db)
		c.logger.Info("Database connection established", ports.F("driver", c.config.Store.Database.Driver))
		return nil
	}

	store, err := external.NewStoreFactory().CreateStore(&c.config.Store)
	if err != nil {
		return err
	}
	c.store = store
	return nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	weatherCfg := c.config.Weather

	var providerLogger ports.Logger
	if weatherCfg.EnableLogging && weatherCfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherCfg.LogFilePath)
		if err != nil {
			c.logger.Warn("Failed to create provider file logger, falling back to console", ports.F("error", err))
			providerLogger = c.logger
		} else {
			c.providerLogger = fileLogger
			providerLogger = fileLogger
			c.logger.Info("Provider file logging enabled", ports.F("path", weatherCfg.LogFilePath))
		}
	}

	providers := external.NewProviderRegistryAdapter(external.ProviderRegistryConfig{
		OpenWeatherMapKey: weatherCfg.OpenWeatherMapKey,
		OpenWeatherMapURL: weatherCfg.OpenWeatherMapBaseURL,
		YahooURL:          weatherCfg.YahooBaseURL,
		WundergroundURL:   weatherCfg.WundergroundBaseURL,
		EnableLogging:     weatherCfg.EnableLogging,
		ProviderLogger:    providerLogger,
		Logger:            c.logger,
	})

	c.fetcher = external.NewHTTPFetcherAdapter(external.HTTPFetcherParams{
		Timeout:     time.Duration(weatherCfg.FetchTimeoutSeconds) * time.Second,
		MaxFailures: weatherCfg.BreakerMaxFailures,
		OpenTimeout: time.Duration(weatherCfg.BreakerOpenSeconds) * time.Second,
		Logger:      c.logger,
	})

	debugSink := external.NewDebugSinkAdapter(external.DebugSinkParams{
		URL:     c.config.Debug.SinkURL,
		Enabled: c.config.Debug.SinkEnabled,
		Logger:  c.logger,
	})

	c.mqtt = device.NewClient(c.config.Device, c.logger)
	messenger := device.NewMessenger(c.mqtt, c.topics, c.logger)

	var static *ports.Coordinates
	if c.config.Device.StaticLocation {
		static = &ports.Coordinates{
			Latitude:  c.config.Device.StaticLatitude,
			Longitude: c.config.Device.StaticLongitude,
		}
	}
	c.locator = device.NewLocator(device.LocatorParams{
		Transport: c.mqtt,
		Topics:    c.topics,
		Static:    static,
		Logger:    c.logger,
	})

	var metrics *infrastructure.PrometheusMetricsCollector
	if opts.Registry != nil {
		metrics = infrastructure.NewPrometheusMetricsCollector(opts.Registry)
		c.metricsHandler = promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})
	} else {
		metrics = infrastructure.NewPrometheusMetricsCollector(prometheus.DefaultRegisterer)
		c.metricsHandler = promhttp.Handler()
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	checkers := []ports.HealthChecker{
		infrastructure.NewMQTTHealthChecker(c.mqtt, c.config.Device.BrokerURL()),
		infrastructure.NewStoreHealthChecker(c.store, c.config.Store.Type.String()),
		infrastructure.NewWeatherAPIHealthChecker(c.fetcher, providers),
	}
	if c.db != nil {
		checkers = append(checkers, infrastructure.NewDatabaseHealthChecker(c.db))
	}
	health := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers:       checkers,
		ConfigProvider: configProvider,
	})

	c.ports = &ports.ApplicationPorts{
		Providers: providers,
		Fetcher:   c.fetcher,

		Messenger: messenger,
		Locator:   c.locator,
		DebugSink: debugSink,

		SettingsStore: c.store,

		ConfigProvider: configProvider,
		Logger:         c.logger,
		LogLevel:       c.logger,
		Metrics:        metrics,
		Health:         health,
	}

	c.logger.Info("Ports initialized",
		ports.F("broker", c.config.Device.BrokerURL()),
		ports.F("display_topic", c.topics.Display))
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// MQTT returns the broker client shared by the device adapters
func (c *DependencyContainer) MQTT() *device.Client {
	return c.mqtt
}

// Topics returns the device topic set
func (c *DependencyContainer) Topics() device.Topics {
	return c.topics
}

// LocationReporter returns the sink for device position fixes
func (c *DependencyContainer) LocationReporter() ports.LocationReporter {
	return c.locator
}

// MetricsHandler serves the registry the metrics collector writes to
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return c.metricsHandler
}

// Cleanup closes the store and the provider log
func (c *DependencyContainer) Cleanup() {
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			c.logger.Warn("Error closing settings store", ports.F("error", err))
		}
	}
	if c.providerLogger != nil {
		if err := c.providerLogger.Close(); err != nil {
			c.logger.Warn("Error closing provider log", ports.F("error", err))
		}
	}
}
