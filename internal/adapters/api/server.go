// Package api exposes the relay over HTTP: a device bridge for clients that
// cannot speak MQTT, the configuration page round trip, status and health.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"wristweather.app/internal/core/settings"
	"wristweather.app/internal/core/weather"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements the HTTP API using Gin
type HTTPServerAdapter struct {
	router          *gin.Engine
	config          ServerConfig
	weatherUseCase  WeatherUseCase
	settingsUseCase SettingsUseCase
	locations       ports.LocationReporter
	health          ports.SystemHealthChecker
	metricsHandler  http.Handler
	logger          ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	RequestUpdate(ctx context.Context) bool
	Status() weather.Session
	GetProviderInfo() map[string]interface{}
}

type SettingsUseCase interface {
	ApplyDeviceMessage(ctx context.Context, raw map[string]interface{}) error
	ConfigPageURL() string
	ApplyConfigPageResult(ctx context.Context, response string) (bool, error)
	Current() settings.Settings
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config          ServerConfig
	WeatherUseCase  WeatherUseCase
	SettingsUseCase SettingsUseCase
	Locations       ports.LocationReporter
	Health          ports.SystemHealthChecker
	MetricsHandler  http.Handler
	Logger          ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()

	server := &HTTPServerAdapter{
		router:          router,
		config:          opts.Config,
		weatherUseCase:  opts.WeatherUseCase,
		settingsUseCase: opts.SettingsUseCase,
		locations:       opts.Locations,
		health:          opts.Health,
		metricsHandler:  opts.MetricsHandler,
		logger:          opts.Logger,
	}

	router.Use(gin.Recovery(), server.requestLogger())
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.SettingsUseCase == nil {
		return errors.NewValidationError("settings use case is required")
	}
	if opts.Locations == nil {
		return errors.NewValidationError("location reporter is required")
	}
	if opts.Health == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/appmessage", s.postAppMessage)
		api.POST("/location", s.postLocation)
		api.POST("/update", s.postUpdate)
		api.GET("/config", s.redirectConfigPage)
		api.GET("/config/url", s.getConfigPageURL)
		api.POST("/config/closed", s.postConfigClosed)
		api.GET("/status", s.getStatus)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Debug("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
