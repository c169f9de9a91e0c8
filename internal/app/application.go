package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"wristweather.app/internal/adapters/api"
	"wristweather.app/internal/adapters/device"
	"wristweather.app/internal/adapters/infrastructure"
	"wristweather.app/internal/config"
	"wristweather.app/internal/core/delivery"
	"wristweather.app/internal/core/settings"
	"wristweather.app/internal/core/weather"
	"wristweather.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer
	logger ports.Logger

	// Use Cases
	weatherUseCase  *weather.UseCase
	settingsUseCase *settings.UseCase
	channel         *delivery.Channel

	// Adapters
	listener   *device.Listener
	scheduler  *infrastructure.RefreshScheduler
	httpServer *http.Server
	router     *gin.Engine

	ports *ports.ApplicationPorts
}

// NewApplication wires the relay from configuration
func NewApplication(cfg *config.Config, logger *infrastructure.SlogLoggerAdapter) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, logger, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
		logger: deps.ApplicationPorts().Logger,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	a.logger.Info("Initializing use cases...")

	channel, err := delivery.NewChannel(delivery.ChannelDependencies{
		Messenger: a.ports.Messenger,
		Config:    a.ports.ConfigProvider,
		Logger:    a.ports.Logger,
		Metrics:   a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create delivery channel: %w", err)
	}
	a.channel = channel

	settingsUseCase, err := settings.NewUseCase(settings.UseCaseDependencies{
		Store:      a.ports.SettingsStore,
		Dispatcher: channel,
		LogLevel:   a.ports.LogLevel,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create settings use case: %w", err)
	}
	a.settingsUseCase = settingsUseCase

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Providers:  a.ports.Providers,
		Fetcher:    a.ports.Fetcher,
		Locator:    a.ports.Locator,
		Dispatcher: channel,
		DebugSink:  a.ports.DebugSink,
		Settings:   settingsUseCase,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	settingsUseCase.BindUpdateTrigger(weatherUseCase)

	a.logger.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	a.logger.Info("Initializing adapters...")

	a.listener = device.NewListener(device.ListenerParams{
		Transport: a.deps.MQTT(),
		Topics:    a.deps.Topics(),
		Settings:  a.settingsUseCase,
		Reporter:  a.deps.LocationReporter(),
		Logger:    a.logger,
	})
	a.deps.MQTT().OnConnect(a.onDeviceConnected)

	a.scheduler = infrastructure.NewRefreshScheduler(
		a.weatherUseCase,
		time.Duration(a.config.Update.RefreshIntervalMinutes)*time.Minute,
		a.logger,
	)

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:          api.ServerConfig{Port: a.config.Server.Port},
		WeatherUseCase:  a.weatherUseCase,
		SettingsUseCase: a.settingsUseCase,
		Locations:       a.deps.LocationReporter(),
		Health:          a.ports.Health,
		MetricsHandler:  a.deps.MetricsHandler(),
		Logger:          a.logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()
	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("Adapters initialized successfully")
	return nil
}

// onDeviceConnected runs after every broker (re)connect. The session is clean,
// so subscriptions are renewed before announcing readiness.
func (a *Application) onDeviceConnected() {
	if err := a.listener.Subscribe(); err != nil {
		a.logger.Error("Failed to subscribe to device topics", ports.F("error", err))
		return
	}
	a.channel.Send(context.Background(), weather.ReadyMessage())
}

func (a *Application) Start(ctx context.Context) error {
	a.logger.Info("Starting application...")

	if err := a.settingsUseCase.Load(ctx); err != nil {
		a.logger.Warn("Failed to load stored credential", ports.F("error", err))
	}

	go func() {
		if err := a.deps.MQTT().Connect(ctx); err != nil {
			a.logger.Error("MQTT connect failed", ports.F("broker", a.config.Device.BrokerURL()), ports.F("error", err))
		}
	}()

	if err := a.scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	a.logger.Info("Starting HTTP server", ports.F("port", a.config.Server.Port))
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// Shutdown stops every update source (scheduler, HTTP, weather use case) before
// waiting on in-flight cycles, then drains deliveries and closes the broker and store.
func (a *Application) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	a.scheduler.Stop()

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Error shutting down HTTP server", ports.F("error", err))
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.weatherUseCase.Close()
	if !waitWithContext(ctx, a.weatherUseCase.Wait) {
		a.logger.Warn("Update cycles still running at shutdown deadline")
	}

	a.channel.Close()
	if !waitWithContext(ctx, a.channel.Wait) {
		a.logger.Warn("Deliveries still pending at shutdown deadline")
	}

	a.deps.MQTT().Disconnect()
	a.deps.Cleanup()

	a.logger.Info("Application shutdown complete")
	return shutdownErr
}

func waitWithContext(ctx context.Context, wait func()) bool {
	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}

// GetSettingsUseCase returns the settings use case for testing
func (a *Application) GetSettingsUseCase() *settings.UseCase {
	return a.settingsUseCase
}
