package weather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wristweather.app/internal/core/settings"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// SettingsSource exposes the settings an update cycle runs with
type SettingsSource interface {
	Current() settings.Settings
	Credential() string
}

type UseCase struct {
	mu      sync.Mutex
	session Session
	closed  bool

	providers  ports.ProviderRegistry
	fetcher    ports.JSONFetcher
	locator    ports.Locator
	dispatcher ports.MessageDispatcher
	debugSink  ports.DebugSink
	settings   SettingsSource
	config     ports.ConfigProvider
	logger     ports.Logger
	metrics    ports.MetricsCollector

	normalizer *Normalizer
	location   *time.Location
	now        func() time.Time

	wg sync.WaitGroup
}

type UseCaseDependencies struct {
	Providers  ports.ProviderRegistry
	Fetcher    ports.JSONFetcher
	Locator    ports.Locator
	Dispatcher ports.MessageDispatcher
	DebugSink  ports.DebugSink
	Settings   SettingsSource
	Config     ports.ConfigProvider
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Providers == nil {
		return nil, errors.NewValidationError("provider registry is required")
	}
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("fetcher is required")
	}
	if deps.Locator == nil {
		return nil, errors.NewValidationError("locator is required")
	}
	if deps.Dispatcher == nil {
		return nil, errors.NewValidationError("message dispatcher is required")
	}
	if deps.DebugSink == nil {
		return nil, errors.NewValidationError("debug sink is required")
	}
	if deps.Settings == nil {
		return nil, errors.NewValidationError("settings source is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	location := deps.Config.GetDeviceConfig().Location
	if location == nil {
		location = time.Local
	}

	return &UseCase{
		providers:  deps.Providers,
		fetcher:    deps.Fetcher,
		locator:    deps.Locator,
		dispatcher: deps.Dispatcher,
		debugSink:  deps.DebugSink,
		settings:   deps.Settings,
		config:     deps.Config,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		normalizer: NewNormalizer(location),
		location:   location,
		now:        time.Now,
	}, nil
}

// RequestUpdate runs one update cycle. It returns false when the request was dropped
// because another cycle is in progress and the cooldown has not elapsed.
func (uc *UseCase) RequestUpdate(ctx context.Context) bool {
	cfg := uc.config.GetUpdateConfig()

	acquired, closed := uc.acquire(cfg.Cooldown)
	if closed {
		uc.logger.Debug("Update requested after shutdown, ignoring")
		return false
	}
	if !acquired {
		uc.logger.Debug("Update already started recently", ports.F("cooldown", cfg.Cooldown))
		uc.metrics.RecordUpdate(OutcomeDebounced)
		return false
	}
	defer uc.release()
	uc.metrics.RecordUpdate(OutcomeAccepted)

	current := uc.settings.Current()
	credential := uc.settings.Credential()

	coords, err := uc.locator.CurrentPosition(ctx, ports.LocateOptions{
		Timeout:    cfg.GeolocationTimeout,
		MaximumAge: cfg.GeolocationMaxAge,
	})
	if err != nil {
		uc.logger.Warn("Location unavailable", ports.F("error", err))
		uc.dispatcher.Send(ctx, ErrorMessage(ErrorLocationUnavailable))
		uc.debugSink.Post(ctx, ErrorMessage(fmt.Sprintf("Location error: %v", err)))
		return true
	}

	uc.logger.Debug("Got coordinates",
		ports.F("latitude", coords.Latitude),
		ports.F("longitude", coords.Longitude))

	opts := ports.RequestOptions{
		Unit:          current.Scale.Unit(),
		APIKey:        credential,
		HourlyOffsets: cfg.HourlyOffsets,
		Location:      uc.location,
		Now:           uc.now(),
	}

	if credential == "" {
		uc.logger.Debug("Hourly disabled, no API key")
		uc.dispatcher.Send(ctx, HourlyDisabledMessage())
	} else {
		hourlyCtx := context.WithoutCancel(ctx)
		uc.wg.Add(1)
		go func() {
			defer uc.wg.Done()
			uc.updateForecast(hourlyCtx, coords, opts)
		}()
	}

	uc.updateConditions(ctx, current.Service, coords, opts)
	return true
}

// TriggerUpdate starts an update cycle in the background. It is a no-op after Close.
func (uc *UseCase) TriggerUpdate() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.closed {
		return
	}
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		uc.RequestUpdate(context.Background())
	}()
}

// Status returns a snapshot of the update session
func (uc *UseCase) Status() Session {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.session
}

// Close rejects further update requests. Call it before Wait so no new cycle
// can be registered while Wait is blocking.
func (uc *UseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.closed = true
}

// Wait blocks until running cycles, background cycles and hourly pipelines have finished
func (uc *UseCase) Wait() {
	uc.wg.Wait()
}

// GetProviderInfo describes the configured providers
func (uc *UseCase) GetProviderInfo() map[string]interface{} {
	return uc.providers.GetProviderInfo()
}

// acquire registers the cycle with the wait group under the same lock Close takes
func (uc *UseCase) acquire(cooldown time.Duration) (acquired bool, closed bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.closed {
		return false, true
	}
	now := uc.now()
	if uc.session.Blocks(now, cooldown) {
		return false, false
	}
	uc.session.InProgress = true
	uc.session.LastAttempt = now
	uc.wg.Add(1)
	return true, false
}

func (uc *UseCase) release() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.session.InProgress = false
	uc.wg.Done()
}

func (uc *UseCase) updateConditions(ctx context.Context, service settings.Service, coords ports.Coordinates, opts ports.RequestOptions) {
	provider := uc.providers.Conditions(string(service))

	record, err := uc.fetchConditions(ctx, provider, coords, opts)
	if err != nil {
		text := ErrorHTTP
		if errors.IsValidationError(err) {
			text = ErrorAPIKeyNeeded
		}
		uc.logger.Warn("Could not find weather data in response",
			ports.F("provider", provider.Name()),
			ports.F("error", err))
		uc.deliver(ctx, ErrorMessage(text))
		return
	}

	msg := record.Message()
	uc.logger.Debug("Weather data", ports.F("provider", provider.Name()), ports.F("data", msg))
	uc.deliver(ctx, msg)
}

func (uc *UseCase) fetchConditions(ctx context.Context, provider ports.ConditionsProvider, coords ports.Coordinates, opts ports.RequestOptions) (*WeatherRecord, error) {
	url, err := provider.BuildRequest(coords, opts)
	if err != nil {
		return nil, err
	}

	body, err := uc.fetcher.FetchJSON(ctx, url)
	uc.metrics.RecordProviderFetch(provider.Name(), err == nil)
	if err != nil {
		return nil, err
	}

	reading, err := provider.Parse(body, opts)
	if err != nil {
		return nil, err
	}

	return uc.normalizer.Conditions(reading, opts.Unit)
}

func (uc *UseCase) updateForecast(ctx context.Context, coords ports.Coordinates, opts ports.RequestOptions) {
	provider := uc.providers.Forecast()

	record, err := uc.fetchForecast(ctx, provider, coords, opts)
	if err != nil {
		uc.logger.Warn("Could not find hourly data in response",
			ports.F("provider", provider.Name()),
			ports.F("error", err))
		uc.deliver(ctx, ErrorMessage(ErrorHTTP))
		return
	}

	msg := record.Message()
	uc.logger.Debug("Hourly data", ports.F("data", msg))
	uc.deliver(ctx, msg)
}

func (uc *UseCase) fetchForecast(ctx context.Context, provider ports.ForecastProvider, coords ports.Coordinates, opts ports.RequestOptions) (*HourlyRecord, error) {
	url, err := provider.BuildRequest(coords, opts)
	if err != nil {
		return nil, err
	}

	body, err := uc.fetcher.FetchJSON(ctx, url)
	uc.metrics.RecordProviderFetch(provider.Name(), err == nil)
	if err != nil {
		return nil, err
	}

	reading, err := provider.Parse(body, opts)
	if err != nil {
		return nil, err
	}

	return uc.normalizer.Forecast(reading, opts.Unit)
}

func (uc *UseCase) deliver(ctx context.Context, msg ports.AppMessage) {
	uc.dispatcher.Send(ctx, msg)
	uc.debugSink.Post(ctx, msg)
}
