package weather

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wristweather.app/internal/core/settings"
	"wristweather.app/internal/mocks"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

type fakeSettings struct {
	current    settings.Settings
	credential string
}

func (f *fakeSettings) Current() settings.Settings { return f.current }
func (f *fakeSettings) Credential() string         { return f.credential }

type updateMocks struct {
	registry   *mocks.ProviderRegistry
	conditions *mocks.ConditionsProvider
	forecast   *mocks.ForecastProvider
	fetcher    *mocks.JSONFetcher
	locator    *mocks.Locator
	dispatcher *mocks.MessageDispatcher
	debugSink  *mocks.DebugSink
	config     *mocks.ConfigProvider
	metrics    *mocks.MetricsCollector
}

var testCoords = ports.Coordinates{Latitude: 50.45, Longitude: 30.52}

func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	args := []interface{}{mock.Anything}
	for i := 0; i < 5; i++ {
		mockLogger.EXPECT().Debug(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Info(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Warn(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Error(args[0], args[1:]...).Maybe()
		args = append(args, mock.Anything)
	}

	return mockLogger
}

func newTestUseCase(t *testing.T, source *fakeSettings) (*UseCase, updateMocks) {
	m := updateMocks{
		registry:   mocks.NewProviderRegistry(t),
		conditions: mocks.NewConditionsProvider(t),
		forecast:   mocks.NewForecastProvider(t),
		fetcher:    mocks.NewJSONFetcher(t),
		locator:    mocks.NewLocator(t),
		dispatcher: mocks.NewMessageDispatcher(t),
		debugSink:  mocks.NewDebugSink(t),
		config:     mocks.NewConfigProvider(t),
		metrics:    mocks.NewMetricsCollector(t),
	}

	m.config.EXPECT().GetUpdateConfig().Return(ports.UpdateConfig{
		Cooldown:           time.Minute,
		GeolocationTimeout: 15 * time.Second,
		GeolocationMaxAge:  time.Minute,
		HourlyOffsets:      [2]int{2, 5},
	}).Maybe()
	m.config.EXPECT().GetDeviceConfig().Return(ports.DeviceConfig{Location: time.UTC}).Maybe()
	m.debugSink.EXPECT().Post(mock.Anything, mock.Anything).Maybe()
	m.metrics.EXPECT().RecordUpdate(mock.Anything).Maybe()
	m.metrics.EXPECT().RecordProviderFetch(mock.Anything, mock.Anything).Maybe()
	m.conditions.EXPECT().Name().Return("open").Maybe()
	m.forecast.EXPECT().Name().Return("wundr-hourly").Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Providers:  m.registry,
		Fetcher:    m.fetcher,
		Locator:    m.locator,
		Dispatcher: m.dispatcher,
		DebugSink:  m.debugSink,
		Settings:   source,
		Config:     m.config,
		Logger:     setupLoggerMock(t),
		Metrics:    m.metrics,
	})
	require.NoError(t, err)

	return uc, m
}

func celsiusSettings(service settings.Service) settings.Settings {
	s := settings.Defaults()
	s.Service = service
	s.Scale = settings.ScaleCelsius
	return s
}

func expectConditions(m updateMocks, service string) {
	m.registry.EXPECT().Conditions(service).Return(m.conditions).Once()
	m.conditions.EXPECT().BuildRequest(testCoords, mock.Anything).Return("http://weather.test/current", nil).Once()
	m.fetcher.EXPECT().FetchJSON(mock.Anything, "http://weather.test/current").Return([]byte(`{}`), nil).Once()
	m.conditions.EXPECT().Parse([]byte(`{}`), mock.Anything).Return(&ports.ConditionsReading{
		Condition:   ports.ConditionCode{Code: 800},
		Temperature: ports.Temperature{Value: 300, Unit: ports.UnitKelvin},
		Sunrise:     1700000000,
		Sunset:      1700040000,
		Locale:      "Kyiv",
		Published:   time.Unix(1700003000, 0),
	}, nil).Once()
}

var expectedWeatherMessage = ports.AppMessage{
	"condition":   800,
	"temperature": 27,
	"sunrise":     int64(1700000000),
	"sunset":      int64(1700040000),
	"locale":      "Kyiv",
	"pubdate":     "23:03",
	"tzoffset":    0,
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ValidationError, appErr.Type)
	assert.Contains(t, appErr.Message, "provider registry is required")
}

func TestUseCase_RequestUpdate_NoCredential(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: celsiusSettings(settings.ServiceOpen)})

	m.locator.EXPECT().CurrentPosition(mock.Anything, ports.LocateOptions{
		Timeout:    15 * time.Second,
		MaximumAge: time.Minute,
	}).Return(testCoords, nil).Once()
	expectConditions(m, "open")
	m.dispatcher.EXPECT().Send(mock.Anything, HourlyDisabledMessage()).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, expectedWeatherMessage).Once()

	assert.True(t, uc.RequestUpdate(context.Background()))
	uc.Wait()

	m.registry.AssertNotCalled(t, "Forecast")
	assert.False(t, uc.Status().InProgress)
}

func TestUseCase_RequestUpdate_WithCredentialFetchesHourly(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: celsiusSettings(settings.ServiceOpen), credential: "key"})

	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).Return(testCoords, nil).Once()
	expectConditions(m, "open")
	m.dispatcher.EXPECT().Send(mock.Anything, expectedWeatherMessage).Once()

	m.registry.EXPECT().Forecast().Return(m.forecast).Once()
	m.forecast.EXPECT().BuildRequest(testCoords, mock.MatchedBy(func(o ports.RequestOptions) bool {
		return o.APIKey == "key" && o.HourlyOffsets == [2]int{2, 5} && o.Unit == ports.UnitCelsius
	})).Return("http://weather.test/hourly", nil).Once()
	m.fetcher.EXPECT().FetchJSON(mock.Anything, "http://weather.test/hourly").Return([]byte(`[]`), nil).Once()
	m.forecast.EXPECT().Parse([]byte(`[]`), mock.Anything).Return(&ports.ForecastReading{
		Slices: []ports.HourlySlice{
			{Temperature: ports.Temperature{Value: 21, Unit: ports.UnitCelsius}, Condition: 13, Time: 1700010800, PrecipProbability: 40},
			{Temperature: ports.Temperature{Value: 18, Unit: ports.UnitCelsius}, Condition: 2, Time: 1700021600, PrecipProbability: 10},
		},
	}, nil).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ports.AppMessage{
		"h1_temp": 21,
		"h1_cond": 13,
		"h1_time": int64(1700010800),
		"h1_pop":  40,
		"h2_temp": 18,
		"h2_cond": 2,
		"h2_time": int64(1700021600),
		"h2_pop":  10,
	}).Once()

	assert.True(t, uc.RequestUpdate(context.Background()))
	uc.Wait()
}

func TestUseCase_RequestUpdate_StopHourlyStillFetchesForecast(t *testing.T) {
	s := celsiusSettings(settings.ServiceOpen)
	s.StopHourly = true
	uc, m := newTestUseCase(t, &fakeSettings{current: s, credential: "key"})

	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).Return(testCoords, nil).Once()
	expectConditions(m, "open")
	m.dispatcher.EXPECT().Send(mock.Anything, expectedWeatherMessage).Once()

	m.registry.EXPECT().Forecast().Return(m.forecast).Once()
	m.forecast.EXPECT().BuildRequest(testCoords, mock.Anything).Return("http://weather.test/hourly", nil).Once()
	m.fetcher.EXPECT().FetchJSON(mock.Anything, "http://weather.test/hourly").
		Return(nil, errors.NewExternalAPIError("status 500", nil)).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorHTTP)).Once()

	assert.True(t, uc.RequestUpdate(context.Background()))
	uc.Wait()

	m.registry.AssertNumberOfCalls(t, "Forecast", 1)
}

func TestUseCase_RequestUpdate_HourlyFailureIsIndependent(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: celsiusSettings(settings.ServiceOpen), credential: "key"})

	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).Return(testCoords, nil).Once()
	expectConditions(m, "open")
	m.dispatcher.EXPECT().Send(mock.Anything, expectedWeatherMessage).Once()

	m.registry.EXPECT().Forecast().Return(m.forecast).Once()
	m.forecast.EXPECT().BuildRequest(testCoords, mock.Anything).Return("http://weather.test/hourly", nil).Once()
	m.fetcher.EXPECT().FetchJSON(mock.Anything, "http://weather.test/hourly").
		Return(nil, errors.NewExternalAPIError("status 500", nil)).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorHTTP)).Once()

	assert.True(t, uc.RequestUpdate(context.Background()))
	uc.Wait()
}

func TestUseCase_RequestUpdate_LocationFailure(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: settings.Defaults(), credential: "key"})

	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).
		Return(ports.Coordinates{}, errors.NewGeolocationError("timeout", nil)).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorLocationUnavailable)).Once()

	assert.True(t, uc.RequestUpdate(context.Background()))
	uc.Wait()

	m.registry.AssertNotCalled(t, "Conditions", mock.Anything)
	m.registry.AssertNotCalled(t, "Forecast")
	assert.False(t, uc.Status().InProgress)
}

func TestUseCase_RequestUpdate_FetchFailure(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: celsiusSettings(settings.ServiceYahoo)})

	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).Return(testCoords, nil).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, HourlyDisabledMessage()).Once()
	m.registry.EXPECT().Conditions("yahoo").Return(m.conditions).Once()
	m.conditions.EXPECT().BuildRequest(testCoords, mock.Anything).Return("http://weather.test/yql", nil).Once()
	m.fetcher.EXPECT().FetchJSON(mock.Anything, "http://weather.test/yql").
		Return(nil, errors.NewExternalAPIError("connection refused", nil)).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorHTTP)).Once()

	assert.True(t, uc.RequestUpdate(context.Background()))
	uc.Wait()

	m.metrics.AssertCalled(t, "RecordProviderFetch", "open", false)
	assert.False(t, uc.Status().InProgress)
}

func TestUseCase_RequestUpdate_ParseFailure(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: celsiusSettings(settings.ServiceOpen)})

	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).Return(testCoords, nil).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, HourlyDisabledMessage()).Once()
	m.registry.EXPECT().Conditions("open").Return(m.conditions).Once()
	m.conditions.EXPECT().BuildRequest(testCoords, mock.Anything).Return("http://weather.test/current", nil).Once()
	m.fetcher.EXPECT().FetchJSON(mock.Anything, mock.Anything).Return([]byte(`{"weather":[]}`), nil).Once()
	m.conditions.EXPECT().Parse(mock.Anything, mock.Anything).
		Return(nil, errors.NewParseError("empty weather array", nil)).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorHTTP)).Once()

	assert.True(t, uc.RequestUpdate(context.Background()))
	uc.Wait()
}

func TestUseCase_RequestUpdate_MissingAPIKey(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: settings.Defaults()})

	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).Return(testCoords, nil).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, HourlyDisabledMessage()).Once()
	m.registry.EXPECT().Conditions("wundr").Return(m.conditions).Once()
	m.conditions.EXPECT().BuildRequest(testCoords, mock.Anything).
		Return("", errors.NewValidationError("api key required")).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorAPIKeyNeeded)).Once()

	assert.True(t, uc.RequestUpdate(context.Background()))
	uc.Wait()

	m.fetcher.AssertNotCalled(t, "FetchJSON", mock.Anything, mock.Anything)
}

func TestUseCase_RequestUpdate_Debounce(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: settings.Defaults()})

	entered := make(chan struct{})
	release := make(chan struct{})
	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, ports.LocateOptions) (ports.Coordinates, error) {
			close(entered)
			<-release
			return ports.Coordinates{}, errors.NewGeolocationError("no fix", nil)
		}).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorLocationUnavailable)).Once()

	first := make(chan bool)
	go func() { first <- uc.RequestUpdate(context.Background()) }()
	<-entered

	var wg sync.WaitGroup
	results := make([]bool, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = uc.RequestUpdate(context.Background())
		}(i)
	}
	wg.Wait()

	for _, accepted := range results {
		assert.False(t, accepted)
	}
	assert.True(t, uc.Status().InProgress)

	close(release)
	assert.True(t, <-first)
	assert.False(t, uc.Status().InProgress)
	m.metrics.AssertNumberOfCalls(t, "RecordUpdate", 6)
}

func TestUseCase_RequestUpdate_DebounceResetsAfterCycle(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: settings.Defaults()})

	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).
		Return(ports.Coordinates{}, errors.NewGeolocationError("no fix", nil)).Twice()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorLocationUnavailable)).Twice()

	assert.True(t, uc.RequestUpdate(context.Background()))
	assert.True(t, uc.RequestUpdate(context.Background()))
}

func TestUseCase_RequestUpdate_StaleSessionExpires(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: settings.Defaults()})

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }
	uc.session = Session{InProgress: true, LastAttempt: now.Add(-30 * time.Second)}

	assert.False(t, uc.RequestUpdate(context.Background()))

	uc.session.LastAttempt = now.Add(-2 * time.Minute)
	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).
		Return(ports.Coordinates{}, errors.NewGeolocationError("no fix", nil)).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorLocationUnavailable)).Once()

	assert.True(t, uc.RequestUpdate(context.Background()))
	assert.Equal(t, now, uc.Status().LastAttempt)
}

func TestUseCase_TriggerUpdate(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: settings.Defaults()})

	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).
		Return(ports.Coordinates{}, errors.NewGeolocationError("no fix", nil)).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorLocationUnavailable)).Once()

	uc.TriggerUpdate()
	uc.Wait()

	assert.False(t, uc.Status().LastAttempt.IsZero())
}

func TestUseCase_Close_RejectsRequests(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: settings.Defaults()})

	uc.Close()
	uc.TriggerUpdate()
	assert.False(t, uc.RequestUpdate(context.Background()))
	uc.Wait()

	m.locator.AssertNotCalled(t, "CurrentPosition", mock.Anything, mock.Anything)
	m.metrics.AssertNotCalled(t, "RecordUpdate", mock.Anything)
	assert.True(t, uc.Status().LastAttempt.IsZero())
}

func TestUseCase_Wait_CoversSynchronousCycles(t *testing.T) {
	uc, m := newTestUseCase(t, &fakeSettings{current: settings.Defaults()})

	entered := make(chan struct{})
	release := make(chan struct{})
	m.locator.EXPECT().CurrentPosition(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, ports.LocateOptions) (ports.Coordinates, error) {
			close(entered)
			<-release
			return ports.Coordinates{}, errors.NewGeolocationError("no fix", nil)
		}).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ErrorMessage(ErrorLocationUnavailable)).Once()

	go uc.RequestUpdate(context.Background())
	<-entered
	uc.Close()

	waited := make(chan struct{})
	go func() {
		uc.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned while a cycle was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the cycle finished")
	}
}
