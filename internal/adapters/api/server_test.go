package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wristweather.app/internal/core/settings"
	"wristweather.app/internal/core/weather"
	"wristweather.app/internal/mocks"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

type stubWeatherUseCase struct {
	accept   bool
	requests int
	session  weather.Session
}

func (s *stubWeatherUseCase) RequestUpdate(ctx context.Context) bool {
	s.requests++
	return s.accept
}

func (s *stubWeatherUseCase) Status() weather.Session { return s.session }

func (s *stubWeatherUseCase) GetProviderInfo() map[string]interface{} {
	return map[string]interface{}{"default_service": "wundr"}
}

type stubSettingsUseCase struct {
	applied     []map[string]interface{}
	applyErr    error
	pageURL     string
	responses   []string
	refresh     bool
	responseErr error
}

func (s *stubSettingsUseCase) ApplyDeviceMessage(ctx context.Context, raw map[string]interface{}) error {
	s.applied = append(s.applied, raw)
	return s.applyErr
}

func (s *stubSettingsUseCase) ConfigPageURL() string { return s.pageURL }

func (s *stubSettingsUseCase) ApplyConfigPageResult(ctx context.Context, response string) (bool, error) {
	s.responses = append(s.responses, response)
	return s.refresh, s.responseErr
}

func (s *stubSettingsUseCase) Current() settings.Settings { return settings.Defaults() }

type stubHealth map[string]ports.HealthStatus

func (s stubHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus { return s }

type testServer struct {
	router   *gin.Engine
	weather  *stubWeatherUseCase
	settings *stubSettingsUseCase
	reporter *mocks.LocationReporter
}

func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	args := []interface{}{mock.Anything}
	for i := 0; i < 6; i++ {
		mockLogger.EXPECT().Debug(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Info(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Warn(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Error(args[0], args[1:]...).Maybe()
		args = append(args, mock.Anything)
	}
	return mockLogger
}

func setupTestServer(t *testing.T, health stubHealth) *testServer {
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		weather:  &stubWeatherUseCase{accept: true},
		settings: &stubSettingsUseCase{pageURL: "https://example.com/config/phone.html?s=wundr"},
		reporter: mocks.NewLocationReporter(t),
	}

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:          ServerConfig{Port: 8080},
		WeatherUseCase:  ts.weather,
		SettingsUseCase: ts.settings,
		Locations:       ts.reporter,
		Health:          health,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("wristweather_update_requests_total 1\n"))
		}),
		Logger: setupLoggerMock(t),
	})
	require.NoError(t, err)
	ts.router = server.GetRouter()
	return ts
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestNewHTTPServerAdapter_MissingDependencies(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})

	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "weather use case is required")
}

func TestPostAppMessage(t *testing.T) {
	ts := setupTestServer(t, stubHealth{})

	w := ts.do(http.MethodPost, "/api/appmessage", `{"service": "yahoo", "update": 1}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, ts.settings.applied, 1)
	assert.Equal(t, "yahoo", ts.settings.applied[0]["service"])
}

func TestPostAppMessage_Errors(t *testing.T) {
	t.Run("NotAnObject", func(t *testing.T) {
		ts := setupTestServer(t, stubHealth{})

		w := ts.do(http.MethodPost, "/api/appmessage", `[1, 2]`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, ts.settings.applied)
	})

	t.Run("ConfigParseFailure", func(t *testing.T) {
		ts := setupTestServer(t, stubHealth{})
		ts.settings.applyErr = errors.NewConfigParseError("settings field debug is not a boolean", nil)

		w := ts.do(http.MethodPost, "/api/appmessage", `{"debug": []}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "not a boolean")
	})
}

func TestPostLocation(t *testing.T) {
	ts := setupTestServer(t, stubHealth{})
	ts.reporter.EXPECT().Report(ports.Coordinates{
		Latitude:  50.45,
		Longitude: 30.52,
		Timestamp: time.UnixMilli(1700000000000),
	}).Once()

	w := ts.do(http.MethodPost, "/api/location", `{"latitude": 50.45, "longitude": 30.52, "timestamp": 1700000000000}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPostLocation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "MissingLongitude", body: `{"latitude": 50.45}`},
		{name: "LatitudeOutOfRange", body: `{"latitude": -95, "longitude": 30}`},
		{name: "NegativeTimestamp", body: `{"latitude": 1, "longitude": 1, "timestamp": -5}`},
		{name: "Malformed", body: `{"latitude":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupTestServer(t, stubHealth{})

			w := ts.do(http.MethodPost, "/api/location", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPostUpdate(t *testing.T) {
	ts := setupTestServer(t, stubHealth{})

	w := ts.do(http.MethodPost, "/api/update", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"accepted": true}`, w.Body.String())

	ts.weather.accept = false
	w = ts.do(http.MethodPost, "/api/update", "")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"accepted": false}`, w.Body.String())
	assert.Equal(t, 2, ts.weather.requests)
}

func TestConfigPage(t *testing.T) {
	ts := setupTestServer(t, stubHealth{})

	redirect := ts.do(http.MethodGet, "/api/config", "")
	assert.Equal(t, http.StatusFound, redirect.Code)
	assert.Equal(t, "https://example.com/config/phone.html?s=wundr", redirect.Header().Get("Location"))

	url := ts.do(http.MethodGet, "/api/config/url", "")
	assert.Equal(t, http.StatusOK, url.Code)
	assert.JSONEq(t, `{"url": "https://example.com/config/phone.html?s=wundr"}`, url.Body.String())
}

func TestPostConfigClosed(t *testing.T) {
	t.Run("Refreshed", func(t *testing.T) {
		ts := setupTestServer(t, stubHealth{})
		ts.settings.refresh = true

		w := ts.do(http.MethodPost, "/api/config/closed", `{"response": "%7B%22s%22%3A%22open%22%7D"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"refreshed": true}`, w.Body.String())
		assert.Equal(t, []string{"%7B%22s%22%3A%22open%22%7D"}, ts.settings.responses)
	})

	t.Run("Dismissed", func(t *testing.T) {
		ts := setupTestServer(t, stubHealth{})

		w := ts.do(http.MethodPost, "/api/config/closed", `{}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"refreshed": false}`, w.Body.String())
		assert.Equal(t, []string{""}, ts.settings.responses)
	})

	t.Run("Malformed", func(t *testing.T) {
		ts := setupTestServer(t, stubHealth{})
		ts.settings.responseErr = errors.NewConfigParseError("parse configuration response", nil)

		w := ts.do(http.MethodPost, "/api/config/closed", `{"response": "%7Bbroken"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetStatus(t *testing.T) {
	ts := setupTestServer(t, stubHealth{})
	ts.weather.session = weather.Session{InProgress: true}

	w := ts.do(http.MethodGet, "/api/status", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["session"].(map[string]interface{})["inProgress"])
	assert.Equal(t, "wundr", response["settings"].(map[string]interface{})["service"])
	assert.Equal(t, "wundr", response["providers"].(map[string]interface{})["default_service"])
	assert.NotContains(t, w.Body.String(), "\"a\"")
}

func TestGetHealth(t *testing.T) {
	healthy := setupTestServer(t, stubHealth{"mqtt": {Component: "mqtt", Status: "healthy"}})
	w := healthy.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	degraded := setupTestServer(t, stubHealth{
		"mqtt":  {Component: "mqtt", Status: "healthy"},
		"store": {Component: "store", Status: "unhealthy", Error: "connection refused"},
	})
	w = degraded.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestGetMetrics(t *testing.T) {
	ts := setupTestServer(t, stubHealth{})

	w := ts.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wristweather_update_requests_total")
}
