package settings

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wristweather.app/internal/mocks"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

const testPageURL = "https://example.com/config.html"

type settingsMocks struct {
	store      *mocks.KeyValueStore
	dispatcher *mocks.MessageDispatcher
	logLevel   *mocks.LogLevelController
	config     *mocks.ConfigProvider
	logger     *mocks.Logger
	trigger    *mocks.UpdateTrigger
}

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

func newTestUseCase(t *testing.T) (*UseCase, settingsMocks) {
	m := settingsMocks{
		store:      mocks.NewKeyValueStore(t),
		dispatcher: mocks.NewMessageDispatcher(t),
		logLevel:   mocks.NewLogLevelController(t),
		config:     mocks.NewConfigProvider(t),
		logger:     setupLoggerMock(t),
		trigger:    mocks.NewUpdateTrigger(t),
	}

	m.config.EXPECT().GetConfigPageConfig().Return(ports.ConfigPageConfig{URL: testPageURL}).Maybe()
	m.config.EXPECT().GetCredentialConfig().Return(ports.CredentialConfig{}).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Store:      m.store,
		Dispatcher: m.dispatcher,
		LogLevel:   m.logLevel,
		Config:     m.config,
		Logger:     m.logger,
	})
	require.NoError(t, err)
	uc.BindUpdateTrigger(m.trigger)

	return uc, m
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "settings store is required")
}

func TestUseCase_Load(t *testing.T) {
	t.Run("StoredCredential", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.store.EXPECT().Get(mock.Anything, CredentialKey).Return("abc123", nil)

		require.NoError(t, uc.Load(context.Background()))
		assert.Equal(t, "abc123", uc.Credential())
	})

	t.Run("NothingStored", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.store.EXPECT().Get(mock.Anything, CredentialKey).Return("", errors.NewNotFoundError("missing"))

		require.NoError(t, uc.Load(context.Background()))
		assert.Equal(t, "", uc.Credential())
	})

	t.Run("StoreFailure", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.store.EXPECT().Get(mock.Anything, CredentialKey).Return("", errors.NewDatabaseError("down", nil))

		err := uc.Load(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsDatabaseError(err))
	})
}

func TestUseCase_ApplyDeviceMessage(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.store.EXPECT().Get(mock.Anything, CredentialKey).Return("key-from-store", nil)
	m.logLevel.EXPECT().SetDebug(true).Once()
	m.trigger.EXPECT().TriggerUpdate().Once()

	err := uc.ApplyDeviceMessage(context.Background(), map[string]interface{}{
		"service": "open",
		"color":   "duke",
		"scale":   "C",
		"debug":   float64(1),
		"battery": float64(1),
	})

	require.NoError(t, err)
	current := uc.Current()
	assert.Equal(t, ServiceOpen, current.Service)
	assert.Equal(t, ColorDuke, current.Color)
	assert.Equal(t, ScaleCelsius, current.Scale)
	assert.True(t, current.Debug)
	assert.True(t, current.BatteryEnabled)
	assert.False(t, current.BluetoothAlert)
	assert.Equal(t, "key-from-store", uc.Credential())
}

func TestUseCase_ApplyDeviceMessage_DecodeFailure(t *testing.T) {
	uc, _ := newTestUseCase(t)

	err := uc.ApplyDeviceMessage(context.Background(), map[string]interface{}{"service": []interface{}{"open"}})

	require.Error(t, err)
	assert.True(t, errors.IsConfigParseError(err))
	assert.Equal(t, Defaults(), uc.Current())
}

func TestUseCase_ConfigPageURL(t *testing.T) {
	uc, m := newTestUseCase(t)
	m.store.EXPECT().Get(mock.Anything, CredentialKey).Return("a b&c", nil)
	require.NoError(t, uc.Load(context.Background()))

	got := uc.ConfigPageURL()

	assert.Equal(t, testPageURL+"?s=wundr&c=red&d=false&u=F&b=on&t=on&v=off&o=off&a=a%20b%26c", got)

	parsed, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "a b&c", parsed.Query().Get("a"))
}

func TestUseCase_ApplyConfigPageResult_NoOp(t *testing.T) {
	responses := []struct {
		name     string
		response string
	}{
		{name: "Empty", response: ""},
		{name: "Cancelled", response: "CANCELLED"},
		{name: "EmptyObject", response: "%7B%7D"},
		{name: "EmptyObjectPlain", response: "{}"},
	}

	for _, tt := range responses {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t)

			refreshed, err := uc.ApplyConfigPageResult(context.Background(), tt.response)

			require.NoError(t, err)
			assert.False(t, refreshed)
			assert.Equal(t, Defaults(), uc.Current())
			assert.Equal(t, "", uc.Credential())
		})
	}
}

func TestUseCase_ApplyConfigPageResult_Malformed(t *testing.T) {
	uc, _ := newTestUseCase(t)

	refreshed, err := uc.ApplyConfigPageResult(context.Background(), "%7Bnot-json")

	require.Error(t, err)
	assert.True(t, errors.IsConfigParseError(err))
	assert.False(t, refreshed)
	assert.Equal(t, Defaults(), uc.Current())
}

func TestUseCase_ApplyConfigPageResult_Changed(t *testing.T) {
	uc, m := newTestUseCase(t)

	response := url.PathEscape(`{"service":"open","color":"black","scale":"C","debug":"false",` +
		`"bluetooth":"on","battery":"on","timesig":"off","stophourly":"off","wuApiKey":"new-key"}`)

	m.store.EXPECT().Set(mock.Anything, CredentialKey, "new-key").Return(nil).Once()
	m.logLevel.EXPECT().SetDebug(false).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, ports.AppMessage{
		"service":    "open",
		"color":      "black",
		"scale":      "C",
		"debug":      0,
		"bluetooth":  1,
		"battery":    1,
		"timesig":    0,
		"stophourly": 0,
	}).Once()
	m.trigger.EXPECT().TriggerUpdate().Once()

	refreshed, err := uc.ApplyConfigPageResult(context.Background(), response)

	require.NoError(t, err)
	assert.True(t, refreshed)
	assert.Equal(t, ServiceOpen, uc.Current().Service)
	assert.Equal(t, "new-key", uc.Credential())
}

func TestUseCase_ApplyConfigPageResult_UnchangedRefreshFields(t *testing.T) {
	uc, m := newTestUseCase(t)

	response := `{"service":"wundr","color":"red","scale":"F","debug":"false",` +
		`"bluetooth":"off","battery":"on","timesig":"on","stophourly":"on","wuApiKey":null}`

	m.store.EXPECT().Delete(mock.Anything, CredentialKey).Return(nil).Once()
	m.logLevel.EXPECT().SetDebug(false).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, mock.AnythingOfType("ports.AppMessage")).Once()

	refreshed, err := uc.ApplyConfigPageResult(context.Background(), response)

	require.NoError(t, err)
	assert.False(t, refreshed)
	current := uc.Current()
	assert.False(t, current.BluetoothAlert)
	assert.True(t, current.TimeSignature)
	assert.True(t, current.StopHourly)
}

func TestUseCase_ApplyConfigPageResult_PersistFailureStillApplies(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.store.EXPECT().Set(mock.Anything, CredentialKey, "k").Return(errors.NewDatabaseError("down", nil)).Once()
	m.logLevel.EXPECT().SetDebug(true).Once()
	m.dispatcher.EXPECT().Send(mock.Anything, mock.Anything).Once()
	m.trigger.EXPECT().TriggerUpdate().Once()

	refreshed, err := uc.ApplyConfigPageResult(context.Background(), `{"debug":"true","wuApiKey":"k"}`)

	require.NoError(t, err)
	assert.True(t, refreshed)
	assert.Equal(t, "k", uc.Credential())
	assert.True(t, uc.Current().Debug)
}
