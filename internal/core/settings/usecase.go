package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
	"wristweather.app/pkg/uri"
)

// CredentialKey is the store key holding the weather API credential
const CredentialKey = "wuApiKey"

const cancelledResponse = "CANCELLED"

type UseCase struct {
	mu         sync.RWMutex
	current    Settings
	credential string

	trigger ports.UpdateTrigger

	store      ports.KeyValueStore
	dispatcher ports.MessageDispatcher
	logLevel   ports.LogLevelController
	config     ports.ConfigProvider
	logger     ports.Logger
}

type UseCaseDependencies struct {
	Store      ports.KeyValueStore
	Dispatcher ports.MessageDispatcher
	LogLevel   ports.LogLevelController
	Config     ports.ConfigProvider
	Logger     ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("settings store is required")
	}
	if deps.Dispatcher == nil {
		return nil, errors.NewValidationError("message dispatcher is required")
	}
	if deps.LogLevel == nil {
		return nil, errors.NewValidationError("log level controller is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		current:    Defaults(),
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		logLevel:   deps.LogLevel,
		config:     deps.Config,
		logger:     deps.Logger,
	}, nil
}

// BindUpdateTrigger sets the trigger fired when settings require a weather refresh.
// The update use case depends on settings, so the trigger is bound after construction.
func (uc *UseCase) BindUpdateTrigger(trigger ports.UpdateTrigger) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.trigger = trigger
}

// Current returns a copy of the active settings
func (uc *UseCase) Current() Settings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

// Credential returns the weather API credential, empty when none is configured
func (uc *UseCase) Credential() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.credential
}

// Load reads the persisted credential into memory
func (uc *UseCase) Load(ctx context.Context) error {
	credential, err := uc.readCredential(ctx)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}

	uc.mu.Lock()
	uc.credential = credential
	uc.mu.Unlock()

	uc.logger.Info("Settings loaded", ports.F("hasCredential", credential != ""))
	return nil
}

// ApplyDeviceMessage replaces the settings with the ones reported by the device and starts an update
func (uc *UseCase) ApplyDeviceMessage(ctx context.Context, raw map[string]interface{}) error {
	next, err := DecodeSettings(raw)
	if err != nil {
		uc.logger.Warn("Could not decode settings sent from device", ports.F("error", err))
		return err
	}

	credential, err := uc.readCredential(ctx)
	if err != nil {
		uc.logger.Warn("Failed to reload credential, keeping previous one", ports.F("error", err))
		credential = uc.Credential()
	}

	uc.mu.Lock()
	uc.current = next
	uc.credential = credential
	trigger := uc.trigger
	uc.mu.Unlock()

	uc.logLevel.SetDebug(next.Debug)
	uc.logger.Debug("Device settings applied",
		ports.F("service", next.Service),
		ports.F("scale", next.Scale))

	uc.fire(trigger)
	return nil
}

// ConfigPageURL builds the configuration page address carrying the current settings
func (uc *UseCase) ConfigPageURL() string {
	uc.mu.RLock()
	s := uc.current
	credential := uc.credential
	uc.mu.RUnlock()

	params := []struct {
		key   string
		value string
	}{
		{"s", string(s.Service)},
		{"c", string(s.Color)},
		{"d", fmt.Sprintf("%t", s.Debug)},
		{"u", string(s.Scale)},
		{"b", onOff(s.BatteryEnabled)},
		{"t", onOff(s.BluetoothAlert)},
		{"v", onOff(s.TimeSignature)},
		{"o", onOff(s.StopHourly)},
		{"a", credential},
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, uri.EncodeComponent(p.key)+"="+uri.EncodeComponent(p.value))
	}

	return uc.config.GetConfigPageConfig().URL + "?" + strings.Join(parts, "&")
}

// ApplyConfigPageResult handles the response of a closed configuration page.
// It reports whether a weather refresh was triggered.
func (uc *UseCase) ApplyConfigPageResult(ctx context.Context, response string) (bool, error) {
	if response == "" || response == cancelledResponse {
		uc.logger.Debug("Configuration page closed without changes")
		return false, nil
	}

	decoded, err := url.PathUnescape(response)
	if err != nil {
		uc.logger.Warn("Unable to parse response from configuration", ports.F("error", err))
		return false, errors.NewConfigParseError("decode configuration response", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(decoded), &raw); err != nil {
		uc.logger.Warn("Unable to parse response from configuration", ports.F("error", err))
		return false, errors.NewConfigParseError("parse configuration response", err)
	}

	if len(raw) == 0 {
		uc.logger.Debug("Configuration page cancelled")
		return false, nil
	}

	next, err := DecodeSettings(raw)
	if err != nil {
		uc.logger.Warn("Unable to parse response from configuration", ports.F("error", err))
		return false, err
	}

	credential, err := stringField(raw, CredentialKey)
	if err != nil {
		uc.logger.Warn("Unable to parse response from configuration", ports.F("error", err))
		return false, err
	}

	uc.mu.Lock()
	refreshNeeded := next.Service != uc.current.Service ||
		next.Color != uc.current.Color ||
		next.Scale != uc.current.Scale ||
		credential != uc.credential
	uc.current = next
	uc.credential = credential
	trigger := uc.trigger
	uc.mu.Unlock()

	uc.persistCredential(ctx, credential)
	uc.logLevel.SetDebug(next.Debug)

	uc.logger.Debug("Settings received from configuration page",
		ports.F("service", next.Service),
		ports.F("refreshNeeded", refreshNeeded))

	uc.dispatcher.Send(ctx, next.EchoMessage())

	if refreshNeeded {
		uc.fire(trigger)
	}
	return refreshNeeded, nil
}

func (uc *UseCase) readCredential(ctx context.Context) (string, error) {
	credential, err := uc.store.Get(ctx, CredentialKey)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return uc.config.GetCredentialConfig().DefaultAPIKey, nil
		}
		return "", err
	}
	return credential, nil
}

func (uc *UseCase) persistCredential(ctx context.Context, credential string) {
	var err error
	if credential != "" {
		err = uc.store.Set(ctx, CredentialKey, credential)
	} else {
		err = uc.store.Delete(ctx, CredentialKey)
	}
	if err != nil {
		uc.logger.Error("Failed to persist credential", ports.F("error", err))
	}
}

func (uc *UseCase) fire(trigger ports.UpdateTrigger) {
	if trigger == nil {
		uc.logger.Warn("No update trigger bound, skipping weather refresh")
		return
	}
	trigger.TriggerUpdate()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
