package device

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// LocationReport is the payload the device publishes on its location topic
type LocationReport struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	// Timestamp in unix milliseconds, optional
	Timestamp int64 `json:"timestamp"`
}

// Coordinates converts the report into a position fix
func (r LocationReport) Coordinates() ports.Coordinates {
	coords := ports.Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude}
	if r.Timestamp > 0 {
		coords.Timestamp = time.UnixMilli(r.Timestamp)
	}
	return coords
}

// Listener routes inbound device messages to the settings bridge and the locator
type Listener struct {
	transport Transport
	topics    Topics
	settings  ports.SettingsApplier
	reporter  ports.LocationReporter
	validate  *validator.Validate
	logger    ports.Logger
}

// ListenerParams holds parameters for creating the listener
type ListenerParams struct {
	Transport Transport
	Topics    Topics
	Settings  ports.SettingsApplier
	Reporter  ports.LocationReporter
	Logger    ports.Logger
}

func NewListener(params ListenerParams) *Listener {
	return &Listener{
		transport: params.Transport,
		topics:    params.Topics,
		settings:  params.Settings,
		reporter:  params.Reporter,
		validate:  validator.New(),
		logger:    params.Logger,
	}
}

// Subscribe registers handlers for the appmessage and location topics
func (l *Listener) Subscribe() error {
	if err := l.transport.Subscribe(l.topics.AppMessage, l.HandleAppMessage); err != nil {
		return err
	}
	return l.transport.Subscribe(l.topics.Location, l.HandleLocation)
}

// HandleAppMessage applies a settings message sent by the device
func (l *Listener) HandleAppMessage(payload []byte) {
	var raw map[string]interface{}
	if err := json.Unmarshal(payload, &raw); err != nil {
		l.logger.Warn("Discarding malformed app message", ports.F("error", err))
		return
	}

	if err := l.settings.ApplyDeviceMessage(context.Background(), raw); err != nil {
		l.logger.Warn("Failed to apply device message", ports.F("error", err))
	}
}

// HandleLocation records a position fix sent by the device
func (l *Listener) HandleLocation(payload []byte) {
	report, err := l.ParseLocation(payload)
	if err != nil {
		l.logger.Warn("Discarding location report", ports.F("error", err))
		return
	}
	l.reporter.Report(report.Coordinates())
}

// ParseLocation decodes and validates a location payload
func (l *Listener) ParseLocation(payload []byte) (*LocationReport, error) {
	var report LocationReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, errors.NewValidationError("location payload is not valid JSON")
	}
	if err := l.validate.Struct(report); err != nil {
		return nil, errors.NewValidationError("invalid location: " + err.Error())
	}
	return &report, nil
}
