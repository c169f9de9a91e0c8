package ports

import (
	"context"
	"time"
)

// AppMessage is a key/value message exchanged with the device application
type AppMessage map[string]interface{}

// DeviceMessenger sends one message to the device. A nil error is a positive
// acknowledgment, any error is a negative one.
type DeviceMessenger interface {
	Send(ctx context.Context, msg AppMessage) error
}

// MessageDispatcher hands a message to the delivery channel without waiting for the outcome
type MessageDispatcher interface {
	Send(ctx context.Context, msg AppMessage)
}

// LocateOptions bounds a position request
type LocateOptions struct {
	Timeout    time.Duration
	MaximumAge time.Duration
}

// Locator resolves the current device position
type Locator interface {
	CurrentPosition(ctx context.Context, opts LocateOptions) (Coordinates, error)
}

// DebugSink receives copies of outbound payloads for remote inspection. Failures are swallowed.
type DebugSink interface {
	Post(ctx context.Context, payload AppMessage)
}

// UpdateTrigger starts a weather update without blocking the caller
type UpdateTrigger interface {
	TriggerUpdate()
}

// SettingsApplier consumes settings messages sent by the device
type SettingsApplier interface {
	ApplyDeviceMessage(ctx context.Context, raw map[string]interface{}) error
}

// LocationReporter accepts position fixes reported by the device
type LocationReporter interface {
	Report(coords Coordinates)
}
