package device

import (
	"context"
	"encoding/json"

	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// Messenger publishes app messages to the device display topic. A broker
// acknowledgment counts as ack, anything else as nack.
type Messenger struct {
	transport Transport
	topic     string
	logger    ports.Logger
}

func NewMessenger(transport Transport, topics Topics, logger ports.Logger) *Messenger {
	return &Messenger{
		transport: transport,
		topic:     topics.Display,
		logger:    logger,
	}
}

// Send implements ports.DeviceMessenger
func (m *Messenger) Send(ctx context.Context, msg ports.AppMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.NewDeliveryError("delivery cancelled", err)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.NewDeliveryError("failed to encode app message", err)
	}

	if err := m.transport.Publish(m.topic, payload); err != nil {
		m.logger.Debug("Device publish not acknowledged", ports.F("topic", m.topic), ports.F("error", err))
		return errors.NewDeliveryError("device did not acknowledge message", err)
	}
	return nil
}
