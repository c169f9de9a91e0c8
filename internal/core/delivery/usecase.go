package delivery

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// Channel delivers messages to the device, resending on negative acknowledgment
type Channel struct {
	messenger ports.DeviceMessenger
	config    ports.ConfigProvider
	logger    ports.Logger
	metrics   ports.MetricsCollector

	wg        sync.WaitGroup
	done      chan struct{}
	closeOnce sync.Once

	randMu sync.Mutex
	rand   *rand.Rand
}

type ChannelDependencies struct {
	Messenger ports.DeviceMessenger
	Config    ports.ConfigProvider
	Logger    ports.Logger
	Metrics   ports.MetricsCollector
}

func NewChannel(deps ChannelDependencies) (*Channel, error) {
	if deps.Messenger == nil {
		return nil, errors.NewValidationError("device messenger is required")
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

	return &Channel{
		messenger: deps.Messenger,
		config:    deps.Config,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		done:      make(chan struct{}),
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Send hands the message to a background retry driver and returns immediately.
// The delivery outlives ctx cancellation; Close stops pending retries.
func (c *Channel) Send(ctx context.Context, msg ports.AppMessage) {
	attempt := NewAttempt(msg)
	detached := context.WithoutCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.drive(detached, attempt)
	}()
}

// Close stops pending retries. Messages already handed to the messenger are not recalled.
func (c *Channel) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Wait blocks until every in-flight delivery has been acknowledged or abandoned
func (c *Channel) Wait() {
	c.wg.Wait()
}

func (c *Channel) drive(ctx context.Context, attempt *Attempt) {
	cfg := c.config.GetDeliveryConfig()

	for {
		err := c.messenger.Send(ctx, attempt.Message)
		if err == nil {
			c.logger.Debug("Device acknowledged message",
				ports.F("attemptId", attempt.ID),
				ports.F("retries", attempt.Retries))
			c.metrics.RecordDelivery(ResultAck)
			return
		}

		if !attempt.Nack(cfg.MaxRetry) {
			c.logger.Warn("Device rejected message, max retries exceeded",
				ports.F("attemptId", attempt.ID),
				ports.F("retries", attempt.Retries),
				ports.F("error", err))
			c.metrics.RecordDelivery(ResultAbandoned)
			return
		}

		c.logger.Warn("Device rejected message, retrying",
			ports.F("attemptId", attempt.ID),
			ports.F("retries", attempt.Retries),
			ports.F("message", attempt.Message))
		c.metrics.RecordDelivery(ResultRetry)

		timer := time.NewTimer(c.backoff(cfg.RetryWait))
		select {
		case <-c.done:
			timer.Stop()
			c.logger.Warn("Delivery cancelled by shutdown",
				ports.F("attemptId", attempt.ID))
			c.metrics.RecordDelivery(ResultAbandoned)
			return
		case <-timer.C:
		}
	}
}

// backoff returns a random delay in [wait, 2*wait)
func (c *Channel) backoff(wait time.Duration) time.Duration {
	if wait <= 0 {
		return 0
	}
	c.randMu.Lock()
	defer c.randMu.Unlock()
	return wait + time.Duration(c.rand.Int63n(int64(wait)))
}
