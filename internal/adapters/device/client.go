package device

import (
	"context"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"wristweather.app/internal/config"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// Client wraps a paho MQTT client. Publishes use QoS 1 so a completed token
// means the broker acknowledged the message.
type Client struct {
	client         mqtt.Client
	broker         string
	publishTimeout time.Duration
	logger         ports.Logger

	mu        sync.RWMutex
	connected bool
	onConnect []func()

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewClient creates an MQTT client for the configured broker. It does not connect.
func NewClient(cfg config.DeviceConfig, logger ports.Logger) *Client {
	publishTimeout := time.Duration(cfg.PublishTimeoutSeconds) * time.Second
	if publishTimeout <= 0 {
		publishTimeout = 5 * time.Second
	}

	c := &Client{
		broker:         cfg.BrokerURL(),
		publishTimeout: publishTimeout,
		logger:         logger,
		stopCh:         make(chan struct{}),
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(c.broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetMaxReconnectInterval(60 * time.Second)
	opts.SetKeepAlive(30 * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		c.setConnected(true)
		logger.Info("MQTT connected", ports.F("broker", c.broker))
		c.runOnConnect()
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		c.setConnected(false)
		logger.Warn("MQTT connection lost", ports.F("broker", c.broker), ports.F("error", err))
	})

	c.client = mqtt.NewClient(opts)
	return c
}

// OnConnect registers fn to run after every (re)connect. Subscriptions belong here
// because the session is clean.
func (c *Client) OnConnect(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onConnect = append(c.onConnect, fn)
}

// Connect waits for the initial connection, honoring ctx and Disconnect
func (c *Client) Connect(ctx context.Context) error {
	select {
	case <-c.stopCh:
		return errors.NewConfigurationError("mqtt client stopped", nil)
	default:
	}

	if c.IsConnected() {
		return nil
	}

	token := c.client.Connect()

	const poll = 200 * time.Millisecond
	for {
		if token.WaitTimeout(poll) {
			if err := token.Error(); err != nil {
				return errors.NewExternalAPIError(fmt.Sprintf("mqtt connect to %s failed", c.broker), err)
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.stopCh:
			return errors.NewConfigurationError("mqtt client stopped", nil)
		default:
		}
	}
}

// Publish sends payload with QoS 1 and waits for the broker acknowledgment
func (c *Client) Publish(topic string, payload []byte) error {
	if !c.IsConnected() {
		return fmt.Errorf("mqtt client not connected")
	}

	token := c.client.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(c.publishTimeout) {
		return fmt.Errorf("publish timeout for topic %s", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	c.logger.Debug("MQTT message published", ports.F("topic", topic), ports.F("bytes", len(payload)))
	return nil
}

// Subscribe registers handler for topic with QoS 1
func (c *Client) Subscribe(topic string, handler func(payload []byte)) error {
	token := c.client.Subscribe(topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Payload())
	})
	if !token.WaitTimeout(c.publishTimeout) {
		return fmt.Errorf("subscribe timeout for topic %s", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe to %s: %w", topic, err)
	}

	c.logger.Info("MQTT subscribed", ports.F("topic", topic))
	return nil
}

// IsConnected reports whether the broker connection is up
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	connected := c.connected
	c.mu.RUnlock()
	return connected && c.client.IsConnected()
}

// Disconnect stops the client. Safe to call more than once.
func (c *Client) Disconnect() {
	c.stopOnce.Do(func() { close(c.stopCh) })

	if c.client.IsConnectionOpen() {
		c.client.Disconnect(250)
	}
	c.setConnected(false)
	c.logger.Info("MQTT disconnected", ports.F("broker", c.broker))
}

func (c *Client) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

func (c *Client) runOnConnect() {
	c.mu.RLock()
	callbacks := append([]func(){}, c.onConnect...)
	c.mu.RUnlock()

	for _, fn := range callbacks {
		fn()
	}
}
