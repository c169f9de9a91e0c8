package device

import (
	"context"
	"sync"
	"time"

	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

const defaultLocateTimeout = 15 * time.Second

// Locator resolves the device position from fixes the device reports over MQTT.
// A fresh fix is requested by publishing to the locate topic.
type Locator struct {
	transport Transport
	topic     string
	static    *ports.Coordinates
	logger    ports.Logger
	now       func() time.Time

	mu      sync.Mutex
	last    *ports.Coordinates
	waiters []chan ports.Coordinates
}

// LocatorParams holds parameters for creating the locator
type LocatorParams struct {
	Transport Transport
	Topics    Topics
	// Static is used when the device does not answer in time. Nil disables the fallback.
	Static *ports.Coordinates
	Logger ports.Logger
}

func NewLocator(params LocatorParams) *Locator {
	return &Locator{
		transport: params.Transport,
		topic:     params.Topics.Locate,
		static:    params.Static,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// CurrentPosition implements ports.Locator
func (l *Locator) CurrentPosition(ctx context.Context, opts ports.LocateOptions) (ports.Coordinates, error) {
	if fix, ok := l.cached(opts.MaximumAge); ok {
		return fix, nil
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultLocateTimeout
	}

	waiter := make(chan ports.Coordinates, 1)
	l.addWaiter(waiter)
	defer l.removeWaiter(waiter)

	if err := l.transport.Publish(l.topic, []byte("{}")); err != nil {
		l.logger.Warn("Failed to request device location", ports.F("topic", l.topic), ports.F("error", err))
		return l.fallback(errors.NewGeolocationError("failed to request device location", err))
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case fix := <-waiter:
		return fix, nil
	case <-timer.C:
		return l.fallback(errors.NewGeolocationError("timed out waiting for device location", nil))
	case <-ctx.Done():
		return ports.Coordinates{}, errors.NewGeolocationError("location request cancelled", ctx.Err())
	}
}

// Report implements ports.LocationReporter
func (l *Locator) Report(coords ports.Coordinates) {
	if coords.Timestamp.IsZero() {
		coords.Timestamp = l.now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fix := coords
	l.last = &fix
	for _, waiter := range l.waiters {
		select {
		case waiter <- coords:
		default:
		}
	}
}

func (l *Locator) cached(maxAge time.Duration) (ports.Coordinates, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.last == nil || maxAge <= 0 {
		return ports.Coordinates{}, false
	}
	if l.now().Sub(l.last.Timestamp) > maxAge {
		return ports.Coordinates{}, false
	}
	return *l.last, true
}

func (l *Locator) fallback(cause error) (ports.Coordinates, error) {
	if l.static == nil {
		return ports.Coordinates{}, cause
	}

	l.logger.Info("Using static device location",
		ports.F("latitude", l.static.Latitude),
		ports.F("longitude", l.static.Longitude),
		ports.F("reason", cause.Error()))

	fix := *l.static
	fix.Timestamp = l.now()
	return fix, nil
}

func (l *Locator) addWaiter(waiter chan ports.Coordinates) {
	l.mu.Lock()
	l.waiters = append(l.waiters, waiter)
	l.mu.Unlock()
}

func (l *Locator) removeWaiter(waiter chan ports.Coordinates) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, w := range l.waiters {
		if w == waiter {
			l.waiters = append(l.waiters[:i], l.waiters[i+1:]...)
			return
		}
	}
}
