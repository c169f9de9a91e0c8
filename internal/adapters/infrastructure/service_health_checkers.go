package infrastructure

import (
	"context"

	"wristweather.app/internal/ports"
)

// BrokerConnection reports the MQTT connection state
type BrokerConnection interface {
	IsConnected() bool
}

// MQTTHealthChecker reports whether the device broker is reachable
type MQTTHealthChecker struct {
	conn   BrokerConnection
	broker string
}

func NewMQTTHealthChecker(conn BrokerConnection, broker string) *MQTTHealthChecker {
	return &MQTTHealthChecker{conn: conn, broker: broker}
}

func (m *MQTTHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "mqtt",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"broker":    m.broker,
			"connected": true,
		},
	}

	if m.conn == nil || !m.conn.IsConnected() {
		status.Status = statusUnhealthy
		status.Error = "not connected to broker"
		status.Details["connected"] = false
	}
	return status
}

// StoreHealthChecker pings the settings store
type StoreHealthChecker struct {
	store     ports.StoreBackend
	storeType string
}

func NewStoreHealthChecker(store ports.StoreBackend, storeType string) *StoreHealthChecker {
	return &StoreHealthChecker{store: store, storeType: storeType}
}

func (s *StoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "store",
		Status:    statusHealthy,
		Details:   map[string]interface{}{"type": s.storeType},
	}

	if s.store == nil {
		status.Status = statusUnhealthy
		status.Error = "store is not configured"
		return status
	}
	if err := s.store.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
	}
	return status
}

// BreakerReporter exposes per-host circuit breaker states
type BreakerReporter interface {
	BreakerStates() map[string]string
}

// WeatherAPIHealthChecker reports provider hosts whose circuit breaker is open.
// No request is made to the providers.
type WeatherAPIHealthChecker struct {
	breakers  BreakerReporter
	providers ports.ProviderRegistry
}

func NewWeatherAPIHealthChecker(breakers BreakerReporter, providers ports.ProviderRegistry) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{breakers: breakers, providers: providers}
}

func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details:   map[string]interface{}{},
	}

	if w.providers == nil {
		status.Status = statusUnhealthy
		status.Error = "weather providers are not available"
		return status
	}
	status.Details["providers"] = w.providers.GetProviderInfo()["services"]

	if w.breakers == nil {
		return status
	}

	states := w.breakers.BreakerStates()
	var open []string
	for host, state := range states {
		if state == "open" {
			open = append(open, host)
		}
	}
	status.Details["breakers"] = states
	if len(open) > 0 {
		status.Status = statusUnhealthy
		status.Error = "circuit breaker open"
		status.Details["open_hosts"] = open
	}
	return status
}
