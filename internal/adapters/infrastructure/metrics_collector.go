package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsCollector implements the MetricsCollector port with Prometheus counters
type PrometheusMetricsCollector struct {
	updates    *prometheus.CounterVec
	fetches    *prometheus.CounterVec
	deliveries *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the relay counters with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		updates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wristweather_update_requests_total",
				Help: "Update requests by outcome",
			},
			[]string{"outcome"},
		),
		fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wristweather_provider_fetches_total",
				Help: "Weather provider fetches by provider and result",
			},
			[]string{"provider", "result"},
		),
		deliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wristweather_deliveries_total",
				Help: "Device delivery attempts by result",
			},
			[]string{"result"},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordUpdate(outcome string) {
	m.updates.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordProviderFetch(provider string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.fetches.WithLabelValues(provider, result).Inc()
}

func (m *PrometheusMetricsCollector) RecordDelivery(result string) {
	m.deliveries.WithLabelValues(result).Inc()
}
