package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes recorded by RatesMetrics.
const (
	OutcomeSuccess     = "success"
	OutcomeUnavailable = "unavailable"
	OutcomeNoTable     = "no_table"
	OutcomeCancelled   = "cancelled"
	OutcomeBreakerOpen = "breaker_open"
)

// RatesMetrics holds the metrics of the exchange-rate source client.
type RatesMetrics struct {
	FetchTotal    *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec
	BreakerState  *prometheus.GaugeVec
}

// NewRatesMetrics registers the rate client metrics on reg.
// Passing a fresh prometheus.NewRegistry() keeps tests isolated from the default registry.
func NewRatesMetrics(reg prometheus.Registerer) *RatesMetrics {
	factory := promauto.With(reg)
	return &RatesMetrics{
		FetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_table_fetch_total",
				Help: "Number of rate table fetches by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rate_table_fetch_duration_seconds",
				Help:    "Latency of rate table fetches",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		BreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rate_table_breaker_state",
				Help: "Circuit breaker state of the rate source (0 closed, 1 half-open, 2 open)",
			},
			[]string{"source"},
		),
	}
}

// ObserveFetch records one fetch. It is a no-op on a nil receiver.
func (m *RatesMetrics) ObserveFetch(source, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.FetchTotal.WithLabelValues(source, outcome).Inc()
	m.FetchDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// SetBreakerState records the numeric breaker state. It is a no-op on a nil receiver.
func (m *RatesMetrics) SetBreakerState(source string, state float64) {
	if m == nil {
		return
	}
	m.BreakerState.WithLabelValues(source).Set(state)
}
