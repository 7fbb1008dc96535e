// Package observability exposes Prometheus instrumentation for the quoting
// pipeline. All methods are nil-safe so components can run unmetered in
// tests.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the pipeline's counters and gauges.
type Metrics struct {
	quotesDecided     *prometheus.CounterVec
	riskFallbacks     prometheus.Counter
	riskCallsInFlight prometheus.Gauge
	policiesIssued    prometheus.Counter
}

// New creates and registers the metric set.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		quotesDecided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotes",
			Name:      "decided_total",
			Help:      "Quotes that reached a terminal pipeline decision, by path and status.",
		}, []string{"path", "status"}),
		riskFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quotes",
			Name:      "risk_fallbacks_total",
			Help:      "Risk assessments served by the fallback instead of the external model.",
		}),
		riskCallsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quotes",
			Name:      "risk_calls_in_flight",
			Help:      "External risk model calls currently in flight.",
		}),
		policiesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quotes",
			Name:      "policies_issued_total",
			Help:      "Policies issued from approved quotes.",
		}),
	}

	reg.MustRegister(m.quotesDecided, m.riskFallbacks, m.riskCallsInFlight, m.policiesIssued)
	return m
}

// QuoteDecided records a terminal decision for the given path (sync/async).
func (m *Metrics) QuoteDecided(path, status string) {
	if m == nil {
		return
	}
	m.quotesDecided.WithLabelValues(path, status).Inc()
}

// RiskFallback records a degraded risk assessment.
func (m *Metrics) RiskFallback() {
	if m == nil {
		return
	}
	m.riskFallbacks.Inc()
}

// RiskCallStarted marks an external model call entering flight.
func (m *Metrics) RiskCallStarted() {
	if m == nil {
		return
	}
	m.riskCallsInFlight.Inc()
}

// RiskCallFinished marks an external model call leaving flight.
func (m *Metrics) RiskCallFinished() {
	if m == nil {
		return
	}
	m.riskCallsInFlight.Dec()
}

// PolicyIssued records a bound policy.
func (m *Metrics) PolicyIssued() {
	if m == nil {
		return
	}
	m.policiesIssued.Inc()
}
