package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors exported on /metrics. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	recalculations prometheus.Counter
	aiRequests     *prometheus.CounterVec
	aiLatency      *prometheus.HistogramVec
	saves          *prometheus.CounterVec
	sessions       prometheus.Gauge
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		recalculations: factory.NewCounter(prometheus.CounterOpts{
			Name: "printcost_recalculations_total",
			Help: "Number of cost recalculations triggered by input changes.",
		}),
		aiRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "printcost_ai_requests_total",
			Help: "Number of AI provider calls by flow and outcome.",
		}, []string{"flow", "outcome"}),
		aiLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "printcost_ai_request_duration_seconds",
			Help:    "Latency of AI provider calls.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		}, []string{"flow"}),
		saves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "printcost_saves_total",
			Help: "Number of estimate saves by outcome.",
		}, []string{"outcome"}),
		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "printcost_sessions",
			Help: "Number of live estimate sessions.",
		}),
	}
}

// ObserveRecalculation counts one recalculation of the breakdown.
func (m *Metrics) ObserveRecalculation() {
	if m == nil {
		return
	}
	m.recalculations.Inc()
}

// ObserveAIRequest records the outcome and latency of one provider call.
func (m *Metrics) ObserveAIRequest(flow, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.aiRequests.WithLabelValues(flow, outcome).Inc()
	m.aiLatency.WithLabelValues(flow).Observe(elapsed.Seconds())
}

// ObserveSave counts one save attempt by outcome.
func (m *Metrics) ObserveSave(outcome string) {
	if m == nil {
		return
	}
	m.saves.WithLabelValues(outcome).Inc()
}

// SetSessions reports the number of live sessions.
func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.sessions.Set(float64(n))
}
