package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. Methods are safe
// on a nil receiver so tests can run the engine without a registry.
type Metrics struct {
	DonorsRegistered     prometheus.Counter
	MatchesCompleted     *prometheus.CounterVec
	MatchFailures        *prometheus.CounterVec
	EmergenciesSubmitted prometheus.Counter
	QueueDepth           prometheus.Gauge
	MatchDuration        prometheus.Histogram
	HTTPDuration         *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		DonorsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_donors_registered_total",
			Help: "Total number of donors registered",
		}),
		MatchesCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodlink_matches_completed_total",
			Help: "Total number of completed matches by kind",
		}, []string{"kind"}),
		MatchFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodlink_match_failures_total",
			Help: "Total number of failed match attempts by reason",
		}, []string{"reason"}),
		EmergenciesSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_emergencies_submitted_total",
			Help: "Total number of emergency tickets submitted",
		}),
		QueueDepth: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bloodlink_emergency_queue_depth",
			Help: "Current number of tickets waiting in the emergency queue",
		}),
		MatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bloodlink_match_duration_seconds",
			Help:    "Duration of donor match operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bloodlink_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by path",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"path"}),
	}
}

// IncDonorsRegistered records a successful donor registration.
func (m *Metrics) IncDonorsRegistered() {
	if m == nil {
		return
	}
	m.DonorsRegistered.Inc()
}

// IncMatchCompleted records a completed match of the given kind.
func (m *Metrics) IncMatchCompleted(kind string) {
	if m == nil {
		return
	}
	m.MatchesCompleted.WithLabelValues(kind).Inc()
}

// IncMatchFailure records a failed match attempt by domain error code.
func (m *Metrics) IncMatchFailure(reason string) {
	if m == nil {
		return
	}
	m.MatchFailures.WithLabelValues(reason).Inc()
}

// IncEmergenciesSubmitted records an accepted emergency ticket.
func (m *Metrics) IncEmergenciesSubmitted() {
	if m == nil {
		return
	}
	m.EmergenciesSubmitted.Inc()
}

// SetQueueDepth tracks the emergency queue length.
func (m *Metrics) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(n))
}

// ObserveMatch records the duration of a match operation. Call with
// time.Now() captured at the start of the operation.
func (m *Metrics) ObserveMatch(start time.Time) {
	if m == nil {
		return
	}
	m.MatchDuration.Observe(time.Since(start).Seconds())
}

// ObserveHTTP records the duration of an HTTP request.
func (m *Metrics) ObserveHTTP(path string, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
}
