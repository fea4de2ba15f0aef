package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chatbot"

// Metrics records pipeline outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	triage        *prometheus.CounterVec
	classifier    *prometheus.HistogramVec
	crisisAlerts  prometheus.Counter
	sideEffectErr *prometheus.CounterVec
}

// New creates the pipeline metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		triage: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triage_outcomes_total",
			Help:      "Chat messages by terminal source and concern level.",
		}, []string{"source", "concern_level", "language"}),
		classifier: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classifier_request_duration_seconds",
			Help:      "Latency of intent classifier calls by outcome.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
		crisisAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crisis_alerts_total",
			Help:      "Crisis alerts raised for human follow-up.",
		}),
		sideEffectErr: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "side_effect_failures_total",
			Help:      "Best-effort bookkeeping steps that failed.",
		}, []string{"step"}),
	}
	reg.MustRegister(m.triage, m.classifier, m.crisisAlerts, m.sideEffectErr)
	return m
}

// ObserveTriage counts one answered message.
func (m *Metrics) ObserveTriage(source, concernLevel, language string) {
	if m == nil {
		return
	}
	m.triage.WithLabelValues(source, concernLevel, language).Inc()
}

// ObserveClassifier records one classifier call.
func (m *Metrics) ObserveClassifier(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.classifier.WithLabelValues(outcome).Observe(d.Seconds())
}

// CrisisAlertRaised counts one stored crisis alert.
func (m *Metrics) CrisisAlertRaised() {
	if m == nil {
		return
	}
	m.crisisAlerts.Inc()
}

// SideEffectFailed counts one failed bookkeeping step.
func (m *Metrics) SideEffectFailed(step string) {
	if m == nil {
		return
	}
	m.sideEffectErr.WithLabelValues(step).Inc()
}
