// Package metrics holds the Prometheus collectors for the service.
// All methods are safe to call on a nil *Metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "passcheck"

type Metrics struct {
	registry *prometheus.Registry

	checks    *prometheus.CounterVec
	generated prometheus.Counter
	rejected  prometheus.Counter
	audit     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Password checks by resulting label.",
		}, []string{"label"}),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "Passwords generated.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generate_rejected_total",
			Help:      "Generation requests rejected for an invalid length.",
		}),
		audit: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_records_total",
			Help:      "Audit records by outcome (written, dropped, failed).",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.checks,
		m.generated,
		m.rejected,
		m.audit,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Check(label string) {
	if m != nil {
		m.checks.WithLabelValues(label).Inc()
	}
}

func (m *Metrics) Generated() {
	if m != nil {
		m.generated.Inc()
	}
}

func (m *Metrics) Rejected() {
	if m != nil {
		m.rejected.Inc()
	}
}

func (m *Metrics) AuditWritten() { m.auditOutcome("written") }
func (m *Metrics) AuditDropped() { m.auditOutcome("dropped") }
func (m *Metrics) AuditFailed()  { m.auditOutcome("failed") }

func (m *Metrics) auditOutcome(outcome string) {
	if m != nil {
		m.audit.WithLabelValues(outcome).Inc()
	}
}
