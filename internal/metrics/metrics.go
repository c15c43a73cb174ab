// Package metrics holds the Prometheus collectors fed by the HTTP pipeline.
//
// Each Metrics value owns its own registry so that several handlers (and
// tests) can coexist in one process without duplicate registration panics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	latency  prometheus.Summary
	status   *prometheus.CounterVec
	auth     *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		latency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "web_request_duration_seconds",
				Help: "A summary of the http request latency, in seconds",
			},
		),
		status: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "web_request_status_total",
				Help: "The HTTP requests partitioned by status code",
			},
			[]string{"code", "method"},
		),
		auth: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "web_auth_outcome_total",
				Help: "Resolved request identities partitioned by outcome",
			},
			[]string{"outcome"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "web_pipeline_failures_total",
				Help: "Error responses rendered by the pipeline partitioned by kind",
			},
			[]string{"kind"},
		),
	}

	m.registry.MustRegister(m.latency, m.status, m.auth, m.failures)

	return m
}

// ObserveRequest records one finished request. A zero status means nothing
// was written and net/http will send 200.
func (m *Metrics) ObserveRequest(method string, status int, duration time.Duration) {
	if status == 0 {
		status = http.StatusOK
	}
	m.latency.Observe(duration.Seconds())
	m.status.WithLabelValues(strconv.Itoa(status), method).Inc()
}

func (m *Metrics) ObserveAuth(outcome string) {
	m.auth.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveFailure(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
