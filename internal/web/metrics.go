package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "homecalc"

// Metrics holds the server's Prometheus collectors on a private registry.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Projections     *prometheus.CounterVec
	ExportFailures  prometheus.Counter
	ProjectionYears prometheus.Histogram
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers every collector, plus the Go and process collectors,
// on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Projections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "projections_total",
			Help:      "Projections computed, by route.",
		}, []string{"route"}),
		ExportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "export_failures_total",
			Help:      "CSV exports abandoned because a parameter was malformed.",
		}),
		ProjectionYears: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "projection_years",
			Help:      "Number of yearly rows per projection.",
			Buckets:   []float64{0, 5, 10, 15, 20, 25, 30, 40, 50},
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: metricsNamespace}),
		m.Projections,
		m.ExportFailures,
		m.ProjectionYears,
		m.RequestDuration,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeProjection(route string, years int) {
	if m == nil {
		return
	}
	m.Projections.WithLabelValues(route).Inc()
	m.ProjectionYears.Observe(float64(years))
}

func (m *Metrics) exportFailed() {
	if m == nil {
		return
	}
	m.ExportFailures.Inc()
}

func (m *Metrics) observeRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}
