package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded by ObserveGenerate.
const (
	OutcomeReply         = "reply"
	OutcomeFallback      = "fallback"
	OutcomeInvalid       = "invalid"
	OutcomeUpstreamError = "upstream_error"
)

// Metrics holds the gateway's Prometheus collectors on a private registry.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Generation metrics
	GenerateTotal    *prometheus.CounterVec
	UpstreamDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates a metrics collector with Go and process collectors attached.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gemino_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gemino_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		GenerateTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gemino_generate_total",
				Help: "Generate calls by outcome",
			},
			[]string{"outcome"},
		),
		UpstreamDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gemino_upstream_duration_seconds",
				Help:    "Latency of calls to the Gemini provider",
				Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
			},
		),
		registry: reg,
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveGenerate records the outcome of one generate call.
func (m *Metrics) ObserveGenerate(outcome string) {
	m.GenerateTotal.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records provider call latency.
func (m *Metrics) ObserveUpstream(d time.Duration) {
	m.UpstreamDuration.Observe(d.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
