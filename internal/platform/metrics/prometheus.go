// Package metrics exposes Prometheus metrics for the draft ratings service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the service metrics. A nil *Manager records nothing.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	ingestedRecords   *prometheus.CounterVec
	ingestionRejected *prometheus.CounterVec

	reportsServed *prometheus.CounterVec
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "draft_ratings",
		subsystem:        "api",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})

	m.ingestedRecords = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ingested_records_total",
		Help:      "Total number of records persisted by ingestion kind",
	}, []string{"kind"})

	m.ingestionRejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ingestion_rejected_total",
		Help:      "Total number of rejected ingestion batches by kind and reason",
	}, []string{"kind", "reason"})

	m.reportsServed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_served_total",
		Help:      "Total number of reports rendered by report name",
	}, []string{"report"})
}

func (m *Manager) active() bool {
	return m != nil && m.enabled
}

// RecordHTTPRequest counts one request and observes its latency. route is
// the mux pattern, never the raw path.
func (m *Manager) RecordHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if !m.active() {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Manager) RecordIngested(kind string, count int) {
	if !m.active() || count <= 0 {
		return
	}
	m.ingestedRecords.WithLabelValues(kind).Add(float64(count))
}

func (m *Manager) RecordIngestionRejected(kind, reason string) {
	if !m.active() {
		return
	}
	m.ingestionRejected.WithLabelValues(kind, reason).Inc()
}

func (m *Manager) RecordReport(report string) {
	if !m.active() {
		return
	}
	m.reportsServed.WithLabelValues(report).Inc()
}

// Registry exposes the underlying registry for scraping and tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
