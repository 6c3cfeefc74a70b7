// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Upstream call outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics groups the collectors of one process. Each instance owns its registry
// so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	RateCacheLookups *prometheus.CounterVec
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}

// New creates and registers the collectors, including the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bondcat",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bondcat",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RateCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bondcat",
			Name:      "fx_cache_lookups_total",
			Help:      "FX rate cache lookups by result.",
		}, []string{"result"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bondcat",
			Name:      "upstream_requests_total",
			Help:      "Calls to external data sources by source and outcome.",
		}, []string{"source", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bondcat",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of calls to external data sources.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.RateCacheLookups,
		m.UpstreamRequests,
		m.UpstreamDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveCacheLookup counts one cache lookup. Safe on a nil receiver.
func (m *Metrics) ObserveCacheLookup(result string) {
	if m == nil {
		return
	}
	m.RateCacheLookups.WithLabelValues(result).Inc()
}

// ObserveUpstream records one upstream call. Safe on a nil receiver.
func (m *Metrics) ObserveUpstream(source string, err error, seconds float64) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.UpstreamRequests.WithLabelValues(source, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(source).Observe(seconds)
}
