// Package metrics collects Prometheus metrics for HTTP traffic, rejected
// authentication attempts and content suggestions, and exposes them for
// scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the Prometheus-backed implementation used by middleware and
// services. A nil *Collector is valid and records nothing.
type Collector struct {
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	authFailures *prometheus.CounterVec
	suggestions  *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moodwell_http_requests_total",
			Help: "HTTP requests by method, route template and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "moodwell_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route template.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moodwell_auth_failures_total",
			Help: "Rejected logins and bearer tokens by reason.",
		}, []string{"reason"}),
		suggestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moodwell_content_suggestions_total",
			Help: "Content suggestions served by kind and whether an item was found.",
		}, []string{"kind", "found"}),
	}

	reg.MustRegister(c.requests, c.latency, c.authFailures, c.suggestions)
	return c
}

// RecordRequest records one completed HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordAuthFailure records a rejected credential. reason is the AppError type
// (invalid_credentials, invalid_token, token_expired, identity_not_found).
func (c *Collector) RecordAuthFailure(reason string) {
	if c == nil {
		return
	}
	c.authFailures.WithLabelValues(reason).Inc()
}

// RecordSuggestion records a content suggestion lookup.
func (c *Collector) RecordSuggestion(kind string, found bool) {
	if c == nil {
		return
	}
	c.suggestions.WithLabelValues(kind, strconv.FormatBool(found)).Inc()
}

// Handler returns the HTTP handler serving the scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
