// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Subsystems prefix every collector name, e.g. api_requests_total.
const (
	subsystemAPI       = "api"
	subsystemDB        = "db"
	subsystemBreaker   = "circuit_breaker"
	subsystemRateLimit = "ratelimit"
)

// latencyBuckets covers a cached aggregate (~10ms) up to the 30s timeout.
var latencyBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// HTTP surface.
var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystemAPI,
		Name:      "requests_total",
		Help:      "Stats API requests by method, route pattern and status.",
	}, []string{"method", "endpoint", "status_code"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Subsystem: subsystemAPI,
		Name:      "request_duration_seconds",
		Help:      "Stats API request latency.",
		Buckets:   latencyBuckets,
	}, []string{"method", "endpoint"})

	APIActiveRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: subsystemAPI,
		Name:      "active_requests",
		Help:      "Requests currently being served.",
	})

	APIRateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystemAPI,
		Name:      "rate_limit_hits_total",
		Help:      "Requests rejected with 429.",
	}, []string{"endpoint"})

	// reason is missing_header, not_configured or invalid_credentials.
	APIAuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystemAPI,
		Name:      "auth_failures_total",
		Help:      "Requests rejected by admin authentication.",
	}, []string{"reason"})

	APIValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystemAPI,
		Name:      "validation_failures_total",
		Help:      "Requests rejected for malformed query parameters.",
	}, []string{"endpoint"})
)

// Postgres.
var (
	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Subsystem: subsystemDB,
		Name:      "query_duration_seconds",
		Help:      "Aggregate query latency by query name.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"query"})

	// error_type is config, timeout, canceled, circuit_open or query.
	DBQueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystemDB,
		Name:      "query_errors_total",
		Help:      "Failed aggregate queries by query name and failure class.",
	}, []string{"query", "error_type"})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: subsystemDB,
		Name:      "pool_acquired_connections",
		Help:      "Pool connections checked out right now.",
	})

	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: subsystemDB,
		Name:      "pool_total_connections",
		Help:      "Connections open in the pool.",
	})
)

// Circuit breaker guarding the pool.
var (
	// 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Subsystem: subsystemBreaker,
		Name:      "state",
		Help:      "Current breaker state (0=closed, 1=half-open, 2=open).",
	}, []string{"name"})

	CircuitBreakerTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystemBreaker,
		Name:      "state_transitions_total",
		Help:      "Breaker state changes.",
	}, []string{"name", "from_state", "to_state"})
)

// Rate limiting.
var (
	RateLimitStoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystemRateLimit,
		Name:      "store_errors_total",
		Help:      "Rate-limit store failures. The request was let through.",
	}, []string{"store"})

	RateLimitEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: subsystemRateLimit,
		Name:      "memory_entries",
		Help:      "Live windows held by the in-memory limiter.",
	})
)

// AppInfo is always 1; the labels carry the build.
var AppInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "app_info",
	Help: "Build version of the running server.",
}, []string{"version", "go_version"})

// RecordDBQuery observes one query. A non-empty errorType also counts it as
// failed.
func RecordDBQuery(query string, d time.Duration, errorType string) {
	DBQueryDuration.WithLabelValues(query).Observe(d.Seconds())
	if errorType != "" {
		DBQueryErrors.WithLabelValues(query, errorType).Inc()
	}
}

// RecordPoolStats publishes pool occupancy.
func RecordPoolStats(acquired, total int32) {
	DBPoolAcquiredConns.Set(float64(acquired))
	DBPoolTotalConns.Set(float64(total))
}

// RecordAPIRequest counts a finished request and observes its latency.
func RecordAPIRequest(method, endpoint, statusCode string, d time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

// TrackActiveRequest moves the in-flight gauge up (inc) or down.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
		return
	}
	APIActiveRequests.Dec()
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
