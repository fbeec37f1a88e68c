// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

// Package metrics provides Prometheus instrumentation for:
//   - TMDB catalog request latency and errors
//   - detail/genre cache efficiency
//   - Gemini ranking call latency and outcomes
//   - circuit breaker state transitions
//   - HTTP endpoint latency and throughput
//   - search pipeline timing per ranking branch
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog (TMDB) metrics
	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "Duration of TMDB API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "discover", "detail", "genres", "search"
	)

	CatalogRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_request_errors_total",
			Help: "Total number of failed TMDB API requests",
		},
		[]string{"operation", "error_type"}, // error_type: "network", "status", "decode"
	)

	CatalogNotFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tmdb_detail_not_found_total",
			Help: "Total number of detail lookups answered with 404 (normal outcome, item dropped)",
		},
	)

	CatalogLocaleRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tmdb_locale_retries_total",
			Help: "Total number of detail requests retried without the locale parameter",
		},
	)

	// Cache metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"}, // "detail", "genres"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	// Ranking (Gemini) metrics
	RankingRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranking_request_duration_seconds",
			Help:    "Duration of generative ranking calls in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)

	RankingOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_outcomes_total",
			Help: "Outcomes of generative ranking calls",
		},
		[]string{"outcome"}, // "ok", "no_matches", "malformed", "unavailable"
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Circuit breaker request outcomes",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current consecutive failure count per circuit breaker",
		},
		[]string{"name"},
	)

	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Search pipeline metrics
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_duration_seconds",
			Help:    "End-to-end movie search duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"branch"}, // "ai", "heuristic", "empty", "failed"
	)

	SearchCandidatePool = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_candidate_pool_size",
			Help:    "Candidate pool size after filtering and history exclusion",
			Buckets: []float64{0, 10, 25, 50, 100, 150, 200},
		},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results_returned",
			Help:    "Number of ranked results returned per search",
			Buckets: []float64{0, 1, 5, 10, 20, 30},
		},
	)
)

// ObserveCatalogRequest records one catalog request's duration and, when err
// is non-empty, its error type.
func ObserveCatalogRequest(operation string, start time.Time, errType string) {
	CatalogRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if errType != "" {
		CatalogRequestErrors.WithLabelValues(operation, errType).Inc()
	}
}
