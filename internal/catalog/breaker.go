// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/TheRealManual/SceneItBackend/internal/logging"
	"github.com/TheRealManual/SceneItBackend/internal/metrics"
	"github.com/TheRealManual/SceneItBackend/internal/models"
	"github.com/TheRealManual/SceneItBackend/internal/models/tmdb"
)

// CircuitBreakerClient wraps a Client with the circuit breaker pattern,
// preventing cascading failures when the catalog service is unavailable
// or slow.
//
// DETERMINISM NOTE: The circuit breaker uses real time (via sony/gobreaker)
// for its interval and timeout calculations. The timing governs recovery
// from failures, not data integrity. Unit tests should exercise the wrapped
// client directly or substitute a fake.
type CircuitBreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// Ensure CircuitBreakerClient implements Client
var _ Client = (*CircuitBreakerClient)(nil)

// NewCircuitBreakerClient wraps client with a circuit breaker.
// Configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 30 second timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(client Client) *CircuitBreakerClient {
	cbName := "tmdb-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		// Opens when failure rate >= 60% with minimum 10 requests
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// execute wraps a catalog call with circuit breaker protection.
func (cbc *CircuitBreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()

			counts := cbc.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)

	return result, nil
}

// castResult safely type-casts the circuit breaker result with error checking.
// A nil result passes through unchanged so absent-item responses survive
// the breaker.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Discover retrieves a discovery page with circuit breaker protection.
func (cbc *CircuitBreakerClient) Discover(ctx context.Context, query DiscoverQuery, page int) (*tmdb.DiscoverResponse, error) {
	return castResult[tmdb.DiscoverResponse](cbc.execute(func() (interface{}, error) {
		return cbc.client.Discover(ctx, query, page)
	}))
}

// GetDetail retrieves a movie detail with circuit breaker protection.
// GetDetail returning (nil, nil) counts as success: an absent item is not
// an upstream failure and must not trip the breaker.
func (cbc *CircuitBreakerClient) GetDetail(ctx context.Context, id int) (*models.Movie, error) {
	result, err := cbc.execute(func() (interface{}, error) {
		movie, err := cbc.client.GetDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		if movie == nil {
			return nil, nil
		}
		return movie, nil
	})
	return castResult[models.Movie](result, err)
}

// Genres retrieves the genre vocabulary with circuit breaker protection.
func (cbc *CircuitBreakerClient) Genres(ctx context.Context) ([]models.Genre, error) {
	result, err := cbc.execute(func() (interface{}, error) {
		return cbc.client.Genres(ctx)
	})
	if err != nil {
		return nil, err
	}
	genres, ok := result.([]models.Genre)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return genres, nil
}

// SearchByTitle retrieves a title search page with circuit breaker protection.
func (cbc *CircuitBreakerClient) SearchByTitle(ctx context.Context, query string, page int) (*tmdb.DiscoverResponse, error) {
	return castResult[tmdb.DiscoverResponse](cbc.execute(func() (interface{}, error) {
		return cbc.client.SearchByTitle(ctx, query, page)
	}))
}
