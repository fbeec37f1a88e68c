// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

/*
client.go - TMDB REST API Client

This file implements the raw HTTP client for the TMDB v3 API. It covers
the four operations the search pipeline needs: popularity-ordered
discovery, full detail lookup, the genre vocabulary, and free-text title
search.

API Reference: https://developer.themoviedb.org/reference/intro/getting-started
*/

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/TheRealManual/SceneItBackend/internal/config"
	"github.com/TheRealManual/SceneItBackend/internal/logging"
	"github.com/TheRealManual/SceneItBackend/internal/metrics"
	"github.com/TheRealManual/SceneItBackend/internal/models"
	"github.com/TheRealManual/SceneItBackend/internal/models/tmdb"
)

// Client defines the catalog operations used by the search pipeline.
// TMDBClient, CircuitBreakerClient and CachedClient all implement it.
type Client interface {
	// Discover returns one popularity-ordered page of movies matching the
	// structural filters in query.
	Discover(ctx context.Context, query DiscoverQuery, page int) (*tmdb.DiscoverResponse, error)

	// GetDetail returns the enriched record for one movie. A movie the
	// catalog lists but refuses to detail yields (nil, nil), not an error.
	GetDetail(ctx context.Context, id int) (*models.Movie, error)

	// Genres returns the catalog's genre vocabulary.
	Genres(ctx context.Context) ([]models.Genre, error)

	// SearchByTitle returns one page of free-text title matches.
	SearchByTitle(ctx context.Context, query string, page int) (*tmdb.DiscoverResponse, error)
}

// Ensure TMDBClient implements Client
var _ Client = (*TMDBClient)(nil)

// DiscoverQuery carries the structural filters applied server-side on
// discovery. Zero ranges mean unconstrained.
type DiscoverQuery struct {
	YearMin      int
	YearMax      int
	RatingMin    float64
	RatingMax    float64
	LanguageCode string // ISO 639-1, empty for any language
	GenreIDs     []int  // movies matching ANY listed genre; empty for all
}

// TMDBClient provides access to the TMDB v3 REST API.
//
// All outbound requests pass through a token-bucket rate limiter so that
// page fan-out and concurrent detail lookups cannot exceed the upstream
// request budget.
type TMDBClient struct {
	baseURL     string
	accessToken string
	language    string // locale for discovery and vocabulary, e.g. en-US
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewTMDBClient creates a new TMDB API client from configuration.
func NewTMDBClient(cfg *config.TMDBConfig) *TMDBClient {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 4
	}

	return &TMDBClient{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		language:    cfg.Language,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)+1),
	}
}

// Discover retrieves one page of /discover/movie ordered by descending
// popularity. Adult titles are always excluded.
func (c *TMDBClient) Discover(ctx context.Context, query DiscoverQuery, page int) (*tmdb.DiscoverResponse, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("include_adult", "false")
	params.Set("page", strconv.Itoa(page))
	if c.language != "" {
		params.Set("language", c.language)
	}
	if query.YearMin > 0 {
		params.Set("primary_release_date.gte", fmt.Sprintf("%04d-01-01", query.YearMin))
	}
	if query.YearMax > 0 {
		params.Set("primary_release_date.lte", fmt.Sprintf("%04d-12-31", query.YearMax))
	}
	if query.RatingMin > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(query.RatingMin, 'f', 1, 64))
	}
	if query.RatingMax > 0 {
		params.Set("vote_average.lte", strconv.FormatFloat(query.RatingMax, 'f', 1, 64))
	}
	if query.LanguageCode != "" {
		params.Set("with_original_language", query.LanguageCode)
	}
	if len(query.GenreIDs) > 0 {
		ids := make([]string, len(query.GenreIDs))
		for i, id := range query.GenreIDs {
			ids[i] = strconv.Itoa(id)
		}
		// Pipe separator is TMDB's OR: a candidate needs any one genre.
		params.Set("with_genres", strings.Join(ids, "|"))
	}

	var out tmdb.DiscoverResponse
	if err := c.getJSON(ctx, "discover", "/discover/movie", params, &out); err != nil {
		metrics.ObserveCatalogRequest("discover", start, errType(err))
		return nil, err
	}

	metrics.ObserveCatalogRequest("discover", start, "")
	return &out, nil
}

// GetDetail retrieves the full record for one movie, with credits,
// keywords and release dates appended in a single round trip.
//
// Two upstream behaviors are absorbed here:
//   - 404 means the catalog lists the id but will not detail it; the
//     item is simply absent and the caller gets (nil, nil).
//   - 422 with a locale set means the appended fields conflict with the
//     requested locale; the identical request is retried once without
//     the locale before the failure is surfaced.
func (c *TMDBClient) GetDetail(ctx context.Context, id int) (*models.Movie, error) {
	start := time.Now()
	endpoint := fmt.Sprintf("/movie/%d", id)

	locale := c.language
	for attempt := 0; attempt < 2; attempt++ {
		params := url.Values{}
		params.Set("append_to_response", "credits,keywords,release_dates")
		if locale != "" {
			params.Set("language", locale)
		}

		var detail tmdb.MovieDetail
		err := c.getJSON(ctx, "detail", endpoint, params, &detail)
		if err == nil {
			metrics.ObserveCatalogRequest("detail", start, "")
			return detail.ToMovie(), nil
		}

		if IsStatus(err, http.StatusNotFound) {
			metrics.CatalogNotFound.Inc()
			metrics.ObserveCatalogRequest("detail", start, "")
			return nil, nil
		}

		if IsStatus(err, http.StatusUnprocessableEntity) && locale != "" {
			logging.Ctx(ctx).Debug().Int("tmdb_id", id).Str("locale", locale).
				Msg("Detail locale rejected, retrying without locale")
			metrics.CatalogLocaleRetries.Inc()
			locale = ""
			continue
		}

		metrics.ObserveCatalogRequest("detail", start, errType(err))
		return nil, err
	}

	// Second attempt already ran without the locale, so control cannot
	// reach here; keep the compiler and future edits honest.
	return nil, fmt.Errorf("tmdb detail %d: retry loop exhausted", id)
}

// Genres retrieves the movie genre vocabulary.
func (c *TMDBClient) Genres(ctx context.Context) ([]models.Genre, error) {
	start := time.Now()

	params := url.Values{}
	if c.language != "" {
		params.Set("language", c.language)
	}

	var out tmdb.GenreListResponse
	if err := c.getJSON(ctx, "genres", "/genre/movie/list", params, &out); err != nil {
		metrics.ObserveCatalogRequest("genres", start, errType(err))
		return nil, err
	}

	genres := make([]models.Genre, 0, len(out.Genres))
	for _, g := range out.Genres {
		genres = append(genres, models.Genre{ID: g.ID, Name: g.Name})
	}

	metrics.ObserveCatalogRequest("genres", start, "")
	return genres, nil
}

// SearchByTitle retrieves one page of /search/movie results for a
// free-text query.
func (c *TMDBClient) SearchByTitle(ctx context.Context, query string, page int) (*tmdb.DiscoverResponse, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	params.Set("page", strconv.Itoa(page))
	if c.language != "" {
		params.Set("language", c.language)
	}

	var out tmdb.DiscoverResponse
	if err := c.getJSON(ctx, "search", "/search/movie", params, &out); err != nil {
		metrics.ObserveCatalogRequest("search", start, errType(err))
		return nil, err
	}

	metrics.ObserveCatalogRequest("search", start, "")
	return &out, nil
}

// getJSON performs a rate-limited GET against the TMDB API and decodes a
// 200 response into out. Non-200 statuses become a StatusError carrying
// the truncated body.
func (c *TMDBClient) getJSON(ctx context.Context, op, endpoint string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("tmdb %s rate limit wait: %w", op, err)
	}

	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("tmdb %s build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb %s request failed: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		if readErr != nil {
			body = []byte("(failed to read body)")
		}
		return &StatusError{Op: op, Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb %s decode response: %w", op, err)
	}

	return nil
}

// errType maps an error to the error_type metric label.
func errType(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return "status_" + strconv.Itoa(se.Status)
	}
	return "transport"
}
