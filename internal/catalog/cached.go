// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package catalog

import (
	"context"
	"strconv"
	"time"

	"github.com/TheRealManual/SceneItBackend/internal/cache"
	"github.com/TheRealManual/SceneItBackend/internal/config"
	"github.com/TheRealManual/SceneItBackend/internal/metrics"
	"github.com/TheRealManual/SceneItBackend/internal/models"
	"github.com/TheRealManual/SceneItBackend/internal/models/tmdb"
)

const (
	detailKeyPrefix = "detail:"
	genresKey       = "genres"

	detailCacheName = "detail"
	genreCacheName  = "genres"
)

// CachedClient memoizes detail and genre lookups in a TTL cache.
//
// Only successful lookups are stored. Failures and absent items (the
// (nil, nil) detail outcome) are never cached, so a transient upstream
// problem cannot pin a stale miss for a full TTL. Discovery and title
// search pass through uncached: their result sets shift with upstream
// popularity and any per-request filter combination would fragment the
// key space for near-zero hit rate.
type CachedClient struct {
	client    Client
	store     *cache.Cache
	detailTTL time.Duration
	genreTTL  time.Duration
}

// Ensure CachedClient implements Client
var _ Client = (*CachedClient)(nil)

// NewCachedClient wraps client with TTL memoization backed by store.
func NewCachedClient(client Client, store *cache.Cache, cfg *config.CacheConfig) *CachedClient {
	return &CachedClient{
		client:    client,
		store:     store,
		detailTTL: cfg.DetailTTL,
		genreTTL:  cfg.GenreTTL,
	}
}

// Discover passes through uncached.
func (c *CachedClient) Discover(ctx context.Context, query DiscoverQuery, page int) (*tmdb.DiscoverResponse, error) {
	return c.client.Discover(ctx, query, page)
}

// GetDetail returns the cached record when present, otherwise fetches and
// stores it. Absent items are returned but never stored.
func (c *CachedClient) GetDetail(ctx context.Context, id int) (*models.Movie, error) {
	key := detailKeyPrefix + strconv.Itoa(id)

	if v, ok := c.store.Get(key); ok {
		metrics.CacheHits.WithLabelValues(detailCacheName).Inc()
		return v.(*models.Movie), nil
	}
	metrics.CacheMisses.WithLabelValues(detailCacheName).Inc()

	movie, err := c.client.GetDetail(ctx, id)
	if err != nil || movie == nil {
		return movie, err
	}

	c.store.SetWithTTL(key, movie, c.detailTTL)
	return movie, nil
}

// Genres returns the cached vocabulary when present, otherwise fetches
// and stores it.
func (c *CachedClient) Genres(ctx context.Context) ([]models.Genre, error) {
	if v, ok := c.store.Get(genresKey); ok {
		metrics.CacheHits.WithLabelValues(genreCacheName).Inc()
		return v.([]models.Genre), nil
	}
	metrics.CacheMisses.WithLabelValues(genreCacheName).Inc()

	genres, err := c.client.Genres(ctx)
	if err != nil {
		return nil, err
	}

	c.store.SetWithTTL(genresKey, genres, c.genreTTL)
	return genres, nil
}

// SearchByTitle passes through uncached.
func (c *CachedClient) SearchByTitle(ctx context.Context, query string, page int) (*tmdb.DiscoverResponse, error) {
	return c.client.SearchByTitle(ctx, query, page)
}
