// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/TheRealManual/SceneItBackend/internal/catalog"
	"github.com/TheRealManual/SceneItBackend/internal/config"
	"github.com/TheRealManual/SceneItBackend/internal/logging"
	"github.com/TheRealManual/SceneItBackend/internal/models"
)

// CandidateFilter collects and filters the candidate pool for one search.
//
// Discovery pages are scanned sequentially in popularity order; detail
// lookups fan out concurrently under a semaphore so a large pool cannot
// stampede the catalog. The pool keeps discovery order end to end, which
// is what makes the downstream heuristic branch deterministic.
type CandidateFilter struct {
	catalog     catalog.Client
	pages       int
	concurrency int
}

// NewCandidateFilter creates a filter over the given catalog client.
func NewCandidateFilter(client catalog.Client, cfg *config.TMDBConfig) *CandidateFilter {
	pages := cfg.DiscoverPages
	if pages <= 0 {
		pages = 10
	}
	concurrency := cfg.DetailConcurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	return &CandidateFilter{
		catalog:     client,
		pages:       pages,
		concurrency: concurrency,
	}
}

// Collect returns the filtered candidate pool for profile, in discovery
// order. An empty pool is a normal outcome. Any catalog error aborts the
// whole collection; partial pools are never returned.
func (f *CandidateFilter) Collect(ctx context.Context, profile *models.PreferenceProfile) ([]*models.Movie, error) {
	ids, err := f.discoverIDs(ctx, profile)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	details, err := f.fetchDetails(ctx, ids)
	if err != nil {
		return nil, err
	}

	pool := make([]*models.Movie, 0, len(details))
	for _, m := range details {
		if m == nil {
			continue // absent upstream, dropped silently
		}
		if !matchesProfile(m, profile) {
			continue
		}
		pool = append(pool, m)
	}

	logging.Ctx(ctx).Debug().
		Int("discovered", len(ids)).
		Int("pool", len(pool)).
		Msg("Candidate pool collected")

	return pool, nil
}

// discoverIDs scans the discovery pages and returns unique movie ids in
// first-seen order.
func (f *CandidateFilter) discoverIDs(ctx context.Context, profile *models.PreferenceProfile) ([]int, error) {
	query := discoverQuery(profile)

	genreIDs, err := f.preferredGenreIDs(ctx, profile)
	if err != nil {
		return nil, err
	}
	query.GenreIDs = genreIDs

	seen := make(map[int]struct{})
	var ids []int

	for page := 1; page <= f.pages; page++ {
		resp, err := f.catalog.Discover(ctx, query, page)
		if err != nil {
			return nil, fmt.Errorf("discover page %d: %w", page, err)
		}

		for _, summary := range resp.Results {
			if _, dup := seen[summary.ID]; dup {
				continue
			}
			seen[summary.ID] = struct{}{}
			ids = append(ids, summary.ID)
		}

		if page >= resp.TotalPages {
			break
		}
	}

	return ids, nil
}

// fetchDetails resolves each id to its enriched record, bounded by the
// configured concurrency. Absent items come back as nil entries; the
// slice preserves input order.
func (f *CandidateFilter) fetchDetails(ctx context.Context, ids []int) ([]*models.Movie, error) {
	details := make([]*models.Movie, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(f.concurrency))

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			movie, err := f.catalog.GetDetail(gctx, id)
			if err != nil {
				return fmt.Errorf("detail %d: %w", id, err)
			}
			details[i] = movie
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// preferredGenreIDs resolves the profile's preferred genre names through
// the catalog vocabulary so discovery only returns movies carrying at
// least one of them. Names the vocabulary does not know are skipped.
func (f *CandidateFilter) preferredGenreIDs(ctx context.Context, profile *models.PreferenceProfile) ([]int, error) {
	preferred := profile.PreferredGenres()
	if len(preferred) == 0 {
		return nil, nil
	}

	vocab, err := f.catalog.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("genre vocabulary: %w", err)
	}

	byName := make(map[string]int, len(vocab))
	for _, g := range vocab {
		byName[g.Name] = g.ID
	}

	var ids []int
	for _, name := range preferred {
		if id, ok := byName[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// discoverQuery maps the profile's structural constraints onto the
// discovery endpoint's server-side filters.
func discoverQuery(profile *models.PreferenceProfile) catalog.DiscoverQuery {
	q := catalog.DiscoverQuery{}
	if profile.YearRange != (models.IntRange{}) {
		q.YearMin = profile.YearRange.Min()
		q.YearMax = profile.YearRange.Max()
	}
	if profile.RatingRange != (models.FloatRange{}) {
		q.RatingMin = profile.RatingRange.Min()
		q.RatingMax = profile.RatingRange.Max()
	}
	if code, ok := profile.LanguageCode(); ok {
		q.LanguageCode = code
	}
	return q
}

// matchesProfile applies the constraints discovery cannot express
// server-side: runtime, certification, and a rating re-check against the
// detail record (discovery and detail can disagree after a vote shift).
// All range bounds are inclusive.
func matchesProfile(m *models.Movie, profile *models.PreferenceProfile) bool {
	if profile.RuntimeRange != (models.IntRange{}) && !profile.RuntimeRange.Contains(m.Runtime) {
		return false
	}
	if profile.FiltersAgeRating() && m.AgeRating != profile.AgeRating {
		return false
	}
	if profile.RatingRange != (models.FloatRange{}) && !profile.RatingRange.Contains(m.VoteAverage) {
		return false
	}
	return true
}
