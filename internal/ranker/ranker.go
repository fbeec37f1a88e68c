// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package ranker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/TheRealManual/SceneItBackend/internal/config"
	"github.com/TheRealManual/SceneItBackend/internal/logging"
	"github.com/TheRealManual/SceneItBackend/internal/metrics"
	"github.com/TheRealManual/SceneItBackend/internal/models"
)

// HeuristicReason is the uniform justification attached to every result
// of the deterministic branch.
const HeuristicReason = "Sorted by popularity and rating"

// Ranker orders candidate pools. Both branches cap their output at
// maxResults; the AI branch additionally caps its input at maxPool and
// drops entries scoring below minScore.
type Ranker struct {
	gen        GenerativeClient
	maxPool    int
	maxResults int
	minScore   float64
}

// New creates a Ranker using gen for the AI branch.
func New(gen GenerativeClient, cfg *config.SearchConfig) *Ranker {
	return &Ranker{
		gen:        gen,
		maxPool:    cfg.MaxAIPool,
		maxResults: cfg.MaxResults,
		minScore:   cfg.MinMatchScore,
	}
}

// RankAI scores the pool against the profile's subjective dimensions via
// the generative service.
//
// The pool arrives popularity-ordered, so capping keeps the most widely
// relevant candidates. Response entries referencing ids outside the pool
// are hallucinations and are dropped; a duplicated id keeps its first
// occurrence. An empty result after thresholding is a valid outcome, not
// an error.
func (r *Ranker) RankAI(ctx context.Context, profile *models.PreferenceProfile, pool []*models.Movie) ([]models.RankedResult, error) {
	start := time.Now()

	capped := pool
	if len(capped) > r.maxPool {
		capped = capped[:r.maxPool]
	}

	raw, err := r.gen.Generate(ctx, buildPrompt(profile, capped))
	if err != nil {
		if errors.Is(err, ErrMalformed) {
			r.observe(start, "malformed")
			return nil, err
		}
		r.observe(start, "unavailable")
		if errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%v: %w", err, ErrUnavailable)
	}

	entries, err := parseRanking(raw)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("pool_size", len(capped)).Msg("Ranking response unparseable")
		r.observe(start, "malformed")
		return nil, err
	}

	byID := make(map[int]*models.Movie, len(capped))
	for _, m := range capped {
		byID[m.TmdbID] = m
	}

	seen := make(map[int]struct{}, len(entries))
	results := make([]models.RankedResult, 0, len(entries))
	dropped := 0
	for _, e := range entries {
		movie, ok := byID[e.TmdbID]
		if !ok {
			dropped++
			continue
		}
		if _, dup := seen[e.TmdbID]; dup {
			continue
		}
		seen[e.TmdbID] = struct{}{}

		score := clampScore(e.Score)
		if score < r.minScore {
			continue
		}
		results = append(results, models.RankedResult{
			Movie:       *movie,
			MatchScore:  score,
			MatchReason: e.Reason,
		})
	}

	if dropped > 0 {
		logging.Ctx(ctx).Debug().Int("dropped", dropped).Msg("Dropped ranking entries referencing unknown ids")
	}

	sortResults(results)
	if len(results) > r.maxResults {
		results = results[:r.maxResults]
	}

	if len(results) == 0 {
		r.observe(start, "no_matches")
	} else {
		r.observe(start, "ok")
	}
	return results, nil
}

// RankHeuristic orders the pool by a deterministic popularity/rating
// blend. Identical pools always yield identical orderings.
func (r *Ranker) RankHeuristic(pool []*models.Movie) []models.RankedResult {
	results := make([]models.RankedResult, 0, len(pool))
	for _, m := range pool {
		results = append(results, models.RankedResult{
			Movie:       *m,
			MatchScore:  clampScore(m.Popularity/1000 + m.VoteAverage/100),
			MatchReason: HeuristicReason,
		})
	}

	sortResults(results)
	if len(results) > r.maxResults {
		results = results[:r.maxResults]
	}
	return results
}

// sortResults orders by score descending, ties broken by ascending
// TMDB id so equal-scored pools stay deterministic.
func sortResults(results []models.RankedResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].TmdbID < results[j].TmdbID
	})
}

// clampScore bounds a score to [0, 1].
func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

func (r *Ranker) observe(start time.Time, outcome string) {
	metrics.RankingRequestDuration.Observe(time.Since(start).Seconds())
	metrics.RankingOutcomes.WithLabelValues(outcome).Inc()
}
