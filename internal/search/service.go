// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package search

import (
	"context"
	"errors"
	"time"

	"github.com/TheRealManual/SceneItBackend/internal/catalog"
	"github.com/TheRealManual/SceneItBackend/internal/config"
	"github.com/TheRealManual/SceneItBackend/internal/logging"
	"github.com/TheRealManual/SceneItBackend/internal/metrics"
	"github.com/TheRealManual/SceneItBackend/internal/models"
	"github.com/TheRealManual/SceneItBackend/internal/ranker"
)

// Service orchestrates one search: collect, filter, exclude history,
// rank. It owns the branch decision between AI and heuristic ranking.
type Service struct {
	filter *CandidateFilter
	ranker *ranker.Ranker
}

// NewService wires the pipeline over the given catalog client and ranker.
func NewService(client catalog.Client, rk *ranker.Ranker, cfg *config.TMDBConfig) *Service {
	return &Service{
		filter: NewCandidateFilter(client, cfg),
		ranker: rk,
	}
}

// Search runs the pipeline for one profile and history.
//
// The returned slice is empty (never nil-checked by callers for
// semantics) when nothing survives filtering, history exclusion, or
// ranking; that is a success. A non-nil error is always a *Failure and
// means the search could not be completed at all.
func (s *Service) Search(ctx context.Context, profile *models.PreferenceProfile, history models.HistorySet) ([]models.RankedResult, error) {
	start := time.Now()
	log := logging.Ctx(ctx)

	pool, err := s.filter.Collect(ctx, profile)
	if err != nil {
		log.Error().Err(err).Msg("Candidate collection failed")
		metrics.SearchDuration.WithLabelValues("failed").Observe(time.Since(start).Seconds())
		return nil, NewFailure(FailureCatalogUnavailable, err)
	}

	pool = excludeHistory(pool, history)
	metrics.SearchCandidatePool.Observe(float64(len(pool)))

	if len(pool) == 0 {
		log.Info().Msg("Empty candidate pool, returning no results")
		s.observe(start, "empty", 0)
		return []models.RankedResult{}, nil
	}

	if profile.HasSubjectiveSignal() {
		results, err := s.ranker.RankAI(ctx, profile, pool)
		if err != nil {
			if errors.Is(err, ranker.ErrMalformed) {
				// The service answered off-contract; treated as no good
				// matches rather than an outage.
				log.Warn().Err(err).Msg("Ranking response malformed, returning no results")
				s.observe(start, "ai", 0)
				return []models.RankedResult{}, nil
			}
			log.Error().Err(err).Msg("Ranking service unavailable")
			metrics.SearchDuration.WithLabelValues("failed").Observe(time.Since(start).Seconds())
			return nil, NewFailure(FailureRankingUnavailable, err)
		}
		s.observe(start, "ai", len(results))
		return results, nil
	}

	results := s.ranker.RankHeuristic(pool)
	s.observe(start, "heuristic", len(results))
	return results, nil
}

func (s *Service) observe(start time.Time, branch string, resultCount int) {
	metrics.SearchDuration.WithLabelValues(branch).Observe(time.Since(start).Seconds())
	metrics.SearchResults.Observe(float64(resultCount))
}
