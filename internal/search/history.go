// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package search

import "github.com/TheRealManual/SceneItBackend/internal/models"

// excludeHistory removes movies the user has already judged, preserving
// pool order. It runs before any size cap so an excluded item frees its
// slot for the next candidate rather than shrinking the result set.
func excludeHistory(pool []*models.Movie, history models.HistorySet) []*models.Movie {
	if len(history) == 0 {
		return pool
	}

	kept := make([]*models.Movie, 0, len(pool))
	for _, m := range pool {
		if history.Contains(m.TmdbID) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}
