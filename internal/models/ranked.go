// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package models

// RankedResult is one movie in a final result set, annotated with the ranking
// stage's confidence and a short human-readable justification.
//
// Within one result set entries are sorted by MatchScore descending and no
// two entries share a TmdbID. MatchScore always lies in [0.0, 1.0] regardless
// of which ranking branch produced it.
type RankedResult struct {
	Movie
	MatchScore  float64 `json:"matchScore"`
	MatchReason string  `json:"matchReason"`
}

// HistorySet holds the TMDB identifiers of movies the requesting user has
// already judged (liked or disliked). It is supplied by the user store at the
// start of a search and treated as immutable for the search's duration.
type HistorySet map[int]struct{}

// NewHistorySet builds a HistorySet from one or more identifier lists.
func NewHistorySet(idLists ...[]int) HistorySet {
	h := make(HistorySet)
	for _, ids := range idLists {
		for _, id := range ids {
			h[id] = struct{}{}
		}
	}
	return h
}

// Contains reports whether the user has already judged the given movie.
func (h HistorySet) Contains(tmdbID int) bool {
	_, ok := h[tmdbID]
	return ok
}
