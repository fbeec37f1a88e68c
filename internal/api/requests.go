// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package api

import "github.com/TheRealManual/SceneItBackend/internal/models"

// SearchMoviesRequest is the POST body of the movie search endpoint.
//
// The history lists arrive inline with the request rather than from a
// session: the backend is stateless and the caller owns the user record.
type SearchMoviesRequest struct {
	Preferences models.PreferenceProfile `json:"preferences" validate:"required"`

	// LikedMovieIDs and DislikedMovieIDs are TMDB ids the user has
	// already judged; both are excluded from results identically.
	LikedMovieIDs    []int `json:"likedMovieIds"`
	DislikedMovieIDs []int `json:"dislikedMovieIds"`
}

// TitleSearchRequest carries the validated query parameters of the
// title search endpoint.
type TitleSearchRequest struct {
	Query string `validate:"required,min=1,max=200"`
	Page  int    `validate:"min=1,max=500"`
}
