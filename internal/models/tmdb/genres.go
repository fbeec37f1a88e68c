// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package tmdb

// GenreListResponse represents the /genre/movie/list response.
type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}
