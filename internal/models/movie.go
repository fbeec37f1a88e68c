// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package models

import "time"

// Genre is one entry of the TMDB genre vocabulary.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is one credited actor on a movie.
type CastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profilePath,omitempty"`
}

// Movie is the enriched representation of one TMDB movie record.
//
// Instances are owned transiently by the search pipeline: fetched (cache hit
// or external call), used to build ranking input, and discarded once a
// RankedResult is produced or the item is rejected. Nothing in this backend
// persists them.
type Movie struct {
	TmdbID       int          `json:"tmdbId"`
	Title        string       `json:"title"`
	Overview     string       `json:"overview,omitempty"`
	ReleaseDate  time.Time    `json:"releaseDate,omitempty"`
	Runtime      int          `json:"runtime,omitempty"`
	VoteAverage  float64      `json:"voteAverage"`
	VoteCount    int          `json:"voteCount,omitempty"`
	Popularity   float64      `json:"popularity"`
	PosterPath   string       `json:"posterPath,omitempty"`
	BackdropPath string       `json:"backdropPath,omitempty"`
	Genres       []Genre      `json:"genres,omitempty"`
	AgeRating    string       `json:"ageRating,omitempty"`
	Language     string       `json:"language,omitempty"`
	Budget       int64        `json:"budget,omitempty"`
	Revenue      int64        `json:"revenue,omitempty"`
	Tagline      string       `json:"tagline,omitempty"`
	Cast         []CastMember `json:"cast,omitempty"`
	Director     string       `json:"director,omitempty"`
	Keywords     []string     `json:"keywords,omitempty"`
}

// Year returns the release year, or 0 when the release date is unknown.
func (m *Movie) Year() int {
	if m.ReleaseDate.IsZero() {
		return 0
	}
	return m.ReleaseDate.Year()
}

// GenreNames returns the genre names in catalog order.
func (m *Movie) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}
