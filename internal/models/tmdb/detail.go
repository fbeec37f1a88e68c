// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package tmdb

import (
	"time"

	"github.com/TheRealManual/SceneItBackend/internal/models"
)

// MovieDetail represents the /movie/{id} response with
// append_to_response=credits,keywords,release_dates.
type MovieDetail struct {
	ID               int            `json:"id"`
	Title            string         `json:"title"`
	OriginalLanguage string         `json:"original_language"`
	Overview         string         `json:"overview"`
	ReleaseDate      string         `json:"release_date"`
	Runtime          int            `json:"runtime"`
	VoteAverage      float64        `json:"vote_average"`
	VoteCount        int            `json:"vote_count"`
	Popularity       float64        `json:"popularity"`
	PosterPath       string         `json:"poster_path"`
	BackdropPath     string         `json:"backdrop_path"`
	Genres           []Genre        `json:"genres"`
	Budget           int64          `json:"budget"`
	Revenue          int64          `json:"revenue"`
	Tagline          string         `json:"tagline"`
	Credits          *Credits       `json:"credits,omitempty"`
	Keywords         *KeywordList   `json:"keywords,omitempty"`
	ReleaseDates     *ReleaseDates  `json:"release_dates,omitempty"`
	ProductionInfo   []ProductionCo `json:"production_companies,omitempty"`
}

// Genre is one TMDB genre entry.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionCo is one production company credit.
type ProductionCo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credits holds the cast and crew lists embedded in a detail response.
type Credits struct {
	Cast []CastCredit `json:"cast"`
	Crew []CrewCredit `json:"crew"`
}

// CastCredit is one cast entry, ordered by billing.
type CastCredit struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewCredit is one crew entry.
type CrewCredit struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// KeywordList holds the keywords embedded in a detail response.
type KeywordList struct {
	Keywords []Keyword `json:"keywords"`
}

// Keyword is one content keyword.
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ReleaseDates holds per-country release and certification records.
type ReleaseDates struct {
	Results []CountryRelease `json:"results"`
}

// CountryRelease groups release records for one country.
type CountryRelease struct {
	CountryCode  string        `json:"iso_3166_1"`
	ReleaseDates []ReleaseInfo `json:"release_dates"`
}

// ReleaseInfo is one release record carrying the certification string.
type ReleaseInfo struct {
	Certification string `json:"certification"`
	ReleaseDate   string `json:"release_date"`
	Type          int    `json:"type"`
}

// maxCastMembers caps how many cast entries are carried into the domain model.
const maxCastMembers = 10

// Certification resolves the US certification from the embedded release
// dates, defaulting to "NR" when no US record carries one.
func (d *MovieDetail) Certification() string {
	if d.ReleaseDates == nil {
		return "NR"
	}
	for _, country := range d.ReleaseDates.Results {
		if country.CountryCode != "US" {
			continue
		}
		if len(country.ReleaseDates) > 0 && country.ReleaseDates[0].Certification != "" {
			return country.ReleaseDates[0].Certification
		}
		break
	}
	return "NR"
}

// Director returns the first crew member credited with the Director job.
func (d *MovieDetail) Director() string {
	if d.Credits == nil {
		return ""
	}
	for _, c := range d.Credits.Crew {
		if c.Job == "Director" {
			return c.Name
		}
	}
	return ""
}

// ToMovie converts the wire record into the domain Movie, applying the
// enrichment mapping: US certification, director, top-billed cast, and
// keyword names.
func (d *MovieDetail) ToMovie() *models.Movie {
	m := &models.Movie{
		TmdbID:       d.ID,
		Title:        d.Title,
		Overview:     d.Overview,
		Runtime:      d.Runtime,
		VoteAverage:  d.VoteAverage,
		VoteCount:    d.VoteCount,
		Popularity:   d.Popularity,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		AgeRating:    d.Certification(),
		Language:     d.OriginalLanguage,
		Budget:       d.Budget,
		Revenue:      d.Revenue,
		Tagline:      d.Tagline,
		Director:     d.Director(),
	}

	if t, err := time.Parse("2006-01-02", d.ReleaseDate); err == nil {
		m.ReleaseDate = t
	}

	for _, g := range d.Genres {
		m.Genres = append(m.Genres, models.Genre{ID: g.ID, Name: g.Name})
	}

	if d.Credits != nil {
		for i, c := range d.Credits.Cast {
			if i >= maxCastMembers {
				break
			}
			m.Cast = append(m.Cast, models.CastMember{
				Name:        c.Name,
				Character:   c.Character,
				ProfilePath: c.ProfilePath,
			})
		}
	}

	if d.Keywords != nil {
		for _, k := range d.Keywords.Keywords {
			m.Keywords = append(m.Keywords, k.Name)
		}
	}

	return m
}
