// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package tmdb

import "testing"

func TestCertification(t *testing.T) {
	tests := []struct {
		name   string
		detail MovieDetail
		want   string
	}{
		{
			name:   "no release dates",
			detail: MovieDetail{},
			want:   "NR",
		},
		{
			name: "US record with certification",
			detail: MovieDetail{ReleaseDates: &ReleaseDates{Results: []CountryRelease{
				{CountryCode: "DE", ReleaseDates: []ReleaseInfo{{Certification: "FSK 16"}}},
				{CountryCode: "US", ReleaseDates: []ReleaseInfo{{Certification: "R"}}},
			}}},
			want: "R",
		},
		{
			name: "US record without certification",
			detail: MovieDetail{ReleaseDates: &ReleaseDates{Results: []CountryRelease{
				{CountryCode: "US", ReleaseDates: []ReleaseInfo{{Certification: ""}}},
			}}},
			want: "NR",
		},
		{
			name: "only foreign records",
			detail: MovieDetail{ReleaseDates: &ReleaseDates{Results: []CountryRelease{
				{CountryCode: "FR", ReleaseDates: []ReleaseInfo{{Certification: "12"}}},
			}}},
			want: "NR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.detail.Certification(); got != tt.want {
				t.Errorf("Certification() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDirector(t *testing.T) {
	d := MovieDetail{Credits: &Credits{Crew: []CrewCredit{
		{Name: "Jane Editor", Job: "Editor"},
		{Name: "David Fincher", Job: "Director"},
		{Name: "Second Unit", Job: "Director"},
	}}}
	if got := d.Director(); got != "David Fincher" {
		t.Errorf("Director() = %q, want %q", got, "David Fincher")
	}

	var empty MovieDetail
	if got := empty.Director(); got != "" {
		t.Errorf("Director() on empty detail = %q, want empty", got)
	}
}

func TestToMovie(t *testing.T) {
	d := MovieDetail{
		ID:               550,
		Title:            "Fight Club",
		OriginalLanguage: "en",
		Overview:         "An insomniac office worker...",
		ReleaseDate:      "1999-10-15",
		Runtime:          139,
		VoteAverage:      8.4,
		VoteCount:        26000,
		Popularity:       61.4,
		Genres:           []Genre{{ID: 18, Name: "Drama"}},
		Tagline:          "Mischief. Mayhem. Soap.",
		Credits: &Credits{
			Cast: make([]CastCredit, 15),
			Crew: []CrewCredit{{Name: "David Fincher", Job: "Director"}},
		},
		Keywords: &KeywordList{Keywords: []Keyword{{ID: 1, Name: "insomnia"}, {ID: 2, Name: "support group"}}},
		ReleaseDates: &ReleaseDates{Results: []CountryRelease{
			{CountryCode: "US", ReleaseDates: []ReleaseInfo{{Certification: "R"}}},
		}},
	}
	for i := range d.Credits.Cast {
		d.Credits.Cast[i] = CastCredit{Name: "Actor", Order: i}
	}

	m := d.ToMovie()

	if m.TmdbID != 550 || m.Title != "Fight Club" {
		t.Errorf("unexpected identity: %d %q", m.TmdbID, m.Title)
	}
	if m.Year() != 1999 {
		t.Errorf("Year() = %d, want 1999", m.Year())
	}
	if m.Runtime != 139 {
		t.Errorf("Runtime = %d, want 139", m.Runtime)
	}
	if m.AgeRating != "R" {
		t.Errorf("AgeRating = %q, want R", m.AgeRating)
	}
	if m.Director != "David Fincher" {
		t.Errorf("Director = %q, want David Fincher", m.Director)
	}
	if len(m.Cast) != maxCastMembers {
		t.Errorf("Cast capped at %d, got %d", maxCastMembers, len(m.Cast))
	}
	if len(m.Keywords) != 2 || m.Keywords[0] != "insomnia" {
		t.Errorf("Keywords = %v", m.Keywords)
	}
	if len(m.Genres) != 1 || m.Genres[0].Name != "Drama" {
		t.Errorf("Genres = %v", m.Genres)
	}
}

func TestToMovieUnparseableDate(t *testing.T) {
	d := MovieDetail{ID: 1, Title: "Unknown", ReleaseDate: ""}
	m := d.ToMovie()
	if !m.ReleaseDate.IsZero() {
		t.Errorf("expected zero release date, got %v", m.ReleaseDate)
	}
}
