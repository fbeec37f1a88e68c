// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package models

import (
	"testing"
	"time"
)

func neutralProfile() PreferenceProfile {
	return PreferenceProfile{
		YearRange:       IntRange{1900, 2030},
		RuntimeRange:    IntRange{0, 400},
		RatingRange:     FloatRange{0, 10},
		AgeRating:       AnyValue,
		Language:        AnyValue,
		MoodIntensity:   NeutralSlider,
		HumorLevel:      NeutralSlider,
		ViolenceLevel:   NeutralSlider,
		RomanceLevel:    NeutralSlider,
		ComplexityLevel: NeutralSlider,
	}
}

func TestIntRangeContains(t *testing.T) {
	r := IntRange{2010, 2020}

	tests := []struct {
		name string
		v    int
		want bool
	}{
		{"below", 2009, false},
		{"lower bound inclusive", 2010, true},
		{"inside", 2015, true},
		{"upper bound inclusive", 2020, true},
		{"above", 2021, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.v); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFloatRangeContains(t *testing.T) {
	r := FloatRange{7, 10}
	if !r.Contains(7) {
		t.Error("expected lower bound to be inclusive")
	}
	if !r.Contains(10) {
		t.Error("expected upper bound to be inclusive")
	}
	if r.Contains(6.99) {
		t.Error("expected 6.99 to be outside [7,10]")
	}
}

func TestRangeValid(t *testing.T) {
	if !(IntRange{1, 1}).Valid() {
		t.Error("expected [1,1] to be valid")
	}
	if (IntRange{2, 1}).Valid() {
		t.Error("expected [2,1] to be invalid")
	}
	if (FloatRange{5.1, 5.0}).Valid() {
		t.Error("expected [5.1,5.0] to be invalid")
	}
}

func TestHasSubjectiveSignal(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PreferenceProfile)
		want   bool
	}{
		{"all neutral", func(*PreferenceProfile) {}, false},
		{"description set", func(p *PreferenceProfile) { p.Description = "dark psychological thriller" }, true},
		{"whitespace description only", func(p *PreferenceProfile) { p.Description = "   \t\n" }, false},
		{"mood away from neutral", func(p *PreferenceProfile) { p.MoodIntensity = 9 }, true},
		{"humor away from neutral", func(p *PreferenceProfile) { p.HumorLevel = 1 }, true},
		{"violence away from neutral", func(p *PreferenceProfile) { p.ViolenceLevel = 6 }, true},
		{"romance away from neutral", func(p *PreferenceProfile) { p.RomanceLevel = 4 }, true},
		{"complexity away from neutral", func(p *PreferenceProfile) { p.ComplexityLevel = 10 }, true},
		// Genre affinities are objective and never trigger the AI branch.
		{"genre affinities only", func(p *PreferenceProfile) { p.Genres = map[string]int{"Horror": 10, "Comedy": 1} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := neutralProfile()
			tt.mutate(&p)
			if got := p.HasSubjectiveSignal(); got != tt.want {
				t.Errorf("HasSubjectiveSignal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreferredGenres(t *testing.T) {
	tests := []struct {
		name   string
		genres map[string]int
		want   []string
	}{
		{"nil map", nil, nil},
		{"all below threshold", map[string]int{"Horror": 5, "Comedy": 1}, nil},
		{"threshold is inclusive", map[string]int{"Drama": 6}, []string{"Drama"}},
		{"sorted by name", map[string]int{"Horror": 10, "Action": 7, "Comedy": 2}, []string{"Action", "Horror"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := neutralProfile()
			p.Genres = tt.genres
			got := p.PreferredGenres()
			if len(got) != len(tt.want) {
				t.Fatalf("PreferredGenres() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("PreferredGenres() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		name     string
		language string
		wantCode string
		wantOK   bool
	}{
		{"any sentinel", AnyValue, "", false},
		{"empty", "", "", false},
		{"english", "English", "en", true},
		{"korean", "Korean", "ko", true},
		{"mandarin", "Mandarin", "zh", true},
		{"unknown falls back to english", "Klingon", "en", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := neutralProfile()
			p.Language = tt.language
			code, ok := p.LanguageCode()
			if code != tt.wantCode || ok != tt.wantOK {
				t.Errorf("LanguageCode() = (%q, %v), want (%q, %v)", code, ok, tt.wantCode, tt.wantOK)
			}
		})
	}
}

func TestHistorySet(t *testing.T) {
	h := NewHistorySet([]int{1, 2, 3}, []int{3, 4})

	if len(h) != 4 {
		t.Errorf("expected 4 distinct ids, got %d", len(h))
	}
	for _, id := range []int{1, 2, 3, 4} {
		if !h.Contains(id) {
			t.Errorf("expected history to contain %d", id)
		}
	}
	if h.Contains(99) {
		t.Error("expected history to not contain 99")
	}
}

func TestMovieYear(t *testing.T) {
	m := Movie{ReleaseDate: time.Date(2014, 10, 3, 0, 0, 0, 0, time.UTC)}
	if m.Year() != 2014 {
		t.Errorf("Year() = %d, want 2014", m.Year())
	}

	var unknown Movie
	if unknown.Year() != 0 {
		t.Errorf("Year() for zero date = %d, want 0", unknown.Year())
	}
}

func TestMovieGenreNames(t *testing.T) {
	m := Movie{Genres: []Genre{{ID: 18, Name: "Drama"}, {ID: 53, Name: "Thriller"}}}
	names := m.GenreNames()
	if len(names) != 2 || names[0] != "Drama" || names[1] != "Thriller" {
		t.Errorf("GenreNames() = %v, want [Drama Thriller]", names)
	}
}
