// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package models

import (
	"sort"
	"strings"
)

// AnyValue is the sentinel for categorical constraints that should not filter.
const AnyValue = "Any"

// NeutralSlider is the neutral value of every subjective slider (1-10 scale).
const NeutralSlider = 5

// PreferredGenreAffinity is the affinity at or above which a genre
// constrains candidate discovery.
const PreferredGenreAffinity = 6

// IntRange is a closed integer interval [Min, Max]. It marshals as a
// two-element JSON array to match the frontend payload shape.
type IntRange [2]int

// Min returns the lower bound of the interval.
func (r IntRange) Min() int { return r[0] }

// Max returns the upper bound of the interval.
func (r IntRange) Max() int { return r[1] }

// Contains reports whether v lies inside the interval, inclusive on both bounds.
func (r IntRange) Contains(v int) bool { return v >= r[0] && v <= r[1] }

// Valid reports whether the interval is ordered (min <= max).
func (r IntRange) Valid() bool { return r[0] <= r[1] }

// FloatRange is a closed float interval [Min, Max], marshaled as a JSON array.
type FloatRange [2]float64

// Min returns the lower bound of the interval.
func (r FloatRange) Min() float64 { return r[0] }

// Max returns the upper bound of the interval.
func (r FloatRange) Max() float64 { return r[1] }

// Contains reports whether v lies inside the interval, inclusive on both bounds.
func (r FloatRange) Contains(v float64) bool { return v >= r[0] && v <= r[1] }

// Valid reports whether the interval is ordered (min <= max).
func (r FloatRange) Valid() bool { return r[0] <= r[1] }

// PreferenceProfile is the per-search preference value object supplied by the
// caller. It mixes objective constraints (ranges, language, age rating) that
// the candidate filter applies, with subjective dimensions (description and
// sliders) that only the AI ranking branch consumes.
//
// Invariants enforced by validation: every range is ordered (min <= max) and
// every slider and genre affinity lies in [1,10].
type PreferenceProfile struct {
	// Description is optional free text describing what the user wants.
	Description string `json:"description" validate:"max=2000"`

	// YearRange bounds the primary release year, inclusive.
	YearRange IntRange `json:"yearRange" validate:"interval"`

	// RuntimeRange bounds the runtime in minutes, inclusive.
	RuntimeRange IntRange `json:"runtimeRange" validate:"interval"`

	// RatingRange bounds the aggregate rating (0-10 scale), inclusive.
	RatingRange FloatRange `json:"ratingRange" validate:"floatinterval"`

	// AgeRating is a certification string (G, PG, PG-13, R, NC-17, NR)
	// or the sentinel "Any".
	AgeRating string `json:"ageRating"`

	// Language is a human-readable language name or the sentinel "Any".
	Language string `json:"language"`

	// Genres maps genre name to affinity (1-10, 5 neutral).
	Genres map[string]int `json:"genres" validate:"omitempty,dive,min=1,max=10"`

	// Subjective sliders, each 1-10 with 5 neutral.
	MoodIntensity   int `json:"moodIntensity" validate:"min=1,max=10"`
	HumorLevel      int `json:"humorLevel" validate:"min=1,max=10"`
	ViolenceLevel   int `json:"violenceLevel" validate:"min=1,max=10"`
	RomanceLevel    int `json:"romanceLevel" validate:"min=1,max=10"`
	ComplexityLevel int `json:"complexityLevel" validate:"min=1,max=10"`
}

// Sliders returns the five subjective sliders keyed by dimension name, in a
// fixed order suitable for deterministic prompt construction.
func (p *PreferenceProfile) Sliders() []Slider {
	return []Slider{
		{Name: "moodIntensity", Value: p.MoodIntensity},
		{Name: "humorLevel", Value: p.HumorLevel},
		{Name: "violenceLevel", Value: p.ViolenceLevel},
		{Name: "romanceLevel", Value: p.RomanceLevel},
		{Name: "complexityLevel", Value: p.ComplexityLevel},
	}
}

// Slider is one subjective preference dimension.
type Slider struct {
	Name  string
	Value int
}

// Neutral reports whether the slider sits at its neutral value.
func (s Slider) Neutral() bool { return s.Value == NeutralSlider }

// HasSubjectiveSignal reports whether the profile carries any subjective
// preference: a non-empty description after trimming, or any slider away
// from neutral. This is the single branch decision consumed by both the
// search orchestrator (AI vs heuristic ranking) and the prompt builder
// (which preference lines to include), so the two can never disagree.
//
// Genre affinities are objective catalog dimensions and deliberately do not
// contribute to the signal.
func (p *PreferenceProfile) HasSubjectiveSignal() bool {
	if strings.TrimSpace(p.Description) != "" {
		return true
	}
	for _, s := range p.Sliders() {
		if !s.Neutral() {
			return true
		}
	}
	return false
}

// languageCodes maps human-readable language names to ISO 639-1 codes as
// accepted by the TMDB discover endpoint.
var languageCodes = map[string]string{
	"English":  "en",
	"Spanish":  "es",
	"French":   "fr",
	"German":   "de",
	"Italian":  "it",
	"Japanese": "ja",
	"Korean":   "ko",
	"Mandarin": "zh",
	"Hindi":    "hi",
}

// LanguageCode resolves the profile language to an ISO 639-1 code.
// It returns ("", false) for the "Any" sentinel or an empty language,
// and falls back to "en" for unrecognized names.
func (p *PreferenceProfile) LanguageCode() (string, bool) {
	if p.Language == "" || p.Language == AnyValue {
		return "", false
	}
	if code, ok := languageCodes[p.Language]; ok {
		return code, true
	}
	return "en", true
}

// PreferredGenres returns the genre names rated at or above
// PreferredGenreAffinity, sorted for deterministic query construction.
// Candidates need only match one of them.
func (p *PreferenceProfile) PreferredGenres() []string {
	var names []string
	for name, affinity := range p.Genres {
		if affinity >= PreferredGenreAffinity {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// FiltersAgeRating reports whether the certification constraint is active.
func (p *PreferenceProfile) FiltersAgeRating() bool {
	return p.AgeRating != "" && p.AgeRating != AnyValue
}
