// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package ranker

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/TheRealManual/SceneItBackend/internal/models"
)

const (
	// maxOverviewChars truncates candidate overviews in the prompt to keep
	// token usage bounded.
	maxOverviewChars = 200

	// maxPromptKeywords caps the keywords listed per candidate.
	maxPromptKeywords = 6
)

// buildPrompt renders the ranking prompt for one pool and profile.
//
// Only non-neutral preference dimensions are included: a slider at its
// neutral value carries no signal and would only dilute the instruction.
// Candidate ids are enumerated explicitly and the contract demands the
// response reference those ids only.
func buildPrompt(profile *models.PreferenceProfile, pool []*models.Movie) string {
	var b strings.Builder

	b.WriteString("You are a movie recommendation expert. Rank the candidate movies below by how well they match the user's preferences.\n\n")

	b.WriteString("USER PREFERENCES:\n")
	if desc := strings.TrimSpace(profile.Description); desc != "" {
		b.WriteString("- Looking for: " + desc + "\n")
	}
	for _, s := range profile.Sliders() {
		if s.Neutral() {
			continue
		}
		fmt.Fprintf(&b, "- %s: %d/10\n", sliderLabel(s.Name), s.Value)
	}
	if affinities := genreAffinities(profile); affinities != "" {
		b.WriteString("- Genre affinities: " + affinities + "\n")
	}

	b.WriteString("\nCANDIDATE MOVIES:\n")
	for _, m := range pool {
		fmt.Fprintf(&b, "- id=%d | %s (%d) | rating %.1f", m.TmdbID, m.Title, m.Year(), m.VoteAverage)
		if genres := m.GenreNames(); len(genres) > 0 {
			b.WriteString(" | genres: " + strings.Join(genres, ", "))
		}
		if kw := m.Keywords; len(kw) > 0 {
			if len(kw) > maxPromptKeywords {
				kw = kw[:maxPromptKeywords]
			}
			b.WriteString(" | keywords: " + strings.Join(kw, ", "))
		}
		if overview := truncate(m.Overview, maxOverviewChars); overview != "" {
			b.WriteString(" | " + overview)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nRespond with ONLY a JSON array, no other text and no markdown. ")
	b.WriteString(`Each element must be {"tmdbId": <id from the candidate list>, "score": <0.0-1.0 match confidence>, "reason": "<one short sentence>"}. `)
	b.WriteString("Use only ids that appear in the candidate list. Omit movies that match poorly.\n")

	return b.String()
}

// sliderLabel maps a slider field name to prompt wording.
func sliderLabel(name string) string {
	switch name {
	case "moodIntensity":
		return "Mood intensity"
	case "humorLevel":
		return "Humor"
	case "violenceLevel":
		return "Violence tolerance"
	case "romanceLevel":
		return "Romance"
	case "complexityLevel":
		return "Plot complexity"
	default:
		return name
	}
}

// genreAffinities renders the non-neutral genre affinities in a stable
// alphabetical order, or "" when none carry signal.
func genreAffinities(profile *models.PreferenceProfile) string {
	names := make([]string, 0, len(profile.Genres))
	for name, affinity := range profile.Genres {
		if affinity != models.NeutralSlider {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %d/10", name, profile.Genres[name]))
	}
	return strings.Join(parts, ", ")
}

// truncate cuts s to at most max characters, never splitting a rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
