// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package ranker

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// rankedEntry is one element of the generative service's response array.
type rankedEntry struct {
	TmdbID int     `json:"tmdbId"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// parseRanking decodes the service's raw text into ranking entries.
//
// Generative models wrap JSON in markdown code fences despite
// instructions not to, so fences are stripped before decoding. Anything
// that still fails to decode as the contract array wraps ErrMalformed.
func parseRanking(raw string) ([]rankedEntry, error) {
	text := stripFences(strings.TrimSpace(raw))

	var entries []rankedEntry
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		return nil, fmt.Errorf("decode ranking array: %v: %w", err, ErrMalformed)
	}

	return entries, nil
}

// stripFences removes a surrounding markdown code fence, with or without
// a language tag, leaving other text untouched.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop a language tag such as "json" on the fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(s[:idx])
		if firstLine == "" || isFenceTag(firstLine) {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
