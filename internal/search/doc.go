// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

// Package search runs the end-to-end recommendation pipeline: candidate
// collection from the catalog, client-side filtering, history exclusion,
// and relevance ranking.
//
// Benign emptiness (no candidates, no good matches, malformed ranking
// output) is absorbed into an empty result set. Infrastructure failure
// of either external dependency surfaces as a typed Failure so callers
// can distinguish "nothing matched" from "the system is degraded".
package search
