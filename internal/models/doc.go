// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

// Package models defines the domain types shared across the SceneIt backend.
//
// Core domain types:
//   - Movie: enriched representation of one TMDB movie record
//   - PreferenceProfile: per-search user preference value object
//   - RankedResult: a Movie annotated with a match score and reason
//   - HistorySet: identifiers of movies the user has already judged
//
// HTTP envelope types:
//   - APIResponse: standardized response wrapper
//   - Metadata: response timing metadata
//   - APIError: structured error payload
//
// Wire types for the external TMDB API live in the models/tmdb subpackage
// so that upstream schema churn stays out of the domain layer.
package models
