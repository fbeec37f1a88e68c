// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

// Package tmdb holds the wire types for the TMDB v3 REST API.
//
// Only the fields the SceneIt pipeline consumes are mapped. The detail
// response embeds credits, keywords, and release_dates via TMDB's
// append_to_response mechanism, which is how the catalog client resolves
// certification and cast data in a single round trip.
//
// API reference: https://developer.themoviedb.org/reference
package tmdb
