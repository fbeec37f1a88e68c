// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

// Package catalog provides the client stack for the external TMDB movie
// catalog service.
//
// The stack composes three layers, innermost first:
//
//	TMDBClient            - raw HTTP client with outbound rate limiting
//	CircuitBreakerClient  - gobreaker wrapper preventing cascading failures
//	CachedClient          - TTL memoization of detail and genre lookups
//
// All three implement the Client interface, so callers depend only on the
// contract and tests can substitute fakes at any layer.
//
// Two upstream quirks are handled here and invisible to callers:
//
//   - A detail request whose locale parameter conflicts with appended
//     metadata fields is retried exactly once without the locale before
//     the call is treated as failed.
//   - A 404 on detail lookup is a normal outcome (the catalog can list
//     items it later refuses to detail) and propagates as (nil, nil),
//     never as an error.
package catalog
