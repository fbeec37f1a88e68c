// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

// Package api provides the HTTP surface: the movie search endpoint, the
// catalog passthrough endpoints (detail, genres, title search), health
// probes, and the chi router wiring them together with rate limiting,
// CORS, and Prometheus instrumentation.
package api
