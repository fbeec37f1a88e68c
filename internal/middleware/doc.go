// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

// Package middleware provides HTTP middleware: per-request IDs for log
// correlation and Prometheus request instrumentation.
package middleware
