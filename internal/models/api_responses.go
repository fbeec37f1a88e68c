// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package models

import "time"

// APIResponse is the standardized response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful search response:
//
//	{
//	  "status": "success",
//	  "data": {"count": 12, "movies": [...]},
//	  "metadata": {"timestamp": "2026-08-30T12:00:00Z", "query_time_ms": 840}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing and correlation information. RequestID
// echoes the X-Request-ID header so a response body can be matched to its
// server-side log lines.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is the structured error payload returned when Status is "error".
//
// Common codes:
//   - VALIDATION_ERROR: invalid preference profile or parameters
//   - NOT_FOUND: the movie does not exist upstream
//   - CATALOG_UNAVAILABLE: the movie catalog service failed (retryable)
//   - RANKING_UNAVAILABLE: the AI ranking service failed (retryable)
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SearchResponse is the Data payload of a successful movie search.
// Both ranking branches produce this exact shape; callers can only tell them
// apart by MatchReason content.
type SearchResponse struct {
	Count  int            `json:"count"`
	Movies []RankedResult `json:"movies"`
}
