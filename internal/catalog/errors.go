// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package catalog

import (
	"errors"
	"fmt"
)

// StatusError is returned when the catalog service answers with a
// non-success HTTP status that is not absorbed by the client
// (404 on detail lookup never reaches callers).
type StatusError struct {
	Op     string // logical operation: discover, detail, genres, search
	Status int    // HTTP status code from the upstream response
	Body   string // truncated upstream body, for logs only
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb %s returned status %d: %s", e.Op, e.Status, e.Body)
}

// IsStatus reports whether err is a StatusError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

// maxErrBody bounds how much of an upstream error body is kept for logging.
const maxErrBody = 512
