// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package search

import "fmt"

// FailureKind identifies which external dependency made a search
// impossible to complete.
type FailureKind string

const (
	// FailureCatalogUnavailable means the movie catalog could not serve
	// discovery or detail lookups.
	FailureCatalogUnavailable FailureKind = "catalog_unavailable"

	// FailureRankingUnavailable means the generative ranking service was
	// unreachable while the profile demanded the AI branch.
	FailureRankingUnavailable FailureKind = "ranking_unavailable"
)

// Failure is an infrastructure error from the search pipeline. It is
// never produced for benign emptiness; those cases return an empty
// result set instead.
type Failure struct {
	Kind  FailureKind
	Cause error
}

// NewFailure wraps cause as a pipeline failure of the given kind.
func NewFailure(kind FailureKind, cause error) *Failure {
	return &Failure{Kind: kind, Cause: cause}
}

func (f *Failure) Error() string {
	return fmt.Sprintf("search failed (%s): %v", f.Kind, f.Cause)
}

func (f *Failure) Unwrap() error { return f.Cause }

// Retryable reports whether a later identical request could plausibly
// succeed. Both failure kinds are transient upstream conditions.
func (f *Failure) Retryable() bool { return true }
