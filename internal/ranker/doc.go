// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

// Package ranker orders a filtered candidate pool by relevance to a
// preference profile.
//
// Two branches exist. The AI branch sends the pool and the subjective
// preference dimensions to a generative language service and parses its
// scored response; it is chosen when the profile carries any subjective
// signal. The heuristic branch is a deterministic popularity/rating
// blend used when no subjective signal exists, so identical structural
// queries always return identical orderings.
//
// The AI branch distinguishes two failure classes: ErrMalformed (the
// service answered, but not in the contract shape) and ErrUnavailable
// (the service could not be reached or errored). Callers absorb the
// former as an empty result and surface the latter.
package ranker
