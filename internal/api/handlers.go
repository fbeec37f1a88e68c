// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/TheRealManual/SceneItBackend/internal/catalog"
	"github.com/TheRealManual/SceneItBackend/internal/logging"
	"github.com/TheRealManual/SceneItBackend/internal/models"
	"github.com/TheRealManual/SceneItBackend/internal/search"
)

// searchTimeout bounds one full search pipeline run: up to ten discovery
// pages, the detail fan-out, and one generative ranking call.
const searchTimeout = 90 * time.Second

// catalogTimeout bounds single-lookup passthrough endpoints.
const catalogTimeout = 15 * time.Second

// Searcher is the search pipeline surface the handler needs; satisfied
// by *search.Service and substituted with fakes in tests.
type Searcher interface {
	Search(ctx context.Context, profile *models.PreferenceProfile, history models.HistorySet) ([]models.RankedResult, error)
}

// Handler serves the movie endpoints.
type Handler struct {
	searcher Searcher
	catalog  catalog.Client
}

// NewHandler creates a Handler over the search service and catalog client.
func NewHandler(searcher Searcher, client catalog.Client) *Handler {
	return &Handler{
		searcher: searcher,
		catalog:  client,
	}
}

// SearchMovies handles POST /api/v1/movies/search
// Runs the full recommendation pipeline for one preference profile.
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SearchMoviesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body", err)
		return
	}

	if apiErr := validateRequest(&req.Preferences); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), searchTimeout)
	defer cancel()

	history := models.NewHistorySet(req.LikedMovieIDs, req.DislikedMovieIDs)

	results, err := h.searcher.Search(ctx, &req.Preferences, history)
	if err != nil {
		var failure *search.Failure
		if errors.As(err, &failure) {
			switch failure.Kind {
			case search.FailureCatalogUnavailable:
				respondError(w, r, http.StatusBadGateway, "CATALOG_UNAVAILABLE", "The movie catalog is temporarily unavailable", err)
			case search.FailureRankingUnavailable:
				respondError(w, r, http.StatusBadGateway, "RANKING_UNAVAILABLE", "The ranking service is temporarily unavailable", err)
			default:
				respondError(w, r, http.StatusInternalServerError, "SEARCH_ERROR", "Search failed", err)
			}
			return
		}
		respondError(w, r, http.StatusInternalServerError, "SEARCH_ERROR", "Search failed", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("results", len(results)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Movie search completed")

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: &models.SearchResponse{
			Count:  len(results),
			Movies: results,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// MovieByID handles GET /api/v1/movies/{id}
// Returns the enriched record for one movie.
func (h *Handler) MovieByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		respondError(w, r, http.StatusBadRequest, "INVALID_MOVIE_ID", "Invalid movie ID", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), catalogTimeout)
	defer cancel()

	start := time.Now()
	movie, err := h.catalog.GetDetail(ctx, id)
	if err != nil {
		respondError(w, r, http.StatusBadGateway, "CATALOG_UNAVAILABLE", "The movie catalog is temporarily unavailable", err)
		return
	}
	if movie == nil {
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Movie not found", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   movie,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// GenreList handles GET /api/v1/movies/genres
// Returns the catalog's genre vocabulary.
func (h *Handler) GenreList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), catalogTimeout)
	defer cancel()

	start := time.Now()
	genres, err := h.catalog.Genres(ctx)
	if err != nil {
		respondError(w, r, http.StatusBadGateway, "CATALOG_UNAVAILABLE", "The movie catalog is temporarily unavailable", err)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"genres": genres,
			"count":  len(genres),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// TitleSearch handles GET /api/v1/movies/title-search?query=...&page=N
// Free-text title lookup, bypassing the recommendation pipeline.
func (h *Handler) TitleSearch(w http.ResponseWriter, r *http.Request) {
	req := TitleSearchRequest{
		Query: r.URL.Query().Get("query"),
		Page:  1,
	}
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil {
			req.Page = parsed
		}
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), catalogTimeout)
	defer cancel()

	start := time.Now()
	resp, err := h.catalog.SearchByTitle(ctx, req.Query, req.Page)
	if err != nil {
		respondError(w, r, http.StatusBadGateway, "CATALOG_UNAVAILABLE", "The movie catalog is temporarily unavailable", err)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   resp,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
