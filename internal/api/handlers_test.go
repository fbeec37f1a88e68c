// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/TheRealManual/SceneItBackend/internal/catalog"
	"github.com/TheRealManual/SceneItBackend/internal/config"
	"github.com/TheRealManual/SceneItBackend/internal/models"
	"github.com/TheRealManual/SceneItBackend/internal/models/tmdb"
	"github.com/TheRealManual/SceneItBackend/internal/search"
)

// fakeSearcher records the last search call and returns scripted output.
type fakeSearcher struct {
	results []models.RankedResult
	err     error

	gotProfile *models.PreferenceProfile
	gotHistory models.HistorySet
}

func (f *fakeSearcher) Search(ctx context.Context, profile *models.PreferenceProfile, history models.HistorySet) ([]models.RankedResult, error) {
	f.gotProfile = profile
	f.gotHistory = history
	return f.results, f.err
}

// fakeClient is a minimal catalog.Client for handler tests.
type fakeClient struct {
	movie     *models.Movie
	detailErr error
	genres    []models.Genre
	genresErr error
	titles    *tmdb.DiscoverResponse
}

func (f *fakeClient) Discover(ctx context.Context, query catalog.DiscoverQuery, page int) (*tmdb.DiscoverResponse, error) {
	return &tmdb.DiscoverResponse{Page: page}, nil
}

func (f *fakeClient) GetDetail(ctx context.Context, id int) (*models.Movie, error) {
	return f.movie, f.detailErr
}

func (f *fakeClient) Genres(ctx context.Context) ([]models.Genre, error) {
	return f.genres, f.genresErr
}

func (f *fakeClient) SearchByTitle(ctx context.Context, query string, page int) (*tmdb.DiscoverResponse, error) {
	if f.titles != nil {
		return f.titles, nil
	}
	return &tmdb.DiscoverResponse{Page: page}, nil
}

func testRouter(searcher Searcher, client catalog.Client) http.Handler {
	handler := NewHandler(searcher, client)
	return NewRouter(handler, &config.ServerConfig{
		CORSOrigins:     []string{"*"},
		RateLimitPerMin: 10000,
	})
}

func validSearchBody() string {
	return `{
		"preferences": {
			"description": "",
			"yearRange": [1990, 2024],
			"runtimeRange": [60, 180],
			"ratingRange": [5.0, 10.0],
			"ageRating": "Any",
			"language": "Any",
			"moodIntensity": 5,
			"humorLevel": 5,
			"violenceLevel": 5,
			"romanceLevel": 5,
			"complexityLevel": 5
		},
		"likedMovieIds": [550],
		"dislikedMovieIds": [603]
	}`
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) *models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return &resp
}

func TestSearchMoviesSuccess(t *testing.T) {
	searcher := &fakeSearcher{results: []models.RankedResult{
		{Movie: models.Movie{TmdbID: 1, Title: "First"}, MatchScore: 0.9, MatchReason: "fits"},
	}}
	router := testRouter(searcher, &fakeClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies/search", strings.NewReader(validSearchBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	resp := decodeResponse(t, rec)
	if resp.Status != "success" {
		t.Errorf("Status = %q", resp.Status)
	}

	// History must merge liked and disliked ids.
	for _, id := range []int{550, 603} {
		if !searcher.gotHistory.Contains(id) {
			t.Errorf("history missing id %d", id)
		}
	}
}

func TestSearchMoviesEmptyResultIsSuccess(t *testing.T) {
	searcher := &fakeSearcher{results: []models.RankedResult{}}
	router := testRouter(searcher, &fakeClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies/search", strings.NewReader(validSearchBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("empty result must be 200, got %d", rec.Code)
	}

	var payload struct {
		Data models.SearchResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Data.Count != 0 {
		t.Errorf("Count = %d, want 0", payload.Data.Count)
	}
}

func TestSearchMoviesInvalidJSON(t *testing.T) {
	router := testRouter(&fakeSearcher{}, &fakeClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies/search", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Error == nil || resp.Error.Code != "INVALID_JSON" {
		t.Errorf("unexpected error payload: %+v", resp.Error)
	}
}

func TestSearchMoviesValidationError(t *testing.T) {
	body := strings.Replace(validSearchBody(), "[1990, 2024]", "[2024, 1990]", 1)
	router := testRouter(&fakeSearcher{}, &fakeClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("inverted range must be 400, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("unexpected error payload: %+v", resp.Error)
	}
}

func TestSearchMoviesFailureMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "catalog unavailable",
			err:      search.NewFailure(search.FailureCatalogUnavailable, errors.New("status 500")),
			wantCode: "CATALOG_UNAVAILABLE",
		},
		{
			name:     "ranking unavailable",
			err:      search.NewFailure(search.FailureRankingUnavailable, errors.New("timeout")),
			wantCode: "RANKING_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := testRouter(&fakeSearcher{err: tt.err}, &fakeClient{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/movies/search", strings.NewReader(validSearchBody()))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadGateway {
				t.Fatalf("status = %d, want 502", rec.Code)
			}
			resp := decodeResponse(t, rec)
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %+v, want %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestMovieByID(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		client     *fakeClient
		wantStatus int
		wantCode   string
	}{
		{
			name:       "found",
			path:       "/api/v1/movies/550",
			client:     &fakeClient{movie: &models.Movie{TmdbID: 550, Title: "Fight Club"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "absent upstream",
			path:       "/api/v1/movies/99999999",
			client:     &fakeClient{},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "non-numeric id",
			path:       "/api/v1/movies/abc",
			client:     &fakeClient{},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_MOVIE_ID",
		},
		{
			name:       "catalog down",
			path:       "/api/v1/movies/550",
			client:     &fakeClient{detailErr: errors.New("status 503")},
			wantStatus: http.StatusBadGateway,
			wantCode:   "CATALOG_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := testRouter(&fakeSearcher{}, tt.client)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode != "" {
				resp := decodeResponse(t, rec)
				if resp.Error == nil || resp.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
				}
			}
		})
	}
}

func TestGenreList(t *testing.T) {
	router := testRouter(&fakeSearcher{}, &fakeClient{
		genres: []models.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/genres", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Action")) {
		t.Errorf("genres missing from body: %s", rec.Body.String())
	}
}

func TestTitleSearchRequiresQuery(t *testing.T) {
	router := testRouter(&fakeSearcher{}, &fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/title-search", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing query must be 400, got %d", rec.Code)
	}
}

func TestTitleSearch(t *testing.T) {
	router := testRouter(&fakeSearcher{}, &fakeClient{
		titles: &tmdb.DiscoverResponse{
			Page:         1,
			Results:      []tmdb.MovieSummary{{ID: 603, Title: "The Matrix"}},
			TotalPages:   1,
			TotalResults: 1,
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/title-search?query=matrix", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("The Matrix")) {
		t.Errorf("results missing: %s", rec.Body.String())
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := testRouter(&fakeSearcher{}, &fakeClient{genres: []models.Genre{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/genres", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestResponseMetadataEchoesRequestID(t *testing.T) {
	router := testRouter(&fakeSearcher{}, &fakeClient{genres: []models.Genre{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/genres", nil)
	req.Header.Set("X-Request-ID", "trace-me-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp := decodeResponse(t, rec)
	if resp.Metadata.RequestID != "trace-me-42" {
		t.Errorf("metadata request_id = %q, want %q", resp.Metadata.RequestID, "trace-me-42")
	}

	// Error responses carry it too.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/movies/not-a-number", nil)
	req.Header.Set("X-Request-ID", "trace-me-43")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp = decodeResponse(t, rec)
	if resp.Metadata.RequestID != "trace-me-43" {
		t.Errorf("error metadata request_id = %q, want %q", resp.Metadata.RequestID, "trace-me-43")
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := testRouter(&fakeSearcher{}, &fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("metrics endpoint status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_") {
		t.Error("expected Prometheus exposition output")
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter(&fakeSearcher{}, &fakeClient{genres: []models.Genre{{ID: 28, Name: "Action"}}})

	for _, path := range []string{"/api/v1/health/live", "/api/v1/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, rec.Code)
		}
	}
}

func TestHealthReadyCatalogDown(t *testing.T) {
	router := testRouter(&fakeSearcher{}, &fakeClient{genresErr: fmt.Errorf("tmdb genres returned status 500")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
