// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TheRealManual/SceneItBackend/internal/config"
	"github.com/TheRealManual/SceneItBackend/internal/middleware"
)

// NewRouter assembles the HTTP surface.
func NewRouter(handler *Handler, cfg *config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "ETag"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health endpoints get a permissive limit so monitors can poll freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(1000, time.Minute))
		r.Get("/live", handler.HealthLive)
		r.Get("/ready", handler.HealthReady)
	})

	r.Route("/api/v1/movies", func(r chi.Router) {
		rateLimit := cfg.RateLimitPerMin
		if rateLimit <= 0 {
			rateLimit = 60
		}
		r.Use(httprate.LimitByIP(rateLimit, time.Minute))
		r.Use(middleware.PrometheusMetrics)

		r.Post("/search", handler.SearchMovies)
		r.Get("/genres", handler.GenreList)
		r.Get("/title-search", handler.TitleSearch)
		r.Get("/{id}", handler.MovieByID)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
