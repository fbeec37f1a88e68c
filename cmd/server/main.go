// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

// Package main is the entry point for the SceneIt backend server.
//
// SceneIt recommends movies against a per-request preference profile. The
// server composes a TMDB catalog client (rate-limited, circuit-broken,
// TTL-cached), a Gemini-backed relevance ranker with a deterministic
// heuristic fallback branch, and the search pipeline tying them together,
// exposed over a chi HTTP API.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables with the SCENEIT_ prefix
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// Two secrets are required:
//   - SCENEIT_TMDB_ACCESS_TOKEN: TMDB v4 API read access token
//   - SCENEIT_GEMINI_API_KEY: Google Generative Language API key
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections and waits for in-flight requests up to the
// configured shutdown timeout.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/TheRealManual/SceneItBackend/internal/api"
	"github.com/TheRealManual/SceneItBackend/internal/cache"
	"github.com/TheRealManual/SceneItBackend/internal/catalog"
	"github.com/TheRealManual/SceneItBackend/internal/config"
	"github.com/TheRealManual/SceneItBackend/internal/logging"
	"github.com/TheRealManual/SceneItBackend/internal/ranker"
	"github.com/TheRealManual/SceneItBackend/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	logging.Info().
		Str("tmdb_url", cfg.TMDB.BaseURL).
		Str("gemini_model", cfg.Gemini.Model).
		Int("discover_pages", cfg.TMDB.DiscoverPages).
		Msg("Configuration loaded")

	// Catalog client stack: raw HTTP -> circuit breaker -> TTL cache.
	store := cache.New(cfg.Cache.DetailTTL)
	tmdbClient := catalog.NewCachedClient(
		catalog.NewCircuitBreakerClient(catalog.NewTMDBClient(&cfg.TMDB)),
		store,
		&cfg.Cache,
	)

	gemini := ranker.NewGeminiClient(&cfg.Gemini)
	rk := ranker.New(gemini, &cfg.Search)

	searchService := search.NewService(tmdbClient, rk, &cfg.TMDB)

	handler := api.NewHandler(searchService, tmdbClient)
	router := api.NewRouter(handler, &cfg.Server)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown incomplete")
	}

	logging.Info().Msg("Server stopped")
}
