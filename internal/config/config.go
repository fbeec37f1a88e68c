// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

// Package config loads and validates the SceneIt backend configuration.
//
// Configuration is layered with koanf: built-in defaults, then an optional
// YAML config file, then environment variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the SceneIt backend.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	TMDB    TMDBConfig    `koanf:"tmdb"`
	Gemini  GeminiConfig  `koanf:"gemini"`
	Cache   CacheConfig   `koanf:"cache"`
	Search  SearchConfig  `koanf:"search"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitPerMin int           `koanf:"rate_limit_per_min"`
}

// TMDBConfig holds settings for the external movie catalog service.
type TMDBConfig struct {
	BaseURL     string        `koanf:"base_url"`
	AccessToken string        `koanf:"access_token"`
	// Language is the locale sent on discovery and vocabulary requests.
	Language string `koanf:"language"`
	Timeout  time.Duration `koanf:"timeout"`
	// RequestsPerSecond throttles outbound calls; TMDB tolerates ~4 rps.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	// DiscoverPages is the fixed number of discovery pages scanned per search.
	DiscoverPages int `koanf:"discover_pages"`
	// DetailConcurrency bounds the parallel per-item detail lookups.
	DetailConcurrency int `koanf:"detail_concurrency"`
}

// GeminiConfig holds settings for the generative ranking service.
type GeminiConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Model   string        `koanf:"model"`
	Timeout time.Duration `koanf:"timeout"`
}

// CacheConfig holds TTLs for the in-process detail cache.
type CacheConfig struct {
	DetailTTL time.Duration `koanf:"detail_ttl"`
	GenreTTL  time.Duration `koanf:"genre_ttl"`
}

// SearchConfig holds the ranking pipeline constants.
type SearchConfig struct {
	// MaxAIPool caps the candidate pool sent to the ranking service.
	MaxAIPool int `koanf:"max_ai_pool"`
	// MaxResults caps the final result list for both ranking branches.
	MaxResults int `koanf:"max_results"`
	// MinMatchScore drops AI-ranked results below this confidence.
	MinMatchScore float64 `koanf:"min_match_score"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// defaultConfig returns a Config with all defaults applied. Defaults are
// loaded first, then overridden by config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    90 * time.Second, // ranking calls can be slow
			ShutdownTimeout: 15 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitPerMin: 120,
		},
		TMDB: TMDBConfig{
			BaseURL:           "https://api.themoviedb.org/3",
			AccessToken:       "",
			Language:          "en-US",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 4,
			DiscoverPages:     10,
			DetailConcurrency: 8,
		},
		Gemini: GeminiConfig{
			BaseURL: "https://generativelanguage.googleapis.com",
			APIKey:  "",
			Model:   "gemini-2.0-flash-exp",
			Timeout: 60 * time.Second,
		},
		Cache: CacheConfig{
			DetailTTL: time.Hour,
			GenreTTL:  24 * time.Hour,
		},
		Search: SearchConfig{
			MaxAIPool:     60,
			MaxResults:    30,
			MinMatchScore: 0.4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the configuration for values that would break the
// pipeline at runtime.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url is required")
	}
	if c.TMDB.AccessToken == "" {
		return fmt.Errorf("tmdb.access_token is required")
	}
	if c.TMDB.DiscoverPages < 1 {
		return fmt.Errorf("tmdb.discover_pages must be at least 1, got %d", c.TMDB.DiscoverPages)
	}
	if c.TMDB.DetailConcurrency < 1 {
		return fmt.Errorf("tmdb.detail_concurrency must be at least 1, got %d", c.TMDB.DetailConcurrency)
	}
	if c.TMDB.RequestsPerSecond <= 0 {
		return fmt.Errorf("tmdb.requests_per_second must be positive, got %f", c.TMDB.RequestsPerSecond)
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini.model is required")
	}
	if c.Search.MaxAIPool < 1 {
		return fmt.Errorf("search.max_ai_pool must be at least 1, got %d", c.Search.MaxAIPool)
	}
	if c.Search.MaxResults < 1 {
		return fmt.Errorf("search.max_results must be at least 1, got %d", c.Search.MaxResults)
	}
	if c.Search.MinMatchScore < 0 || c.Search.MinMatchScore > 1 {
		return fmt.Errorf("search.min_match_score must be in [0,1], got %f", c.Search.MinMatchScore)
	}
	if c.Cache.DetailTTL <= 0 || c.Cache.GenreTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	return nil
}
