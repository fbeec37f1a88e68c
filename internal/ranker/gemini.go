// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

/*
gemini.go - Google Generative Language API Client

This file implements the REST client for the Gemini generateContent
endpoint. Only single-turn text generation is used; the caller supplies
a complete prompt and receives the first candidate's text.

API Reference: https://ai.google.dev/api/generate-content
*/

package ranker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/TheRealManual/SceneItBackend/internal/config"
)

// ErrMalformed marks a ranking response that arrived but does not match
// the expected contract. Callers treat it as "no good matches".
var ErrMalformed = errors.New("ranking response malformed")

// ErrUnavailable marks an infrastructure failure reaching the ranking
// service. Callers surface it; it is never silently downgraded.
var ErrUnavailable = errors.New("ranking service unavailable")

// GenerativeClient is the minimal surface the AI ranking branch needs
// from a text-generation service.
type GenerativeClient interface {
	// Generate runs one single-turn completion and returns the raw text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Ensure GeminiClient implements GenerativeClient
var _ GenerativeClient = (*GeminiClient)(nil)

// GeminiClient calls the Google Generative Language REST API.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiClient creates a Gemini API client from configuration.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	return &GeminiClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate runs one completion. Transport failures and non-200 statuses
// wrap ErrUnavailable; a 200 envelope carrying no text wraps ErrMalformed.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %v: %w", err, ErrUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, readErr := io.ReadAll(io.LimitReader(resp.Body, 512))
		if readErr != nil {
			snippet = []byte("(failed to read body)")
		}
		return "", fmt.Errorf("gemini returned status %d: %s: %w", resp.StatusCode, snippet, ErrUnavailable)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini decode response: %v: %w", err, ErrMalformed)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response carries no candidate text: %w", ErrMalformed)
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
