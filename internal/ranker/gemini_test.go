// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package ranker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TheRealManual/SceneItBackend/internal/config"
)

func testGeminiClient(t *testing.T, handler http.Handler) *GeminiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGeminiClient(&config.GeminiConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash-exp",
		Timeout: 5 * time.Second,
	})
}

func TestGeminiGenerate(t *testing.T) {
	client := testGeminiClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/v1beta/models/gemini-2.0-flash-exp:generateContent" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if key := r.Header.Get("x-goog-api-key"); key != "test-key" {
			t.Errorf("api key header = %q", key)
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[]"}]}}]}`))
	}))

	text, err := client.Generate(context.Background(), "rank these")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if text != "[]" {
		t.Errorf("text = %q", text)
	}
}

func TestGeminiGenerateServerError(t *testing.T) {
	client := testGeminiClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))

	_, err := client.Generate(context.Background(), "rank these")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}
}

func TestGeminiGenerateConnectionRefused(t *testing.T) {
	client := NewGeminiClient(&config.GeminiConfig{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash-exp",
		Timeout: time.Second,
	})

	_, err := client.Generate(context.Background(), "rank these")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}
}

func TestGeminiGenerateEmptyCandidates(t *testing.T) {
	client := testGeminiClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))

	_, err := client.Generate(context.Background(), "rank these")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got: %v", err)
	}
}
