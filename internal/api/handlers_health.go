// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/TheRealManual/SceneItBackend/internal/models"
)

// HealthLive handles GET /api/v1/health/live
// Liveness: the process is up and serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"status": "alive"},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles GET /api/v1/health/ready
// Readiness: the catalog answers. The genre vocabulary is the cheapest
// authenticated call and is served from cache for most of each day.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.catalog.Genres(ctx); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Catalog unreachable", err)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"status": "ready"},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
