// SceneIt - AI-Assisted Movie Discovery Backend
// Copyright 2026 TheRealManual
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheRealManual/SceneItBackend

package validation

import (
	"strings"
	"testing"

	"github.com/TheRealManual/SceneItBackend/internal/models"
)

func validProfile() models.PreferenceProfile {
	return models.PreferenceProfile{
		YearRange:       models.IntRange{2000, 2020},
		RuntimeRange:    models.IntRange{60, 180},
		RatingRange:     models.FloatRange{6, 10},
		AgeRating:       models.AnyValue,
		Language:        models.AnyValue,
		MoodIntensity:   5,
		HumorLevel:      5,
		ViolenceLevel:   5,
		RomanceLevel:    5,
		ComplexityLevel: 5,
	}
}

func TestValidateProfileOK(t *testing.T) {
	p := validProfile()
	if err := ValidateStruct(&p); err != nil {
		t.Errorf("expected valid profile, got %v", err)
	}
}

func TestValidateProfileErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.PreferenceProfile)
		wantField string
	}{
		{
			name:      "inverted year range",
			mutate:    func(p *models.PreferenceProfile) { p.YearRange = models.IntRange{2020, 2000} },
			wantField: "YearRange",
		},
		{
			name:      "inverted rating range",
			mutate:    func(p *models.PreferenceProfile) { p.RatingRange = models.FloatRange{9, 7} },
			wantField: "RatingRange",
		},
		{
			name:      "slider below range",
			mutate:    func(p *models.PreferenceProfile) { p.MoodIntensity = 0 },
			wantField: "MoodIntensity",
		},
		{
			name:      "slider above range",
			mutate:    func(p *models.PreferenceProfile) { p.ComplexityLevel = 11 },
			wantField: "ComplexityLevel",
		},
		{
			name:      "genre affinity out of range",
			mutate:    func(p *models.PreferenceProfile) { p.Genres = map[string]int{"Horror": 12} },
			wantField: "Genres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			err := ValidateStruct(&p)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("expected error mentioning %s, got %q", tt.wantField, err.Error())
			}
		})
	}
}

func TestToAPIErrorSingle(t *testing.T) {
	p := validProfile()
	p.HumorLevel = 0

	err := ValidateStruct(&p)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "HumorLevel" {
		t.Errorf("Details.field = %v, want HumorLevel", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultiple(t *testing.T) {
	p := validProfile()
	p.HumorLevel = 0
	p.MoodIntensity = 99

	err := ValidateStruct(&p)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("expected fields detail for multiple errors")
	}
}
