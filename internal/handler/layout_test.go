// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/section"
)

func TestLayoutHandler_Get(t *testing.T) {
	h := NewLayoutHandler(NewLayout(250, dotgrid.DefaultConfig()))

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/api/layout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got Layout
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding layout: %v", err)
	}
	if got.Threshold != 250 {
		t.Errorf("Threshold = %v, want 250", got.Threshold)
	}
	if len(got.Sections) != len(section.All()) || got.Sections[0] != section.Home {
		t.Errorf("Sections = %v", got.Sections)
	}
	for _, id := range got.Sections {
		if id == section.Methodology {
			t.Error("methodology must not be tracked")
		}
	}
	if len(got.Anchors) <= len(got.Sections) {
		t.Errorf("Anchors = %v, want tracked sections plus methodology", got.Anchors)
	}
	if got.Grid.Spacing != 18 || got.Grid.Radius != 0.8 {
		t.Errorf("Grid = %+v, want spacing 18 radius 0.8", got.Grid)
	}
	if got.Grid.Color != "rgba(71, 85, 105, 0.25)" {
		t.Errorf("Grid.Color = %q", got.Grid.Color)
	}
}

func TestNewLayout_ZeroThresholdUsesDefault(t *testing.T) {
	for _, threshold := range []float64{0, -5} {
		if got := NewLayout(threshold, dotgrid.DefaultConfig()).Threshold; got != section.DefaultThreshold {
			t.Errorf("NewLayout(%v).Threshold = %v, want %v", threshold, got, section.DefaultThreshold)
		}
	}
}
