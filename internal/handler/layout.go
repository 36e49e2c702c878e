// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/section"
)

// Layout is the page geometry the browser script needs to track sections
// and draw the grid the same way the server does.
type Layout struct {
	Sections  []section.ID `json:"sections"`
	Anchors   []section.ID `json:"anchors"`
	Threshold float64      `json:"threshold"`
	Grid      GridLayout   `json:"grid"`
}

// GridLayout is the dot grid configuration in CSS terms.
type GridLayout struct {
	Spacing float64 `json:"spacing"`
	Radius  float64 `json:"radius"`
	Color   string  `json:"color"`
}

// NewLayout builds the layout for the given tracker threshold and grid.
// A threshold of zero or less means section.DefaultThreshold, as it does
// for the tracker.
func NewLayout(threshold float64, grid dotgrid.Config) Layout {
	if threshold <= 0 {
		threshold = section.DefaultThreshold
	}
	return Layout{
		Sections:  section.All(),
		Anchors:   section.Anchors(),
		Threshold: threshold,
		Grid: GridLayout{
			Spacing: grid.Spacing,
			Radius:  grid.Radius,
			Color:   grid.CSSColor(),
		},
	}
}

// LayoutHandler serves GET /api/layout.
type LayoutHandler struct {
	layout Layout
}

// NewLayoutHandler creates a LayoutHandler.
func NewLayoutHandler(layout Layout) *LayoutHandler {
	return &LayoutHandler{layout: layout}
}

// Get writes the layout as JSON.
func (h *LayoutHandler) Get(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.layout)
}
