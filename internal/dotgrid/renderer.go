// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package dotgrid

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/olegiv/folio/internal/viewport"
)

// Renderer paints the grid onto a surface and keeps it painted across
// viewport resizes while mounted.
type Renderer struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	surface Surface
	sub     *viewport.Subscription
}

// NewRenderer creates a renderer for cfg.
func NewRenderer(cfg Config, logger *slog.Logger) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{cfg: cfg, logger: logger}, nil
}

// Config returns the grid configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Paint repaints surface from scratch for vp. A nil surface is not an
// error: the page simply has no backdrop.
func (r *Renderer) Paint(surface Surface, vp viewport.Viewport) error {
	if surface == nil {
		return nil
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		// Nothing to draw on; keep whatever the surface had.
		return nil
	}

	if err := surface.Resize(vp.Width, vp.Height); err != nil {
		return fmt.Errorf("resizing surface to %dx%d: %w", vp.Width, vp.Height, err)
	}
	surface.Clear()
	surface.SetColor(r.cfg.Color)

	// Dots never overlap, so one fill for the whole path paints the same
	// pixels as one fill per dot.
	for _, p := range r.cfg.Points(vp.Width, vp.Height) {
		surface.DrawCircle(p.X, p.Y, r.cfg.Radius)
	}
	if err := surface.Fill(); err != nil {
		return fmt.Errorf("filling dots: %w", err)
	}
	return nil
}

// Mount paints surface for the bus' current viewport and repaints it on
// every resize until Unmount. Mounting twice is a no-op.
func (r *Renderer) Mount(bus *viewport.Bus, surface Surface) {
	if surface == nil {
		return
	}

	r.mu.Lock()
	if r.sub != nil {
		r.mu.Unlock()
		return
	}
	r.surface = surface
	r.sub = bus.OnResize(func(ev viewport.ResizeEvent) {
		r.repaint(ev.Viewport())
	})
	r.mu.Unlock()

	r.repaint(bus.Size())
}

// Unmount releases the resize subscription.
func (r *Renderer) Unmount() {
	r.mu.Lock()
	sub := r.sub
	r.sub = nil
	r.surface = nil
	r.mu.Unlock()

	sub.Release()
}

func (r *Renderer) repaint(vp viewport.Viewport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.surface == nil {
		return
	}
	if err := r.Paint(r.surface, vp); err != nil {
		// Best effort: a failed repaint leaves the page without a backdrop.
		r.logger.Warn("dot grid repaint failed", "error", err, "width", vp.Width, "height", vp.Height)
	}
}
