// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package page ties the viewport bus, the section tracker and the dot grid
// together into the state of one landing page.
package page

import (
	"log/slog"
	"sync"

	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/section"
	"github.com/olegiv/folio/internal/viewport"
)

// State is what a page render needs to know.
type State struct {
	Active      section.ID        `json:"active"`
	OverlayOpen bool              `json:"overlay_open"`
	Viewport    viewport.Viewport `json:"viewport"`
}

// Container owns the page-wide subscriptions. The case-study overlay is a
// flag layered over the page: opening it never touches the tracker or grid.
type Container struct {
	bus      *viewport.Bus
	tracker  *section.Tracker
	renderer *dotgrid.Renderer
	surface  dotgrid.Surface
	logger   *slog.Logger

	mu          sync.Mutex
	mounted     bool
	overlayOpen bool
}

// Config configures a Container.
type Config struct {
	Tracker  *section.Tracker
	Renderer *dotgrid.Renderer
	// Surface may be nil, in which case the page has no backdrop.
	Surface dotgrid.Surface
	Logger  *slog.Logger
}

// NewContainer creates an unmounted container.
func NewContainer(cfg Config) *Container {
	tracker := cfg.Tracker
	if tracker == nil {
		tracker = section.NewTracker(section.TrackerConfig{})
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Container{
		tracker:  tracker,
		renderer: cfg.Renderer,
		surface:  cfg.Surface,
		logger:   logger,
	}
}

// Mount creates the bus for the initial viewport and registers the tracker
// and grid subscriptions. Mounting twice is a no-op.
func (c *Container) Mount(initial viewport.Viewport) *viewport.Bus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mounted {
		return c.bus
	}
	c.bus = viewport.NewBus(initial)
	c.tracker.Mount(c.bus)
	if c.renderer != nil {
		c.renderer.Mount(c.bus, c.surface)
	}
	c.mounted = true

	c.logger.Debug("page mounted", "width", initial.Width, "height", initial.Height)
	return c.bus
}

// Unmount releases every subscription the container registered.
func (c *Container) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mounted {
		return
	}
	c.tracker.Unmount()
	if c.renderer != nil {
		c.renderer.Unmount()
	}
	c.mounted = false
	c.overlayOpen = false
}

// Bus returns the mounted bus, or nil before Mount.
func (c *Container) Bus() *viewport.Bus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bus
}

// Tracker returns the section tracker.
func (c *Container) Tracker() *section.Tracker {
	return c.tracker
}

// OpenCaseStudy shows the case-study overlay.
func (c *Container) OpenCaseStudy() {
	c.setOverlay(true)
}

// CloseCaseStudy hides the case-study overlay.
func (c *Container) CloseCaseStudy() {
	c.setOverlay(false)
}

// OverlayOpen reports whether the case-study overlay is shown.
func (c *Container) OverlayOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overlayOpen
}

func (c *Container) setOverlay(open bool) {
	c.mu.Lock()
	changed := c.overlayOpen != open
	c.overlayOpen = open
	c.mu.Unlock()

	if changed {
		c.logger.Debug("case study overlay toggled", "open", open)
	}
}

// Snapshot returns the current render state.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	bus := c.bus
	open := c.overlayOpen
	c.mu.Unlock()

	var vp viewport.Viewport
	if bus != nil {
		vp = bus.Size()
	}
	return State{
		Active:      c.tracker.Active(),
		OverlayOpen: open,
		Viewport:    vp,
	}
}
