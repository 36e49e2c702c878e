// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package section

import (
	"log/slog"
	"sync"

	"github.com/olegiv/folio/internal/viewport"
)

// Tracker keeps the active section in sync with scroll events.
type Tracker struct {
	ids       []ID
	threshold float64
	regions   *Regions
	logger    *slog.Logger

	mu     sync.RWMutex
	active ID
	sub    *viewport.Subscription
}

// TrackerConfig configures a Tracker.
type TrackerConfig struct {
	// IDs are the sections to scan, in document order. Defaults to All().
	IDs []ID
	// Threshold is the activation line in pixels below the viewport top.
	// Zero or negative means DefaultThreshold.
	Threshold float64
	Regions   *Regions
	Logger    *slog.Logger
}

// NewTracker creates a tracker. The active section starts at the first id.
func NewTracker(cfg TrackerConfig) *Tracker {
	ids := cfg.IDs
	if len(ids) == 0 {
		ids = All()
	}
	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	regions := cfg.Regions
	if regions == nil {
		regions = NewRegions()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Tracker{
		ids:       ids,
		threshold: threshold,
		regions:   regions,
		logger:    logger,
		active:    ids[0],
	}
}

// Mount subscribes the tracker to scroll events on bus and recomputes the
// active section for the bus' current offset. Mounting an already mounted
// tracker is a no-op.
func (t *Tracker) Mount(bus *viewport.Bus) {
	t.mu.Lock()
	if t.sub != nil {
		t.mu.Unlock()
		return
	}
	t.sub = bus.OnScroll(func(ev viewport.ScrollEvent) {
		t.Recompute(ev.Offset)
	})
	t.mu.Unlock()

	t.Recompute(bus.Offset())
}

// Unmount releases the scroll subscription.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	sub := t.sub
	t.sub = nil
	t.mu.Unlock()

	sub.Release()
}

// Recompute re-derives the active section for a scroll offset and returns it.
func (t *Tracker) Recompute(scrollOffset float64) ID {
	next := Resolve(t.ids, t.threshold, t.regions.Lookup(scrollOffset))

	t.mu.Lock()
	prev := t.active
	t.active = next
	t.mu.Unlock()

	if prev != next {
		t.logger.Debug("active section changed", "from", prev, "to", next, "offset", scrollOffset)
	}
	return next
}

// Active returns the current section.
func (t *Tracker) Active() ID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active
}

// Threshold returns the activation threshold in pixels.
func (t *Tracker) Threshold() float64 {
	return t.threshold
}
