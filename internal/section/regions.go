// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package section

import (
	"sync"
)

// Regions maps section ids to their document top offsets.
// Offsets are registered once when a section is laid out and read on
// every scroll tick without re-querying the page.
type Regions struct {
	mu   sync.RWMutex
	tops map[ID]float64
}

// NewRegions creates an empty registry.
func NewRegions() *Regions {
	return &Regions{tops: make(map[ID]float64)}
}

// Register records the document top offset of a section, replacing any
// previous value.
func (r *Regions) Register(id ID, docTop float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tops[id] = docTop
}

// Lookup returns a LookupFunc that reports section tops relative to the
// viewport at the given scroll offset.
func (r *Regions) Lookup(scrollOffset float64) LookupFunc {
	return func(id ID) (float64, bool) {
		r.mu.RLock()
		docTop, ok := r.tops[id]
		r.mu.RUnlock()
		if !ok {
			return 0, false
		}
		return docTop - scrollOffset, true
	}
}
