// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package section tracks which page section the visitor is currently viewing.
package section

// ID identifies a tracked page section.
type ID string

// Tracked sections, in document order.
const (
	Home       ID = "home"
	Experience ID = "experience"
	Projects   ID = "projects"
	Skills     ID = "skills"
	About      ID = "about"
	Contact    ID = "contact"
)

// Methodology is anchored on the page but never tracked.
const Methodology ID = "methodology"

// DefaultThreshold is the distance from the viewport top, in pixels, at or
// above which a section counts as being viewed.
const DefaultThreshold = 250.0

// All returns the tracked sections in document order.
func All() []ID {
	return []ID{Home, Experience, Projects, Skills, About, Contact}
}

// Anchors returns every anchored section of the page, tracked or not.
func Anchors() []ID {
	return []ID{Home, Experience, Projects, Skills, About, Methodology, Contact}
}

// IsTracked reports whether id is one of the tracked sections.
func IsTracked(id ID) bool {
	for _, s := range All() {
		if s == id {
			return true
		}
	}
	return false
}

// LookupFunc returns the top offset of a section relative to the viewport.
// ok is false when the section is not mounted.
type LookupFunc func(id ID) (top float64, ok bool)

// Resolve scans ids in order and returns the last one whose top is at or
// above threshold. Unmounted sections are skipped. When nothing matches, the
// first id is returned.
func Resolve(ids []ID, threshold float64, lookup LookupFunc) ID {
	if len(ids) == 0 {
		return Home
	}

	current := ids[0]
	if lookup == nil {
		return current
	}
	for _, id := range ids {
		top, ok := lookup(id)
		if !ok {
			continue
		}
		if top <= threshold {
			current = id
		}
	}
	return current
}
