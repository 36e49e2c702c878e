// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package section

// NavItem is an entry of the side navigation.
type NavItem struct {
	ID    ID
	Label string
	Icon  string
}

// RenderedNavItem is a view model for templates.
type RenderedNavItem struct {
	ID     ID
	Href   string
	Label  string
	Icon   string
	Active bool
}

// Nav is the side navigation, one entry per tracked section.
var Nav = []NavItem{
	{ID: Home, Label: "Home", Icon: "🏠"},
	{ID: Experience, Label: "XP", Icon: "💼"},
	{ID: Projects, Label: "Works", Icon: "🚀"},
	{ID: Skills, Label: "Skills", Icon: "🛠️"},
	{ID: About, Label: "Profile", Icon: "👤"},
	{ID: Contact, Label: "Connect", Icon: "✉️"},
}

// BuildNav renders the navigation with the active entry highlighted.
// An unknown active id falls back to Home.
func BuildNav(active ID) []RenderedNavItem {
	if !IsTracked(active) {
		active = Home
	}
	items := make([]RenderedNavItem, 0, len(Nav))
	for _, it := range Nav {
		items = append(items, RenderedNavItem{
			ID:     it.ID,
			Href:   "#" + string(it.ID),
			Label:  it.Label,
			Icon:   it.Icon,
			Active: it.ID == active,
		})
	}
	return items
}
