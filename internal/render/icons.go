// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"fmt"
	"html/template"
)

// iconPaths holds stroke-only 24x24 outlines keyed by the names used in the
// portfolio content. Unknown names fall back to "dot".
var iconPaths = map[string]string{
	"home":      `<path d="M3 10.5 12 3l9 7.5"/><path d="M5 9.5V21h14V9.5"/>`,
	"briefcase": `<rect x="3" y="7" width="18" height="13" rx="2"/><path d="M8 7V5a2 2 0 0 1 2-2h4a2 2 0 0 1 2 2v2"/>`,
	"sparkles":  `<path d="M12 3l1.8 5.2L19 10l-5.2 1.8L12 17l-1.8-5.2L5 10l5.2-1.8z"/>`,
	"chart":     `<path d="M3 3v18h18"/><path d="M7 15l4-4 3 3 5-6"/>`,
	"database":  `<ellipse cx="12" cy="5" rx="8" ry="3"/><path d="M4 5v14c0 1.7 3.6 3 8 3s8-1.3 8-3V5"/><path d="M4 12c0 1.7 3.6 3 8 3s8-1.3 8-3"/>`,
	"check":     `<circle cx="12" cy="12" r="9"/><path d="m8 12 3 3 5-6"/>`,
	"alert":     `<circle cx="12" cy="12" r="9"/><path d="M12 7v6"/><path d="M12 17h.01"/>`,
	"email":     `<rect x="3" y="5" width="18" height="14" rx="2"/><path d="m3 7 9 6 9-6"/>`,
	"linkedin":  `<rect x="3" y="3" width="18" height="18" rx="2"/><path d="M8 10v7"/><path d="M8 7h.01"/><path d="M12 17v-4a2 2 0 0 1 4 0v4"/><path d="M12 10v7"/>`,
	"github":    `<path d="M9 19c-4 1.5-4-2-6-2.5"/><path d="M15 21v-3.5a3 3 0 0 0-.8-2.3c2.8-.3 5.8-1.4 5.8-6.2a4.8 4.8 0 0 0-1.3-3.3 4.5 4.5 0 0 0-.1-3.3s-1-.3-3.4 1.3a11.6 11.6 0 0 0-6 0C5.6 2.1 4.6 2.4 4.6 2.4a4.5 4.5 0 0 0-.1 3.3A4.8 4.8 0 0 0 3.2 9c0 4.8 3 5.9 5.8 6.2a3 3 0 0 0-.8 2.3V21"/>`,
	"arrow":     `<path d="M19 12H5"/><path d="m12 19-7-7 7-7"/>`,
	"download":  `<path d="M12 3v12"/><path d="m7 10 5 5 5-5"/><path d="M5 21h14"/>`,
	"code":      `<path d="m16 18 6-6-6-6"/><path d="m8 6-6 6 6 6"/>`,
	"dot":       `<circle cx="12" cy="12" r="3"/>`,
}

// icon returns an inline SVG for name at the given pixel size.
func icon(name string, size int) template.HTML {
	p, ok := iconPaths[name]
	if !ok {
		p = iconPaths["dot"]
	}
	//nolint:gosec // paths are compile-time constants
	return template.HTML(fmt.Sprintf(
		`<svg class="icon" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">%s</svg>`,
		size, size, p))
}
