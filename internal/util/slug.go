// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides small helpers shared by the content, media and
// handler packages: anchor slugs, asset paths and client addresses.
package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented letters and drops the combining marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a title to an anchor-safe slug: lowercase ASCII letters
// and digits separated by single hyphens. Accents are folded ("Café" ->
// "cafe"); anything else that is not a letter or digit becomes a separator.
func Slugify(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '&' || r == '+':
			// "R&D" reads as one word.
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

// IsValidSlug reports whether s is already in Slugify's output form.
func IsValidSlug(s string) bool {
	return s != "" && Slugify(s) == s
}

// Anchor builds a fragment id from a prefix and a title, e.g.
// Anchor("project", "Retail Sales Analysis (SQL)") = "project-retail-sales-analysis-sql".
// An empty prefix yields the bare slug.
func Anchor(prefix, title string) string {
	slug := Slugify(title)
	switch {
	case prefix == "":
		return slug
	case slug == "":
		return prefix
	default:
		return prefix + "-" + slug
	}
}
