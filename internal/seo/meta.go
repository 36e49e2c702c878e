// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds the crawler-facing parts of the site: meta tags,
// structured data, robots.txt, sitemap.xml and security.txt.
package seo

import (
	"encoding/json"
	"html/template"
	"strings"

	"github.com/olegiv/folio/internal/content"
)

// maxDescription is the longest meta description search engines display.
const maxDescription = 160

// Meta holds the SEO meta tags for a rendered page.
type Meta struct {
	Description   string
	Canonical     string
	OGTitle       string
	OGDescription string
	OGImage       string
	OGType        string
	OGURL         string
	Robots        string
	TwitterCard   string

	// Schema is JSON-LD for a <script type="application/ld+json"> block.
	Schema template.JS
}

// Page describes one crawlable URL.
type Page struct {
	Title       string
	Description string
	Path        string // absolute path, e.g. "/case-study"
	Image       string // site-relative or absolute
}

// Site holds site-wide settings.
type Site struct {
	URL       string // scheme and host without a trailing slash
	Name      string
	Indexable bool
}

// BuildMeta creates the meta tags for page.
func BuildMeta(page Page, site Site) Meta {
	desc := truncateText(page.Description, maxDescription)
	canonical := makeAbsoluteURL(page.Path, site.URL)

	meta := Meta{
		Description:   desc,
		Canonical:     canonical,
		OGTitle:       page.Title,
		OGDescription: desc,
		OGType:        "website",
		OGURL:         canonical,
		Robots:        buildRobotsDirective(!site.Indexable, !site.Indexable),
		TwitterCard:   "summary",
	}
	if page.Path != "/" && page.Path != "" {
		meta.OGType = "article"
	}
	if page.Image != "" {
		meta.OGImage = makeAbsoluteURL(page.Image, site.URL)
		meta.TwitterCard = "summary_large_image"
	}
	return meta
}

// buildRobotsDirective creates the robots meta content from noindex/nofollow flags.
func buildRobotsDirective(noIndex, noFollow bool) string {
	var parts []string

	if noIndex {
		parts = append(parts, "noindex")
	} else {
		parts = append(parts, "index")
	}

	if noFollow {
		parts = append(parts, "nofollow")
	} else {
		parts = append(parts, "follow")
	}

	return strings.Join(parts, ",")
}

// PersonSchema represents JSON-LD Person structured data.
type PersonSchema struct {
	Context    string   `json:"@context"`
	Type       string   `json:"@type"`
	Name       string   `json:"name"`
	JobTitle   string   `json:"jobTitle,omitempty"`
	URL        string   `json:"url,omitempty"`
	Email      string   `json:"email,omitempty"`
	Image      string   `json:"image,omitempty"`
	KnowsAbout []string `json:"knowsAbout,omitempty"`
	SameAs     []string `json:"sameAs,omitempty"`
}

// BuildPersonSchema describes the portfolio owner. Social links become
// sameAs entries; a mailto link becomes the email.
func BuildPersonSchema(p *content.Portfolio, site Site, image string) template.JS {
	if p == nil {
		return ""
	}
	person := PersonSchema{
		Context:    "https://schema.org",
		Type:       "Person",
		Name:       p.Profile.Name,
		JobTitle:   p.Profile.Headline,
		URL:        site.URL,
		KnowsAbout: p.Profile.FocusAreas,
	}
	if image != "" {
		person.Image = makeAbsoluteURL(image, site.URL)
	}

	links := append([]content.Link{}, p.Profile.Socials...)
	links = append(links, p.Contact.Channels...)
	seen := make(map[string]bool)
	for _, l := range links {
		if seen[l.Href] {
			continue
		}
		seen[l.Href] = true
		switch {
		case strings.HasPrefix(l.Href, "mailto:"):
			if person.Email == "" {
				person.Email = strings.TrimPrefix(l.Href, "mailto:")
			}
		case strings.HasPrefix(l.Href, "https://"), strings.HasPrefix(l.Href, "http://"):
			person.SameAs = append(person.SameAs, l.Href)
		}
	}

	return marshalJSONLD(person)
}

// marshalJSONLD marshals structured data to JSON-LD script tag content.
func marshalJSONLD(v any) template.JS {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return template.JS(data) //nolint:gosec // json.Marshal escapes <, > and &
}

// truncateText truncates text to maxLen bytes at a word boundary.
func truncateText(text string, maxLen int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= maxLen {
		return text
	}

	truncated := strings.ToValidUTF8(text[:maxLen], "")
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}

	return strings.TrimSpace(truncated) + "..."
}

// makeAbsoluteURL ensures a URL is absolute by prepending site URL if needed.
func makeAbsoluteURL(url, siteURL string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	siteURL = strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return siteURL + url
}
