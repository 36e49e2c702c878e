// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"strings"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Change frequencies used by the portfolio pages.
const (
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapBuilder collects URLs under one site.
type SitemapBuilder struct {
	siteURL string
	lastMod time.Time
	urls    []SitemapURL
}

// NewSitemapBuilder creates a builder. A non-zero lastMod is stamped on
// every entry.
func NewSitemapBuilder(siteURL string, lastMod time.Time) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: strings.TrimSuffix(siteURL, "/"),
		lastMod: lastMod,
	}
}

// Add appends path to the sitemap.
func (b *SitemapBuilder) Add(path string, freq ChangeFreq, priority string) {
	u := SitemapURL{
		Loc:        makeAbsoluteURL(path, b.siteURL),
		ChangeFreq: freq,
		Priority:   priority,
	}
	if !b.lastMod.IsZero() {
		u.LastMod = b.lastMod.UTC().Format(time.DateOnly)
	}
	b.urls = append(b.urls, u)
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}

// PortfolioSitemap lists the landing page and the case study.
func PortfolioSitemap(siteURL string, lastMod time.Time) ([]byte, error) {
	b := NewSitemapBuilder(siteURL, lastMod)
	b.Add("/", ChangeFreqWeekly, "1.0")
	b.Add("/case-study", ChangeFreqMonthly, "0.8")
	return b.Build()
}
