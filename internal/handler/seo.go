// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/seo"
)

// SEOHandler serves robots.txt, sitemap.xml and security.txt.
type SEOHandler struct {
	siteURL   string
	indexable bool
	portfolio *content.Portfolio
	updated   time.Time
}

// SEOConfig configures an SEOHandler.
type SEOConfig struct {
	// SiteURL is the public base URL. When empty it is derived per request
	// from the Host header.
	SiteURL string
	// Indexable is false outside production; robots.txt then blocks
	// every crawler.
	Indexable bool
	Portfolio *content.Portfolio
	// Updated is reported as the sitemap lastmod.
	Updated time.Time
}

// NewSEOHandler creates an SEOHandler.
func NewSEOHandler(cfg SEOConfig) *SEOHandler {
	return &SEOHandler{
		siteURL:   strings.TrimSuffix(cfg.SiteURL, "/"),
		indexable: cfg.Indexable,
		portfolio: cfg.Portfolio,
		updated:   cfg.Updated,
	}
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	body := seo.BuildRobots(seo.RobotsConfig{
		SiteURL:     siteURL(h.siteURL, r),
		DisallowAll: !h.indexable,
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := seo.PortfolioSitemap(siteURL(h.siteURL, r), h.updated)
	if err != nil {
		logAndInternalError(w, r, "building sitemap failed", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

// SecurityTxt handles GET /.well-known/security.txt. It answers 404 when
// the portfolio lists no contact channel.
func (h *SEOHandler) SecurityTxt(w http.ResponseWriter, r *http.Request) {
	base := siteURL(h.siteURL, r)
	body := seo.BuildSecurityTxt(seo.SecurityTxtConfig{
		Contact:            seo.PortfolioContacts(h.portfolio),
		PreferredLanguages: "en",
		Canonical:          base + "/.well-known/security.txt",
	})
	if body == "" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

// siteURL returns configured, or the scheme and host r was addressed to.
func siteURL(configured string, r *http.Request) string {
	if configured != "" {
		return configured
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
