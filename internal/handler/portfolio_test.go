// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/imaging"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/web"
)

func newTestPortfolioHandler(t *testing.T, assetsDir string) *PortfolioHandler {
	t.Helper()

	templates, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)
	renderer, err := render.New(render.Config{TemplatesFS: templates})
	require.NoError(t, err)

	p, err := content.Default()
	require.NoError(t, err)

	h, err := NewPortfolioHandler(PortfolioConfig{
		Renderer:  renderer,
		Portfolio: p,
		Assets:    imaging.NewProcessor(assetsDir, nil, 0, nil),
		Threshold: 250,
		Grid:      dotgrid.DefaultConfig(),
	})
	require.NoError(t, err)
	return h
}

func get(h http.HandlerFunc, target, ua string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("User-Agent", ua)
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestPortfolioHandler_Home(t *testing.T) {
	h := newTestPortfolioHandler(t, t.TempDir())

	w := get(h.Home, "/", uaDesktop)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	for _, want := range []string{
		"<title>Prasang Jain | Data Analyst</title>",
		`data-threshold="250"`,
		`data-grid-spacing="18"`,
		`data-grid-radius="0.8"`,
		`data-grid-color="rgba(71, 85, 105, 0.25)"`,
		`src="/backdrop.png?w=1440&amp;h=900"`,
		`id="home" data-section="home"`,
		`id="experience" data-section="experience"`,
		`id="projects" data-section="projects"`,
		`id="skills" data-section="skills"`,
		`id="about" data-section="about"`,
		`id="contact" data-section="contact"`,
		`<section id="methodology" class="section">`,
		`id="project-customer-intelligence"`,
		`<strong>Identified 4 high-value segments`,
		"SQL • Python • Machine Learning • Power BI",
		`<form id="contact-form"`,
	} {
		assert.Contains(t, body, want)
	}

	// Server-side state starts at the top of the page.
	assert.Contains(t, body, `data-nav="home" class="nav-link active"`)
	assert.Equal(t, 1, strings.Count(body, "nav-link active"))

	// Overlay is rendered closed and the page is not locked.
	assert.Contains(t, body, `id="case-study" class="overlay" role="dialog" aria-modal="true" aria-labelledby="case-study-title" hidden`)
	assert.NotContains(t, body, "overlay-open")
}

func TestPortfolioHandler_MissingAssets(t *testing.T) {
	h := newTestPortfolioHandler(t, t.TempDir())
	body := get(h.Home, "/", uaDesktop).Body.String()

	assert.NotContains(t, body, "Download Resume", "resume button hidden without the pdf")
	assert.NotContains(t, body, `data-fallback="profile-placeholder"`)
	assert.Contains(t, body, `<div id="profile-placeholder" class="photo-placeholder">`)
}

func TestPortfolioHandler_WithAssets(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "resume.pdf", []byte("%PDF-1.4"))
	writeAsset(t, dir, "profile.png", pngBytes(t, 10, 10))

	h := newTestPortfolioHandler(t, dir)
	body := get(h.Home, "/", uaDesktop).Body.String()

	assert.Contains(t, body, `href="/media/resume.pdf" download="Prasang_Jain_Resume.pdf"`)
	assert.Contains(t, body, `src="/media/thumb/profile.png?w=640"`)
	assert.Contains(t, body, `<div id="profile-placeholder" class="photo-placeholder" hidden>`)
}

func TestPortfolioHandler_CaseStudy(t *testing.T) {
	h := newTestPortfolioHandler(t, t.TempDir())

	w := get(h.CaseStudy, "/case-study", uaIPhone)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "<title>Case Study: Operations Performance Dashboard | Prasang Jain</title>")
	assert.Contains(t, body, `class="page overlay-open"`)
	assert.NotContains(t, body, `aria-labelledby="case-study-title" hidden`)
	assert.Contains(t, body, `data-device="mobile"`)
	assert.Contains(t, body, `src="/backdrop.png?w=390&amp;h=844"`)

	// The page under the overlay stays rendered.
	assert.Contains(t, body, `id="contact" data-section="contact"`)
	assert.Contains(t, body, "    df[&#39;ship_date&#39;] = pd.to_datetime")
	assert.Contains(t, body, "WITH DeliveryPerformance AS (")
}

func TestNewPortfolioHandler_InvalidGrid(t *testing.T) {
	_, err := NewPortfolioHandler(PortfolioConfig{Grid: dotgrid.Config{Spacing: 0, Radius: 1}})
	assert.ErrorIs(t, err, dotgrid.ErrInvalidConfig)
}

func TestPortfolioHandler_SEOMeta(t *testing.T) {
	t.Run("derived site url", func(t *testing.T) {
		h := newTestPortfolioHandler(t, t.TempDir())

		body := get(h.Home, "/", uaDesktop).Body.String()
		assert.Contains(t, body, `<link rel="canonical" href="http://example.com/">`)
		assert.Contains(t, body, `<meta name="robots" content="noindex,nofollow">`)
		assert.Contains(t, body, `<meta property="og:type" content="website">`)
		assert.Contains(t, body, `<script type="application/ld+json">`)
		assert.Contains(t, body, `"jobTitle": "Data Analyst"`)
		assert.NotContains(t, body, `og:image`)
	})

	t.Run("configured site url", func(t *testing.T) {
		h := newTestPortfolioHandler(t, t.TempDir())
		h.siteURL = "https://prasang.example"
		h.indexable = true

		body := get(h.CaseStudy, "/case-study", uaDesktop).Body.String()
		assert.Contains(t, body, `<link rel="canonical" href="https://prasang.example/case-study">`)
		assert.Contains(t, body, `<meta name="robots" content="index,follow">`)
		assert.Contains(t, body, `<meta property="og:type" content="article">`)
	})
}

func TestPortfolioHandler_ContactFormIsCalledOut(t *testing.T) {
	h := newTestPortfolioHandler(t, t.TempDir())

	body := get(h.Home, "/", uaDesktop).Body.String()
	assert.Contains(t, body, `data-notice="Received. This demo form does not forward messages; please use one of the channels listed."`)
	assert.Contains(t, body, "Messages sent here are not forwarded.")
	assert.NotContains(t, body, "on its way")
}
