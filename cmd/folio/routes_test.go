// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerHost:          "localhost",
		ServerPort:          8080,
		Env:                 "production",
		LogLevel:            "error",
		SecretKey:           "test-secret-key-32-bytes-long-AB",
		AssetsDir:           t.TempDir(),
		ActivationThreshold: 250,
		GridSpacing:         18,
		GridRadius:          0.8,
		GridColor:           "rgba(71, 85, 105, 0.25)",
		BackdropMaxWidth:    400,
		BackdropMaxHeight:   300,
		BackdropStep:        10,
		BackdropWarmSpec:    "@every 30m",
		BackdropRate:        0.01,
		BackdropBurst:       3,
		CachePrefix:         "folio:",
		CacheTTL:            60,
		CacheMaxSize:        64,
		ContactRate:         0.01,
		ContactBurst:        2,
		CORSOrigins:         []string{"*"},
		SiteURL:             "https://folio.example",
	}
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	a, err := newApp(testConfig(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a.routes()
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRoutes_Pages(t *testing.T) {
	h := newTestServer(t)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-section="home"`)
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "script-src 'self'")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))

	w = serve(h, httptest.NewRequest(http.MethodGet, "/case-study", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "overlay-open")

	w = serve(h, httptest.NewRequest(http.MethodGet, "/case-study/", nil))
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/case-study", w.Header().Get("Location"))

	w = serve(h, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_Static(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/static/folio.js", "/static/folio.css"} {
		w := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=31536000", path)
	}
}

func TestRoutes_Backdrop(t *testing.T) {
	h := newTestServer(t)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/backdrop.png?w=50&h=40", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "50x40", w.Header().Get("X-Backdrop-Size"))
	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=86400")

	w = serve(h, httptest.NewRequest(http.MethodGet, "/backdrop.png?w=41&h=31", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "50x40", w.Header().Get("X-Backdrop-Size"))
}

func TestRoutes_BackdropRateLimited(t *testing.T) {
	h := newTestServer(t)

	for i := range 3 {
		w := serve(h, httptest.NewRequest(http.MethodGet, "/backdrop.png?w=20&h=20", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := serve(h, httptest.NewRequest(http.MethodGet, "/backdrop.png?w=20&h=20", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	other := httptest.NewRequest(http.MethodGet, "/backdrop.png?w=20&h=20", nil)
	other.RemoteAddr = "198.51.100.7:4321"
	assert.Equal(t, http.StatusOK, serve(h, other).Code)
}

func TestRoutes_LayoutAPI(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/layout", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	w := serve(h, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
	assert.Contains(t, w.Body.String(), `"threshold":250`)
}

func TestRoutes_Health(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		w := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func contactRequest(site string) *http.Request {
	form := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello there"},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if site != "" {
		req.Header.Set("Sec-Fetch-Site", site)
	}
	return req
}

func TestRoutes_Contact(t *testing.T) {
	h := newTestServer(t)

	w := serve(h, contactRequest("cross-site"))
	assert.Equal(t, http.StatusForbidden, w.Code, "cross-site posts are rejected")

	for i := range 2 {
		w = serve(h, contactRequest("same-origin"))
		assert.Equal(t, http.StatusNoContent, w.Code, "request %d", i)
	}

	w = serve(h, contactRequest("same-origin"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRoutes_Crawlers(t *testing.T) {
	h := newTestServer(t)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sitemap: https://folio.example/sitemap.xml")
	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=3600")

	w = serve(h, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<loc>https://folio.example/case-study</loc>")

	w = serve(h, httptest.NewRequest(http.MethodGet, "/.well-known/security.txt", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Contact: mailto:")

	w = serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, w.Body.String(), `<link rel="canonical" href="https://folio.example/">`)
	assert.Contains(t, w.Body.String(), `content="index,follow"`)
}
