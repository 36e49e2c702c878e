// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/olegiv/folio/internal/cache"
	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/viewport"
)

func newTestBackdropHandler(t *testing.T) *BackdropHandler {
	t.Helper()
	r, err := dotgrid.NewRenderer(dotgrid.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	mc := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = mc.Close() })

	return NewBackdropHandler(dotgrid.NewBackdrop(dotgrid.BackdropConfig{
		Renderer: r,
		Cache:    mc,
		TTL:      time.Minute,
		MaxSize:  viewport.Viewport{Width: 200, Height: 100},
		Step:     40,
	}))
}

func TestBackdropHandler_Serve(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		ua       string
		wantSize string
		wantW    int
		wantH    int
	}{
		{"explicit size", "/backdrop.png?w=120&h=80", uaDesktop, "120x80", 120, 80},
		{"rounded up to bucket", "/backdrop.png?w=81&h=41", uaDesktop, "120x80", 120, 80},
		{"clamped", "/backdrop.png?w=5000&h=5000", uaDesktop, "200x100", 200, 100},
		{"device fallback", "/backdrop.png", uaIPhone, "200x100", 200, 100},
		{"bad params", "/backdrop.png?w=-1&h=abc", uaDesktop, "200x100", 200, 100},
	}

	h := newTestBackdropHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.Header.Set("User-Agent", tt.ua)
			w := httptest.NewRecorder()
			h.Serve(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if ct := w.Header().Get("Content-Type"); ct != "image/png" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := w.Header().Get("X-Backdrop-Size"); got != tt.wantSize {
				t.Errorf("X-Backdrop-Size = %q, want %q", got, tt.wantSize)
			}
			img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
			if err != nil {
				t.Fatalf("decoding png: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("image = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestParseViewport(t *testing.T) {
	tests := []struct {
		query  string
		want   viewport.Viewport
		wantOK bool
	}{
		{"w=390&h=844", viewport.Viewport{Width: 390, Height: 844}, true},
		{"w=0&h=844", viewport.Viewport{}, false},
		{"w=390", viewport.Viewport{}, false},
		{"", viewport.Viewport{}, false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/backdrop.png?"+tt.query, nil)
		got, ok := parseViewport(req)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseViewport(%q) = %v, %v; want %v, %v", tt.query, got, ok, tt.want, tt.wantOK)
		}
	}
}
