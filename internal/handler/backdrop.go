// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/viewport"
)

// BackdropHandler serves the dot grid as a PNG, for clients that paint the
// background with an image instead of the canvas script.
type BackdropHandler struct {
	backdrop *dotgrid.Backdrop
}

// NewBackdropHandler creates a BackdropHandler.
func NewBackdropHandler(b *dotgrid.Backdrop) *BackdropHandler {
	return &BackdropHandler{backdrop: b}
}

// Serve handles GET /backdrop.png?w=&h=. Without a usable size the
// User-Agent's device preset is drawn. The size is rounded up to its cache
// bucket and clamped, and the image is meant to be drawn from the top-left
// corner without scaling.
func (h *BackdropHandler) Serve(w http.ResponseWriter, r *http.Request) {
	vp, ok := parseViewport(r)
	if !ok {
		vp = DeviceFromUserAgent(r.UserAgent()).Viewport()
	}
	vp = h.backdrop.Bucket(vp)

	data, err := h.backdrop.PNG(r.Context(), vp)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		logAndInternalError(w, r, "rendering backdrop failed", "error", err,
			"width", vp.Width, "height", vp.Height)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Backdrop-Size", strconv.Itoa(vp.Width)+"x"+strconv.Itoa(vp.Height))
	_, _ = w.Write(data)
}

// parseViewport reads positive w and h query parameters.
func parseViewport(r *http.Request) (viewport.Viewport, bool) {
	q := r.URL.Query()
	width, err := strconv.Atoi(q.Get("w"))
	if err != nil || width <= 0 {
		return viewport.Viewport{}, false
	}
	height, err := strconv.Atoi(q.Get("h"))
	if err != nil || height <= 0 {
		return viewport.Viewport{}, false
	}
	return viewport.Viewport{Width: width, Height: height}, true
}
