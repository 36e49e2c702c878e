// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"errors"
	"mime"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio/internal/imaging"
	"github.com/olegiv/folio/internal/util"
)

// defaultThumbWidth is used when a thumbnail request has no usable w.
const defaultThumbWidth = 640

// MediaHandler serves files from the assets directory: the profile photo,
// project screenshots and the resume.
type MediaHandler struct {
	assetsDir string
	processor *imaging.Processor
	downloads map[string]string
}

// NewMediaHandler creates a MediaHandler. downloads maps asset names that
// are served as attachments (the resume) to their download file names.
func NewMediaHandler(assetsDir string, processor *imaging.Processor, downloads map[string]string) *MediaHandler {
	return &MediaHandler{assetsDir: assetsDir, processor: processor, downloads: downloads}
}

// Serve handles GET /media/*.
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	path, err := util.AssetPath(h.assetsDir, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logAndInternalError(w, r, "opening asset failed", "error", err, "name", name)
			return
		}
		http.NotFound(w, r)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}

	if filename, ok := h.downloads[name]; ok {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// Thumbnail handles GET /media/thumb/*?w=.
func (h *MediaHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	width, err := strconv.Atoi(r.URL.Query().Get("w"))
	if err != nil || width <= 0 {
		width = defaultThumbWidth
	}

	thumb, err := h.processor.Thumbnail(r.Context(), name, width)
	switch {
	case errors.Is(err, imaging.ErrNotFound):
		http.NotFound(w, r)
		return
	case errors.Is(err, imaging.ErrUnsupported):
		http.Error(w, "Unsupported Media Type", http.StatusUnsupportedMediaType)
		return
	case err != nil:
		logAndInternalError(w, r, "creating thumbnail failed", "error", err, "name", name)
		return
	}

	w.Header().Set("Content-Type", thumb.MimeType)
	http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(thumb.Data))
}
