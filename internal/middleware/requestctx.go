// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/folio/internal/logging"
)

// RequestContext copies chi's request id and the request path into the
// context, where logging.ContextHandler picks them up for every log line
// written with a *Context slog call. Mount it after chimw.RequestID.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithRequestInfo(r.Context(), logging.RequestInfo{
			ID:   chimw.GetReqID(r.Context()),
			Path: r.URL.Path,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
