// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/olegiv/folio/internal/middleware"
)

// Route paths.
const (
	RouteHome      = "/"
	RouteCaseStudy = "/case-study"
	RouteContact   = "/contact"
	RouteBackdrop  = "/backdrop.png"
	RouteMedia     = "/media/*"
	RouteThumb     = "/media/thumb/*"
	RouteStatic    = "/static/*"
	RouteHealth    = "/health"
	RouteRobots    = "/robots.txt"
	RouteSitemap   = "/sitemap.xml"
	RouteSecurity  = "/.well-known/security.txt"
)

// Cache lifetimes for public responses.
const (
	staticMaxAge   = 365 * 24 * time.Hour
	mediaMaxAge    = 7 * 24 * time.Hour
	backdropMaxAge = 24 * time.Hour
)

// routes builds the HTTP handler.
func (a *app) routes() http.Handler {
	isDev := a.cfg.IsDevelopment()

	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestContext)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(isDev)))

	// Pages
	r.Get(RouteHome, a.portfolioHandler.Home)
	r.Get(RouteCaseStudy, a.portfolioHandler.CaseStudy)

	// Crawler files
	r.With(middleware.StaticCache(time.Hour)).Get(RouteRobots, a.seoHandler.Robots)
	r.With(middleware.StaticCache(time.Hour)).Get(RouteSitemap, a.seoHandler.Sitemap)
	r.Get(RouteSecurity, a.seoHandler.SecurityTxt)

	// Contact form: same-origin posts only, rate limited per client.
	csrf := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(a.cfg.SecretKey), isDev))
	r.With(csrf, a.limiter.Middleware()).Post(RouteContact, a.contactHandler.Submit)

	// Generated and uploaded images
	r.With(a.imgLimit.Middleware(), middleware.StaticCache(backdropMaxAge)).Get(RouteBackdrop, a.backdropHandler.Serve)
	r.With(middleware.StaticCache(mediaMaxAge)).Get(RouteThumb, a.mediaHandler.Thumbnail)
	r.With(middleware.StaticCache(mediaMaxAge)).Get(RouteMedia, a.mediaHandler.Serve)

	// Static assets
	static := http.StripPrefix("/static/", http.FileServer(http.FS(a.staticFS)))
	r.With(middleware.StaticCache(staticMaxAge)).Handle(RouteStatic, static)

	// Read-only JSON API
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: a.cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Use(middleware.NoStore)
		r.Get("/layout", a.layoutHandler.Get)
	})

	// Health checks
	r.Route(RouteHealth, func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Get("/", a.healthHandler.Health)
		r.Get("/live", a.healthHandler.Liveness)
		r.Get("/ready", a.healthHandler.Readiness)
	})

	return r
}
