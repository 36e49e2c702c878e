// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/olegiv/folio/internal/cache"
	"github.com/olegiv/folio/internal/config"
	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/geoip"
	"github.com/olegiv/folio/internal/handler"
	"github.com/olegiv/folio/internal/imaging"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/web"
)

// app holds every long-lived component the server wires together.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	cache     cache.Cacher
	portfolio *content.Portfolio
	backdrop  *dotgrid.Backdrop
	limiter   *middleware.RateLimiter // contact form
	imgLimit  *middleware.RateLimiter // backdrop renders
	geoip     *geoip.Lookup

	portfolioHandler *handler.PortfolioHandler
	contactHandler   *handler.ContactHandler
	backdropHandler  *handler.BackdropHandler
	mediaHandler     *handler.MediaHandler
	layoutHandler    *handler.LayoutHandler
	healthHandler    *handler.HealthHandler
	seoHandler       *handler.SEOHandler
	staticFS         fs.FS
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	cacheConfig := cache.CacheConfig{
		Type:             string(cache.CacheBackendMemory),
		RedisURL:         cfg.RedisURL,
		Prefix:           cfg.CachePrefix,
		DefaultTTL:       cfg.CacheTTLDuration(),
		MaxSize:          cfg.CacheMaxSize,
		CleanupInterval:  time.Minute,
		FallbackToMemory: true,
	}
	if cfg.UseRedisCache() {
		cacheConfig.Type = string(cache.CacheBackendRedis)
	}
	cacheResult, err := cache.NewCacheWithInfo(cacheConfig)
	if err != nil {
		return nil, fmt.Errorf("initializing cache: %w", err)
	}
	logger.Info("cache initialized", "backend", cacheResult.BackendType, "fallback", cacheResult.IsFallback)

	a := &app{cfg: cfg, logger: logger, cache: cacheResult.Cache}
	if err := a.init(); err != nil {
		_ = a.cache.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) init() error {
	cfg, logger := a.cfg, a.logger

	portfolio, err := content.Load(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	a.portfolio = portfolio
	logger.Info("content loaded", "name", portfolio.Profile.Name, "projects", len(portfolio.Projects.Cards))

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS, IsDev: cfg.IsDevelopment()})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	if a.staticFS, err = fs.Sub(web.Static, "static/dist"); err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}

	grid := cfg.Grid()
	gridRenderer, err := dotgrid.NewRenderer(grid, logger)
	if err != nil {
		return fmt.Errorf("initializing dot grid: %w", err)
	}
	a.backdrop = dotgrid.NewBackdrop(dotgrid.BackdropConfig{
		Renderer: gridRenderer,
		Cache:    a.cache,
		TTL:      cfg.CacheTTLDuration(),
		MaxSize:  cfg.BackdropMaxSize(),
		Step:     cfg.BackdropStep,
		Logger:   logger,
	})

	processor := imaging.NewProcessor(cfg.AssetsDir, a.cache, cfg.CacheTTLDuration(), logger)

	a.portfolioHandler, err = handler.NewPortfolioHandler(handler.PortfolioConfig{
		Renderer:  renderer,
		Portfolio: portfolio,
		Assets:    processor,
		Threshold: cfg.ActivationThreshold,
		Grid:      grid,
		SiteURL:   cfg.SiteURL,
		Indexable: cfg.IsProduction(),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("initializing portfolio handler: %w", err)
	}

	downloads := map[string]string{}
	if r := portfolio.Profile.Resume; r.Asset != "" && r.DownloadName != "" {
		downloads[r.Asset] = r.DownloadName
	}

	if a.geoip, err = geoip.Open(cfg.GeoIPDBPath, logger); err != nil {
		return fmt.Errorf("initializing geoip: %w", err)
	}

	a.contactHandler = handler.NewContactHandler(logger, a.geoip)
	a.backdropHandler = handler.NewBackdropHandler(a.backdrop)
	a.mediaHandler = handler.NewMediaHandler(cfg.AssetsDir, processor, downloads)
	a.layoutHandler = handler.NewLayoutHandler(handler.NewLayout(cfg.ActivationThreshold, grid))
	a.healthHandler = handler.NewHealthHandler(a.cache, cfg.AssetsDir, cfg.IsDevelopment())
	a.seoHandler = handler.NewSEOHandler(handler.SEOConfig{
		SiteURL:   cfg.SiteURL,
		Indexable: cfg.IsProduction(),
		Portfolio: portfolio,
		Updated:   time.Now(),
	})
	a.limiter = middleware.NewRateLimiter(cfg.ContactRate, cfg.ContactBurst, logger)
	a.imgLimit = middleware.NewRateLimiter(cfg.BackdropRate, cfg.BackdropBurst, logger)
	return nil
}

// Close releases the GeoIP database and the cache connection.
func (a *app) Close() error {
	if a.geoip != nil {
		_ = a.geoip.Close()
	}
	return a.cache.Close()
}
