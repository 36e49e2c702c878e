// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package dotgrid

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/folio/internal/cache"
	"github.com/olegiv/folio/internal/viewport"
)

// Device preset viewports used when a client does not report its size.
var (
	MobileViewport  = viewport.Viewport{Width: 390, Height: 844}
	TabletViewport  = viewport.Viewport{Width: 820, Height: 1180}
	DesktopViewport = viewport.Viewport{Width: 1440, Height: 900}
)

// Presets returns the device preset viewports.
func Presets() []viewport.Viewport {
	return []viewport.Viewport{MobileViewport, TabletViewport, DesktopViewport}
}

const backdropKeyPrefix = "backdrop:"

// DefaultBucketStep is the granularity served sizes are rounded up to.
const DefaultBucketStep = 240

// Backdrop renders the grid as PNG images and caches them by size.
type Backdrop struct {
	renderer *Renderer
	cache    cache.Cacher
	ttl      time.Duration
	maxSize  viewport.Viewport
	step     int
	logger   *slog.Logger
}

// BackdropConfig configures a Backdrop.
type BackdropConfig struct {
	Renderer *Renderer
	Cache    cache.Cacher
	TTL      time.Duration
	// MaxSize bounds rendered dimensions; larger requests are clamped.
	MaxSize viewport.Viewport
	// Step is the bucket granularity for served sizes; DefaultBucketStep
	// when zero.
	Step   int
	Logger *slog.Logger
}

// NewBackdrop creates a Backdrop.
func NewBackdrop(cfg BackdropConfig) *Backdrop {
	maxSize := cfg.MaxSize
	if maxSize.Width <= 0 || maxSize.Height <= 0 {
		maxSize = viewport.Viewport{Width: 3840, Height: 2160}
	}
	step := cfg.Step
	if step <= 0 {
		step = DefaultBucketStep
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Backdrop{
		renderer: cfg.Renderer,
		cache:    cfg.Cache,
		ttl:      cfg.TTL,
		maxSize:  maxSize,
		step:     step,
		logger:   logger,
	}
}

// Clamp bounds vp to [1, MaxSize] on both axes.
func (b *Backdrop) Clamp(vp viewport.Viewport) viewport.Viewport {
	return viewport.Viewport{
		Width:  min(max(vp.Width, 1), b.maxSize.Width),
		Height: min(max(vp.Height, 1), b.maxSize.Height),
	}
}

// Bucket clamps vp and rounds each axis up to a multiple of the bucket
// step, capped at MaxSize. Nearby sizes share one bucket, so arbitrary
// client sizes map onto a small set of cached images.
func (b *Backdrop) Bucket(vp viewport.Viewport) viewport.Viewport {
	vp = b.Clamp(vp)
	return viewport.Viewport{
		Width:  min(roundUp(vp.Width, b.step), b.maxSize.Width),
		Height: min(roundUp(vp.Height, b.step), b.maxSize.Height),
	}
}

// PNG returns the backdrop for the bucket holding vp, rendering it on a
// cache miss.
func (b *Backdrop) PNG(ctx context.Context, vp viewport.Viewport) ([]byte, error) {
	vp = b.Bucket(vp)
	if b.cache == nil {
		return b.render(vp)
	}
	return cache.GetOrSet(ctx, b.cache, backdropKey(vp), b.ttl, func() ([]byte, error) {
		return b.render(vp)
	})
}

// Render draws vp at its exact clamped size, bypassing buckets and cache.
func (b *Backdrop) Render(vp viewport.Viewport) ([]byte, error) {
	return b.render(b.Clamp(vp))
}

// Warm renders and caches the backdrop for each viewport.
func (b *Backdrop) Warm(ctx context.Context, sizes []viewport.Viewport) error {
	if b.cache == nil {
		return nil
	}
	for _, vp := range sizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		vp = b.Bucket(vp)
		data, err := b.render(vp)
		if err != nil {
			return err
		}
		if err := b.cache.Set(ctx, backdropKey(vp), data, b.ttl); err != nil {
			return fmt.Errorf("caching backdrop %dx%d: %w", vp.Width, vp.Height, err)
		}
	}
	b.logger.Debug("backdrop cache warmed", "sizes", len(sizes))
	return nil
}

func (b *Backdrop) render(vp viewport.Viewport) ([]byte, error) {
	surface := NewRasterSurface(vp.Width, vp.Height)
	defer func() { _ = surface.Close() }()

	if err := b.renderer.Paint(surface, vp); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding backdrop png: %w", err)
	}
	return buf.Bytes(), nil
}

func backdropKey(vp viewport.Viewport) string {
	return fmt.Sprintf("%s%dx%d", backdropKeyPrefix, vp.Width, vp.Height)
}

func roundUp(n, step int) int {
	return (n + step - 1) / step * step
}
