// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"

	"github.com/olegiv/folio/internal/viewport"
)

// Job names.
const (
	JobWarmBackdrop = "warm-backdrop"
	JobReloadGeoIP  = "reload-geoip"
)

// BackdropWarmer renders and caches backdrops ahead of requests.
type BackdropWarmer interface {
	Warm(ctx context.Context, sizes []viewport.Viewport) error
}

// AddBackdropWarm registers the backdrop warming job for sizes.
func (s *Scheduler) AddBackdropWarm(schedule string, w BackdropWarmer, sizes []viewport.Viewport) error {
	sizes = append([]viewport.Viewport(nil), sizes...)
	return s.Add(JobWarmBackdrop, "Pre-render dot grid backdrops for the device presets", schedule,
		func(ctx context.Context) error {
			return w.Warm(ctx, sizes)
		})
}

// Reloader reopens a file-backed resource when it changed on disk.
type Reloader interface {
	Reload(ctx context.Context) error
}

// AddGeoIPReload registers the job that picks up a replaced GeoIP database.
func (s *Scheduler) AddGeoIPReload(schedule string, r Reloader) error {
	return s.Add(JobReloadGeoIP, "Reload the GeoIP database when the file changes", schedule, r.Reload)
}
