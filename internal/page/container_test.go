// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/section"
	"github.com/olegiv/folio/internal/viewport"
)

func newTestContainer(t *testing.T, surface dotgrid.Surface) *Container {
	t.Helper()

	regions := section.NewRegions()
	regions.Register(section.Home, 0)
	regions.Register(section.Experience, 900)
	regions.Register(section.Projects, 1800)
	regions.Register(section.Skills, 2900)
	regions.Register(section.About, 3600)
	regions.Register(section.Contact, 5200)

	tracker := section.NewTracker(section.TrackerConfig{
		Threshold: section.DefaultThreshold,
		Regions:   regions,
	})
	renderer, err := dotgrid.NewRenderer(dotgrid.DefaultConfig(), nil)
	require.NoError(t, err)

	return NewContainer(Config{Tracker: tracker, Renderer: renderer, Surface: surface})
}

func TestContainer_MountRegistersOnce(t *testing.T) {
	surface := dotgrid.NewRasterSurface(1, 1)
	defer func() { _ = surface.Close() }()

	c := newTestContainer(t, surface)
	bus := c.Mount(viewport.Viewport{Width: 200, Height: 100})
	assert.Equal(t, 2, bus.Listeners())

	again := c.Mount(viewport.Viewport{Width: 1, Height: 1})
	assert.Same(t, bus, again)
	assert.Equal(t, 2, bus.Listeners())

	w, h := surface.Size()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	c.Unmount()
	assert.Equal(t, 0, bus.Listeners())
	c.Unmount()
}

func TestContainer_ScrollAndResize(t *testing.T) {
	surface := dotgrid.NewRasterSurface(1, 1)
	defer func() { _ = surface.Close() }()

	c := newTestContainer(t, surface)
	bus := c.Mount(viewport.Viewport{Width: 1280, Height: 720})
	defer c.Unmount()

	assert.Equal(t, section.Home, c.Snapshot().Active)

	bus.EmitScroll(1600)
	bus.EmitResize(390, 844)

	state := c.Snapshot()
	assert.Equal(t, section.Projects, state.Active)
	assert.Equal(t, viewport.Viewport{Width: 390, Height: 844}, state.Viewport)

	w, h := surface.Size()
	assert.Equal(t, 390, w)
	assert.Equal(t, 844, h)
}

func TestContainer_OverlayToggleRestoresState(t *testing.T) {
	c := newTestContainer(t, nil)
	bus := c.Mount(viewport.Viewport{Width: 1280, Height: 720})
	defer c.Unmount()

	bus.EmitScroll(3500)
	before := c.Snapshot()
	listeners := bus.Listeners()
	require.False(t, before.OverlayOpen)

	c.OpenCaseStudy()
	assert.True(t, c.OverlayOpen())
	assert.True(t, c.Snapshot().OverlayOpen)

	c.CloseCaseStudy()
	assert.False(t, c.OverlayOpen())
	assert.Equal(t, before, c.Snapshot())
	assert.Equal(t, listeners, bus.Listeners())
}

func TestContainer_NilSurface(t *testing.T) {
	c := newTestContainer(t, nil)
	bus := c.Mount(viewport.Viewport{Width: 100, Height: 100})

	// Only the tracker subscribes when there is nothing to paint on.
	assert.Equal(t, 1, bus.Listeners())
	c.Unmount()
	assert.Equal(t, 0, bus.Listeners())
}

func TestContainer_SnapshotBeforeMount(t *testing.T) {
	c := NewContainer(Config{})

	state := c.Snapshot()
	assert.Equal(t, section.Home, state.Active)
	assert.False(t, state.OverlayOpen)
	assert.Equal(t, viewport.Viewport{}, state.Viewport)
	assert.Nil(t, c.Bus())
}
