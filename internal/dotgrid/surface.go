// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package dotgrid

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Surface is a drawing target for the grid.
type Surface interface {
	// Resize sets the drawing area to exactly width x height.
	Resize(width, height int) error
	// Clear erases all prior content.
	Clear()
	SetColor(c gg.RGBA)
	// DrawCircle adds a circle to the current path.
	DrawCircle(x, y, r float64)
	// Fill fills and clears the current path.
	Fill() error
	Size() (width, height int)
}

// RasterSurface is a Surface backed by a gg software raster context.
type RasterSurface struct {
	dc *gg.Context
}

// NewRasterSurface creates a raster surface of the given size.
func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{dc: gg.NewContext(max(width, 1), max(height, 1))}
}

// Resize implements Surface.
func (s *RasterSurface) Resize(width, height int) error {
	return s.dc.Resize(width, height)
}

// Clear implements Surface.
func (s *RasterSurface) Clear() {
	s.dc.Clear()
}

// SetColor implements Surface.
func (s *RasterSurface) SetColor(c gg.RGBA) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// DrawCircle implements Surface.
func (s *RasterSurface) DrawCircle(x, y, r float64) {
	s.dc.DrawCircle(x, y, r)
}

// Fill implements Surface.
func (s *RasterSurface) Fill() error {
	return s.dc.Fill()
}

// Size implements Surface.
func (s *RasterSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Image returns the rendered pixels.
func (s *RasterSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the surface as PNG.
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the surface to a PNG file.
func (s *RasterSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// Close releases the raster context.
func (s *RasterSurface) Close() error {
	return s.dc.Close()
}
