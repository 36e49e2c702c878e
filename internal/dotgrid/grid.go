// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dotgrid paints the decorative dot grid backdrop.
//
// The grid is static: every repaint resizes the surface to the viewport,
// clears it and draws one filled dot at every multiple of the spacing on
// both axes, starting at the origin. There is no per-dot state and no
// animation loop.
package dotgrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Defaults for the backdrop.
const (
	DefaultSpacing = 18.0
	DefaultRadius  = 0.8
)

// DefaultColor is slate-600 at 25% opacity.
var DefaultColor = gg.RGBA2(71.0/255, 85.0/255, 105.0/255, 0.25)

// ErrInvalidConfig is returned for a grid configuration that cannot be drawn.
var ErrInvalidConfig = errors.New("invalid dot grid config")

// Config describes the grid geometry and fill.
type Config struct {
	Spacing float64
	Radius  float64
	Color   gg.RGBA
}

// DefaultConfig returns the stock grid.
func DefaultConfig() Config {
	return Config{
		Spacing: DefaultSpacing,
		Radius:  DefaultRadius,
		Color:   DefaultColor,
	}
}

// Validate checks that the grid can be drawn.
func (c Config) Validate() error {
	if c.Spacing <= 0 {
		return fmt.Errorf("%w: spacing must be positive, got %v", ErrInvalidConfig, c.Spacing)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidConfig, c.Radius)
	}
	return nil
}

// CSSColor formats the fill as a CSS rgba() value.
func (c Config) CSSColor() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		to255(c.Color.R), to255(c.Color.G), to255(c.Color.B),
		strconv.FormatFloat(c.Color.A, 'f', -1, 64))
}

// Point is a dot center in surface units.
type Point struct {
	X, Y float64
}

// Points returns the dot centers for a width x height surface, column by
// column: x = i*spacing < width, y = j*spacing < height.
func (c Config) Points(width, height int) []Point {
	if width <= 0 || height <= 0 || c.Spacing <= 0 {
		return nil
	}
	w, h := float64(width), float64(height)
	cols := countSteps(w, c.Spacing)
	rows := countSteps(h, c.Spacing)

	pts := make([]Point, 0, cols*rows)
	for i := 0; i < cols; i++ {
		x := float64(i) * c.Spacing
		for j := 0; j < rows; j++ {
			pts = append(pts, Point{X: x, Y: float64(j) * c.Spacing})
		}
	}
	return pts
}

// countSteps returns how many multiples of step lie in [0, limit).
func countSteps(limit, step float64) int {
	n := 0
	for x := 0.0; x < limit; x = float64(n) * step {
		n++
	}
	return n
}

// ParseColor accepts "rgba(r, g, b, a)", "rgb(r, g, b)" or a hex color.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return gg.RGBA{}, fmt.Errorf("%w: empty color", ErrInvalidConfig)
	}

	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		parts := splitArgs(s[len("rgba(") : len(s)-1])
		if len(parts) != 4 {
			return gg.RGBA{}, fmt.Errorf("%w: rgba needs 4 components: %q", ErrInvalidConfig, s)
		}
		return parseComponents(parts)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := splitArgs(s[len("rgb(") : len(s)-1])
		if len(parts) != 3 {
			return gg.RGBA{}, fmt.Errorf("%w: rgb needs 3 components: %q", ErrInvalidConfig, s)
		}
		return parseComponents(append(parts, "1"))
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: unrecognized color %q", ErrInvalidConfig, s)
	}
	if _, err := strconv.ParseUint(hex, 16, 64); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: unrecognized color %q", ErrInvalidConfig, s)
	}
	return gg.Hex(hex), nil
}

func splitArgs(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseComponents(parts []string) (gg.RGBA, error) {
	var rgb [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(parts[i])
		if err != nil || v < 0 || v > 255 {
			return gg.RGBA{}, fmt.Errorf("%w: channel %q out of range", ErrInvalidConfig, parts[i])
		}
		rgb[i] = float64(v) / 255
	}
	a, err := strconv.ParseFloat(parts[3], 64)
	if err != nil || a < 0 || a > 1 {
		return gg.RGBA{}, fmt.Errorf("%w: alpha %q out of range", ErrInvalidConfig, parts[3])
	}
	return gg.RGBA2(rgb[0], rgb[1], rgb[2], a), nil
}

func to255(v float64) int {
	n := int(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
