// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging produces width-bounded thumbnails of the images in the
// assets directory.
package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/olegiv/folio/internal/cache"
	"github.com/olegiv/folio/internal/util"
)

// MIME types served by the thumbnail endpoint.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
)

// Thumbnail widths. Requests are rounded up to the next bucket so the cache
// holds a bounded number of variants per image.
var widthBuckets = []int{320, 640, 960, 1280}

// Errors returned by Thumbnail.
var (
	ErrNotFound    = errors.New("image not found")
	ErrUnsupported = errors.New("unsupported image format")
)

// Thumb is an encoded thumbnail.
type Thumb struct {
	Data     []byte
	MimeType string
	Width    int
	Height   int
}

// Processor handles image processing operations using pure Go libraries.
type Processor struct {
	assetsDir string
	cache     cache.Cacher
	ttl       time.Duration
	logger    *slog.Logger
}

// NewProcessor creates a processor for assetsDir. c may be nil.
func NewProcessor(assetsDir string, c cache.Cacher, ttl time.Duration, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{assetsDir: assetsDir, cache: c, ttl: ttl, logger: logger}
}

// Exists reports whether name is a regular file in the assets directory.
func (p *Processor) Exists(name string) bool {
	path, err := util.AssetPath(p.assetsDir, name)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// BucketWidth rounds width up to the nearest thumbnail bucket.
func BucketWidth(width int) int {
	for _, b := range widthBuckets {
		if width <= b {
			return b
		}
	}
	return widthBuckets[len(widthBuckets)-1]
}

// Thumbnail returns name scaled down to at most width pixels wide, with
// EXIF orientation applied. Images narrower than the bucket are not
// upscaled.
func (p *Processor) Thumbnail(ctx context.Context, name string, width int) (*Thumb, error) {
	width = BucketWidth(width)
	path, err := util.AssetPath(p.assetsDir, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	key := fmt.Sprintf("thumb:%d:%s", width, name)
	if p.cache != nil {
		if data, err := p.cache.Get(ctx, key); err == nil {
			return decodeCached(data)
		}
	}

	thumb, err := p.render(path, width)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, key, thumb.Data, p.ttl); err != nil {
			p.logger.Warn("caching thumbnail failed", "name", name, "error", err)
		}
	}
	return thumb, nil
}

func (p *Processor) render(path string, width int) (*Thumb, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading image: %w", err)
	}

	format := detectFormat(data)
	if format == "" {
		return nil, ErrUnsupported
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	img = applyOrientation(img, readExifOrientation(bytes.NewReader(data)))

	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	encoded, mime, err := encodeImage(img, format, 85)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &Thumb{
		Data:     encoded,
		MimeType: mime,
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
	}, nil
}

func decodeCached(data []byte) (*Thumb, error) {
	mime := http.DetectContentType(data)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding cached thumbnail: %w", err)
	}
	return &Thumb{Data: data, MimeType: mime, Width: cfg.Width, Height: cfg.Height}, nil
}

// readExifOrientation reads the EXIF orientation tag from image data.
// Returns 1 (normal) if orientation cannot be determined.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}

	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}

	return orientation
}

// applyOrientation applies EXIF orientation transformation to an image.
// Orientation values:
// 1: Normal
// 2: Flip horizontal
// 3: Rotate 180°
// 4: Flip vertical
// 5: Rotate 90° CW + flip horizontal
// 6: Rotate 90° CW
// 7: Rotate 90° CCW + flip horizontal
// 8: Rotate 90° CCW
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// encodeImage encodes a thumbnail. Formats with transparency (PNG, GIF)
// become PNG; everything else becomes JPEG, since there is no pure Go WebP
// encoder.
func encodeImage(img image.Image, format string, quality int) ([]byte, string, error) {
	var buf bytes.Buffer

	switch format {
	case "png", "gif":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), MimeTypePNG, nil
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), MimeTypeJPEG, nil
	}
}

// detectFormat detects the image format from raw bytes.
func detectFormat(data []byte) string {
	contentType := http.DetectContentType(data)
	// Explicitly reject TIFF (CVE-2023-36308 in disintegration/imaging)
	if strings.Contains(contentType, "tiff") {
		return ""
	}
	switch {
	case strings.Contains(contentType, "jpeg"):
		return "jpeg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "gif"):
		return "gif"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return ""
	}
}
