// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package assets loads externally supplied mark images.
//
// Raster images (PNG, JPEG, GIF, BMP, TIFF, WebP) are decoded with EXIF
// auto-orientation; SVG images are rasterized at their intrinsic size.
// Loader caches results by path, failures included, so a broken skin image
// costs one decode attempt per process rather than one per mark.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/waveform"
	"github.com/gogpu/waveform/internal/cache"
)

// ErrNotImage is returned when data is neither a raster image nor SVG.
var ErrNotImage = errors.New("assets: not an image")

// DefaultCapacity is the per-shard capacity used by NewLoader(0).
const DefaultCapacity = 16

// result is a cached load outcome. A nil img records a failed load.
type result struct {
	img image.Image
}

// Loader is a caching image loader. It implements waveform.ImageLoader and
// is safe for concurrent use.
type Loader struct {
	cache *cache.ShardedCache[string, result]
}

// NewLoader creates a Loader. capacity is per cache shard; values <= 0 use
// DefaultCapacity.
func NewLoader(capacity int) *Loader {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Loader{
		cache: cache.NewSharded[string, result](capacity, cache.StringHasher),
	}
}

// Load returns the image at path. It reports false if the file is missing
// or cannot be decoded; the reason is logged at debug level.
func (l *Loader) Load(path string) (image.Image, bool) {
	r := l.cache.GetOrCreate(path, func() result {
		img, err := decodeFile(path)
		if err != nil {
			waveform.Logger().Debug("assets: unable to load mark image", "path", path, "err", err)
			return result{}
		}
		waveform.Logger().Info("assets: loaded mark image",
			"path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
		return result{img: img}
	})
	return r.img, r.img != nil
}

// Len returns the number of cached paths, failed loads included.
func (l *Loader) Len() int {
	return l.cache.Len()
}

// Purge drops all cached images, e.g. after a skin reload.
func (l *Loader) Purge() {
	l.cache.Clear()
}

var _ waveform.ImageLoader = (*Loader)(nil)

// decodeFile is replaced in tests to count decode attempts.
var decodeFile = DecodeFile

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: unable to read %q: %w", path, err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %q: %w", path, err)
	}
	return img, nil
}

// Decode decodes raster or SVG image data.
func Decode(data []byte) (image.Image, error) {
	if isSVG(data) {
		return RasterizeSVG(data)
	}
	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image: %w", err)
	}
	return img, nil
}

// isSVG reports whether data looks like an SVG document.
func isSVG(data []byte) bool {
	head := data[:min(len(data), 1024)]
	return bytes.Contains(head, []byte("<svg"))
}
