// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveform

import (
	"image"

	"github.com/gogpu/gg"
)

// VisualKind tells which branch of the fallback chain produced a Visual.
type VisualKind uint8

const (
	// VisualImage is an externally supplied image used as is.
	VisualImage VisualKind = iota + 1

	// VisualLabel is a text label with a guide line.
	VisualLabel

	// VisualTriangle is the two-triangle fallback marker.
	VisualTriangle
)

// String returns the kind name.
func (k VisualKind) String() string {
	switch k {
	case VisualImage:
		return "image"
	case VisualLabel:
		return "label"
	case VisualTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Visual is the cached raster image of a mark.
//
// A Visual is immutable once generated. Its width is even for generated
// kinds, so Center is a single pixel column.
type Visual struct {
	kind VisualKind
	img  image.Image

	// buf is the gg copy of img, built on first composite onto a gg.Context.
	buf *gg.ImageBuf
}

// NewVisual wraps img as a Visual of the given kind.
func NewVisual(kind VisualKind, img image.Image) *Visual {
	return &Visual{kind: kind, img: img}
}

// Kind returns which generator branch produced the visual.
func (v *Visual) Kind() VisualKind { return v.kind }

// Image returns the raster image.
func (v *Visual) Image() image.Image { return v.img }

// Width returns the image width in pixels.
func (v *Visual) Width() int { return v.img.Bounds().Dx() }

// Height returns the image height in pixels.
func (v *Visual) Height() int { return v.img.Bounds().Dy() }

// Center returns the column the visual is anchored on.
func (v *Visual) Center() int { return v.Width() / 2 }

func (v *Visual) imageBuf() *gg.ImageBuf {
	if v.buf == nil {
		v.buf = gg.ImageBufFromImage(v.img)
	}
	return v.buf
}
