// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveform

import (
	"image"
	"image/draw"

	"github.com/gogpu/gg"
)

// Surface is the host paint target for mark visuals.
//
// Blit composites v with its top-left corner at (x, y), axis-aligned and at
// 1:1 scale, regardless of any transform the host uses for the waveform.
type Surface interface {
	Blit(x, y int, v *Visual)
}

// ContextSurface composites visuals onto a gg.Context.
type ContextSurface struct {
	dc *gg.Context
}

// NewContextSurface returns a Surface drawing into dc.
func NewContextSurface(dc *gg.Context) *ContextSurface {
	return &ContextSurface{dc: dc}
}

// Blit implements Surface. The context transform is suspended for the draw
// and restored afterwards.
func (s *ContextSurface) Blit(x, y int, v *Visual) {
	s.dc.Push()
	defer s.dc.Pop()

	s.dc.Identity()
	s.dc.DrawImageEx(v.imageBuf(), gg.DrawImageOptions{
		X:             float64(x),
		Y:             float64(y),
		Interpolation: gg.InterpNearest,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
}

// ImageSurface composites visuals onto any draw.Image using draw.Over.
type ImageSurface struct {
	dst draw.Image
}

// NewImageSurface returns a Surface drawing into dst.
func NewImageSurface(dst draw.Image) *ImageSurface {
	return &ImageSurface{dst: dst}
}

// Blit implements Surface.
func (s *ImageSurface) Blit(x, y int, v *Visual) {
	src := v.Image()
	b := src.Bounds()
	draw.Draw(s.dst, image.Rect(x, y, x+b.Dx(), y+b.Dy()), src, b.Min, draw.Over)
}
