// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveform

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

func opaqueVisual(w, h int, c color.NRGBA) *Visual {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return NewVisual(VisualImage, img)
}

func TestImageSurfaceBlit(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 10))
	s := NewImageSurface(dst)
	s.Blit(-2, 0, opaqueVisual(4, 10, color.NRGBA{R: 255, A: 255}))

	if _, _, _, a := dst.At(0, 5).RGBA(); a != 0xffff {
		t.Errorf("alpha at (0,5) = %#x, want opaque", a)
	}
	if _, _, _, a := dst.At(2, 5).RGBA(); a != 0 {
		t.Errorf("alpha at (2,5) = %#x, want untouched", a)
	}
}

func TestContextSurfaceIgnoresTransform(t *testing.T) {
	dc := gg.NewContext(40, 10)
	defer func() { _ = dc.Close() }()

	// A host drawing its waveform with a transform must not move marks.
	dc.Translate(15, 0)
	dc.Scale(2, 1)

	s := NewContextSurface(dc)
	v := opaqueVisual(4, 10, color.NRGBA{G: 255, A: 255})
	s.Blit(4, 0, v)
	_ = dc.FlushGPU()

	img := dc.Image()
	for x := 4; x < 8; x++ {
		if a := alphaAt(img, x, 5); a < 250 {
			t.Errorf("alpha at (%d,5) = %d, want opaque", x, a)
		}
	}
	for _, x := range []int{3, 8, 19, 23} {
		if a := alphaAt(img, x, 5); a != 0 {
			t.Errorf("alpha at (%d,5) = %d, want 0", x, a)
		}
	}

	// The host transform is restored after the blit.
	if dc.GetTransform().IsIdentity() {
		t.Error("Blit left the context with an identity transform")
	}
}

func TestVisualAccessors(t *testing.T) {
	v := opaqueVisual(10, 40, color.NRGBA{A: 255})
	if v.Width() != 10 || v.Height() != 40 || v.Center() != 5 {
		t.Errorf("visual %dx%d center %d, want 10x40 center 5", v.Width(), v.Height(), v.Center())
	}
	if v.Kind().String() != "image" || VisualLabel.String() != "label" || VisualTriangle.String() != "triangle" {
		t.Error("VisualKind names")
	}
	if v.imageBuf() != v.imageBuf() {
		t.Error("imageBuf is rebuilt on every call")
	}
}
