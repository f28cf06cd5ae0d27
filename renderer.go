// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveform

import "math"

// Viewport maps sample indices to pixel columns of the waveform display.
type Viewport interface {
	// Width returns the viewport width in pixels.
	Width() int

	// Height returns the viewport height in pixels.
	Height() int

	// Regularize normalizes a sample index into the viewport's domain.
	Regularize(sample int64) int64

	// ToPixelX maps a regularized sample index to a pixel x-coordinate.
	ToPixelX(sample int64) float64
}

// FrameStats summarizes one DrawFrame pass.
type FrameStats struct {
	Drawn     int // visuals composited
	Culled    int // fully outside the viewport
	Unset     int // position <= 0 this frame
	Inert     int // no position source
	Generated int // visuals built during this frame
}

// MarkRenderer composites mark visuals over the waveform every frame.
//
// MarkRenderer owns its marks. It is NOT safe for concurrent use: Setup and
// DrawFrame must be called from the paint thread.
type MarkRenderer struct {
	resolver PositionResolver
	viewport Viewport
	gen      VisualGenerator
	metrics  *rendererMetrics
	marks    []*Mark
}

// NewMarkRenderer creates a renderer resolving position keys with resolver
// and placing marks in vp. A nil resolver leaves every mark inert.
func NewMarkRenderer(resolver PositionResolver, vp Viewport, opts ...Option) *MarkRenderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.generator == nil {
		o.generator = NewGenerator()
	}
	return &MarkRenderer{
		resolver: resolver,
		viewport: vp,
		gen:      o.generator,
		metrics:  newRendererMetrics(o.meterProvider),
	}
}

// Setup replaces all marks with one mark per spec, in order. Later marks
// draw on top of earlier ones. Cached visuals of previous marks are dropped.
func (r *MarkRenderer) Setup(specs []MarkSpec) {
	r.marks = make([]*Mark, 0, len(specs))
	for _, spec := range specs {
		m := &Mark{spec: spec}
		if r.resolver != nil {
			if h, ok := r.resolver.Resolve(spec.PositionKey); ok && h != nil {
				m.handle = h
			}
		}
		if m.handle == nil {
			Logger().Debug("waveform: mark has no position source, it will not be drawn",
				"key", spec.PositionKey)
		}
		r.marks = append(r.marks, m)
	}
}

// Marks returns the marks in draw order. The slice must not be modified.
func (r *MarkRenderer) Marks() []*Mark { return r.marks }

// Len returns the number of configured marks, active or not.
func (r *MarkRenderer) Len() int { return len(r.marks) }

// DrawFrame composites every visible mark onto s.
//
// Visuals are generated on first use and regenerated only when the
// viewport height changes. After that the per-mark cost is one position
// read, one transform, one cull test and at most one blit.
func (r *MarkRenderer) DrawFrame(s Surface) FrameStats {
	var st FrameStats
	width := float64(r.viewport.Width())
	height := r.viewport.Height()

	for _, m := range r.marks {
		if m.handle == nil {
			st.Inert++
			continue
		}

		v, ok := m.cache.lookup(height)
		if !ok {
			v = r.gen.Generate(m.spec, height)
			m.cache.store(height, v)
			st.Generated++
		}

		pos := m.handle.Read()
		if pos <= 0 {
			st.Unset++
			continue
		}

		x := r.viewport.ToPixelX(r.viewport.Regularize(pos))
		half := v.Width() / 2
		if x+float64(half) <= 0 || x-float64(half) >= width {
			st.Culled++
			continue
		}

		s.Blit(int(math.Round(x))-half, 0, v)
		st.Drawn++
	}

	r.metrics.record(st)
	return st
}
