// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewport provides a pan/zoom sample window over a track.
//
// Samples are interleaved stereo, so a visual sample (one pixel's worth of
// audio) always starts on an even index.
package viewport

import "math"

// Window maps track sample indices to pixel columns.
//
// Window is NOT safe for concurrent use; it belongs to the paint thread.
type Window struct {
	width, height int
	track         int64   // total samples, 0 if unknown
	first         int64   // sample shown at x = 0
	spp           float64 // samples per pixel
}

// New returns a Window of the given pixel size showing the whole track.
func New(width, height int, trackSamples int64) *Window {
	w := &Window{
		width:  max(width, 0),
		height: max(height, 0),
		track:  max(trackSamples, 0),
		spp:    1,
	}
	if w.width > 0 && w.track > 0 {
		w.spp = max(float64(w.track)/float64(w.width), 1)
	}
	return w
}

// Width returns the window width in pixels.
func (w *Window) Width() int { return w.width }

// Height returns the window height in pixels.
func (w *Window) Height() int { return w.height }

// TrackSamples returns the track length in samples.
func (w *Window) TrackSamples() int64 { return w.track }

// First returns the sample shown at x = 0.
func (w *Window) First() int64 { return w.first }

// SamplesPerPixel returns the current zoom.
func (w *Window) SamplesPerPixel() float64 { return w.spp }

// Resize changes the pixel size. The zoom is kept.
func (w *Window) Resize(width, height int) {
	w.width = max(width, 0)
	w.height = max(height, 0)
}

// SetZoom sets the number of samples per pixel. Non-positive values are
// ignored.
func (w *Window) SetZoom(spp float64) {
	if spp > 0 && !math.IsInf(spp, 0) {
		w.spp = spp
	}
}

// Pan sets the sample shown at x = 0.
func (w *Window) Pan(first int64) {
	w.first = first
}

// CenterOn pans so that sample is at the horizontal center, the usual
// placement of the play position.
func (w *Window) CenterOn(sample int64) {
	w.first = sample - int64(math.Round(float64(w.width)/2*w.spp))
}

// Regularize clamps sample to the track and aligns it down to the first
// sample of its visual sample, so marks do not jitter between adjacent
// columns while zoomed out.
func (w *Window) Regularize(sample int64) int64 {
	if w.track > 0 {
		sample = min(max(sample, 0), w.track)
	}
	if step := 2 * int64(w.spp); step > 1 {
		sample -= sample % step
	}
	return sample
}

// ToPixelX maps a sample to its x-coordinate in the window.
func (w *Window) ToPixelX(sample int64) float64 {
	return float64(sample-w.first) / w.spp
}

// ToSample maps an x-coordinate back to a sample index.
func (w *Window) ToSample(x float64) int64 {
	return w.first + int64(math.Round(x*w.spp))
}
