// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package waveform renders positional marks (cue points, loop markers,
// hotcues) over a scrolling waveform display.
//
// # Overview
//
// Each mark tracks one live sample position and is drawn every frame as a
// small cached image anchored on the pixel column of that position. The
// package has two halves:
//
//   - Generator builds a mark's visual once: an external image if one
//     loads, otherwise a text label with a guide line, otherwise a pair of
//     triangles joined by a guide line.
//   - MarkRenderer runs once per frame: it reads each mark's position, maps
//     it through the Viewport, culls off-screen marks and blits the cached
//     visual centered on its column.
//
// # Quick Start
//
//	reg := control.NewRegistry()
//	cue := reg.Add(control.Key{Group: "[Channel1]", Item: "cue_point"}, 0)
//
//	specs, _ := skin.LoadFile("skin/waveform.xml", skin.WithGroup("[Channel1]"))
//	win := viewport.New(800, 40, 44100*60*2)
//
//	r := waveform.NewMarkRenderer(reg, win)
//	r.Setup(specs)
//
//	dc := gg.NewContext(800, 40)
//	cue.Set(44100)
//	r.DrawFrame(waveform.NewContextSurface(dc))
//
// # Visual Geometry
//
// Generated visuals span the full viewport height and have an even width,
// so Width()/2 is a single column. The guide line is three columns wide:
// the mark color at the center flanked by a translucent dark column on
// each side, which keeps it readable over any waveform colors.
//
// # Caching
//
// A visual is generated lazily on the first frame a mark is due, because the
// viewport height is usually unknown when marks are configured. It is kept
// until the viewport height changes.
//
// # Thread Safety
//
// MarkRenderer and Generator are NOT safe for concurrent use. Positions are
// read without locking; PositionHandle implementations must make reads
// tear-free (control.Control uses an atomic).
package waveform
