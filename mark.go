// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveform

// PositionHandle is a read-only view of a live position value owned by
// someone else. Read must be tear-free; the renderer never synchronizes.
type PositionHandle interface {
	// Read returns the current sample index. Values <= 0 mean "unset".
	Read() int64
}

// PositionResolver looks up the live position source for a mark.
type PositionResolver interface {
	// Resolve returns the handle for key, or false if there is none.
	Resolve(key string) (PositionHandle, bool)
}

// PositionResolverFunc adapts a function to PositionResolver.
type PositionResolverFunc func(key string) (PositionHandle, bool)

// Resolve calls f(key).
func (f PositionResolverFunc) Resolve(key string) (PositionHandle, bool) {
	return f(key)
}

// visualCache memoizes a Visual for the viewport height it was built for.
type visualCache struct {
	height int
	visual *Visual
}

// lookup returns the cached visual if it was generated for height.
func (c *visualCache) lookup(height int) (*Visual, bool) {
	if c.visual == nil || c.height != height {
		return nil, false
	}
	return c.visual, true
}

func (c *visualCache) store(height int, v *Visual) {
	c.height = height
	c.visual = v
}

// Mark is one configured mark: its spec, the resolved position handle and
// the cached visual.
type Mark struct {
	spec   MarkSpec
	handle PositionHandle
	cache  visualCache
}

// Spec returns the mark configuration.
func (m *Mark) Spec() MarkSpec { return m.spec }

// Active reports whether the mark has a resolved position source.
// Inactive marks are never generated or drawn.
func (m *Mark) Active() bool { return m.handle != nil }

// Visual returns the cached visual, or nil if none has been generated yet.
func (m *Mark) Visual() *Visual { return m.cache.visual }
