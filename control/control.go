// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package control provides keyed live values that marks track.
//
// A Control is a single int64 sample position updated by one writer (the
// engine) and read by any number of renderers. Reads and writes are atomic,
// so a renderer can poll a Control from the paint thread without locking.
package control

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gogpu/waveform"
)

// ErrInvalidKey is returned by ParseKey for malformed keys.
var ErrInvalidKey = errors.New("control: invalid key")

// Key identifies a control by group and item, e.g. "[Channel1]" and
// "cue_point".
type Key struct {
	Group string
	Item  string
}

// String returns the canonical "group,item" form.
func (k Key) String() string {
	return k.Group + "," + k.Item
}

// ParseKey parses the "group,item" form produced by Key.String.
func ParseKey(s string) (Key, error) {
	group, item, ok := strings.Cut(s, ",")
	group, item = strings.TrimSpace(group), strings.TrimSpace(item)
	if !ok || group == "" || item == "" {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return Key{Group: group, Item: item}, nil
}

// Control is a live sample position.
type Control struct {
	key   Key
	value atomic.Int64
}

// Key returns the control key.
func (c *Control) Key() Key { return c.key }

// Set stores a new value.
func (c *Control) Set(v int64) { c.value.Store(v) }

// Get returns the current value.
func (c *Control) Get() int64 { return c.value.Load() }

// Read implements waveform.PositionHandle.
func (c *Control) Read() int64 { return c.value.Load() }

// Registry holds controls by key. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	controls map[Key]*Control
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{controls: make(map[Key]*Control)}
}

// Add registers a control with an initial value and returns it. Adding an
// existing key returns the existing control unchanged.
func (r *Registry) Add(key Key, initial int64) *Control {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.controls[key]; ok {
		return c
	}
	c := &Control{key: key}
	c.value.Store(initial)
	r.controls[key] = c
	return c
}

// Get returns the control for key.
func (r *Registry) Get(key Key) (*Control, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.controls[key]
	return c, ok
}

// Len returns the number of registered controls.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.controls)
}

// Resolve implements waveform.PositionResolver for keys in "group,item"
// form. Malformed or unknown keys resolve to nothing.
func (r *Registry) Resolve(key string) (waveform.PositionHandle, bool) {
	k, err := ParseKey(key)
	if err != nil {
		return nil, false
	}
	c, ok := r.Get(k)
	if !ok {
		return nil, false
	}
	return c, true
}

var _ waveform.PositionResolver = (*Registry)(nil)
