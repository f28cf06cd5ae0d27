// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"testing"

	"go.uber.org/multierr"

	"github.com/gogpu/waveform/control"
)

func TestApplySettings(t *testing.T) {
	reg := control.NewRegistry()
	cue := reg.Add(control.Key{Group: "[Channel1]", Item: "cue_point"}, 0)

	err := applySettings(reg, "[Channel1]", []string{
		"cue_point=44100",
		"[Channel2],hotcue_1_position= 88200",
		"no_value",
		"loop_start_position=soon",
		",=1",
	})
	if got := len(multierr.Errors(err)); got != 3 {
		t.Errorf("got %d errors (%v), want 3", got, err)
	}

	if cue.Get() != 44100 {
		t.Errorf("cue_point = %d, want 44100", cue.Get())
	}
	hot, ok := reg.Get(control.Key{Group: "[Channel2]", Item: "hotcue_1_position"})
	if !ok || hot.Get() != 88200 {
		t.Errorf("explicit group setting not applied: %v %v", hot, ok)
	}
	if _, ok := reg.Get(control.Key{Group: "[Channel1]", Item: "loop_start_position"}); ok {
		t.Error("invalid value created a control")
	}
}

func TestBuiltinSpecsResolve(t *testing.T) {
	specs := builtinSpecs("[Channel1]")
	for _, s := range specs {
		if _, err := control.ParseKey(s.PositionKey); err != nil {
			t.Errorf("builtin key %q does not parse: %v", s.PositionKey, err)
		}
	}
}
