// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveform

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gogpu/waveform"

// rendererMetrics holds the renderer counters. Counters are added once per
// frame with the frame totals, never per mark.
type rendererMetrics struct {
	generated metric.Int64Counter
	drawn     metric.Int64Counter
	culled    metric.Int64Counter
}

func newRendererMetrics(mp metric.MeterProvider) *rendererMetrics {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	m := mp.Meter(instrumentationName)

	return &rendererMetrics{
		generated: counter(m, "waveform.marks.generated", "Mark visuals generated"),
		drawn:     counter(m, "waveform.marks.drawn", "Mark visuals composited"),
		culled:    counter(m, "waveform.marks.culled", "Mark draws skipped as off-screen"),
	}
}

// counter creates an Int64Counter, falling back to a no-op instrument so
// that a misbehaving provider never affects drawing.
func counter(m metric.Meter, name, desc string) metric.Int64Counter {
	c, err := m.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		Logger().Debug("waveform: metric unavailable", "name", name, "err", err)
		return noop.Int64Counter{}
	}
	return c
}

func (rm *rendererMetrics) record(st FrameStats) {
	ctx := context.Background()
	if st.Generated > 0 {
		rm.generated.Add(ctx, int64(st.Generated))
	}
	if st.Drawn > 0 {
		rm.drawn.Add(ctx, int64(st.Drawn))
	}
	if st.Culled > 0 {
		rm.culled.Add(ctx, int64(st.Culled))
	}
}
