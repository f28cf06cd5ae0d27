// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveform

import "go.opentelemetry.io/otel/metric"

// Option configures a MarkRenderer during creation.
//
// Example:
//
//	// Default generator, global meter provider
//	r := waveform.NewMarkRenderer(registry, window)
//
//	// Custom image loader and metrics
//	gen := waveform.NewGenerator(waveform.WithImageLoader(assets.NewLoader(0)))
//	r := waveform.NewMarkRenderer(registry, window,
//	    waveform.WithGenerator(gen),
//	    waveform.WithMeterProvider(provider))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for MarkRenderer creation.
type rendererOptions struct {
	generator     VisualGenerator
	meterProvider metric.MeterProvider
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		generator:     nil, // NewGenerator() if nil
		meterProvider: nil, // otel global provider if nil
	}
}

// WithGenerator sets the generator used to build mark visuals.
func WithGenerator(g VisualGenerator) Option {
	return func(o *rendererOptions) {
		o.generator = g
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider for renderer
// counters. The global provider is used otherwise, which is a no-op until
// the host installs one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *rendererOptions) {
		o.meterProvider = mp
	}
}
