// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command markdemo renders one waveform frame with its marks to a PNG file.
//
// Marks come from a skin file (XML or YAML) or a built-in set. Position
// controls are set from the command line:
//
//	markdemo --skin waveform.xml --set cue_point=441000 --set hotcue_1_position=1323000 out.png
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"github.com/gogpu/gg"

	"github.com/gogpu/waveform"
	"github.com/gogpu/waveform/assets"
	"github.com/gogpu/waveform/control"
	"github.com/gogpu/waveform/skin"
	"github.com/gogpu/waveform/viewport"
)

const sampleRate = 44100

// builtinSpecs is used when no skin is given.
func builtinSpecs(group string) []waveform.MarkSpec {
	key := func(item string) string { return control.Key{Group: group, Item: item}.String() }
	return []waveform.MarkSpec{
		{PositionKey: key("cue_point"), Color: gg.Hex("#FF0000"), TextColor: gg.White, Text: "CUE"},
		{PositionKey: key("loop_start_position"), Color: gg.Hex("#00FF00"), TextColor: gg.Black},
		{PositionKey: key("loop_end_position"), Color: gg.Hex("#00FF00"), TextColor: gg.Black},
		{PositionKey: key("hotcue_1_position"), Color: gg.Hex("#FF8000"), TextColor: gg.White, Text: "1", Align: waveform.AlignBottom},
		{PositionKey: key("hotcue_2_position"), Color: gg.Hex("#00A0FF"), TextColor: gg.White, Text: "2", Align: waveform.AlignVCenter},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "markdemo",
		Usage:           "renders waveform marks for a set of control positions",
		HideHelpCommand: true,
		ArgsUsage:       "[DESTINATION]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "skin", Aliases: []string{"s"}, Usage: "load marks from skin `FILE` (XML or YAML)"},
			&cli.StringFlag{Name: "group", Value: "[Channel1]", Usage: "control `GROUP` for marks without an explicit one"},
			&cli.IntFlag{Name: "width", Value: 800, Usage: "viewport width in pixels"},
			&cli.IntFlag{Name: "height", Value: 80, Usage: "viewport height in pixels"},
			&cli.FloatFlag{Name: "seconds", Value: 60, Usage: "track length in seconds"},
			&cli.FloatFlag{Name: "zoom", Usage: "samples per pixel, 0 fits the whole track"},
			&cli.Int64Flag{Name: "center", Usage: "center the view on sample `N`"},
			&cli.StringSliceFlag{Name: "set", Usage: "set control `KEY=SAMPLE`, KEY is ITEM or GROUP,ITEM (repeatable)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug messages to stderr"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}
			waveform.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return ctx, nil
		},
		Action: run,
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nmarkdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) (err error) {
	log := waveform.Logger()
	group := cmd.String("group")

	specs := builtinSpecs(group)
	if path := cmd.String("skin"); path != "" {
		if specs, err = skin.LoadFile(path, skin.WithGroup(group)); err != nil {
			return err
		}
	}

	reg := control.NewRegistry()
	for _, spec := range specs {
		if spec.PositionKey == "" {
			continue
		}
		key, err := control.ParseKey(spec.PositionKey)
		if err != nil {
			log.Warn("Skipping mark with malformed control key", "key", spec.PositionKey, "err", err)
			continue
		}
		reg.Add(key, 0)
	}
	if err := applySettings(reg, group, cmd.StringSlice("set")); err != nil {
		return err
	}

	track := int64(cmd.Float("seconds") * sampleRate * 2)
	win := viewport.New(cmd.Int("width"), cmd.Int("height"), track)
	if zoom := cmd.Float("zoom"); zoom > 0 {
		win.SetZoom(zoom)
	}
	if cmd.IsSet("center") {
		win.CenterOn(cmd.Int64("center"))
	}

	gen := waveform.NewGenerator(waveform.WithImageLoader(assets.NewLoader(0)))
	r := waveform.NewMarkRenderer(reg, win, waveform.WithGenerator(gen))
	r.Setup(specs)

	dc := gg.NewContext(win.Width(), win.Height())
	defer func() {
		if er := dc.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to release drawing context: %w", er))
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	drawWaveform(dc, win)
	st := r.DrawFrame(waveform.NewContextSurface(dc))
	log.Info("Frame rendered",
		"marks", r.Len(), "drawn", st.Drawn, "culled", st.Culled,
		"unset", st.Unset, "inert", st.Inert, "generated", st.Generated)

	dst := "marks.png"
	if cmd.NArg() > 0 {
		dst = cmd.Args().First()
	}
	if err := dc.SavePNG(dst); err != nil {
		return fmt.Errorf("unable to save '%s': %w", dst, err)
	}
	log.Info("Image saved", "path", dst, "width", win.Width(), "height", win.Height())
	return nil
}

// applySettings parses KEY=SAMPLE assignments and stores them in reg.
// Unknown keys are added so that hosts may set controls no mark uses.
func applySettings(reg *control.Registry, group string, settings []string) error {
	var errs error
	for _, s := range settings {
		k, v, ok := strings.Cut(s, "=")
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("setting '%s': missing '='", s))
			continue
		}
		if !strings.Contains(k, ",") {
			k = group + "," + k
		}
		key, err := control.ParseKey(k)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("setting '%s': %w", s, err))
			continue
		}
		sample, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("setting '%s': %w", s, errors.Unwrap(err)))
			continue
		}
		reg.Add(key, 0).Set(sample)
	}
	return errs
}

// drawWaveform paints a synthetic waveform so marks have something to sit on.
func drawWaveform(dc *gg.Context, win *viewport.Window) {
	w, h := float64(win.Width()), float64(win.Height())
	dc.ClearWithColor(gg.RGB(0.08, 0.08, 0.1))

	mid := h / 2
	dc.SetRGBA(0.2, 0.55, 0.9, 0.9)
	for x := 0; x < win.Width(); x++ {
		t := float64(win.ToSample(float64(x))) / (2 * sampleRate)
		env := 0.35 + 0.3*math.Abs(math.Sin(t*0.7)) + 0.25*math.Abs(math.Sin(t*5.3))
		amp := env * mid * 0.9
		dc.DrawRectangle(float64(x), mid-amp, 1, 2*amp)
	}
	_ = dc.Fill()

	dc.SetRGBA(1, 1, 1, 0.15)
	dc.DrawRectangle(0, mid, w, 1)
	_ = dc.Fill()
}
