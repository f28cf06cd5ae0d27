// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package skin loads mark definitions from skin documents.
//
// Two document formats are supported. XML skins declare marks as <Mark>
// children of the root element:
//
//	<Visual>
//	  <MarkerColor>#00FF00</MarkerColor>
//	  <BgColor>#000000</BgColor>
//	  <Mark>
//	    <Control>cue_point</Control>
//	    <Color>#FF0000</Color>
//	    <TextColor>#FFFFFF</TextColor>
//	    <Align>top</Align>
//	    <Text>CUE</Text>
//	  </Mark>
//	</Visual>
//
// YAML skins use the same fields in a flat document (see yamlSkin).
//
// A mark without Color inherits the root's MarkerColor, a mark without
// TextColor inherits the root's BgColor. The loader resolves all
// fallbacks; the renderer only ever sees complete specs.
package skin

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/waveform"
	"github.com/gogpu/waveform/control"
)

// Default colors for marks whose color is missing and cannot be inherited.
var (
	DefaultColor     = gg.White
	DefaultTextColor = gg.Black
)

// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
var ErrUnsupportedFormat = errors.New("skin: unsupported document format")

// Format is a skin document format.
type Format uint8

const (
	// FormatXML is a skin XML document.
	FormatXML Format = iota

	// FormatYAML is a YAML mark list.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "xml"
}

// FormatFromPath picks the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Option configures loading.
type Option func(*options)

type options struct {
	group   string
	baseDir string
}

// WithGroup sets the control group used to build position keys, e.g.
// "[Channel1]". Control values that already contain a group are kept.
func WithGroup(group string) Option {
	return func(o *options) {
		o.group = group
	}
}

// WithBaseDir sets the directory relative image paths are resolved against.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// Load reads mark specs from r. Marks are returned in document order.
func Load(r io.Reader, format Format, opts ...Option) ([]waveform.MarkSpec, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		entries []entry
		err     error
	)
	switch format {
	case FormatYAML:
		entries, err = decodeYAML(r)
	default:
		entries, err = decodeXML(r)
	}
	if err != nil {
		return nil, err
	}

	specs := make([]waveform.MarkSpec, 0, len(entries))
	for _, e := range entries {
		specs = append(specs, e.resolve(&o))
	}
	waveform.Logger().Debug("skin: loaded marks", "format", format.String(), "count", len(specs))
	return specs, nil
}

// LoadFile reads mark specs from a skin file. The format is chosen by
// extension and relative image paths resolve against the file's directory
// unless WithBaseDir is given.
func LoadFile(path string, opts ...Option) ([]waveform.MarkSpec, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("skin: unable to open %q: %w", path, err)
	}
	defer f.Close()

	opts = append([]Option{WithBaseDir(filepath.Dir(path))}, opts...)
	specs, err := Load(f, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("skin: %q: %w", path, err)
	}
	return specs, nil
}

// entry is one raw mark definition with its inherited parent values.
type entry struct {
	control     string
	color       string
	textColor   string
	align       string
	text        string
	pixmap      string
	markerColor string // parent fallback for color
	bgColor     string // parent fallback for textColor
}

func (e entry) resolve(o *options) waveform.MarkSpec {
	spec := waveform.MarkSpec{
		PositionKey: positionKey(e.control, o.group),
		Align:       waveform.ParseAlignment(e.align),
		Text:        norm.NFC.String(e.text),
		ImagePath:   imagePath(e.pixmap, o.baseDir),
	}

	var ok bool
	if spec.Color, ok = parseColor(e.color); !ok {
		waveform.Logger().Debug("skin: mark has no Color, using parent MarkerColor",
			"control", e.control, "markerColor", e.markerColor)
		if spec.Color, ok = parseColor(e.markerColor); !ok {
			spec.Color = DefaultColor
		}
	}
	if spec.TextColor, ok = parseColor(e.textColor); !ok {
		waveform.Logger().Debug("skin: mark has no TextColor, using parent BgColor",
			"control", e.control, "bgColor", e.bgColor)
		if spec.TextColor, ok = parseColor(e.bgColor); !ok {
			spec.TextColor = DefaultTextColor
		}
	}
	return spec
}

// positionKey builds a control key string. An empty item yields an empty
// key, which never resolves.
func positionKey(item, group string) string {
	item = strings.TrimSpace(item)
	if item == "" {
		return ""
	}
	if strings.Contains(item, ",") || group == "" {
		return item
	}
	return control.Key{Group: group, Item: item}.String()
}

func imagePath(p, baseDir string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) || baseDir == "" {
		return p
	}
	return filepath.Join(baseDir, p)
}

// parseColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (leading '#'
// optional). It reports false for empty or malformed values.
func parseColor(s string) (gg.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return gg.RGBA{}, false
		}
	}
	return gg.Hex(s), true
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
