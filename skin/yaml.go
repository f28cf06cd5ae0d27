// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package skin

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlSkin is the YAML document layout:
//
//	markerColor: "#00ff00"
//	bgColor: "#000000"
//	marks:
//	  - control: cue_point
//	    color: "#ff0000"
//	    textColor: "#ffffff"
//	    align: top
//	    text: CUE
//	    pixmap: cue.png
type yamlSkin struct {
	MarkerColor string     `yaml:"markerColor"`
	BgColor     string     `yaml:"bgColor"`
	Marks       []yamlMark `yaml:"marks"`
}

type yamlMark struct {
	Control   string `yaml:"control"`
	Color     string `yaml:"color"`
	TextColor string `yaml:"textColor"`
	Align     string `yaml:"align"`
	Text      string `yaml:"text"`
	Pixmap    string `yaml:"pixmap"`
}

func decodeYAML(r io.Reader) ([]entry, error) {
	var doc yamlSkin
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to read skin YAML: %w", err)
	}

	entries := make([]entry, 0, len(doc.Marks))
	for _, m := range doc.Marks {
		entries = append(entries, entry{
			control:     m.Control,
			color:       m.Color,
			textColor:   m.TextColor,
			align:       m.Align,
			text:        m.Text,
			pixmap:      m.Pixmap,
			markerColor: doc.MarkerColor,
			bgColor:     doc.BgColor,
		})
	}
	return entries, nil
}
