// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveform

import (
	"strings"

	"github.com/gogpu/gg"
)

// Alignment is the vertical placement hint for a mark's label.
type Alignment uint8

const (
	// AlignTop places the label at the top edge. This is the default.
	AlignTop Alignment = iota

	// AlignVCenter centers the label vertically.
	AlignVCenter

	// AlignBottom places the label at the bottom edge.
	AlignBottom
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignVCenter:
		return "vcenter"
	case AlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

// ParseAlignment maps a skin alignment string to an Alignment.
// Matching is a case-insensitive substring test so that combined values
// such as "bottom|left" still resolve. Unknown values map to AlignTop.
func ParseAlignment(s string) Alignment {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "center"):
		return AlignVCenter
	case strings.Contains(s, "bottom"):
		return AlignBottom
	default:
		return AlignTop
	}
}

// MarkSpec is the resolved configuration of one mark.
// It is never modified after loading.
type MarkSpec struct {
	// PositionKey identifies the live position source the mark tracks.
	PositionKey string

	// Color is used for the label background, triangles and guide line.
	Color gg.RGBA

	// TextColor is used for the label text.
	TextColor gg.RGBA

	// Align is the vertical placement of the label.
	Align Alignment

	// Text is the label. Empty means a triangle marker is drawn instead,
	// unless ImagePath resolves to a loadable image.
	Text string

	// ImagePath points to an externally supplied mark image. It takes
	// precedence over Text when the image loads.
	ImagePath string
}
