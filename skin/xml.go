// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package skin

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// decodeXML collects the <Mark> children of the root element in document
// order. Marks nested deeper belong to other widgets and are ignored.
func decodeXML(r io.Reader) ([]entry, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Permissive: true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read skin XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("unable to read skin XML: no root element")
	}
	markerColor := childText(root, "MarkerColor")
	bgColor := childText(root, "BgColor")

	var entries []entry
	for _, el := range root.SelectElements("Mark") {
		e := entry{
			control:   childText(el, "Control"),
			color:     childText(el, "Color"),
			textColor: childText(el, "TextColor"),
			align:     childText(el, "Align"),
			text:      childText(el, "Text"),
			pixmap:    childText(el, "Pixmap"),

			markerColor: markerColor,
			bgColor:     bgColor,
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
