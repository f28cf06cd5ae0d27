// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveform

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Generation constants. Alphas are absolute, the alpha of MarkSpec colors is
// replaced rather than multiplied.
const (
	// DefaultFontSize is the label font size in pixels.
	DefaultFontSize = 11.0

	// DefaultLabelStretch condenses measured glyphs horizontally.
	DefaultLabelStretch = 0.8

	// TriangleSize is the width of the fallback triangles. The visual is
	// one pixel wider so that it has a single center column.
	TriangleSize = 9

	labelMargin  = 1
	labelRadius  = 2.0
	labelAlpha   = 50.0 / 255
	lineAlpha    = 100.0 / 255
	triangleTip  = 2.1
	glyphPadding = 2
)

// contrastShade flanks the guide line so it stays visible on any waveform.
var contrastShade = color.NRGBA{A: 100}

// ImageLoader loads externally supplied mark images.
// Load never fails loudly: a missing or broken image reports false.
type ImageLoader interface {
	Load(path string) (image.Image, bool)
}

// ImageLoaderFunc adapts a function to ImageLoader.
type ImageLoaderFunc func(path string) (image.Image, bool)

// Load calls f(path).
func (f ImageLoaderFunc) Load(path string) (image.Image, bool) { return f(path) }

// VisualGenerator builds the visual of a mark for a viewport height.
type VisualGenerator interface {
	Generate(spec MarkSpec, height int) *Visual
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithImageLoader sets the loader used for MarkSpec.ImagePath.
// Without one, image paths are ignored.
func WithImageLoader(l ImageLoader) GeneratorOption {
	return func(g *Generator) {
		g.loader = l
	}
}

// WithFontFace replaces the default Go Regular label face.
func WithFontFace(face text.Face) GeneratorOption {
	return func(g *Generator) {
		g.face = face
	}
}

// WithLabelStretch sets the horizontal condense factor applied to label
// glyphs. Values <= 0 disable condensing.
func WithLabelStretch(stretch float64) GeneratorOption {
	return func(g *Generator) {
		g.stretch = stretch
	}
}

// Generator synthesizes mark visuals: an external image if one loads,
// otherwise a text label, otherwise a pair of triangles.
//
// Generator is NOT safe for concurrent use.
type Generator struct {
	loader  ImageLoader
	face    text.Face
	stretch float64
}

// NewGenerator creates a Generator with the default font face.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{stretch: DefaultLabelStretch}
	for _, opt := range opts {
		opt(g)
	}
	if g.face == nil {
		g.face = defaultFace()
	}
	return g
}

var defaultSource = sync.OnceValue(func() *text.FontSource {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		Logger().Warn("waveform: default font unavailable, labels render without text", "err", err)
		return nil
	}
	return src
})

func defaultFace() text.Face {
	src := defaultSource()
	if src == nil {
		return nil
	}
	return src.Face(DefaultFontSize)
}

// Generate builds the visual for spec at the given viewport height.
// It always returns a usable visual of at least 1x1 pixels.
func (g *Generator) Generate(spec MarkSpec, height int) *Visual {
	height = max(height, 1)

	if spec.ImagePath != "" && g.loader != nil {
		if img, ok := g.loader.Load(spec.ImagePath); ok && img != nil && !img.Bounds().Empty() {
			return NewVisual(VisualImage, img)
		}
		Logger().Debug("waveform: mark image unavailable, falling back", "path", spec.ImagePath)
	}

	if spec.Text != "" {
		return g.label(spec, height)
	}
	return triangle(spec, height)
}

// labelLayout is the pixel geometry of a label visual.
type labelLayout struct {
	width, height int
	rect          image.Rectangle // label background
	word          image.Rectangle // glyph placement inside rect
	guide         []span
}

// span is a half-open row range [top, bottom) of the guide line.
type span struct{ top, bottom int }

func (l labelLayout) center() int { return l.width / 2 }

// layoutLabel places a wordW x wordH glyph box in a visual of the given
// height. The word width is rounded up to even, which makes the label rect
// odd and the visual even, so center() is a single column inside the rect.
func layoutLabel(wordW, wordH, height int, align Alignment) labelLayout {
	evenW := wordW + wordW%2
	rectW := evenW + 2*labelMargin + 1
	rectH := min(wordH+2*labelMargin+1, height)

	top := 0
	switch align {
	case AlignBottom:
		top = height - rectH
	case AlignVCenter:
		top = (height - rectH) / 2
	}

	l := labelLayout{
		width:  rectW + 1,
		height: height,
		rect:   image.Rect(0, top, rectW, top+rectH),
	}
	wx := (rectW - wordW) / 2
	wy := top + (rectH-wordH)/2
	l.word = image.Rect(wx, wy, wx+wordW, wy+wordH)

	l.guide = appendSpan(l.guide, 0, l.rect.Min.Y-1)
	l.guide = appendSpan(l.guide, l.rect.Max.Y+1, height)
	return l
}

func appendSpan(spans []span, top, bottom int) []span {
	if bottom <= top {
		return spans
	}
	return append(spans, span{top: top, bottom: bottom})
}

func (g *Generator) label(spec MarkSpec, height int) *Visual {
	word := g.renderWord(spec.Text, spec.TextColor)
	var ww, wh int
	if word != nil {
		ww, wh = word.Bounds().Dx(), word.Bounds().Dy()
	}
	l := layoutLabel(ww, wh, height, spec.Align)

	dc := gg.NewContext(l.width, l.height)
	defer func() { _ = dc.Close() }()

	bg := withAlpha(spec.Color, labelAlpha)
	dc.SetRGBA(bg.R, bg.G, bg.B, bg.A)
	r := l.rect
	dc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), labelRadius)
	_ = dc.Fill()
	_ = dc.FlushGPU()

	img := imaging.Clone(dc.Image())
	if word != nil {
		draw.Draw(img, l.word, word, word.Bounds().Min, draw.Over)
	}
	drawGuide(img, l.center(), l.guide, spec.Color)

	Logger().Debug("waveform: generated label visual",
		"text", spec.Text, "width", l.width, "height", l.height)
	return NewVisual(VisualLabel, img)
}

// renderWord rasterizes s opaquely in col, crops it to its tight glyph box
// and condenses it horizontally. Returns nil when nothing is inked.
func (g *Generator) renderWord(s string, col gg.RGBA) *image.NRGBA {
	if g.face == nil {
		return nil
	}
	m := g.face.Metrics()
	w := int(math.Ceil(g.face.Advance(s))) + 2*glyphPadding
	h := int(math.Ceil(m.Ascent+m.Descent)) + 2*glyphPadding
	if w <= 2*glyphPadding || h <= 2*glyphPadding {
		return nil
	}

	scratch := image.NewNRGBA(image.Rect(0, 0, w, h))
	col.A = 1
	text.Draw(scratch, s, g.face, glyphPadding, glyphPadding+m.Ascent, col.Color())

	box := inkBounds(scratch)
	if box.Empty() {
		return nil
	}
	word := imaging.Crop(scratch, box)

	if g.stretch > 0 {
		cw := max(int(math.Round(float64(box.Dx())*g.stretch)), 1)
		if cw != box.Dx() {
			word = imaging.Resize(word, cw, box.Dy(), imaging.Linear)
		}
	}
	return word
}

// inkBounds returns the smallest rectangle containing every pixel with
// non-zero alpha.
func inkBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			if row[x*4+3] == 0 {
				continue
			}
			minX = min(minX, b.Min.X+x)
			maxX = max(maxX, b.Min.X+x+1)
			minY = min(minY, y)
			maxY = max(maxY, y+1)
		}
	}
	if maxX <= minX || maxY <= minY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// triangleGuide returns the guide span of a triangle visual.
func triangleGuide(height int) []span {
	top := int(math.Ceil(TriangleSize/2.0)) + 1
	return appendSpan(nil, top, height-top)
}

func triangle(spec MarkSpec, height int) *Visual {
	const size = float64(TriangleSize)
	width := TriangleSize + 1
	h := float64(height)

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	c := withAlpha(spec.Color, lineAlpha)
	dc.SetRGBA(c.R, c.G, c.B, c.A)

	dc.MoveTo(0.5, 0)
	dc.LineTo(size+0.5, 0)
	dc.LineTo(size*0.5+0.1, size*0.5)
	dc.ClosePath()

	dc.MoveTo(0, h)
	dc.LineTo(size+0.5, h)
	dc.LineTo(size*0.5+0.1, h-size*0.5-triangleTip)
	dc.ClosePath()
	_ = dc.Fill()
	_ = dc.FlushGPU()

	img := imaging.Clone(dc.Image())
	drawGuide(img, width/2, triangleGuide(height), spec.Color)

	Logger().Debug("waveform: generated triangle visual", "width", width, "height", height)
	return NewVisual(VisualTriangle, img)
}

// drawGuide draws the three-column guide line: the mark color at center
// with a dark contrast column on each side.
func drawGuide(dst *image.NRGBA, center int, spans []span, col gg.RGBA) {
	line := image.NewUniform(withAlpha(col, lineAlpha).Color())
	shade := image.NewUniform(contrastShade)
	for _, s := range spans {
		draw.Draw(dst, image.Rect(center, s.top, center+1, s.bottom), line, image.Point{}, draw.Over)
		draw.Draw(dst, image.Rect(center-1, s.top, center, s.bottom), shade, image.Point{}, draw.Over)
		draw.Draw(dst, image.Rect(center+1, s.top, center+2, s.bottom), shade, image.Point{}, draw.Over)
	}
}

func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = a
	return c
}
