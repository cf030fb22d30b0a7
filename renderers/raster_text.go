package renderers

import (
	"image/color"
	"math"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/plotgd/plotgd"
	"github.com/plotgd/plotgd/fonts"
)

// textFrame is the baseline frame a text run is laid out in: a device
// pixel origin plus the direction of the rotated baseline.
type textFrame struct {
	ox, oy   float64
	cos, sin float64
}

// point maps a run-local position, x along the baseline and y below
// it, into device pixels.
func (f textFrame) point(x, y float64) fixed.Point26_6 {
	return rasterx.ToFixedP(f.ox+x*f.cos-y*f.sin, f.oy+x*f.sin+y*f.cos)
}

func (c *rasterCanvas) Text(t *plotgd.TextCall) {
	if t.Col.Transparent() || t.Str == "" {
		return
	}
	src, err := c.library.Resolve(t.Font.Family, t.Font.Weight, t.Font.Italic)
	if err != nil {
		plotgd.Logger().Warn("renderers: no face for text call",
			"family", t.Font.Family, "err", err)
		return
	}
	face := src.Face(t.Font.Size * c.scale)
	glyphs := c.shaper.Shape(face, t.Str)
	if len(glyphs) == 0 {
		return
	}

	var advance float64
	for _, g := range glyphs {
		advance += g.XAdvance
	}
	sin, cos := math.Sincos(-t.Rot * math.Pi / 180)
	shift := -advance * t.Hadj
	frame := textFrame{
		ox:  t.Pos.X*c.scale + shift*cos,
		oy:  t.Pos.Y*c.scale + shift*sin,
		cos: cos,
		sin: sin,
	}

	fill := nrgba(t.Col)
	for _, g := range glyphs {
		c.glyphOutline(face, g, frame, fill)
	}
}

// glyphOutline fills one glyph. Outline coordinates are font units
// with Y up; glyph positions are px with Y down.
func (c *rasterCanvas) glyphOutline(face fonts.Face, g fonts.Glyph, frame textFrame, fill color.NRGBA) {
	outline, ok := face.Face.GlyphData(g.GID).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return
	}
	scale := face.Scale()
	pt := func(sx, sy float32) fixed.Point26_6 {
		return frame.point(g.X+float64(sx)*scale, g.Y-float64(sy)*scale)
	}
	c.filler.Clear()
	c.filler.SetWinding(true)
	for _, s := range outline.Segments {
		p0 := pt(s.Args[0].X, s.Args[0].Y)
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			c.filler.Start(p0)
		case opentype.SegmentOpLineTo:
			c.filler.Line(p0)
		case opentype.SegmentOpQuadTo:
			c.filler.QuadBezier(p0, pt(s.Args[1].X, s.Args[1].Y))
		case opentype.SegmentOpCubeTo:
			c.filler.CubeBezier(p0, pt(s.Args[1].X, s.Args[1].Y), pt(s.Args[2].X, s.Args[2].Y))
		}
	}
	c.filler.Stop(true)
	c.filler.SetColor(fill)
	c.filler.Draw()
	c.filler.Clear()
}
