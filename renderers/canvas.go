package renderers

import (
	"math"
	"strings"

	"github.com/plotgd/plotgd"
)

// canvas is a native drawing surface, the painting counterpart of the
// markup writers. A canvas receives the page background first, then
// draw calls in recorded order; Clip replaces the active clip
// rectangle for every following call.
type canvas interface {
	plotgd.Visitor

	// Background fills the whole surface with the page fill color.
	Background(width, height float64, fill plotgd.Color)

	// Clip replaces the active clip rectangle.
	Clip(r plotgd.Rect)
}

// renderCanvas replays a page onto a canvas. The background is painted
// unclipped; the clip-grouped walk then mirrors the markup renderers.
func renderCanvas(c canvas, page plotgd.Page) {
	if !page.Fill.Transparent() {
		c.Background(page.Width, page.Height, page.Fill)
	}
	walkPage(page,
		func(clip plotgd.Clip) { c.Clip(clip.Rect) },
		func(dc plotgd.DrawCall) { dc.Visit(c) },
	)
}

// strokeWidth returns the pen width in surface units. Widths are
// recorded in 1/96 inch, surfaces use 1/72 inch, and a width of zero
// still draws a hairline.
func strokeWidth(line plotgd.LineInfo) float64 {
	return math.Max(line.Width, 0.01) / 96.0 * 72
}

// strokeDashes returns the dash pattern in surface units, nil for
// solid and blank line types.
func strokeDashes(line plotgd.LineInfo) []float64 {
	return line.Type.Dashes(line.DashScale() / 96.0 * 72)
}

// strokeVisible reports whether the outline of a filled shape produces
// ink. Plain line and polyline calls check only the color: a blank
// line type suppresses shape outlines but leaves standalone lines
// solid, matching the recording conventions of the host.
func strokeVisible(line plotgd.LineInfo) bool {
	return !line.Col.Transparent() && line.Type != plotgd.LineBlank
}

// circleRadius bumps sub-pixel radii to half a pixel so small points
// stay visible.
func circleRadius(r float64) float64 {
	return math.Max(r, 0.5)
}

// faceClass buckets a requested font family onto the classic triple of
// document surface fonts.
type faceClass uint8

const (
	faceSans faceClass = iota
	faceSerif
	faceMono
)

func classifyFamily(family string) faceClass {
	f := strings.ToLower(strings.TrimSpace(family))
	switch {
	case strings.Contains(f, "mono") || strings.Contains(f, "courier"):
		return faceMono
	case strings.Contains(f, "sans"):
		return faceSans
	case strings.Contains(f, "times") || strings.Contains(f, "serif"):
		return faceSerif
	}
	return faceSans
}
