package plotgd

import "math"

// Point is a location in device coordinates (origin top-left, Y down).
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its top-left corner and its
// size, both in device coordinates. Width and Height are non-negative
// when the rectangle comes from RectFromCorners or a PageBuilder.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromCorners builds a rectangle from two opposite corners in any
// order, the form host clip and rect callbacks deliver.
func RectFromCorners(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X:      math.Min(x0, x1),
		Y:      math.Min(y0, y1),
		Width:  math.Abs(x1 - x0),
		Height: math.Abs(y1 - y0),
	}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// FillRule selects how self-intersecting path geometry is filled.
type FillRule uint8

// Fill rules.
const (
	FillNonZero FillRule = iota
	FillEvenOdd
)
