package plotgd

// DrawCall is one recorded drawing primitive: an immutable snapshot of
// geometry, style and the clip region it was emitted under. The set of
// kinds is closed; values are created only by a PageBuilder.
type DrawCall interface {
	// Clip returns the id of the clip region the call was recorded under.
	Clip() int32

	// Visit dispatches the call to the matching kind method of v.
	Visit(v Visitor)

	isDrawCall()
}

// Visitor has one method per draw-call kind. Renderers implement it to
// serialize a page; adding a kind therefore breaks every renderer at
// compile time instead of falling into a runtime default.
type Visitor interface {
	Text(*TextCall)
	Circle(*CircleCall)
	Line(*LineCall)
	Rect(*RectCall)
	Polyline(*PolylineCall)
	Polygon(*PolygonCall)
	Path(*PathCall)
	Raster(*RasterCall)
}

// TextInfo carries the font selection and metrics the host resolved for
// a text call.
type TextInfo struct {
	Weight   int     // CSS weight, 400 normal, 700 bold
	Italic   bool
	Features string  // advisory font-feature-settings value, may be empty
	Family   string
	Size     float64 // in px
	WidthPx  float64 // host-measured advance width, 0 if unknown
}

// TextCall draws a single line of text anchored at Pos.
type TextCall struct {
	ClipID int32
	Col    Color
	Pos    Point
	Rot    float64 // degrees counter-clockwise
	Hadj   float64 // horizontal anchor: 0 start, 0.5 middle, 1 end
	Str    string
	Font   TextInfo
}

// CircleCall draws a circle with optional fill and stroke.
type CircleCall struct {
	ClipID int32
	Line   LineInfo
	Fill   Color
	Center Point
	Radius float64
}

// LineCall draws a straight line segment.
type LineCall struct {
	ClipID int32
	Line   LineInfo
	From   Point
	To     Point
}

// RectCall draws a rectangle with optional fill and stroke.
type RectCall struct {
	ClipID int32
	Line   LineInfo
	Fill   Color
	Rect   Rect
}

// PolylineCall draws an open point sequence as a stroke.
type PolylineCall struct {
	ClipID int32
	Line   LineInfo
	Points []Point
}

// PolygonCall draws a closed point sequence with optional fill.
type PolygonCall struct {
	ClipID int32
	Line   LineInfo
	Fill   Color
	Points []Point
}

// PathCall draws one or more subpaths. NPer holds the vertex count of
// each subpath; Points is the flattened vertex list in subpath order.
type PathCall struct {
	ClipID int32
	Line   LineInfo
	Fill   Color
	Points []Point
	NPer   []int
	Rule   FillRule
}

// Raster is a pixel buffer in the host's channel order: red in the low
// byte of each packed value. Pixels are not premultiplied.
type Raster struct {
	Pixels []Color
	Width  int
	Height int
}

// RasterCall draws a pixel image stretched onto Rect, rotated about the
// rectangle origin.
type RasterCall struct {
	ClipID      int32
	Raster      Raster
	Rect        Rect
	Rot         float64 // degrees counter-clockwise
	Interpolate bool
}

func (c *TextCall) Clip() int32     { return c.ClipID }
func (c *CircleCall) Clip() int32   { return c.ClipID }
func (c *LineCall) Clip() int32     { return c.ClipID }
func (c *RectCall) Clip() int32     { return c.ClipID }
func (c *PolylineCall) Clip() int32 { return c.ClipID }
func (c *PolygonCall) Clip() int32  { return c.ClipID }
func (c *PathCall) Clip() int32     { return c.ClipID }
func (c *RasterCall) Clip() int32   { return c.ClipID }

func (c *TextCall) Visit(v Visitor)     { v.Text(c) }
func (c *CircleCall) Visit(v Visitor)   { v.Circle(c) }
func (c *LineCall) Visit(v Visitor)     { v.Line(c) }
func (c *RectCall) Visit(v Visitor)     { v.Rect(c) }
func (c *PolylineCall) Visit(v Visitor) { v.Polyline(c) }
func (c *PolygonCall) Visit(v Visitor)  { v.Polygon(c) }
func (c *PathCall) Visit(v Visitor)     { v.Path(c) }
func (c *RasterCall) Visit(v Visitor)   { v.Raster(c) }

func (*TextCall) isDrawCall()     {}
func (*CircleCall) isDrawCall()   {}
func (*LineCall) isDrawCall()     {}
func (*RectCall) isDrawCall()     {}
func (*PolylineCall) isDrawCall() {}
func (*PolygonCall) isDrawCall()  {}
func (*PathCall) isDrawCall()     {}
func (*RasterCall) isDrawCall()   {}
