package plotgd

import "slices"

// PageBuilder accumulates draw calls for the page under construction.
// One append method exists per primitive kind; SetClip switches the
// active clip region. The builder is the only producer of Page values.
//
// A builder is not safe for concurrent use: the host guarantees a single
// producer at a time.
type PageBuilder struct {
	page Page
	clip Clip
}

// NewPageBuilder starts a page of the given id, logical size and
// background fill. The initial clip region covers the whole page and
// carries id 0.
func NewPageBuilder(id int32, width, height float64, fill Color) *PageBuilder {
	b := &PageBuilder{}
	b.page = Page{ID: id, Width: width, Height: height, Fill: fill}
	b.reset()
	return b
}

func (b *PageBuilder) reset() {
	b.clip = Clip{ID: 0, Rect: Rect{Width: b.page.Width, Height: b.page.Height}}
	b.page.Clips = []Clip{b.clip}
	b.page.DrawCalls = nil
}

// Clear drops all recorded calls and clip regions, restoring the
// builder to the state of a fresh page. Pages already finalized are
// unaffected.
func (b *PageBuilder) Clear() {
	b.reset()
}

// SetSize changes the logical page size and clears the builder. The
// host calls this when the device is resized before a replay.
func (b *PageBuilder) SetSize(width, height float64) {
	b.page.Width = width
	b.page.Height = height
	b.reset()
}

// SetFill changes the background fill for the page under construction.
func (b *PageBuilder) SetFill(fill Color) {
	b.page.Fill = fill
}

// SetClip makes r the active clip region. A fresh clip id is assigned
// only when r differs from the active rectangle; subsequent appends are
// tagged with the active id. Rectangles are compared exactly.
func (b *PageBuilder) SetClip(r Rect) {
	if r == b.clip.Rect {
		return
	}
	b.clip = Clip{ID: b.clip.ID + 1, Rect: r}
	b.page.Clips = append(b.page.Clips, b.clip)
}

// Text records a text call.
func (b *PageBuilder) Text(col Color, pos Point, str string, rot, hadj float64, font TextInfo) {
	b.push(&TextCall{ClipID: b.clip.ID, Col: col, Pos: pos, Str: str, Rot: rot, Hadj: hadj, Font: font})
}

// Circle records a circle call.
func (b *PageBuilder) Circle(line LineInfo, fill Color, center Point, radius float64) {
	b.push(&CircleCall{ClipID: b.clip.ID, Line: line, Fill: fill, Center: center, Radius: radius})
}

// Line records a line segment call.
func (b *PageBuilder) Line(line LineInfo, from, to Point) {
	b.push(&LineCall{ClipID: b.clip.ID, Line: line, From: from, To: to})
}

// Rect records a rectangle call.
func (b *PageBuilder) Rect(line LineInfo, fill Color, r Rect) {
	b.push(&RectCall{ClipID: b.clip.ID, Line: line, Fill: fill, Rect: r})
}

// Polyline records an open point sequence. The points are copied.
func (b *PageBuilder) Polyline(line LineInfo, points []Point) {
	b.push(&PolylineCall{ClipID: b.clip.ID, Line: line, Points: slices.Clone(points)})
}

// Polygon records a closed point sequence. The points are copied.
func (b *PageBuilder) Polygon(line LineInfo, fill Color, points []Point) {
	b.push(&PolygonCall{ClipID: b.clip.ID, Line: line, Fill: fill, Points: slices.Clone(points)})
}

// Path records a multi-subpath call. Points and per-subpath counts are
// copied.
func (b *PageBuilder) Path(line LineInfo, fill Color, points []Point, nper []int, rule FillRule) {
	b.push(&PathCall{
		ClipID: b.clip.ID,
		Line:   line,
		Fill:   fill,
		Points: slices.Clone(points),
		NPer:   slices.Clone(nper),
		Rule:   rule,
	})
}

// Raster records a pixel image call. The pixel buffer is copied so that
// host-side reuse of the buffer cannot alter the recorded call.
func (b *PageBuilder) Raster(raster Raster, rect Rect, rot float64, interpolate bool) {
	raster.Pixels = slices.Clone(raster.Pixels)
	b.push(&RasterCall{ClipID: b.clip.ID, Raster: raster, Rect: rect, Rot: rot, Interpolate: interpolate})
}

// Empty reports whether no draw call has been recorded since the last
// Clear.
func (b *PageBuilder) Empty() bool {
	return len(b.page.DrawCalls) == 0
}

// Finish finalizes and returns the recorded page. The builder keeps its
// state; call Clear before recording the next page so the returned
// value stays untouched.
func (b *PageBuilder) Finish() Page {
	return b.page
}

func (b *PageBuilder) push(dc DrawCall) {
	b.page.DrawCalls = append(b.page.DrawCalls, dc)
}
