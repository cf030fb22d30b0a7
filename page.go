package plotgd

// Clip is a rectangular clip region identified by id. Draw calls
// reference the clip they were recorded under via DrawCall.Clip.
type Clip struct {
	ID   int32
	Rect Rect
}

// Page is one finalized plot: its clip regions and draw calls in
// emission order. Pages are produced by PageBuilder.Finish and are
// read-only afterwards; renderers may consume a page any number of
// times.
//
// A page's clip list is never empty. The first clip covers the page and
// matches the clip id of the first draw call. Calls sharing a clip id
// form contiguous runs; renderers group output on that assumption
// without re-sorting.
type Page struct {
	ID        int32
	Width     float64
	Height    float64
	Fill      Color
	Clips     []Clip
	DrawCalls []DrawCall
}
