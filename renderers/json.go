package renderers

import (
	"bytes"
	"fmt"

	"github.com/plotgd/plotgd"
)

// jsonRenderer dumps the recorded draw calls as a JSON document for
// debugging and host-side tooling. Fields are emitted directly so the
// contract is explicit in code; every float uses the two-decimal
// convention of the other text formats. The text string is embedded
// verbatim.
type jsonRenderer struct{}

func newJSON(config) Renderer {
	return jsonRenderer{}
}

func (jsonRenderer) Render(page plotgd.Page, scale float64) ([]byte, error) {
	w := &jsonWriter{scale: scale}
	w.page(page)
	return w.buf.Bytes(), nil
}

type jsonWriter struct {
	buf   bytes.Buffer
	scale float64
}

func (w *jsonWriter) page(page plotgd.Page) {
	fmt.Fprintf(&w.buf, "{\n \"id\": \"%d\", \"w\": %.2f, \"h\": %.2f, \"scale\": %.2f, \"fill\": \"%s\",\n",
		page.ID, page.Width, page.Height, w.scale, page.Fill.Hex())
	w.buf.WriteString(" \"clips\": [\n  ")
	for i, cp := range page.Clips {
		if i > 0 {
			w.buf.WriteString(",\n  ")
		}
		fmt.Fprintf(&w.buf, `{ "id": %d, "x": %.2f, "y": %.2f, "w": %.2f, "h": %.2f }`,
			cp.ID, cp.Rect.X, cp.Rect.Y, cp.Rect.Width, cp.Rect.Height)
	}
	w.buf.WriteString("\n ],\n \"draw_calls\": [\n  ")
	for i, dc := range page.DrawCalls {
		if i > 0 {
			w.buf.WriteString(",\n  ")
		}
		w.buf.WriteString("{ ")
		dc.Visit(w)
		w.buf.WriteString(" }")
	}
	w.buf.WriteString("\n ]\n}")
}

func jsonLine(line plotgd.LineInfo) string {
	return fmt.Sprintf(`{ "col": "%s", "lwd": %.2f, "lty": %d, "lend": %d, "ljoin": %d, "lmitre": %d }`,
		line.Col.Hex(), line.Width, line.Type, line.Cap, line.Join, int(line.MiterLimit))
}

func (w *jsonWriter) verts(points []plotgd.Point) {
	w.buf.WriteByte('[')
	for i, p := range points {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		fmt.Fprintf(&w.buf, "[ %.2f, %.2f ]", p.X, p.Y)
	}
	w.buf.WriteByte(']')
}

func (w *jsonWriter) Text(c *plotgd.TextCall) {
	fmt.Fprintf(&w.buf, `"type": "text", "clip_id": %d, "x": %.2f, "y": %.2f, "rot": %.2f, "hadj": %.2f, "col": "%s", "str": "%s", `,
		c.ClipID, c.Pos.X, c.Pos.Y, c.Rot, c.Hadj, c.Col.Hex(), c.Str)
	fmt.Fprintf(&w.buf, `"weight": %d, "features": "%s", "font_family": "%s", "fontsize": %.2f, "italic": %t, "txtwidth_px": %.2f`,
		c.Font.Weight, c.Font.Features, c.Font.Family, c.Font.Size, c.Font.Italic, c.Font.WidthPx)
}

func (w *jsonWriter) Circle(c *plotgd.CircleCall) {
	fmt.Fprintf(&w.buf, `"type": "circle", "clip_id": %d, "x": %.2f, "y": %.2f, "r": %.2f, "fill": "%s", "line": %s`,
		c.ClipID, c.Center.X, c.Center.Y, c.Radius, c.Fill.Hex(), jsonLine(c.Line))
}

func (w *jsonWriter) Line(c *plotgd.LineCall) {
	fmt.Fprintf(&w.buf, `"type": "line", "clip_id": %d, "x0": %.2f, "y0": %.2f, "x1": %.2f, "y1": %.2f, "line": %s`,
		c.ClipID, c.From.X, c.From.Y, c.To.X, c.To.Y, jsonLine(c.Line))
}

func (w *jsonWriter) Rect(c *plotgd.RectCall) {
	fmt.Fprintf(&w.buf, `"type": "rect", "clip_id": %d, "x": %.2f, "y": %.2f, "w": %.2f, "h": %.2f, "line": %s`,
		c.ClipID, c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height, jsonLine(c.Line))
}

func (w *jsonWriter) Polyline(c *plotgd.PolylineCall) {
	fmt.Fprintf(&w.buf, `"type": "polyline", "clip_id": %d, "line": %s, "points": `,
		c.ClipID, jsonLine(c.Line))
	w.verts(c.Points)
}

func (w *jsonWriter) Polygon(c *plotgd.PolygonCall) {
	fmt.Fprintf(&w.buf, `"type": "polygon", "clip_id": %d, "fill": "%s", "line": %s, "points": `,
		c.ClipID, c.Fill.Hex(), jsonLine(c.Line))
	w.verts(c.Points)
}

func (w *jsonWriter) Path(c *plotgd.PathCall) {
	fmt.Fprintf(&w.buf, `"type": "path", "clip_id": %d, "fill": "%s", "line": %s, "nper": [`,
		c.ClipID, c.Fill.Hex(), jsonLine(c.Line))
	for i, n := range c.NPer {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		fmt.Fprintf(&w.buf, "%d", n)
	}
	w.buf.WriteString(`], "points": `)
	w.verts(c.Points)
}

func (w *jsonWriter) Raster(c *plotgd.RasterCall) {
	fmt.Fprintf(&w.buf, `"type": "raster", "clip_id": %d, "x": %.2f, "y": %.2f, "w": %.2f, "h": %.2f, "rot": %.2f, "raster": { "w": %d, "h": %d, "data": "%s" }`,
		c.ClipID, c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height, c.Rot,
		c.Raster.Width, c.Raster.Height, rasterBase64(c.Raster))
}
