package renderers

import (
	"bytes"
	"fmt"
	"math"

	"github.com/plotgd/plotgd"
)

// psRenderer emits one page of DSC-conformant level-2 PostScript. The
// encapsulated variant differs only in its header comments; both carry
// a showpage so the document prints on its own.
//
// PostScript has no transparency: vector colors are emitted opaque and
// raster pixels are flattened over white.
type psRenderer struct {
	eps bool
}

func newPS(config) Renderer  { return &psRenderer{} }
func newEPS(config) Renderer { return &psRenderer{eps: true} }

func (r *psRenderer) Render(page plotgd.Page, scale float64) ([]byte, error) {
	c := &psCanvas{height: page.Height}
	c.buf.Grow(len(page.DrawCalls)*160 + 512)

	w := page.Width * scale
	h := page.Height * scale
	if r.eps {
		c.buf.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	} else {
		c.buf.WriteString("%!PS-Adobe-3.0\n")
	}
	c.buf.WriteString("%%Creator: plotgd\n")
	fmt.Fprintf(&c.buf, "%%%%BoundingBox: 0 0 %d %d\n", int(math.Ceil(w)), int(math.Ceil(h)))
	if r.eps {
		fmt.Fprintf(&c.buf, "%%%%HiResBoundingBox: 0 0 %.2f %.2f\n", w, h)
	} else {
		c.buf.WriteString("%%Pages: 1\n")
	}
	c.buf.WriteString("%%LanguageLevel: 2\n")
	c.buf.WriteString("%%DocumentData: Clean7Bit\n")
	c.buf.WriteString("%%EndComments\n")
	c.buf.WriteString("%%Page: 1 1\n")
	if scale != 1 {
		fmt.Fprintf(&c.buf, "%.4f %.4f scale\n", scale, scale)
	}
	c.buf.WriteString("gsave\n")

	renderCanvas(c, page)

	c.buf.WriteString("grestore\nshowpage\n%%Trailer\n%%EOF\n")
	return c.buf.Bytes(), nil
}

// psCanvas writes draw calls as PostScript operators. Geometry is
// emitted in page units with the Y axis flipped; the page-level scale
// is applied once by the scale operator in the prologue.
type psCanvas struct {
	buf    bytes.Buffer
	height float64
}

// y flips a device Y coordinate into the bottom-up page space.
func (c *psCanvas) y(v float64) float64 { return c.height - v }

func (c *psCanvas) setColor(col plotgd.Color) {
	r, g, b, _ := col.Fracs()
	fmt.Fprintf(&c.buf, "%.4f %.4f %.4f setrgbcolor\n", r, g, b)
}

func (c *psCanvas) setStroke(line plotgd.LineInfo) {
	c.setColor(line.Col)
	fmt.Fprintf(&c.buf, "%.2f setlinewidth %d setlinecap %d setlinejoin %.2f setmiterlimit\n",
		strokeWidth(line), psCap(line.Cap), psJoin(line.Join), line.MiterLimit)
	if segs := strokeDashes(line); segs != nil {
		c.buf.WriteByte('[')
		for i, s := range segs {
			if i > 0 {
				c.buf.WriteByte(' ')
			}
			fmt.Fprintf(&c.buf, "%.2f", s)
		}
		c.buf.WriteString("] 0 setdash\n")
	} else {
		c.buf.WriteString("[] 0 setdash\n")
	}
}

// paint emits the traced path and paints it. When both fill and stroke
// apply, the fill runs inside gsave/grestore so the path survives for
// the stroke.
func (c *psCanvas) paint(fill plotgd.Color, line plotgd.LineInfo, fillOp string, trace func()) {
	doFill := !fill.Transparent()
	doStroke := strokeVisible(line)
	if !doFill && !doStroke {
		return
	}
	trace()
	if doFill {
		c.setColor(fill)
		if doStroke {
			fmt.Fprintf(&c.buf, "gsave %s grestore\n", fillOp)
		} else {
			c.buf.WriteString(fillOp)
			c.buf.WriteByte('\n')
		}
	}
	if doStroke {
		c.setStroke(line)
		c.buf.WriteString("stroke\n")
	}
}

func (c *psCanvas) Background(width, height float64, fill plotgd.Color) {
	c.setColor(fill)
	fmt.Fprintf(&c.buf, "0 0 %.2f %.2f rectfill\n", width, height)
}

func (c *psCanvas) Clip(r plotgd.Rect) {
	fmt.Fprintf(&c.buf, "grestore gsave %.2f %.2f %.2f %.2f rectclip\n",
		r.X, c.y(r.MaxY()), r.Width, r.Height)
}

func (c *psCanvas) Line(t *plotgd.LineCall) {
	if t.Line.Col.Transparent() {
		return
	}
	c.setStroke(t.Line)
	fmt.Fprintf(&c.buf, "newpath %.2f %.2f moveto %.2f %.2f lineto stroke\n",
		t.From.X, c.y(t.From.Y), t.To.X, c.y(t.To.Y))
}

func (c *psCanvas) Polyline(t *plotgd.PolylineCall) {
	if t.Line.Col.Transparent() || len(t.Points) < 2 {
		return
	}
	c.setStroke(t.Line)
	c.buf.WriteString("newpath\n")
	fmt.Fprintf(&c.buf, "%.2f %.2f moveto\n", t.Points[0].X, c.y(t.Points[0].Y))
	for _, p := range t.Points[1:] {
		fmt.Fprintf(&c.buf, "%.2f %.2f lineto\n", p.X, c.y(p.Y))
	}
	c.buf.WriteString("stroke\n")
}

func (c *psCanvas) Rect(t *plotgd.RectCall) {
	x, y := t.Rect.X, c.y(t.Rect.MaxY())
	if !t.Fill.Transparent() {
		c.setColor(t.Fill)
		fmt.Fprintf(&c.buf, "%.2f %.2f %.2f %.2f rectfill\n", x, y, t.Rect.Width, t.Rect.Height)
	}
	if strokeVisible(t.Line) {
		c.setStroke(t.Line)
		fmt.Fprintf(&c.buf, "%.2f %.2f %.2f %.2f rectstroke\n", x, y, t.Rect.Width, t.Rect.Height)
	}
}

func (c *psCanvas) Circle(t *plotgd.CircleCall) {
	c.paint(t.Fill, t.Line, "fill", func() {
		fmt.Fprintf(&c.buf, "newpath %.2f %.2f %.2f 0 360 arc closepath\n",
			t.Center.X, c.y(t.Center.Y), circleRadius(t.Radius))
	})
}

func (c *psCanvas) Polygon(t *plotgd.PolygonCall) {
	if len(t.Points) < 2 {
		return
	}
	c.paint(t.Fill, t.Line, "fill", func() {
		c.buf.WriteString("newpath\n")
		fmt.Fprintf(&c.buf, "%.2f %.2f moveto\n", t.Points[0].X, c.y(t.Points[0].Y))
		for _, p := range t.Points[1:] {
			fmt.Fprintf(&c.buf, "%.2f %.2f lineto\n", p.X, c.y(p.Y))
		}
		c.buf.WriteString("closepath\n")
	})
}

func (c *psCanvas) Path(t *plotgd.PathCall) {
	fillOp := "fill"
	if t.Rule == plotgd.FillEvenOdd {
		fillOp = "eofill"
	}
	c.paint(t.Fill, t.Line, fillOp, func() {
		c.buf.WriteString("newpath\n")
		i := 0
		for _, n := range t.NPer {
			if i+n > len(t.Points) {
				return
			}
			fmt.Fprintf(&c.buf, "%.2f %.2f moveto\n", t.Points[i].X, c.y(t.Points[i].Y))
			for j := 1; j < n; j++ {
				fmt.Fprintf(&c.buf, "%.2f %.2f lineto\n", t.Points[i+j].X, c.y(t.Points[i+j].Y))
			}
			c.buf.WriteString("closepath\n")
			i += n
		}
	})
}

func (c *psCanvas) Text(t *plotgd.TextCall) {
	if t.Col.Transparent() || t.Str == "" {
		return
	}
	c.buf.WriteString("gsave\n")
	fmt.Fprintf(&c.buf, "/%s findfont %.2f scalefont setfont\n", psFont(t.Font), t.Font.Size)
	c.setColor(t.Col)
	fmt.Fprintf(&c.buf, "%.2f %.2f translate\n", t.Pos.X, c.y(t.Pos.Y))
	if t.Rot != 0 {
		fmt.Fprintf(&c.buf, "%.2f rotate\n", t.Rot)
	}
	c.buf.WriteString("0 0 moveto\n")
	if t.Hadj != 0 {
		fmt.Fprintf(&c.buf, "(%s) dup stringwidth pop %.2f mul 0 rmoveto show\n",
			psEscape(t.Str), -t.Hadj)
	} else {
		fmt.Fprintf(&c.buf, "(%s) show\n", psEscape(t.Str))
	}
	c.buf.WriteString("grestore\n")
}

func (c *psCanvas) Raster(t *plotgd.RasterCall) {
	w, h := t.Raster.Width, t.Raster.Height
	if w < 1 || h < 1 || len(t.Raster.Pixels) < w*h {
		return
	}
	c.buf.WriteString("gsave\n")
	fmt.Fprintf(&c.buf, "%.2f %.2f translate\n", t.Rect.X, c.y(t.Rect.Y))
	if t.Rot != 0 {
		fmt.Fprintf(&c.buf, "%.2f rotate\n", t.Rot)
	}
	fmt.Fprintf(&c.buf, "0 %.2f translate\n", -t.Rect.Height)
	fmt.Fprintf(&c.buf, "%.2f %.2f scale\n", t.Rect.Width, t.Rect.Height)
	fmt.Fprintf(&c.buf, "/picstr %d string def\n", w*3)
	fmt.Fprintf(&c.buf, "%d %d 8 [%d 0 0 %d 0 %d]\n", w, h, w, -h, h)
	c.buf.WriteString("{ currentfile picstr readhexstring pop } false 3 colorimage\n")
	col := 0
	for i := 0; i < w*h; i++ {
		r, g, b := flattenWhite(t.Raster.Pixels[i])
		fmt.Fprintf(&c.buf, "%02x%02x%02x", r, g, b)
		if col += 6; col >= 78 {
			c.buf.WriteByte('\n')
			col = 0
		}
	}
	if col != 0 {
		c.buf.WriteByte('\n')
	}
	c.buf.WriteString("grestore\n")
}

// psCap maps to the setlinecap codes, 0 butt, 1 round, 2 square.
func psCap(style plotgd.CapStyle) int {
	switch style {
	case plotgd.CapRound:
		return 1
	case plotgd.CapButt:
		return 0
	}
	return 2
}

// psJoin maps to the setlinejoin codes, 0 miter, 1 round, 2 bevel.
func psJoin(join plotgd.JoinStyle) int {
	switch join {
	case plotgd.JoinMiter:
		return 0
	case plotgd.JoinBevel:
		return 2
	}
	return 1
}

// psFont picks one of the built-in level-2 text faces.
func psFont(font plotgd.TextInfo) string {
	bold := font.Weight >= 700
	switch classifyFamily(font.Family) {
	case faceSerif:
		switch {
		case bold && font.Italic:
			return "Times-BoldItalic"
		case bold:
			return "Times-Bold"
		case font.Italic:
			return "Times-Italic"
		}
		return "Times-Roman"
	case faceMono:
		switch {
		case bold && font.Italic:
			return "Courier-BoldOblique"
		case bold:
			return "Courier-Bold"
		case font.Italic:
			return "Courier-Oblique"
		}
		return "Courier"
	}
	switch {
	case bold && font.Italic:
		return "Helvetica-BoldOblique"
	case bold:
		return "Helvetica-Bold"
	case font.Italic:
		return "Helvetica-Oblique"
	}
	return "Helvetica"
}

// psEscape escapes string delimiters and octal-escapes bytes outside
// printable ASCII, keeping the document 7-bit clean.
func psEscape(s string) string {
	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '(' || ch == ')' || ch == '\\':
			b.WriteByte('\\')
			b.WriteByte(ch)
		case ch < 32 || ch > 126:
			fmt.Fprintf(&b, "\\%03o", ch)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// flattenWhite composites a straight-alpha pixel over white.
func flattenWhite(px plotgd.Color) (r, g, b uint8) {
	a := uint32(px.A())
	if a == 255 {
		return px.R(), px.G(), px.B()
	}
	over := func(ch uint8) uint8 {
		return uint8((uint32(ch)*a + 255*(255-a)) / 255)
	}
	return over(px.R()), over(px.G()), over(px.B())
}
