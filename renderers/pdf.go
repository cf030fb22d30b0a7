package renderers

import (
	"bytes"
	"fmt"
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/font/type1"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/extgstate"
	pdfimage "seehuhn.de/go/pdf/graphics/image"

	"github.com/plotgd/plotgd"
)

// pdfRenderer writes a page as a single-page PDF document. Text is set
// in the standard 14 fonts picked by family class, so no font data is
// embedded. Vector alpha goes through the graphics state; raster alpha
// is reduced to a stencil mask.
type pdfRenderer struct{}

func newPDF(config) Renderer { return pdfRenderer{} }

func (pdfRenderer) Render(page plotgd.Page, scale float64) ([]byte, error) {
	var buf bytes.Buffer
	paper := &pdf.Rectangle{URx: page.Width * scale, URy: page.Height * scale}
	doc, err := document.WriteSinglePage(&buf, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, fmt.Errorf("renderers: pdf: %w", err)
	}
	if scale != 1 {
		doc.Transform(matrix.Scale(scale, scale))
	}
	doc.PushGraphicsState()

	c := &pdfCanvas{
		page:        doc,
		height:      page.Height,
		alphaStroke: 1,
		alphaFill:   1,
		fonts:       make(map[standard.Font]*type1.Instance),
	}
	renderCanvas(c, page)

	doc.PopGraphicsState()
	if err := doc.Close(); err != nil {
		return nil, fmt.Errorf("renderers: pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfCanvas draws into a single-page PDF content stream. PDF puts the
// origin at the bottom left, so every y coordinate is flipped against
// the page height on the way out; rotations stay counter-clockwise.
type pdfCanvas struct {
	page   *document.Page
	height float64

	// active constant alpha, reset to opaque on every clip change
	// because Clip rewinds the saved graphics state.
	alphaStroke float64
	alphaFill   float64

	fonts map[standard.Font]*type1.Instance
}

func (c *pdfCanvas) y(v float64) float64 { return c.height - v }

// setAlpha switches the constant stroke and fill alpha through an
// ExtGState when either differs from the active values.
func (c *pdfCanvas) setAlpha(stroke, fill float64) {
	if stroke == c.alphaStroke && fill == c.alphaFill {
		return
	}
	c.page.SetExtGState(&extgstate.ExtGState{
		Set:         graphics.StateStrokeAlpha | graphics.StateFillAlpha,
		StrokeAlpha: stroke,
		FillAlpha:   fill,
		SingleUse:   true,
	})
	c.alphaStroke, c.alphaFill = stroke, fill
}

func (c *pdfCanvas) fillColor(col plotgd.Color) {
	r, g, b, a := col.Fracs()
	c.setAlpha(c.alphaStroke, a)
	c.page.SetFillColor(color.DeviceRGB{r, g, b})
}

// strokeStyle prepares the stroking color, alpha and pen parameters.
func (c *pdfCanvas) strokeStyle(line plotgd.LineInfo) {
	r, g, b, a := line.Col.Fracs()
	c.setAlpha(a, c.alphaFill)
	c.page.SetStrokeColor(color.DeviceRGB{r, g, b})
	c.page.SetLineWidth(strokeWidth(line))
	c.page.SetLineCap(pdfCap(line.Cap))
	c.page.SetLineJoin(pdfJoin(line.Join))
	c.page.SetMiterLimit(line.MiterLimit)
	c.page.SetLineDash(strokeDashes(line), 0)
}

func (c *pdfCanvas) Background(width, height float64, fill plotgd.Color) {
	c.fillColor(fill)
	c.page.Rectangle(0, 0, width, height)
	c.page.Fill()
}

// Clip rewinds to the saved graphics state and installs the next
// rectangle, dropping any alpha and pen settings with it.
func (c *pdfCanvas) Clip(r plotgd.Rect) {
	c.page.PopGraphicsState()
	c.page.PushGraphicsState()
	c.alphaStroke, c.alphaFill = 1, 1
	c.page.Rectangle(r.X, c.y(r.MaxY()), r.Width, r.Height)
	c.page.ClipNonZero()
	c.page.EndPath()
}

// paint draws a traced path with the fill and outline the call
// carries. The graphics state is complete before the path starts
// because PDF forbids state operators mid-path.
func (c *pdfCanvas) paint(fill plotgd.Color, line plotgd.LineInfo, evenOdd bool, trace func()) {
	doFill := !fill.Transparent()
	doStroke := strokeVisible(line)
	if !doFill && !doStroke {
		return
	}
	if doFill && doStroke {
		c.setAlpha(alphaFrac(line.Col), alphaFrac(fill))
	}
	if doFill {
		c.fillColor(fill)
	}
	if doStroke {
		c.strokeStyle(line)
	}
	trace()
	switch {
	case doFill && doStroke && evenOdd:
		c.page.FillAndStrokeEvenOdd()
	case doFill && doStroke:
		c.page.FillAndStroke()
	case doFill && evenOdd:
		c.page.FillEvenOdd()
	case doFill:
		c.page.Fill()
	default:
		c.page.Stroke()
	}
}

func (c *pdfCanvas) polyPath(points []plotgd.Point, closed bool) {
	c.page.MoveTo(points[0].X, c.y(points[0].Y))
	for _, p := range points[1:] {
		c.page.LineTo(p.X, c.y(p.Y))
	}
	if closed {
		c.page.ClosePath()
	}
}

func (c *pdfCanvas) Line(t *plotgd.LineCall) {
	if t.Line.Col.Transparent() {
		return
	}
	c.strokeStyle(t.Line)
	c.page.MoveTo(t.From.X, c.y(t.From.Y))
	c.page.LineTo(t.To.X, c.y(t.To.Y))
	c.page.Stroke()
}

func (c *pdfCanvas) Polyline(t *plotgd.PolylineCall) {
	if t.Line.Col.Transparent() || len(t.Points) < 2 {
		return
	}
	c.strokeStyle(t.Line)
	c.polyPath(t.Points, false)
	c.page.Stroke()
}

func (c *pdfCanvas) Rect(t *plotgd.RectCall) {
	c.paint(t.Fill, t.Line, false, func() {
		c.page.Rectangle(t.Rect.X, c.y(t.Rect.MaxY()), t.Rect.Width, t.Rect.Height)
	})
}

func (c *pdfCanvas) Circle(t *plotgd.CircleCall) {
	c.paint(t.Fill, t.Line, false, func() {
		c.page.Circle(t.Center.X, c.y(t.Center.Y), circleRadius(t.Radius))
	})
}

func (c *pdfCanvas) Polygon(t *plotgd.PolygonCall) {
	if len(t.Points) < 2 {
		return
	}
	c.paint(t.Fill, t.Line, false, func() {
		c.polyPath(t.Points, true)
	})
}

func (c *pdfCanvas) Path(t *plotgd.PathCall) {
	c.paint(t.Fill, t.Line, t.Rule == plotgd.FillEvenOdd, func() {
		i := 0
		for _, n := range t.NPer {
			if i+n > len(t.Points) {
				return
			}
			c.polyPath(t.Points[i:i+n], true)
			i += n
		}
	})
}

func (c *pdfCanvas) Text(t *plotgd.TextCall) {
	if t.Col.Transparent() || t.Str == "" {
		return
	}
	inst := c.font(pdfFont(t.Font))
	seq := inst.Layout(nil, t.Font.Size, t.Str)
	var width float64
	var s pdf.String
	for _, g := range seq.Seq {
		width += g.Advance
		if code, ok := inst.Encode(g.GID, string(g.Text)); ok {
			s = append(s, byte(code))
		}
	}
	if len(s) == 0 {
		return
	}
	c.fillColor(t.Col)
	c.page.TextBegin()
	c.page.TextSetFont(inst, t.Font.Size)
	if t.Rot != 0 || t.Hadj != 0 {
		m := matrix.Translate(-width*t.Hadj, 0)
		if t.Rot != 0 {
			m = m.Mul(matrix.RotateDeg(t.Rot))
		}
		m = m.Mul(matrix.Translate(t.Pos.X, c.y(t.Pos.Y)))
		c.page.TextSetMatrix(m)
	} else {
		c.page.TextFirstLine(t.Pos.X, c.y(t.Pos.Y))
	}
	c.page.TextShowRaw(s)
	c.page.TextEnd()
}

func (c *pdfCanvas) Raster(t *plotgd.RasterCall) {
	if t.Raster.Width < 1 || t.Raster.Height < 1 ||
		len(t.Raster.Pixels) < t.Raster.Width*t.Raster.Height {
		return
	}
	n := t.Raster.Width * t.Raster.Height
	img := image.NewNRGBA(image.Rect(0, 0, t.Raster.Width, t.Raster.Height))
	var mask *image.Alpha
	for _, px := range t.Raster.Pixels[:n] {
		if !px.Opaque() {
			mask = image.NewAlpha(img.Rect)
			break
		}
	}
	for i, px := range t.Raster.Pixels[:n] {
		img.Pix[i*4+0] = px.R()
		img.Pix[i*4+1] = px.G()
		img.Pix[i*4+2] = px.B()
		img.Pix[i*4+3] = 0xff
		if mask != nil {
			mask.Pix[i] = px.A()
		}
	}
	var dict *pdfimage.Dict
	if mask != nil {
		dict = pdfimage.FromImageWithMask(img, mask, color.SpaceDeviceRGB, 8)
	} else {
		dict = pdfimage.FromImage(img, color.SpaceDeviceRGB, 8)
	}
	dict.Interpolate = t.Interpolate

	// The image paints over the unit square with row zero on top, so
	// the placement maps that square onto the target rectangle with
	// the rectangle origin as rotation anchor.
	m := matrix.Scale(t.Rect.Width, t.Rect.Height).
		Mul(matrix.Translate(0, -t.Rect.Height))
	if t.Rot != 0 {
		m = m.Mul(matrix.RotateDeg(t.Rot))
	}
	m = m.Mul(matrix.Translate(t.Rect.X, c.y(t.Rect.Y)))

	c.setAlpha(c.alphaStroke, 1)
	c.page.PushGraphicsState()
	c.page.Transform(m)
	c.page.DrawXObject(dict)
	c.page.PopGraphicsState()
}

// font returns the cached instance for f, building it on first use.
func (c *pdfCanvas) font(f standard.Font) *type1.Instance {
	inst, ok := c.fonts[f]
	if !ok {
		inst = f.New()
		c.fonts[f] = inst
	}
	return inst
}

// pdfFont picks the standard font for the requested family, bold for
// weights of 700 and up.
func pdfFont(t plotgd.TextInfo) standard.Font {
	bold := t.Weight >= 700
	switch classifyFamily(t.Family) {
	case faceMono:
		switch {
		case bold && t.Italic:
			return standard.CourierBoldOblique
		case bold:
			return standard.CourierBold
		case t.Italic:
			return standard.CourierOblique
		}
		return standard.Courier
	case faceSerif:
		switch {
		case bold && t.Italic:
			return standard.TimesBoldItalic
		case bold:
			return standard.TimesBold
		case t.Italic:
			return standard.TimesItalic
		}
		return standard.TimesRoman
	}
	switch {
	case bold && t.Italic:
		return standard.HelveticaBoldOblique
	case bold:
		return standard.HelveticaBold
	case t.Italic:
		return standard.HelveticaOblique
	}
	return standard.Helvetica
}

func pdfCap(style plotgd.CapStyle) graphics.LineCapStyle {
	switch style {
	case plotgd.CapRound:
		return graphics.LineCapRound
	case plotgd.CapButt:
		return graphics.LineCapButt
	default:
		return graphics.LineCapSquare
	}
}

func pdfJoin(join plotgd.JoinStyle) graphics.LineJoinStyle {
	switch join {
	case plotgd.JoinMiter:
		return graphics.LineJoinMiter
	case plotgd.JoinBevel:
		return graphics.LineJoinBevel
	default:
		return graphics.LineJoinRound
	}
}
