package renderers

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/plotgd/plotgd"
	"github.com/plotgd/plotgd/fonts"
)

// rasterize paints a page into a pixel buffer of page size times
// scale, never smaller than one pixel per side.
func rasterize(page plotgd.Page, scale float64, library *fonts.Library) *image.RGBA {
	w := int(page.Width * scale)
	h := int(page.Height * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	renderCanvas(newRasterCanvas(img, scale, library), page)
	return img
}

// rasterCanvas rasterizes draw calls into an RGBA image through a
// scanline rasterizer. The rasterizer has no transform stack, so the
// device scale is folded into every coordinate, pen width and dash
// segment up front.
type rasterCanvas struct {
	img     *image.RGBA
	scale   float64
	clip    image.Rectangle
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher
	library *fonts.Library
	shaper  *fonts.Shaper
}

func newRasterCanvas(img *image.RGBA, scale float64, library *fonts.Library) *rasterCanvas {
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	return &rasterCanvas{
		img:     img,
		scale:   scale,
		clip:    b,
		scanner: scanner,
		filler:  rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
		dasher:  rasterx.NewDasher(b.Dx(), b.Dy(), scanner),
		library: library,
		shaper:  fonts.NewShaper(),
	}
}

func (c *rasterCanvas) Background(width, height float64, fill plotgd.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(nrgba(fill)), image.Point{}, draw.Src)
}

func (c *rasterCanvas) Clip(r plotgd.Rect) {
	c.clip = image.Rect(
		int(math.Floor(r.X*c.scale)),
		int(math.Floor(r.Y*c.scale)),
		int(math.Ceil(r.MaxX()*c.scale)),
		int(math.Ceil(r.MaxY()*c.scale)),
	).Intersect(c.img.Bounds())
	c.scanner.SetClip(c.clip)
}

// pt maps a recorded point into device pixels.
func (c *rasterCanvas) pt(p plotgd.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X*c.scale, p.Y*c.scale)
}

// fill rasterizes the traced outline with the given fill color.
func (c *rasterCanvas) fill(fill plotgd.Color, nonZero bool, trace func(rasterx.Adder)) {
	c.filler.Clear()
	c.filler.SetWinding(nonZero)
	trace(c.filler)
	c.filler.SetColor(nrgba(fill))
	c.filler.Draw()
	c.filler.Clear()
}

// stroke rasterizes the traced outline as a pen stroke.
func (c *rasterCanvas) stroke(line plotgd.LineInfo, trace func(rasterx.Adder)) {
	var dashes []float64
	if segs := strokeDashes(line); segs != nil {
		dashes = make([]float64, len(segs))
		for i, s := range segs {
			dashes[i] = s * c.scale
		}
	}
	c.dasher.Clear()
	c.dasher.SetStroke(
		fixed.Int26_6(strokeWidth(line)*c.scale*64),
		fixed.Int26_6(line.MiterLimit*64),
		capFunc(line.Cap), nil, nil, joinMode(line.Join),
		dashes, 0,
	)
	trace(c.dasher)
	c.dasher.SetColor(nrgba(line.Col))
	c.dasher.Draw()
	c.dasher.Clear()
}

func (c *rasterCanvas) Line(t *plotgd.LineCall) {
	if t.Line.Col.Transparent() {
		return
	}
	c.stroke(t.Line, func(p rasterx.Adder) {
		p.Start(c.pt(t.From))
		p.Line(c.pt(t.To))
		p.Stop(false)
	})
}

func (c *rasterCanvas) Polyline(t *plotgd.PolylineCall) {
	if t.Line.Col.Transparent() || len(t.Points) < 2 {
		return
	}
	c.stroke(t.Line, func(p rasterx.Adder) {
		p.Start(c.pt(t.Points[0]))
		for _, pt := range t.Points[1:] {
			p.Line(c.pt(pt))
		}
		p.Stop(false)
	})
}

func (c *rasterCanvas) Rect(t *plotgd.RectCall) {
	trace := func(p rasterx.Adder) {
		rasterx.AddRect(
			t.Rect.X*c.scale, t.Rect.Y*c.scale,
			t.Rect.MaxX()*c.scale, t.Rect.MaxY()*c.scale,
			0, p,
		)
	}
	if !t.Fill.Transparent() {
		c.fill(t.Fill, true, trace)
	}
	if strokeVisible(t.Line) {
		c.stroke(t.Line, trace)
	}
}

func (c *rasterCanvas) Circle(t *plotgd.CircleCall) {
	cx := t.Center.X * c.scale
	cy := t.Center.Y * c.scale
	r := circleRadius(t.Radius) * c.scale
	trace := func(p rasterx.Adder) { rasterx.AddCircle(cx, cy, r, p) }
	if !t.Fill.Transparent() {
		c.fill(t.Fill, true, trace)
	}
	if strokeVisible(t.Line) {
		c.stroke(t.Line, trace)
	}
}

func (c *rasterCanvas) Polygon(t *plotgd.PolygonCall) {
	if len(t.Points) < 2 {
		return
	}
	trace := func(p rasterx.Adder) {
		p.Start(c.pt(t.Points[0]))
		for _, pt := range t.Points[1:] {
			p.Line(c.pt(pt))
		}
		p.Stop(true)
	}
	if !t.Fill.Transparent() {
		c.fill(t.Fill, true, trace)
	}
	if strokeVisible(t.Line) {
		c.stroke(t.Line, trace)
	}
}

func (c *rasterCanvas) Path(t *plotgd.PathCall) {
	trace := func(p rasterx.Adder) {
		i := 0
		for _, n := range t.NPer {
			if i+n > len(t.Points) {
				return
			}
			p.Start(c.pt(t.Points[i]))
			for j := 1; j < n; j++ {
				p.Line(c.pt(t.Points[i+j]))
			}
			p.Stop(true)
			i += n
		}
	}
	if !t.Fill.Transparent() {
		c.fill(t.Fill, t.Rule == plotgd.FillNonZero, trace)
	}
	if strokeVisible(t.Line) {
		c.stroke(t.Line, trace)
	}
}

func (c *rasterCanvas) Raster(t *plotgd.RasterCall) {
	if t.Raster.Width < 1 || t.Raster.Height < 1 ||
		len(t.Raster.Pixels) < t.Raster.Width*t.Raster.Height {
		return
	}
	src := premultiplied(t.Raster)
	sin, cos := math.Sincos(-t.Rot * math.Pi / 180)
	sx := t.Rect.Width / float64(t.Raster.Width) * c.scale
	sy := t.Rect.Height / float64(t.Raster.Height) * c.scale
	s2d := f64.Aff3{
		cos * sx, -sin * sy, t.Rect.X * c.scale,
		sin * sx, cos * sy, t.Rect.Y * c.scale,
	}
	transformer := draw.NearestNeighbor
	if t.Interpolate {
		transformer = draw.BiLinear
	}
	dst := c.img.SubImage(c.clip).(*image.RGBA)
	transformer.Transform(dst, s2d, src, src.Bounds(), draw.Over, nil)
}

func capFunc(style plotgd.CapStyle) rasterx.CapFunc {
	switch style {
	case plotgd.CapRound:
		return rasterx.RoundCap
	case plotgd.CapButt:
		return rasterx.ButtCap
	default:
		return rasterx.SquareCap
	}
}

func joinMode(join plotgd.JoinStyle) rasterx.JoinMode {
	switch join {
	case plotgd.JoinMiter:
		return rasterx.Miter
	case plotgd.JoinBevel:
		return rasterx.Bevel
	default:
		return rasterx.Round
	}
}

func nrgba(c plotgd.Color) color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// premultiplied repacks host pixels, which carry straight alpha, into
// the premultiplied representation compositing expects.
func premultiplied(raster plotgd.Raster) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, raster.Width, raster.Height))
	n := raster.Width * raster.Height
	for i := 0; i < n; i++ {
		px := raster.Pixels[i]
		r, g, b, a := px.R(), px.G(), px.B(), px.A()
		if a < 255 {
			r = uint8(uint32(r) * uint32(a) / 255)
			g = uint8(uint32(g) * uint32(a) / 255)
			b = uint8(uint32(b) * uint32(a) / 255)
		}
		img.Pix[i*4+0] = r
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = a
	}
	return img
}
