package renderers

import (
	"bytes"
	"fmt"

	"github.com/plotgd/plotgd"
)

// svgPortableRenderer emits the portable dialect: no style block, all
// styling as presentation attributes, and clip path ids suffixed with a
// per-document token so several documents can share one HTML page.
// The background rect always carries a concrete fill color.
type svgPortableRenderer struct {
	token TokenSource
}

func newSVGPortable(cfg config) Renderer {
	return &svgPortableRenderer{token: cfg.token}
}

func (r *svgPortableRenderer) Render(page plotgd.Page, scale float64) ([]byte, error) {
	w := &svgPortableWriter{scale: scale, token: r.token()}
	w.page(page)
	return w.buf.Bytes(), nil
}

type svgPortableWriter struct {
	buf   bytes.Buffer
	scale float64
	token string
}

func (w *svgPortableWriter) page(page plotgd.Page) {
	w.buf.Grow((len(page.DrawCalls)+len(page.Clips))*128 + 512)
	w.buf.WriteString(svgOpen)
	fmt.Fprintf(&w.buf, "width=\"%.2f\" height=\"%.2f\" viewBox=\"0 0 %.2f %.2f\">\n<defs>\n",
		page.Width*w.scale, page.Height*w.scale, page.Width, page.Height)
	for _, cp := range page.Clips {
		fmt.Fprintf(&w.buf,
			"<clipPath id=\"c%d-%s\"><rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"/></clipPath>\n",
			cp.ID, w.token, cp.Rect.X, cp.Rect.Y, cp.Rect.Width, cp.Rect.Height)
	}
	w.buf.WriteString("</defs>\n")
	fmt.Fprintf(&w.buf, "<rect width=\"100%%\" height=\"100%%\" stroke=\"none\" fill=\"%s\"/>\n",
		page.Fill.Hex())

	opened := false
	walkPage(page,
		func(clip plotgd.Clip) {
			if opened {
				fmt.Fprintf(&w.buf, "</g><g clip-path=\"url(#c%d-%s)\">\n", clip.ID, w.token)
				return
			}
			fmt.Fprintf(&w.buf, "<g clip-path=\"url(#c%d-%s)\">\n", clip.ID, w.token)
			opened = true
		},
		func(dc plotgd.DrawCall) {
			dc.Visit(w)
			w.buf.WriteByte('\n')
		})
	w.buf.WriteString("</g>\n</svg>")
}

func (w *svgPortableWriter) Text(c *plotgd.TextCall) {
	w.buf.WriteString("<g><text ")
	if c.Rot == 0.0 {
		fmt.Fprintf(&w.buf, `x="%.2f" y="%.2f" `, c.Pos.X, c.Pos.Y)
	} else {
		fmt.Fprintf(&w.buf, `transform="translate(%.2f,%.2f) rotate(%.2f)" `,
			c.Pos.X, c.Pos.Y, -c.Rot)
	}
	if c.Hadj == 0.5 {
		w.buf.WriteString(`text-anchor="middle" `)
	} else if c.Hadj == 1 {
		w.buf.WriteString(`text-anchor="end" `)
	}
	fmt.Fprintf(&w.buf, `font-family="%s" font-size="%.2fpx"`, c.Font.Family, c.Font.Size)
	if c.Font.Weight != 400 {
		if c.Font.Weight == 700 {
			w.buf.WriteString(` font-weight="bold"`)
		} else {
			fmt.Fprintf(&w.buf, ` font-weight="%d"`, c.Font.Weight)
		}
	}
	if c.Font.Italic {
		w.buf.WriteString(` font-style="italic"`)
	}
	if c.Col != plotgd.Black {
		attFillOrNone(&w.buf, c.Col)
	}
	if c.Font.Features != "" {
		fmt.Fprintf(&w.buf, ` font-feature-settings="%s"`, c.Font.Features)
	}
	if c.Font.WidthPx > 0 {
		fmt.Fprintf(&w.buf, ` textLength="%.2fpx" lengthAdjust="spacingAndGlyphs"`,
			c.Font.WidthPx)
	}
	w.buf.WriteByte('>')
	w.buf.WriteString(xmlEscaper.Replace(c.Str))
	w.buf.WriteString("</text></g>")
}

func (w *svgPortableWriter) Circle(c *plotgd.CircleCall) {
	w.buf.WriteString("<circle ")
	fmt.Fprintf(&w.buf, `cx="%.2f" cy="%.2f" r="%.2f" `, c.Center.X, c.Center.Y, c.Radius)
	attLine(&w.buf, c.Line)
	attFillOrNone(&w.buf, c.Fill)
	w.buf.WriteString("/>")
}

func (w *svgPortableWriter) Line(c *plotgd.LineCall) {
	w.buf.WriteString("<line ")
	fmt.Fprintf(&w.buf, `x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" `,
		c.From.X, c.From.Y, c.To.X, c.To.Y)
	attLine(&w.buf, c.Line)
	w.buf.WriteString("/>")
}

func (w *svgPortableWriter) Rect(c *plotgd.RectCall) {
	w.buf.WriteString("<rect ")
	fmt.Fprintf(&w.buf, `x="%.2f" y="%.2f" width="%.2f" height="%.2f" `,
		c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
	attLine(&w.buf, c.Line)
	attFillOrNone(&w.buf, c.Fill)
	w.buf.WriteString("/>")
}

func (w *svgPortableWriter) Polyline(c *plotgd.PolylineCall) {
	w.buf.WriteString(`<polyline points="`)
	writePoints(&w.buf, c.Points)
	w.buf.WriteString(`" fill="none" `)
	attLine(&w.buf, c.Line)
	w.buf.WriteString("/>")
}

func (w *svgPortableWriter) Polygon(c *plotgd.PolygonCall) {
	w.buf.WriteString(`<polygon points="`)
	writePoints(&w.buf, c.Points)
	w.buf.WriteString(`" `)
	attLine(&w.buf, c.Line)
	attFillOrNone(&w.buf, c.Fill)
	w.buf.WriteString("/>")
}

func (w *svgPortableWriter) Path(c *plotgd.PathCall) {
	w.buf.WriteString(`<path d="`)
	writePathData(&w.buf, c.Points, c.NPer)
	w.buf.WriteString(`" `)
	attLine(&w.buf, c.Line)
	attFillOrNone(&w.buf, c.Fill)
	w.buf.WriteString(` fill-rule="`)
	if c.Rule == plotgd.FillEvenOdd {
		w.buf.WriteString("evenodd")
	} else {
		w.buf.WriteString("nonzero")
	}
	w.buf.WriteString(`"/>`)
}

func (w *svgPortableWriter) Raster(c *plotgd.RasterCall) {
	w.buf.WriteString("<g><image ")
	fmt.Fprintf(&w.buf, ` x="%.2f" y="%.2f" width="%.2f" height="%.2f" `,
		c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
	w.buf.WriteString(`preserveAspectRatio="none" `)
	if !c.Interpolate {
		w.buf.WriteString(`image-rendering="pixelated" `)
	}
	if c.Rot != 0 {
		fmt.Fprintf(&w.buf, `transform="rotate(%.2f,%.2f,%.2f)" `,
			-c.Rot, c.Rect.X, c.Rect.Y)
	}
	w.buf.WriteString(` xlink:href="data:image/png;base64,`)
	w.buf.WriteString(rasterBase64(c.Raster))
	w.buf.WriteString(`"/></g>`)
}
