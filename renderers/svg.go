package renderers

import (
	"bytes"
	"fmt"

	"github.com/plotgd/plotgd"
)

// svgOpen is shared by both dialects up to the dimension attributes.
const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" class="plotgd" `

// svgStyleDefaults declares the stroke defaults the inline dialect
// omits from per-element styles.
const svgStyleDefaults = "  <style type='text/css'><![CDATA[\n" +
	"    .plotgd line, .plotgd polyline, .plotgd polygon, .plotgd path, .plotgd rect, .plotgd circle {\n" +
	"      fill: none;\n" +
	"      stroke: #000000;\n" +
	"      stroke-linecap: round;\n" +
	"      stroke-linejoin: round;\n" +
	"      stroke-miterlimit: 10.00;\n" +
	"    }\n"

// svgRenderer emits the inline dialect: a shared style block carries
// the stroke defaults, elements carry only deviations in style
// attributes. Clip ids are plain and stable across renders, so output
// is deterministic but unsafe to inline into a page twice.
type svgRenderer struct {
	extraCSS string
}

func newSVG(cfg config) Renderer {
	return &svgRenderer{extraCSS: cfg.extraCSS}
}

func (r *svgRenderer) Render(page plotgd.Page, scale float64) ([]byte, error) {
	w := &svgWriter{scale: scale, extraCSS: r.extraCSS}
	w.page(page)
	return w.buf.Bytes(), nil
}

// svgWriter accumulates one document; a fresh writer serves each
// render.
type svgWriter struct {
	buf      bytes.Buffer
	scale    float64
	extraCSS string
}

func (w *svgWriter) page(page plotgd.Page) {
	w.buf.Grow((len(page.DrawCalls)+len(page.Clips))*128 + 512)
	w.buf.WriteString(svgOpen)
	fmt.Fprintf(&w.buf, `width="%.2f" height="%.2f" viewBox="0 0 %.2f %.2f"`,
		page.Width*w.scale, page.Height*w.scale, page.Width, page.Height)
	w.buf.WriteString(">\n<defs>\n")
	w.buf.WriteString(svgStyleDefaults)
	if w.extraCSS != "" {
		w.buf.WriteString(w.extraCSS)
		w.buf.WriteByte('\n')
	}
	w.buf.WriteString("  ]]></style>\n")
	for _, cp := range page.Clips {
		fmt.Fprintf(&w.buf,
			"<clipPath id=\"c%d\"><rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"/></clipPath>\n",
			cp.ID, cp.Rect.X, cp.Rect.Y, cp.Rect.Width, cp.Rect.Height)
	}
	w.buf.WriteString("</defs>\n")
	w.buf.WriteString(`<rect width="100%" height="100%" style="stroke: none;`)
	cssFillOrNone(&w.buf, page.Fill)
	w.buf.WriteString("\"/>\n")

	opened := false
	walkPage(page,
		func(clip plotgd.Clip) {
			if opened {
				fmt.Fprintf(&w.buf, "</g><g clip-path=\"url(#c%d)\">\n", clip.ID)
				return
			}
			fmt.Fprintf(&w.buf, "<g clip-path=\"url(#c%d)\">\n", clip.ID)
			opened = true
		},
		func(dc plotgd.DrawCall) {
			dc.Visit(w)
			w.buf.WriteByte('\n')
		})
	w.buf.WriteString("</g>\n</svg>")
}

func (w *svgWriter) Text(c *plotgd.TextCall) {
	// The clip path lives on the surrounding group; a clip path on the
	// element itself would be transformed along with the text.
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
	w.buf.WriteString(`style="`)
	fmt.Fprintf(&w.buf, "font-family: %s;font-size: %.2fpx;", c.Font.Family, c.Font.Size)
	if c.Font.Weight != 400 {
		if c.Font.Weight == 700 {
			w.buf.WriteString("font-weight: bold;")
		} else {
			fmt.Fprintf(&w.buf, "font-weight: %d;", c.Font.Weight)
		}
	}
	if c.Font.Italic {
		w.buf.WriteString("font-style: italic;")
	}
	if c.Col != plotgd.Black {
		cssFillOrNone(&w.buf, c.Col)
	}
	if c.Font.Features != "" {
		fmt.Fprintf(&w.buf, "font-feature-settings: %s;", c.Font.Features)
	}
	w.buf.WriteByte('"')
	if c.Font.WidthPx > 0 {
		fmt.Fprintf(&w.buf, ` textLength="%.2fpx" lengthAdjust="spacingAndGlyphs"`,
			c.Font.WidthPx)
	}
	w.buf.WriteByte('>')
	w.buf.WriteString(xmlEscaper.Replace(c.Str))
	w.buf.WriteString("</text></g>")
}

func (w *svgWriter) Circle(c *plotgd.CircleCall) {
	w.buf.WriteString("<circle ")
	fmt.Fprintf(&w.buf, `cx="%.2f" cy="%.2f" r="%.2f" `, c.Center.X, c.Center.Y, c.Radius)
	w.buf.WriteString(`style="`)
	cssLine(&w.buf, c.Line)
	cssFillOrOmit(&w.buf, c.Fill)
	w.buf.WriteString(`"/>`)
}

func (w *svgWriter) Line(c *plotgd.LineCall) {
	w.buf.WriteString("<line ")
	fmt.Fprintf(&w.buf, `x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" `,
		c.From.X, c.From.Y, c.To.X, c.To.Y)
	w.buf.WriteString(`style="`)
	cssLine(&w.buf, c.Line)
	w.buf.WriteString(`"/>`)
}

func (w *svgWriter) Rect(c *plotgd.RectCall) {
	w.buf.WriteString("<rect ")
	fmt.Fprintf(&w.buf, `x="%.2f" y="%.2f" width="%.2f" height="%.2f" `,
		c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
	w.buf.WriteString(`style="`)
	cssLine(&w.buf, c.Line)
	cssFillOrOmit(&w.buf, c.Fill)
	w.buf.WriteString(`"/>`)
}

func (w *svgWriter) Polyline(c *plotgd.PolylineCall) {
	w.buf.WriteString(`<polyline points="`)
	writePoints(&w.buf, c.Points)
	w.buf.WriteString(`" style="`)
	cssLine(&w.buf, c.Line)
	w.buf.WriteString(`"/>`)
}

func (w *svgWriter) Polygon(c *plotgd.PolygonCall) {
	w.buf.WriteString(`<polygon points="`)
	writePoints(&w.buf, c.Points)
	w.buf.WriteString(`" style="`)
	cssLine(&w.buf, c.Line)
	cssFillOrOmit(&w.buf, c.Fill)
	w.buf.WriteString(`" />`)
}

func (w *svgWriter) Path(c *plotgd.PathCall) {
	w.buf.WriteString(`<path d="`)
	writePathData(&w.buf, c.Points, c.NPer)
	w.buf.WriteString(`" style="`)
	cssLine(&w.buf, c.Line)
	cssFillOrOmit(&w.buf, c.Fill)
	w.buf.WriteString("fill-rule: ")
	if c.Rule == plotgd.FillEvenOdd {
		w.buf.WriteString("evenodd")
	} else {
		w.buf.WriteString("nonzero")
	}
	w.buf.WriteString(`;"/>`)
}

func (w *svgWriter) Raster(c *plotgd.RasterCall) {
	// Same story as text: the transform must not touch the clip path.
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
