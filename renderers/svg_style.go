package renderers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"
	"strings"

	"github.com/plotgd/plotgd"
)

// xmlEscaper rewrites the five XML special characters to entities.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func alphaFrac(c plotgd.Color) float64 { return float64(c.A()) / 255.0 }

// cssFillOrNone writes the fill declaration, "fill: none;" for a fully
// transparent color.
func cssFillOrNone(buf *bytes.Buffer, fill plotgd.Color) {
	if fill.Transparent() {
		buf.WriteString("fill: none;")
		return
	}
	fmt.Fprintf(buf, "fill: %s;", fill.Hex())
	if !fill.Opaque() {
		fmt.Fprintf(buf, "fill-opacity: %.2f;", alphaFrac(fill))
	}
}

// cssFillOrOmit writes the fill declaration, or nothing at all for a
// fully transparent color.
func cssFillOrOmit(buf *bytes.Buffer, fill plotgd.Color) {
	if fill.Transparent() {
		return
	}
	fmt.Fprintf(buf, "fill: %s;", fill.Hex())
	if !fill.Opaque() {
		fmt.Fprintf(buf, "fill-opacity: %.2f;", alphaFrac(fill))
	}
}

// cssLine writes the stroke declarations of the inline dialect. The
// document style block declares opaque black strokes with round caps,
// round joins and miter limit 10, so those values are omitted.
func cssLine(buf *bytes.Buffer, line plotgd.LineInfo) {
	// Width is recorded in 1/96 inch, the rest of the document uses 1/72.
	fmt.Fprintf(buf, "stroke-width: %.2f;", line.Width/96.0*72)

	if line.Col != plotgd.Black {
		if line.Col.Transparent() {
			buf.WriteString("stroke: none;")
		} else {
			fmt.Fprintf(buf, "stroke: %s;", line.Col.Hex())
			if !line.Col.Opaque() {
				fmt.Fprintf(buf, "stroke-opacity: %.2f;", alphaFrac(line.Col))
			}
		}
	}

	if segs := line.Type.Dashes(line.DashScale()); segs != nil {
		buf.WriteString(" stroke-dasharray: ")
		for i, s := range segs {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%.2f", s)
		}
		buf.WriteByte(';')
	}

	switch line.Cap {
	case plotgd.CapButt:
		buf.WriteString("stroke-linecap: butt;")
	case plotgd.CapSquare:
		buf.WriteString("stroke-linecap: square;")
	}

	switch line.Join {
	case plotgd.JoinBevel:
		buf.WriteString("stroke-linejoin: bevel;")
	case plotgd.JoinMiter:
		buf.WriteString("stroke-linejoin: miter;")
		if math.Abs(line.MiterLimit-10.0) > 1e-3 {
			fmt.Fprintf(buf, "stroke-miterlimit: %.2f;", line.MiterLimit)
		}
	}
}

// attFillOrNone writes the fill as presentation attributes,
// fill="none" for a fully transparent color.
func attFillOrNone(buf *bytes.Buffer, fill plotgd.Color) {
	if fill.Transparent() {
		buf.WriteString(` fill="none"`)
		return
	}
	fmt.Fprintf(buf, ` fill="%s"`, fill.Hex())
	if !fill.Opaque() {
		fmt.Fprintf(buf, ` fill-opacity="%.2f"`, alphaFrac(fill))
	}
}

// attLine writes the stroke as presentation attributes. The portable
// dialect leans on the SVG attribute defaults (no stroke, butt caps,
// miter joins with limit 4), so only deviations are written.
func attLine(buf *bytes.Buffer, line plotgd.LineInfo) {
	fmt.Fprintf(buf, `stroke-width="%.2f"`, line.Width/96.0*72)

	if !line.Col.Transparent() {
		fmt.Fprintf(buf, ` stroke="%s"`, line.Col.Hex())
		if !line.Col.Opaque() {
			fmt.Fprintf(buf, ` stroke-opacity="%.2f"`, alphaFrac(line.Col))
		}
	}

	if segs := line.Type.Dashes(line.DashScale()); segs != nil {
		buf.WriteString(` stroke-dasharray="`)
		for i, s := range segs {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%.2f", s)
		}
		buf.WriteByte('"')
	}

	switch line.Cap {
	case plotgd.CapRound:
		buf.WriteString(` stroke-linecap="round"`)
	case plotgd.CapSquare:
		buf.WriteString(` stroke-linecap="square"`)
	}

	switch line.Join {
	case plotgd.JoinRound:
		buf.WriteString(` stroke-linejoin="round"`)
	case plotgd.JoinBevel:
		buf.WriteString(` stroke-linejoin="bevel"`)
	case plotgd.JoinMiter:
		if math.Abs(line.MiterLimit-4.0) > 1e-3 {
			fmt.Fprintf(buf, ` stroke-miterlimit="%.2f"`, line.MiterLimit)
		}
	}
}

// writePoints writes the points attribute payload, x,y pairs separated
// by spaces.
func writePoints(buf *bytes.Buffer, points []plotgd.Point) {
	for i, p := range points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.2f,%.2f", p.X, p.Y)
	}
}

// writePathData writes the path data attribute: one M/L/Z run per
// subpath, subpath lengths taken from nper. A single-vertex subpath
// produces a bare moveto without a closepath.
func writePathData(buf *bytes.Buffer, points []plotgd.Point, nper []int) {
	sub, left := 0, 0
	for _, p := range points {
		if left == 0 {
			left = nper[sub] - 1
			sub++
			fmt.Fprintf(buf, "M%.2f %.2f", p.X, p.Y)
			continue
		}
		left--
		fmt.Fprintf(buf, "L%.2f %.2f", p.X, p.Y)
		if left == 0 {
			buf.WriteByte('Z')
		}
	}
}

// rasterPNG encodes the raster pixels as a PNG with straight alpha.
func rasterPNG(raster plotgd.Raster) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, raster.Width, raster.Height))
	for i, px := range raster.Pixels {
		img.Pix[i*4+0] = px.R()
		img.Pix[i*4+1] = px.G()
		img.Pix[i*4+2] = px.B()
		img.Pix[i*4+3] = px.A()
	}
	var buf bytes.Buffer
	// Encoding into a memory buffer does not fail.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// rasterBase64 returns the raster as the payload of a PNG data URI.
func rasterBase64(raster plotgd.Raster) string {
	return base64.StdEncoding.EncodeToString(rasterPNG(raster))
}
