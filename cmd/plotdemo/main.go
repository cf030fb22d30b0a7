// Command plotdemo records a sample plot and serializes it with one of
// the built-in renderers.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/plotgd/plotgd"
	"github.com/plotgd/plotgd/device"
)

func main() {
	var (
		format = flag.String("format", "svg", "output format id, see -list")
		output = flag.String("output", "", "output file (default demo.<ext>)")
		width  = flag.Float64("width", 640, "page width in px")
		height = flag.Float64("height", 480, "page height in px")
		zoom   = flag.Float64("zoom", 1, "output scale factor")
		list   = flag.Bool("list", false, "list available formats and exit")
	)
	flag.Parse()

	dev := device.New(device.WithSize(*width, *height))
	defer dev.Close()

	if *list {
		for _, info := range dev.RendererInfos() {
			fmt.Printf("%-12s %-24s %s\n", info.ID, info.Mime, info.Descr)
		}
		return
	}

	info, err := dev.Renderers().Find(*format)
	if err != nil {
		log.Fatalf("Unknown format: %v", err)
	}
	if *output == "" {
		*output = "demo" + info.Ext
	}

	id := dev.NewPage()
	b := dev.Builder()
	drawSeries(b, *width, *height)
	drawLegend(b, *width)
	drawStar(b, 80, *height-70)
	drawSwatch(b, *width-110, *height-110)

	out, err := dev.Render(*format, id, *width, *height, *zoom)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := os.WriteFile(*output, out, 0o644); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%s, %d bytes)\n", *output, info.Name, len(out))
}

const margin = 48.0

func seriesLine() plotgd.LineInfo {
	l := plotgd.DefaultLine()
	l.Col = plotgd.RGBA(70, 130, 180, 255)
	l.Width = 2
	return l
}

func drawSeries(b *plotgd.PageBuilder, w, h float64) {
	axis := plotgd.DefaultLine()
	axis.Col = plotgd.RGBA(64, 64, 64, 255)
	axis.Cap = plotgd.CapButt

	left, right := margin, w-margin
	top, bottom := margin+16, h-margin

	grid := axis
	grid.Col = plotgd.RGBA(200, 200, 200, 255)
	grid.Type = plotgd.LineDotted
	for i := 1; i < 4; i++ {
		y := top + (bottom-top)*float64(i)/4
		b.Line(grid, plotgd.Point{X: left, Y: y}, plotgd.Point{X: right, Y: y})
	}

	// One period of a damped sine, filled down to the midline. Clipped
	// to the chart region so overshoot never crosses the axes.
	mid := (top + bottom) / 2
	amp := (bottom - top) / 2.2
	steps := 64
	pts := make([]plotgd.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, plotgd.Point{
			X: left + (right-left)*t,
			Y: mid - amp*math.Sin(2*math.Pi*t)*math.Exp(-1.2*t),
		})
	}

	b.SetClip(plotgd.RectFromCorners(left, top, right, bottom))

	area := append([]plotgd.Point{{X: left, Y: mid}}, pts...)
	area = append(area, plotgd.Point{X: right, Y: mid})
	b.Polygon(plotgd.LineInfo{Col: plotgd.Transparent}, plotgd.RGBA(70, 130, 180, 64), area)

	series := seriesLine()
	b.Polyline(series, pts)
	for i := 0; i <= steps; i += 8 {
		b.Circle(series, plotgd.White, pts[i], 3)
	}

	b.SetClip(plotgd.Rect{Width: w, Height: h})

	b.Line(axis, plotgd.Point{X: left, Y: bottom}, plotgd.Point{X: right, Y: bottom})
	b.Line(axis, plotgd.Point{X: left, Y: top}, plotgd.Point{X: left, Y: bottom})

	title := plotgd.TextInfo{Weight: 700, Family: "sans", Size: 18}
	b.Text(plotgd.Black, plotgd.Point{X: w / 2, Y: top - 18}, "Damped oscillation", 0, 0.5, title)

	label := plotgd.TextInfo{Family: "mono", Size: 11}
	b.Text(axis.Col, plotgd.Point{X: left - 8, Y: mid}, "0.0", 90, 0.5, label)
	b.Text(axis.Col, plotgd.Point{X: (left + right) / 2, Y: bottom + 18}, "t", 0, 0.5, label)
}

func drawLegend(b *plotgd.PageBuilder, w float64) {
	box := plotgd.DefaultLine()
	box.Col = plotgd.RGBA(64, 64, 64, 255)
	box.Width = 0.75

	x, y := w-margin-150, margin+24
	b.Rect(box, plotgd.RGBA(255, 255, 255, 230), plotgd.Rect{X: x, Y: y, Width: 150, Height: 30})
	b.Line(seriesLine(), plotgd.Point{X: x + 10, Y: y + 15}, plotgd.Point{X: x + 38, Y: y + 15})

	label := plotgd.TextInfo{Family: "sans", Size: 12}
	b.Text(plotgd.Black, plotgd.Point{X: x + 46, Y: y + 19}, "damped sine", 0, 0, label)
}

func drawStar(b *plotgd.PageBuilder, cx, cy float64) {
	pts := make([]plotgd.Point, 0, 10)
	for i := 0; i < 10; i++ {
		r := 26.0
		if i%2 == 1 {
			r = 11.0
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		pts = append(pts, plotgd.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}

	line := plotgd.DefaultLine()
	line.Col = plotgd.RGBA(180, 130, 0, 255)
	line.Join = plotgd.JoinMiter
	b.Path(line, plotgd.RGBA(255, 200, 0, 255), pts, []int{10}, plotgd.FillNonZero)
}

func drawSwatch(b *plotgd.PageBuilder, x, y float64) {
	const n = 8
	r := plotgd.Raster{Width: n, Height: n, Pixels: make([]plotgd.Color, n*n)}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			r.Pixels[j*n+i] = plotgd.RGBA(uint8(255*i/(n-1)), uint8(255*j/(n-1)), 160, 255)
		}
	}
	b.Raster(r, plotgd.Rect{X: x, Y: y, Width: 64, Height: 64}, 15, true)
}
