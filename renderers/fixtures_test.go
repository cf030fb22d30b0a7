package renderers

import "github.com/plotgd/plotgd"

// rectPage is the smallest interesting page: white background, one
// red-filled rectangle under the whole-page clip.
func rectPage() plotgd.Page {
	b := plotgd.NewPageBuilder(1, 200, 150, plotgd.White)
	b.Rect(plotgd.DefaultLine(), plotgd.RGBA(255, 0, 0, 255),
		plotgd.Rect{X: 10, Y: 20, Width: 50, Height: 30})
	return b.Finish()
}

// samplerPage records every draw-call kind and one clip switch.
func samplerPage() plotgd.Page {
	b := plotgd.NewPageBuilder(2, 320, 240, plotgd.White)
	line := plotgd.DefaultLine()

	b.Rect(line, plotgd.RGBA(200, 220, 255, 255), plotgd.Rect{X: 8, Y: 8, Width: 304, Height: 224})
	b.Line(line, plotgd.Point{X: 10, Y: 230}, plotgd.Point{X: 310, Y: 10})
	b.Circle(line, plotgd.RGBA(255, 160, 0, 255), plotgd.Point{X: 160, Y: 120}, 24)
	b.Polyline(line, []plotgd.Point{{X: 20, Y: 20}, {X: 60, Y: 40}, {X: 100, Y: 20}})
	b.Polygon(line, plotgd.RGBA(0, 128, 0, 128),
		[]plotgd.Point{{X: 200, Y: 40}, {X: 240, Y: 80}, {X: 160, Y: 80}})

	b.SetClip(plotgd.RectFromCorners(40, 40, 280, 200))
	b.Path(line, plotgd.RGBA(128, 0, 128, 255),
		[]plotgd.Point{
			{X: 60, Y: 60}, {X: 120, Y: 60}, {X: 120, Y: 120},
			{X: 80, Y: 70}, {X: 100, Y: 70}, {X: 90, Y: 90},
		},
		[]int{3, 3}, plotgd.FillEvenOdd)
	b.Text(plotgd.Black, plotgd.Point{X: 160, Y: 200}, "plot title", 0, 0.5,
		plotgd.TextInfo{Weight: 400, Family: "sans", Size: 14})
	b.Raster(checkerRaster(), plotgd.Rect{X: 220, Y: 140, Width: 40, Height: 40}, 0, false)
	return b.Finish()
}

// checkerRaster returns an opaque 2x2 black and white checkerboard.
func checkerRaster() plotgd.Raster {
	return plotgd.Raster{
		Width:  2,
		Height: 2,
		Pixels: []plotgd.Color{
			plotgd.RGBA(0, 0, 0, 255), plotgd.RGBA(255, 255, 255, 255),
			plotgd.RGBA(255, 255, 255, 255), plotgd.RGBA(0, 0, 0, 255),
		},
	}
}
