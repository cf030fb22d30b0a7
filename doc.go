// Package plotgd records 2D plot drawing primitives into immutable pages
// and serializes them through interchangeable renderer engines.
//
// # Overview
//
// plotgd is the capture side of a plot graphics device: a host graphics
// environment emits drawing primitives (text, shapes, rasters) which a
// PageBuilder records as immutable draw calls grouped under clip regions.
// A finished Page can be serialized any number of times through the
// renderers in the renderers package (SVG, PNG, PDF, PostScript, TIFF,
// JSON and compressed variants), replayed from the history package, or
// rendered on behalf of another goroutine through the bridge package.
//
// # Quick Start
//
//	import (
//	    "github.com/plotgd/plotgd"
//	    "github.com/plotgd/plotgd/renderers"
//	)
//
//	pb := plotgd.NewPageBuilder(1, 720, 576, plotgd.White)
//	pb.Line(plotgd.DefaultLine(), plotgd.Point{X: 10, Y: 10}, plotgd.Point{X: 700, Y: 560})
//	page := pb.Finish()
//
//	reg := renderers.NewRegistry()
//	info, _ := reg.Find("svg")
//	buf, _ := info.New().Render(page, 1.0)
//
// # Data Model
//
// Draw calls form a closed set of kinds: Text, Circle, Line, Rect,
// Polyline, Polygon, Path and Raster. Each call is a value snapshot taken
// at emission time; mutating host state afterwards never changes a
// recorded call. Calls carry a clip id referencing the owning page's clip
// list, and calls sharing a clip id are contiguous in emission order.
//
// # Coordinate System
//
// Device coordinates: origin at top-left, X right, Y down, units of
// 1/96 inch. Renderers that target 72-units-per-inch formats (SVG, PDF,
// PostScript) convert stroke widths and dash lengths accordingly.
//
// # Concurrency
//
// Page construction and rendering are single-threaded and synchronous.
// Cross-thread access goes through the bridge package, which funnels work
// onto the one goroutine that owns the live drawing state.
package plotgd
