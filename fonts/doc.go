// Package fonts resolves host font selections to parsed fonts and shapes
// text into positioned glyphs.
//
// A Library maps requested family names through the device's alias table
// to registered font data, falling back to the embedded Go fonts so that
// rendering works identically on every host. Parsing and shaping are
// backed by go-text/typesetting; the same shaped advances serve both the
// raster canvas and text width measurement.
package fonts
