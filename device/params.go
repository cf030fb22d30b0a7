package device

import "github.com/plotgd/plotgd"

// Params holds the host-supplied device parameters. Width and height
// are the logical page size in points; the alias table maps requested
// font family names to resolved ones before text is recorded.
type Params struct {
	Background plotgd.Color
	Width      float64
	Height     float64
	PointSize  float64
	Aliases    map[string]string

	// ResetPar asks the host to reset its drawing parameters on every
	// new page. The device only carries the flag; honoring it is the
	// host's business.
	ResetPar bool
}

func defaultParams() Params {
	return Params{
		Background: plotgd.White,
		Width:      720,
		Height:     576,
		PointSize:  12,
	}
}

// Option configures a device at construction.
type Option func(*Params)

// WithBackground sets the background fill of new pages.
func WithBackground(fill plotgd.Color) Option {
	return func(p *Params) { p.Background = fill }
}

// WithSize sets the logical page size in points.
func WithSize(width, height float64) Option {
	return func(p *Params) { p.Width = width; p.Height = height }
}

// WithPointSize sets the default text size in points.
func WithPointSize(pt float64) Option {
	return func(p *Params) { p.PointSize = pt }
}

// WithAliases sets the font family alias table.
func WithAliases(aliases map[string]string) Option {
	return func(p *Params) { p.Aliases = aliases }
}

// WithResetPar sets the reset-on-new-page flag handed back to the host.
func WithResetPar(reset bool) Option {
	return func(p *Params) { p.ResetPar = reset }
}
