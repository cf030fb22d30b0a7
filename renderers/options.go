package renderers

import (
	"sync"

	"github.com/plotgd/plotgd/fonts"
)

// Option configures the renderer set a registry is built with.
type Option func(*config)

// config holds the collaborators shared by the built-in renderer
// factories.
type config struct {
	extraCSS string
	compress Compressor
	token    TokenSource
	fonts    *fonts.Library
}

func defaultConfig() config {
	return config{
		compress: GzipCompressor,
		token:    RandomToken,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// defaultFonts is shared by all renderers that were not given a library
// explicitly. Built lazily; parsing the embedded fonts is not free.
var defaultFonts = sync.OnceValue(fonts.NewLibrary)

func (c config) library() *fonts.Library {
	if c.fonts != nil {
		return c.fonts
	}
	return defaultFonts()
}

// WithExtraCSS appends css to the style block of the inline SVG
// dialect. Other formats ignore it.
//
// Example:
//
//	reg := renderers.NewRegistry(
//		renderers.WithExtraCSS(".plotgd text { font-family: serif; }"),
//	)
func WithExtraCSS(css string) Option {
	return func(c *config) { c.extraCSS = css }
}

// WithCompressor replaces the gzip compression used by the compressed
// SVG variants.
func WithCompressor(compress Compressor) Option {
	return func(c *config) { c.compress = compress }
}

// WithTokenSource replaces the random clip-id token of the portable SVG
// dialect. A fixed token makes portable output deterministic.
//
// Example:
//
//	reg := renderers.NewRegistry(
//		renderers.WithTokenSource(func() string { return "fixed" }),
//	)
func WithTokenSource(token TokenSource) Option {
	return func(c *config) { c.token = token }
}

// WithFontLibrary sets the library the native surface renderers resolve
// text through. The default library carries the embedded Go fonts.
func WithFontLibrary(lib *fonts.Library) Option {
	return func(c *config) { c.fonts = lib }
}
