package renderers

import (
	"bytes"
	"compress/gzip"
	"fmt"

	"github.com/plotgd/plotgd"
)

// Compressor compresses a fully rendered document. The compressed SVG
// variants pass their output through one; the default is
// [GzipCompressor].
type Compressor func(data []byte) ([]byte, error)

// GzipCompressor compresses data with gzip at the default level.
func GzipCompressor(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("renderers: gzip: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("renderers: gzip: %w", err)
	}
	return buf.Bytes(), nil
}

// compressed renders through an inner renderer and compresses the whole
// document afterwards.
type compressed struct {
	inner    Renderer
	compress Compressor
}

func newSVGZ(cfg config) Renderer {
	return &compressed{inner: newSVG(cfg), compress: cfg.compress}
}

func newSVGZPortable(cfg config) Renderer {
	return &compressed{inner: newSVGPortable(cfg), compress: cfg.compress}
}

func (r *compressed) Render(page plotgd.Page, scale float64) ([]byte, error) {
	data, err := r.inner.Render(page, scale)
	if err != nil {
		return nil, err
	}
	return r.compress(data)
}
