package renderers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/plotgd/plotgd"
	"github.com/plotgd/plotgd/fonts"
)

// pngRenderer rasterizes the page and encodes the pixels as PNG.
type pngRenderer struct {
	library *fonts.Library
}

func newPNG(cfg config) Renderer {
	return &pngRenderer{library: cfg.library()}
}

func (r *pngRenderer) Render(page plotgd.Page, scale float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, rasterize(page, scale, r.library)); err != nil {
		return nil, fmt.Errorf("renderers: png: %w", err)
	}
	return buf.Bytes(), nil
}

// pngBase64Renderer wraps the PNG bytes in a data URI, ready for an
// img src attribute.
type pngBase64Renderer struct {
	png pngRenderer
}

func newPNGBase64(cfg config) Renderer {
	return &pngBase64Renderer{png: pngRenderer{library: cfg.library()}}
}

func (r *pngBase64Renderer) Render(page plotgd.Page, scale float64) ([]byte, error) {
	raw, err := r.png.Render(page, scale)
	if err != nil {
		return nil, err
	}
	return []byte("data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)), nil
}
