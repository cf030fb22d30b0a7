package renderers

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/image/tiff"

	"github.com/plotgd/plotgd"
	"github.com/plotgd/plotgd/fonts"
)

// tiffRenderer rasterizes the page and encodes the pixels as a
// deflate-compressed TIFF with associated alpha.
type tiffRenderer struct {
	library *fonts.Library
}

func newTIFF(cfg config) Renderer {
	return &tiffRenderer{library: cfg.library()}
}

func (r *tiffRenderer) Render(page plotgd.Page, scale float64) ([]byte, error) {
	var buf bytes.Buffer
	sink := &partialSink{w: &buf}
	opt := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(sink, rasterize(page, scale, r.library), opt); err != nil {
		return nil, fmt.Errorf("renderers: tiff: %w", err)
	}
	return buf.Bytes(), nil
}

// partialSink forwards writes until the first failure and swallows the
// rest, reporting success. A failing sink therefore truncates the
// encoded image instead of failing the whole render.
type partialSink struct {
	w   io.Writer
	err error
}

func (s *partialSink) Write(p []byte) (int, error) {
	if s.err == nil {
		n, err := s.w.Write(p)
		if err == nil {
			return n, nil
		}
		s.err = err
		plotgd.Logger().Warn("renderers: partial image write", "err", err)
	}
	return len(p), nil
}
