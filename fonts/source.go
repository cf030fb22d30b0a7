package fonts

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// Source is one parsed font file. A Source can produce any number of
// faces at different sizes and is safe for concurrent use; the parsed
// font object it wraps is read-only.
type Source struct {
	font *font.Font
}

// NewSource parses TTF or OTF font data. The data is not retained.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: parse font data: %w", err)
	}
	return &Source{font: face.Font}, nil
}

// Face returns a face of this source at the given size in px.
//
// The underlying font.Face caches glyph lookups and is not safe for
// concurrent use; each goroutine should obtain its own Face.
func (s *Source) Face(size float64) Face {
	return Face{Face: font.NewFace(s.font), Size: size}
}

// Face pairs a font with a size. The zero Face is invalid.
type Face struct {
	Face *font.Face
	Size float64
}

// Scale returns the factor converting font units to px at this size.
func (f Face) Scale() float64 {
	return f.Size / float64(f.Face.Upem())
}

// Metrics returns the ascent and descent in px, both as positive
// distances from the baseline.
func (f Face) Metrics() (ascent, descent float64) {
	ext, ok := f.Face.FontHExtents()
	if !ok {
		// Fall back to the common 80/20 split of the em square.
		return f.Size * 0.8, f.Size * 0.2
	}
	scale := f.Scale()
	descent = float64(ext.Descender) * scale
	if descent < 0 {
		descent = -descent
	}
	return float64(ext.Ascender) * scale, descent
}
