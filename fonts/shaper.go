package fonts

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Glyph is one shaped glyph positioned relative to the text origin, in
// px. X and Y already include the shaper's fine positioning offsets;
// XAdvance is the pen advance to the next glyph.
type Glyph struct {
	GID      font.GID
	X, Y     float64
	XAdvance float64
}

// Shaper converts text into positioned glyphs using HarfBuzz shaping.
//
// Shaper is safe for concurrent use: HarfbuzzShaper instances carry
// internal buffers and are pooled rather than shared.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes text as a single run with the given face. The run
// direction follows the dominant bidi paragraph direction, so purely
// right-to-left labels come out right-to-left.
func (s *Shaper) Shape(face Face, text string) []Glyph {
	if text == "" || face.Face == nil {
		return nil
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: detectDirection(text),
		Face:      face.Face,
		Size:      floatToFixed(face.Size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	if len(output.Glyphs) == 0 {
		return nil
	}
	glyphs := make([]Glyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		glyphs[i] = Glyph{
			GID: g.GlyphID,
			X:   x + fixedToFloat(g.XOffset),
			// YOffset is positive upwards; device Y grows downwards.
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: fixedToFloat(g.XAdvance),
		}
		x += fixedToFloat(g.XAdvance)
	}
	return glyphs
}

// Advance returns the total advance width of the shaped text in px.
func (s *Shaper) Advance(face Face, text string) float64 {
	var w float64
	for _, g := range s.Shape(face, text) {
		w += g.XAdvance
	}
	return w
}

// detectDirection returns the shaping direction of the text's dominant
// bidi paragraph direction. Mixed-direction text shapes LTR; callers
// wanting full bidi layout should split it into runs first.
func detectDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return di.DirectionLTR
	}
	if o.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs by
// the caller before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 px value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
