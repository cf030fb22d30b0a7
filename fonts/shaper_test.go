package fonts

import (
	"math"
	"testing"

	"github.com/go-text/typesetting/di"
)

func TestShaperBasicLatin(t *testing.T) {
	face := testSource(t).Face(16)
	shaper := NewShaper()

	glyphs := shaper.Shape(face, "Hello")
	if len(glyphs) != 5 {
		t.Fatalf("Shape(\"Hello\"): got %d glyphs, want 5", len(glyphs))
	}

	// All glyphs advance and X positions increase monotonically.
	var prevX float64
	for i, g := range glyphs {
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d: XAdvance = %v, want > 0", i, g.XAdvance)
		}
		if i > 0 && g.X <= prevX {
			t.Errorf("glyph %d: X = %v, want > previous X %v", i, g.X, prevX)
		}
		prevX = g.X
	}
}

func TestShaperEmptyText(t *testing.T) {
	face := testSource(t).Face(16)
	if got := NewShaper().Shape(face, ""); got != nil {
		t.Errorf("Shape(\"\") = %v, want nil", got)
	}
}

func TestShaperAdvance(t *testing.T) {
	face := testSource(t).Face(16)
	shaper := NewShaper()

	adv := shaper.Advance(face, "Hello World")
	if adv <= 0 {
		t.Fatalf("Advance() = %v, want > 0", adv)
	}

	// Advance equals the sum of glyph advances.
	var sum float64
	for _, g := range shaper.Shape(face, "Hello World") {
		sum += g.XAdvance
	}
	if math.Abs(adv-sum) > 1e-9 {
		t.Errorf("Advance() = %v, sum of XAdvance = %v", adv, sum)
	}

	// Longer text advances further.
	if shaper.Advance(face, "Hello") >= adv {
		t.Error("shorter text should have smaller advance")
	}
}

func TestShaperDirection(t *testing.T) {
	tests := []struct {
		text string
		want di.Direction
	}{
		{"Hello", di.DirectionLTR},
		{"", di.DirectionLTR},
		{"   ", di.DirectionLTR},
		{"שלום", di.DirectionRTL},
		{"مرحبا", di.DirectionRTL},
		// Mixed text shapes as one LTR run.
		{"abc שלום", di.DirectionLTR},
	}
	for _, tt := range tests {
		if got := detectDirection(tt.text); got != tt.want {
			t.Errorf("detectDirection(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestShaperDeterministic(t *testing.T) {
	face := testSource(t).Face(16)
	shaper := NewShaper()

	a := shaper.Shape(face, "determinism")
	b := shaper.Shape(face, "determinism")
	if len(a) != len(b) {
		t.Fatalf("re-shape changed glyph count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("glyph %d differs between identical shape calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}
