package fonts

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource(goregular) = %v", err)
	}
	return src
}

func TestNewSourceEmptyData(t *testing.T) {
	if _, err := NewSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(nil) = %v, want ErrEmptyFontData", err)
	}
}

func TestNewSourceInvalidData(t *testing.T) {
	if _, err := NewSource([]byte("not a font")); err == nil {
		t.Error("NewSource(garbage) = nil, want error")
	}
}

func TestFaceScale(t *testing.T) {
	src := testSource(t)
	face := src.Face(16)

	if face.Size != 16 {
		t.Errorf("Size = %v, want 16", face.Size)
	}
	scale := face.Scale()
	if scale <= 0 {
		t.Fatalf("Scale() = %v, want > 0", scale)
	}
	// scale * upem must recover the size.
	if got := scale * float64(face.Face.Upem()); got != 16 {
		t.Errorf("Scale()*Upem() = %v, want 16", got)
	}
}

func TestFaceMetrics(t *testing.T) {
	src := testSource(t)
	ascent, descent := src.Face(16).Metrics()

	if ascent <= 0 || descent <= 0 {
		t.Errorf("Metrics() = (%v, %v), want both positive", ascent, descent)
	}
	if ascent <= descent {
		t.Errorf("ascent %v should exceed descent %v", ascent, descent)
	}
}
