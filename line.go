package plotgd

// LineType encodes a dash pattern as a 4-bit-per-segment bitmask, the
// host graphics engine's representation. Nibbles are read from the least
// significant end; each is a segment length in 1/96 inch before width
// scaling. Up to eight segments fit in one value.
type LineType int32

// Dash pattern sentinels and the standard host patterns.
const (
	LineBlank    LineType = -1 // never drawn
	LineSolid    LineType = 0
	LineDashed   LineType = 4 + (4 << 4)
	LineDotted   LineType = 1 + (3 << 4)
	LineDotDash  LineType = 1 + (3 << 4) + (4 << 8) + (3 << 12)
	LineLongDash LineType = 7 + (3 << 4)
	LineTwoDash  LineType = 2 + (2 << 4) + (6 << 8) + (2 << 12)
)

// Dashes decodes the pattern into segment lengths, each nibble multiplied
// by scale. The first segment is always produced; decoding then stops at
// the first zero nibble or after eight segments. Solid and blank patterns
// decode to nil.
func (t LineType) Dashes(scale float64) []float64 {
	if t == LineSolid || t == LineBlank {
		return nil
	}
	lty := int32(t)
	segs := make([]float64, 0, 8)
	segs = append(segs, float64(lty&15)*scale)
	lty >>= 4
	for i := 1; i < 8 && lty&15 != 0; i++ {
		segs = append(segs, float64(lty&15)*scale)
		lty >>= 4
	}
	return segs
}

// CapStyle selects the stroke end-cap shape. Values follow the host
// graphics engine's numbering.
type CapStyle int32

// Cap styles.
const (
	CapRound  CapStyle = 1
	CapButt   CapStyle = 2
	CapSquare CapStyle = 3
)

// JoinStyle selects the stroke corner shape. Values follow the host
// graphics engine's numbering.
type JoinStyle int32

// Join styles.
const (
	JoinRound JoinStyle = 1
	JoinMiter JoinStyle = 2
	JoinBevel JoinStyle = 3
)

// LineInfo describes the stroke of a draw call: color, width in 1/96
// inch, dash pattern, end caps, joins and the miter limit.
type LineInfo struct {
	Col        Color
	Width      float64
	Type       LineType
	Cap        CapStyle
	Join       JoinStyle
	MiterLimit float64
}

// DefaultLine returns the stroke state a fresh page starts with: solid
// opaque black, width 1, round cap and join, miter limit 10.
func DefaultLine() LineInfo {
	return LineInfo{
		Col:        Black,
		Width:      1,
		Type:       LineSolid,
		Cap:        CapRound,
		Join:       JoinRound,
		MiterLimit: 10,
	}
}

// DashScale returns the width factor dash segments are multiplied by.
// Widths below 1 do not shrink the pattern.
func (l LineInfo) DashScale() float64 {
	if l.Width > 1 {
		return l.Width
	}
	return 1
}
