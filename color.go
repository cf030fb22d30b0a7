package plotgd

import "fmt"

// Color is a 32-bit packed RGBA color in the host device's channel order:
// red in the least significant byte, then green, blue and alpha.
// Alpha 0 is fully transparent, 255 fully opaque.
type Color uint32

// Common colors in packed form.
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Transparent Color = 0x00FFFFFF
)

// RGBA creates a packed color from individual channel bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// Fracs returns the channels as fractions in [0, 1], the form native
// surface color APIs consume.
func (c Color) Fracs() (r, g, b, a float64) {
	return float64(c.R()) / 255, float64(c.G()) / 255, float64(c.B()) / 255, float64(c.A()) / 255
}

// Opaque reports whether the color is fully opaque.
func (c Color) Opaque() bool { return c.A() == 255 }

// Transparent reports whether the color is fully transparent.
func (c Color) Transparent() bool { return c.A() == 0 }

// Hex formats the color as an uppercase "#RRGGBB" string, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}
