package fonts

import "errors"

// Sentinel errors for the fonts package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fonts: empty font data")

	// ErrUnknownFamily is returned when a family cannot be resolved and
	// no fallback face is available.
	ErrUnknownFamily = errors.New("fonts: unknown font family")
)
