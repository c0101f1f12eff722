package fontsource

import "errors"

// Sentinel errors for the fontsource package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontsource: empty font data")

	// ErrUnknownFormat is returned when no registered format recognizes
	// the font data.
	ErrUnknownFormat = errors.New("fontsource: unknown font format")

	// ErrUnsupportedGlyph is returned when a font contains the requested
	// code but in a representation the source cannot convert to a
	// monochrome bitmap (for example an outline glyph in a bitmap-strike
	// source).
	ErrUnsupportedGlyph = errors.New("fontsource: unsupported glyph representation")
)
