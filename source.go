package fontpack

// Glyph is one character's bitmap as delivered by a glyph source: the
// pixel matrix of the glyph's own bounding box (not padded to a uniform
// cell) plus the font's declared advance width in pixels. The advance is
// side metadata; the transform and packer never consult it.
type Glyph struct {
	Bitmap  *Bitmap
	Advance int
}

// GlyphSource supplies per-character pixel matrices. The font parsing
// itself lives behind this interface, so alternate sources (BDF files,
// OpenType faces, bitmap atlases) plug in without touching the transform
// and packing core. See the fontsource package for ready-made adapters.
//
// Lookup returns an error wrapping ErrGlyphNotFound when the font has no
// mapping for code. Sources are expected to be fast in-memory or
// file-backed lookups; no context or cancellation is threaded through.
type GlyphSource interface {
	Lookup(code uint16) (Glyph, error)
}

// SourceFunc adapts a function to the GlyphSource interface.
type SourceFunc func(code uint16) (Glyph, error)

// Lookup implements GlyphSource.
func (f SourceFunc) Lookup(code uint16) (Glyph, error) {
	return f(code)
}
