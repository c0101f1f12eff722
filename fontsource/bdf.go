package fontsource

import (
	"fmt"
	"image"

	"github.com/zachomedia/go-bdf"

	"github.com/gogpu/fontpack"
)

// BDFSource serves glyphs from a BDF bitmap font. BDF glyphs are already
// monochrome bitmaps sized to their own bounding box, so lookups involve
// no rasterization. BDFSource is safe for concurrent use after creation.
type BDFSource struct {
	font  *bdf.Font
	chars map[uint16]*bdf.Character
}

// NewBDFSource parses BDF font data.
func NewBDFSource(data []byte) (*BDFSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := bdf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontsource: failed to parse BDF font: %w", err)
	}

	chars := make(map[uint16]*bdf.Character, len(f.Characters))
	for i := range f.Characters {
		c := &f.Characters[i]
		// BDF encodings outside the BMP cannot be addressed by a UTF-16
		// code unit and are not reachable through this source.
		if c.Encoding < 0 || c.Encoding > 0xFFFF {
			continue
		}
		chars[uint16(c.Encoding)] = c
	}
	return &BDFSource{font: f, chars: chars}, nil
}

// Name returns the font name declared in the BDF file.
func (s *BDFSource) Name() string {
	return s.font.Name
}

// Lookup implements fontpack.GlyphSource.
func (s *BDFSource) Lookup(code uint16) (fontpack.Glyph, error) {
	c, ok := s.chars[code]
	if !ok {
		return fontpack.Glyph{}, fmt.Errorf("%w: U+%04X", fontpack.ErrGlyphNotFound, code)
	}
	return fontpack.Glyph{
		Bitmap:  alphaToBitmap(c.Alpha, 0x80),
		Advance: c.Advance[0],
	}, nil
}

// Codes implements CodeLister, returning the sorted code units the font
// covers.
func (s *BDFSource) Codes() []uint16 {
	return sortedKeys(s.chars)
}

// alphaToBitmap converts an alpha mask to a monochrome bitmap, counting
// pixels at or above threshold as lit.
func alphaToBitmap(a *image.Alpha, threshold uint8) *fontpack.Bitmap {
	if a == nil {
		return fontpack.NewBitmap(0, 0)
	}
	b := a.Bounds()
	bm := fontpack.NewBitmap(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if a.AlphaAt(b.Min.X+x, b.Min.Y+y).A >= threshold {
				bm.Set(x, y, true)
			}
		}
	}
	return bm
}
