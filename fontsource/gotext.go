package fontsource

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/fontpack"
)

// GoTextSource serves glyphs from a font's embedded bitmap strikes
// (EBDT/CBDT and friends) using go-text/typesetting. Unlike FaceSource it
// never rasterizes outlines: a code whose glyph exists only as an outline
// fails with ErrUnsupportedGlyph. Use NewOpenTypeSource for outline fonts.
type GoTextSource struct {
	// font.Face is not safe for concurrent use.
	mu   sync.Mutex
	face *font.Face
	ppem float64
}

// NewGoTextSource parses TTF/OTF font data.
func NewGoTextSource(data []byte, opts ...Option) (*GoTextSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontsource: failed to parse font: %w", err)
	}
	return &GoTextSource{face: face, ppem: cfg.ppem}, nil
}

// Lookup implements fontpack.GlyphSource.
func (s *GoTextSource) Lookup(code uint16) (fontpack.Glyph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gid, ok := s.face.NominalGlyph(rune(code))
	if !ok {
		return fontpack.Glyph{}, fmt.Errorf("%w: U+%04X", fontpack.ErrGlyphNotFound, code)
	}

	data := s.face.GlyphData(gid)
	bitmap, ok := data.(font.GlyphBitmap)
	if !ok || bitmap.Format != font.BlackAndWhite {
		return fontpack.Glyph{}, fmt.Errorf("%w: U+%04X", ErrUnsupportedGlyph, code)
	}

	// BlackAndWhite strikes are 1 bit per pixel, row-major, MSB first,
	// each row padded to a whole byte.
	bm := fontpack.NewBitmap(bitmap.Width, bitmap.Height)
	stride := (bitmap.Width + 7) / 8
	for y := 0; y < bitmap.Height; y++ {
		row := bitmap.Data[y*stride:]
		for x := 0; x < bitmap.Width; x++ {
			if row[x>>3]&(0x80>>(x&7)) != 0 {
				bm.Set(x, y, true)
			}
		}
	}

	// Advance metrics are in font units; scale to the configured pixel
	// size. For pure bitmap fonts this is an approximation.
	advance := float64(s.face.HorizontalAdvance(gid)) * s.ppem / float64(s.face.Upem())
	return fontpack.Glyph{Bitmap: bm, Advance: int(math.Round(advance))}, nil
}

// Codes implements CodeLister, returning the sorted BMP code units the
// font's character map covers.
func (s *GoTextSource) Codes() []uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cmapCodes(s.face)
}

// OpenTypeCoverage parses TTF/OTF font data and returns the sorted BMP
// code units its character map covers. golang.org/x/image/font/sfnt can
// look codes up but not enumerate them; typesetting's cmap can.
func OpenTypeCoverage(data []byte) ([]uint16, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontsource: failed to parse font: %w", err)
	}
	return cmapCodes(face), nil
}

func cmapCodes(face *font.Face) []uint16 {
	set := make(map[uint16]struct{})
	iter := face.Cmap.Iter()
	for iter.Next() {
		r, _ := iter.Char()
		if r >= 0 && r <= 0xFFFF {
			set[uint16(r)] = struct{}{}
		}
	}
	return sortedKeys(set)
}
