package fontsource

import (
	"fmt"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontpack"
)

// FaceSource serves glyphs by rasterizing a golang.org/x/image/font.Face
// and thresholding the anti-aliased coverage to monochrome. It works with
// any face implementation: opentype, plan9font, basicfont, or the faces
// produced by BDF parsers.
//
// font.Face is not safe for concurrent use; FaceSource serializes access
// with a mutex and caches rasterized glyphs, so it is safe to share
// between goroutines (and with parallel table builds).
type FaceSource struct {
	mu        sync.Mutex
	face      font.Face
	threshold uint8
	cache     *cache[uint16, fontpack.Glyph]
}

// NewFaceSource wraps an existing font face.
func NewFaceSource(face font.Face, opts ...Option) *FaceSource {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FaceSource{
		face:      face,
		threshold: cfg.threshold,
		cache:     newCache[uint16, fontpack.Glyph](cfg.cacheLimit),
	}
}

// NewOpenTypeSource parses TTF/OTF font data and rasterizes glyphs at the
// configured pixel size (WithPPEM, default 16).
func NewOpenTypeSource(data []byte, opts ...Option) (*FaceSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontsource: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    cfg.ppem,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontsource: failed to create face: %w", err)
	}
	return NewFaceSource(face, opts...), nil
}

// Lookup implements fontpack.GlyphSource.
func (s *FaceSource) Lookup(code uint16) (fontpack.Glyph, error) {
	if g, ok := s.cache.get(code); ok {
		return g, nil
	}

	s.mu.Lock()
	dr, mask, maskp, advance, ok := s.face.Glyph(fixed.Point26_6{}, rune(code))
	if !ok {
		s.mu.Unlock()
		return fontpack.Glyph{}, fmt.Errorf("%w: U+%04X", fontpack.ErrGlyphNotFound, code)
	}

	// The glyph occupies dr in destination space; the mask pixels start at
	// maskp. Sample the mask while the face lock is held since the mask
	// buffer may be reused by the next Glyph call.
	w, h := dr.Dx(), dr.Dy()
	bm := fontpack.NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := mask.At(maskp.X+x, maskp.Y+y)
			a := color.AlphaModel.Convert(c).(color.Alpha).A
			if a >= s.threshold {
				bm.Set(x, y, true)
			}
		}
	}
	s.mu.Unlock()

	g := fontpack.Glyph{Bitmap: bm, Advance: advance.Round()}
	s.cache.set(code, g)
	return g, nil
}

// Close releases the underlying face if it holds resources.
func (s *FaceSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.face.Close()
}
