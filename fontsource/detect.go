package fontsource

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"github.com/gogpu/fontpack"
)

// CodeLister is implemented by sources that can enumerate the code units
// their font covers. Useful for building a table of everything a font has:
//
//	src, _ := fontsource.OpenFile("6x9.bdf")
//	codes := src.(fontsource.CodeLister).Codes()
type CodeLister interface {
	Codes() []uint16
}

// Format describes a font file format the package can open. Detect
// inspects raw file data; Open constructs a source from it.
type Format struct {
	Name   string
	Detect func(data []byte) bool
	Open   func(data []byte, opts ...Option) (fontpack.GlyphSource, error)
}

// formats holds registered formats in detection order.
var formats = []Format{
	{
		Name:   "bdf",
		Detect: func(data []byte) bool { return bytes.HasPrefix(data, []byte("STARTFONT")) },
		Open: func(data []byte, opts ...Option) (fontpack.GlyphSource, error) {
			return NewBDFSource(data)
		},
	},
	{
		Name:   "opentype",
		Detect: isOpenType,
		Open: func(data []byte, opts ...Option) (fontpack.GlyphSource, error) {
			return NewOpenTypeSource(data, opts...)
		},
	},
}

// RegisterFormat adds a custom font format. Formats are probed in
// registration order, built-ins first.
func RegisterFormat(f Format) {
	formats = append(formats, f)
}

// New detects the format of the font data and opens a glyph source for it.
func New(data []byte, opts ...Option) (fontpack.GlyphSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	for _, f := range formats {
		if f.Detect(data) {
			fontpack.Logger().Debug("fontsource: font format detected",
				"format", f.Name,
				"bytes", len(data))
			return f.Open(data, opts...)
		}
	}
	return nil, ErrUnknownFormat
}

// OpenFile reads a font file and opens a glyph source for it, detecting
// the format from the file contents.
func OpenFile(path string, opts ...Option) (fontpack.GlyphSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontsource: failed to read font file: %w", err)
	}
	return New(data, opts...)
}

// isOpenType recognizes the sfnt container magics: TrueType, CFF ('OTTO'),
// Apple 'true', and collections ('ttcf').
func isOpenType(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00", "OTTO", "true", "ttcf":
		return true
	}
	return false
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[uint16]V) []uint16 {
	codes := make([]uint16, 0, len(m))
	for c := range m {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}
