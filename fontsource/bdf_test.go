package fontsource

import (
	"errors"
	"testing"

	"github.com/gogpu/fontpack"
)

// testBDF is a minimal two-glyph BDF font: 'A' (5x7) and space (1x1).
const testBDF = `STARTFONT 2.1
FONT -test-fontpack-medium-r-normal--7-70-75-75-c-50-iso10646-1
SIZE 7 75 75
FONTBOUNDINGBOX 5 7 0 -1
STARTPROPERTIES 2
FONT_ASCENT 6
FONT_DESCENT 1
ENDPROPERTIES
CHARS 2
STARTCHAR space
ENCODING 32
SWIDTH 500 0
DWIDTH 4 0
BBX 1 1 0 0
BITMAP
00
ENDCHAR
STARTCHAR A
ENCODING 65
SWIDTH 500 0
DWIDTH 6 0
BBX 5 7 0 -1
BITMAP
20
50
88
88
F8
88
88
ENDCHAR
ENDFONT
`

func TestBDFSourceLookup(t *testing.T) {
	src, err := NewBDFSource([]byte(testBDF))
	if err != nil {
		t.Fatalf("NewBDFSource: %v", err)
	}

	g, err := src.Lookup('A')
	if err != nil {
		t.Fatalf("Lookup('A'): %v", err)
	}
	if g.Bitmap.Width() != 5 || g.Bitmap.Height() != 7 {
		t.Fatalf("bitmap = %dx%d, want 5x7", g.Bitmap.Width(), g.Bitmap.Height())
	}
	if g.Advance != 6 {
		t.Errorf("Advance = %d, want 6", g.Advance)
	}

	// Row 0 is 0x20: only the center pixel of the 5-wide row is lit.
	want := fontpack.BitmapFromRows(
		"..X..",
		".X.X.",
		"X...X",
		"X...X",
		"XXXXX",
		"X...X",
		"X...X",
	)
	if !g.Bitmap.Equal(want) {
		t.Errorf("bitmap:\n%v\nwant:\n%v", g.Bitmap, want)
	}
}

func TestBDFSourceMissingGlyph(t *testing.T) {
	src, err := NewBDFSource([]byte(testBDF))
	if err != nil {
		t.Fatalf("NewBDFSource: %v", err)
	}
	_, err = src.Lookup(0x7F)
	if !errors.Is(err, fontpack.ErrGlyphNotFound) {
		t.Errorf("error = %v, want ErrGlyphNotFound", err)
	}
}

func TestBDFSourceCodes(t *testing.T) {
	src, err := NewBDFSource([]byte(testBDF))
	if err != nil {
		t.Fatalf("NewBDFSource: %v", err)
	}
	codes := src.Codes()
	if len(codes) != 2 || codes[0] != 32 || codes[1] != 65 {
		t.Errorf("Codes() = %v, want [32 65]", codes)
	}
}

func TestBDFSourceEmptyData(t *testing.T) {
	if _, err := NewBDFSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("error = %v, want ErrEmptyFontData", err)
	}
}

// The BDF source feeds the whole pipeline end to end.
func TestBDFSourceBuildTable(t *testing.T) {
	src, err := NewBDFSource([]byte(testBDF))
	if err != nil {
		t.Fatalf("NewBDFSource: %v", err)
	}
	table, err := fontpack.Build(fontpack.CodeRange(0x20, 0x7E), src)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Only space and 'A' exist; everything else is skipped.
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	r, ok := table.Lookup('A')
	if !ok {
		t.Fatal("Lookup('A') not found")
	}
	if r.ByteLength != 7 {
		t.Errorf("ByteLength = %d, want 7", r.ByteLength)
	}
}
