package fontpack

import "strings"

// Bitmap is a monochrome pixel matrix with the origin at the top-left.
// Pixels are stored row-major; true means lit.
//
// A Bitmap is built once and then handed down the pipeline. Stages never
// mutate a Bitmap they received; transforms allocate a new one.
type Bitmap struct {
	width  int
	height int
	pix    []bool // row-major, len == width*height
}

// NewBitmap creates a cleared bitmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}
}

// BitmapFromRows creates a bitmap from row strings, one character per pixel.
// Any of '#', 'X', 'x' or '1' marks a lit pixel; everything else is unlit.
// Rows shorter than the longest row are padded with unlit pixels.
//
// Intended for tests and fixtures:
//
//	bm := fontpack.BitmapFromRows(
//	    "X...X",
//	    ".X.X.",
//	    "..X..",
//	)
func BitmapFromRows(rows ...string) *Bitmap {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	bm := NewBitmap(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			switch r[x] {
			case '#', 'X', 'x', '1':
				bm.pix[y*w+x] = true
			}
		}
	}
	return bm
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Get reports whether the pixel at (x, y) is lit.
// Coordinates outside the bitmap read as unlit.
func (b *Bitmap) Get(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.pix[y*b.width+x]
}

// Set sets the pixel at (x, y). Out-of-range coordinates are ignored.
// Set is used while a stage constructs its output bitmap; a bitmap that has
// been passed on is not written to again.
func (b *Bitmap) Set(x, y int, lit bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = lit
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{
		width:  b.width,
		height: b.height,
		pix:    make([]bool, len(b.pix)),
	}
	copy(c.pix, b.pix)
	return c
}

// Equal reports whether two bitmaps have the same dimensions and pixels.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// String renders the bitmap with 'X' for lit and '.' for unlit pixels,
// one row per line. Useful in test failure output.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.pix[y*b.width+x] {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
