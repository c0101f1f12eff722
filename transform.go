package fontpack

import "fmt"

// Anchor selects the reference corner (or center) kept fixed when a bitmap
// is padded or trimmed to a target size. Padding grows the side(s) opposite
// the anchor; trimming drops pixels outside the anchored window.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorCenter
)

// String returns a human-readable anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "top-left"
	case AnchorTopRight:
		return "top-right"
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorBottomRight:
		return "bottom-right"
	case AnchorCenter:
		return "center"
	default:
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
}

// TransformConfig describes the geometry normalization applied to every
// glyph bitmap before packing. The steps run in a fixed order:
// rotation, then mirroring, then pad/trim to the target size.
//
// The zero value is the identity transform.
type TransformConfig struct {
	// Rotation is a clockwise rotation in degrees. Must be 0, 90, 180 or 270.
	Rotation int

	// MirrorH reverses column order (flip around the vertical axis).
	MirrorH bool

	// MirrorV reverses row order (flip around the horizontal axis).
	MirrorV bool

	// TargetWidth and TargetHeight, when positive, pad or trim the bitmap
	// to an exact size after rotation and mirroring. Zero leaves the
	// dimension unchanged. Rotation is lossless; trimming is not, and is
	// only performed when a target smaller than the glyph is configured.
	TargetWidth  int
	TargetHeight int

	// PadFill is the pixel value used for padded area (default unlit).
	PadFill bool

	// Anchor positions the source bitmap inside the target window.
	Anchor Anchor
}

// Validate checks the configuration. It is called once per build, before
// any glyph is processed.
func (c TransformConfig) Validate() error {
	switch c.Rotation {
	case 0, 90, 180, 270:
	default:
		return &ConfigError{Param: "Rotation", Reason: fmt.Sprintf("%d is not a multiple of 90 in [0,270]", c.Rotation)}
	}
	if c.TargetWidth < 0 {
		return &ConfigError{Param: "TargetWidth", Reason: fmt.Sprintf("%d is negative", c.TargetWidth)}
	}
	if c.TargetHeight < 0 {
		return &ConfigError{Param: "TargetHeight", Reason: fmt.Sprintf("%d is negative", c.TargetHeight)}
	}
	if c.Anchor > AnchorCenter {
		return &ConfigError{Param: "Anchor", Reason: "unknown anchor"}
	}
	return nil
}

// Transform applies cfg to m and returns the resulting bitmap. m is not
// modified. Transform assumes cfg has passed Validate; it is deterministic
// and has no failure modes for validated configuration.
func Transform(m *Bitmap, cfg TransformConfig) *Bitmap {
	out := m
	switch cfg.Rotation {
	case 90:
		out = rotate90(out)
	case 180:
		out = rotate90(rotate90(out))
	case 270:
		out = rotate90(rotate90(rotate90(out)))
	}
	if cfg.MirrorH {
		out = mirrorH(out)
	}
	if cfg.MirrorV {
		out = mirrorV(out)
	}
	tw, th := cfg.TargetWidth, cfg.TargetHeight
	if tw == 0 {
		tw = out.Width()
	}
	if th == 0 {
		th = out.Height()
	}
	if tw != out.Width() || th != out.Height() {
		out = resize(out, tw, th, cfg.Anchor, cfg.PadFill)
	} else if out == m {
		// Identity transform still hands ownership of a fresh bitmap
		// to the caller.
		out = m.Clone()
	}
	return out
}

// rotate90 rotates a quarter turn clockwise: transpose, then reverse
// column order. Exact for any rectangle; width and height swap.
func rotate90(m *Bitmap) *Bitmap {
	w, h := m.Width(), m.Height()
	out := NewBitmap(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(h-1-y, x, m.Get(x, y))
		}
	}
	return out
}

func mirrorH(m *Bitmap) *Bitmap {
	w, h := m.Width(), m.Height()
	out := NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(w-1-x, y, m.Get(x, y))
		}
	}
	return out
}

func mirrorV(m *Bitmap) *Bitmap {
	w, h := m.Width(), m.Height()
	out := NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, h-1-y, m.Get(x, y))
		}
	}
	return out
}

// resize pads or trims m to tw x th. The anchor pins the source bitmap
// inside the target window; area not covered by the source is filled with
// fill, source pixels outside the window are dropped.
func resize(m *Bitmap, tw, th int, anchor Anchor, fill bool) *Bitmap {
	ox, oy := 0, 0
	switch anchor {
	case AnchorTopRight:
		ox = tw - m.Width()
	case AnchorBottomLeft:
		oy = th - m.Height()
	case AnchorBottomRight:
		ox = tw - m.Width()
		oy = th - m.Height()
	case AnchorCenter:
		ox = (tw - m.Width()) / 2
		oy = (th - m.Height()) / 2
	}
	out := NewBitmap(tw, th)
	for y := 0; y < th; y++ {
		for x := 0; x < tw; x++ {
			sx, sy := x-ox, y-oy
			if sx >= 0 && sx < m.Width() && sy >= 0 && sy < m.Height() {
				out.Set(x, y, m.Get(sx, sy))
			} else {
				out.Set(x, y, fill)
			}
		}
	}
	return out
}
