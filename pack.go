package fontpack

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// TraversalOrder is the order in which pixels are visited when packing.
type TraversalOrder uint8

const (
	// OrderRowMajor visits rows top to bottom, columns left to right within
	// a row. Matches horizontally addressed display memory.
	OrderRowMajor TraversalOrder = iota

	// OrderColumnMajor visits columns left to right, rows top to bottom
	// within a column. Matches vertically paged controllers such as the
	// SSD1306 in page mode.
	OrderColumnMajor
)

// String returns a human-readable traversal order name.
func (o TraversalOrder) String() string {
	switch o {
	case OrderRowMajor:
		return "row-major"
	case OrderColumnMajor:
		return "column-major"
	default:
		return fmt.Sprintf("TraversalOrder(%d)", uint8(o))
	}
}

// BitOrder selects which bit of a storage unit receives the first pixel.
type BitOrder uint8

const (
	// MSBFirst packs the first pixel into the highest bit of the unit's
	// first byte.
	MSBFirst BitOrder = iota

	// LSBFirst packs the first pixel into the lowest bit of the unit's
	// first byte.
	LSBFirst
)

// String returns a human-readable bit order name.
func (o BitOrder) String() string {
	switch o {
	case MSBFirst:
		return "msb-first"
	case LSBFirst:
		return "lsb-first"
	default:
		return fmt.Sprintf("BitOrder(%d)", uint8(o))
	}
}

// PackConfig describes how a bitmap is serialized into storage units.
//
// A storage unit is UnitBytes consecutive output bytes holding UnitBytes*8
// pixels. Units of more than one byte always emit their most significant
// byte first; BitOrder only selects the bit position of the first pixel
// within each byte. These two choices are independent and both matter for
// matching a display controller's memory model.
type PackConfig struct {
	// UnitBytes is the storage unit width in bytes, 1 through 4.
	UnitBytes int

	// Order is the pixel traversal order.
	Order TraversalOrder

	// BitOrder is the bit order within a unit.
	BitOrder BitOrder

	// Unbroken packs pixels continuously across row (or column) boundaries.
	// When false, every row (column-major: every column) starts a fresh
	// unit and a partial final unit is padded with zero bits at the end.
	// Row-aligned packing is the default and matches typical page layouts;
	// unbroken packing trades addressability for density.
	Unbroken bool
}

// DefaultPackConfig returns single-byte, row-major, MSB-first, row-aligned
// packing.
func DefaultPackConfig() PackConfig {
	return PackConfig{UnitBytes: 1, Order: OrderRowMajor, BitOrder: MSBFirst}
}

// Validate checks the configuration.
func (c PackConfig) Validate() error {
	if c.UnitBytes < 1 || c.UnitBytes > 4 {
		return &ConfigError{Param: "UnitBytes", Reason: fmt.Sprintf("%d is outside [1,4]", c.UnitBytes)}
	}
	if c.Order > OrderColumnMajor {
		return &ConfigError{Param: "Order", Reason: "unknown traversal order"}
	}
	if c.BitOrder > LSBFirst {
		return &ConfigError{Param: "BitOrder", Reason: "unknown bit order"}
	}
	return nil
}

// PackedLen returns the number of bytes Pack produces for a bitmap of the
// given dimensions. The length depends only on the dimensions and the
// configuration, never on pixel content.
func PackedLen(width, height int, cfg PackConfig) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	unitBits := cfg.UnitBytes * 8
	lines, lineLen := height, width
	if cfg.Order == OrderColumnMajor {
		lines, lineLen = width, height
	}
	if cfg.Unbroken {
		units := (lines*lineLen + unitBits - 1) / unitBits
		return units * cfg.UnitBytes
	}
	unitsPerLine := (lineLen + unitBits - 1) / unitBits
	return lines * unitsPerLine * cfg.UnitBytes
}

// Pack serializes m into storage units per cfg. Pack assumes cfg has passed
// Validate. The result length always equals PackedLen(m.Width(), m.Height(), cfg).
func Pack(m *Bitmap, cfg PackConfig) []byte {
	n := PackedLen(m.Width(), m.Height(), cfg)
	if n == 0 {
		return nil
	}
	buf := bytes.NewBuffer(make([]byte, 0, n))
	w := bitio.NewWriter(buf)

	lines, lineLen := m.Height(), m.Width()
	pixel := func(line, i int) bool { return m.Get(i, line) }
	if cfg.Order == OrderColumnMajor {
		lines, lineLen = m.Width(), m.Height()
		pixel = func(line, i int) bool { return m.Get(line, i) }
	}

	unitBits := cfg.UnitBytes * 8
	var unit uint64
	filled := 0

	// flush emits the current unit, zero bits padding any unfilled tail.
	flush := func() {
		if filled == 0 {
			return
		}
		w.TryWriteBits(unit, uint8(unitBits))
		unit, filled = 0, 0
	}

	for line := 0; line < lines; line++ {
		for i := 0; i < lineLen; i++ {
			if pixel(line, i) {
				unit |= 1 << bitShift(filled, cfg)
			}
			filled++
			if filled == unitBits {
				flush()
			}
		}
		if !cfg.Unbroken {
			flush()
		}
	}
	flush()
	_ = w.Close() // whole units only, already byte aligned; buffer writes cannot fail
	return buf.Bytes()
}

// bitShift maps the k-th pixel of a unit to its bit position within the
// unit, viewed as a big-endian UnitBytes-wide integer (the byte emission
// order). MSB-first counts down from the top bit; LSB-first fills each byte
// from its low bit, first byte first.
func bitShift(k int, cfg PackConfig) int {
	if cfg.BitOrder == MSBFirst {
		return cfg.UnitBytes*8 - 1 - k
	}
	return (cfg.UnitBytes-1-(k>>3))*8 + (k & 7)
}
