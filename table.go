package fontpack

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/fontpack/internal/parallel"
)

// Record is one packed glyph in a table.
type Record struct {
	// Code is the UTF-16 code unit this glyph maps to.
	Code uint16

	// Width and Height are the bitmap dimensions after the transform.
	Width  uint16
	Height uint16

	// ByteLength is the packed data length; always equal to len(Data) and
	// fully determined by Width, Height and the pack configuration.
	ByteLength uint32

	// Data is the packed pixel data.
	Data []byte

	// Advance is the font's declared advance width in pixels, carried
	// through unchanged from the glyph source.
	Advance int
}

// Table is an immutable sequence of glyph records, strictly increasing by
// code with no duplicates. A Table is built once per run and then only read.
type Table struct {
	records   []Record
	transform TransformConfig
	pack      PackConfig
}

// Build assembles a glyph table for the requested codes.
//
// Input codes may be unordered and may contain duplicates; Build sorts and
// collapses them, so the resulting table is strictly increasing by code.
// Configuration is validated before the first glyph is fetched. Build never
// returns a partially assembled table: it either succeeds as a whole or
// fails with an error identifying the offending code.
func Build(codes []uint16, src GlyphSource, opts ...BuildOption) (*Table, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.transform.Validate(); err != nil {
		return nil, err
	}
	if err := o.pack.Validate(); err != nil {
		return nil, err
	}

	cs := slices.Clone(codes)
	slices.Sort(cs)
	cs = slices.Compact(cs)

	// One result slot per sorted code keeps the output ordered regardless
	// of processing order, so the parallel path needs no final sort.
	results := make([]*Record, len(cs))
	errs := make([]error, len(cs))
	job := func(i int) {
		results[i], errs[i] = buildOne(cs[i], src, &o)
	}

	if o.workers > 1 && len(cs) > 1 {
		pool := parallel.NewWorkerPool(o.workers)
		defer pool.Close()
		work := make([]func(), len(cs))
		for i := range cs {
			i := i
			work[i] = func() { job(i) }
		}
		pool.ExecuteAll(work)
	} else {
		for i := range cs {
			job(i)
		}
	}

	// Report the failure with the lowest code, deterministically.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	records := make([]Record, 0, len(cs))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}

	// Input sorting and deduplication already guarantee this; a violation
	// means a bug in the builder itself.
	for i := 1; i < len(records); i++ {
		if records[i].Code <= records[i-1].Code {
			return nil, &BuildError{
				Code: records[i].Code,
				Err:  errors.New("fontpack: table codes not strictly increasing"),
			}
		}
	}

	t := &Table{records: records, transform: o.transform, pack: o.pack}
	Logger().Info("fontpack: table built",
		"requested", len(cs),
		"glyphs", len(records),
		"bytes", t.TotalBytes())
	return t, nil
}

// buildOne runs one code through the fetch, transform and pack stages.
// A nil record with nil error means the code was skipped.
func buildOne(code uint16, src GlyphSource, o *buildOptions) (*Record, error) {
	g, err := src.Lookup(code)
	if err != nil {
		if !errors.Is(err, ErrGlyphNotFound) {
			return nil, &BuildError{Code: code, Err: err}
		}
		switch {
		case o.placeholder != nil:
			g = Glyph{Bitmap: o.placeholder}
		case o.missing == AbortOnMissing:
			return nil, &BuildError{Code: code, Err: err}
		default:
			Logger().Warn("fontpack: glyph missing, skipped", "code", fmt.Sprintf("U+%04X", code))
			return nil, nil
		}
	}

	if g.Bitmap == nil {
		g.Bitmap = NewBitmap(0, 0)
	}
	bm := Transform(g.Bitmap, o.transform)
	data := Pack(bm, o.pack)
	if want := PackedLen(bm.Width(), bm.Height(), o.pack); len(data) != want {
		return nil, &BuildError{
			Code: code,
			Err:  fmt.Errorf("fontpack: packed %d bytes, want %d", len(data), want),
		}
	}
	Logger().Debug("fontpack: glyph packed",
		"code", fmt.Sprintf("U+%04X", code),
		"width", bm.Width(),
		"height", bm.Height(),
		"bytes", len(data))

	return &Record{
		Code:       code,
		Width:      uint16(bm.Width()),
		Height:     uint16(bm.Height()),
		ByteLength: uint32(len(data)),
		Data:       data,
		Advance:    g.Advance,
	}, nil
}

// Len returns the number of glyph records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the glyph records in code order. The returned slice is
// the table's backing store and must not be modified.
func (t *Table) Records() []Record {
	return t.records
}

// Lookup returns the record for code, if present.
func (t *Table) Lookup(code uint16) (Record, bool) {
	i, ok := slices.BinarySearchFunc(t.records, code, func(r Record, c uint16) int {
		switch {
		case r.Code < c:
			return -1
		case r.Code > c:
			return 1
		default:
			return 0
		}
	})
	if !ok {
		return Record{}, false
	}
	return t.records[i], true
}

// TotalBytes returns the summed packed data size of all records.
func (t *Table) TotalBytes() int {
	n := 0
	for i := range t.records {
		n += len(t.records[i].Data)
	}
	return n
}

// TransformConfig returns the transform configuration the table was built with.
func (t *Table) TransformConfig() TransformConfig {
	return t.transform
}

// PackConfig returns the pack configuration the table was built with.
func (t *Table) PackConfig() PackConfig {
	return t.pack
}
