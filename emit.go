package fontpack

import "bytes"

// EmitRecord is the language-agnostic projection of one glyph record,
// handed to a code-generation collaborator (see the cgen package) for
// textual rendering. It carries no behavior.
type EmitRecord struct {
	Code       uint16
	Width      uint16
	Height     uint16
	ByteLength uint32
	Data       []byte
	Advance    int
}

// Summary describes a whole emitted table.
type Summary struct {
	// Glyphs is the number of records in the table.
	Glyphs int

	// TotalBytes is the summed packed data size across all records.
	TotalBytes int
}

// Emit projects the table into emission records plus a table-level summary.
// Records come out in code order, matching the table. Each record carries
// its own copy of the packed data, so the caller owns the result outright
// and the table stays immutable behind it.
func (t *Table) Emit() ([]EmitRecord, Summary) {
	recs := make([]EmitRecord, len(t.records))
	total := 0
	for i, r := range t.records {
		recs[i] = EmitRecord{
			Code:       r.Code,
			Width:      r.Width,
			Height:     r.Height,
			ByteLength: r.ByteLength,
			Data:       bytes.Clone(r.Data),
			Advance:    r.Advance,
		}
		total += len(r.Data)
	}
	return recs, Summary{Glyphs: len(recs), TotalBytes: total}
}
