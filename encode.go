package fontpack

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Binary table layout, all integers big-endian:
//
//	magic      [4]byte "FPK1"
//	unitBytes  uint8
//	order      uint8   (0 row-major, 1 column-major)
//	bitOrder   uint8   (0 msb-first, 1 lsb-first)
//	unbroken   uint8   (0 or 1)
//	count      uint32
//	records, in strictly increasing code order:
//	    code       uint16
//	    width      uint16
//	    height     uint16
//	    byteLength uint32
//	    data       [byteLength]byte
//
// The layout is deterministic: identical input produces identical bytes.

var tableMagic = [4]byte{'F', 'P', 'K', '1'}

// ErrInvalidTable is returned by ReadTable for data that is not a valid
// encoded glyph table.
var ErrInvalidTable = errors.New("fontpack: invalid table encoding")

// WriteTo encodes the table in its binary layout.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	n := int64(0)

	write := func(v any) error {
		if err := binary.Write(bw, binary.BigEndian, v); err != nil {
			return err
		}
		n += int64(binary.Size(v))
		return nil
	}

	hdr := []any{
		tableMagic,
		uint8(t.pack.UnitBytes),
		uint8(t.pack.Order),
		uint8(t.pack.BitOrder),
		boolByte(t.pack.Unbroken),
		uint32(len(t.records)),
	}
	for _, v := range hdr {
		if err := write(v); err != nil {
			return n, err
		}
	}

	for i := range t.records {
		r := &t.records[i]
		for _, v := range []any{r.Code, r.Width, r.Height, r.ByteLength} {
			if err := write(v); err != nil {
				return n, err
			}
		}
		nn, err := bw.Write(r.Data)
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	if err := bw.Flush(); err != nil {
		return n, err
	}
	return n, nil
}

// ReadTable decodes a binary glyph table and re-validates its invariants:
// magic and pack parameters, strictly increasing codes, and per-record
// data length consistency. The transform configuration is not part of the
// wire format (it is already applied to the pixel data), so the returned
// table reports a zero TransformConfig.
func ReadTable(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if magic != tableMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidTable, magic[:])
	}

	var hdr struct {
		UnitBytes uint8
		Order     uint8
		BitOrder  uint8
		Unbroken  uint8
		Count     uint32
	}
	if err := binary.Read(br, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	pack := PackConfig{
		UnitBytes: int(hdr.UnitBytes),
		Order:     TraversalOrder(hdr.Order),
		BitOrder:  BitOrder(hdr.BitOrder),
		Unbroken:  hdr.Unbroken != 0,
	}
	if err := pack.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	// The count is untrusted input; cap the allocation hint so a corrupt
	// header cannot request an enormous backing array before the first
	// record is read. Growth beyond the cap is handled by append.
	records := make([]Record, 0, min(int(hdr.Count), 1024))
	for i := uint32(0); i < hdr.Count; i++ {
		var rh struct {
			Code       uint16
			Width      uint16
			Height     uint16
			ByteLength uint32
		}
		if err := binary.Read(br, binary.BigEndian, &rh); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidTable, i, err)
		}
		if want := PackedLen(int(rh.Width), int(rh.Height), pack); int(rh.ByteLength) != want {
			return nil, fmt.Errorf("%w: record %d: %d data bytes for %dx%d, want %d",
				ErrInvalidTable, i, rh.ByteLength, rh.Width, rh.Height, want)
		}
		if len(records) > 0 && rh.Code <= records[len(records)-1].Code {
			return nil, fmt.Errorf("%w: record %d: code U+%04X out of order", ErrInvalidTable, i, rh.Code)
		}
		data := make([]byte, rh.ByteLength)
		if _, err := io.ReadFull(br, data); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidTable, i, err)
		}
		records = append(records, Record{
			Code:       rh.Code,
			Width:      rh.Width,
			Height:     rh.Height,
			ByteLength: rh.ByteLength,
			Data:       data,
		})
	}
	return &Table{records: records, pack: pack}, nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
