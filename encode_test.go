package fontpack

import (
	"bytes"
	"errors"
	"testing"
)

func buildTestTable(t *testing.T, opts ...BuildOption) *Table {
	t.Helper()
	table, err := Build([]uint16{0x41, 0x42, 0x43}, mapSource(testGlyphs()), opts...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return table
}

func TestTableEncodeRoundTrip(t *testing.T) {
	table := buildTestTable(t, WithPack(PackConfig{
		UnitBytes: 2,
		Order:     OrderColumnMajor,
		BitOrder:  LSBFirst,
	}))

	var buf bytes.Buffer
	n, err := table.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, buf.Len())
	}

	got, err := ReadTable(&buf)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if got.Len() != table.Len() {
		t.Fatalf("decoded Len() = %d, want %d", got.Len(), table.Len())
	}
	if got.PackConfig() != table.PackConfig() {
		t.Errorf("decoded pack config = %+v, want %+v", got.PackConfig(), table.PackConfig())
	}
	for i, want := range table.Records() {
		r := got.Records()[i]
		if r.Code != want.Code || r.Width != want.Width || r.Height != want.Height ||
			r.ByteLength != want.ByteLength || !bytes.Equal(r.Data, want.Data) {
			t.Errorf("record %d differs: %+v, want %+v", i, r, want)
		}
	}
}

func TestTableEncodeDeterministic(t *testing.T) {
	table := buildTestTable(t)

	var a, b bytes.Buffer
	if _, err := table.WriteTo(&a); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if _, err := table.WriteTo(&b); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two encodings of the same table differ")
	}
}

func TestReadTableRejectsGarbage(t *testing.T) {
	table := buildTestTable(t)
	var enc bytes.Buffer
	if _, err := table.WriteTo(&enc); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	valid := enc.Bytes()

	badMagic := bytes.Clone(valid)
	copy(badMagic, "NOPE")

	truncated := bytes.Clone(valid)[:len(valid)-3]

	badUnit := bytes.Clone(valid)
	badUnit[4] = 9 // unit width outside [1,4]

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad magic", badMagic},
		{"truncated", truncated},
		{"bad unit width", badUnit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTable(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrInvalidTable) {
				t.Errorf("error = %v, want ErrInvalidTable", err)
			}
		})
	}
}

func TestReadTableRejectsAbsurdCount(t *testing.T) {
	// A 12-byte header claiming 0xFFFFFFFF records must fail cleanly on the
	// missing first record, not commit memory for four billion record slots
	// up front.
	hdr := []byte{
		'F', 'P', 'K', '1',
		1, 0, 0, 0, // unitBytes, order, bitOrder, unbroken
		0xFF, 0xFF, 0xFF, 0xFF, // count
	}
	_, err := ReadTable(bytes.NewReader(hdr))
	if !errors.Is(err, ErrInvalidTable) {
		t.Errorf("error = %v, want ErrInvalidTable", err)
	}
}

func TestReadTableRejectsOutOfOrderCodes(t *testing.T) {
	table := buildTestTable(t)
	var enc bytes.Buffer
	if _, err := table.WriteTo(&enc); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	data := enc.Bytes()

	// The first record's code sits right after the 12-byte header. Raising
	// it past the second record's code breaks the ordering invariant.
	data[12], data[13] = 0x00, 0x43
	if _, err := ReadTable(bytes.NewReader(data)); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("error = %v, want ErrInvalidTable", err)
	}
}
