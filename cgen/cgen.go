// Package cgen renders an emitted glyph table as C source suitable for
// inclusion in firmware. It is the textual counterpart of the fontpack
// emission model: fontpack decides what each record contains, cgen only
// formats it.
package cgen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/fontpack"
)

// Option configures rendering.
type Option func(*options)

type options struct {
	structName string
	arrayName  string
}

func defaultOptions() options {
	return options{
		structName: "fontGlyphEntry_t",
		arrayName:  "fontArray",
	}
}

// WithStructName sets the generated struct typedef name.
func WithStructName(name string) Option {
	return func(o *options) {
		o.structName = name
	}
}

// WithArrayName sets the generated array variable name.
func WithArrayName(name string) Option {
	return func(o *options) {
		o.arrayName = name
	}
}

// Render writes the table as a complete C compilation unit: the struct
// typedef, then one array entry per glyph with a comment identifying the
// character, then a summary line.
func Render(w io.Writer, t *fontpack.Table, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	records, summary := t.Emit()
	unitBytes := t.PackConfig().UnitBytes

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#include <stdint.h>\n\n")
	fmt.Fprintf(bw, "typedef struct {\n")
	fmt.Fprintf(bw, "\tchar16_t code;\n")
	fmt.Fprintf(bw, "\tuint16_t width;\n")
	fmt.Fprintf(bw, "\tuint16_t height;\n")
	fmt.Fprintf(bw, "\tuint32_t length;\n")
	fmt.Fprintf(bw, "\t%s data[];\n", EntryType(unitBytes))
	fmt.Fprintf(bw, "} %s;\n\n", o.structName)

	fmt.Fprintf(bw, "// %d glyphs, %d data bytes\n", summary.Glyphs, summary.TotalBytes)
	fmt.Fprintf(bw, "const static %s %s[] = {\n", o.structName, o.arrayName)
	for _, r := range records {
		fmt.Fprintf(bw, "\t%s, // %s\n", Entry(r, unitBytes), Label(r.Code))
	}
	fmt.Fprintf(bw, "};\n")
	return bw.Flush()
}

// Entry formats one record as a C initializer:
//
//	{ 0x0061, 5, 7, 7, { 0x08, 0x10, 0x20, 0x40, 0x80, 0x00, 0x00 } }
func Entry(r fontpack.EmitRecord, unitBytes int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{ 0x%04X, %d, %d, %d, { ", r.Code, r.Width, r.Height, r.ByteLength)
	sb.WriteString(formatUnits(r.Data, unitBytes))
	sb.WriteString(" } }")
	return sb.String()
}

// Label identifies a code for a human reader: the character itself when it
// is graphic, otherwise its Unicode name.
//
//	' a ' (0x0061)
//	'   ' (0x0007) <control>
func Label(code uint16) string {
	r := rune(code)
	ch := " "
	if unicode.IsGraphic(r) {
		ch = string(r)
	}
	label := fmt.Sprintf("' %s ' (0x%04X)", ch, code)
	if !unicode.IsGraphic(r) {
		if name := runenames.Name(r); name != "" {
			label += " " + name
		}
	}
	return label
}

// EntryType returns the C integer type matching the storage unit width.
func EntryType(unitBytes int) string {
	switch unitBytes {
	case 1:
		return "uint8_t"
	case 2:
		return "uint16_t"
	default:
		return "uint32_t"
	}
}

// formatUnits renders data as comma-separated hex literals, one literal
// per storage unit, preserving the packer's most-significant-byte-first
// unit layout.
func formatUnits(data []byte, unitBytes int) string {
	if unitBytes < 1 {
		unitBytes = 1
	}
	units := make([]string, 0, (len(data)+unitBytes-1)/unitBytes)
	for i := 0; i < len(data); i += unitBytes {
		v := uint32(0)
		n := 0
		for j := i; j < len(data) && j < i+unitBytes; j++ {
			v = v<<8 | uint32(data[j])
			n++
		}
		units = append(units, fmt.Sprintf("0x%0*X", n*2, v))
	}
	return strings.Join(units, ", ")
}
