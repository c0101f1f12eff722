// fontpack converts glyphs from a font file into a packed table for
// embedding in firmware, emitted as C source or as fontpack's binary
// table layout.
//
// Examples:
//
//	# ASCII from a BDF font, one byte per unit, row-major, C header out
//	fontpack -f 6x9.bdf -o font.h
//
//	# SSD1306 page-mode layout from a TTF rasterized at 12 ppem
//	fontpack -f roboto.ttf --ppem 12 --order col --bits lsb -o font.h
//
//	# ASCII plus Cyrillic, binary table out
//	fontpack -f 6x9.bdf -c 0x20-0x7E,0x400-0x4FF --format bin -o font.fpk
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/gogpu/fontpack"
	"github.com/gogpu/fontpack/cgen"
	"github.com/gogpu/fontpack/fontsource"
)

var conf struct {
	Font    flags.Filename `short:"f" long:"font" description:"path to font file (BDF, TTF or OTF)" required:"true"`
	Chars   string         `short:"c" long:"chars" description:"code ranges to include, or 'all' for the font's coverage" default:"0x20-0x7E"`
	Output  flags.Filename `short:"o" long:"output" description:"output file (default stdout)"`
	Format  string         `long:"format" description:"output format" default:"c" choice:"c" choice:"bin"`
	PPEM    float64        `long:"ppem" description:"rasterization size for scalable fonts" default:"16"`
	Rotate  int            `short:"r" long:"rotate" description:"clockwise rotation in degrees" default:"0"`
	MirrorH bool           `long:"mirror-h" description:"mirror horizontally"`
	MirrorV bool           `long:"mirror-v" description:"mirror vertically"`
	Width   int            `short:"W" long:"width" description:"pad or trim glyphs to this width"`
	Height  int            `short:"H" long:"height" description:"pad or trim glyphs to this height"`
	Anchor  string         `long:"anchor" description:"anchor for padding and trimming" default:"top-left" choice:"top-left" choice:"top-right" choice:"bottom-left" choice:"bottom-right" choice:"center"`
	Unit    int            `short:"u" long:"unit" description:"storage unit size in bytes" default:"1"`
	Order   string         `long:"order" description:"pixel traversal order" default:"row" choice:"row" choice:"col"`
	Bits    string         `long:"bits" description:"bit order within a unit" default:"msb" choice:"msb" choice:"lsb"`

	Unbroken bool   `long:"unbroken" description:"pack bits across row/column boundaries"`
	Strict   bool   `long:"strict" description:"fail on missing glyphs instead of skipping"`
	Workers  int    `long:"workers" description:"parallel glyph workers" default:"1"`
	Array    string `long:"array-name" description:"generated C array name" default:"fontArray"`
	Struct   string `long:"struct-name" description:"generated C struct name" default:"fontGlyphEntry_t"`
	Verbose  bool   `short:"v" long:"verbose" description:"log build progress to stderr"`
}

func main() {
	if _, err := flags.Parse(&conf); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fontpack:", err)
		os.Exit(1)
	}
}

func run() error {
	if conf.Verbose {
		fontpack.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	src, err := fontsource.OpenFile(string(conf.Font), fontsource.WithPPEM(conf.PPEM))
	if err != nil {
		return err
	}

	codes, err := parseCodes(conf.Chars, src)
	if err != nil {
		return err
	}

	anchor, err := parseAnchor(conf.Anchor)
	if err != nil {
		return err
	}
	order := fontpack.OrderRowMajor
	if conf.Order == "col" {
		order = fontpack.OrderColumnMajor
	}
	bits := fontpack.MSBFirst
	if conf.Bits == "lsb" {
		bits = fontpack.LSBFirst
	}
	missing := fontpack.SkipMissing
	if conf.Strict {
		missing = fontpack.AbortOnMissing
	}

	table, err := fontpack.Build(codes, src,
		fontpack.WithTransform(fontpack.TransformConfig{
			Rotation:     conf.Rotate,
			MirrorH:      conf.MirrorH,
			MirrorV:      conf.MirrorV,
			TargetWidth:  conf.Width,
			TargetHeight: conf.Height,
			Anchor:       anchor,
		}),
		fontpack.WithPack(fontpack.PackConfig{
			UnitBytes: conf.Unit,
			Order:     order,
			BitOrder:  bits,
			Unbroken:  conf.Unbroken,
		}),
		fontpack.WithMissingPolicy(missing),
		fontpack.WithWorkers(conf.Workers),
	)
	if err != nil {
		return err
	}

	out := os.Stdout
	if conf.Output != "" {
		f, err := os.Create(string(conf.Output))
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch conf.Format {
	case "bin":
		_, err = table.WriteTo(out)
	default:
		err = cgen.Render(out, table,
			cgen.WithArrayName(conf.Array),
			cgen.WithStructName(conf.Struct),
		)
	}
	return err
}

// parseCodes turns "0x20-0x7E,0x400-0x4FF,0x2026" into a code list, or
// asks the source for its full coverage when spec is "all".
func parseCodes(spec string, src fontpack.GlyphSource) ([]uint16, error) {
	if spec == "all" {
		lister, ok := src.(fontsource.CodeLister)
		if !ok {
			return nil, fmt.Errorf("this font source cannot enumerate its coverage; pass explicit ranges")
		}
		return lister.Codes(), nil
	}

	var codes []uint16
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, found := strings.Cut(part, "-")
		first, err := parseCode(lo)
		if err != nil {
			return nil, err
		}
		last := first
		if found {
			if last, err = parseCode(hi); err != nil {
				return nil, err
			}
		}
		if last < first {
			return nil, fmt.Errorf("invalid range %q", part)
		}
		codes = append(codes, fontpack.CodeRange(first, last)...)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("no character codes selected")
	}
	return codes, nil
}

func parseCode(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid character code %q: %w", s, err)
	}
	return uint16(v), nil
}

func parseAnchor(s string) (fontpack.Anchor, error) {
	switch s {
	case "top-left":
		return fontpack.AnchorTopLeft, nil
	case "top-right":
		return fontpack.AnchorTopRight, nil
	case "bottom-left":
		return fontpack.AnchorBottomLeft, nil
	case "bottom-right":
		return fontpack.AnchorBottomRight, nil
	case "center":
		return fontpack.AnchorCenter, nil
	default:
		return 0, fmt.Errorf("unknown anchor %q", s)
	}
}
