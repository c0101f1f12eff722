// Package fontsource provides ready-made glyph sources for the fontpack
// pipeline, wrapping real font parsers behind the fontpack.GlyphSource
// interface:
//
//   - BDF bitmap fonts via github.com/zachomedia/go-bdf
//   - OpenType (TTF/OTF) fonts rasterized at a fixed pixel size via
//     golang.org/x/image/font/opentype
//   - any golang.org/x/image/font.Face, thresholded to monochrome
//   - embedded bitmap strikes via github.com/go-text/typesetting
//
// The font file format is detected automatically:
//
//	src, err := fontsource.OpenFile("6x9.bdf")
//	src, err := fontsource.OpenFile("Roboto-Regular.ttf", fontsource.WithPPEM(14))
//
// Custom formats can be registered with RegisterFormat, mirroring how the
// built-in ones are wired up.
//
// Sources that can enumerate the codes their font covers additionally
// implement CodeLister.
package fontsource
