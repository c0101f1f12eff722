// Package fontpack converts glyph bitmaps from a font into packed binary
// tables for embedding in firmware driving small monochrome displays.
//
// # Overview
//
// The pipeline runs each requested character code through three stages:
//
//   - fetch: a GlyphSource produces the glyph's pixel matrix (Bitmap)
//   - transform: rotation, mirroring, anchored padding or trimming
//   - pack: serialization into storage units matching the target display
//     controller's memory layout (row- or column-major, MSB- or LSB-first,
//     1-4 byte units, row-aligned or unbroken)
//
// Build assembles the per-glyph results into a Table sorted by code, which
// can be emitted as structured records for code generation (see the cgen
// package) or encoded into a stable binary layout with WriteTo.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fontpack"
//	    "github.com/gogpu/fontpack/fontsource"
//	)
//
//	src, err := fontsource.OpenFile("6x9.bdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	codes := fontpack.CodeRange(0x20, 0x7E)
//	table, err := fontpack.Build(codes, src,
//	    fontpack.WithPack(fontpack.PackConfig{
//	        UnitBytes: 1,
//	        Order:     fontpack.OrderColumnMajor, // SSD1306 page mode
//	        BitOrder:  fontpack.LSBFirst,
//	    }),
//	)
//
// # Coordinate System
//
// Bitmaps use standard raster coordinates: origin at top-left, X increases
// right, Y increases down. Rotation is clockwise in 90 degree steps.
//
// # Concurrency
//
// The pipeline is synchronous and every stage is pure; a Table is immutable
// once built. Glyphs are independent, so Build optionally fans work out
// across goroutines (WithWorkers) and produces byte-identical results.
package fontpack
