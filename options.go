package fontpack

// MissingPolicy controls how Build reacts to a code the glyph source has
// no mapping for.
type MissingPolicy uint8

const (
	// SkipMissing omits the code from the table and continues. This is the
	// default; sparse fonts are common.
	SkipMissing MissingPolicy = iota

	// AbortOnMissing fails the whole build with a BuildError naming the
	// first missing code.
	AbortOnMissing
)

// String returns a human-readable policy name.
func (p MissingPolicy) String() string {
	switch p {
	case SkipMissing:
		return "skip"
	case AbortOnMissing:
		return "abort"
	default:
		return "unknown"
	}
}

// BuildOption configures a table build.
//
// Example:
//
//	table, err := fontpack.Build(codes, src,
//	    fontpack.WithPack(fontpack.PackConfig{
//	        UnitBytes: 1,
//	        Order:     fontpack.OrderColumnMajor,
//	        BitOrder:  fontpack.LSBFirst,
//	    }),
//	    fontpack.WithMissingPolicy(fontpack.AbortOnMissing),
//	)
type BuildOption func(*buildOptions)

// buildOptions holds resolved configuration for one build.
type buildOptions struct {
	transform   TransformConfig
	pack        PackConfig
	missing     MissingPolicy
	placeholder *Bitmap
	workers     int
}

// defaultBuildOptions returns the defaults: identity transform, single-byte
// row-major MSB-first packing, skip missing glyphs, sequential build.
func defaultBuildOptions() buildOptions {
	return buildOptions{
		pack:    DefaultPackConfig(),
		missing: SkipMissing,
		workers: 1,
	}
}

// WithTransform sets the geometry transform applied to every glyph.
func WithTransform(cfg TransformConfig) BuildOption {
	return func(o *buildOptions) {
		o.transform = cfg
	}
}

// WithPack sets the bit packing configuration.
func WithPack(cfg PackConfig) BuildOption {
	return func(o *buildOptions) {
		o.pack = cfg
	}
}

// WithMissingPolicy sets how missing glyphs are handled.
func WithMissingPolicy(p MissingPolicy) BuildOption {
	return func(o *buildOptions) {
		o.missing = p
	}
}

// WithPlaceholder substitutes the given bitmap for codes the source cannot
// supply, instead of skipping or aborting. The placeholder goes through the
// same transform and packing as a fetched glyph, so every requested code
// ends up in the table. A skipped glyph is otherwise absent, never
// zero-filled.
func WithPlaceholder(bm *Bitmap) BuildOption {
	return func(o *buildOptions) {
		o.placeholder = bm
	}
}

// WithWorkers sets the number of goroutines used to process glyphs.
// Values below 2 select the sequential path. Each glyph is processed
// independently and records are sorted by code afterwards, so parallel
// builds produce byte-identical tables.
func WithWorkers(n int) BuildOption {
	return func(o *buildOptions) {
		o.workers = n
	}
}
