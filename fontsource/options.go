package fontsource

// Option configures a source created by this package.
type Option func(*config)

// config holds resolved source configuration.
type config struct {
	ppem       float64
	threshold  uint8
	cacheLimit int
}

// defaultConfig returns the defaults: 16 pixels per em for scalable fonts,
// alpha threshold 0x80, and a soft cache limit of 512 rasterized glyphs.
func defaultConfig() config {
	return config{
		ppem:       16,
		threshold:  0x80,
		cacheLimit: 512,
	}
}

// WithPPEM sets the rasterization size in pixels per em. Only meaningful
// for scalable (OpenType) fonts; bitmap fonts carry a fixed size.
func WithPPEM(ppem float64) Option {
	return func(c *config) {
		c.ppem = ppem
	}
}

// WithThreshold sets the alpha level at and above which an anti-aliased
// pixel counts as lit. The default 0x80 splits coverage down the middle.
func WithThreshold(a uint8) Option {
	return func(c *config) {
		c.threshold = a
	}
}

// WithCacheLimit sets the maximum number of cached rasterized glyphs for
// face-backed sources. A value of 0 disables caching.
func WithCacheLimit(n int) Option {
	return func(c *config) {
		c.cacheLimit = n
	}
}
