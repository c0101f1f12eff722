package fontpack

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fontpack package.
var (
	// ErrGlyphNotFound is returned by a GlyphSource when the font has no
	// mapping for the requested code. The table builder handles it per the
	// configured missing-glyph policy.
	ErrGlyphNotFound = errors.New("fontpack: glyph not found")

	// ErrNilSource is returned by Build when no glyph source is provided.
	ErrNilSource = errors.New("fontpack: glyph source is nil")
)

// ConfigError reports an invalid configuration value. Configuration is
// validated before any glyph is processed, so a ConfigError always surfaces
// before the first fetch.
type ConfigError struct {
	Param  string // offending parameter, e.g. "Rotation"
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fontpack: invalid %s: %s", e.Param, e.Reason)
}

// BuildError reports a failed table build. Code identifies the character
// the build failed on.
type BuildError struct {
	Code uint16
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("fontpack: build failed at code U+%04X: %v", e.Code, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
