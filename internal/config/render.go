package config

import (
	"fmt"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// GlyphSet selects how pieces are drawn on a rendered board.
type GlyphSet int

const (
	GlyphsUnicode GlyphSet = iota // Chess symbols such as ♘
	GlyphsLetters                 // FEN letters such as N and n
)

var glyphSetNames = map[GlyphSet]string{
	GlyphsUnicode: "unicode",
	GlyphsLetters: "letters",
}

// String returns the flag name of the glyph set.
func (g GlyphSet) String() string {
	if name, ok := glyphSetNames[g]; ok {
		return name
	}
	return "unknown"
}

// ParseGlyphSet converts a glyph set name to a GlyphSet.
func ParseGlyphSet(name string) (GlyphSet, error) {
	for g, n := range glyphSetNames {
		if n == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown glyph set %q: %w", name, errors.ErrInvalidConfig)
}

// RenderConfig holds settings related to output formatting.
type RenderConfig struct {
	// Glyphs selects Unicode symbols or FEN letters for pieces
	Glyphs GlyphSet

	// Colour shades squares and highlights errors with ANSI colour
	Colour bool

	// ShowBoard prints the board after every accepted move
	ShowBoard bool

	// JSONFormat enables JSON output instead of text
	JSONFormat bool
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{Glyphs: GlyphsUnicode}
}

// Validate checks that the render configuration is valid.
func (r *RenderConfig) Validate() error {
	if _, ok := glyphSetNames[r.Glyphs]; !ok {
		return fmt.Errorf("glyph set %d: %w", r.Glyphs, errors.ErrInvalidConfig)
	}
	return nil
}
