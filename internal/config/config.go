// Package config provides configuration for movecheck.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Starting position. FEN, when set, replaces Layout.
	Layout chess.Layout
	FEN    string

	Render RenderConfig
	Suite  SuiteConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Layout:     chess.LayoutStandard,
		Render:     *NewRenderConfig(),
		Suite:      *NewSuiteConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the result output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostic log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Layout != chess.LayoutStandard && c.Layout != chess.LayoutEmpty {
		return fmt.Errorf("unknown layout %d: %w", c.Layout, errors.ErrInvalidConfig)
	}
	if c.FEN != "" && c.Layout == chess.LayoutEmpty {
		return fmt.Errorf("a FEN position cannot be combined with the empty layout: %w", errors.ErrInvalidConfig)
	}
	if err := c.Render.Validate(); err != nil {
		return err
	}
	return c.Suite.Validate()
}

// ParseLayout converts a layout name ("standard" or "empty") to a Layout.
func ParseLayout(name string) (chess.Layout, error) {
	for _, l := range []chess.Layout{chess.LayoutStandard, chess.LayoutEmpty} {
		if l.String() == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layout %q: %w", name, errors.ErrInvalidConfig)
}
