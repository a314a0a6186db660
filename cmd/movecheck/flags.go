// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/movecheck-go/internal/config"
)

var (
	// Starting position
	layoutName = flag.String("layout", "standard", "Starting layout: standard or empty")
	fenString  = flag.String("fen", "", "Start from this FEN position (placement and optional side to move)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	glyphs       = flag.String("glyphs", "unicode", "Piece glyphs for board output: unicode or letters")
	colour       = flag.Bool("colour", false, "Shade board squares and highlight errors with ANSI colour")
	showBoard    = flag.Bool("board", false, "Print the board after every accepted move")

	// Suite options
	suiteFile = flag.String("suite", "", "Run the test suite in this file (- for stdin)")
	workers   = flag.Int("workers", 0, "Number of suite worker threads (0 = auto-detect based on CPU cores)")
	failFast  = flag.Bool("failfast", false, "Stop a suite at the first failing case")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no summary)")
	verbose   = flag.Bool("v", false, "Verbose mode (running commentary)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one or more per line, # for comments)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPositionFlags(cfg); err != nil {
		return err
	}
	if err := applyRenderFlags(cfg); err != nil {
		return err
	}
	applySuiteFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyPositionFlags configures the starting position.
func applyPositionFlags(cfg *config.Config) error {
	layout, err := config.ParseLayout(*layoutName)
	if err != nil {
		return fmt.Errorf("-layout: %w", err)
	}
	cfg.Layout = layout
	cfg.FEN = *fenString
	return nil
}

// applyRenderFlags configures output formatting.
func applyRenderFlags(cfg *config.Config) error {
	g, err := config.ParseGlyphSet(*glyphs)
	if err != nil {
		return fmt.Errorf("-glyphs: %w", err)
	}
	cfg.Render.Glyphs = g
	cfg.Render.Colour = *colour
	cfg.Render.ShowBoard = *showBoard
	cfg.Render.JSONFormat = *jsonOutput
	return nil
}

// applySuiteFlags configures suite runs.
func applySuiteFlags(cfg *config.Config) {
	cfg.Suite.File = *suiteFile
	cfg.Suite.Workers = *workers
	cfg.Suite.FailFast = *failFast
}
