package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/hashing"
	"github.com/lgbarn/movecheck-go/internal/output"
	"github.com/lgbarn/movecheck-go/internal/suite"
)

// runSuiteMode parses and runs cfg.Suite.File, "-" meaning stdin.
func runSuiteMode(cfg *config.Config, w output.ResultWriter, stdin io.Reader) int {
	cases, err := loadSuite(cfg.Suite.File, stdin)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return exitUsage
	}

	reportDuplicates(cfg, cases)

	numWorkers := cfg.Suite.EffectiveWorkers()
	cfg.Logf(2, "running %d case(s) from %s with %d worker(s)", len(cases), cfg.Suite.File, numWorkers)

	outcomes := suite.Run(cases, suite.Options{Workers: numWorkers, FailFast: cfg.Suite.FailFast})
	for _, o := range outcomes {
		if err := w.WriteOutcome(o); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error writing results: %v\n", err)
			return exitUsage
		}
	}

	summary := suite.Summarize(outcomes)
	if err := w.WriteSummary(summary); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing results: %v\n", err)
		return exitUsage
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d case(s) passed out of %d.\n", summary.Passed, summary.Total)
	}

	if !summary.OK() {
		return exitFailure
	}
	return exitOK
}

// loadSuite reads suite cases from a file, or from stdin for "-".
func loadSuite(name string, stdin io.Reader) ([]suite.Case, error) {
	if name == "-" {
		return suite.Parse(stdin, "stdin")
	}

	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return suite.Parse(file, name)
}

// reportDuplicates warns about cases that repeat an earlier position and
// move. Duplicates still run.
func reportDuplicates(cfg *config.Config, cases []suite.Case) int {
	detector := hashing.NewDuplicateDetector()
	for i := range cases {
		c := &cases[i]
		if detector.CheckAndAdd(&c.Board, c.Move) {
			cfg.Logf(1, "Warning: line %d repeats an earlier case (%s %s)", c.Line, c.Setup, c.Move)
		}
	}
	return detector.DuplicateCount()
}
