// movecheck validates chess moves against the piece movement rules, either
// interactively from a list of moves or in batch from a suite file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/output"
	"github.com/lgbarn/movecheck-go/internal/session"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0 // every move legal, every case passed
	exitFailure = 1 // an illegal move or a failing case
	exitUsage   = 2 // bad flags, configuration or input files
)

func main() {
	flag.Usage = usage
	argv := os.Args[1:]
	if fileArgs := loadArgsFromFileIfSpecified(); fileArgs != nil {
		argv = append(fileArgs, argv...)
	}
	if err := flag.CommandLine.Parse(argv); err != nil {
		os.Exit(exitUsage)
	}

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("movecheck-go version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	os.Exit(run(cfg, flag.Args(), os.Stdin))
}

// run executes play or suite mode and returns the process exit code.
func run(cfg *config.Config, args []string, stdin io.Reader) int {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return exitUsage
	}

	w := output.NewResultWriter(cfg.OutputFile, &cfg.Render)
	defer w.Close() //nolint:errcheck // G104: output errors surface on the stream

	if cfg.Suite.File != "" {
		return runSuiteMode(cfg, w, stdin)
	}

	s, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return exitUsage
	}
	return runPlayMode(cfg, s, w, args, stdin)
}

// newSession creates the play session for the configured starting position.
func newSession(cfg *config.Config) (*session.Session, error) {
	if cfg.FEN != "" {
		return session.FromFEN(cfg.FEN)
	}
	return session.New(cfg.Layout), nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(exitUsage)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(exitUsage)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitUsage)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movecheck [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Check chess moves in coordinate notation (e2e4) against the movement rules.\n")
	fmt.Fprintf(os.Stderr, "Moves are read from the arguments, or from stdin when there are none.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands (in place of a move):\n")
	fmt.Fprintf(os.Stderr, "  board  Print the current board\n")
	fmt.Fprintf(os.Stderr, "  moves  List the legal moves for the side to move\n")
	fmt.Fprintf(os.Stderr, "  quit   Stop reading moves\n")
	fmt.Fprintf(os.Stderr, "\nSuite lines (-suite):\n")
	fmt.Fprintf(os.Stderr, "  <standard|empty|FEN placement> <move> <ok|reason>\n")
}
