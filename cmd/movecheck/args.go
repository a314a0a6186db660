package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// splitArgsLine splits a line into arguments on whitespace, keeping
// single- or double-quoted sections together with the quotes removed.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	inArg := false
	var quote rune

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}

// loadArgsFile reads arguments from a file, one or more per line.
// Blank lines and lines starting with '#' are skipped.
func loadArgsFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var args []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, splitArgsLine(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return args, nil
}

// loadArgsFromFileIfSpecified looks for -A in os.Args and returns the
// arguments loaded from that file, or nil when -A is absent.
func loadArgsFromFileIfSpecified() []string {
	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		var path string
		switch {
		case arg == "-A" || arg == "--A":
			if i+1 >= len(os.Args) {
				return nil
			}
			path = os.Args[i+1]
		case strings.HasPrefix(arg, "-A="):
			path = strings.TrimPrefix(arg, "-A=")
		case strings.HasPrefix(arg, "--A="):
			path = strings.TrimPrefix(arg, "--A=")
		default:
			continue
		}

		args, err := loadArgsFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading arguments file %s: %v\n", path, err)
			os.Exit(exitUsage)
		}
		return args
	}
	return nil
}
