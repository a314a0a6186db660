// Package suite reads and runs move-legality test suites.
//
// A suite is line oriented. Each case line has three fields:
//
//	<setup> <move> <expect>
//
// where setup is "standard", "empty" or a FEN piece placement, move is a
// coordinate move such as "e2e4" and expect is "ok" or a rejection reason
// such as "piece-blocking". Blank lines are skipped and '#' starts a comment.
package suite

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/engine"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// ExpectLegal is the expect field for a move that should be accepted.
const ExpectLegal = "ok"

// Case is one parsed suite line.
type Case struct {
	Line   int // 1-based line number in the source
	Setup  string
	Board  chess.Board
	Move   chess.Move
	Expect engine.Reason // 0 when the move should be legal
}

// ExpectString returns the expect field as written in a suite.
func (c Case) ExpectString() string {
	return reasonName(c.Expect)
}

func reasonName(r engine.Reason) string {
	if r == 0 {
		return ExpectLegal
	}
	return r.String()
}

// Parse reads suite cases from r. name is used in error messages only.
// Parsing stops at the first malformed line, reported as *errors.MoveError
// carrying the file and line.
func Parse(r io.Reader, name string) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		c, err := parseCase(fields)
		if err != nil {
			return nil, &errors.MoveError{Err: err, File: name, Line: lineNo}
		}
		c.Line = lineNo
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return cases, nil
}

func parseCase(fields []string) (Case, error) {
	if len(fields) != 3 {
		return Case{}, fmt.Errorf("want 3 fields (setup move expect), got %d: %w", len(fields), errors.ErrParseFailure)
	}

	board, err := parseSetup(fields[0])
	if err != nil {
		return Case{}, err
	}
	move, err := chess.ParseMove(fields[1])
	if err != nil {
		return Case{}, err
	}
	expect, err := parseExpect(fields[2])
	if err != nil {
		return Case{}, err
	}
	return Case{Setup: fields[0], Board: *board, Move: move, Expect: expect}, nil
}

func parseSetup(setup string) (*chess.Board, error) {
	switch setup {
	case chess.LayoutStandard.String():
		return chess.NewBoard(chess.LayoutStandard), nil
	case chess.LayoutEmpty.String():
		return chess.NewBoard(chess.LayoutEmpty), nil
	}
	return chess.ParsePlacement(setup)
}

func parseExpect(text string) (engine.Reason, error) {
	if text == ExpectLegal {
		return 0, nil
	}
	if r, ok := engine.ParseReason(text); ok {
		return r, nil
	}
	return 0, &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Input:    text,
		Expected: "\"ok\" or a reason name",
		Got:      fmt.Sprintf("%q", text),
	}
}
