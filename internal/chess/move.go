package chess

import (
	"fmt"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Move is a request to move the occupant of From to To.
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Deltas returns the row and column distance from From to To.
func (m Move) Deltas() (dRow, dCol int) {
	return m.To.Row() - m.From.Row(), m.To.Col() - m.From.Col()
}

// ParseSquare parses two-character algebraic cell notation such as "e2".
func ParseSquare(text string) (Square, error) {
	return parseSquareAt(text, text, 0)
}

// parseSquareAt parses text as a cell, reporting errors against input with
// columns shifted by offset.
func parseSquareAt(input, text string, offset int) (Square, error) {
	if len(text) != 2 {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidLength,
			Input:    input,
			Expected: "2 characters like 'e2'",
			Got:      fmt.Sprintf("%d", len(text)),
		}
	}

	file, rank := text[0], text[1]
	if file < FileBase || file > LastFile {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidFile,
			Input:    input,
			Column:   offset + 1,
			Expected: "file 'a'-'h'",
			Got:      fmt.Sprintf("%q", file),
		}
	}
	if rank < RankBase || rank > LastRank {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidRank,
			Input:    input,
			Column:   offset + 2,
			Expected: "rank '1'-'8'",
			Got:      fmt.Sprintf("%q", rank),
		}
	}

	return NewSquare(int(LastRank-rank), int(file-FileBase))
}

// ParseMove parses a four-character move such as "e2e4": a source cell
// followed by a destination cell.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidLength,
			Input:    text,
			Expected: "4 characters like 'e2e4'",
			Got:      fmt.Sprintf("%d", len(text)),
		}
	}

	from, err := parseSquareAt(text, text[:2], 0)
	if err != nil {
		return Move{}, err
	}
	to, err := parseSquareAt(text, text[2:], 2)
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// MustParseMove is like ParseMove but panics on malformed text.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}
