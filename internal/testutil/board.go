package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lgbarn/movecheck-go/internal/chess"
)

// MustPlacement builds a board from a FEN piece placement, failing the test
// if it does not parse.
func MustPlacement(t testing.TB, fen string) *chess.Board {
	t.Helper()
	b, err := chess.ParsePlacement(fen)
	if err != nil {
		t.Fatalf("invalid test placement %q: %v", fen, err)
	}
	return b
}

// BoardWith returns an empty board holding the given pieces, keyed by
// algebraic square name.
func BoardWith(t testing.TB, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard(chess.LayoutEmpty)
	for name, p := range pieces {
		b.Set(MustSquare(t, name), p)
	}
	return b
}

// MustSquare parses an algebraic square name, failing the test on error.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("invalid test square %q: %v", name, err)
	}
	return sq
}

// MustMove parses a coordinate move, failing the test on error.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("invalid test move %q: %v", text, err)
	}
	return m
}

// AssertBoard compares two boards by FEN placement, showing a diff of the
// placements when they differ.
func AssertBoard(t testing.TB, got, want *chess.Board) {
	t.Helper()
	if diff := cmp.Diff(want.Placement(), got.Placement()); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}
