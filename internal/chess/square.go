package chess

import (
	"fmt"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Square is one of the 64 board cells, numbered row*8+column.
// Row 0 is rank 8 and column 0 is file 'a'. A Square obtained from
// NewSquare, Offset or ParseSquare is always in range.
type Square uint8

// NewSquare creates a square from a row and column, failing with
// ErrOutOfBounds when either coordinate is outside [0, 7].
func NewSquare(row, col int) (Square, error) {
	if !inBounds(row, col) {
		return 0, fmt.Errorf("row %d, column %d: %w", row, col, errors.ErrOutOfBounds)
	}
	return Square(row*BoardSize + col), nil
}

// MustSquare is like NewSquare but panics on out-of-range coordinates.
// It is intended for tables and tests.
func MustSquare(row, col int) Square {
	sq, err := NewSquare(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Row returns the row of the square, 0 (rank 8) to 7 (rank 1).
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Col returns the column of the square, 0 (file 'a') to 7 (file 'h').
func (s Square) Col() int {
	return int(s) % BoardSize
}

// Offset returns the square dRow rows and dCol columns away, or false if
// that would leave the board.
func (s Square) Offset(dRow, dCol int) (Square, bool) {
	row, col := s.Row()+dRow, s.Col()+dCol
	if !inBounds(row, col) {
		return 0, false
	}
	return Square(row*BoardSize + col), true
}

// File returns the file letter of the square.
func (s Square) File() byte {
	return byte(FileBase + s.Col())
}

// Rank returns the rank digit of the square.
func (s Square) Rank() byte {
	return byte(LastRank - s.Row())
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if int(s) >= NumSquares {
		return fmt.Sprintf("Square(%d)", uint8(s))
	}
	return string([]byte{s.File(), s.Rank()})
}

// AllSquares returns every square in ascending order.
func AllSquares() []Square {
	squares := make([]Square, NumSquares)
	for i := range squares {
		squares[i] = Square(i)
	}
	return squares
}
