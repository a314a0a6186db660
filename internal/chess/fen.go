package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// StandardPlacement is the FEN piece placement of the standard starting position.
const StandardPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement builds a board from the piece placement field of a FEN
// string. Any fields after the first are ignored.
func ParsePlacement(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != BoardSize {
		return nil, fmt.Errorf("%d ranks, want %d: %w", len(ranks), BoardSize, errors.ErrInvalidFEN)
	}

	board := NewBoard(LayoutEmpty)
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				if col > BoardSize {
					return nil, fmt.Errorf("rank %c overflows: %w", byte(LastRank-row), errors.ErrInvalidFEN)
				}
				continue
			}

			kind := KindFromLetter(c)
			if kind == Empty {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= BoardSize {
				return nil, fmt.Errorf("rank %c overflows: %w", byte(LastRank-row), errors.ErrInvalidFEN)
			}

			colour := White
			if c >= 'a' && c <= 'z' {
				colour = Black
			}
			board.Squares[row][col] = NewPiece(kind, colour)
			col++
		}
		if col != BoardSize {
			return nil, fmt.Errorf("rank %c has %d files: %w", byte(LastRank-row), col, errors.ErrInvalidFEN)
		}
	}
	return board, nil
}

// Placement returns the FEN piece placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		empty := 0
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
