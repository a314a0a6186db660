package engine

import (
	"github.com/lgbarn/movecheck-go/internal/chess"
)

// Destinations returns every square the piece on from may legally move to,
// in ascending square order. A vacant source has no destinations.
func Destinations(board *chess.Board, from chess.Square) []chess.Square {
	if !board.Occupied(from) {
		return nil
	}
	var out []chess.Square
	for _, to := range chess.AllSquares() {
		if Validate(board, chess.NewMove(from, to)) == nil {
			out = append(out, to)
		}
	}
	return out
}

// LegalMoves returns every legal move for the pieces of colour, ordered by
// source square then destination square. King safety is not considered.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, pl := range board.Pieces() {
		if pl.Piece.Colour != colour {
			continue
		}
		for _, to := range Destinations(board, pl.Square) {
			moves = append(moves, chess.NewMove(pl.Square, to))
		}
	}
	return moves
}

// HasLegalMove reports whether colour has at least one legal move.
func HasLegalMove(board *chess.Board, colour chess.Colour) bool {
	for _, pl := range board.Pieces() {
		if pl.Piece.Colour != colour {
			continue
		}
		for _, to := range chess.AllSquares() {
			if Validate(board, chess.NewMove(pl.Square, to)) == nil {
				return true
			}
		}
	}
	return false
}
