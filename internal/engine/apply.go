package engine

import (
	"github.com/lgbarn/movecheck-go/internal/chess"
)

// Apply validates move and, when legal, moves the piece on From to To,
// replacing any captured occupant. On failure the board is left untouched
// and the Reason from Validate is returned unchanged.
func Apply(board *chess.Board, move chess.Move) error {
	if err := Validate(board, move); err != nil {
		return err
	}
	piece := board.Remove(move.From)
	board.Set(move.To, piece)
	return nil
}

// ApplyAll applies moves in order, stopping at the first illegal one.
// It returns the index of the failing move and its Reason, or -1 and nil
// when every move was applied.
func ApplyAll(board *chess.Board, moves []chess.Move) (int, error) {
	for i, m := range moves {
		if err := Apply(board, m); err != nil {
			return i, err
		}
	}
	return -1, nil
}
