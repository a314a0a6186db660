package engine

import (
	"github.com/lgbarn/movecheck-go/internal/chess"
)

// maxRayLength bounds the walk along a sliding piece's line.
const maxRayLength = chess.BoardSize - 1

// Validate reports whether move is legal on board. It returns nil for a
// legal move or the Reason for the first rule the move breaks. Checks run
// in a fixed order: source occupancy, same square, own-piece capture, then
// the moving piece's own rule. Validate never modifies the board.
func Validate(board *chess.Board, move chess.Move) error {
	piece := board.At(move.From)
	if piece.IsEmpty() {
		return NoPieceAtSource
	}
	if move.From == move.To {
		return SamePosition
	}

	target := board.At(move.To)
	if !target.IsEmpty() && target.Colour == piece.Colour {
		return CaptureOwnPiece
	}
	capture := !target.IsEmpty()

	switch piece.Kind {
	case chess.Pawn:
		return validatePawn(board, move, piece.Colour, capture)
	case chess.Rook:
		return validateRook(board, move)
	case chess.Knight:
		return validateKnight(move)
	case chess.Bishop:
		return validateBishop(board, move)
	case chess.King:
		return validateKing(move)
	case chess.Queen:
		return validateQueen(board, move)
	default:
		// Not a piece kind; treat the cell as vacant.
		return NoPieceAtSource
	}
}

// IsLegal is shorthand for Validate(board, move) == nil.
func IsLegal(board *chess.Board, move chess.Move) bool {
	return Validate(board, move) == nil
}

func validatePawn(board *chess.Board, move chess.Move, colour chess.Colour, capture bool) error {
	dir := chess.PawnDirection(colour)
	dRow, dCol := move.Deltas()

	if capture {
		if dRow == dir && abs(dCol) == 1 {
			return nil
		}
		return InvalidPawnCapture
	}

	if dCol != 0 {
		return InvalidPawnMove
	}

	switch dRow {
	case dir:
		// The destination is the cell directly ahead and it is vacant,
		// otherwise this would be a capture.
		if board.Occupied(move.To) {
			return PieceBlocking
		}
		return nil
	case 2 * dir:
		if move.From.Row() != chess.PawnStartRow(colour) {
			return InvalidPawnMove
		}
		mid, _ := move.From.Offset(dir, 0)
		if board.Occupied(mid) || board.Occupied(move.To) {
			return PieceBlocking
		}
		return nil
	}
	return InvalidPawnMove
}

func validateRook(board *chess.Board, move chess.Move) error {
	if !isStraight(move) {
		return InvalidRookMove
	}
	return clearPath(board, move)
}

func validateKnight(move chess.Move) error {
	dRow, dCol := move.Deltas()
	r, c := abs(dRow), abs(dCol)
	if (r == 1 && c == 2) || (r == 2 && c == 1) {
		return nil
	}
	return InvalidKnightMove
}

func validateBishop(board *chess.Board, move chess.Move) error {
	if !isDiagonal(move) {
		return InvalidBishopMove
	}
	return clearPath(board, move)
}

func validateKing(move chess.Move) error {
	dRow, dCol := move.Deltas()
	if abs(dRow) <= 1 && abs(dCol) <= 1 {
		return nil
	}
	return InvalidKingMove
}

func validateQueen(board *chess.Board, move chess.Move) error {
	if !isStraight(move) && !isDiagonal(move) {
		return InvalidQueenMove
	}
	return clearPath(board, move)
}

// isStraight reports whether exactly one of the deltas is zero.
func isStraight(move chess.Move) bool {
	dRow, dCol := move.Deltas()
	return (dRow == 0) != (dCol == 0)
}

func isDiagonal(move chess.Move) bool {
	dRow, dCol := move.Deltas()
	return dRow != 0 && abs(dRow) == abs(dCol)
}

// clearPath walks from the square after move.From towards move.To and fails
// with PieceBlocking on the first occupied cell before the destination.
// The move must be straight or diagonal.
func clearPath(board *chess.Board, move chess.Move) error {
	dRow, dCol := move.Deltas()
	stepRow, stepCol := sign(dRow), sign(dCol)

	current := move.From
	for i := 0; i < maxRayLength; i++ {
		next, ok := current.Offset(stepRow, stepCol)
		if !ok || next == move.To {
			return nil
		}
		if board.Occupied(next) {
			return PieceBlocking
		}
		current = next
	}
	return nil
}
