// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Reason identifies the rule a rejected move violated. Reason implements
// error, so Validate and Apply return it directly; callers recover it with
// errors.As and switch on it. Every Reason also matches errors.ErrIllegalMove
// under errors.Is.
type Reason int

const (
	NoPieceAtSource Reason = iota + 1
	SamePosition
	CaptureOwnPiece
	InvalidPawnMove
	InvalidPawnCapture
	InvalidRookMove
	InvalidKnightMove
	InvalidBishopMove
	InvalidKingMove
	InvalidQueenMove
	PieceBlocking
)

var reasonNames = map[Reason]string{
	NoPieceAtSource:    "no-piece-at-source",
	SamePosition:       "same-position",
	CaptureOwnPiece:    "capture-own-piece",
	InvalidPawnMove:    "invalid-pawn-move",
	InvalidPawnCapture: "invalid-pawn-capture",
	InvalidRookMove:    "invalid-rook-move",
	InvalidKnightMove:  "invalid-knight-move",
	InvalidBishopMove:  "invalid-bishop-move",
	InvalidKingMove:    "invalid-king-move",
	InvalidQueenMove:   "invalid-queen-move",
	PieceBlocking:      "piece-blocking",
}

var reasonMessages = map[Reason]string{
	NoPieceAtSource:    "no piece on the source square",
	SamePosition:       "source and destination are the same square",
	CaptureOwnPiece:    "destination holds a piece of the same colour",
	InvalidPawnMove:    "pawns move one square forward, or two from their starting rank",
	InvalidPawnCapture: "pawns capture one square diagonally forward",
	InvalidRookMove:    "rooks move along a rank or a file",
	InvalidKnightMove:  "knights move in an L shape",
	InvalidBishopMove:  "bishops move diagonally",
	InvalidKingMove:    "kings move one square",
	InvalidQueenMove:   "queens move along a rank, file or diagonal",
	PieceBlocking:      "a piece is in the way",
}

// Reasons returns every Reason in declaration order.
func Reasons() []Reason {
	out := make([]Reason, 0, len(reasonNames))
	for r := NoPieceAtSource; r <= PieceBlocking; r++ {
		out = append(out, r)
	}
	return out
}

// String returns the kebab-case name of the reason, e.g. "piece-blocking".
func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}

// Error returns a human readable description including the reason's name.
func (r Reason) Error() string {
	if msg, ok := reasonMessages[r]; ok {
		return "illegal move (" + r.String() + "): " + msg
	}
	return "illegal move"
}

// Is makes every Reason match errors.ErrIllegalMove.
func (r Reason) Is(target error) bool {
	return target == errors.ErrIllegalMove
}

// ParseReason looks a reason up by its kebab-case name.
func ParseReason(name string) (Reason, bool) {
	for r, n := range reasonNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}
