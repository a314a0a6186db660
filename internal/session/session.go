// Package session tracks a single game in progress: one board, the side to
// move and the moves played so far. Legality is delegated to the engine;
// the session adds turn order on top.
package session

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/engine"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Session owns a board exclusively. It is not safe for concurrent use.
type Session struct {
	board   chess.Board
	turn    chess.Colour
	history []chess.Move
}

// New starts a session on a board with the given layout, White to move.
func New(layout chess.Layout) *Session {
	return &Session{board: *chess.NewBoard(layout), turn: chess.White}
}

// FromFEN starts a session from a FEN string. The placement field is
// required; the side-to-move field is honoured when present and the
// remaining fields are ignored.
func FromFEN(fen string) (*Session, error) {
	board, err := chess.ParsePlacement(fen)
	if err != nil {
		return nil, err
	}

	s := &Session{board: *board, turn: chess.White}
	if fields := strings.Fields(fen); len(fields) > 1 {
		switch fields[1] {
		case "w":
			s.turn = chess.White
		case "b":
			s.turn = chess.Black
		default:
			return nil, fmt.Errorf("side to move %q: %w", fields[1], errors.ErrInvalidFEN)
		}
	}
	return s, nil
}

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board {
	b := s.board
	return &b
}

// Turn returns the colour to move.
func (s *Session) Turn() chess.Colour {
	return s.turn
}

// Ply returns the number of moves played.
func (s *Session) Ply() int {
	return len(s.history)
}

// History returns the moves played, oldest first.
func (s *Session) History() []chess.Move {
	out := make([]chess.Move, len(s.history))
	copy(out, s.history)
	return out
}

// Play applies move for the side to move. Moving an opposing piece fails
// with ErrWrongTurn; any other rejection carries the engine's Reason.
// Failures are returned as *errors.MoveError and leave the session unchanged.
func (s *Session) Play(move chess.Move) error {
	fail := func(err error) error {
		return &errors.MoveError{Err: err, Ply: s.Ply() + 1, MoveText: move.String()}
	}

	if p := s.board.At(move.From); !p.IsEmpty() && p.Colour != s.turn {
		return fail(fmt.Errorf("%s piece on %s: %w", p.Colour, move.From, errors.ErrWrongTurn))
	}
	if err := engine.Apply(&s.board, move); err != nil {
		return fail(err)
	}

	s.history = append(s.history, move)
	s.turn = s.turn.Opposite()
	return nil
}

// PlayText parses a coordinate move such as "e2e4" and plays it.
func (s *Session) PlayText(text string) error {
	move, err := chess.ParseMove(text)
	if err != nil {
		return &errors.MoveError{Err: err, Ply: s.Ply() + 1, MoveText: text}
	}
	return s.Play(move)
}

// LegalMoves returns the moves available to the side to move.
func (s *Session) LegalMoves() []chess.Move {
	return engine.LegalMoves(&s.board, s.turn)
}

// Stuck reports whether the side to move has no legal move at all.
func (s *Session) Stuck() bool {
	return !engine.HasLegalMove(&s.board, s.turn)
}
