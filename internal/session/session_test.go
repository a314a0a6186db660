package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/engine"
	chesserrors "github.com/lgbarn/movecheck-go/internal/errors"
	"github.com/lgbarn/movecheck-go/internal/testutil"
)

func TestNew(t *testing.T) {
	s := New(chess.LayoutStandard)
	if s.Turn() != chess.White {
		t.Errorf("Turn() = %v; want White", s.Turn())
	}
	if s.Ply() != 0 {
		t.Errorf("Ply() = %d; want 0", s.Ply())
	}
	testutil.AssertBoard(t, s.Board(), chess.NewBoard(chess.LayoutStandard))

	if n := New(chess.LayoutEmpty).Board().Count(chess.White); n != 0 {
		t.Errorf("empty layout has %d white pieces", n)
	}
}

func TestFromFEN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantTurn chess.Colour
		wantErr  bool
	}{
		{"placement only", chess.StandardPlacement, chess.White, false},
		{"white to move", chess.StandardPlacement + " w KQkq - 0 1", chess.White, false},
		{"black to move", chess.StandardPlacement + " b - - 0 1", chess.Black, false},
		{"bad side", chess.StandardPlacement + " x", chess.White, true},
		{"bad placement", "8/8/8 w", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromFEN(tt.fen)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
				return
			}
			testutil.AssertNoError(t, err)
			if s.Turn() != tt.wantTurn {
				t.Errorf("Turn() = %v; want %v", s.Turn(), tt.wantTurn)
			}
		})
	}
}

func TestPlay_AlternatesTurns(t *testing.T) {
	s := New(chess.LayoutStandard)
	testutil.AssertNoError(t, s.PlayText("e2e4"))
	if s.Turn() != chess.Black || s.Ply() != 1 {
		t.Fatalf("after e2e4: Turn() = %v, Ply() = %d", s.Turn(), s.Ply())
	}

	err := s.PlayText("d2d4")
	testutil.AssertErrorIs(t, err, chesserrors.ErrWrongTurn)
	var moveErr *chesserrors.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("error %T is not a *MoveError", err)
	}
	if moveErr.Ply != 2 || moveErr.MoveText != "d2d4" {
		t.Errorf("MoveError = %+v; want ply 2, move d2d4", moveErr)
	}
	if s.Turn() != chess.Black || s.Ply() != 1 {
		t.Error("a rejected move must not change the session")
	}

	testutil.AssertNoError(t, s.PlayText("e7e5"))
	if s.Turn() != chess.White {
		t.Errorf("Turn() = %v; want White", s.Turn())
	}
	testutil.AssertEqual(t, moveTexts(s.History()), []string{"e2e4", "e7e5"})
}

func TestPlay_IllegalMoveKeepsBoard(t *testing.T) {
	s := New(chess.LayoutStandard)
	before := s.Board()

	err := s.PlayText("e2e5")
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	var reason engine.Reason
	if !errors.As(err, &reason) || reason != engine.InvalidPawnMove {
		t.Errorf("reason = %v; want invalid-pawn-move", reason)
	}
	testutil.AssertBoard(t, s.Board(), before)
	if s.Turn() != chess.White {
		t.Error("turn changed after an illegal move")
	}

	err = s.PlayText("e3e4")
	if !errors.As(err, &reason) || reason != engine.NoPieceAtSource {
		t.Errorf("reason = %v; want no-piece-at-source", reason)
	}
}

func TestPlayText_Malformed(t *testing.T) {
	s := New(chess.LayoutStandard)
	err := s.PlayText("e2e9")
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidRank)
	testutil.AssertContains(t, err.Error(), `move "e2e9"`)

	var parseErr *chesserrors.ParseError
	if !errors.As(err, &parseErr) || parseErr.Column != 4 {
		t.Errorf("ParseError = %+v; want column 4", parseErr)
	}
}

func TestBoard_IsACopy(t *testing.T) {
	s := New(chess.LayoutStandard)
	b := s.Board()
	b.Clear()
	if s.Board().Count(chess.White) != 16 {
		t.Error("mutating Board() changed the session")
	}
}

func TestLegalMovesAndStuck(t *testing.T) {
	s, err := FromFEN("8/8/8/8/4n3/4P3/8/8 w")
	testutil.AssertNoError(t, err)
	if !s.Stuck() {
		t.Errorf("white should be stuck, has %v", s.LegalMoves())
	}

	s, err = FromFEN("8/8/8/8/4n3/4P3/8/8 b")
	testutil.AssertNoError(t, err)
	if s.Stuck() || len(s.LegalMoves()) != 8 {
		t.Errorf("black knight moves = %v; want 8", s.LegalMoves())
	}
}

// TestReplay_MatchesReferenceGame plays quiet games through both the session
// and an independent implementation and compares the final placements.
func TestReplay_MatchesReferenceGame(t *testing.T) {
	games := map[string]string{
		"italian":  "e2e4 e7e5 g1f3 b8c6 f1c4 f8c5 d2d3 g8f6 b1c3 d7d6",
		"queens":   "d2d4 d7d5 c2c4 e7e6 b1c3 g8f6 c1g5 f8e7",
		"scandi":   "e2e4 d7d5 e4d5 d8d5 b1c3 d5a5 d2d4 c7c6 g1f3 c8f5",
		"sicilian": "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6",
	}

	for name, line := range games {
		t.Run(name, func(t *testing.T) {
			ref := notnil.NewGame(notnil.UseNotation(notnil.UCINotation{}))
			s := New(chess.LayoutStandard)
			for _, text := range strings.Fields(line) {
				if err := ref.MoveStr(text); err != nil {
					t.Fatalf("reference rejected %s: %v", text, err)
				}
				if err := s.PlayText(text); err != nil {
					t.Fatalf("session rejected %s: %v", text, err)
				}
			}

			want := ref.Position().Board().String()
			if diff := cmp.Diff(want, s.Board().Placement()); diff != "" {
				t.Errorf("placement mismatch (-reference +got):\n%s", diff)
			}
		})
	}
}

func moveTexts(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}
