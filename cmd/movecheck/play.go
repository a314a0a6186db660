package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/engine"
	chesserrors "github.com/lgbarn/movecheck-go/internal/errors"
	"github.com/lgbarn/movecheck-go/internal/output"
	"github.com/lgbarn/movecheck-go/internal/session"
)

// Play-mode commands accepted in place of a move.
const (
	cmdBoard = "board"
	cmdMoves = "moves"
	cmdQuit  = "quit"
)

// Reason names for failures the engine does not report.
const (
	reasonWrongTurn = "wrong-turn"
	reasonMalformed = "malformed-move"
)

// playStats counts play-mode moves.
type playStats struct {
	accepted int
	rejected int
}

// runPlayMode plays moves from args, or from stdin when args is empty.
func runPlayMode(cfg *config.Config, s *session.Session, w output.ResultWriter, args []string, stdin io.Reader) int {
	var stats playStats
	var err error
	if len(args) > 0 {
		_, err = playTokens(cfg, s, w, args, &stats)
	} else {
		err = playReader(cfg, s, w, stdin, &stats)
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return exitUsage
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d move(s) accepted, %d rejected.\n", stats.accepted, stats.rejected)
	}
	if stats.rejected > 0 {
		return exitFailure
	}
	return exitOK
}

// playReader plays whitespace-separated tokens line by line; '#' starts a
// comment that runs to the end of the line.
func playReader(cfg *config.Config, s *session.Session, w output.ResultWriter, r io.Reader, stats *playStats) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		quit, err := playTokens(cfg, s, w, strings.Fields(line), stats)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// playTokens handles each token as a command or a move. It reports whether
// a quit command was seen.
func playTokens(cfg *config.Config, s *session.Session, w output.ResultWriter, tokens []string, stats *playStats) (bool, error) {
	for _, tok := range tokens {
		switch strings.ToLower(tok) {
		case cmdQuit:
			cfg.Logf(2, "quit after %d ply", s.Ply())
			return true, nil
		case cmdBoard:
			if err := writeBoard(cfg, s); err != nil {
				return false, err
			}
			continue
		case cmdMoves:
			if err := writeLegalMoves(cfg, s); err != nil {
				return false, err
			}
			continue
		}

		rec := output.MoveRecord{Ply: s.Ply() + 1, Colour: s.Turn(), Text: tok}
		rec.Err = s.PlayText(tok)
		rec.Reason = reasonName(rec.Err)
		rec.Board = s.Board()
		if rec.Legal() {
			stats.accepted++
			cfg.Logf(2, "ply %d: %s accepted", rec.Ply, tok)
		} else {
			stats.rejected++
			cfg.Logf(2, "ply %d: %s rejected: %v", rec.Ply, tok, rec.Err)
		}
		if err := w.WriteMove(rec); err != nil {
			return false, err
		}
	}
	return false, nil
}

// reasonName names the rule a play-mode error broke, "" for nil.
func reasonName(err error) string {
	var r engine.Reason
	switch {
	case err == nil:
		return ""
	case errors.As(err, &r):
		return r.String()
	case errors.Is(err, chesserrors.ErrWrongTurn):
		return reasonWrongTurn
	default:
		return reasonMalformed
	}
}

// writeBoard prints the current board. JSON output carries the placement
// with every move instead.
func writeBoard(cfg *config.Config, s *session.Session) error {
	if cfg.Render.JSONFormat {
		cfg.Logf(1, "board command ignored with JSON output")
		return nil
	}
	_, err := io.WriteString(cfg.OutputFile, output.RenderBoard(s.Board(), &cfg.Render))
	return err
}

// writeLegalMoves prints the legal moves for the side to move.
func writeLegalMoves(cfg *config.Config, s *session.Session) error {
	if cfg.Render.JSONFormat {
		cfg.Logf(1, "moves command ignored with JSON output")
		return nil
	}
	moves := s.LegalMoves()
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	_, err := fmt.Fprintf(cfg.OutputFile, "%s to move, %d legal: %s\n", s.Turn(), len(moves), strings.Join(texts, " "))
	return err
}
