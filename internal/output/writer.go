package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/suite"
)

// MoveRecord describes one move attempted in play mode.
type MoveRecord struct {
	Ply    int          // 1-based ply the move was attempted at
	Colour chess.Colour // Side to move when it was attempted
	Text   string       // Move as entered
	Err    error        // nil when the move was accepted
	Reason string       // Rejection reason name, empty when accepted or unparsable
	Board  *chess.Board // Board after the attempt
}

// Legal reports whether the move was accepted.
func (r MoveRecord) Legal() bool {
	return r.Err == nil
}

// ResultWriter is the interface for writing results to output.
// Different implementations handle different formats (text, JSON).
type ResultWriter interface {
	// WriteMove writes the result of one play-mode move.
	WriteMove(rec MoveRecord) error

	// WriteOutcome writes the result of one suite case.
	WriteOutcome(o suite.Outcome) error

	// WriteSummary writes the totals of a suite run.
	WriteSummary(s suite.Summary) error

	// Close writes any pending output.
	Close() error
}

// NewResultWriter returns the writer selected by cfg.
func NewResultWriter(w io.Writer, cfg *config.RenderConfig) ResultWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one line per result, optionally followed by the board.
type TextWriter struct {
	w    io.Writer
	cfg  *config.RenderConfig
	good *color.Color
	bad  *color.Color
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.RenderConfig) *TextWriter {
	tw := &TextWriter{
		w:    w,
		cfg:  cfg,
		good: color.New(color.FgGreen),
		bad:  color.New(color.FgRed, color.Bold),
	}
	if cfg.Colour {
		tw.good.EnableColor()
		tw.bad.EnableColor()
	} else {
		tw.good.DisableColor()
		tw.bad.DisableColor()
	}
	return tw
}

// WriteMove writes e.g. "1. White e2e4: ok" or
// "2. Black e7e4: illegal: ...".
func (tw *TextWriter) WriteMove(rec MoveRecord) error {
	status := tw.good.Sprint("ok")
	if !rec.Legal() {
		status = tw.bad.Sprint("illegal") + ": " + rec.Err.Error()
	}
	if _, err := fmt.Fprintf(tw.w, "%d. %s %s: %s\n", rec.Ply, rec.Colour, rec.Text, status); err != nil {
		return err
	}
	if tw.cfg.ShowBoard && rec.Legal() && rec.Board != nil {
		_, err := io.WriteString(tw.w, RenderBoard(rec.Board, tw.cfg))
		return err
	}
	return nil
}

// WriteOutcome writes e.g. "PASS line 3: standard e2e5 invalid-pawn-move".
func (tw *TextWriter) WriteOutcome(o suite.Outcome) error {
	c := o.Case
	var err error
	switch o.Status {
	case suite.Passed:
		_, err = fmt.Fprintf(tw.w, "%s line %d: %s %s %s\n",
			tw.good.Sprint("PASS"), c.Line, c.Setup, c.Move, c.ExpectString())
	case suite.Failed:
		_, err = fmt.Fprintf(tw.w, "%s line %d: %s %s expected %s, got %s\n",
			tw.bad.Sprint("FAIL"), c.Line, c.Setup, c.Move, c.ExpectString(), o.GotString())
	default:
		_, err = fmt.Fprintf(tw.w, "SKIP line %d: %s %s\n", c.Line, c.Setup, c.Move)
	}
	return err
}

// WriteSummary writes the totals line.
func (tw *TextWriter) WriteSummary(s suite.Summary) error {
	_, err := fmt.Fprintf(tw.w, "%d cases: %d passed, %d failed, %d skipped\n",
		s.Total, s.Passed, s.Failed, s.Skipped)
	return err
}

// Close closes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Close() error {
	return nil
}
