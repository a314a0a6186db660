package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/suite"
)

// JSONMove represents a play-mode move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Colour    string `json:"colour"` // "white" or "black"
	Move      string `json:"move"`
	Legal     bool   `json:"legal"`
	Reason    string `json:"reason,omitempty"`
	Error     string `json:"error,omitempty"`
	Placement string `json:"placement,omitempty"`
}

// JSONCase represents a suite outcome in JSON format.
type JSONCase struct {
	Line      int    `json:"line"`
	Setup     string `json:"setup"`
	Move      string `json:"move"`
	Expect    string `json:"expect"`
	Got       string `json:"got"`
	Status    string `json:"status"`
	Placement string `json:"placement"`
}

// JSONSummary holds the totals of a suite run.
type JSONSummary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// JSONOutput is the document written on Close.
type JSONOutput struct {
	Moves   []JSONMove   `json:"moves,omitempty"`
	Cases   []JSONCase   `json:"cases,omitempty"`
	Summary *JSONSummary `json:"summary,omitempty"`
}

// JSONWriter buffers results and writes them as a single JSON document
// on Close.
type JSONWriter struct {
	w   io.Writer
	doc JSONOutput
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// MoveToJSON converts a move record to JSON format.
func MoveToJSON(rec MoveRecord) JSONMove {
	jm := JSONMove{
		Ply:    rec.Ply,
		Colour: strings.ToLower(rec.Colour.String()),
		Move:   rec.Text,
		Legal:  rec.Legal(),
		Reason: rec.Reason,
	}
	if rec.Err != nil {
		jm.Error = rec.Err.Error()
	}
	if rec.Board != nil {
		jm.Placement = rec.Board.Placement()
	}
	return jm
}

// OutcomeToJSON converts a suite outcome to JSON format.
func OutcomeToJSON(o suite.Outcome) JSONCase {
	return JSONCase{
		Line:      o.Case.Line,
		Setup:     o.Case.Setup,
		Move:      o.Case.Move.String(),
		Expect:    o.Case.ExpectString(),
		Got:       o.GotString(),
		Status:    o.Status.String(),
		Placement: o.Board.Placement(),
	}
}

// WriteMove buffers a move.
func (jw *JSONWriter) WriteMove(rec MoveRecord) error {
	jw.doc.Moves = append(jw.doc.Moves, MoveToJSON(rec))
	return nil
}

// WriteOutcome buffers a suite outcome.
func (jw *JSONWriter) WriteOutcome(o suite.Outcome) error {
	jw.doc.Cases = append(jw.doc.Cases, OutcomeToJSON(o))
	return nil
}

// WriteSummary records the suite totals.
func (jw *JSONWriter) WriteSummary(s suite.Summary) error {
	jw.doc.Summary = &JSONSummary{Total: s.Total, Passed: s.Passed, Failed: s.Failed, Skipped: s.Skipped}
	return nil
}

// Close writes the buffered document and clears it.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&jw.doc)
	jw.doc = JSONOutput{}
	return err
}
