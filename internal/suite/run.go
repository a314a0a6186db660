package suite

import (
	"errors"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/engine"
	"github.com/lgbarn/movecheck-go/internal/worker"
)

// Status classifies an Outcome.
type Status int

const (
	Passed Status = iota
	Failed
	Skipped // not run because an earlier failure stopped the suite
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "pass"
	case Failed:
		return "fail"
	default:
		return "skip"
	}
}

// Outcome is the result of running one Case.
type Outcome struct {
	Case   Case
	Got    engine.Reason // 0 when the move was legal
	Status Status
	Board  chess.Board // Board after the move; unchanged when rejected
}

// GotString returns the observed result in suite notation.
func (o Outcome) GotString() string {
	return reasonName(o.Got)
}

// Options controls Run.
type Options struct {
	Workers  int  // Number of worker goroutines, at least 1
	FailFast bool // Stop at the first failing case
}

// Summary counts outcomes by status.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// Summarize counts outcomes by status.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch o.Status {
		case Passed:
			s.Passed++
		case Failed:
			s.Failed++
		case Skipped:
			s.Skipped++
		}
	}
	return s
}

// OK reports whether every case passed.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Skipped == 0
}

// Run checks every case, each on its own board, and returns the outcomes
// in input order. Results are consumed by a single goroutine; with
// FailFast the pool is stopped at the first failure and any case it did
// not process is reported as Skipped.
func Run(cases []Case, opts Options) []Outcome {
	outcomes := make([]Outcome, len(cases))
	for i, c := range cases {
		outcomes[i] = Outcome{Case: c, Status: Skipped, Board: c.Board}
	}
	if len(cases) == 0 {
		return outcomes
	}

	bufferSize := len(cases)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(worker.ApplyMoves(),
		worker.WithWorkers(opts.Workers),
		worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i, c := range cases {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Index: i, Board: c.Board, Move: c.Move})
		}
		pool.Close()
	}()

	for result := range pool.Results() {
		o := &outcomes[result.Index]
		o.Board = result.Board
		o.Got = reasonOf(result.Err)
		o.Status = Passed
		if o.Got != o.Case.Expect {
			o.Status = Failed
			if opts.FailFast {
				pool.Stop()
			}
		}
	}
	return outcomes
}

// reasonOf maps an engine result onto a Reason, 0 for nil.
func reasonOf(err error) engine.Reason {
	var r engine.Reason
	if errors.As(err, &r) {
		return r
	}
	return 0
}
