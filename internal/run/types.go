package run

import (
	"errors"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/seq"
)

// ErrAlreadyRunning indicates Start was called while a run is in flight.
var ErrAlreadyRunning = errors.New("run: already running")

// RunError wraps a failure with the algorithm and step it happened at.
type RunError struct {
	Algorithm algo.ID
	Step      int
	Wrapped   error
}

func (e *RunError) Error() string {
	return e.Algorithm.String() + ": " + e.Wrapped.Error()
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}

// Observer is notified synchronously from AdvanceOne.
type Observer interface {
	OnStep(id algo.ID, st algo.Step)
	OnComplete(stats Stats)
}

// Metric accumulates a value over the steps of one run. Metrics are reset
// on Start.
type Metric interface {
	Name() string
	Observe(s *seq.Sequence, st algo.Step)
	Value() float64
	Reset()
}

type Stats struct {
	Algorithm algo.ID
	Direction algo.Direction
	Steps     int
	Metrics   map[string]float64
}
