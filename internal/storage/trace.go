package storage

import (
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/run"
	"github.com/san-kum/sortviz/internal/seq"
)

// TraceStep is one recorded mutation. Primary and Secondary are -1 when the
// step did not touch an index in that role.
type TraceStep struct {
	Step      int `json:"step"`
	Primary   int `json:"primary"`
	Secondary int `json:"secondary"`
	Disorder  int `json:"disorder"`
}

// Trace is a run.Observer that records every step of a run.
type Trace struct {
	seq   *seq.Sequence
	dir   func() algo.Direction
	steps []TraceStep
	done  *run.Stats
}

func NewTrace(s *seq.Sequence, dir func() algo.Direction) *Trace {
	return &Trace{seq: s, dir: dir, steps: make([]TraceStep, 0, 256)}
}

func (t *Trace) OnStep(id algo.ID, st algo.Step) {
	rec := TraceStep{
		Step:      len(t.steps) + 1,
		Primary:   -1,
		Secondary: -1,
		Disorder:  metrics.Inversions(t.seq.Values(), t.dir()),
	}
	for i, r := range st.Touched {
		if r == algo.Primary {
			rec.Primary = i
		} else {
			rec.Secondary = i
		}
	}
	t.steps = append(t.steps, rec)
}

func (t *Trace) OnComplete(stats run.Stats) {
	t.done = &stats
}

func (t *Trace) Steps() []TraceStep { return t.steps }

// Completed reports whether the traced run finished.
func (t *Trace) Completed() bool { return t.done != nil }

func (t *Trace) Reset() {
	t.steps = t.steps[:0]
	t.done = nil
}
