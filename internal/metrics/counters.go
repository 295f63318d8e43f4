package metrics

import (
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/seq"
)

// StepCount counts every mutation.
type StepCount struct {
	name  string
	count int
}

func NewStepCount() *StepCount {
	return &StepCount{name: "steps"}
}

func (c *StepCount) Name() string { return c.name }

func (c *StepCount) Observe(s *seq.Sequence, st algo.Step) {
	c.count++
}

func (c *StepCount) Value() float64 { return float64(c.count) }

func (c *StepCount) Reset() { c.count = 0 }

// Swaps counts steps that touched two positions: bubble and insertion
// exchanges and quick sort partition swaps.
type Swaps struct {
	name  string
	count int
}

func NewSwaps() *Swaps {
	return &Swaps{name: "swaps"}
}

func (c *Swaps) Name() string { return c.name }

func (c *Swaps) Observe(s *seq.Sequence, st algo.Step) {
	if len(st.Touched) == 2 {
		c.count++
	}
}

func (c *Swaps) Value() float64 { return float64(c.count) }

func (c *Swaps) Reset() { c.count = 0 }

// Writes counts single-position overwrites, as done by merge and bucket sort.
type Writes struct {
	name  string
	count int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (c *Writes) Name() string { return c.name }

func (c *Writes) Observe(s *seq.Sequence, st algo.Step) {
	if len(st.Touched) == 1 {
		c.count++
	}
}

func (c *Writes) Value() float64 { return float64(c.count) }

func (c *Writes) Reset() { c.count = 0 }
