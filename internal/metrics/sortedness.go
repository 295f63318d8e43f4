package metrics

import (
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/seq"
)

// Sortedness is the fraction of adjacent pairs already in order. Like
// Disorder it reads zero until the first observed step.
type Sortedness struct {
	name     string
	dir      func() algo.Direction
	observed bool
	ordered  int
	pairs    int
}

func NewSortedness(dir func() algo.Direction) *Sortedness {
	return &Sortedness{
		name: "sortedness",
		dir:  dir,
	}
}

func (s *Sortedness) Name() string {
	return s.name
}

func (s *Sortedness) Observe(sq *seq.Sequence, st algo.Step) {
	s.ordered, s.pairs = AdjacentOrder(sq.Values(), s.dir())
	s.observed = true
}

func (s *Sortedness) Value() float64 {
	if !s.observed {
		return 0
	}
	if s.pairs == 0 {
		return 1.0
	}
	return float64(s.ordered) / float64(s.pairs)
}

func (s *Sortedness) Reset() {
	s.observed = false
	s.ordered = 0
	s.pairs = 0
}

// AdjacentOrder returns how many of the len(values)-1 adjacent pairs are in
// order for dir, and the number of pairs.
func AdjacentOrder(values []int, dir algo.Direction) (ordered, pairs int) {
	for i := 0; i+1 < len(values); i++ {
		pairs++
		if !dir.Before(values[i+1], values[i]) {
			ordered++
		}
	}
	return ordered, pairs
}
