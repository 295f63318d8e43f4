package algo

import "github.com/san-kum/sortviz/internal/seq"

// base carries what every variant shares: the sequence it mutates, the
// direction, and the exhaustion flag that turns a finished run into
// ErrDone then ErrExhausted.
type base struct {
	seq  *seq.Sequence
	dir  Direction
	done bool
}

func newBase(s *seq.Sequence, dir Direction) (base, error) {
	if s == nil || s.Len() == 0 {
		return base{}, seq.ErrInvalidInput
	}
	return base{seq: s, dir: dir}, nil
}

func (b *base) advance(next func() (Step, bool)) (Step, error) {
	if b.done {
		return Step{}, ErrExhausted
	}
	st, ok := next()
	if !ok {
		b.done = true
		return Step{}, ErrDone
	}
	return st, nil
}
