package algo

import "github.com/san-kum/sortviz/internal/seq"

type InsertionSort struct {
	base
	i        int // next index to insert
	k        int // current position of the element being inserted
	current  int
	shifting bool
}

func NewInsertion(s *seq.Sequence, dir Direction) (*InsertionSort, error) {
	b, err := newBase(s, dir)
	if err != nil {
		return nil, err
	}
	return &InsertionSort{base: b, i: 1}, nil
}

func (*InsertionSort) ID() ID { return Insertion }

func (x *InsertionSort) Advance() (Step, error) { return x.advance(x.next) }

// next moves the element being inserted one slot to the left. The shift
// and the placement of current happen in the same step, so the values stay
// a permutation between steps.
func (x *InsertionSort) next() (Step, bool) {
	for {
		if !x.shifting {
			if x.i >= x.seq.Len() {
				return Step{}, false
			}
			x.k, x.current = x.i, x.seq.At(x.i)
			x.i++
			x.shifting = true
		}

		if x.k > 0 && x.dir.Before(x.current, x.seq.At(x.k-1)) {
			x.seq.Set(x.k, x.seq.At(x.k-1))
			x.k--
			x.seq.Set(x.k, x.current)
			return pair(x.k, x.k+1), true
		}
		x.shifting = false
	}
}
