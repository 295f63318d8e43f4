package algo

import "github.com/san-kum/sortviz/internal/seq"

type mergePhase int

const (
	phaseSplit mergePhase = iota // push the left half
	phaseRight                   // left half sorted, push the right half
	phaseMerge                   // both halves sorted, merge them
)

type mergeFrame struct {
	left, right, mid int
	phase            mergePhase
}

// mergeRun is an in-progress merge of scratch[l..lEnd] and scratch[r..rEnd]
// into the sequence starting at k.
type mergeRun struct {
	l, lEnd int
	r, rEnd int
	k       int
}

// MergeSort walks the top-down recursion with an explicit frame stack so it
// can suspend between any two writes of any merge.
type MergeSort struct {
	base
	stack   []mergeFrame
	scratch []int
	run     mergeRun
	merging bool
}

func NewMerge(s *seq.Sequence, dir Direction) (*MergeSort, error) {
	b, err := newBase(s, dir)
	if err != nil {
		return nil, err
	}
	n := s.Len()
	return &MergeSort{
		base:    b,
		stack:   []mergeFrame{{left: 0, right: n - 1}},
		scratch: make([]int, n),
	}, nil
}

func (*MergeSort) ID() ID { return Merge }

func (m *MergeSort) Advance() (Step, error) { return m.advance(m.next) }

func (m *MergeSort) next() (Step, bool) {
	for {
		if m.merging {
			if st, ok := m.write(); ok {
				return st, true
			}
			m.merging = false
		}

		if len(m.stack) == 0 {
			return Step{}, false
		}

		top := len(m.stack) - 1
		f := m.stack[top]
		switch f.phase {
		case phaseSplit:
			if f.right <= f.left {
				m.stack = m.stack[:top]
				continue
			}
			mid := (f.left + f.right) / 2
			m.stack[top].mid = mid
			m.stack[top].phase = phaseRight
			m.stack = append(m.stack, mergeFrame{left: f.left, right: mid})
		case phaseRight:
			m.stack[top].phase = phaseMerge
			m.stack = append(m.stack, mergeFrame{left: f.mid + 1, right: f.right})
		case phaseMerge:
			m.stack = m.stack[:top]
			m.begin(f.left, f.mid, f.right)
		}
	}
}

func (m *MergeSort) begin(left, mid, right int) {
	for i := left; i <= right; i++ {
		m.scratch[i] = m.seq.At(i)
	}
	m.run = mergeRun{l: left, lEnd: mid, r: mid + 1, rEnd: right, k: left}
	m.merging = true
}

// write places one element. The left copy wins ties.
func (m *MergeSort) write() (Step, bool) {
	w := &m.run
	if w.k > w.rEnd {
		return Step{}, false
	}

	var v int
	if w.l <= w.lEnd && (w.r > w.rEnd || !m.dir.Before(m.scratch[w.r], m.scratch[w.l])) {
		v = m.scratch[w.l]
		w.l++
	} else {
		v = m.scratch[w.r]
		w.r++
	}

	k := w.k
	m.seq.Set(k, v)
	w.k++
	return single(k), true
}
