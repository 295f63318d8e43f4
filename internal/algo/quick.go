package algo

import "github.com/san-kum/sortviz/internal/seq"

type span struct {
	left, right int
}

// partition is a Lomuto pass over [left, right] with the pivot taken from
// the rightmost slot. i is the end of the "before pivot" region.
type partition struct {
	left, right int
	pivot       int
	i, j        int
}

type QuickSort struct {
	base
	stack  []span
	part   partition
	active bool
}

func NewQuick(s *seq.Sequence, dir Direction) (*QuickSort, error) {
	b, err := newBase(s, dir)
	if err != nil {
		return nil, err
	}
	q := &QuickSort{base: b}
	q.push(0, s.Len()-1)
	return q, nil
}

func (*QuickSort) ID() ID { return Quick }

func (q *QuickSort) Advance() (Step, error) { return q.advance(q.next) }

// push skips ranges with fewer than two elements so the stack only holds
// real work.
func (q *QuickSort) push(left, right int) {
	if left < right {
		q.stack = append(q.stack, span{left: left, right: right})
	}
}

func (q *QuickSort) next() (Step, bool) {
	for {
		if q.active {
			return q.partitionStep(), true
		}

		if len(q.stack) == 0 {
			return Step{}, false
		}

		r := q.stack[len(q.stack)-1]
		q.stack = q.stack[:len(q.stack)-1]
		q.part = partition{
			left:  r.left,
			right: r.right,
			pivot: q.seq.At(r.right),
			i:     r.left - 1,
			j:     r.left,
		}
		q.active = true
	}
}

// partitionStep always mutates: either a swap into the "before" region or,
// once the scan is over, the pivot placement that ends the partition.
func (q *QuickSort) partitionStep() Step {
	p := &q.part
	for p.j < p.right {
		j := p.j
		p.j++
		if q.dir.Before(q.seq.At(j), p.pivot) {
			p.i++
			q.seq.Swap(p.i, j)
			return pair(p.i, j)
		}
	}

	mid := p.i + 1
	q.seq.Swap(mid, p.right)
	q.active = false

	// left range is popped first
	q.push(mid+1, p.right)
	q.push(p.left, mid-1)
	return pair(mid, p.right)
}
