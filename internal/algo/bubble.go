package algo

import "github.com/san-kum/sortviz/internal/seq"

// BubbleSort emits one step per adjacent swap. Pairs already in order,
// equal values included, are passed over without a step.
type BubbleSort struct {
	base
	i, j int
}

func NewBubble(s *seq.Sequence, dir Direction) (*BubbleSort, error) {
	b, err := newBase(s, dir)
	if err != nil {
		return nil, err
	}
	return &BubbleSort{base: b}, nil
}

func (*BubbleSort) ID() ID { return Bubble }

func (b *BubbleSort) Advance() (Step, error) { return b.advance(b.next) }

func (b *BubbleSort) next() (Step, bool) {
	n := b.seq.Len()
	for b.i < n-1 {
		for b.j < n-1-b.i {
			j := b.j
			b.j++
			if b.dir.Before(b.seq.At(j+1), b.seq.At(j)) {
				b.seq.Swap(j, j+1)
				return pair(j, j+1), true
			}
		}
		b.i++
		b.j = 0
	}
	return Step{}, false
}
