package algo

import (
	"fmt"
	"slices"

	"github.com/san-kum/sortviz/internal/seq"
)

// BucketSort distributes every value into len(seq) buckets when it is
// built; only the write-back of the sorted buckets is stepped.
type BucketSort struct {
	base
	buckets [][]int
	b, e    int // bucket and element being written
	k       int // write cursor
}

func NewBucket(s *seq.Sequence, dir Direction) (*BucketSort, error) {
	b, err := newBase(s, dir)
	if err != nil {
		return nil, err
	}

	x := &BucketSort{base: b}
	n := s.Len()
	if n == 1 {
		return x, nil
	}
	if s.Max() < n {
		return nil, fmt.Errorf("%w: max %d, length %d", ErrDegenerateBucketing, s.Max(), n)
	}

	size := s.Max() / n
	x.buckets = make([][]int, n)
	for i := 0; i < n; i++ {
		v := s.At(i)
		j := v / size
		if j >= n {
			j = n - 1
		} else if j < 0 {
			j = 0
		}
		x.buckets[j] = append(x.buckets[j], v)
	}

	for _, bucket := range x.buckets {
		slices.Sort(bucket)
		if dir == Descending {
			slices.Reverse(bucket)
		}
	}
	if dir == Descending {
		slices.Reverse(x.buckets)
	}
	return x, nil
}

func (*BucketSort) ID() ID { return Bucket }

func (x *BucketSort) Advance() (Step, error) { return x.advance(x.next) }

func (x *BucketSort) next() (Step, bool) {
	for x.b < len(x.buckets) {
		bucket := x.buckets[x.b]
		if x.e < len(bucket) {
			k := x.k
			x.seq.Set(k, bucket[x.e])
			x.e++
			x.k++
			return single(k), true
		}
		x.b++
		x.e = 0
	}
	return Step{}, false
}
