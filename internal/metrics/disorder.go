package metrics

import (
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/seq"
)

// Disorder tracks the number of inversions left relative to the run's
// direction. It reads zero until the first observed step.
type Disorder struct {
	name    string
	dir     func() algo.Direction
	current int
	peak    int
}

// NewDisorder reads the direction from dir on every observation, so it
// follows whatever the controller is set to.
func NewDisorder(dir func() algo.Direction) *Disorder {
	return &Disorder{
		name: "disorder",
		dir:  dir,
	}
}

func (d *Disorder) Name() string { return d.name }

func (d *Disorder) Observe(s *seq.Sequence, st algo.Step) {
	d.current = Inversions(s.Values(), d.dir())
	if d.current > d.peak {
		d.peak = d.current
	}
}

func (d *Disorder) Value() float64 { return float64(d.current) }

// Peak is the largest inversion count seen since the last reset.
func (d *Disorder) Peak() int { return d.peak }

func (d *Disorder) Reset() {
	d.current = 0
	d.peak = 0
}

// Inversions counts pairs i < j where values[j] belongs before values[i].
// values is left untouched.
func Inversions(values []int, dir algo.Direction) int {
	if len(values) < 2 {
		return 0
	}
	work := make([]int, len(values))
	copy(work, values)
	buf := make([]int, len(values))
	return countInversions(work, buf, dir)
}

func countInversions(v, buf []int, dir algo.Direction) int {
	n := len(v)
	if n < 2 {
		return 0
	}
	mid := n / 2
	count := countInversions(v[:mid], buf[:mid], dir) + countInversions(v[mid:], buf[mid:], dir)

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if dir.Before(v[j], v[i]) {
			buf[k] = v[j]
			count += mid - i
			j++
		} else {
			buf[k] = v[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], v[i:mid])
	copy(buf[k:], v[j:])
	copy(v, buf[:n])
	return count
}
