package algo_test

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/seq"
)

var viewport = seq.Viewport{Width: 800, Height: 600, SidePad: 100, TopPad: 150}

func newSeq(values []int) *seq.Sequence {
	s := seq.New(viewport)
	Expect(s.Reset(values)).To(Succeed())
	return s
}

func sortedCopy(in []int, dir algo.Direction) []int {
	out := slices.Clone(in)
	slices.Sort(out)
	if dir == algo.Descending {
		slices.Reverse(out)
	}
	return out
}

func inversions(in []int, dir algo.Direction) int {
	n := 0
	for i := range in {
		for j := i + 1; j < len(in); j++ {
			if dir.Before(in[j], in[i]) {
				n++
			}
		}
	}
	return n
}

// drain advances a until ErrDone, handing every step to check, and returns
// the number of steps taken.
func drain(a algo.Algorithm, check func(algo.Step)) int {
	steps := 0
	for limit := 0; limit < 1_000_000; limit++ {
		st, err := a.Advance()
		if errors.Is(err, algo.ErrDone) {
			return steps
		}
		Expect(err).NotTo(HaveOccurred())
		steps++
		if check != nil {
			check(st)
		}
	}
	Fail("algorithm did not finish")
	return steps
}

func randomInput(seed int64, n, max int) []int {
	r := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(max + 1)
	}
	out[r.Intn(n)] = max
	return out
}

func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}

func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

var inputs = map[string][]int{
	"scenario":   {5, 3, 1, 4, 2},
	"random":     randomInput(42, 50, 100),
	"duplicates": {7, 3, 7, 3, 7, 3, 9, 9, 0, 12},
	"reversed":   descending(20),
	"sorted":     ascending(10),
	"negatives":  {-5, 12, 0, -3, 8, 8, 1, -9},
	"pair":       {2, 1},
}

func sortEntries() []interface{} {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	slices.Sort(names)

	var entries []interface{}
	for _, id := range algo.IDs() {
		for _, dir := range []algo.Direction{algo.Ascending, algo.Descending} {
			for _, name := range names {
				entries = append(entries, Entry(fmt.Sprintf("%s %s %s", id, dir, name), id, dir, inputs[name]))
			}
		}
	}
	return entries
}

// Bubble, insertion and quick swap in place; merge and bucket overwrite
// slots from a copy and only restore the multiset once finished.
func swapsInPlace(id algo.ID) bool {
	return id == algo.Bubble || id == algo.Insertion || id == algo.Quick
}

var _ = Describe("Steppable algorithms", func() {
	registry := algo.NewRegistry()

	sortsToCompletion := func(id algo.ID, dir algo.Direction, input []int) {
		s := newSeq(input)
		a, err := registry.New(id, s, dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.ID()).To(Equal(id))

		want := sortedCopy(input, dir)
		drain(a, func(st algo.Step) {
			Expect(st.IsZero()).To(BeFalse())
			for _, i := range st.Indices() {
				Expect(i).To(BeNumerically(">=", 0))
				Expect(i).To(BeNumerically("<", s.Len()))
			}
			if swapsInPlace(id) {
				Expect(sortedCopy(s.Values(), dir)).To(Equal(want))
			}
		})

		Expect(s.Values()).To(Equal(want))
		Expect(s.Min()).To(Equal(slices.Min(input)))
		Expect(s.Max()).To(Equal(slices.Max(input)))
	}

	DescribeTable("sort to completion", append([]interface{}{sortsToCompletion}, sortEntries()...)...)

	DescribeTable("exhaustion",
		func(id algo.ID) {
			a, err := registry.New(id, newSeq([]int{5, 3, 1, 4, 2}), algo.Ascending)
			Expect(err).NotTo(HaveOccurred())
			drain(a, nil)

			_, err = a.Advance()
			Expect(err).To(MatchError(algo.ErrExhausted))
			_, err = a.Advance()
			Expect(err).To(MatchError(algo.ErrExhausted))
		},
		Entry("bubble", algo.Bubble),
		Entry("insertion", algo.Insertion),
		Entry("merge", algo.Merge),
		Entry("quick", algo.Quick),
		Entry("bucket", algo.Bucket),
	)

	DescribeTable("single element",
		func(id algo.ID) {
			s := newSeq([]int{10})
			a, err := registry.New(id, s, algo.Descending)
			Expect(err).NotTo(HaveOccurred())

			_, err = a.Advance()
			Expect(err).To(MatchError(algo.ErrDone))
			Expect(s.Values()).To(Equal([]int{10}))
		},
		Entry("bubble", algo.Bubble),
		Entry("insertion", algo.Insertion),
		Entry("merge", algo.Merge),
		Entry("quick", algo.Quick),
		Entry("bucket", algo.Bucket),
	)

	DescribeTable("empty sequence",
		func(id algo.ID) {
			_, err := registry.New(id, seq.New(viewport), algo.Ascending)
			Expect(err).To(MatchError(algo.ErrInvalidInput))
		},
		Entry("bubble", algo.Bubble),
		Entry("insertion", algo.Insertion),
		Entry("merge", algo.Merge),
		Entry("quick", algo.Quick),
		Entry("bucket", algo.Bucket),
	)

	It("rejects a nil sequence", func() {
		_, err := algo.NewQuick(nil, algo.Ascending)
		Expect(err).To(MatchError(seq.ErrInvalidInput))
	})

	Describe("Bubble", func() {
		It("sorts the five element scenario ascending", func() {
			s := newSeq([]int{5, 3, 1, 4, 2})
			b, err := algo.NewBubble(s, algo.Ascending)
			Expect(err).NotTo(HaveOccurred())
			drain(b, nil)
			Expect(s.Values()).To(Equal([]int{1, 2, 3, 4, 5}))
		})

		It("steps once per inversion", func() {
			for _, dir := range []algo.Direction{algo.Ascending, algo.Descending} {
				in := inputs["random"]
				b, err := algo.NewBubble(newSeq(in), dir)
				Expect(err).NotTo(HaveOccurred())
				Expect(drain(b, nil)).To(Equal(inversions(in, dir)))
			}
		})

		It("never swaps equal neighbours", func() {
			b, err := algo.NewBubble(newSeq([]int{4, 4, 4}), algo.Ascending)
			Expect(err).NotTo(HaveOccurred())
			Expect(drain(b, nil)).To(Equal(0))
		})

		It("marks the swapped pair", func() {
			s := newSeq([]int{2, 1})
			b, err := algo.NewBubble(s, algo.Ascending)
			Expect(err).NotTo(HaveOccurred())

			st, err := b.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Touched).To(Equal(map[int]algo.Role{0: algo.Primary, 1: algo.Secondary}))
			Expect(s.Values()).To(Equal([]int{1, 2}))
		})
	})

	Describe("Insertion", func() {
		It("steps once per inversion", func() {
			in := inputs["duplicates"]
			x, err := algo.NewInsertion(newSeq(in), algo.Descending)
			Expect(err).NotTo(HaveOccurred())
			Expect(drain(x, nil)).To(Equal(inversions(in, algo.Descending)))
		})

		It("reports the shifted pair with the moved element as primary", func() {
			s := newSeq([]int{1, 3, 2})
			x, err := algo.NewInsertion(s, algo.Ascending)
			Expect(err).NotTo(HaveOccurred())

			st, err := x.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Indices()).To(Equal([]int{1, 2}))
			role, _ := st.Role(1)
			Expect(role).To(Equal(algo.Primary))
			Expect(s.Values()).To(Equal([]int{1, 2, 3}))
		})
	})

	Describe("Merge", func() {
		It("writes one element per step", func() {
			s := newSeq([]int{5, 3, 1, 4, 2})
			m, err := algo.NewMerge(s, algo.Ascending)
			Expect(err).NotTo(HaveOccurred())

			steps := drain(m, func(st algo.Step) {
				Expect(st.Touched).To(HaveLen(1))
			})
			Expect(steps).To(Equal(12))
			Expect(s.Values()).To(Equal([]int{1, 2, 3, 4, 5}))
		})

		It("suspends inside a nested merge", func() {
			s := newSeq([]int{4, 3, 2, 1})
			m, err := algo.NewMerge(s, algo.Ascending)
			Expect(err).NotTo(HaveOccurred())

			st, err := m.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Indices()).To(Equal([]int{0}))
			Expect(s.Values()).To(Equal([]int{3, 3, 2, 1}))

			st, err = m.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Indices()).To(Equal([]int{1}))
			Expect(s.Values()).To(Equal([]int{3, 4, 2, 1}))
		})
	})

	Describe("Quick", func() {
		It("sorts the five element scenario descending", func() {
			s := newSeq([]int{5, 3, 1, 4, 2})
			q, err := algo.NewQuick(s, algo.Descending)
			Expect(err).NotTo(HaveOccurred())
			drain(q, nil)
			Expect(s.Values()).To(Equal([]int{5, 4, 3, 2, 1}))
		})

		It("gives the secondary role to a self swap", func() {
			s := newSeq([]int{1, 5, 3})
			q, err := algo.NewQuick(s, algo.Ascending)
			Expect(err).NotTo(HaveOccurred())

			st, err := q.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Touched).To(Equal(map[int]algo.Role{0: algo.Secondary}))
		})

		It("ends every partition with the pivot placement", func() {
			s := newSeq([]int{3, 1, 2})
			q, err := algo.NewQuick(s, algo.Ascending)
			Expect(err).NotTo(HaveOccurred())

			st, err := q.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Touched).To(Equal(map[int]algo.Role{0: algo.Primary, 1: algo.Secondary}))
			Expect(s.Values()).To(Equal([]int{1, 3, 2}))

			st, err = q.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Touched).To(Equal(map[int]algo.Role{1: algo.Primary, 2: algo.Secondary}))
			Expect(s.Values()).To(Equal([]int{1, 2, 3}))
		})
	})

	Describe("Bucket", func() {
		It("fails on degenerate bucketing", func() {
			_, err := algo.NewBucket(newSeq([]int{1, 1, 1, 1, 1}), algo.Ascending)
			Expect(err).To(MatchError(algo.ErrDegenerateBucketing))
		})

		It("fails through the registry as well", func() {
			a, err := registry.New(algo.Bucket, newSeq([]int{0, 2, 1, 3}), algo.Descending)
			Expect(err).To(MatchError(algo.ErrDegenerateBucketing))
			Expect(a).To(BeNil())
		})

		It("writes exactly one step per value", func() {
			in := inputs["random"]
			b, err := algo.NewBucket(newSeq(in), algo.Ascending)
			Expect(err).NotTo(HaveOccurred())

			k := 0
			steps := drain(b, func(st algo.Step) {
				Expect(st.Indices()).To(Equal([]int{k}))
				k++
			})
			Expect(steps).To(Equal(len(in)))
		})

		It("clamps overflowing values into the last bucket", func() {
			s := newSeq([]int{100, 3, 80, 90})
			b, err := algo.NewBucket(s, algo.Ascending)
			Expect(err).NotTo(HaveOccurred())

			var written []int
			drain(b, func(st algo.Step) {
				written = append(written, s.At(st.Indices()[0]))
			})
			Expect(written).To(Equal([]int{3, 80, 90, 100}))
		})
	})

	Describe("Step", func() {
		It("orders indices", func() {
			st := algo.Step{Touched: map[int]algo.Role{9: algo.Primary, 2: algo.Secondary, 5: algo.Primary}}
			Expect(st.Indices()).To(Equal([]int{2, 5, 9}))
		})

		It("reports missing roles", func() {
			_, ok := algo.Step{}.Role(3)
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("Direction", func() {
	It("keeps equal values in place both ways", func() {
		Expect(algo.Ascending.Before(3, 3)).To(BeFalse())
		Expect(algo.Descending.Before(3, 3)).To(BeFalse())
	})

	DescribeTable("parses",
		func(in string, want algo.Direction, ok bool) {
			got, err := algo.ParseDirection(in)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("asc", "asc", algo.Ascending, true),
		Entry("Descending", "Descending", algo.Descending, true),
		Entry("sideways", "sideways", algo.Ascending, false),
	)
})

var _ = Describe("Registry", func() {
	It("round-trips names", func() {
		for _, id := range algo.IDs() {
			got, err := algo.ParseID(id.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(id))

			got, err = algo.ParseID(id.Title())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(id))
		}
	})

	It("rejects unknown names", func() {
		_, err := algo.ParseID("bogo")
		Expect(err).To(MatchError(algo.ErrUnknownAlgorithm))
	})

	It("lists every registered algorithm", func() {
		Expect(algo.NewRegistry().List()).To(Equal(algo.IDs()))
	})

	It("rejects unregistered ids", func() {
		_, err := algo.NewRegistry().New(algo.ID(42), newSeq([]int{1}), algo.Ascending)
		Expect(err).To(MatchError(algo.ErrUnknownAlgorithm))
	})
})
