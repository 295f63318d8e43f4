// Package source produces the value lists a run starts from.
package source

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"
)

var ErrInvalidOptions = errors.New("source: invalid options")

// Source hands out a fresh list of values on every call.
type Source interface {
	Next() ([]int, error)
}

type Pattern string

const (
	PatternRandom       Pattern = "random"
	PatternReversed     Pattern = "reversed"
	PatternSorted       Pattern = "sorted"
	PatternNearlySorted Pattern = "nearly-sorted"
)

func Patterns() []Pattern {
	return []Pattern{PatternRandom, PatternReversed, PatternSorted, PatternNearlySorted}
}

func ParsePattern(name string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(name)))
	if p == "" {
		return PatternRandom, nil
	}
	if slices.Contains(Patterns(), p) {
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown pattern %q", ErrInvalidOptions, name)
}

type Options struct {
	Size    int
	Min     int
	Max     int
	Seed    int64
	Pattern Pattern
}

func (o Options) Validate() error {
	if o.Size < 1 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidOptions, o.Size)
	}
	if o.Min > o.Max {
		return fmt.Errorf("%w: min %d above max %d", ErrInvalidOptions, o.Min, o.Max)
	}
	// Next draws from Max-Min+1 values, which must fit in an int.
	if width := o.Max - o.Min; width < 0 || width == math.MaxInt {
		return fmt.Errorf("%w: range [%d, %d] is too wide", ErrInvalidOptions, o.Min, o.Max)
	}
	if _, err := ParsePattern(string(o.Pattern)); err != nil {
		return err
	}
	return nil
}

// Generator draws uniform values in [Min, Max] and arranges them by Pattern.
type Generator struct {
	opts Options
	rng  *rand.Rand
}

func New(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.Pattern, _ = ParsePattern(string(opts.Pattern))
	return &Generator{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}, nil
}

func (g *Generator) Next() ([]int, error) {
	values := make([]int, g.opts.Size)
	span := g.opts.Max - g.opts.Min + 1
	for i := range values {
		values[i] = g.opts.Min + g.rng.Intn(span)
	}

	switch g.opts.Pattern {
	case PatternSorted:
		slices.Sort(values)
	case PatternReversed:
		slices.Sort(values)
		slices.Reverse(values)
	case PatternNearlySorted:
		slices.Sort(values)
		g.perturb(values)
	}
	return values, nil
}

// perturb swaps roughly a tenth of the positions with their right neighbour.
func (g *Generator) perturb(values []int) {
	if len(values) < 2 {
		return
	}
	swaps := max(1, len(values)/10)
	for n := 0; n < swaps; n++ {
		i := g.rng.Intn(len(values) - 1)
		values[i], values[i+1] = values[i+1], values[i]
	}
}

// Fixed always returns the same values.
type Fixed struct {
	values []int
}

func NewFixed(values []int) (*Fixed, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", ErrInvalidOptions)
	}
	return &Fixed{values: slices.Clone(values)}, nil
}

func (f *Fixed) Next() ([]int, error) {
	return slices.Clone(f.values), nil
}

// ParseValues reads a comma separated list such as "5,3,1,4,2".
func ParseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		var v int
		if _, err := fmt.Sscan(f, &v); err != nil {
			return nil, fmt.Errorf("%w: bad value %q", ErrInvalidOptions, f)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", ErrInvalidOptions)
	}
	return values, nil
}
