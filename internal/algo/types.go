package algo

import (
	"fmt"
	"sort"
	"strings"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Before reports whether a must be placed strictly before b.
// Equal values are never out of order in either direction.
func (d Direction) Before(a, b int) bool {
	if d == Descending {
		return a > b
	}
	return a < b
}

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

func (d Direction) Title() string {
	if d == Descending {
		return "Descending"
	}
	return "Ascending"
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown direction: %s", s)
}

// Role tags how a touched index should be highlighted.
type Role int

const (
	Primary Role = iota
	Secondary
)

func (r Role) String() string {
	if r == Secondary {
		return "secondary"
	}
	return "primary"
}

// Step describes one atomic mutation. The mutation is already applied to
// the sequence when the Step is returned.
type Step struct {
	Touched map[int]Role
}

func single(i int) Step {
	return Step{Touched: map[int]Role{i: Primary}}
}

// pair marks p as Primary and s as Secondary; when p == s the later
// assignment wins.
func pair(p, s int) Step {
	t := map[int]Role{p: Primary}
	t[s] = Secondary
	return Step{Touched: t}
}

// Indices returns the touched indices in ascending order.
func (s Step) Indices() []int {
	idx := make([]int, 0, len(s.Touched))
	for i := range s.Touched {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

func (s Step) Role(i int) (Role, bool) {
	r, ok := s.Touched[i]
	return r, ok
}

func (s Step) IsZero() bool { return len(s.Touched) == 0 }

// Algorithm is a sorting algorithm advanced one atomic mutation at a time.
//
// Advance returns ErrDone once after the last mutation and ErrExhausted on
// every call after that.
type Algorithm interface {
	ID() ID
	Advance() (Step, error)
}
