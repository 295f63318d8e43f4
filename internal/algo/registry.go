package algo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/sortviz/internal/seq"
)

// ID identifies one of the steppable algorithms.
type ID int

const (
	Bubble ID = iota
	Insertion
	Merge
	Quick
	Bucket
)

var idNames = map[ID]string{
	Bubble:    "bubble",
	Insertion: "insertion",
	Merge:     "merge",
	Quick:     "quick",
	Bucket:    "bucket",
}

var idTitles = map[ID]string{
	Bubble:    "Bubble Sort",
	Insertion: "Insertion Sort",
	Merge:     "Merge Sort",
	Quick:     "Quick Sort",
	Bucket:    "Bucket Sort",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", int(id))
}

// Title is the display name, e.g. "Merge Sort".
func (id ID) Title() string {
	if t, ok := idTitles[id]; ok {
		return t
	}
	return id.String()
}

func ParseID(name string) (ID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, " sort")
	for id, n := range idNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

// IDs lists every algorithm in declaration order.
func IDs() []ID {
	return []ID{Bubble, Insertion, Merge, Quick, Bucket}
}

type Constructor func(s *seq.Sequence, dir Direction) (Algorithm, error)

type Registry struct {
	constructors map[ID]Constructor
}

func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[ID]Constructor)}

	r.Register(Bubble, adapt(NewBubble))
	r.Register(Insertion, adapt(NewInsertion))
	r.Register(Merge, adapt(NewMerge))
	r.Register(Quick, adapt(NewQuick))
	r.Register(Bucket, adapt(NewBucket))

	return r
}

func (r *Registry) Register(id ID, fn Constructor) {
	r.constructors[id] = fn
}

// New builds a fresh algorithm bound to s. The algorithm mutates s in place.
func (r *Registry) New(id ID, s *seq.Sequence, dir Direction) (Algorithm, error) {
	fn, ok := r.constructors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, id)
	}
	return fn(s, dir)
}

func (r *Registry) List() []ID {
	ids := make([]ID, 0, len(r.constructors))
	for id := range r.constructors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// adapt keeps a typed nil pointer from leaking into the interface on error.
func adapt[T Algorithm](fn func(*seq.Sequence, Direction) (T, error)) Constructor {
	return func(s *seq.Sequence, dir Direction) (Algorithm, error) {
		a, err := fn(s, dir)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}
