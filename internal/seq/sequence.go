package seq

import (
	"errors"
	"math"
)

// ErrInvalidInput indicates a sequence that cannot be laid out or sorted.
var ErrInvalidInput = errors.New("seq: invalid input (empty sequence)")

// Viewport is the drawable area the geometry is derived from. Units are
// whatever the renderer draws in; the terminal renderer uses columns for
// Width and eighth-rows for Height.
type Viewport struct {
	Width   int
	Height  int
	SidePad int
	TopPad  int
}

// Geometry is recomputed on Reset and read-only while sorting.
type Geometry struct {
	BlockWidth  int
	BlockHeight float64
	StartX      int
}

type Rect struct {
	X, Y, W, H int
}

// Sequence holds the working values and their display geometry.
type Sequence struct {
	values   []int
	min, max int
	viewport Viewport
	geometry Geometry
}

func New(v Viewport) *Sequence {
	return &Sequence{viewport: v}
}

// Reset replaces the working values and recomputes bounds and geometry.
// The slice is copied, so callers keep ownership of theirs.
func (s *Sequence) Reset(values []int) error {
	if len(values) == 0 {
		return ErrInvalidInput
	}
	s.values = make([]int, len(values))
	copy(s.values, values)

	s.min, s.max = values[0], values[0]
	for _, v := range values[1:] {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.layout()
	return nil
}

// SetViewport changes the drawable area without touching the values.
func (s *Sequence) SetViewport(v Viewport) {
	s.viewport = v
	if len(s.values) > 0 {
		s.layout()
	}
}

func (s *Sequence) layout() {
	s.geometry = s.layoutFor(s.viewport)
}

func (s *Sequence) layoutFor(vp Viewport) Geometry {
	span := s.max - s.min
	if span == 0 {
		span = 1
	}
	bw := (vp.Width - vp.SidePad) / len(s.values)
	if bw < 1 {
		bw = 1
	}
	return Geometry{
		BlockWidth:  bw,
		BlockHeight: float64(vp.Height-vp.TopPad) / float64(span),
		StartX:      vp.SidePad / 2,
	}
}

// GeometryFor returns the rectangle of the bar at index i. The bar grows
// upward from the bottom of the viewport; the minimum value has height 0.
func (s *Sequence) GeometryFor(i int) Rect {
	return s.rect(s.geometry, s.viewport, i)
}

// GeometryIn lays bar i out in another viewport using the current bounds.
// Secondary outputs such as recordings use it to draw at their own scale.
func (s *Sequence) GeometryIn(vp Viewport, i int) Rect {
	return s.rect(s.layoutFor(vp), vp, i)
}

func (s *Sequence) rect(g Geometry, vp Viewport, i int) Rect {
	h := int(math.Round(float64(s.values[i]-s.min) * g.BlockHeight))
	return Rect{
		X: g.StartX + i*g.BlockWidth,
		Y: vp.Height - h,
		W: g.BlockWidth,
		H: h,
	}
}

func (s *Sequence) Len() int           { return len(s.values) }
func (s *Sequence) At(i int) int       { return s.values[i] }
func (s *Sequence) Set(i, v int)       { s.values[i] = v }
func (s *Sequence) Swap(i, j int)      { s.values[i], s.values[j] = s.values[j], s.values[i] }
func (s *Sequence) Min() int           { return s.min }
func (s *Sequence) Max() int           { return s.max }
func (s *Sequence) Geometry() Geometry { return s.geometry }
func (s *Sequence) Viewport() Viewport { return s.viewport }

// Values returns a copy of the current values.
func (s *Sequence) Values() []int {
	c := make([]int, len(s.values))
	copy(c, s.values)
	return c
}
