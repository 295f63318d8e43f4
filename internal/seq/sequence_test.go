package seq

import (
	"errors"
	"reflect"
	"testing"
)

var testViewport = Viewport{Width: 800, Height: 600, SidePad: 100, TopPad: 150}

func TestResetEmpty(t *testing.T) {
	s := New(testViewport)
	if err := s.Reset(nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := s.Reset([]int{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResetBoundsAndGeometry(t *testing.T) {
	s := New(testViewport)
	if err := s.Reset([]int{5, 3, 1, 4, 2}); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if s.Min() != 1 || s.Max() != 5 {
		t.Errorf("bounds = [%d, %d], want [1, 5]", s.Min(), s.Max())
	}

	g := s.Geometry()
	if g.BlockWidth != 140 {
		t.Errorf("BlockWidth = %d, want 140", g.BlockWidth)
	}
	if g.BlockHeight != 112.5 {
		t.Errorf("BlockHeight = %f, want 112.5", g.BlockHeight)
	}
	if g.StartX != 50 {
		t.Errorf("StartX = %d, want 50", g.StartX)
	}
}

func TestResetCopiesInput(t *testing.T) {
	s := New(testViewport)
	in := []int{3, 2, 1}
	if err := s.Reset(in); err != nil {
		t.Fatal(err)
	}
	in[0] = 99
	if s.At(0) != 3 {
		t.Error("Reset did not copy its input")
	}

	out := s.Values()
	out[1] = 99
	if s.At(1) != 2 {
		t.Error("Values did not return a copy")
	}
}

func TestResetIdempotent(t *testing.T) {
	in := []int{9, 4, 7, 1, 1, 12}

	a := New(testViewport)
	if err := a.Reset(in); err != nil {
		t.Fatal(err)
	}
	first := *a
	firstValues := a.Values()

	if err := a.Reset(in); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(firstValues, a.Values()) {
		t.Errorf("values differ: %v vs %v", firstValues, a.Values())
	}
	if first.min != a.min || first.max != a.max || first.geometry != a.geometry {
		t.Error("bounds or geometry differ between identical resets")
	}
}

func TestConstantSequence(t *testing.T) {
	s := New(testViewport)
	if err := s.Reset([]int{7, 7, 7}); err != nil {
		t.Fatal(err)
	}
	g := s.Geometry()
	if g.BlockHeight != 450 {
		t.Errorf("BlockHeight = %f, want 450 for a constant sequence", g.BlockHeight)
	}
	r := s.GeometryFor(1)
	if r.H != 0 || r.Y != testViewport.Height {
		t.Errorf("unexpected rect for constant value: %+v", r)
	}
}

func TestGeometryFor(t *testing.T) {
	s := New(testViewport)
	if err := s.Reset([]int{5, 3, 1, 4, 2}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		index int
		want  Rect
	}{
		{0, Rect{X: 50, Y: 150, W: 140, H: 450}},
		{2, Rect{X: 330, Y: 600, W: 140, H: 0}},
		{4, Rect{X: 610, Y: 487, W: 140, H: 113}},
	}

	for _, tt := range tests {
		if got := s.GeometryFor(tt.index); got != tt.want {
			t.Errorf("GeometryFor(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestSetViewportKeepsValues(t *testing.T) {
	s := New(testViewport)
	if err := s.Reset([]int{2, 1}); err != nil {
		t.Fatal(err)
	}
	s.SetViewport(Viewport{Width: 40, Height: 80})

	if !reflect.DeepEqual(s.Values(), []int{2, 1}) {
		t.Errorf("values changed on resize: %v", s.Values())
	}
	if s.Geometry().BlockWidth != 20 {
		t.Errorf("BlockWidth = %d, want 20", s.Geometry().BlockWidth)
	}
}

func TestBlockWidthFloor(t *testing.T) {
	s := New(Viewport{Width: 10, Height: 8})
	vals := make([]int, 30)
	for i := range vals {
		vals[i] = i
	}
	if err := s.Reset(vals); err != nil {
		t.Fatal(err)
	}
	if s.Geometry().BlockWidth != 1 {
		t.Errorf("BlockWidth = %d, want 1", s.Geometry().BlockWidth)
	}
}

func TestGeometryInOtherViewport(t *testing.T) {
	s := New(Viewport{Width: 40, Height: 80, SidePad: 4, TopPad: 8})
	if err := s.Reset([]int{0, 50, 100}); err != nil {
		t.Fatal(err)
	}

	if got, want := s.GeometryFor(2), (Rect{X: 26, Y: 8, W: 12, H: 72}); got != want {
		t.Errorf("GeometryFor(2) = %+v, want %+v", got, want)
	}
	if got, want := s.GeometryIn(testViewport, 2), (Rect{X: 516, Y: 150, W: 233, H: 450}); got != want {
		t.Errorf("GeometryIn(2) = %+v, want %+v", got, want)
	}
	if s.Geometry().BlockWidth != 12 {
		t.Error("GeometryIn changed the primary layout")
	}
}
