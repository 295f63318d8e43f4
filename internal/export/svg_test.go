package export

import (
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/viz"
)

func TestSequenceToSVG(t *testing.T) {
	s := seq.New(DefaultViewport)
	if err := s.Reset([]int{2, 0, 4}); err != nil {
		t.Fatal(err)
	}
	st := algo.Step{Touched: map[int]algo.Role{2: algo.Primary}}

	out := SequenceToSVG(s, st, viz.ThemeMinimal, DefaultViewport)

	if got := strings.Count(out, "<rect x="); got != 3 {
		t.Errorf("expected 3 bars, got %d", got)
	}
	// bw = 700/3 = 233, block height = 450/4
	if !strings.Contains(out, `<rect x="516" y="150" width="233" height="450" fill="#0088ff"/>`) {
		t.Errorf("touched bar missing or misplaced:\n%s", out)
	}
	if !strings.Contains(out, `<rect x="283" y="600" width="233" height="0"`) {
		t.Errorf("minimum bar should have zero height:\n%s", out)
	}
}

func TestSequenceToSVGEmpty(t *testing.T) {
	if SequenceToSVG(nil, algo.Step{}, viz.ThemeMinimal, DefaultViewport) != "" {
		t.Error("expected empty output for nil sequence")
	}
}

func TestDisorderToSVG(t *testing.T) {
	if DisorderToSVG([]float64{3}, 100, 50, "#fff") != "" {
		t.Error("a single point should produce no plot")
	}

	out := DisorderToSVG([]float64{3, 1, 0}, 100, 50, "#00ff00")
	if !strings.Contains(out, `stroke="#00ff00"`) {
		t.Error("stroke color missing")
	}
	if got := strings.Count(out, " L"); got != 2 {
		t.Errorf("expected 2 line segments, got %d", got)
	}
	if !strings.HasSuffix(out, "</svg>") {
		t.Error("unterminated svg")
	}
}
