package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/seq"
)

// Renderer draws one frame of the sequence. It is called every tick,
// whether or not a step was produced; st is zero when nothing moved.
type Renderer interface {
	Name() string
	Render(s *seq.Sequence, st algo.Step, theme Theme) string
}

// eighths holds the glyphs for 0 through 8 eighths of a cell filled.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// CellRows is the number of viewport height units per terminal row.
const CellRows = 8

// ViewportFor sizes a sequence viewport for a cols x rows character area.
func ViewportFor(cols, rows int) seq.Viewport {
	return seq.Viewport{
		Width:   cols,
		Height:  rows * CellRows,
		SidePad: 2,
		TopPad:  CellRows,
	}
}

func barColor(theme Theme, st algo.Step, i int) lipgloss.Color {
	if r, ok := st.Touched[i]; ok {
		return theme.RoleColor(r)
	}
	return theme.Bar(i)
}

// BarRenderer draws one solid column per value using partial block glyphs,
// so bar heights resolve to an eighth of a row.
type BarRenderer struct{}

func (BarRenderer) Name() string { return "bars" }

func (BarRenderer) Render(s *seq.Sequence, st algo.Step, theme Theme) string {
	vp := s.Viewport()
	cols, rows := vp.Width, vp.Height/CellRows
	if cols <= 0 || rows <= 0 || s.Len() == 0 {
		return ""
	}

	cells := make([][]rune, rows)
	colors := make([][]lipgloss.Color, rows)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(" ", cols))
		colors[r] = make([]lipgloss.Color, cols)
	}

	for i := 0; i < s.Len(); i++ {
		rect := s.GeometryFor(i)
		color := barColor(theme, st, i)
		for x := rect.X; x < rect.X+rect.W && x < cols; x++ {
			if x < 0 {
				continue
			}
			for r := 0; r < rows; r++ {
				fill := (r+1)*CellRows - rect.Y
				if fill <= 0 {
					continue
				}
				cells[r][x] = eighths[min(fill, CellRows)]
				colors[r][x] = color
			}
		}
	}

	var b strings.Builder
	for r := range cells {
		writeRuns(&b, cells[r], colors[r])
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// DotRenderer plots the top of every bar as a braille dot, which keeps
// long sequences readable on narrow terminals.
type DotRenderer struct{}

func (DotRenderer) Name() string { return "dots" }

func (DotRenderer) Render(s *seq.Sequence, st algo.Step, theme Theme) string {
	vp := s.Viewport()
	cols, rows := vp.Width, vp.Height/CellRows
	if cols <= 0 || rows <= 0 || s.Len() == 0 {
		return ""
	}

	canvas := NewCanvas(cols, rows)
	maxY := rows*4 - 1
	for i := 0; i < s.Len(); i++ {
		rect := s.GeometryFor(i)
		x := rect.X*2 + rect.W - 1
		y := min(rect.Y/2, maxY)
		color := barColor(theme, st, i)
		if _, touched := st.Touched[i]; touched {
			canvas.VLine(x, y, maxY, color)
			continue
		}
		canvas.Set(x, y, color)
	}
	return strings.TrimSuffix(canvas.String(), "\n")
}
