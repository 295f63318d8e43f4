package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille dot grid where every cell carries one color. The last
// Set into a cell decides its color.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]lipgloss.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]lipgloss.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]lipgloss.Color, w)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y) in sub-pixel coordinates. The canvas is
// (Width*2) x (Height*4) sub-pixels.
func (c *Canvas) Set(x, y int, color lipgloss.Color) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = color
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Colors[i][j] = ""
		}
	}
}

// VLine draws a vertical run of dots from y0 to y1 inclusive.
func (c *Canvas) VLine(x, y0, y1 int, color lipgloss.Color) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.Set(x, y, color)
	}
}

// String renders the grid, coloring runs of same-colored cells together.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		writeRuns(&b, row, c.Colors[i])
		b.WriteByte('\n')
	}
	return b.String()
}

// writeRuns styles consecutive cells sharing a color with one Render call.
func writeRuns(b *strings.Builder, cells []rune, colors []lipgloss.Color) {
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && colors[i] == colors[start] {
			continue
		}
		run := string(cells[start:i])
		if colors[start] == "" {
			b.WriteString(run)
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(colors[start]).Render(run))
		}
		start = i
	}
}
