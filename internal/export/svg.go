package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/viz"
)

// DefaultViewport is the pixel layout used for exported images.
var DefaultViewport = seq.Viewport{Width: 800, Height: 600, SidePad: 100, TopPad: 150}

// SequenceToSVG draws the bars of s, highlighting the indices st touched.
func SequenceToSVG(s *seq.Sequence, st algo.Step, theme viz.Theme, vp seq.Viewport) string {
	if s == nil || s.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, vp.Width, vp.Height, vp.Width, vp.Height))

	for i := 0; i < s.Len(); i++ {
		rect := s.GeometryIn(vp, i)
		color := theme.Bar(i)
		if r, ok := st.Touched[i]; ok {
			color = theme.RoleColor(r)
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, rect.X, rect.Y, rect.W, vp.Height-rect.Y, color))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// DisorderToSVG plots a disorder series as a polyline, one point per step.
func DisorderToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
