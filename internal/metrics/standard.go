package metrics

import (
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/run"
)

// Standard is the metric set shared by the TUI and the headless commands.
func Standard(dir func() algo.Direction) []run.Metric {
	return []run.Metric{
		NewStepCount(),
		NewSwaps(),
		NewWrites(),
		NewDisorder(dir),
		NewSortedness(dir),
	}
}

// Attach registers the standard set on c, reading the direction from it.
// The disorder metric is returned for callers that report its peak.
func Attach(c *run.Controller) *Disorder {
	var disorder *Disorder
	for _, m := range Standard(c.Direction) {
		if d, ok := m.(*Disorder); ok {
			disorder = d
		}
		c.AddMetric(m)
	}
	return disorder
}
