package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/run"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/viz"
)

func toFloats(vals []int) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}

func plotValues(vals []int, caption string) string {
	data := toFloats(vals)
	if len(data) == 1 {
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

func printMetrics(w io.Writer, m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-11s %.4g\n", name+":", m[name])
	}
}

func runSort(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	s, err := newSession(cmd, arg)
	if err != nil {
		return err
	}
	defer s.close()
	out := cmd.OutOrStdout()

	initial, err := s.src.Next()
	if err != nil {
		return err
	}
	if err := s.ctrl.Reset(initial); err != nil {
		return err
	}

	trace := storage.NewTrace(s.ctrl.Sequence(), s.ctrl.Direction)
	s.ctrl.AddObserver(trace)

	th := viz.GetTheme(s.cfg.Display.Theme)
	var rec *viz.Recorder
	if gifPath != "" {
		rec = viz.NewRecorder(th)
		rec.Capture(s.ctrl.Sequence(), algo.Step{})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	id := s.ctrl.Selected()
	fmt.Fprintf(out, "sorting %d values with %s (%s)...\n", len(initial), id.Title(), s.ctrl.Direction())
	start := time.Now()

	stats, err := s.ctrl.Drive(ctx, func(st algo.Step) bool {
		if rec != nil {
			rec.Capture(s.ctrl.Sequence(), st)
		}
		return true
	})
	// An interrupted run still reports and writes what it got through.
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintln(out)
	fmt.Fprintln(out, plotValues(initial, "before"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, plotValues(s.ctrl.Sequence().Values(), "after"))
	fmt.Fprintln(out)

	if trace.Completed() {
		fmt.Fprintf(out, "completed in %v\n", elapsed)
	} else {
		s.log.WithField("steps", stats.Steps).Warn("run interrupted")
		fmt.Fprintf(out, "interrupted after %v\n", elapsed)
	}
	fmt.Fprintf(out, "steps: %d\n", stats.Steps)
	fmt.Fprintf(out, "peak disorder: %d\n", s.disorder.Peak())
	fmt.Fprintln(out, "\nmetrics:")
	printMetrics(out, stats.Metrics)

	if rec != nil {
		rec.Capture(s.ctrl.Sequence(), algo.Step{})
		if err := rec.Save(gifPath, viz.DelayFor(s.cfg.Display.FPS)); err != nil {
			return err
		}
		fmt.Fprintf(out, "\ngif: %s (%d frames", gifPath, rec.Len())
		if rec.Full() {
			fmt.Fprintf(out, ", truncated at %d", rec.Limit())
		}
		fmt.Fprintln(out, ")")
	}

	if svgPath != "" {
		svg := export.SequenceToSVG(s.ctrl.Sequence(), algo.Step{}, th, export.DefaultViewport)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "svg: %s\n", svgPath)
	}

	if traceFile != "" {
		err := writeTrace(traceFile, storage.Report{
			Algorithm: id.String(),
			Direction: s.ctrl.Direction().String(),
			Seed:      s.cfg.Sequence.Seed,
			Pattern:   s.cfg.Sequence.Pattern,
			Complete:  trace.Completed(),
			Steps:     stats.Steps,
			Initial:   initial,
			Final:     s.ctrl.Sequence().Values(),
			Metrics:   stats.Metrics,
			Trace:     trace.Steps(),
		}, th)
		if err != nil {
			return err
		}
		s.log.WithField("path", traceFile).Info("trace written")
		fmt.Fprintf(out, "trace: %s (%d steps)\n", traceFile, len(trace.Steps()))
	}
	return nil
}

// writeTrace picks the format from the file extension.
func writeTrace(path string, rep storage.Report, th viz.Theme) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".json" && ext != ".svg" {
		return fmt.Errorf("unknown trace format %q (use .csv, .json or .svg)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".json":
		return storage.WriteJSON(f, rep)
	case ".svg":
		svg := export.DisorderToSVG(storage.DisorderSeries(rep.Trace), 800, 300, string(th.Primary))
		if svg == "" {
			return fmt.Errorf("%d steps is too few to plot", len(rep.Trace))
		}
		_, err = f.WriteString(svg + "\n")
		return err
	default:
		return storage.WriteTraceCSV(f, rep.Trace)
	}
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s, err := newSession(cmd, "")
	if err != nil {
		return err
	}
	defer s.close()

	vals, err := s.src.Next()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "benchmarking %d values (seed %d, %s)\n\n", len(vals), s.cfg.Sequence.Seed, s.cfg.Sequence.Pattern)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tDIRECTION\tSTEPS\tSWAPS\tWRITES\tTIME")

	registry := algo.NewRegistry()
	for _, id := range registry.List() {
		for _, dir := range []algo.Direction{algo.Ascending, algo.Descending} {
			ctrl := run.New(seq.New(export.DefaultViewport), registry, s.log.WithField("command", "bench"))
			metrics.Attach(ctrl)
			ctrl.Select(id)
			ctrl.SetDirection(dir)
			if err := ctrl.Reset(vals); err != nil {
				return err
			}

			start := time.Now()
			stats, err := ctrl.Drive(cmd.Context(), nil)
			elapsed := time.Since(start)
			if errors.Is(err, algo.ErrDegenerateBucketing) {
				fmt.Fprintf(w, "%s\t%s\t-\t-\t-\tdegenerate input\n", id, dir)
				continue
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "%s\t%s\t%d\t%.0f\t%.0f\t%v\n",
				id, dir, stats.Steps, stats.Metrics["swaps"], stats.Metrics["writes"], elapsed)
		}
	}
	return w.Flush()
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tID\tNAME")
	for _, id := range algo.IDs() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", viz.SelectionKey(id), id, id.Title())
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ids := algo.IDs()
	if len(args) > 0 {
		id, err := algo.ParseID(args[0])
		if err != nil {
			return err
		}
		ids = []algo.ID{id}
	}

	for _, id := range ids {
		presets := config.ListPresets(id.String())
		if len(presets) == 0 {
			fmt.Fprintf(out, "no presets for algorithm: %s\n", id)
			continue
		}
		fmt.Fprintf(out, "presets for %s:\n", id)
		for _, p := range presets {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := "sortviz.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", path)
	return nil
}
