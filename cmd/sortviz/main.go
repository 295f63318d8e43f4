package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/run"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/source"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	configFile string
	preset     string
	algorithm  string
	direction  string
	size       int
	minValue   int
	maxValue   int
	seed       int64
	pattern    string
	values     string
	frameRate  int
	theme      string
	logFile    string
	logLevel   string
	// Outputs
	recordPath string
	gifPath    string
	svgPath    string
	traceFile  string
	overwrite  bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "step-by-step sorting algorithm animator",
		Args:          cobra.NoArgs,
		RunE:          runInteractive,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	bindPersistentFlags(rootCmd)
	rootCmd.Flags().StringVar(&recordPath, "gif", "sortviz.gif", "where the g key saves recordings")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort headlessly and print the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSort,
	}
	runCmd.Flags().StringVar(&gifPath, "gif", "", "record the run as a GIF")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the sorted bars as SVG")
	runCmd.Flags().StringVar(&traceFile, "trace", "", "write the step trace (.csv, .json or .svg)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare every algorithm and direction on one sequence",
		Args:  cobra.NoArgs,
		RunE:  benchAlgorithms,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&overwrite, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, benchCmd, algorithmsCmd, presetsCmd, configCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func bindPersistentFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&algorithm, "algorithm", config.DefaultConfig().Algorithm, "bubble, insertion, merge, quick or bucket")
	pf.StringVar(&direction, "direction", "ascending", "ascending or descending")
	pf.IntVar(&size, "size", config.DefaultSize, "sequence length")
	pf.IntVar(&minValue, "min", config.DefaultMin, "smallest generated value")
	pf.IntVar(&maxValue, "max", config.DefaultMax, "largest generated value")
	pf.Int64Var(&seed, "seed", 1, "random seed")
	pf.StringVar(&pattern, "pattern", string(source.PatternRandom), "random, reversed, sorted or nearly-sorted")
	pf.StringVar(&values, "values", "", "explicit comma separated values, e.g. 5,3,1,4,2")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frames (and steps) per second")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
}

// resolveConfig layers defaults < preset < config file < explicitly set flags.
// arg, when set, is the algorithm named on the command line.
func resolveConfig(cmd *cobra.Command, arg string) (*config.Config, error) {
	name := algorithm
	if arg != "" {
		name = arg
	}
	id, err := algo.ParseID(name)
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(id.String(), preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available for %s: %v)", preset, id, config.ListPresets(id.String()))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if arg != "" || flags.Changed("algorithm") {
		cfg.Algorithm = id.String()
	}
	if flags.Changed("direction") {
		cfg.Direction = direction
	}
	if flags.Changed("size") {
		cfg.Sequence.Size = size
	}
	if flags.Changed("min") {
		cfg.Sequence.Min = minValue
	}
	if flags.Changed("max") {
		cfg.Sequence.Max = maxValue
	}
	if flags.Changed("seed") {
		cfg.Sequence.Seed = seed
	}
	if flags.Changed("pattern") {
		cfg.Sequence.Pattern = pattern
	}
	if flags.Changed("values") {
		vals, err := source.ParseValues(values)
		if err != nil {
			return nil, err
		}
		cfg.Sequence.Values = vals
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session is everything a command needs to drive one controller.
type session struct {
	cfg      *config.Config
	log      *logrus.Logger
	close    func() error
	ctrl     *run.Controller
	src      source.Source
	disorder *metrics.Disorder
}

func newSession(cmd *cobra.Command, arg string) (*session, error) {
	cfg, err := resolveConfig(cmd, arg)
	if err != nil {
		return nil, err
	}
	log, closeLog, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	src, err := cfg.NewSource()
	if err != nil {
		closeLog()
		return nil, err
	}
	id, _ := cfg.AlgorithmID()
	dir, _ := cfg.SortDirection()

	ctrl := run.New(seq.New(export.DefaultViewport), algo.NewRegistry(), log.WithField("command", cmd.Name()))
	ctrl.Select(id)
	ctrl.SetDirection(dir)
	disorder := metrics.Attach(ctrl)

	return &session{cfg: cfg, log: log, close: closeLog, ctrl: ctrl, src: src, disorder: disorder}, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, "")
	if err != nil {
		return err
	}
	defer s.close()

	m, err := viz.NewModel(s.ctrl, s.src, viz.Options{
		FPS:     s.cfg.Display.FPS,
		Theme:   s.cfg.Display.Theme,
		GIFPath: recordPath,
		Log:     s.log,
	})
	if err != nil {
		return err
	}

	s.log.WithField("algorithm", s.cfg.Algorithm).Info("interactive session started")
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
