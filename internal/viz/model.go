package viz

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/run"
	"github.com/san-kum/sortviz/internal/source"
)

const (
	defaultWidth    = 120
	defaultHeight   = 32
	historyCapacity = 600
	minCols         = 10
	minRows         = 3
)

// TickMsg drives the frame scheduler: one tick, at most one step.
type TickMsg time.Time

type Options struct {
	FPS     int
	Theme   string
	GIFPath string
	Log     logrus.FieldLogger
}

// Model is the interactive front end. The controller is shared, so copies of
// Model made by bubbletea all drive the same run.
type Model struct {
	ctrl      *run.Controller
	src       source.Source
	log       logrus.FieldLogger
	keys      keyMap
	help      help.Model
	theme     Theme
	styles    styles
	renderers []Renderer
	view      int
	fps       int
	paused    bool
	showHelp  bool
	last      algo.Step
	frame     int
	status    string
	statusErr bool
	disorder  []float64
	recorder  *Recorder
	recording bool
	gifPath   string
	width     int
	height    int
}

// NewModel loads the first sequence from src into ctrl.
func NewModel(ctrl *run.Controller, src source.Source, opts Options) (Model, error) {
	fps := opts.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	gifPath := opts.GIFPath
	if gifPath == "" {
		gifPath = "sortviz.gif"
	}

	theme := GetTheme(opts.Theme)
	m := Model{
		ctrl:      ctrl,
		src:       src,
		log:       log,
		keys:      keys,
		help:      help.New(),
		theme:     theme,
		styles:    newStyles(theme),
		renderers: []Renderer{BarRenderer{}, DotRenderer{}},
		fps:       min(fps, config.MaxFPS),
		disorder:  make([]float64, 0, historyCapacity),
		gifPath:   gifPath,
	}
	m.resize(defaultWidth, defaultHeight)
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	m.status = "press space to sort"
	return m, nil
}

func (m Model) Controller() *run.Controller { return m.ctrl }
func (m Model) Paused() bool                { return m.paused }
func (m Model) FPS() int                    { return m.fps }
func (m Model) Theme() Theme                { return m.theme }
func (m Model) Recording() bool             { return m.recording }
func (m Model) Renderer() Renderer          { return m.renderers[m.view] }

// Status returns the status line and whether it reports an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		m.tick()
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopRecording()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		if err := m.reset(); err != nil {
			m.setError(err)
		} else {
			m.setStatus("new sequence")
		}
	case key.Matches(msg, m.keys.Start):
		m.start()
	case key.Matches(msg, m.keys.Ascending):
		m.direction(algo.Ascending)
	case key.Matches(msg, m.keys.Descending):
		m.direction(algo.Descending)
	case key.Matches(msg, m.keys.Pause):
		if m.ctrl.Running() {
			m.paused = !m.paused
		}
	case key.Matches(msg, m.keys.Faster):
		m.fps = min(m.fps*2, config.MaxFPS)
	case key.Matches(msg, m.keys.Slower):
		m.fps = max(m.fps/2, 1)
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
	case key.Matches(msg, m.keys.View):
		m.view = (m.view + 1) % len(m.renderers)
	case key.Matches(msg, m.keys.Record):
		if m.recording {
			m.stopRecording()
		} else {
			m.startRecording()
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	default:
		for id, b := range m.keys.selection() {
			if key.Matches(msg, b) {
				m.selectAlgorithm(id)
				break
			}
		}
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = err.Error(), true
	m.log.WithError(err).Warn("command failed")
}

// reset draws fresh values from the source and abandons any active run.
func (m *Model) reset() error {
	values, err := m.src.Next()
	if err != nil {
		return err
	}
	if err := m.ctrl.Dispatch(run.ResetCommand(values)); err != nil {
		return err
	}
	m.last = algo.Step{}
	m.paused = false
	m.resetHistory()
	return nil
}

func (m *Model) resetHistory() {
	m.disorder = m.disorder[:0]
	m.disorder = append(m.disorder, float64(metrics.Inversions(m.ctrl.Sequence().Values(), m.ctrl.Direction())))
}

func (m *Model) start() {
	if m.ctrl.Running() {
		m.setStatus("already sorting")
		return
	}
	if err := m.ctrl.Dispatch(run.StartStopCommand()); err != nil {
		m.setError(err)
		return
	}
	m.paused = false
	m.resetHistory()
	m.setStatus(m.ctrl.Selected().Title() + " started")
}

func (m *Model) direction(dir algo.Direction) {
	if m.ctrl.Running() {
		m.setStatus("direction is locked while sorting")
		return
	}
	_ = m.ctrl.Dispatch(run.DirectionCommand(dir))
	m.resetHistory()
	m.setStatus("direction: " + dir.Title())
}

func (m *Model) selectAlgorithm(id algo.ID) {
	if m.ctrl.Running() {
		m.setStatus("algorithm is locked while sorting")
		return
	}
	_ = m.ctrl.Dispatch(run.SelectCommand(id))
	m.setStatus("selected " + id.Title())
}

// tick advances the run by at most one step and records the frame.
func (m *Model) tick() {
	m.frame++
	if !m.ctrl.Running() || m.paused {
		return
	}

	st, ok, err := m.ctrl.AdvanceOne()
	switch {
	case err != nil:
		m.last = algo.Step{}
		m.setError(err)
	case ok:
		m.last = st
		m.pushDisorder()
	default:
		m.last = algo.Step{}
		stats := m.ctrl.LastRun()
		m.setStatus(fmt.Sprintf("%s finished in %d steps", stats.Algorithm.Title(), stats.Steps))
	}

	if m.recording && !m.recorder.Capture(m.ctrl.Sequence(), m.last) {
		m.stopRecording()
	}
}

func (m *Model) pushDisorder() {
	v, ok := m.ctrl.Stats().Metrics["disorder"]
	if !ok {
		v = float64(metrics.Inversions(m.ctrl.Sequence().Values(), m.ctrl.Direction()))
	}
	m.disorder = append(m.disorder, v)
	if len(m.disorder) > historyCapacity {
		m.disorder = m.disorder[1:]
	}
}

func (m *Model) startRecording() {
	m.recorder = NewRecorder(m.theme)
	m.recorder.Capture(m.ctrl.Sequence(), m.last)
	m.recording = true
	m.setStatus("recording to " + m.gifPath)
}

func (m *Model) stopRecording() {
	if !m.recording {
		return
	}
	m.recording = false
	n := m.recorder.Len()
	err := m.recorder.Save(m.gifPath, DelayFor(m.fps))
	switch {
	case errors.Is(err, ErrNoFrames):
		m.setStatus("nothing recorded")
	case err != nil:
		m.setError(err)
	default:
		m.log.WithFields(logrus.Fields{"path": m.gifPath, "frames": n}).Info("recording saved")
		m.setStatus(fmt.Sprintf("saved %d frames to %s", n, m.gifPath))
	}
	m.recorder = nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cols := max(w-statsWidth-1-4, minCols)
	rows := max(h-2, minRows)
	m.ctrl.Sequence().SetViewport(ViewportFor(cols, rows))
}

func (m Model) stateLine() string {
	var parts []string
	switch {
	case m.ctrl.Running() && m.paused:
		parts = append(parts, m.styles.paused.Render("PAUSED"))
	case m.ctrl.Running():
		parts = append(parts, m.styles.running.Render(AnimatedSpinner(m.frame)+" SORTING"))
	default:
		parts = append(parts, m.styles.done.Render("IDLE"))
	}
	if m.recording {
		parts = append(parts, m.styles.rec.Render(fmt.Sprintf("● REC %d/%d", m.recorder.Len(), m.recorder.Limit())))
	}
	return strings.Join(parts, "  ")
}

func (m Model) row(label, value string) string {
	return m.styles.label.Render(label) + m.styles.value.Render(value) + "\n"
}

func (m Model) View() string {
	s := m.ctrl.Sequence()
	canvasView := m.styles.canvas.Render(m.renderers[m.view].Render(s, m.last, m.theme))

	var b strings.Builder
	b.WriteString(m.styles.header.Render(GradientText("SORTVIZ", m.theme.Primary, m.theme.Secondary)) + "\n")
	b.WriteString(m.styles.active.Render(m.ctrl.Selected().Title()) + "\n")
	b.WriteString(m.stateLine() + "\n")
	if m.statusErr {
		b.WriteString(m.styles.err.Render(m.status) + "\n")
	} else {
		b.WriteString(m.styles.value.Render(m.status) + "\n")
	}

	if len(m.disorder) > 1 {
		chart := asciigraph.Plot(m.disorder, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Disorder"))
		b.WriteString(m.styles.graph.Render(chart) + "\n")
	} else {
		b.WriteString("\n")
	}

	stats := m.ctrl.Stats()
	values := s.Values()
	dir := m.ctrl.Direction()
	ordered, pairs := metrics.AdjacentOrder(values, dir)
	sorted := 1.0
	if pairs > 0 {
		sorted = float64(ordered) / float64(pairs)
	}

	b.WriteString(m.row("Direction", dir.Title()))
	b.WriteString(m.row("Length", fmt.Sprintf("%d  [%d, %d]", s.Len(), s.Min(), s.Max())))
	b.WriteString(m.row("Steps", fmt.Sprintf("%d", stats.Steps)))
	b.WriteString(m.row("Swaps", fmt.Sprintf("%.0f", stats.Metrics["swaps"])))
	b.WriteString(m.row("Writes", fmt.Sprintf("%.0f", stats.Metrics["writes"])))
	b.WriteString(m.row("Disorder", fmt.Sprintf("%d", metrics.Inversions(values, dir))))
	b.WriteString(m.styles.label.Render("Sorted") + ProgressBar(sorted, 20, m.theme) + "\n")
	b.WriteString(m.row("Speed", fmt.Sprintf("%d fps", m.fps)))
	b.WriteString(m.row("Theme", m.theme.Name))
	b.WriteString(m.row("View", m.renderers[m.view].Name()))

	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))

	statsView := m.styles.stats.Render(b.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
