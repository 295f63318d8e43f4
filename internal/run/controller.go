package run

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/seq"
)

// Controller owns the active algorithm and the Idle/Running state machine.
//
// It is driven by a single frame scheduler: AdvanceOne is called at most
// once per tick and its result is consumed before the next call. It is not
// safe for concurrent use.
type Controller struct {
	seq       *seq.Sequence
	registry  *algo.Registry
	log       logrus.FieldLogger
	selected  algo.ID
	dir       algo.Direction
	active    algo.Algorithm
	steps     int
	last      Stats
	metrics   []Metric
	observers []Observer
}

func New(s *seq.Sequence, registry *algo.Registry, log logrus.FieldLogger) *Controller {
	if registry == nil {
		registry = algo.NewRegistry()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Controller{
		seq:       s,
		registry:  registry,
		log:       log,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (c *Controller) AddMetric(m Metric)     { c.metrics = append(c.metrics, m) }
func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }

func (c *Controller) Sequence() *seq.Sequence   { return c.seq }
func (c *Controller) Selected() algo.ID         { return c.selected }
func (c *Controller) Direction() algo.Direction { return c.dir }
func (c *Controller) Running() bool             { return c.active != nil }
func (c *Controller) Steps() int                { return c.steps }

// LastRun returns the stats of the most recently completed run.
func (c *Controller) LastRun() Stats { return c.last }

// Stats snapshots the current run.
func (c *Controller) Stats() Stats {
	values := make(map[string]float64, len(c.metrics))
	for _, m := range c.metrics {
		values[m.Name()] = m.Value()
	}
	return Stats{
		Algorithm: c.selected,
		Direction: c.dir,
		Steps:     c.steps,
		Metrics:   values,
	}
}

func (c *Controller) fields() logrus.Fields {
	return logrus.Fields{
		"algorithm": c.selected.String(),
		"direction": c.dir.String(),
		"steps":     c.steps,
	}
}

// Select sets the algorithm for the next Start. It is ignored while running.
func (c *Controller) Select(id algo.ID) bool {
	if c.Running() {
		c.log.WithFields(c.fields()).WithField("requested", id.String()).Debug("select ignored while running")
		return false
	}
	c.selected = id
	return true
}

// SetDirection sets the direction for the next Start. It is ignored while running.
func (c *Controller) SetDirection(dir algo.Direction) bool {
	if c.Running() {
		c.log.WithFields(c.fields()).WithField("requested", dir.String()).Debug("direction ignored while running")
		return false
	}
	c.dir = dir
	return true
}

// Start binds a fresh algorithm of the selected kind to the sequence.
func (c *Controller) Start() error {
	if c.Running() {
		return ErrAlreadyRunning
	}

	a, err := c.registry.New(c.selected, c.seq, c.dir)
	if err != nil {
		c.log.WithFields(c.fields()).WithError(err).Warn("start failed")
		return &RunError{Algorithm: c.selected, Wrapped: err}
	}

	c.active = a
	c.steps = 0
	for _, m := range c.metrics {
		m.Reset()
	}
	c.log.WithFields(c.fields()).WithField("length", c.seq.Len()).Info("run started")
	return nil
}

// AdvanceOne performs exactly one atomic mutation. It returns ok == false
// when idle or when the run just completed; in the latter case the
// controller is idle again on return.
func (c *Controller) AdvanceOne() (algo.Step, bool, error) {
	if c.active == nil {
		return algo.Step{}, false, nil
	}

	st, err := c.active.Advance()
	if errors.Is(err, algo.ErrDone) {
		c.finish()
		return algo.Step{}, false, nil
	}
	if err != nil {
		id := c.active.ID()
		c.active = nil
		c.log.WithFields(c.fields()).WithError(err).Error("run aborted")
		return algo.Step{}, false, &RunError{Algorithm: id, Step: c.steps, Wrapped: err}
	}

	c.steps++
	for _, m := range c.metrics {
		m.Observe(c.seq, st)
	}
	for _, o := range c.observers {
		o.OnStep(c.selected, st)
	}
	return st, true, nil
}

func (c *Controller) finish() {
	c.active = nil
	c.last = c.Stats()
	c.log.WithFields(c.fields()).Info("run complete")
	for _, o := range c.observers {
		o.OnComplete(c.last)
	}
}

// Reset abandons any active algorithm wherever it is and loads values into
// the sequence. The controller is idle afterwards even when values is
// rejected.
func (c *Controller) Reset(values []int) error {
	if c.active != nil {
		c.log.WithFields(c.fields()).Info("run abandoned")
		c.active = nil
	}
	c.steps = 0
	for _, m := range c.metrics {
		m.Reset()
	}

	if err := c.seq.Reset(values); err != nil {
		return err
	}
	c.log.WithField("length", len(values)).Debug("sequence reset")
	return nil
}

// Drive runs the state machine to completion without a frame scheduler.
// A run is started first if the controller is idle. onStep may return false
// to stop early; the run then stays active.
func (c *Controller) Drive(ctx context.Context, onStep func(algo.Step) bool) (Stats, error) {
	if !c.Running() {
		if err := c.Start(); err != nil {
			return Stats{}, err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return c.Stats(), ctx.Err()
		default:
		}

		st, ok, err := c.AdvanceOne()
		if err != nil {
			return c.Stats(), err
		}
		if !ok {
			return c.last, nil
		}
		if onStep != nil && !onStep(st) {
			return c.Stats(), nil
		}
	}
}
