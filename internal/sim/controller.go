package sim

import (
	"fmt"

	"github.com/san-kum/incline/internal/config"
	"github.com/san-kum/incline/internal/incline"
	"github.com/san-kum/incline/internal/kinematics"
	"github.com/san-kum/incline/internal/logging"
	"github.com/san-kum/incline/internal/regression"
)

type Controller struct {
	presets   []config.Preset
	clock     Clock
	log       *logging.Logger
	observers []Observer

	index   int
	run     *kinematics.Run
	state   State
	trace   []Sample
	fit     *regression.Result
	outcome *Outcome
}

func New(presets []config.Preset, clock Clock, log *logging.Logger) (*Controller, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("%w: no presets", incline.ErrInvalidPresets)
	}
	if clock == nil {
		return nil, fmt.Errorf("sim: nil clock")
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Controller{
		presets: presets,
		clock:   clock,
		log:     log,
		run:     kinematics.NewRun(presets[0].Length),
		trace:   make([]Sample, 0, 128),
	}, nil
}

func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }

func (c *Controller) Presets() []config.Preset { return c.presets }
func (c *Controller) Index() int               { return c.index }
func (c *Controller) Preset() config.Preset    { return c.presets[c.index] }
func (c *Controller) State() State             { return c.state }
func (c *Controller) Elapsed() float64         { return c.run.T }
func (c *Controller) Displacement() float64    { return c.run.S }
func (c *Controller) Fit() *regression.Result  { return c.fit }
func (c *Controller) Outcome() *Outcome        { return c.outcome }

// Trace returns a copy of the samples of the current run.
func (c *Controller) Trace() []Sample {
	trace := make([]Sample, len(c.trace))
	copy(trace, c.trace)
	return trace
}

// Select switches to preset i and returns to Idle with a fresh run.
func (c *Controller) Select(i int) error {
	if i < 0 || i >= len(c.presets) {
		return fmt.Errorf("%w: index %d of %d", incline.ErrUnknownPreset, i, len(c.presets))
	}
	c.index = i
	c.run = kinematics.NewRun(c.presets[i].Length)
	c.clear()
	c.log.Debug("preset selected", "height", c.presets[i].Height, "length", c.presets[i].Length)
	return nil
}

// Toggle starts an idle run, pauses a running one and resumes a paused one.
func (c *Controller) Toggle() {
	switch c.state {
	case Idle:
		c.state = Running
	case Running:
		c.state = Paused
	case Paused:
		c.state = Running
	}
}

func (c *Controller) Reset() {
	c.run.Reset()
	c.clear()
}

func (c *Controller) clear() {
	c.state = Idle
	c.trace = c.trace[:0]
	c.fit = nil
	c.outcome = nil
}

// Tick advances a running experiment by one clock step. It reports whether
// the block reached the bottom during this tick.
func (c *Controller) Tick() bool {
	if c.state != Running {
		return false
	}

	s, v := c.run.Step(c.clock.Step())
	sample := Sample{S: s, V: v}
	c.trace = append(c.trace, sample)
	for _, o := range c.observers {
		o.OnStep(sample, c.run.T)
	}

	if !c.run.Done() {
		return false
	}
	c.complete()
	return true
}

func (c *Controller) complete() {
	c.state = Idle

	p := c.Preset()
	measured := c.run.AverageSpeed()
	c.outcome = &Outcome{
		Elapsed:  c.run.T,
		Measured: measured,
		Verdict:  Judge(measured, p),
	}
	c.log.Debug("run complete",
		"height", p.Height,
		"elapsed", c.run.T,
		"measured", measured,
		"verdict", string(c.outcome.Verdict))

	h, v := config.Columns(c.presets)
	fit, err := regression.Fit(h, v)
	if err != nil {
		c.log.Failure("regression failed", err, "height", p.Height)
		c.fit = nil
		return
	}
	c.fit = fit
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Index:   c.index,
		Preset:  c.Preset(),
		State:   c.state,
		Elapsed: c.run.T,
		S:       c.run.S,
		V:       c.run.Speed(),
		Trace:   c.Trace(),
		Fit:     c.fit,
		Outcome: c.outcome,
	}
}
