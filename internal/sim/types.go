package sim

import (
	"math"

	"github.com/san-kum/incline/internal/config"
	"github.com/san-kum/incline/internal/regression"
)

type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// ToggleLabel is the caption of the start/pause button in this state.
func (s State) ToggleLabel() string {
	switch s {
	case Running:
		return "Pause"
	case Paused:
		return "Resume"
	default:
		return "Start"
	}
}

// Sample is one (displacement, velocity) point of a trace.
type Sample struct {
	S float64
	V float64
}

type Verdict string

const (
	Success   Verdict = "Success"
	Deviation Verdict = "Deviation"
)

// Judge compares a measured average speed with the experimental mean.
func Judge(measured float64, p config.Preset) Verdict {
	if math.Abs(measured-p.ExpSpeed) <= p.ExpSD {
		return Success
	}
	return Deviation
}

// Outcome is the comparison made when a run reaches the bottom.
type Outcome struct {
	Elapsed  float64
	Measured float64
	Verdict  Verdict
}

type Observer interface {
	OnStep(s Sample, t float64)
}

// Snapshot is a read-only copy of the controller for rendering.
type Snapshot struct {
	Index   int
	Preset  config.Preset
	State   State
	Elapsed float64
	S       float64
	V       float64
	Trace   []Sample
	Fit     *regression.Result
	Outcome *Outcome
}
