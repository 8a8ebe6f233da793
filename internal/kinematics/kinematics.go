package kinematics

import "math"

const (
	Gravity = 9.8
	Theta   = math.Pi / 6
)

var (
	SinTheta = math.Sin(Theta)
	CosTheta = math.Cos(Theta)

	// Accel is the along-incline component of gravity, about 4.9 m/s².
	Accel = Gravity * SinTheta
)

func Displacement(t float64) float64 {
	return 0.5 * Accel * t * t
}

func Speed(t float64) float64 {
	return Accel * t
}

// TheoryTime is the time to slide the whole plane of length l from rest.
func TheoryTime(l float64) float64 {
	return math.Sqrt(2 * l / Accel)
}

func TheorySpeed(l float64) float64 {
	t := TheoryTime(l)
	if t == 0 {
		return 0
	}
	return l / t
}

// Run is one slide down a plane of length L.
type Run struct {
	T float64
	S float64
	L float64
}

func NewRun(length float64) *Run {
	return &Run{L: length}
}

func (r *Run) Reset() {
	r.T = 0
	r.S = 0
}

// Step advances the run by dt and returns the new displacement and speed.
// Once the block reaches the bottom the run no longer changes.
func (r *Run) Step(dt float64) (s, v float64) {
	if r.S < r.L {
		r.T += dt
		r.S = Displacement(r.T)
		if r.S > r.L {
			r.S = r.L
		}
	}
	return r.S, Speed(r.T)
}

func (r *Run) Done() bool { return r.S >= r.L }

func (r *Run) Speed() float64 { return Speed(r.T) }

// AverageSpeed is L over elapsed time, or zero before the first step.
func (r *Run) AverageSpeed() float64 {
	if r.T <= 0 {
		return 0
	}
	return r.L / r.T
}
