package sim

// Clock is the simulation time source. Each call to Step returns the time
// that passes during one tick.
type Clock interface {
	Step() float64
}

// FixedClock advances by the same dt every tick.
type FixedClock struct {
	Dt float64
}

func NewFixedClock(fps int) *FixedClock {
	return &FixedClock{Dt: 1.0 / float64(fps)}
}

func (c *FixedClock) Step() float64 { return c.Dt }
