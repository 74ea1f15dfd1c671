package nebula

import "time"

// Clock supplies frame timing to the Container.
type Clock interface {
	// Tick returns the seconds since the previous Tick and since Reset.
	Tick() (delta, elapsed float64)
	// Reset restarts elapsed time at zero.
	Reset()
}

// wallClock measures real time between frames.
type wallClock struct {
	start time.Time
	last  time.Time
}

func newWallClock() *wallClock {
	c := &wallClock{}
	c.Reset()
	return c
}

func (c *wallClock) Tick() (float64, float64) {
	now := time.Now()
	delta := now.Sub(c.last).Seconds()
	c.last = now
	return delta, now.Sub(c.start).Seconds()
}

func (c *wallClock) Reset() {
	c.start = time.Now()
	c.last = c.start
}

// FixedStepClock advances by Step seconds on every Tick. Useful for
// reproducible scripted runs and tests.
type FixedStepClock struct {
	Step    float64
	elapsed float64
}

// Tick advances the clock by one step.
func (c *FixedStepClock) Tick() (float64, float64) {
	c.elapsed += c.Step
	return c.Step, c.elapsed
}

// Reset restarts the clock at zero.
func (c *FixedStepClock) Reset() {
	c.elapsed = 0
}
