// Package timestep decouples a fixed simulation rate from a variable
// render rate.
package timestep

import "time"

const (
	DefaultRate     = 60
	DefaultMaxSteps = 8
)

// Accumulator collects elapsed wall time and hands it out in fixed steps.
// Leftover time carries over to the next frame.
type Accumulator struct {
	Step     time.Duration
	MaxSteps int // steps per Advance call; 0 means unlimited

	acc time.Duration
}

func NewAccumulator(rate int) *Accumulator {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Accumulator{
		Step:     time.Second / time.Duration(rate),
		MaxSteps: DefaultMaxSteps,
	}
}

// Advance adds elapsed time and returns how many fixed steps to run now.
// When the cap is hit the excess time is dropped so a long stall does not
// snowball into ever longer frames.
func (a *Accumulator) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		a.acc += elapsed
	}

	steps := int(a.acc / a.Step)
	if a.MaxSteps > 0 && steps > a.MaxSteps {
		steps = a.MaxSteps
		a.acc = 0
		return steps
	}

	a.acc -= time.Duration(steps) * a.Step
	return steps
}

// Seconds is the step length in seconds, the deltaTime passed to each tick.
func (a *Accumulator) Seconds() float32 {
	return float32(a.Step.Seconds())
}

// Counter measures frames and simulation updates per second.
type Counter struct {
	frames  int
	updates int
	since   time.Time
}

func NewCounter(now time.Time) *Counter {
	return &Counter{since: now}
}

func (c *Counter) Frame() {
	c.frames++
}

func (c *Counter) Updates(n int) {
	c.updates += n
}

// Sample returns the counts for the last full second and resets them. ok is
// false until a second has passed.
func (c *Counter) Sample(now time.Time) (fps, ups int, ok bool) {
	if now.Sub(c.since) < time.Second {
		return 0, 0, false
	}
	fps, ups = c.frames, c.updates
	c.frames, c.updates = 0, 0
	c.since = c.since.Add(time.Second)
	return fps, ups, true
}
