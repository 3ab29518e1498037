package common

import "time"

// Clock is the monotonic simulation clock. It only moves when Advance is
// called, so every deadline comparison is deterministic. Now is derived from
// the tick count: tick 12 at 60 Hz is exactly 200ms.
type Clock struct {
	now  time.Duration
	step time.Duration
	rate int
	tick uint64
}

// NewClock creates a clock with a fixed step derived from ticksPerSecond.
func NewClock(ticksPerSecond int) *Clock {
	if ticksPerSecond <= 0 {
		ticksPerSecond = TickRate
	}
	return &Clock{step: time.Second / time.Duration(ticksPerSecond), rate: ticksPerSecond}
}

// NewClockWithStep creates a clock with an explicit step length.
func NewClockWithStep(step time.Duration) *Clock {
	if step <= 0 {
		step = time.Second / TickRate
	}
	return &Clock{step: step}
}

func (c *Clock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return c.now
}

func (c *Clock) Step() time.Duration {
	if c == nil {
		return 0
	}
	return c.step
}

// Tick returns the number of completed steps.
func (c *Clock) Tick() uint64 {
	if c == nil {
		return 0
	}
	return c.tick
}

// Advance moves the clock forward by one step and returns the new time.
func (c *Clock) Advance() time.Duration {
	if c == nil {
		return 0
	}
	c.tick++
	if c.rate > 0 {
		c.now = time.Duration(c.tick) * time.Second / time.Duration(c.rate)
	} else {
		c.now = time.Duration(c.tick) * c.step
	}
	return c.now
}

// Seconds returns the step length in seconds.
func (c *Clock) Seconds() float64 {
	if c == nil {
		return 0
	}
	return c.step.Seconds()
}
