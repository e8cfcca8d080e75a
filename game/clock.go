package game

import "time"

// Clock is a polled repeating timer. It accumulates frame time and reports
// one tick for every full period accumulated.
type Clock struct {
	period  time.Duration
	elapsed time.Duration
}

// NewClock creates a clock firing every period. A non-positive period
// falls back to TickPeriod.
func NewClock(period time.Duration) *Clock {
	if period <= 0 {
		period = TickPeriod
	}
	return &Clock{period: period}
}

// Advance adds frame time. Negative durations are ignored.
func (c *Clock) Advance(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	c.elapsed += elapsed
}

// TickReady reports whether a full period has accumulated and, if so,
// consumes it. Drain with `for c.TickReady() {}` to get every tick a long
// frame spans.
func (c *Clock) TickReady() bool {
	if c.elapsed < c.period {
		return false
	}
	c.elapsed -= c.period
	return true
}

// Period returns the fixed tick period
func (c *Clock) Period() time.Duration {
	return c.period
}

// Pending returns time accumulated toward the next tick
func (c *Clock) Pending() time.Duration {
	return c.elapsed
}
