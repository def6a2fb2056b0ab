// Package timebase provides the wall-clock sampling and fixed-rate frame
// gating that drive the simulation loop. Gameplay speed is expressed in
// units-per-frame, so correctness depends on a consistent frame cadence
// rather than sub-millisecond clock precision.
package timebase

import "time"

// Clock supplies the current time. The system clock is used in production;
// tests substitute a manual clock to make timing behavior deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a test clock advanced explicitly.
type ManualClock struct {
	Current time.Time
}

// Now returns the manually set time.
func (c *ManualClock) Now() time.Time {
	return c.Current
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

// FrameGate fires at most once per fixed interval. The boundary advances by
// whole intervals, never by the raw elapsed delta, so rounding errors do not
// accumulate into drift. After a long stall the gate fires once and snaps
// the boundary forward instead of replaying the missed frames.
type FrameGate struct {
	interval time.Duration
	next     time.Time
	clock    Clock
}

// NewFrameGate creates a gate that fires ticksPerSecond times per second.
func NewFrameGate(ticksPerSecond int, clock Clock) *FrameGate {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &FrameGate{
		interval: time.Second / time.Duration(ticksPerSecond),
		next:     clock.Now(),
		clock:    clock,
	}
}

// Interval returns the gate's fixed frame interval.
func (g *FrameGate) Interval() time.Duration {
	return g.interval
}

// Ready reports whether a frame boundary has been reached. It returns true
// at most once per interval; between fires the caller should yield rather
// than busy-spin.
func (g *FrameGate) Ready() bool {
	now := g.clock.Now()
	if now.Before(g.next) {
		return false
	}

	g.next = g.next.Add(g.interval)
	if g.next.Before(now) {
		// Stalled for more than one interval: resynchronize instead of
		// firing a burst of catch-up frames.
		g.next = now.Add(g.interval)
	}
	return true
}

// Reset re-arms the gate relative to the current time.
func (g *FrameGate) Reset() {
	g.next = g.clock.Now()
}
