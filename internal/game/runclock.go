package game

import (
	"time"

	"github.com/vovakirdan/tui-paddle/internal/timebase"
)

// RunClock counts whole seconds survived in the current run. Accumulation is
// independent of frame cadence: each tick it adds however many whole seconds
// have passed since the recorded boundary and advances the boundary by
// exactly that many seconds, never by the raw delta, so fractional leftovers
// carry over instead of accumulating into drift.
type RunClock struct {
	clock timebase.Clock
	mark  time.Time // Last whole-second boundary
	units int
}

// NewRunClock creates a run clock reading from the given time source.
func NewRunClock(clock timebase.Clock) *RunClock {
	return &RunClock{clock: clock, mark: clock.Now()}
}

// Reset restarts the count at the current instant.
func (c *RunClock) Reset() {
	c.mark = c.clock.Now()
	c.units = 0
}

// Tick folds any whole elapsed seconds into the counter. Called once per
// simulation tick while a run is in progress; never while the run is over,
// which freezes the final value.
func (c *RunClock) Tick() {
	d := c.clock.Now().Sub(c.mark)
	if d < time.Second {
		return
	}
	n := int(d / time.Second)
	c.units += n
	c.mark = c.mark.Add(time.Duration(n) * time.Second)
}

// Units returns the whole seconds counted so far.
func (c *RunClock) Units() int {
	return c.units
}
