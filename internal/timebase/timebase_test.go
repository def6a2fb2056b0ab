package timebase

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	mc := &ManualClock{Current: time.Unix(1000, 0)}

	before := mc.Now()
	mc.Advance(250 * time.Millisecond)
	if got := mc.Now().Sub(before); got != 250*time.Millisecond {
		t.Errorf("Advance(250ms) moved the clock by %v", got)
	}
}

func TestFrameGateFiresOncePerInterval(t *testing.T) {
	mc := &ManualClock{Current: time.Unix(1000, 0)}
	g := NewFrameGate(50, mc) // 20ms interval

	if !g.Ready() {
		t.Fatal("Gate should fire immediately at its start boundary")
	}
	if g.Ready() {
		t.Error("Gate must not fire twice in the same interval")
	}

	mc.Advance(19 * time.Millisecond)
	if g.Ready() {
		t.Error("Gate must not fire before the interval elapses")
	}

	mc.Advance(1 * time.Millisecond)
	if !g.Ready() {
		t.Error("Gate should fire at the next boundary")
	}
}

func TestFrameGateNoDrift(t *testing.T) {
	// Polling at a finer cadence than the interval must still produce exactly
	// one fire per interval over a long stretch.
	mc := &ManualClock{Current: time.Unix(1000, 0)}
	g := NewFrameGate(50, mc) // 20ms interval

	fires := 0
	for i := 0; i < 1000; i++ { // 1 second of 1ms polls
		if g.Ready() {
			fires++
		}
		mc.Advance(time.Millisecond)
	}

	// One fire at t=0 plus one per 20ms boundary crossed.
	if fires != 50 {
		t.Errorf("Expected 50 fires over 1s at 50 tps, got %d", fires)
	}
}

func TestFrameGateStallResync(t *testing.T) {
	mc := &ManualClock{Current: time.Unix(1000, 0)}
	g := NewFrameGate(50, mc)
	g.Ready() // Consume the initial fire

	// A long stall yields a single catch-up fire, not a burst.
	mc.Advance(500 * time.Millisecond)
	if !g.Ready() {
		t.Fatal("Gate should fire once after a stall")
	}
	if g.Ready() {
		t.Error("Stall must not queue extra fires")
	}

	// The boundary resynchronized relative to the stall end.
	mc.Advance(19 * time.Millisecond)
	if g.Ready() {
		t.Error("Gate should wait a full interval after resync")
	}
	mc.Advance(1 * time.Millisecond)
	if !g.Ready() {
		t.Error("Gate should fire one interval after resync")
	}
}

func TestFrameGateReset(t *testing.T) {
	mc := &ManualClock{Current: time.Unix(1000, 0)}
	g := NewFrameGate(50, mc)
	g.Ready()

	// Reset re-arms relative to now, so the gate fires immediately again.
	mc.Advance(5 * time.Millisecond)
	g.Reset()
	if !g.Ready() {
		t.Error("Gate should fire immediately after Reset")
	}
}

func TestFrameGateDefaults(t *testing.T) {
	g := NewFrameGate(0, nil)
	if g.Interval() != time.Second/60 {
		t.Errorf("Zero tick rate should default to 60 tps, interval=%v", g.Interval())
	}

	g = NewFrameGate(30, nil)
	if g.Interval() != time.Second/30 {
		t.Errorf("Interval should be 1/30s, got %v", g.Interval())
	}
}
