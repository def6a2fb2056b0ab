package game

import (
	"testing"

	"github.com/vovakirdan/tui-paddle/internal/config"
	"github.com/vovakirdan/tui-paddle/internal/core"
)

func testSpeedModulator() *SpeedModulator {
	m := NewSpeedModulator(config.DefaultConfig().Speed)
	m.Reset()
	return m
}

func TestSpeedPhaseSchedule(t *testing.T) {
	// 20 seconds normal, 5 seconds fast, repeating on a 25-second period.
	m := testSpeedModulator()

	for elapsed := 0; elapsed <= 60; elapsed++ {
		m.Update(elapsed)

		pos := elapsed % 25
		wantFast := pos >= 20
		gotFast := m.Phase() == core.PhaseFast

		if gotFast != wantFast {
			t.Fatalf("At elapsed=%d: phase=%v, expected fast=%v", elapsed, m.Phase(), wantFast)
		}
	}
}

func TestSpeedMultiplier(t *testing.T) {
	m := testSpeedModulator()

	if m.Multiplier() != 1.0 {
		t.Errorf("Normal phase multiplier should be 1.0, got %f", m.Multiplier())
	}

	m.Update(20)
	if m.Phase() != core.PhaseFast {
		t.Fatal("Phase should flip to fast at the 20-second threshold")
	}
	if m.Multiplier() != 2.0 {
		t.Errorf("Fast phase multiplier should be 2.0, got %f", m.Multiplier())
	}

	m.Update(25)
	if m.Phase() != core.PhaseNormal {
		t.Fatal("Phase should return to normal after 5 fast seconds")
	}
	if m.Multiplier() != 1.0 {
		t.Errorf("Multiplier should return to 1.0, got %f", m.Multiplier())
	}
}

func TestSpeedSingleTransitionPerUpdate(t *testing.T) {
	// A large elapsed jump applies at most one transition and resynchronizes
	// the schedule from there.
	m := testSpeedModulator()

	m.Update(100)
	if m.Phase() != core.PhaseFast {
		t.Fatalf("Expected one transition to fast, got %v", m.Phase())
	}
	if m.phaseStart != 100 {
		t.Errorf("Phase start should resync to 100, got %d", m.phaseStart)
	}

	// The fast phase now runs its full length from the new start.
	m.Update(104)
	if m.Phase() != core.PhaseFast {
		t.Error("Fast phase should still be running 4 seconds in")
	}
	m.Update(105)
	if m.Phase() != core.PhaseNormal {
		t.Error("Fast phase should end 5 seconds after the resynced start")
	}
}

func TestSpeedReset(t *testing.T) {
	m := testSpeedModulator()
	m.Update(20)
	if m.Phase() != core.PhaseFast {
		t.Fatal("Setup: expected fast phase")
	}

	m.Reset()
	if m.Phase() != core.PhaseNormal {
		t.Errorf("Reset should force the normal phase, got %v", m.Phase())
	}
	if m.phaseStart != 0 {
		t.Errorf("Reset should zero the phase start, got %d", m.phaseStart)
	}
}
