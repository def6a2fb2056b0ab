package game

import (
	"github.com/vovakirdan/tui-paddle/internal/config"
	"github.com/vovakirdan/tui-paddle/internal/core"
)

// SpeedModulator alternates the global velocity multiplier on a fixed
// schedule: NormalSecs of normal play, FastSecs of doubled displacement,
// repeating. Transitions are checked once per tick; if elapsed time jumps
// past more than one phase length in a single update, only one transition
// is applied and the schedule resynchronizes from there.
type SpeedModulator struct {
	cfg        config.SpeedConfig
	phase      core.SpeedPhase
	phaseStart int // Elapsed-seconds value at which the current phase began
}

// NewSpeedModulator creates a modulator starting in the normal phase.
func NewSpeedModulator(cfg config.SpeedConfig) *SpeedModulator {
	return &SpeedModulator{cfg: cfg}
}

// Reset forces the normal phase with a phase start of zero.
func (m *SpeedModulator) Reset() {
	m.phase = core.PhaseNormal
	m.phaseStart = 0
}

// Update transitions the phase when its duration threshold is reached,
// resetting the phase-start marker to the current elapsed value.
func (m *SpeedModulator) Update(elapsed int) {
	switch m.phase {
	case core.PhaseNormal:
		if elapsed-m.phaseStart >= m.cfg.NormalSecs {
			m.phase = core.PhaseFast
			m.phaseStart = elapsed
		}
	case core.PhaseFast:
		if elapsed-m.phaseStart >= m.cfg.FastSecs {
			m.phase = core.PhaseNormal
			m.phaseStart = elapsed
		}
	}
}

// Multiplier returns the displacement multiplier for the current phase.
func (m *SpeedModulator) Multiplier() float64 {
	if m.phase == core.PhaseFast {
		return m.cfg.FastMult
	}
	return m.cfg.NormalMult
}

// Phase returns the current phase. The renderer uses it to pick the ball
// glyph: filled in normal play, outline while fast.
func (m *SpeedModulator) Phase() core.SpeedPhase {
	return m.phase
}
