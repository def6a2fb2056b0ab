package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic serves
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SpeedPhase selects the global velocity multiplier period.
type SpeedPhase int

const (
	PhaseNormal SpeedPhase = iota // x1 multiplier, filled ball glyph
	PhaseFast                     // x2 multiplier, outline ball glyph
)

// String returns a human-readable name for the phase.
func (p SpeedPhase) String() string {
	if p == PhaseFast {
		return "Fast"
	}
	return "Normal"
}

// GameState represents the externally visible state of the session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int        // Remaining lives
	Elapsed  int        // Whole seconds survived this run
	Final    int        // Elapsed seconds captured at game over (0 while playing)
	Best     int        // Best survival time across runs
	Phase    SpeedPhase // Current speed phase
	Playing  bool       // True while a run is in progress
	GameOver bool       // True on the game-over screen
}

// StepResult is returned by Game.Step() after each simulation tick.
// Cues are the audio events produced by this tick; the platform forwards
// them to the audio adapter so the simulation never touches I/O.
type StepResult struct {
	State GameState
	Cues  []CueID
}

// CueID names a fixed audio pattern triggered by a game event.
type CueID int

const (
	CuePaddleHit CueID = iota
	CueWallBounce
	CueLosePoint
	CueFirstStart
	CueBestTime
)

// String returns a human-readable name for the cue.
func (c CueID) String() string {
	switch c {
	case CuePaddleHit:
		return "paddleHit"
	case CueWallBounce:
		return "wallBounce"
	case CueLosePoint:
		return "losePoint"
	case CueFirstStart:
		return "firstStart"
	case CueBestTime:
		return "bestTime"
	default:
		return "unknown"
	}
}
