// Package game implements the single-player paddle survival game: keep the
// ball in play with ten lives while the clock runs; the score is how long
// you last. The package holds the whole deterministic simulation core; all
// I/O happens in the platform layer through the types in internal/core.
package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-paddle/internal/config"
	"github.com/vovakirdan/tui-paddle/internal/core"
	"github.com/vovakirdan/tui-paddle/internal/timebase"
)

// Visual characters for rendering
const (
	PaddleChar     = '▀'
	BallChar       = '●' // Normal phase: filled
	BallFastChar   = '○' // Fast phase: outline
	SeparatorHoriz = '─'
)

// Session state constants
const (
	StateStart    = "start"    // Title screen, waiting for a button
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // Out of lives, showing final and best time
)

// HUD layout
const hudRows = 2 // Score/time row plus separator

// Game is the session controller: it owns all per-run state and the
// top-level state machine, and coordinates physics, speed phases, timing,
// and the best-time ledger. One Game instance lives for the whole process;
// individual runs are started and ended inside it.
type Game struct {
	state string

	runtime core.RuntimeConfig
	cfg     config.Config

	paddle  Paddle
	ball    Ball
	physics *Physics
	speed   *SpeedModulator
	clock   *RunClock
	wall    timebase.Clock

	score         int
	finalTime     int
	finalCaptured bool

	ledger *Ledger

	// Process-lifetime latch: the first-start cue fires once per boot and
	// never again, across any number of runs.
	firstStartPlayed bool

	startPressed bool      // Start input seen, waiting for release
	holdStart    time.Time // Chord hold start on the game-over screen
	blinkOn      bool
	blinkTick    int
	tickCount    int

	fieldTop int // First playfield row below the HUD
}

// New creates the session with the given gameplay config and record store.
// Call Reset before the first Step.
func New(cfg config.Config, store RecordStore) *Game {
	wall := timebase.Clock(timebase.SystemClock{})
	return &Game{
		cfg:    cfg,
		wall:   wall,
		clock:  NewRunClock(wall),
		speed:  NewSpeedModulator(cfg.Speed),
		ledger: NewLedger(store),
		state:  StateStart,
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "paddle"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Paddle"
}

// Reset sizes the session to the runtime config and returns to the title
// screen. The first-start latch and the loaded best record survive; they
// have process lifetime by design.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.fieldTop = hudRows

	g.paddle = Paddle{
		Y:     runtime.ScreenH - g.cfg.Paddle.BottomOffset - 1,
		Width: g.cfg.Paddle.Width,
		Step:  g.cfg.Paddle.Step,
	}
	g.centerPaddle()

	g.physics = NewPhysics(g.cfg.Ball, runtime.ScreenW, g.fieldTop, runtime.Seed)
	g.physics.ResetBall(&g.ball)

	g.score = g.cfg.Rules.Lives
	g.finalTime = 0
	g.finalCaptured = false
	g.tickCount = 0
	g.startPressed = false
	g.holdStart = time.Time{}

	g.speed.Reset()
	g.clock.Reset()
	g.enterStart()
}

func (g *Game) centerPaddle() {
	g.paddle.X = float64(g.runtime.ScreenW-g.paddle.Width) / 2
}

// enterStart arms the title screen blink toggle.
func (g *Game) enterStart() {
	g.state = StateStart
	g.blinkOn = true
	g.blinkTick = 0
}

// startRun performs the full run reset and begins play.
func (g *Game) startRun() {
	g.score = g.cfg.Rules.Lives
	g.finalTime = 0
	g.finalCaptured = false
	g.centerPaddle()
	g.physics.ResetBall(&g.ball)
	g.clock.Reset()
	g.speed.Reset()
	g.state = StatePlaying
}

// Step advances the session by one tick. Exactly one state-machine step
// runs per call; the returned cues are this tick's audio events, in order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++

	var cues []core.CueID
	switch g.state {
	case StateStart:
		cues = g.stepStart(in)
	case StatePlaying:
		cues = g.stepPlaying(in)
	case StateGameOver:
		cues = g.stepGameOver(in)
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// stepStart waits for a press-then-release of either button. The very first
// press since boot plays the one-shot start cue.
func (g *Game) stepStart(in core.InputFrame) []core.CueID {
	g.blinkTick++
	if g.blinkTick >= g.blinkPeriod() {
		g.blinkTick = 0
		g.blinkOn = !g.blinkOn
	}

	var cues []core.CueID
	if in.Any() {
		if !g.firstStartPlayed {
			g.firstStartPlayed = true
			cues = append(cues, core.CueFirstStart)
		}
		g.startPressed = true
		return cues
	}

	if g.startPressed {
		g.startPressed = false
		g.startRun()
	}
	return cues
}

func (g *Game) blinkPeriod() int {
	if g.runtime.TickRate <= 0 {
		return 30
	}
	return g.runtime.TickRate / 2
}

// stepPlaying runs one simulation tick: clock, speed phase, paddle motion,
// physics, and scoring.
func (g *Game) stepPlaying(in core.InputFrame) []core.CueID {
	g.clock.Tick()
	g.speed.Update(g.clock.Units())

	// Both directions may be held at once; both apply.
	if in.Has(core.ActionLeft) {
		g.paddle.X -= g.paddle.Step
	}
	if in.Has(core.ActionRight) {
		g.paddle.X += g.paddle.Step
	}
	g.paddle.X = core.ClampF(g.paddle.X, 0, float64(g.runtime.ScreenW-g.paddle.Width))

	var cues []core.CueID
	for _, ev := range g.physics.Advance(&g.ball, &g.paddle, g.speed.Multiplier()) {
		switch ev {
		case EventWallBounce:
			cues = append(cues, core.CueWallBounce)
		case EventPaddleHit:
			cues = append(cues, core.CuePaddleHit)
		case EventPointLost:
			cues = append(cues, core.CueLosePoint)
			g.score--
			if g.score > 0 {
				g.physics.ResetBall(&g.ball)
				continue
			}
			if !g.finalCaptured {
				g.finalTime = g.clock.Units()
				g.finalCaptured = true
			}
			if g.ledger.Submit(g.finalTime) {
				cues = append(cues, core.CueBestTime)
			}
			g.holdStart = time.Time{}
			g.state = StateGameOver
		}
	}
	return cues
}

// stepGameOver waits for both buttons held continuously for the configured
// duration. The hold timer resets the instant either button is released, so
// brief simultaneous taps never restart.
func (g *Game) stepGameOver(in core.InputFrame) []core.CueID {
	if !in.Both() {
		g.holdStart = time.Time{}
		return nil
	}

	now := g.wall.Now()
	if g.holdStart.IsZero() {
		g.holdStart = now
	}
	if now.Sub(g.holdStart) >= time.Duration(g.cfg.Rules.RestartHoldMs)*time.Millisecond {
		g.holdStart = time.Time{}
		g.startPressed = false
		g.enterStart()
	}
	return nil
}

// State returns the externally visible session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Elapsed:  g.clock.Units(),
		Final:    g.finalTime,
		Best:     g.ledger.Best(),
		Phase:    g.speed.Phase(),
		Playing:  g.state == StatePlaying,
		GameOver: g.state == StateGameOver,
	}
}

// Render draws the current session state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case StateStart:
		g.renderStart(dst)
	case StatePlaying:
		g.renderPlaying(dst)
	case StateGameOver:
		g.renderPlaying(dst) // Final field stays visible under the overlay
		g.renderGameOver(dst)
	}
}

func (g *Game) renderStart(dst *core.Screen) {
	midY := dst.Height() / 2

	dst.DrawTextCentered(midY-2, "P A D D L E")
	if g.blinkOn {
		dst.DrawTextCentered(midY, "Press any button to start")
	}
	if best := g.ledger.Best(); best > 0 {
		dst.DrawTextCentered(midY+2, "Best: "+FormatTime(best))
	}
}

func (g *Game) renderPlaying(dst *core.Screen) {
	// HUD
	dst.DrawText(1, 0, fmt.Sprintf("Pong's: %d", g.score))
	elapsed := FormatTime(g.clock.Units())
	dst.DrawText(dst.Width()-len(elapsed)-1, 0, elapsed)
	dst.DrawHLine(0, 1, dst.Width(), SeparatorHoriz)

	// Paddle
	px := int(g.paddle.X)
	for i := 0; i < g.paddle.Width; i++ {
		dst.Set(px+i, g.paddle.Y, PaddleChar)
	}

	// Ball glyph tracks the speed phase: filled in normal, outline in fast.
	glyph := BallChar
	if g.speed.Phase() == core.PhaseFast {
		glyph = BallFastChar
	}
	dst.Set(int(g.ball.X), int(g.ball.Y), glyph)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		"Tiempo: " + FormatTime(g.finalTime),
		"Best: " + FormatTime(g.ledger.Best()),
		"Hold both buttons to restart",
	}

	boxW := 0
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+2+i, l)
	}
}
