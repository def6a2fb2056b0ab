package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-paddle/internal/config"
	"github.com/vovakirdan/tui-paddle/internal/core"
)

// Ball is the ball state in real-valued field coordinates.
type Ball struct {
	X, Y   float64 // Center position
	VX, VY float64 // Velocity per tick (before the phase multiplier)
	Radius float64
}

// Paddle is the player's paddle. Only the horizontal position changes; the
// row, width, and step are fixed for the run.
type Paddle struct {
	X     float64 // Left edge
	Y     int     // Field row the paddle occupies
	Width int     // Width in cells
	Step  float64 // Cells moved per tick per held button
}

// Center returns the paddle's horizontal center.
func (p *Paddle) Center() float64 {
	return p.X + float64(p.Width)/2
}

// Event is a collision outcome reported by Advance. The session controller
// consumes events and drives the audio and scoring side effects, keeping the
// physics free of adapter calls.
type Event int

const (
	EventWallBounce Event = iota // Side wall or ceiling reflection
	EventPaddleHit               // Ball returned by the paddle
	EventPointLost               // Ball passed the paddle plane
)

// Physics advances the ball and resolves collisions against the field
// boundaries and the paddle. It is deterministic for a given seed.
type Physics struct {
	cfg    config.BallConfig
	fieldW float64 // Right boundary (left is 0)
	top    float64 // Ceiling row below the HUD
	rng    *rand.Rand
}

// NewPhysics creates a physics engine for a field of the given width whose
// ceiling sits at the top row.
func NewPhysics(cfg config.BallConfig, fieldW, top int, seed int64) *Physics {
	return &Physics{
		cfg:    cfg,
		fieldW: float64(fieldW),
		top:    float64(top),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// ResetBall places the ball at its seed position below the ceiling with the
// base speed on both axes. The horizontal direction is drawn from the RNG
// with two equally likely outcomes; the vertical direction is always down.
func (ph *Physics) ResetBall(b *Ball) {
	b.X = ph.fieldW / 2
	b.Y = ph.top + 2
	b.Radius = ph.cfg.Radius

	b.VX = ph.cfg.Speed
	if ph.rng.Intn(2) == 0 {
		b.VX = -ph.cfg.Speed
	}
	b.VY = ph.cfg.Speed
}

// Advance displaces the ball by velocity x multiplier and resolves
// collisions. Wall and ceiling bounces clamp the position to the boundary
// and flip the corresponding velocity component inward; a side bounce and a
// ceiling bounce in the same tick report two separate events. The paddle
// plane is evaluated only while the ball moves downward and its bottom edge
// reaches the paddle row: inside the paddle span the ball reflects upward
// with position-dependent spin and compounding acceleration, outside it the
// point is lost and the ball is left where it is (the caller resets it
// unless the run is ending).
func (ph *Physics) Advance(b *Ball, p *Paddle, multiplier float64) []Event {
	var events []Event

	b.X += b.VX * multiplier
	b.Y += b.VY * multiplier

	// Side walls
	if b.X-b.Radius <= 0 {
		b.X = b.Radius
		b.VX = core.AbsF(b.VX)
		events = append(events, EventWallBounce)
	} else if b.X+b.Radius >= ph.fieldW {
		b.X = ph.fieldW - b.Radius
		b.VX = -core.AbsF(b.VX)
		events = append(events, EventWallBounce)
	}

	// Ceiling
	if b.Y-b.Radius <= ph.top {
		b.Y = ph.top + b.Radius
		b.VY = core.AbsF(b.VY)
		events = append(events, EventWallBounce)
	}

	// Paddle plane
	if b.VY > 0 && b.Y+b.Radius >= float64(p.Y) {
		if b.X >= p.X && b.X <= p.X+float64(p.Width) {
			b.VY = -core.AbsF(b.VY)

			// Spin: hits away from the center deflect harder.
			b.VX += (b.X - p.Center()) * ph.cfg.Gain
			b.VX = core.ClampF(b.VX, -ph.cfg.MaxHorizontal, ph.cfg.MaxHorizontal)

			// Compounding speed-up per return, no cap.
			b.VX *= ph.cfg.Accel
			b.VY *= ph.cfg.Accel

			b.Y = float64(p.Y) - b.Radius
			events = append(events, EventPaddleHit)
		} else {
			events = append(events, EventPointLost)
		}
	}

	return events
}
