package game

import (
	"testing"

	"github.com/vovakirdan/tui-paddle/internal/config"
	"github.com/vovakirdan/tui-paddle/internal/core"
)

const (
	testFieldW = 80
	testTop    = 2
)

func testPhysics(seed int64) *Physics {
	return NewPhysics(config.DefaultConfig().Ball, testFieldW, testTop, seed)
}

func testPaddle() Paddle {
	cfg := config.DefaultConfig()
	p := Paddle{
		Y:     21,
		Width: cfg.Paddle.Width,
		Step:  cfg.Paddle.Step,
	}
	p.X = float64(testFieldW-p.Width) / 2
	return p
}

func TestResetBallPlacement(t *testing.T) {
	ph := testPhysics(1)
	var b Ball
	ph.ResetBall(&b)

	if b.X != float64(testFieldW)/2 {
		t.Errorf("Ball should start at horizontal center, got X=%f", b.X)
	}
	if b.Y != float64(testTop)+2 {
		t.Errorf("Ball should start just below the ceiling, got Y=%f", b.Y)
	}
	if b.VY <= 0 {
		t.Errorf("Ball should always start moving down, got VY=%f", b.VY)
	}

	cfg := config.DefaultConfig().Ball
	if core.AbsF(b.VX) != cfg.Speed {
		t.Errorf("Horizontal speed magnitude should be %f, got %f", cfg.Speed, core.AbsF(b.VX))
	}
	if b.Radius != cfg.Radius {
		t.Errorf("Radius should be %f, got %f", cfg.Radius, b.Radius)
	}
}

func TestResetBallDeterministicDirection(t *testing.T) {
	// Same seed must produce the same serve directions every time.
	ph1 := testPhysics(42)
	ph2 := testPhysics(42)

	for i := 0; i < 20; i++ {
		var b1, b2 Ball
		ph1.ResetBall(&b1)
		ph2.ResetBall(&b2)
		if b1.VX != b2.VX {
			t.Fatalf("Serve %d: directions differ for equal seeds: %f vs %f", i, b1.VX, b2.VX)
		}
	}
}

func TestWallBounceLeft(t *testing.T) {
	ph := testPhysics(1)
	p := testPaddle()
	b := Ball{X: 0.6, Y: 10, VX: -0.35, VY: 0, Radius: 0.5}

	events := ph.Advance(&b, &p, 1.0)

	if len(events) != 1 || events[0] != EventWallBounce {
		t.Fatalf("Expected a single wall bounce event, got %v", events)
	}
	if b.X != b.Radius {
		t.Errorf("Ball should be clamped to the left boundary, got X=%f", b.X)
	}
	if b.VX <= 0 {
		t.Errorf("Ball should move right after left wall bounce, VX=%f", b.VX)
	}
}

func TestWallBounceRight(t *testing.T) {
	ph := testPhysics(1)
	p := testPaddle()
	b := Ball{X: 79.4, Y: 10, VX: 0.35, VY: 0, Radius: 0.5}

	events := ph.Advance(&b, &p, 1.0)

	if len(events) != 1 || events[0] != EventWallBounce {
		t.Fatalf("Expected a single wall bounce event, got %v", events)
	}
	if b.X != float64(testFieldW)-b.Radius {
		t.Errorf("Ball should be clamped to the right boundary, got X=%f", b.X)
	}
	if b.VX >= 0 {
		t.Errorf("Ball should move left after right wall bounce, VX=%f", b.VX)
	}
}

func TestCeilingBounce(t *testing.T) {
	ph := testPhysics(1)
	p := testPaddle()
	b := Ball{X: 40, Y: 2.6, VX: 0, VY: -0.35, Radius: 0.5}

	events := ph.Advance(&b, &p, 1.0)

	if len(events) != 1 || events[0] != EventWallBounce {
		t.Fatalf("Expected a single wall bounce event, got %v", events)
	}
	if b.Y != float64(testTop)+b.Radius {
		t.Errorf("Ball should be clamped below the ceiling, got Y=%f", b.Y)
	}
	if b.VY <= 0 {
		t.Errorf("Ball should move down after ceiling bounce, VY=%f", b.VY)
	}
}

func TestCornerBounceReportsTwoEvents(t *testing.T) {
	// A side wall and the ceiling hit in the same tick are two bounces.
	ph := testPhysics(1)
	p := testPaddle()
	b := Ball{X: 0.6, Y: 2.6, VX: -0.35, VY: -0.35, Radius: 0.5}

	events := ph.Advance(&b, &p, 1.0)

	if len(events) != 2 {
		t.Fatalf("Expected two events for a corner hit, got %v", events)
	}
	for _, ev := range events {
		if ev != EventWallBounce {
			t.Errorf("Corner hit should only produce wall bounces, got %v", ev)
		}
	}
	if b.VX <= 0 || b.VY <= 0 {
		t.Errorf("Both velocity components should point inward, VX=%f VY=%f", b.VX, b.VY)
	}
}

func TestPaddleHitReflects(t *testing.T) {
	ph := testPhysics(1)
	p := testPaddle()
	b := Ball{X: p.Center(), Y: 20.5, VX: 0, VY: 0.35, Radius: 0.5}

	events := ph.Advance(&b, &p, 1.0)

	if len(events) != 1 || events[0] != EventPaddleHit {
		t.Fatalf("Expected a paddle hit event, got %v", events)
	}
	if b.VY >= 0 {
		t.Errorf("Ball should move up after paddle hit, VY=%f", b.VY)
	}
	if b.Y != float64(p.Y)-b.Radius {
		t.Errorf("Ball should be repositioned above the paddle, got Y=%f", b.Y)
	}
}

func TestPaddleSpin(t *testing.T) {
	ph := testPhysics(1)
	p := testPaddle()

	// Hit right of center: the ball should deflect right.
	b := Ball{X: p.Center() + 3, Y: 20.5, VX: 0, VY: 0.35, Radius: 0.5}
	ph.Advance(&b, &p, 1.0)
	if b.VX <= 0 {
		t.Errorf("Off-center hit right of center should deflect right, VX=%f", b.VX)
	}

	// Hit left of center: the ball should deflect left.
	b = Ball{X: p.Center() - 3, Y: 20.5, VX: 0, VY: 0.35, Radius: 0.5}
	ph.Advance(&b, &p, 1.0)
	if b.VX >= 0 {
		t.Errorf("Off-center hit left of center should deflect left, VX=%f", b.VX)
	}
}

func TestPaddleSpinClamped(t *testing.T) {
	cfg := config.DefaultConfig().Ball
	ph := testPhysics(1)
	p := testPaddle()

	// Edge hit with maximum incoming horizontal speed: the spin is clamped
	// before the per-hit acceleration is applied.
	b := Ball{X: p.X + float64(p.Width) - cfg.MaxHorizontal, Y: 20.5, VX: cfg.MaxHorizontal, VY: 0.35, Radius: 0.5}
	ph.Advance(&b, &p, 1.0)

	limit := cfg.MaxHorizontal * cfg.Accel
	if core.AbsF(b.VX) > limit+1e-9 {
		t.Errorf("Horizontal speed should be clamped to %f before accel, got %f", limit, core.AbsF(b.VX))
	}
}

func TestPaddleHitAccelerates(t *testing.T) {
	cfg := config.DefaultConfig().Ball
	ph := testPhysics(1)
	p := testPaddle()
	b := Ball{X: p.Center(), Y: 20.5, VX: 0, VY: 0.35, Radius: 0.5}

	ph.Advance(&b, &p, 1.0)

	want := 0.35 * cfg.Accel
	if got := core.AbsF(b.VY); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("Vertical speed should compound by %f per hit, got %f want %f", cfg.Accel, got, want)
	}
}

func TestPointLost(t *testing.T) {
	ph := testPhysics(1)
	p := testPaddle()
	b := Ball{X: 5, Y: 20.8, VX: 0, VY: 0.35, Radius: 0.5}

	events := ph.Advance(&b, &p, 1.0)

	if len(events) != 1 || events[0] != EventPointLost {
		t.Fatalf("Expected a point lost event, got %v", events)
	}
	if b.VY <= 0 {
		t.Errorf("Ball should keep falling after a miss, VY=%f", b.VY)
	}
}

func TestNoPaddleCheckWhileRising(t *testing.T) {
	// The paddle plane is evaluated only on the way down; a rising ball at
	// paddle height passes through.
	ph := testPhysics(1)
	p := testPaddle()
	b := Ball{X: p.Center(), Y: 21.2, VX: 0, VY: -0.35, Radius: 0.5}

	events := ph.Advance(&b, &p, 1.0)

	if len(events) != 0 {
		t.Errorf("Rising ball should not interact with the paddle, got %v", events)
	}
}

func TestMultiplierScalesDisplacement(t *testing.T) {
	ph := testPhysics(1)
	p := testPaddle()

	b1 := Ball{X: 40, Y: 10, VX: 0.35, VY: 0.35, Radius: 0.5}
	b2 := b1
	ph.Advance(&b1, &p, 1.0)
	ph.Advance(&b2, &p, 2.0)

	d1 := b1.X - 40
	d2 := b2.X - 40
	if d2 != 2*d1 {
		t.Errorf("Multiplier 2 should double displacement: got %f vs %f", d2, d1)
	}
}
