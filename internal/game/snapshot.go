package game

import (
	"fmt"
	"hash/fnv"
)

// Snapshot captures the observable simulation state. Used by tests to check
// determinism across runs with identical seeds and inputs.
type Snapshot struct {
	Tick    int
	State   string
	Score   int
	Elapsed int
	Final   int
	Best    int

	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64

	Phase      int
	PhaseStart int
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tickCount,
		State:   g.state,
		Score:   g.score,
		Elapsed: g.clock.Units(),
		Final:   g.finalTime,
		Best:    g.ledger.Best(),

		PaddleX: g.paddle.X,
		BallX:   g.ball.X,
		BallY:   g.ball.Y,
		BallVX:  g.ball.VX,
		BallVY:  g.ball.VY,

		Phase:      int(g.speed.Phase()),
		PhaseStart: g.speed.phaseStart,
	}
}

// Hash folds the snapshot into a single comparable value.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%+v", s)
	return h.Sum64()
}
