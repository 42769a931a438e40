package breakout

import "math"

// Snapshot contains the complete game state as primitives.
// Renderers read it after each tick; tests hash it to check determinism.
type Snapshot struct {
	SessionID string
	Tick      uint64
	Phase     string
	Score     int
	Lives     int
	Running   bool

	BallX, BallY   float64
	BallVX, BallVY float64
	PaddleX        float64

	Rows, Cols      int
	BricksRemaining int
	// BrickData holds one alive flag (1/0) per brick in row-major order.
	BrickData []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, len(g.grid.Bricks))
	for i := range g.grid.Bricks {
		if g.grid.Bricks[i].Alive {
			brickData[i] = 1
		}
	}

	return Snapshot{
		SessionID: g.session.ID,
		Tick:      g.session.Ticks,
		Phase:     g.phase.String(),
		Score:     g.session.Score,
		Lives:     g.session.Lives,
		Running:   g.session.Running,

		BallX:   g.ball.X,
		BallY:   g.ball.Y,
		BallVX:  g.ball.VX,
		BallVY:  g.ball.VY,
		PaddleX: g.paddle.X,

		Rows:            g.grid.Rows,
		Cols:            g.grid.Cols,
		BricksRemaining: g.grid.CountAlive(),
		BrickData:       brickData,
	}
}

// Hash returns a simple hash of the simulation state for determinism testing.
// The session ID is excluded so two runs with fresh IDs still compare equal.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, r := range snap.Phase {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	return h
}
