package breakout

import "github.com/vovakirdan/touch-breakout/internal/core"

// Phase is the session state machine position.
type Phase int

const (
	PhaseIdle     Phase = iota // No session; waiting for StartGame
	PhaseRunning               // Ball in play
	PhaseGameOver              // Lives exhausted; needs an external restart
	PhaseCleared               // Every brick destroyed; needs an external restart
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "gameover"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Ball is the ball state in playfield units. X and Y are the top-left corner.
type Ball struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Move advances the ball by one tick of velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Paddle is the player's paddle. Only X changes during a session.
type Paddle struct {
	X    float64 // Left edge
	Y    float64 // Top edge
	W, H float64
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// Session holds the bookkeeping for one play-through.
type Session struct {
	ID              string
	Score           int
	Lives           int
	Running         bool
	Ticks           uint64
	BricksDestroyed int
}
