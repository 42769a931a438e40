package breakout

import "github.com/vovakirdan/touch-breakout/internal/config"

// Geometry is a value snapshot of every size and boundary the loop needs.
// It is taken once per tick so collision checks never see a half-updated layout.
type Geometry struct {
	ScreenW      float64
	ScreenH      float64
	BottomMargin float64 // Ball bottom at ScreenH-BottomMargin or lower loses a life

	BallW, BallH     float64
	PaddleW, PaddleH float64
	PaddleY          float64 // Paddle top edge, fixed for the session

	BrickW, BrickH float64
	BrickMargin    float64 // Applied on every side of a brick
	BrickTop       float64 // Y of the first brick row cell
}

// GeometryFrom derives a Geometry from configuration.
func GeometryFrom(cfg config.BreakoutConfig) Geometry {
	return Geometry{
		ScreenW:      cfg.Field.Width,
		ScreenH:      cfg.Field.Height,
		BottomMargin: cfg.Field.BottomMargin,
		BallW:        cfg.Ball.Width,
		BallH:        cfg.Ball.Height,
		PaddleW:      cfg.Paddle.Width,
		PaddleH:      cfg.Paddle.Height,
		PaddleY:      cfg.Field.Height - cfg.Paddle.Offset,
		BrickW:       cfg.Bricks.Width,
		BrickH:       cfg.Bricks.Height,
		BrickMargin:  cfg.Bricks.Margin,
		BrickTop:     cfg.Bricks.Top,
	}
}

// DeathLine returns the y at which a falling ball is lost.
func (g Geometry) DeathLine() float64 {
	return g.ScreenH - g.BottomMargin
}

// CellW returns the horizontal pitch of the brick grid.
func (g Geometry) CellW() float64 {
	return g.BrickW + 2*g.BrickMargin
}

// CellH returns the vertical pitch of the brick grid.
func (g Geometry) CellH() float64 {
	return g.BrickH + 2*g.BrickMargin
}

// BallStart returns the centered start position of the ball's top-left corner.
func (g Geometry) BallStart() (x, y float64) {
	return g.ScreenW/2 - g.BallW/2, g.ScreenH/2 - g.BallH/2
}

// PaddleStart returns the centered start position of the paddle's left edge.
func (g Geometry) PaddleStart() float64 {
	return g.ScreenW/2 - g.PaddleW/2
}
