package breakout

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/touch-breakout/internal/config"
	"github.com/vovakirdan/touch-breakout/internal/core"
)

// baseSpeed is the per-tick launch speed on each axis before density scaling.
const baseSpeed = 3

// TickSource drives Tick at a fixed cadence. The game starts it when a
// session begins and stops it when the session ends, so an idle game does
// no work.
type TickSource interface {
	Start()
	Stop()
}

// State summarizes the session for hosts.
type State struct {
	Phase   Phase
	Score   int
	Lives   int
	Running bool
}

// TickResult is returned by Tick. Events are in emission order.
type TickResult struct {
	Outcome Outcome
	Events  []Event
	State   State
}

// Option configures a Game.
type Option func(*Game)

// WithListener registers a listener for game events.
func WithListener(l Listener) Option {
	return func(g *Game) {
		g.listener = l
	}
}

// WithTickSource attaches the tick source the game starts and stops.
func WithTickSource(src TickSource) Option {
	return func(g *Game) {
		g.source = src
	}
}

// WithSessionIDs overrides session ID generation (UUIDs by default).
func WithSessionIDs(next func() string) Option {
	return func(g *Game) {
		g.newID = next
	}
}

// Game is the breakout game loop. It owns the ball, paddle, brick grid, and
// session. It is not safe for concurrent use; hosts serialize MovePaddle and
// Tick onto one goroutine.
type Game struct {
	cfg config.BreakoutConfig
	geo Geometry

	ball    Ball
	paddle  Paddle
	grid    *Grid
	session Session
	phase   Phase

	listener Listener
	source   TickSource
	newID    func() string

	pending []Event
}

// New creates an idle game. Call StartGame to begin a session.
func New(cfg config.BreakoutConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		geo:   GeometryFrom(cfg),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.paddle = Paddle{W: g.geo.PaddleW, H: g.geo.PaddleH, Y: g.geo.PaddleY}
	g.ball = Ball{W: g.geo.BallW, H: g.geo.BallH}
	g.resetBallAndPaddle()
	g.grid = &Grid{}
	return g
}

// AttachTickSource sets the tick source after construction.
// Hosts that build their ticker around the game use this instead of WithTickSource.
func (g *Game) AttachTickSource(src TickSource) {
	g.source = src
}

// Start begins a session with the configured grid.
func (g *Game) Start() error {
	return g.StartGame(g.cfg.Bricks.Rows, g.cfg.Bricks.Cols)
}

// StartGame begins a new session with a rows x cols grid. It rebuilds every
// brick, resets score and lives, centers the ball and paddle, launches the
// ball, and starts the tick source. Calling it again fully reinitializes.
func (g *Game) StartGame(rows, cols int) error {
	grid, err := SetupBricks(rows, cols, g.geo)
	if err != nil {
		return err
	}

	g.grid = grid
	g.session = Session{
		ID:      g.newID(),
		Lives:   g.cfg.Gameplay.Lives,
		Running: true,
	}
	g.phase = PhaseRunning
	g.pending = nil

	g.resetBallAndPaddle()
	g.launch()

	if g.source != nil {
		g.source.Start()
	}
	return nil
}

// StopGame abandons the current session and halts the tick source.
func (g *Game) StopGame() {
	g.session.Running = false
	g.phase = PhaseIdle
	if g.source != nil {
		g.source.Stop()
	}
}

// MovePaddle centers the paddle on x. The paddle may leave the field unless
// clamping is enabled in config.
func (g *Game) MovePaddle(x float64) {
	g.paddle.X = x - g.paddle.W/2
	if g.cfg.Paddle.Clamp {
		g.paddle.X = core.ClampF(g.paddle.X, 0, g.geo.ScreenW-g.paddle.W)
	}
}

// Tick advances the simulation by one fixed step.
// Queued drags are applied first, then the ball moves and at most one
// collision outcome is resolved.
func (g *Game) Tick(in core.InputFrame) TickResult {
	if g.phase != PhaseRunning {
		return TickResult{Outcome: OutcomeNone, State: g.State()}
	}

	geo := g.geo

	for _, x := range in.Drags {
		g.MovePaddle(x)
	}
	if in.Has(core.ActionLeft) {
		g.MovePaddle(g.paddle.CenterX() - g.cfg.Paddle.Nudge)
	}
	if in.Has(core.ActionRight) {
		g.MovePaddle(g.paddle.CenterX() + g.cfg.Paddle.Nudge)
	}

	g.session.Ticks++
	g.ball.Move()
	outcome := g.resolve(geo)

	events := g.pending
	g.pending = nil
	if g.listener != nil {
		for _, ev := range events {
			Dispatch(g.listener, ev)
		}
	}

	// Stop last: the source may hand the game to another goroutine once stopped.
	if !g.session.Running && g.source != nil {
		g.source.Stop()
	}

	return TickResult{Outcome: outcome, Events: events, State: g.State()}
}

// resolve checks walls, paddle, death line, and bricks in that order.
// The first that applies decides the tick's outcome. A surface only
// reflects a ball moving into it, so a ball still overlapping after a
// bounce is not reflected back.
func (g *Game) resolve(geo Geometry) Outcome {
	box := g.ball.Bounds()

	wall := false
	if (box.X <= 0 && g.ball.VX < 0) || (box.Right() >= geo.ScreenW && g.ball.VX > 0) {
		g.ball.BounceX()
		wall = true
	}
	if box.Y <= 0 && g.ball.VY < 0 {
		g.ball.BounceY()
		wall = true
	}
	if wall {
		// A corner ball that also crossed the death line loses its life next tick.
		return OutcomeWall
	}

	pad := g.paddle.Bounds()
	if g.ball.VY > 0 &&
		box.Bottom() >= pad.Y && box.Bottom() <= pad.Bottom() &&
		box.Right() >= pad.X && box.X <= pad.Right() {
		g.ball.BounceY()
		g.addScore()
		return OutcomePaddle
	}

	if box.Bottom() >= geo.DeathLine() {
		g.loseLife()
		return OutcomeLifeLost
	}

	if brick := g.grid.firstHit(box); brick != nil {
		g.hitBrick(brick)
		return OutcomeBrick
	}

	return OutcomeNone
}

// hitBrick destroys a brick and bounces the ball.
func (g *Game) hitBrick(brick *Brick) {
	brick.Alive = false
	g.ball.BounceY()
	g.session.BricksDestroyed++
	g.emit(BrickDestroyed{Row: brick.Row, Col: brick.Col})
	g.addScore()

	if g.grid.CountAlive() == 0 {
		g.session.Running = false
		g.phase = PhaseCleared
		g.emit(BoardCleared{Score: g.session.Score})
	}
}

// loseLife handles the ball crossing the death line.
func (g *Game) loseLife() {
	g.session.Lives--
	g.emit(LifeLost{Lives: g.session.Lives})

	if g.session.Lives > 0 {
		g.resetBallAndPaddle()
		g.launch()
		return
	}

	g.emit(GameOver{})
	g.session.Running = false
	g.phase = PhaseGameOver
	g.session.Score = 0
	g.emit(ScoreChanged{Score: 0})
}

func (g *Game) addScore() {
	g.session.Score++
	g.emit(ScoreChanged{Score: g.session.Score})
}

func (g *Game) emit(ev Event) {
	g.pending = append(g.pending, ev)
}

// resetBallAndPaddle centers both and leaves the ball at rest.
func (g *Game) resetBallAndPaddle() {
	g.ball.X, g.ball.Y = g.geo.BallStart()
	g.ball.VX, g.ball.VY = 0, 0
	g.paddle.X = g.geo.PaddleStart()
}

// launch applies the initial velocity: up and to the right.
func (g *Game) launch() {
	speed := baseSpeed * g.cfg.Physics.Density
	g.ball.VX = speed
	g.ball.VY = -speed
}

// State returns the session summary.
func (g *Game) State() State {
	return State{
		Phase:   g.phase,
		Score:   g.session.Score,
		Lives:   g.session.Lives,
		Running: g.session.Running,
	}
}

// Phase returns the state machine position.
func (g *Game) Phase() Phase {
	return g.phase
}

// Session returns a copy of the session bookkeeping.
func (g *Game) Session() Session {
	return g.session
}

// Ball returns a copy of the ball state.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns a copy of the paddle state.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Geometry returns the layout snapshot the loop is using.
func (g *Game) Geometry() Geometry {
	return g.geo
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Bricks returns a copy of the brick grid in row-major order.
func (g *Game) Bricks() []Brick {
	out := make([]Brick, len(g.grid.Bricks))
	copy(out, g.grid.Bricks)
	return out
}

// BrickAlive reports whether the brick at (row, col) is standing.
func (g *Game) BrickAlive(row, col int) bool {
	return g.grid.Brick(row, col).Alive
}

// GridSize returns the current grid dimensions.
func (g *Game) GridSize() (rows, cols int) {
	return g.grid.Rows, g.grid.Cols
}
