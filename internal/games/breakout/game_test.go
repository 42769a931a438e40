package breakout

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/touch-breakout/internal/config"
	"github.com/vovakirdan/touch-breakout/internal/core"
)

// Default touch geometry used throughout:
//   field 1080x1920, death line at 1820
//   ball 30x30 starting at (525, 945)
//   paddle 200x30, top at 1670, left at 440 when centered
//   brick (r, c) at x = 4 + 108c, y = 164 + 48r, size 100x40

type fakeSource struct {
	starts, stops int
}

func (f *fakeSource) Start() { f.starts++ }
func (f *fakeSource) Stop()  { f.stops++ }

func testConfig() config.BreakoutConfig {
	cfg := config.DefaultBreakoutConfig()
	cfg.Physics.Density = 1
	return cfg
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
}

func newTestGame(t *testing.T, cfg config.BreakoutConfig) (*Game, *fakeSource) {
	t.Helper()
	src := &fakeSource{}
	g := New(cfg, WithTickSource(src), WithSessionIDs(sequentialIDs()))
	if err := g.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return g, src
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func placeBall(g *Game, x, y, vx, vy float64) {
	g.ball.X, g.ball.Y = x, y
	g.ball.VX, g.ball.VY = vx, vy
}

func TestNewGameIsIdle(t *testing.T) {
	g := New(testConfig())

	if g.Phase() != PhaseIdle {
		t.Errorf("new game phase = %s, expected idle", g.Phase())
	}
	result := g.Tick(noInput())
	if result.Outcome != OutcomeNone || len(result.Events) != 0 {
		t.Errorf("idle tick should do nothing, got %s with %d events", result.Outcome, len(result.Events))
	}
}

func TestStartGameInitialState(t *testing.T) {
	g, src := newTestGame(t, testConfig())

	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %s, expected running", g.Phase())
	}
	s := g.Session()
	if s.Score != 0 || s.Lives != 3 || !s.Running {
		t.Errorf("session = %+v, expected score 0, lives 3, running", s)
	}
	if s.ID != "session-1" {
		t.Errorf("session ID = %q, expected session-1", s.ID)
	}

	ball := g.Ball()
	if ball.X != 525 || ball.Y != 945 {
		t.Errorf("ball at (%v, %v), expected centered (525, 945)", ball.X, ball.Y)
	}
	if ball.VX != 3 || ball.VY != -3 {
		t.Errorf("ball velocity = (%v, %v), expected (3, -3)", ball.VX, ball.VY)
	}
	if p := g.Paddle(); p.X != 440 || p.Y != 1670 {
		t.Errorf("paddle at (%v, %v), expected (440, 1670)", p.X, p.Y)
	}

	rows, cols := g.GridSize()
	if rows != 9 || cols != 10 {
		t.Errorf("grid = %dx%d, expected 9x10", rows, cols)
	}
	if alive := len(g.Bricks()); alive != 90 {
		t.Errorf("bricks = %d, expected 90", alive)
	}
	if src.starts != 1 {
		t.Errorf("tick source started %d times, expected 1", src.starts)
	}
}

func TestStartGameDensityScalesVelocity(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.Density = 2.5
	g, _ := newTestGame(t, cfg)

	if b := g.Ball(); b.VX != 7.5 || b.VY != -7.5 {
		t.Errorf("velocity = (%v, %v), expected (7.5, -7.5)", b.VX, b.VY)
	}
}

func TestStartGameRejectsInvalidGrid(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{0, 10},
		{9, 0},
		{-1, 3},
		{3, -2},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			src := &fakeSource{}
			g := New(testConfig(), WithTickSource(src))
			err := g.StartGame(tc.rows, tc.cols)
			if !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("StartGame(%d, %d) error = %v, expected ErrInvalidGrid", tc.rows, tc.cols, err)
			}
			if g.Phase() != PhaseIdle {
				t.Errorf("phase = %s, expected idle after rejected start", g.Phase())
			}
			if src.starts != 0 {
				t.Error("tick source should not start on a rejected grid")
			}
		})
	}
}

func TestFreeFlight(t *testing.T) {
	g, _ := newTestGame(t, testConfig())

	const n = 100
	for i := range n {
		result := g.Tick(noInput())
		if result.Outcome != OutcomeNone {
			t.Fatalf("tick %d: outcome %s, expected none", i+1, result.Outcome)
		}
	}

	ball := g.Ball()
	if ball.X != 525+n*3 || ball.Y != 945-n*3 {
		t.Errorf("ball at (%v, %v), expected (%d, %d)", ball.X, ball.Y, 525+n*3, 945-n*3)
	}
	if g.Session().Ticks != n {
		t.Errorf("ticks = %d, expected %d", g.Session().Ticks, n)
	}
}

func TestFirstBrickOnUnobstructedPath(t *testing.T) {
	g, _ := newTestGame(t, testConfig())

	// The ball top reaches the bottom of row 8 (y=588) on tick 119, at x=882: column 8.
	for i := 1; i < 119; i++ {
		if r := g.Tick(noInput()); r.Outcome != OutcomeNone {
			t.Fatalf("tick %d: outcome %s, expected none", i, r.Outcome)
		}
	}

	result := g.Tick(noInput())
	if result.Outcome != OutcomeBrick {
		t.Fatalf("tick 119: outcome %s, expected brick", result.Outcome)
	}
	if g.BrickAlive(8, 8) {
		t.Error("brick (8, 8) should be destroyed")
	}
	if g.Ball().VY != 3 {
		t.Errorf("VY = %v, expected 3 after brick bounce", g.Ball().VY)
	}
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantVX, wantVY float64
	}{
		{"right wall", 1049, 700, 3, -3, -3, -3},
		{"left wall", 2, 700, -3, 3, 3, 3},
		{"top wall", 20, 1, 3, -3, 3, 3},
		{"top-left corner", 1, 1, -3, -3, 3, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t, testConfig())
			placeBall(g, tc.x, tc.y, tc.vx, tc.vy)

			result := g.Tick(noInput())
			if result.Outcome != OutcomeWall {
				t.Fatalf("outcome = %s, expected wall", result.Outcome)
			}
			if b := g.Ball(); b.VX != tc.wantVX || b.VY != tc.wantVY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.VX, b.VY, tc.wantVX, tc.wantVY)
			}
			if g.Session().Score != 0 {
				t.Error("wall bounces must not score")
			}
		})
	}
}

func TestWallDoesNotReflectOutgoingBall(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	// Overlapping the left wall but already moving away from it
	placeBall(g, -5, 700, 3, 3)

	if r := g.Tick(noInput()); r.Outcome != OutcomeNone {
		t.Errorf("outcome = %s, expected none for a ball leaving the wall", r.Outcome)
	}
	if g.Ball().VX != 3 {
		t.Errorf("VX = %v, expected 3", g.Ball().VX)
	}
}

func TestPaddleBounceScores(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	// Centered over the paddle, bottom already inside the paddle band
	placeBall(g, 525, 1660, 0, 3)

	result := g.Tick(noInput())
	if result.Outcome != OutcomePaddle {
		t.Fatalf("outcome = %s, expected paddle", result.Outcome)
	}
	if g.Ball().VY != -3 {
		t.Errorf("VY = %v, expected -3", g.Ball().VY)
	}
	if g.Session().Score != 1 {
		t.Errorf("score = %d, expected 1", g.Session().Score)
	}
	if len(result.Events) != 1 || result.Events[0] != (ScoreChanged{Score: 1}) {
		t.Errorf("events = %v, expected [ScoreChanged{1}]", result.Events)
	}

	// Still inside the paddle band but moving up: no second bounce
	result = g.Tick(noInput())
	if result.Outcome != OutcomeNone {
		t.Errorf("outcome = %s, expected none while leaving the paddle", result.Outcome)
	}
	if g.Session().Score != 1 {
		t.Errorf("score = %d, expected 1 after leaving the paddle", g.Session().Score)
	}
}

func TestPaddleEdgeContact(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	// Ball right edge exactly meets the paddle left edge (440)
	placeBall(g, 410, 1638, 0, 3)

	if r := g.Tick(noInput()); r.Outcome != OutcomePaddle {
		t.Errorf("outcome = %s, expected paddle for edge contact", r.Outcome)
	}
}

func TestMissLosesLifeAndRelaunches(t *testing.T) {
	g, src := newTestGame(t, testConfig())
	placeBall(g, 525, 1638, 0, 3)

	// Move the paddle out of the way
	in := noInput()
	in.Drag(100)

	var result TickResult
	ticks := 0
	for ticks = 1; ticks <= 100; ticks++ {
		result = g.Tick(in)
		in = noInput()
		if result.Outcome != OutcomeNone {
			break
		}
	}

	// Bottom starts at 1668 and must reach the death line at 1820
	if ticks != 51 {
		t.Errorf("life lost after %d ticks, expected 51", ticks)
	}
	if result.Outcome != OutcomeLifeLost {
		t.Fatalf("outcome = %s, expected life_lost", result.Outcome)
	}
	if len(result.Events) != 1 || result.Events[0] != (LifeLost{Lives: 2}) {
		t.Errorf("events = %v, expected [LifeLost{2}]", result.Events)
	}

	if g.Phase() != PhaseRunning || !g.Session().Running {
		t.Error("game should keep running with lives left")
	}
	ball := g.Ball()
	if ball.X != 525 || ball.Y != 945 || ball.VX != 3 || ball.VY != -3 {
		t.Errorf("ball = %+v, expected recentered and relaunched", ball)
	}
	if g.Paddle().X != 440 {
		t.Errorf("paddle X = %v, expected recentered 440", g.Paddle().X)
	}
	if src.stops != 0 {
		t.Error("tick source must keep running after a life is lost")
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g, src := newTestGame(t, testConfig())
	g.session.Lives = 1
	g.session.Score = 5
	g.MovePaddle(-1000)
	placeBall(g, 525, 1800, 0, 3)

	result := g.Tick(noInput())
	if result.Outcome != OutcomeLifeLost {
		t.Fatalf("outcome = %s, expected life_lost", result.Outcome)
	}

	want := []Event{LifeLost{Lives: 0}, GameOver{}, ScoreChanged{Score: 0}}
	if len(result.Events) != len(want) {
		t.Fatalf("events = %v, expected %v", result.Events, want)
	}
	for i := range want {
		if result.Events[i] != want[i] {
			t.Errorf("event %d = %#v, expected %#v", i, result.Events[i], want[i])
		}
	}

	s := g.Session()
	if s.Running || s.Score != 0 || s.Lives != 0 {
		t.Errorf("session = %+v, expected stopped with score 0 and lives 0", s)
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %s, expected gameover", g.Phase())
	}
	if src.stops != 1 {
		t.Errorf("tick source stopped %d times, expected 1", src.stops)
	}

	// No automatic restart
	before := g.Snapshot()
	if r := g.Tick(noInput()); r.Outcome != OutcomeNone || len(r.Events) != 0 {
		t.Error("ticks after game over must be inert")
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("state changed after game over")
	}
}

func TestBrickHitDestroysExactlyOne(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	// Brick (2, 3) spans x 328..428, y 260..300
	placeBall(g, 363, 268, 0, -3)

	result := g.Tick(noInput())
	if result.Outcome != OutcomeBrick {
		t.Fatalf("outcome = %s, expected brick", result.Outcome)
	}

	destroyed := 0
	for _, ev := range result.Events {
		if bd, ok := ev.(BrickDestroyed); ok {
			destroyed++
			if bd != (BrickDestroyed{Row: 2, Col: 3}) {
				t.Errorf("destroyed %+v, expected (2, 3)", bd)
			}
		}
	}
	if destroyed != 1 {
		t.Errorf("destroyed %d bricks, expected 1", destroyed)
	}
	if g.BrickAlive(2, 3) {
		t.Error("brick (2, 3) should be dead")
	}
	if g.Session().Score != 1 || g.Session().BricksDestroyed != 1 {
		t.Errorf("session = %+v, expected score 1 and one brick destroyed", g.Session())
	}
	if g.Ball().VY != 3 {
		t.Errorf("VY = %v, expected 3", g.Ball().VY)
	}
}

func TestBrickScanStopsAtFirstHit(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	// Straddles (2, 3) [328..428] and (2, 4) [436..536]
	placeBall(g, 415, 268, 0, -3)

	g.Tick(noInput())

	if g.BrickAlive(2, 3) {
		t.Error("brick (2, 3) should be destroyed first in row-major order")
	}
	if !g.BrickAlive(2, 4) {
		t.Error("brick (2, 4) must survive: one brick per tick")
	}
	if g.Session().Score != 1 {
		t.Errorf("score = %d, expected 1", g.Session().Score)
	}
}

func TestDeadBrickIgnored(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	g.grid.Brick(2, 3).Alive = false
	placeBall(g, 363, 268, 0, -3)

	result := g.Tick(noInput())
	if result.Outcome != OutcomeNone {
		t.Errorf("outcome = %s, expected none for a dead brick", result.Outcome)
	}
	if g.Ball().VY != -3 {
		t.Error("dead bricks must not deflect the ball")
	}
}

func TestClearingBoardEndsSession(t *testing.T) {
	src := &fakeSource{}
	g := New(testConfig(), WithTickSource(src))
	if err := g.StartGame(1, 1); err != nil {
		t.Fatalf("StartGame(1, 1) failed: %v", err)
	}

	// A single centered brick spans x 490..590, y 164..204
	placeBall(g, 500, 183, 0, -3)

	result := g.Tick(noInput())
	want := []Event{BrickDestroyed{Row: 0, Col: 0}, ScoreChanged{Score: 1}, BoardCleared{Score: 1}}
	if len(result.Events) != len(want) {
		t.Fatalf("events = %v, expected %v", result.Events, want)
	}
	for i := range want {
		if result.Events[i] != want[i] {
			t.Errorf("event %d = %#v, expected %#v", i, result.Events[i], want[i])
		}
	}

	if g.Phase() != PhaseCleared {
		t.Errorf("phase = %s, expected cleared", g.Phase())
	}
	if s := g.Session(); s.Running || s.Score != 1 {
		t.Errorf("session = %+v, expected stopped with score kept", s)
	}
	if src.stops != 1 {
		t.Errorf("tick source stopped %d times, expected 1", src.stops)
	}
}

func TestStartGameTwiceReinitializes(t *testing.T) {
	g, src := newTestGame(t, testConfig())

	placeBall(g, 363, 268, 0, -3)
	g.Tick(noInput())
	placeBall(g, 20, 1638, 0, 3)
	g.MovePaddle(-1000)
	for g.Session().Lives == 3 {
		g.Tick(noInput())
	}
	firstID := g.Session().ID

	if err := g.Start(); err != nil {
		t.Fatalf("second Start() failed: %v", err)
	}

	s := g.Session()
	if s.Score != 0 || s.Lives != 3 || s.Ticks != 0 || s.BricksDestroyed != 0 {
		t.Errorf("session = %+v, expected a fresh session", s)
	}
	if s.ID == firstID {
		t.Error("restart should assign a new session ID")
	}
	for _, b := range g.Bricks() {
		if !b.Alive {
			t.Errorf("brick (%d, %d) still dead after restart", b.Row, b.Col)
		}
	}
	if src.starts != 2 {
		t.Errorf("tick source started %d times, expected 2", src.starts)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	g.session.Lives = 1
	g.MovePaddle(-1000)
	placeBall(g, 525, 1800, 0, 3)
	g.Tick(noInput())

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, expected gameover", g.Phase())
	}
	if err := g.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if g.Phase() != PhaseRunning || g.Session().Lives != 3 {
		t.Error("StartGame should move gameover back to running with full lives")
	}
}

func TestStopGameHaltsSource(t *testing.T) {
	g, src := newTestGame(t, testConfig())

	g.StopGame()

	if g.Phase() != PhaseIdle || g.Session().Running {
		t.Error("StopGame should return to idle")
	}
	if src.stops != 1 {
		t.Errorf("tick source stopped %d times, expected 1", src.stops)
	}
	if r := g.Tick(noInput()); r.Outcome != OutcomeNone {
		t.Error("ticks after StopGame must be inert")
	}
}

func TestMovePaddleCentersOnTouch(t *testing.T) {
	g, _ := newTestGame(t, testConfig())

	g.MovePaddle(300)
	if g.Paddle().X != 200 {
		t.Errorf("paddle X = %v, expected 200", g.Paddle().X)
	}

	// Unclamped by default: the paddle may leave the field
	g.MovePaddle(-500)
	if g.Paddle().X != -600 {
		t.Errorf("paddle X = %v, expected -600", g.Paddle().X)
	}
}

func TestMovePaddleClamped(t *testing.T) {
	cfg := testConfig()
	cfg.Paddle.Clamp = true
	g, _ := newTestGame(t, cfg)

	g.MovePaddle(-500)
	if g.Paddle().X != 0 {
		t.Errorf("paddle X = %v, expected 0", g.Paddle().X)
	}
	g.MovePaddle(5000)
	if g.Paddle().X != 880 {
		t.Errorf("paddle X = %v, expected 880", g.Paddle().X)
	}
}

func TestQueuedDragsApplyInOrder(t *testing.T) {
	g, _ := newTestGame(t, testConfig())

	in := noInput()
	in.Drag(100)
	in.Drag(700)
	g.Tick(in)

	if g.Paddle().X != 600 {
		t.Errorf("paddle X = %v, expected 600 (last drag wins)", g.Paddle().X)
	}
}

func TestKeyboardNudge(t *testing.T) {
	g, _ := newTestGame(t, testConfig())

	in := noInput()
	in.Set(core.ActionRight)
	g.Tick(in)
	if g.Paddle().X != 480 {
		t.Errorf("paddle X = %v, expected 480 after nudging right", g.Paddle().X)
	}

	in = noInput()
	in.Set(core.ActionLeft)
	g.Tick(in)
	if g.Paddle().X != 440 {
		t.Errorf("paddle X = %v, expected 440 after nudging left", g.Paddle().X)
	}
}

func TestListenerReceivesEventsInOrder(t *testing.T) {
	var got []string
	listener := ListenerFuncs{
		ScoreChanged: func(score int) { got = append(got, fmt.Sprintf("score:%d", score)) },
		LifeLost:     func(lives int) { got = append(got, fmt.Sprintf("life:%d", lives)) },
		GameOver:     func() { got = append(got, "over") },
	}

	g := New(testConfig(), WithListener(listener))
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	g.session.Lives = 1
	g.MovePaddle(-1000)
	placeBall(g, 525, 1800, 0, 3)
	g.Tick(noInput())

	want := []string{"life:0", "over", "score:0"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("listener saw %v, expected %v", got, want)
	}
}

func TestListenersFanOut(t *testing.T) {
	var a, b int
	l := Listeners(
		ListenerFuncs{BrickDestroyed: func(int, int) { a++ }},
		nil,
		ListenerFuncs{BrickDestroyed: func(int, int) { b++ }},
	)

	Dispatch(l, BrickDestroyed{Row: 1, Col: 2})

	if a != 1 || b != 1 {
		t.Errorf("fan-out calls = (%d, %d), expected (1, 1)", a, b)
	}
}

// TestSessionInvariants plays a long session with an imperfect autopilot and
// checks the per-tick properties that must always hold.
func TestSessionInvariants(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.Lives = 5
	g, _ := newTestGame(t, cfg)

	prev := g.Snapshot()
	for tick := 0; tick < 50000 && g.Phase() == PhaseRunning; tick++ {
		in := noInput()
		// Follow the ball, but look away for a stretch every few seconds
		if (tick/700)%4 != 3 {
			ball := g.Ball()
			in.Drag(ball.X + ball.W/2)
		}

		result := g.Tick(in)
		cur := g.Snapshot()

		destroyed := 0
		for _, ev := range result.Events {
			if _, ok := ev.(BrickDestroyed); ok {
				destroyed++
			}
		}
		if destroyed > 1 {
			t.Fatalf("tick %d: %d bricks destroyed, expected at most 1", tick, destroyed)
		}
		if (destroyed == 1) != (result.Outcome == OutcomeBrick) {
			t.Fatalf("tick %d: outcome %s with %d bricks destroyed", tick, result.Outcome, destroyed)
		}

		for i := range cur.BrickData {
			if prev.BrickData[i] == 0 && cur.BrickData[i] == 1 {
				t.Fatalf("tick %d: brick %d came back to life", tick, i)
			}
		}

		switch result.Outcome {
		case OutcomeLifeLost:
			if cur.Lives != prev.Lives-1 {
				t.Fatalf("tick %d: lives %d -> %d, expected a decrement of 1", tick, prev.Lives, cur.Lives)
			}
		default:
			if cur.Lives != prev.Lives {
				t.Fatalf("tick %d: lives changed without a life_lost outcome", tick)
			}
		}
		if cur.Lives < 0 {
			t.Fatalf("tick %d: lives went negative", tick)
		}

		if cur.Running {
			if cur.Score < prev.Score {
				t.Fatalf("tick %d: score dropped from %d to %d while running", tick, prev.Score, cur.Score)
			}
			if cur.Score > prev.Score && result.Outcome != OutcomePaddle && result.Outcome != OutcomeBrick {
				t.Fatalf("tick %d: score rose on outcome %s", tick, result.Outcome)
			}
		} else if cur.Phase == PhaseGameOver.String() && cur.Score != 0 {
			t.Fatalf("tick %d: score %d after game over, expected 0", tick, cur.Score)
		}

		prev = cur
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(testConfig())
		if err := g.Start(); err != nil {
			t.Fatal(err)
		}
		for tick := range 3000 {
			in := noInput()
			if tick%3 == 0 {
				in.Drag(float64((tick * 37) % 1080))
			}
			if tick%50 == 0 {
				in.Set(core.ActionRight)
			}
			g.Tick(in)
		}
		return g.Snapshot()
	}

	a := run()
	b := run()

	if a.Hash() != b.Hash() {
		t.Errorf("determinism failed: hashes differ (%d vs %d)", a.Hash(), b.Hash())
	}
	if a.SessionID == b.SessionID {
		t.Error("separate games should get distinct UUID session IDs")
	}
}

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := New(testConfig(), WithListener(LogListener(logger)))
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	placeBall(g, 363, 268, 0, -3)
	g.Tick(noInput())

	out := buf.String()
	if !strings.Contains(out, "brick destroyed") || !strings.Contains(out, "score changed") {
		t.Errorf("log output = %q, expected brick and score entries", out)
	}
}

func TestWallBounceDefersDeathLine(t *testing.T) {
	g, _ := newTestGame(t, testConfig())

	// Lands past the right wall and the death line in the same tick.
	placeBall(g, 1055, 1795, 3, 3)

	if res := g.Tick(noInput()); res.Outcome != OutcomeWall {
		t.Fatalf("first tick outcome = %s, expected %s", res.Outcome, OutcomeWall)
	}
	if got := g.Session().Lives; got != 3 {
		t.Errorf("lives after wall tick = %d, expected 3", got)
	}

	if res := g.Tick(noInput()); res.Outcome != OutcomeLifeLost {
		t.Fatalf("second tick outcome = %s, expected %s", res.Outcome, OutcomeLifeLost)
	}
	if got := g.Session().Lives; got != 2 {
		t.Errorf("lives = %d, expected 2", got)
	}
}
