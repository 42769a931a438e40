package gui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/touch-breakout/internal/config"
	"github.com/vovakirdan/touch-breakout/internal/games/breakout"
	"github.com/vovakirdan/touch-breakout/internal/storage"
)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	if opts.Config.Bricks.Rows == 0 {
		opts.Config = config.DefaultBreakoutConfig()
	}
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

// dodge steps the app until the session ends, dragging the paddle to the
// far side of the field from the ball.
func dodge(t *testing.T, a *App) {
	t.Helper()
	for i := 0; i < 200000 && a.Game().Phase() == breakout.PhaseRunning; i++ {
		x := 80.0
		if a.Game().Ball().X < 540 {
			x = 1000
		}
		if err := a.step(input{drags: []float64{x}}); err != nil {
			t.Fatalf("step() error = %v", err)
		}
	}
}

func TestNewStartsRunning(t *testing.T) {
	a := newTestApp(t, Options{})

	if a.Game().Phase() != breakout.PhaseRunning {
		t.Errorf("Phase() = %v, expected %v", a.Game().Phase(), breakout.PhaseRunning)
	}
	if !a.gate.Active() {
		t.Error("tick gate should be open after start")
	}
}

func TestLayoutIsPlayfield(t *testing.T) {
	a := newTestApp(t, Options{})

	w, h := a.Layout(360, 640)
	if w != 1080 || h != 1920 {
		t.Errorf("Layout() = %dx%d, expected 1080x1920", w, h)
	}
}

func TestStepDragMovesPaddle(t *testing.T) {
	a := newTestApp(t, Options{})

	if err := a.step(input{drags: []float64{700, 300}}); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	paddle := a.Game().Paddle()
	if got := paddle.CenterX(); got != 300 {
		t.Errorf("Paddle().CenterX() = %v, expected 300 (last drag wins)", got)
	}
	if got := a.Game().Session().Ticks; got != 1 {
		t.Errorf("Ticks = %d, expected 1", got)
	}
}

func TestStepKeyboardNudge(t *testing.T) {
	a := newTestApp(t, Options{})
	startPaddle := a.Game().Paddle()
	start := startPaddle.CenterX()
	nudge := a.Game().Config().Paddle.Nudge

	a.step(input{right: true})
	paddle := a.Game().Paddle()
	if got := paddle.CenterX(); got != start+nudge {
		t.Errorf("Paddle().CenterX() = %v, expected %v", got, start+nudge)
	}
}

func TestStepPause(t *testing.T) {
	a := newTestApp(t, Options{})

	a.step(input{pause: true})
	if !a.Paused() || a.gate.Active() {
		t.Fatal("pause should close the tick gate")
	}
	a.step(input{drags: []float64{100}})
	if got := a.Game().Session().Ticks; got != 0 {
		t.Errorf("paused app ticked: Ticks = %d", got)
	}

	a.step(input{tapped: true})
	if a.Paused() || !a.gate.Active() {
		t.Fatal("a tap should resume")
	}
	a.step(input{})
	if got := a.Game().Session().Ticks; got != 1 {
		t.Errorf("Ticks = %d, expected 1", got)
	}
}

func TestStepBackTerminates(t *testing.T) {
	a := newTestApp(t, Options{})

	err := a.step(input{back: true})
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("step(back) error = %v, expected ebiten.Termination", err)
	}
	if a.Game().Phase() != breakout.PhaseIdle {
		t.Errorf("Phase() = %v, expected %v", a.Game().Phase(), breakout.PhaseIdle)
	}
}

func TestTapRestartsAfterGameOver(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 1
	a := newTestApp(t, Options{Config: cfg})

	dodge(t, a)
	if a.Game().Phase() != breakout.PhaseGameOver {
		t.Fatalf("Phase() = %v, expected %v", a.Game().Phase(), breakout.PhaseGameOver)
	}
	if a.gate.Active() {
		t.Error("tick gate should close on game over")
	}

	a.step(input{drags: []float64{500}})
	if a.Game().Phase() != breakout.PhaseGameOver {
		t.Error("a held drag should not restart")
	}

	if err := a.step(input{tapped: true}); err != nil {
		t.Fatalf("step(tap) error = %v", err)
	}
	if a.Game().Phase() != breakout.PhaseRunning {
		t.Errorf("Phase() = %v, expected %v", a.Game().Phase(), breakout.PhaseRunning)
	}
}

func TestAppJournalsSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 1
	a := newTestApp(t, Options{Config: cfg, Store: store})
	first := a.Game().Session().ID

	dodge(t, a)
	a.step(input{tapped: true})
	second := a.Game().Session().ID
	a.Close()

	tests := []struct {
		id      string
		outcome string
	}{
		{first, storage.OutcomeGameOver},
		{second, storage.OutcomeAbandoned},
	}
	for _, tc := range tests {
		rec, err := store.SessionByID(tc.id)
		if err != nil || rec == nil {
			t.Fatalf("SessionByID(%s) = %v, %v", tc.id, rec, err)
		}
		if rec.Outcome != tc.outcome || rec.Source != "gui" {
			t.Errorf("session %s = %s/%s, expected %s/gui", tc.id, rec.Outcome, rec.Source, tc.outcome)
		}
	}
}
