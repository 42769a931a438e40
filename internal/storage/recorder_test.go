package storage

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/touch-breakout/internal/config"
	"github.com/vovakirdan/touch-breakout/internal/games/breakout"
)

// The recorder runs on the runner's goroutine from the first tick on; run
// with -race to check the journal never touches the game from elsewhere.
func TestRecorderOnRunner(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, testLogger(), "headless")

	cfg := config.DefaultBreakoutConfig()
	cfg.Physics.Density = 10
	cfg.Gameplay.Lives = 1

	game := breakout.New(cfg, breakout.WithListener(rec))
	runner := breakout.NewRunner(context.Background(), game, breakout.RunnerOptions{
		TickRate: 100000,
		OnStart:  rec.Begin,
	})

	// Park the paddle off-screen so the first fall is fatal
	runner.MovePaddle(-10000)
	if err := game.Start(); err != nil {
		t.Fatal(err)
	}

	select {
	case <-runner.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop in time")
	}

	id := game.Session().ID
	session, err := store.SessionByID(id)
	if err != nil || session == nil {
		t.Fatalf("SessionByID() = %v, %v", session, err)
	}
	if session.Outcome != OutcomeGameOver || session.Source != "headless" {
		t.Errorf("session = %s/%s, expected %s/headless", session.Outcome, session.Source, OutcomeGameOver)
	}

	events, err := store.SessionEvents(id)
	if err != nil {
		t.Fatalf("SessionEvents() failed: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("no events journaled")
	}
	if events[0].Seq != 1 {
		t.Errorf("first event seq = %d, expected 1", events[0].Seq)
	}
	if last := events[len(events)-1]; last.Kind != KindGameOver {
		t.Errorf("last event = %s, expected %s", last.Kind, KindGameOver)
	}
	for _, ev := range events {
		if ev.Tick == 0 {
			t.Errorf("event %d (%s) has tick 0", ev.Seq, ev.Kind)
		}
	}
}
