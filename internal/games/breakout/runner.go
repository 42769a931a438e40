package breakout

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/touch-breakout/internal/core"
)

// dragBuffer bounds queued pointer positions between two ticks.
const dragBuffer = 64

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	TickRate int // Ticks per second; the game's configured rate when zero

	// Autopilot drags the paddle under the ball before every tick.
	Autopilot bool

	// OnStart is called on the loop goroutine before its first tick.
	// Session setup that reads or listens to the game belongs here.
	OnStart func(*Game)

	// AfterTick is called on the loop goroutine after every tick.
	AfterTick func(TickResult)
}

// Runner is a headless tick source backed by a time.Ticker. The game runs
// on the Runner's goroutine; other goroutines reach it only through
// MovePaddle, which queues the position for the next tick.
type Runner struct {
	game     *Game
	parent   context.Context
	interval time.Duration
	opts     RunnerOptions
	drags    chan float64

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRunner creates a runner and attaches it to the game as its tick source.
// The loop stops when ctx is cancelled, when the game ends a session, or on Stop.
func NewRunner(ctx context.Context, game *Game, opts RunnerOptions) *Runner {
	rate := opts.TickRate
	if rate <= 0 {
		rate = game.Config().Physics.TickRate
	}
	if rate <= 0 {
		rate = 60
	}

	closed := make(chan struct{})
	close(closed)

	r := &Runner{
		game:     game,
		parent:   ctx,
		interval: time.Second / time.Duration(rate),
		opts:     opts,
		drags:    make(chan float64, dragBuffer),
		done:     closed,
	}
	game.AttachTickSource(r)
	return r
}

// Start launches the tick loop in the background if it is not already running.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}

	ctx, cancel := context.WithCancel(r.parent)
	r.cancel = cancel
	r.running = true
	r.done = make(chan struct{})

	go r.loop(ctx, r.done)
}

// Stop halts the tick loop. It does not wait for the loop goroutine; use Done.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	r.running = false
	r.cancel()
}

// Running reports whether the loop is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Done returns a channel closed when the current loop goroutine has exited.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// MovePaddle queues a pointer position for the next tick. It is safe to
// call from any goroutine. When the queue is full the position is dropped;
// a later drag supersedes it anyway.
func (r *Runner) MovePaddle(x float64) {
	select {
	case r.drags <- x:
	default:
	}
}

func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	defer func() {
		// A restart from AfterTick may already own the runner; only clear our own run.
		r.mu.Lock()
		if r.done == done && r.running {
			r.running = false
			r.cancel()
		}
		r.mu.Unlock()
		close(done)
	}()

	if r.opts.OnStart != nil {
		r.opts.OnStart(r.game)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	frame := core.NewInputFrame()
	for {
		select {
		case <-ctx.Done():
			return
		case x := <-r.drags:
			frame.Drag(x)
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			r.drainDrags(&frame)
			if r.opts.Autopilot {
				ball := r.game.Ball()
				frame.Drag(ball.X + ball.W/2)
			}

			result := r.game.Tick(frame)
			frame.Clear()

			if r.opts.AfterTick != nil {
				r.opts.AfterTick(result)
			}
		}
	}
}

func (r *Runner) drainDrags(frame *core.InputFrame) {
	for {
		select {
		case x := <-r.drags:
			frame.Drag(x)
		default:
			return
		}
	}
}
