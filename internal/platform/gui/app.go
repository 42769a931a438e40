// Package gui provides the Ebitengine host for breakout: touch and mouse
// drags move the paddle, Update drives the tick, and Draw renders the
// playfield with vector shapes. The same App runs in a desktop window and
// behind the Android binding in gui/mobile.
package gui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/touch-breakout/internal/config"
	"github.com/vovakirdan/touch-breakout/internal/core"
	"github.com/vovakirdan/touch-breakout/internal/games/breakout"
	"github.com/vovakirdan/touch-breakout/internal/storage"
)

// Options configures an App.
type Options struct {
	Config config.BreakoutConfig
	Store  *storage.Store // Nil disables the journal
	Logger *log.Logger
	Source string // Journal source tag, defaults to "gui"
}

// App implements ebiten.Game for one player.
type App struct {
	game     *breakout.Game
	gate     *tickGate
	recorder *storage.Recorder
	logger   *log.Logger
	reader   reader
	frame    core.InputFrame
	paused   bool
}

// New creates an App and starts the first session. Touch devices have no
// home screen to confirm on, so play begins immediately.
func New(opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Source == "" {
		opts.Source = "gui"
	}

	gate := &tickGate{}
	listeners := []breakout.Listener{breakout.LogListener(logger)}

	var recorder *storage.Recorder
	if opts.Store != nil {
		recorder = storage.NewRecorder(opts.Store, logger, opts.Source)
		listeners = append(listeners, recorder)
	}

	a := &App{
		game: breakout.New(opts.Config,
			breakout.WithTickSource(gate),
			breakout.WithListener(breakout.Listeners(listeners...)),
		),
		gate:     gate,
		recorder: recorder,
		logger:   logger,
		frame:    core.NewInputFrame(),
	}
	if err := a.start(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) start() error {
	if err := a.game.Start(); err != nil {
		return fmt.Errorf("gui: cannot start game: %w", err)
	}
	a.paused = false
	a.frame.Clear()
	if a.recorder != nil {
		a.recorder.Begin(a.game)
	}
	a.logger.Info("game started", "session", a.game.Session().ID)
	return nil
}

// Update reads input and advances the game by one tick.
func (a *App) Update() error {
	return a.step(a.reader.read())
}

// step applies one frame of input. It returns ebiten.Termination when the
// player leaves.
func (a *App) step(in input) error {
	if in.back {
		a.Close()
		return ebiten.Termination
	}

	if a.game.Phase() != breakout.PhaseRunning {
		if in.tapped || in.restart {
			return a.start()
		}
		return nil
	}

	if in.pause {
		a.paused = !a.paused
		if a.paused {
			a.gate.Stop()
		} else {
			a.gate.Start()
		}
	}
	if a.paused {
		// A tap resumes, so touch devices are never stuck.
		if in.tapped {
			a.paused = false
			a.gate.Start()
		}
		return nil
	}

	for _, x := range in.drags {
		a.frame.Drag(x)
	}
	if in.left {
		a.frame.Set(core.ActionLeft)
	}
	if in.right {
		a.frame.Set(core.ActionRight)
	}

	if a.gate.Active() {
		a.game.Tick(a.frame)
	}
	a.frame.Clear()
	return nil
}

// Layout reports the playfield as the logical screen. Ebitengine scales it
// to the window or device and maps pointer positions back to field units.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	geo := a.game.Geometry()
	return int(geo.ScreenW), int(geo.ScreenH)
}

// Close abandons an unfinished session and stops the game.
func (a *App) Close() {
	if a.game.Phase() == breakout.PhaseRunning && a.recorder != nil {
		a.recorder.Abandon()
	}
	a.game.StopGame()
}

// Game returns the underlying game loop.
func (a *App) Game() *breakout.Game {
	return a.game
}

// Paused reports whether the game is paused.
func (a *App) Paused() bool {
	return a.paused
}

// Run opens a window and plays until the player closes it. scale sizes the
// window relative to the playfield.
func Run(opts Options, scale float64) error {
	app, err := New(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	if scale <= 0 {
		scale = 0.5
	}
	geo := app.game.Geometry()
	ebiten.SetWindowSize(int(geo.ScreenW*scale), int(geo.ScreenH*scale))
	ebiten.SetWindowTitle("Touch Breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Config.Physics.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
