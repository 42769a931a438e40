package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/touch-breakout/internal/config"
	"github.com/vovakirdan/touch-breakout/internal/core"
	"github.com/vovakirdan/touch-breakout/internal/games/breakout"
	"github.com/vovakirdan/touch-breakout/internal/platform/tui"
	"github.com/vovakirdan/touch-breakout/internal/storage"
)

var (
	flagFPS       int
	flagHeadless  bool
	flagAutopilot bool
	flagDuration  time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the terminal game on the home screen.

Controls:
  Mouse      - Move the paddle (it follows the pointer)
  A/D, <-/-> - Nudge the paddle
  P          - Pause
  R/Enter    - New game (after game over)
  B/Esc      - Back to the home screen (paused or ended)
  Q/Ctrl+C   - Quit

With --headless no UI is shown: one session runs on a timer, the paddle
follows the ball when --autopilot is set, and events are logged to stderr.

Examples:
  breakout play
  breakout play --fps 30
  breakout play --config ./my-terminal.yaml
  breakout play --headless --log-level debug
  breakout play --headless --autopilot=false --duration 30s`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config tick_rate)")
	playCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run a session without a UI")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Headless: keep the paddle under the ball")
	playCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Headless: stop after this long (0 = until the session ends)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagHeadless {
		runHeadless()
		return
	}

	cfg, err := config.LoadProfile(config.ProfileTerminal, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := newLogger(logFile, "breakout")

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rate := flagFPS
	if rate <= 0 {
		rate = cfg.Physics.TickRate
	}

	store := openStore(logger)
	env := tui.Env{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Source: "terminal",
	}
	runErr := tui.Run(env, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rate,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runHeadless plays one session on a Runner and prints a summary.
func runHeadless() {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, "breakout-headless")
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	listeners := []breakout.Listener{breakout.LogListener(logger)}
	var recorder *storage.Recorder
	if store != nil {
		recorder = storage.NewRecorder(store, logger, "headless")
		listeners = append(listeners, recorder)
	}

	game := breakout.New(cfg, breakout.WithListener(breakout.Listeners(listeners...)))
	runner := breakout.NewRunner(ctx, game, breakout.RunnerOptions{
		TickRate:  flagFPS,
		Autopilot: flagAutopilot,
		OnStart: func(g *breakout.Game) {
			if recorder != nil {
				recorder.Begin(g)
			}
			logger.Info("headless session started", "session", g.Session().ID, "autopilot", flagAutopilot)
		},
	})

	if err := game.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	<-runner.Done()

	snap := game.Snapshot()
	if recorder != nil && game.Phase() == breakout.PhaseRunning {
		recorder.Abandon()
	}
	game.StopGame()

	fmt.Printf("Session %s\n", snap.SessionID)
	fmt.Printf("  Phase:  %s\n", snap.Phase)
	fmt.Printf("  Ticks:  %d\n", snap.Tick)
	fmt.Printf("  Score:  %d\n", snap.Score)
	fmt.Printf("  Lives:  %d\n", snap.Lives)
	fmt.Printf("  Bricks: %d of %d left\n", snap.BricksRemaining, snap.Rows*snap.Cols)
}
