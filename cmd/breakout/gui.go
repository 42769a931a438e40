package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/touch-breakout/internal/config"
	"github.com/vovakirdan/touch-breakout/internal/platform/gui"
)

var flagScale float64

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a window",
	Long: `Open the game in a window using the touch profile (a 1080x1920
portrait field). The paddle follows touches or the mouse while the button
is held; play starts immediately.

Controls:
  Touch/Mouse - Drag the paddle
  A/D, <-/->  - Nudge the paddle
  P           - Pause (tap to resume)
  Tap/R/Enter - New game (after game over)
  Esc/Q       - Quit

Examples:
  breakout gui
  breakout gui --scale 0.35
  breakout gui --config ./my-breakout.yaml`,
	Run: runGUI,
}

func init() {
	guiCmd.Flags().Float64Var(&flagScale, "scale", 0.5, "Window size relative to the playfield")
}

func runGUI(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, "breakout-gui")
	store := openStore(logger)

	runErr := gui.Run(gui.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
	}, flagScale)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
