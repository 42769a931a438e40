package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/touch-breakout/internal/config"
)

var flagProfile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a command would play with, as YAML.

Lookup order: --config, ~/.breakout/configs/<profile>.yaml,
./configs/<profile>.yaml, then the built-in defaults. The touch profile
(breakout.yaml) is used by gui and play --headless; the terminal profile
(terminal.yaml) by play and serve.

Examples:
  breakout config
  breakout config --profile terminal > ~/.breakout/configs/terminal.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagProfile, "profile", string(config.ProfileTouch), "Profile: touch, terminal")
}

func runConfig(_ *cobra.Command, _ []string) {
	profile := config.Profile(flagProfile)
	if profile != config.ProfileTouch && profile != config.ProfileTerminal {
		fmt.Fprintf(os.Stderr, "Error: unknown profile %q\n", flagProfile)
		os.Exit(1)
	}

	cfg, err := config.LoadProfile(profile, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
