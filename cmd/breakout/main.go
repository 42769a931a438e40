// breakout is a single-screen brick breaker for touch screens, desktop
// windows, and terminals.
//
// Usage:
//
//	breakout play             - Play in the terminal
//	breakout play --headless  - Run an autopilot session without a UI
//	breakout gui              - Play in a window (touch or mouse)
//	breakout serve            - Start SSH server for remote play
//	breakout journal          - Browse recorded sessions
//	breakout config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--db <path>         - Session journal (default: ~/.breakout/journal.db)
//	--no-journal        - Do not record sessions
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Terminal UI log (default: ~/.breakout/breakout.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/touch-breakout/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagNoJournal bool
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Touch Breakout - clear the wall, keep the ball alive",
	Long: `Touch Breakout is a single-screen brick breaker. Drag the paddle
under the ball, destroy all 90 bricks, and do not let the ball fall.

Available commands:
  play     - Play in the terminal (or headless with --headless)
  gui      - Play in a window with touch or mouse
  serve    - Start SSH server for remote play
  journal  - Browse recorded sessions
  config   - Print the effective configuration

Examples:
  breakout play
  breakout gui --scale 0.4
  breakout serve --ssh :2222
  breakout journal list`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/journal.db", "Path to session journal")
	rootCmd.PersistentFlags().BoolVar(&flagNoJournal, "no-journal", false, "Do not record sessions")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.breakout/breakout.log", "Log file for the terminal UI")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens the terminal UI log for appending. The UI owns the
// screen, so it cannot log to stderr.
func openLogFile() (*os.File, error) {
	path, err := expandHome(flagLogFile)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// openStore opens the session journal, or returns nil when it is disabled
// or unavailable. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	if flagNoJournal {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open journal", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
