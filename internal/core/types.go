package core

// RuntimeConfig describes the host surface a game is running on.
type RuntimeConfig struct {
	ScreenW  int // Host width in cells (terminal) or pixels (window)
	ScreenH  int // Host height in cells or pixels
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
