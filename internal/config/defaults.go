package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/terminal.yaml
var defaultTerminalYAML []byte

// DefaultBreakoutConfig returns the hardcoded configuration.
// It mirrors defaults/breakout.yaml and is used if the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:        1080,
			Height:       1920,
			BottomMargin: 100,
		},
		Bricks: BricksConfig{
			Rows:   9,
			Cols:   10,
			Width:  100,
			Height: 40,
			Margin: 4,
			Top:    160,
		},
		Ball: BallConfig{
			Width:  30,
			Height: 30,
		},
		Paddle: PaddleConfig{
			Width:  200,
			Height: 30,
			Offset: 250,
			Clamp:  false,
			Nudge:  40,
		},
		Physics: PhysicsConfig{
			Density:  3,
			TickRate: 60,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file for a profile.
func DefaultYAML(profile Profile) []byte {
	src := profile.embedded()
	out := make([]byte, len(src))
	copy(out, src)
	return out
}
