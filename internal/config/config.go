// Package config provides YAML-based configuration loading and validation
// for the breakout playfield, brick grid, and loop timing.
package config

// BreakoutConfig contains all tunables for a game session.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// FieldConfig defines the virtual playfield in playfield units.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
	Top    float64 `yaml:"top"`
}

// BallConfig defines the ball size.
type BallConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle size, placement, and input behavior.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Distance from paddle top to field bottom
	Clamp  bool    `yaml:"clamp"`
	Nudge  float64 `yaml:"nudge"` // Keyboard step
}

// PhysicsConfig defines ball speed and tick cadence.
type PhysicsConfig struct {
	Density  float64 `yaml:"density"` // Speed multiplier, like a display density
	TickRate int     `yaml:"tick_rate"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}
