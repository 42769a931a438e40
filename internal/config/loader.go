package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Profile selects a family of defaults tuned for a host surface.
type Profile string

const (
	ProfileTouch    Profile = "touch"    // Portrait phone-sized field, used by the window and headless hosts
	ProfileTerminal Profile = "terminal" // Field that maps cleanly onto an 80x24 terminal
)

// fileName returns the config file looked up in the user and local directories.
func (p Profile) fileName() string {
	if p == ProfileTerminal {
		return "terminal.yaml"
	}
	return "breakout.yaml"
}

// embedded returns the profile's embedded default YAML.
func (p Profile) embedded() []byte {
	if p == ProfileTerminal {
		return defaultTerminalYAML
	}
	return defaultBreakoutYAML
}

// Load loads the touch profile configuration.
func Load(customPath string) (BreakoutConfig, error) {
	return LoadProfile(ProfileTouch, customPath)
}

// LoadProfile loads configuration for a profile.
// Search order: customPath -> ~/.breakout/configs/<profile file> -> ./configs/<profile file> -> embedded default.
// Files are decoded over the hardcoded defaults, so a partial file only overrides what it names.
func LoadProfile(profile Profile, customPath string) (BreakoutConfig, error) {
	fileName := profile.fileName()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(profile.embedded())
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks that every size and count is usable by the game loop.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %vx%v", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Field.BottomMargin < 0 || c.Field.BottomMargin >= c.Field.Height:
		return fmt.Errorf("%w: bottom_margin %v out of range", ErrInvalidConfig, c.Field.BottomMargin)
	case c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0:
		return fmt.Errorf("%w: brick grid must be positive, got %dx%d", ErrInvalidConfig, c.Bricks.Rows, c.Bricks.Cols)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.Margin < 0:
		return fmt.Errorf("%w: brick size %vx%v margin %v", ErrInvalidConfig, c.Bricks.Width, c.Bricks.Height, c.Bricks.Margin)
	case c.Ball.Width <= 0 || c.Ball.Height <= 0:
		return fmt.Errorf("%w: ball size %vx%v", ErrInvalidConfig, c.Ball.Width, c.Ball.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size %vx%v", ErrInvalidConfig, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Offset < c.Paddle.Height || c.Paddle.Offset > c.Field.Height:
		return fmt.Errorf("%w: paddle offset %v out of range", ErrInvalidConfig, c.Paddle.Offset)
	case c.Physics.Density <= 0:
		return fmt.Errorf("%w: density must be positive, got %v", ErrInvalidConfig, c.Physics.Density)
	case c.Physics.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Physics.TickRate)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}
