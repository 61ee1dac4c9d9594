package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config search path.
const ConfigFile = "invaders.yaml"

// LoadInvaders loads the world tuning.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first; errors here are the caller's to see
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, err := parseFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := parseFile(filepath.Join("configs", ConfigFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile reads and validates one YAML file. Missing keys keep their defaults.
func parseFile(path string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// Validate rejects tunings the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		val  float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"bullets.width", c.Bullets.Width},
		{"bullets.height", c.Bullets.Height},
		{"bullets.speed", c.Bullets.Speed},
		{"aliens.width", c.Aliens.Width},
		{"aliens.height", c.Aliens.Height},
		{"aliens.base_speed", c.Aliens.BaseSpeed},
		{"aliens.descend_step", c.Aliens.DescendStep},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.val))
		}
	}

	if c.Player.Width >= c.World.Width {
		errs = append(errs, fmt.Errorf("player.width %v does not fit world.width %v", c.Player.Width, c.World.Width))
	}
	if c.World.DangerLine() <= 0 {
		errs = append(errs, fmt.Errorf("world.danger_line_offset %v leaves no playfield", c.World.DangerLineOffset))
	}
	if c.Obstacles.MinSpeed <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.min_speed must be positive, got %d", c.Obstacles.MinSpeed))
	}
	if c.Obstacles.MinSpeed > c.Obstacles.MaxSpeed {
		errs = append(errs, fmt.Errorf("obstacles.min_speed %d > max_speed %d", c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed))
	}
	if c.Obstacles.MinSize <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.min_size must be positive, got %d", c.Obstacles.MinSize))
	}
	if c.Obstacles.MinSize > c.Obstacles.MaxSize {
		errs = append(errs, fmt.Errorf("obstacles.min_size %d > max_size %d", c.Obstacles.MinSize, c.Obstacles.MaxSize))
	}
	if float64(2*c.Obstacles.MarginX) > c.World.Width {
		errs = append(errs, fmt.Errorf("obstacles.margin_x %d leaves no spawn area", c.Obstacles.MarginX))
	}
	if c.Backdrop.Elements < 0 {
		errs = append(errs, fmt.Errorf("backdrop.elements must not be negative, got %d", c.Backdrop.Elements))
	}
	if c.Backdrop.MinSize < 0 {
		errs = append(errs, fmt.Errorf("backdrop.min_size must not be negative, got %d", c.Backdrop.MinSize))
	}
	if c.Backdrop.MinSize > c.Backdrop.MaxSize {
		errs = append(errs, fmt.Errorf("backdrop.min_size %d > max_size %d", c.Backdrop.MinSize, c.Backdrop.MaxSize))
	}

	return errors.Join(errs...)
}
