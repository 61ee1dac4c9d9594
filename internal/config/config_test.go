package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDifficultyScaling(t *testing.T) {
	for i := 1; i < len(Difficulties); i++ {
		easier := ProfileFor(Difficulties[i-1])
		harder := ProfileFor(Difficulties[i])

		if harder.AlienCount() <= easier.AlienCount() {
			t.Errorf("%v alien count %d should exceed %v count %d",
				Difficulties[i], harder.AlienCount(), Difficulties[i-1], easier.AlienCount())
		}
		if harder.AlienSpeedMultiplier <= easier.AlienSpeedMultiplier {
			t.Errorf("%v speed multiplier should exceed %v", Difficulties[i], Difficulties[i-1])
		}
		if harder.ObstacleSpawnRate >= easier.ObstacleSpawnRate {
			t.Errorf("%v spawn rate %d should be below %v rate %d",
				Difficulties[i], harder.ObstacleSpawnRate, Difficulties[i-1], easier.ObstacleSpawnRate)
		}
	}
}

func TestDifficultyPoints(t *testing.T) {
	tests := []struct {
		d               Difficulty
		alien, obstacle int
	}{
		{DifficultyEasy, 10, 5},
		{DifficultyMedium, 15, 7},
		{DifficultyHard, 20, 10},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			p := ProfileFor(tc.d)
			if p.AlienPoints() != tc.alien {
				t.Errorf("AlienPoints() = %d, expected %d", p.AlienPoints(), tc.alien)
			}
			if p.ObstaclePoints() != tc.obstacle {
				t.Errorf("ObstaclePoints() = %d, expected %d", p.ObstaclePoints(), tc.obstacle)
			}
		})
	}
}

func TestDifficultyCycle(t *testing.T) {
	if DifficultyHard.Next() != DifficultyEasy {
		t.Errorf("Hard.Next() = %v, expected EASY", DifficultyHard.Next())
	}
	if DifficultyEasy.Prev() != DifficultyHard {
		t.Errorf("Easy.Prev() = %v, expected HARD", DifficultyEasy.Prev())
	}
	if DifficultyEasy.Next() != DifficultyMedium {
		t.Errorf("Easy.Next() = %v, expected MEDIUM", DifficultyEasy.Next())
	}
}

func TestThemeCycle(t *testing.T) {
	th := ThemeClassic
	for range Themes {
		th = th.Next()
	}
	if th != ThemeClassic {
		t.Errorf("cycling through all themes should return to CLASSIC, got %v", th)
	}
	if ThemeClassic.Prev() != ThemeForest {
		t.Errorf("Classic.Prev() = %v, expected FOREST", ThemeClassic.Prev())
	}
}

func TestParseNames(t *testing.T) {
	if d, err := ParseDifficulty("hard"); err != nil || d != DifficultyHard {
		t.Errorf("ParseDifficulty(hard) = %v, %v", d, err)
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("ParseDifficulty(insane) should fail")
	}
	if th, err := ParseTheme("Ocean"); err != nil || th != ThemeOcean {
		t.Errorf("ParseTheme(Ocean) = %v, %v", th, err)
	}
	if _, err := ParseTheme("vaporwave"); err == nil {
		t.Error("ParseTheme(vaporwave) should fail")
	}
}

func TestPalettesDistinct(t *testing.T) {
	for _, th := range Themes {
		p := PaletteFor(th)
		if p.Player == p.Background || p.Enemy == p.Background {
			t.Errorf("%v palette draws entities in the background colour", th)
		}
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg InvadersConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded YAML = %+v\nhardcoded = %+v", cfg, DefaultInvadersConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  width: 800\naliens:\n  descend_step: 40\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg.World.Width != 800 {
		t.Errorf("World.Width = %v, expected 800", cfg.World.Width)
	}
	if cfg.Aliens.DescendStep != 40 {
		t.Errorf("Aliens.DescendStep = %v, expected 40", cfg.Aliens.DescendStep)
	}
	// Unset keys keep their defaults
	if cfg.World.Height != 700 {
		t.Errorf("World.Height = %v, expected default 700", cfg.World.Height)
	}
}

func TestLoadInvadersErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(bad); err == nil {
		t.Error("unparseable config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  min_size: 30\n  max_size: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadInvaders(invalid)
	if err == nil || !strings.Contains(err.Error(), "min_size") {
		t.Errorf("invalid config error = %v, expected min_size complaint", err)
	}
}

func TestValidateRejectsUnrunnableTunings(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected string
	}{
		{"negative backdrop elements", "backdrop:\n  elements: -1\n", "backdrop.elements"},
		{"negative backdrop size", "backdrop:\n  min_size: -2\n", "backdrop.min_size"},
		{"zero obstacle speed", "obstacles:\n  min_speed: 0\n", "obstacles.min_speed"},
		{"negative obstacle speeds", "obstacles:\n  min_speed: -3\n  max_speed: -1\n", "obstacles.min_speed must be positive"},
		{"zero obstacle size", "obstacles:\n  min_size: 0\n", "obstacles.min_size must be positive"},
	}

	dir := t.TempDir()
	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("tuning%d.yaml", i))
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadInvaders(path)
			if err == nil || !strings.Contains(err.Error(), tc.expected) {
				t.Errorf("LoadInvaders() error = %v, expected %q complaint", err, tc.expected)
			}
		})
	}

	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("INVADERS_TEST_ENV", "set")
	if EnvOr("INVADERS_TEST_ENV", "fallback") != "set" {
		t.Error("EnvOr should return the variable when set")
	}
	if EnvOr("INVADERS_TEST_ENV_UNSET", "fallback") != "fallback" {
		t.Error("EnvOr should return the fallback when unset")
	}
}
