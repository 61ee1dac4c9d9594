package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hard-coded world tuning.
// It mirrors defaults/invaders.yaml and is used when the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World: WorldConfig{
			Width:            1000,
			Height:           700,
			DangerLineOffset: 120,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       30,
			Speed:        6,
			BottomOffset: 80,
			MuzzleOffset: 22,
		},
		Bullets: BulletConfig{
			Width:  4,
			Height: 10,
			Speed:  8,
		},
		Aliens: AlienConfig{
			Width:          40,
			Height:         20,
			OriginX:        100,
			OriginY:        50,
			SpacingX:       80,
			SpacingY:       60,
			BaseSpeed:      1.0,
			SpeedIncrement: 0.3,
			DescendStep:    25,
		},
		Obstacles: ObstacleConfig{
			SpawnY:   -30,
			MarginX:  50,
			MinSpeed: 2,
			MaxSpeed: 5,
			MinSize:  15,
			MaxSize:  25,
		},
		Backdrop: BackdropConfig{
			Elements: 20,
			MinSize:  10,
			MaxSize:  30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
