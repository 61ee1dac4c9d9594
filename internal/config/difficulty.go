package config

import (
	"fmt"
	"strings"
)

// Difficulty selects one row of the difficulty table.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists every difficulty in cycling order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// String returns the enum name used in persisted leaderboard entries.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "EASY"
	case DifficultyMedium:
		return "MEDIUM"
	case DifficultyHard:
		return "HARD"
	default:
		return "UNKNOWN"
	}
}

// Next returns the following difficulty, wrapping around.
func (d Difficulty) Next() Difficulty {
	return Difficulties[(int(d)+1)%len(Difficulties)]
}

// Prev returns the preceding difficulty, wrapping around.
func (d Difficulty) Prev() Difficulty {
	n := len(Difficulties)
	return Difficulties[(int(d)-1+n)%n]
}

// ParseDifficulty converts a case-insensitive name ("easy", "MEDIUM") to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return DifficultyMedium, fmt.Errorf("config: unknown difficulty %q", s)
}

// DifficultyProfile is the fixed tuple selected by a difficulty.
type DifficultyProfile struct {
	AlienRows            int
	AlienCols            int
	AlienSpeedMultiplier float64
	ObstacleSpawnRate    int // Ticks between obstacle spawns
	PointsMultiplier     float64
}

// AlienCount returns the size of a freshly generated swarm.
func (p DifficultyProfile) AlienCount() int {
	return p.AlienRows * p.AlienCols
}

// AlienPoints returns the score for destroying one alien.
func (p DifficultyProfile) AlienPoints() int {
	return int(10 * p.PointsMultiplier)
}

// ObstaclePoints returns the score for destroying one obstacle.
func (p DifficultyProfile) ObstaclePoints() int {
	return int(5 * p.PointsMultiplier)
}

var profiles = map[Difficulty]DifficultyProfile{
	DifficultyEasy: {
		AlienRows:            3,
		AlienCols:            6,
		AlienSpeedMultiplier: 0.8,
		ObstacleSpawnRate:    180,
		PointsMultiplier:     1.0,
	},
	DifficultyMedium: {
		AlienRows:            5,
		AlienCols:            8,
		AlienSpeedMultiplier: 1.0,
		ObstacleSpawnRate:    120,
		PointsMultiplier:     1.5,
	},
	DifficultyHard: {
		AlienRows:            7,
		AlienCols:            10,
		AlienSpeedMultiplier: 1.5,
		ObstacleSpawnRate:    60,
		PointsMultiplier:     2.0,
	},
}

// ProfileFor returns the profile of a difficulty.
// Unknown values fall back to Medium.
func ProfileFor(d Difficulty) DifficultyProfile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[DifficultyMedium]
}
