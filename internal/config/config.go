// Package config provides the static difficulty and theme tables and the
// YAML-based world tuning for the invaders engine.
package config

// InvadersConfig contains the world tuning: dimensions, entity sizes and speeds.
// Difficulty-dependent numbers live in the DifficultyProfile table instead.
type InvadersConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Bullets   BulletConfig   `yaml:"bullets"`
	Aliens    AlienConfig    `yaml:"aliens"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Backdrop  BackdropConfig `yaml:"backdrop"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	DangerLineOffset float64 `yaml:"danger_line_offset"` // Distance of the danger line from the bottom
}

// DangerLine returns the y-coordinate at which a descending alien ends the session.
func (w WorldConfig) DangerLine() float64 {
	return w.Height - w.DangerLineOffset
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance of the ship's top edge from the bottom
	MuzzleOffset float64 `yaml:"muzzle_offset"` // Bullet spawn x relative to the ship's left edge
}

// BulletConfig defines player bullets.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// AlienConfig defines the swarm grid and its movement.
type AlienConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	OriginX        float64 `yaml:"origin_x"`
	OriginY        float64 `yaml:"origin_y"`
	SpacingX       float64 `yaml:"spacing_x"`
	SpacingY       float64 `yaml:"spacing_y"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to base speed on every level clear
	DescendStep    float64 `yaml:"descend_step"`
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	SpawnY   float64 `yaml:"spawn_y"`
	MarginX  int     `yaml:"margin_x"`
	MinSpeed int     `yaml:"min_speed"`
	MaxSpeed int     `yaml:"max_speed"`
	MinSize  int     `yaml:"min_size"`
	MaxSize  int     `yaml:"max_size"`
}

// BackdropConfig defines the cosmetic background decorations.
type BackdropConfig struct {
	Elements int `yaml:"elements"`
	MinSize  int `yaml:"min_size"`
	MaxSize  int `yaml:"max_size"`
}
