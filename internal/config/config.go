// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

// InvadersConfig contains all configuration for the invaders game.
// Every distance is in canvas pixels and every speed in pixels per second.
type InvadersConfig struct {
	Canvas     InvadersCanvas    `yaml:"canvas"`
	Player     InvadersPlayer    `yaml:"player"`
	Rockets    InvadersRockets   `yaml:"rockets"`
	Aliens     InvadersAliens    `yaml:"aliens"`
	Formation  InvadersFormation `yaml:"formation"`
	Bombs      InvadersBombs     `yaml:"bombs"`
	Ghost      InvadersGhost     `yaml:"ghost"`
	Collision  InvadersCollision `yaml:"collision"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersCanvas defines the virtual playfield the simulation runs on.
// The platform scales it onto the terminal.
type InvadersCanvas struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	SpriteSize int `yaml:"sprite_size"`
	FontWidth  int `yaml:"font_width"`
}

// InvadersPlayer defines player parameters.
type InvadersPlayer struct {
	StartHealth int     `yaml:"start_health"`
	Speed       float64 `yaml:"speed"`
}

// InvadersRockets defines the player's projectile pool.
type InvadersRockets struct {
	Speed       float64 `yaml:"speed"`
	LogCapacity uint    `yaml:"log_capacity"` // Pool holds 1<<LogCapacity rockets
}

// InvadersAliens defines formation movement and spawn behavior.
type InvadersAliens struct {
	Speed            float64 `yaml:"speed"`
	YJump            float64 `yaml:"y_jump"`
	InitialX         float64 `yaml:"initial_x"`
	InitialY         float64 `yaml:"initial_y"`
	InitialDirection int     `yaml:"initial_direction"`
	BorderCorrection float64 `yaml:"border_correction"`
	RandomFormation  bool    `yaml:"random_formation"`
	RandomType       bool    `yaml:"random_type"`
}

// InvadersFormation defines the alien grid geometry.
type InvadersFormation struct {
	Rows          int                `yaml:"rows"`
	Columns       int                `yaml:"columns"`
	PaddingX      int                `yaml:"padding_x"`
	PaddingY      int                `yaml:"padding_y"`
	Predetermined []PredeterminedSet `yaml:"predetermined"`
}

// PredeterminedSet is one entry of the cyclic formation table.
// Rows holds one bitmask per formation row; bit j marks an alien in column j.
type PredeterminedSet struct {
	Rows   []uint32 `yaml:"rows"`
	Sprite string   `yaml:"sprite"` // "enemy1" or "enemy2"
}

// InvadersBombs defines the alien projectile pool.
type InvadersBombs struct {
	Speed        float64 `yaml:"speed"`
	DropChance   float64 `yaml:"drop_chance"` // Per alien per second
	SpawnOffsetX int     `yaml:"spawn_offset_x"`
	SpawnOffsetY int     `yaml:"spawn_offset_y"`
	LogCapacity  uint    `yaml:"log_capacity"` // Pool holds 1<<LogCapacity bombs
}

// InvadersGhost defines the post-death invincibility window.
type InvadersGhost struct {
	Blinks      int     `yaml:"blinks"`
	BlinkPeriod float64 `yaml:"blink_period"` // Seconds
}

// Threshold is a per-axis proximity bound for a collision pair.
type Threshold struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// InvadersCollision holds the thresholds for each collision pair.
type InvadersCollision struct {
	RocketAlien Threshold `yaml:"rocket_alien"`
	AlienPlayer Threshold `yaml:"alien_player"`
	BombPlayer  Threshold `yaml:"bomb_player"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to alien speed factor at max difficulty
	ChanceMultiplier float64 `yaml:"chance_multiplier"` // Added to bomb chance factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// RocketCapacity returns the number of rocket slots.
func (c InvadersConfig) RocketCapacity() int {
	return 1 << c.Rockets.LogCapacity
}

// RocketCooldown returns the minimum seconds between two shots.
// At this rate a rocket crosses the canvas before its slot is reused.
func (c InvadersConfig) RocketCooldown() float64 {
	return float64(c.Canvas.Height) / (float64(c.RocketCapacity()) * c.Rockets.Speed)
}
