package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Canvas: InvadersCanvas{
			Width:      640,
			Height:     480,
			SpriteSize: 32,
			FontWidth:  8,
		},
		Player: InvadersPlayer{
			StartHealth: 3,
			Speed:       150,
		},
		Rockets: InvadersRockets{
			Speed:       350,
			LogCapacity: 3,
		},
		Aliens: InvadersAliens{
			Speed:            100,
			YJump:            50,
			InitialX:         0,
			InitialY:         0,
			InitialDirection: 1,
			BorderCorrection: 5,
			RandomFormation:  false,
			RandomType:       false,
		},
		Formation: InvadersFormation{
			Rows:     4,
			Columns:  8,
			PaddingX: 10,
			PaddingY: 10,
			Predetermined: []PredeterminedSet{
				{Rows: []uint32{0x01, 0x20, 0x03, 0x6D}, Sprite: "enemy1"},
				{Rows: []uint32{0x41, 0x2D, 0xAA, 0x2E}, Sprite: "enemy2"},
				{Rows: []uint32{0x0A, 0xE7, 0xF1, 0x4F}, Sprite: "enemy2"},
				{Rows: []uint32{0x63, 0xB1, 0x23, 0x18}, Sprite: "enemy1"},
			},
		},
		Bombs: InvadersBombs{
			Speed:        80,
			DropChance:   0.1,
			SpawnOffsetX: 0,
			SpawnOffsetY: 24,
			LogCapacity:  6,
		},
		Ghost: InvadersGhost{
			Blinks:      5,
			BlinkPeriod: 0.2,
		},
		Collision: InvadersCollision{
			RocketAlien: Threshold{X: 16, Y: 20},
			AlienPlayer: Threshold{X: 28, Y: 22},
			BombPlayer:  Threshold{X: 20, Y: 16},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				ChanceMultiplier: 1.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
