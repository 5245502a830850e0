package invaders

// Sprite identifies what a draw call shows.
type Sprite uint8

const (
	SpritePlayer Sprite = iota
	SpriteEnemy1
	SpriteEnemy2
	SpriteRocket
	SpriteBomb
)

// String returns the config name of the sprite.
func (s Sprite) String() string {
	switch s {
	case SpritePlayer:
		return "player"
	case SpriteEnemy1:
		return "enemy1"
	case SpriteEnemy2:
		return "enemy2"
	case SpriteRocket:
		return "rocket"
	case SpriteBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// enemySprite maps a predetermined table name to an enemy sprite.
// Names are validated by config, anything else falls back to Enemy1.
func enemySprite(name string) Sprite {
	if name == SpriteEnemy2.String() {
		return SpriteEnemy2
	}
	return SpriteEnemy1
}
