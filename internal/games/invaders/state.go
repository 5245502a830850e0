package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State holds the player and round counters.
type State struct {
	BombsDropped uint16
	RocketsFired uint16
	AliensKilled uint16
	GameOver     bool

	Health          uint8
	PlayerX         float64
	Ghost           uint8   // 0 = vulnerable, otherwise the blink phase
	GhostTimer      float64 // Seconds since the last death
	RocketLastFired float64

	startX   float64
	maxX     float64
	playerY  int
	rocketY  float64
	cooldown float64
	blinks   uint8
	period   float64
}

// newState builds the round-start state. The config must have passed Validate.
func newState(cfg config.InvadersConfig) State {
	sprite := cfg.Canvas.SpriteSize
	playerY := cfg.Canvas.Height - sprite
	s := State{
		startX:   float64(cfg.Canvas.Width-sprite) / 2,
		maxX:     float64(cfg.Canvas.Width - sprite),
		playerY:  playerY,
		rocketY:  float64(playerY - sprite/2),
		cooldown: cfg.RocketCooldown(),
		blinks:   uint8(cfg.Ghost.Blinks),      //#nosec G115 -- validated to 1..254
		period:   cfg.Ghost.BlinkPeriod,
		Health:   uint8(cfg.Player.StartHealth), //#nosec G115 -- validated to 1..255
	}
	s.PlayerX = s.startX
	s.RocketLastFired = math.Inf(-1)
	return s
}

// PlayerY returns the fixed pixel row of the player sprite.
func (s *State) PlayerY() int {
	return s.playerY
}

// MovePlayer shifts the player horizontally, keeping the sprite on the canvas.
func (s *State) MovePlayer(dx float64) {
	s.PlayerX = core.ClampF(s.PlayerX+dx, 0, s.maxX)
}

// FireRocket spawns a rocket above the player unless the previous shot was
// less than the cooldown ago. A shot on cooldown is silently dropped.
func (s *State) FireRocket(now float64, rockets *ParticlePool) bool {
	if now-s.RocketLastFired < s.cooldown {
		return false
	}
	s.RocketLastFired = now
	s.RocketsFired++
	rockets.Spawn(int(s.PlayerX), s.rocketY)
	return true
}

// KillPlayer takes a life, recenters the player and starts the ghost window.
func (s *State) KillPlayer() {
	if s.Health > 0 {
		s.Health--
	}
	if s.Health == 0 {
		s.GameOver = true
	}
	s.PlayerX = s.startX
	s.Ghost = 1
	s.GhostTimer = 0
}

// Ghosted reports whether the player is currently invincible.
func (s *State) Ghosted() bool {
	return s.Ghost != 0
}

// TickGhost advances the blink phase and reports whether the player should
// be drawn this frame. Even phases are hidden, including the one that ends
// the window.
func (s *State) TickGhost(dt float64) bool {
	if s.Ghost == 0 {
		return true
	}
	s.GhostTimer += dt
	if s.GhostTimer-float64(s.Ghost-1)*s.period > s.period/2 {
		s.Ghost++
	}
	visible := s.Ghost%2 == 1
	if s.Ghost >= s.blinks+1 {
		s.Ghost = 0
	}
	return visible
}
