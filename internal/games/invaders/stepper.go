package invaders

import (
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/xorshift"
)

// Input is the key state sampled once per frame.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// Driver is the rendering, input and timing backend the stepper runs against.
// Every call is expected to return immediately.
type Driver interface {
	// StartFrame begins a frame. False means the player asked to quit.
	StartFrame() bool
	Input() Input
	// ElapsedSeconds is a monotonic clock.
	ElapsedSeconds() float64
	DrawSprite(s Sprite, x, y int)
	DrawText(text string, x, y int)
}

// hudMargin is the pixel inset of the lives and score text.
const hudMargin = 5

// Stepper owns a whole round and advances it one frame per Tick.
type Stepper struct {
	State   State
	Rockets *ParticlePool
	Bombs   *ParticlePool
	Aliens  *Formation

	cfg        config.InvadersConfig
	rng        *xorshift.Rand
	difficulty *config.DifficultyManager

	prev    float64
	started bool
	ticks   int
}

// NewStepper creates a round. The config must have passed Validate.
func NewStepper(cfg config.InvadersConfig, rng *xorshift.Rand) *Stepper {
	return &Stepper{
		State:      newState(cfg),
		Rockets:    NewParticlePool(cfg.Rockets.LogCapacity),
		Bombs:      NewParticlePool(cfg.Bombs.LogCapacity),
		Aliens:     NewFormation(cfg, rng),
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Ticks returns the number of frames simulated so far.
func (s *Stepper) Ticks() int {
	return s.ticks
}

// RNG returns the generator shared by the formation and the bomb rolls.
func (s *Stepper) RNG() *xorshift.Rand {
	return s.rng
}

// Run ticks until the round ends or the driver stops.
func (s *Stepper) Run(d Driver) {
	for s.Tick(d) {
	}
}

// Tick simulates one frame and reports whether the round goes on.
// The order of the phases is fixed: rockets move before the alien pass so
// collisions see this frame's rocket positions.
func (s *Stepper) Tick(d Driver) bool {
	if !d.StartFrame() || s.State.GameOver {
		return false
	}

	now := d.ElapsedSeconds()
	if !s.started {
		s.prev = now
		s.started = true
	}
	dt := now - s.prev
	s.prev = now
	s.ticks++

	st := &s.State
	in := d.Input()
	switch {
	case in.Left:
		st.MovePlayer(-s.cfg.Player.Speed * dt)
	case in.Right:
		st.MovePlayer(s.cfg.Player.Speed * dt)
	case in.Fire:
		st.FireRocket(now, s.Rockets)
	}

	playerX, playerY := int(st.PlayerX), st.PlayerY()
	if st.TickGhost(dt) {
		d.DrawSprite(SpritePlayer, playerX, playerY)
	}

	s.Rockets.StepAndDraw(dt, s.cfg.Rockets.Speed, -1, ExitTop(), func(p *Particle) {
		d.DrawSprite(SpriteRocket, p.X, int(p.Y))
	})

	s.alienPass(d, dt)

	height := float64(s.cfg.Canvas.Height)
	s.Bombs.StepAndDraw(dt, s.cfg.Bombs.Speed, 1, ExitBottom(height), func(p *Particle) {
		d.DrawSprite(SpriteBomb, p.X, int(p.Y))
		if within(p.X, int(p.Y), int(st.PlayerX), playerY, s.cfg.Collision.BombPlayer) {
			if !st.Ghosted() {
				st.KillPlayer()
			}
			p.Alive = false
		}
	})

	s.drawHUD(d)
	return !st.GameOver
}

// alienPass visits every live alien once: draw, bomb roll, rocket and player
// collisions. It then resets or moves the formation.
func (s *Stepper) alienPass(d Driver, dt float64) {
	st := &s.State
	f := s.Aliens
	ox, oy := f.Origin()
	strideX, strideY := f.Stride()
	playerY := st.PlayerY()
	score := int(st.AliensKilled)
	chance := float32(s.difficulty.Chance(s.cfg.Bombs.DropChance, score, s.ticks) * dt)
	rockets := s.Rockets.Slots()

	var cor uint32
	bottom := -1
	for row, mask := range f.Rows {
		cor |= mask
		if mask != 0 {
			bottom = row
		}
		y := oy + row*strideY
		for m := mask; m != 0; m &= m - 1 {
			col := bits.TrailingZeros32(m)
			x := ox + col*strideX
			d.DrawSprite(f.Sprite, x, y)

			if s.rng.Unit() < chance {
				st.BombsDropped++
				s.Bombs.Spawn(x+s.cfg.Bombs.SpawnOffsetX, float64(y+s.cfg.Bombs.SpawnOffsetY))
			}

			destroyed := false
			for i := range rockets {
				r := &rockets[i]
				if r.Alive && within(r.X, int(r.Y), x, y, s.cfg.Collision.RocketAlien) {
					r.Alive = false
					destroyed = true
				}
			}
			if within(x, y, int(st.PlayerX), playerY, s.cfg.Collision.AlienPlayer) {
				if !st.Ghosted() {
					st.KillPlayer()
				}
				destroyed = true
			}
			if destroyed {
				st.AliensKilled++
				f.Kill(row, col)
			}
		}
	}

	if cor == 0 {
		f.Reset()
		return
	}
	if f.BottomLine(bottom) > s.cfg.Canvas.Height {
		st.GameOver = true
	}
	f.Speed = s.difficulty.Speed(s.cfg.Aliens.Speed, score, s.ticks)
	f.Step(dt, cor)
}

func (s *Stepper) drawHUD(d Driver) {
	d.DrawText("Lives left: "+strconv.Itoa(int(s.State.Health)), hudMargin, hudMargin)
	score := "Score: " + strconv.Itoa(int(s.State.AliensKilled))
	d.DrawText(score, s.cfg.Canvas.Width-len(score)*s.cfg.Canvas.FontWidth-hudMargin, hudMargin)
}
