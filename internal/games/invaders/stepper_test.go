package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/xorshift"
)

func newTestStepper(t *testing.T, cfg config.InvadersConfig, seed uint32) (*Stepper, *Recorder) {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return NewStepper(cfg, xorshift.New(seed)), NewRecorder(60)
}

func TestFirstTickHasZeroDelta(t *testing.T) {
	s, rec := newTestStepper(t, config.DefaultInvadersConfig(), 1)
	rec.Hold = Input{Right: true}

	if !s.Tick(rec) {
		t.Fatal("first tick ended the round")
	}
	if s.State.PlayerX != 304 || s.Aliens.X != 0 {
		t.Errorf("nothing should move on the first frame: player %v formation %v", s.State.PlayerX, s.Aliens.X)
	}

	s.Tick(rec)
	if s.State.PlayerX <= 304 || s.Aliens.X <= 0 {
		t.Errorf("second frame should move: player %v formation %v", s.State.PlayerX, s.Aliens.X)
	}
}

func TestTickDrawsEveryAlien(t *testing.T) {
	s, rec := newTestStepper(t, config.DefaultInvadersConfig(), 1)
	s.Tick(rec)

	// First wave: 0x01, 0x20, 0x03, 0x6D
	if got := rec.Count(SpriteEnemy1); got != 9 {
		t.Errorf("drew %d aliens, expected 9", got)
	}
	if got := rec.Count(SpritePlayer); got != 1 {
		t.Errorf("drew %d players, expected 1", got)
	}
	if len(rec.Texts) != 2 || rec.Texts[0].Text != "Lives left: 3" || rec.Texts[1].Text != "Score: 0" {
		t.Errorf("HUD = %+v", rec.Texts)
	}
	if x := rec.Texts[1].X; x != 640-8*8-5 {
		t.Errorf("score x = %d, expected right aligned at %d", x, 640-8*8-5)
	}
}

func TestFireTwiceWithinCooldownSpawnsOneRocket(t *testing.T) {
	s, rec := newTestStepper(t, config.DefaultInvadersConfig(), 1)
	rec.Hold = Input{Fire: true}

	// Five frames at 60 fps is well under the 0.17s cooldown.
	for range 5 {
		s.Tick(rec)
	}
	if s.State.RocketsFired != 1 || s.Rockets.Alive() != 1 {
		t.Errorf("fired=%d alive=%d, expected one rocket", s.State.RocketsFired, s.Rockets.Alive())
	}
	if rec.Count(SpriteRocket) != 1 {
		t.Errorf("drew %d rockets, expected 1", rec.Count(SpriteRocket))
	}
}

func TestRocketDestroysAlien(t *testing.T) {
	s, rec := newTestStepper(t, config.DefaultInvadersConfig(), 1)
	// Row 0 of the first wave holds a single alien at the origin.
	s.Rockets.Spawn(0, 0)

	s.Tick(rec)
	if s.State.AliensKilled != 1 {
		t.Errorf("aliens killed = %d, expected 1", s.State.AliensKilled)
	}
	if s.Aliens.Rows[0] != 0 {
		t.Errorf("row 0 = %#x, expected cleared", s.Aliens.Rows[0])
	}
	if s.Rockets.Alive() != 0 {
		t.Error("rocket should be consumed by the hit")
	}
}

func TestClearedFormationResets(t *testing.T) {
	s, rec := newTestStepper(t, config.DefaultInvadersConfig(), 1)
	for i := range s.Aliens.Rows {
		s.Aliens.Rows[i] = 0
	}
	s.Aliens.X, s.Aliens.Y = 100, 100

	s.Tick(rec)
	if s.Aliens.Rows[0] != 0x41 || s.Aliens.Sprite != SpriteEnemy2 {
		t.Errorf("expected the second wave, got rows %#x sprite %v", s.Aliens.Rows, s.Aliens.Sprite)
	}
	if s.Aliens.X != 0 || s.Aliens.Y != 0 {
		t.Errorf("reset should restore the origin, got (%v, %v)", s.Aliens.X, s.Aliens.Y)
	}
}

// placeAlienOnPlayer leaves a single alien in row 3 right on top of the player.
func placeAlienOnPlayer(s *Stepper) {
	s.Aliens.Rows = []uint32{0, 0, 0, 1}
	s.Aliens.X = s.State.PlayerX
	s.Aliens.Y = float64(s.State.PlayerY() - 3*42)
}

func TestAlienContactKillsPlayer(t *testing.T) {
	s, rec := newTestStepper(t, config.DefaultInvadersConfig(), 1)
	placeAlienOnPlayer(s)

	s.Tick(rec)
	if s.State.Health != 2 || !s.State.Ghosted() {
		t.Errorf("health=%d ghost=%d, expected a kill", s.State.Health, s.State.Ghost)
	}
	if s.State.AliensKilled != 1 || !s.Aliens.Empty() {
		t.Errorf("alien should be destroyed, killed=%d rows=%v", s.State.AliensKilled, s.Aliens.Rows)
	}
}

func TestGhostIgnoresAlienButDestroysIt(t *testing.T) {
	s, rec := newTestStepper(t, config.DefaultInvadersConfig(), 1)
	s.State.KillPlayer()
	placeAlienOnPlayer(s)

	s.Tick(rec)
	if s.State.Health != 2 {
		t.Errorf("health = %d, ghost should be immune", s.State.Health)
	}
	if s.State.AliensKilled != 1 || !s.Aliens.Empty() {
		t.Errorf("alien should still be destroyed, killed=%d rows=%v", s.State.AliensKilled, s.Aliens.Rows)
	}
}

func TestBombHitsPlayer(t *testing.T) {
	tests := []struct {
		name       string
		ghosted    bool
		wantHealth uint8
	}{
		{"vulnerable", false, 2},
		{"ghosted", true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newTestStepper(t, config.DefaultInvadersConfig(), 1)
			if tt.ghosted {
				s.State.KillPlayer()
			}
			s.Bombs.Spawn(int(s.State.PlayerX), float64(s.State.PlayerY()))

			s.Tick(rec)
			if s.State.Health != tt.wantHealth {
				t.Errorf("health = %d, expected %d", s.State.Health, tt.wantHealth)
			}
			if s.Bombs.Alive() != 0 {
				t.Error("bomb should be removed on contact")
			}
		})
	}
}

func TestFormationReachingBottomEndsRound(t *testing.T) {
	s, rec := newTestStepper(t, config.DefaultInvadersConfig(), 1)
	// Bottom row lower edge at 400+32+126 > 480
	s.Aliens.Y = 400

	if s.Tick(rec) {
		t.Error("tick should report the round is over")
	}
	if !s.State.GameOver {
		t.Error("game over should be set")
	}
	if s.Tick(rec) {
		t.Error("ticks after game over should do nothing")
	}
}

func TestBombRollsUseChance(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Bombs.DropChance = 1000 // Every roll succeeds once dt > 0
	s, rec := newTestStepper(t, cfg, 7)

	s.Tick(rec)
	if s.State.BombsDropped != 0 {
		t.Errorf("dropped %d bombs on a zero-length frame", s.State.BombsDropped)
	}

	s.Tick(rec)
	if s.State.BombsDropped != 9 {
		t.Errorf("dropped %d bombs, expected one per alien", s.State.BombsDropped)
	}
	// Spawned 24px below each alien, then moved by this frame's step
	for _, b := range s.Bombs.Slots() {
		if b.Alive && b.Y < 24 {
			t.Errorf("bomb at y=%v, expected below the spawn offset", b.Y)
		}
	}
}

func TestRunStopsAtLimit(t *testing.T) {
	s, rec := newTestStepper(t, config.DefaultInvadersConfig(), 1)
	rec.Limit = 30

	s.Run(rec)
	if s.Ticks() != 30 {
		t.Errorf("ticks = %d, expected 30", s.Ticks())
	}
}

func TestStepperDeterminism(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Aliens.RandomFormation = true
	cfg.Aliens.RandomType = true

	script := func(frame int) Input {
		switch {
		case frame%40 < 15:
			return Input{Left: true}
		case frame%40 < 30:
			return Input{Right: true}
		default:
			return Input{Fire: true}
		}
	}

	run := func(seed uint32) Snapshot {
		s, rec := newTestStepper(t, cfg, seed)
		rec.Script = script
		rec.Limit = 600
		s.Run(rec)
		return s.Snapshot()
	}

	a, b := run(12345), run(12345)
	if a.Hash() != b.Hash() {
		t.Errorf("same seed produced different rounds: %d vs %d", a.Hash(), b.Hash())
	}
	if a.RNGState != b.RNGState || a.AliensKilled != b.AliensKilled {
		t.Errorf("snapshots differ: %+v vs %+v", a, b)
	}

	c := run(54321)
	if c.RNGState == a.RNGState {
		t.Error("different seeds should diverge")
	}
}
