// Package invaders implements the alien invasion shooter: a fixed formation of
// aliens stored as one bitmask per row, ring-buffer projectile pools and a
// frame stepper that runs against any Driver.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/xorshift"
)

// Variant selects how waves are generated.
type Variant int

const (
	VariantClassic Variant = iota // Cycle through the predetermined table
	VariantRandom                 // Random rows and random sprite per wave
)

// Phase is the screen the game is on.
type Phase int

const (
	PhaseGreeting Phase = iota // Waiting for the first input
	PhasePlaying
	PhaseOver
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Stats summarizes a round.
type Stats struct {
	AliensKilled int
	RocketsFired int
	BombsDropped int
	Health       int
	Ticks        int
}

// Game adapts the stepper to the registry: it feeds platform input into a
// fixed-step Recorder and rasterizes the recorded draw calls.
type Game struct {
	variant Variant
	phase   Phase
	paused  bool

	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	source  config.Source
	stepper *Stepper
	frame   *Recorder
}

// New creates a game that cycles through the predetermined waves.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewRandom creates a game with randomized waves.
func NewRandom() *Game {
	return &Game{variant: VariantRandom}
}

func init() {
	registry.Register("invaders", func() registry.Game { return New() })
	registry.Register("invaders_random", func() registry.Game { return NewRandom() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantRandom {
		return "invaders_random"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantRandom {
		return "Invaders (Random Waves)"
	}
	return "Invaders"
}

// Reset loads the config and starts a new round on the greeting screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, src, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg, src = config.DefaultInvadersConfig(), config.SourceBuiltin
	}
	config.ApplyInvadersPreset(&cfg, difficultyPreset)
	if g.variant == VariantRandom {
		cfg.Aliens.RandomFormation = true
		cfg.Aliens.RandomType = true
	}
	g.cfg = cfg
	g.source = src

	rng := xorshift.New(xorshift.Seed64(runtime.Seed))
	g.stepper = NewStepper(cfg, rng)
	g.frame = NewRecorder(runtime.TickRate)
	g.phase = PhaseGreeting
	g.paused = false
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseGreeting:
		if in.Any(core.ActionLeft, core.ActionRight, core.ActionFire, core.ActionConfirm) {
			g.phase = PhasePlaying
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		g.frame.Hold = Input{
			Left:  in.Has(core.ActionLeft),
			Right: in.Has(core.ActionRight),
			Fire:  in.Has(core.ActionFire),
		}
		if !g.stepper.Tick(g.frame) {
			g.phase = PhaseOver
		}
	}
	return core.StepResult{State: g.State()}
}

// State returns the platform-facing status. The score is the kill count.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.stepper.State.AliensKilled),
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}

// Phase returns the current screen.
func (g *Game) Phase() Phase {
	return g.phase
}

// Stats returns the round counters.
func (g *Game) Stats() Stats {
	st := g.stepper.State
	return Stats{
		AliensKilled: int(st.AliensKilled),
		RocketsFired: int(st.RocketsFired),
		BombsDropped: int(st.BombsDropped),
		Health:       int(st.Health),
		Ticks:        g.stepper.Ticks(),
	}
}

// Config returns the configuration the round runs with and where it came from.
func (g *Game) Config() (config.InvadersConfig, config.Source) {
	return g.cfg, g.source
}
