package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

const defaultVariant = "invaders"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a round",
	Long: `Start a round of the given variant (default: invaders).

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  Enter            - Start from the greeting screen
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, fewer bombs, speed ramps up from the bottom
  normal - Config values, speed ramps up from 30%
  hard   - 2 lives, more bombs, speed ramps up from 70%
  fixed  - No progression, config values only

Examples:
  invaders play
  invaders play invaders_random
  invaders play --difficulty hard --seed 42
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available variants.")
		os.Exit(1)
	}
	if _, err := parseDifficulty(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Configuration errors are fatal here; the game itself only falls back.
	_, src, err := config.LoadInvaders(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "err", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", src)

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	summary, err := tui.Run(game, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	fields := []any{"variant", gameID, "score", summary.Score, "restarts", summary.Restarts, "ticks", summary.Ticks}
	if g, ok := game.(*invaders.Game); ok {
		st := g.Stats()
		fields = append(fields, "rockets", st.RocketsFired, "bombs", st.BombsDropped, "lives", st.Health)
	}
	logger.Info("session finished", fields...)
	for _, path := range summary.Screenshots {
		logger.Info("screenshot saved", "path", path)
	}
}
