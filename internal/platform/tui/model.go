package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// holdFraction is the share of a second a movement key stays down after its
// last press. Key repeat refreshes it while the key is held.
const holdFraction = 5

// Summary describes a finished session.
type Summary struct {
	Score       int
	GameOver    bool
	Restarts    int
	Ticks       int
	Screenshots []string
}

// Model is the Bubble Tea model that runs a registered game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	fixedSeed  bool
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	heldUntil  map[core.Action]int // Tick until which a held action stays active
	holdTicks  int
	tick       int
	gameState  core.GameState
	restarts   int
	shots      []string
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
// One row of the terminal is reserved for the key help.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.ScreenH = max(cfg.ScreenH-1, 1)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		fixedSeed:  fixed,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		heldUntil:  make(map[core.Action]int),
		holdTicks:  max(cfg.TickRate/holdFraction, 1),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case held(action):
		m.heldUntil[action] = m.tick + m.holdTicks
		// Pressing one direction releases the other.
		switch action {
		case core.ActionLeft:
			delete(m.heldUntil, core.ActionRight)
		case core.ActionRight:
			delete(m.heldUntil, core.ActionLeft)
		}
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen buffer. The game canvas is virtual, so the
// round keeps running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-1, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.restarts++
		m.inputFrame.Clear()
		clear(m.heldUntil)
		return m, tickCmd(m.config.TickRate)
	}

	for action, until := range m.heldUntil {
		if until < m.tick {
			delete(m.heldUntil, action)
			continue
		}
		m.inputFrame.Set(action)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	m.tick++

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return
	}
	m.shots = append(m.shots, path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Summary reports how the session went.
func (m Model) Summary() Summary {
	return Summary{
		Score:       m.gameState.Score,
		GameOver:    m.gameState.GameOver,
		Restarts:    m.restarts,
		Ticks:       m.tick,
		Screenshots: m.shots,
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig) (Summary, error) {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Summary{}, err
	}
	if m, ok := final.(Model); ok {
		return m.Summary(), nil
	}
	return Summary{}, nil
}
