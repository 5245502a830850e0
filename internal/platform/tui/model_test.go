package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// fakeGame records the input of every step.
type fakeGame struct {
	resets int
	steps  []core.InputFrame
	over   bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.over = false
}
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.State()}
}
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: len(g.steps), GameOver: g.over}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runes("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runes("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"p", runes("p"), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runes("r"), core.ActionRestart},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func newTestModel(g *fakeGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 10, Seed: 7})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestHeldKeyExpires(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	// 10 ticks per second: a press holds for 2 ticks after the current one.
	for range 5 {
		m = update(t, m, TickMsg{})
	}

	held := 0
	for _, in := range g.steps {
		if in.Has(core.ActionLeft) {
			held++
		}
	}
	if held != 3 {
		t.Errorf("left held for %d ticks, expected 3", held)
	}
}

func TestOppositeDirectionReleases(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	update(t, m, TickMsg{})

	last := g.steps[len(g.steps)-1]
	if last.Has(core.ActionLeft) || !last.Has(core.ActionRight) {
		t.Errorf("expected only right, got %v", last.Actions)
	}
}

func TestTapActionsLastOneTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if !g.steps[0].Has(core.ActionPause) || g.steps[1].Has(core.ActionPause) {
		t.Error("pause should be delivered on exactly one tick")
	}
}

func TestFireIsATap(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for range 5 {
		m = update(t, m, TickMsg{})
	}

	fired := 0
	for _, in := range g.steps {
		if in.Has(core.ActionFire) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("fire delivered on %d ticks, expected 1", fired)
	}
}

func TestOneSpacePressFiresOneRocket(t *testing.T) {
	g := invaders.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	if g.Phase() != invaders.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", g.Phase())
	}

	// Half a second is well past the rocket cooldown.
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for range 30 {
		m = update(t, m, TickMsg{})
	}
	if got := g.Stats().RocketsFired; got != 1 {
		t.Errorf("rockets fired = %d, expected 1", got)
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, runes("r"))
	m = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart during play should be ignored, resets = %d", g.resets)
	}

	g.over = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runes("r"))
	m = update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, expected a restart after game over", g.resets)
	}
	if m.Summary().Restarts != 1 {
		t.Errorf("restarts = %d, expected 1", m.Summary().Restarts)
	}
	if m.config.Seed != 7 {
		t.Errorf("a fixed seed should survive restarts, got %d", m.config.Seed)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&fakeGame{})
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewReservesHelpLine(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})

	if m.screen.Height() != 19 || m.screen.Width() != 50 {
		t.Errorf("screen = %dx%d, expected 50x19", m.screen.Width(), m.screen.Height())
	}
	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Error("view should contain the game output")
	}
	if !strings.Contains(view, "fire") {
		t.Error("view should contain the key help")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
