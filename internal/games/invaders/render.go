package invaders

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Minimum terminal size that keeps the formation readable.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// glyph is the terminal art for a sprite.
type glyph struct {
	art   string
	color core.Color
}

var glyphs = map[Sprite]glyph{
	SpritePlayer: {"/▲\\", core.ColorBrightGreen},
	SpriteEnemy1: {"{@}", core.ColorMagenta},
	SpriteEnemy2: {"/Ö\\", core.ColorBrightCyan},
	SpriteRocket: {"│", core.ColorBrightYellow},
	SpriteBomb:   {"*", core.ColorRed},
}

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	if g.phase == PhaseGreeting {
		g.renderGreeting(dst)
		return
	}

	for _, c := range g.frame.Sprites {
		g.drawSprite(dst, c)
	}
	for _, t := range g.frame.Texts {
		g.drawText(dst, t)
	}

	switch {
	case g.phase == PhaseOver:
		g.renderGameOver(dst)
	case g.paused:
		g.renderOverlay(dst, core.ColorYellow, "PAUSED", "", "P/Esc to resume")
	}
}

// project maps a canvas pixel onto a screen cell.
func (g *Game) project(dst *core.Screen, x, y int) (int, int) {
	return x * dst.Width() / g.cfg.Canvas.Width, y * dst.Height() / g.cfg.Canvas.Height
}

// drawSprite centers the sprite art on the projected sprite center.
func (g *Game) drawSprite(dst *core.Screen, c SpriteCall) {
	gl, ok := glyphs[c.Sprite]
	if !ok {
		return
	}
	half := g.cfg.Canvas.SpriteSize / 2
	cx, cy := g.project(dst, c.X+half, c.Y+half)
	dst.DrawTextColor(cx-utf8.RuneCountInString(gl.art)/2, cy, gl.art, gl.color)
}

// drawText places HUD text, pulled back inside the screen if the
// projection pushed it past the right edge.
func (g *Game) drawText(dst *core.Screen, t TextCall) {
	cx, cy := g.project(dst, t.X, t.Y)
	n := utf8.RuneCountInString(t.Text)
	cx = core.Max(0, core.Min(cx, dst.Width()-n))
	dst.DrawTextColor(cx, cy, t.Text, core.ColorWhite)
}

func (g *Game) renderGreeting(dst *core.Screen) {
	mode := "predetermined waves"
	if g.cfg.Aliens.RandomFormation {
		mode = "random waves"
	}
	lines := []string{
		"Good Luck!",
		"",
		"Left/Right or A/D   move",
		"Space               fire",
		"P/Esc               pause",
		"Q                   quit",
		"",
		fmt.Sprintf("%d lives, %dx%d formation, %s", g.cfg.Player.StartHealth,
			g.cfg.Formation.Rows, g.cfg.Formation.Columns, mode),
		fmt.Sprintf("config: %s", g.source),
		"",
		"Move or fire to start",
	}
	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		color := core.ColorWhite
		switch i {
		case 0:
			color = core.ColorBrightYellow
		case len(lines) - 1:
			color = core.ColorBrightGreen
		case len(lines) - 3, len(lines) - 4:
			color = core.ColorGray
		}
		dst.DrawTextCentered(top+i, line, color)
	}
	rule := utf8.RuneCountInString(lines[0])
	dst.DrawHLine((dst.Width()-rule)/2, top+1, rule, '─', core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	st := g.stepper.State
	g.renderOverlay(dst, core.ColorBrightRed,
		"GAME OVER",
		"",
		fmt.Sprintf("Aliens killed: %d", st.AliensKilled),
		fmt.Sprintf("Rockets fired: %d", st.RocketsFired),
		fmt.Sprintf("Bombs dropped: %d", st.BombsDropped),
		"",
		"R restart  Q quit",
	)
}

// renderOverlay draws a boxed message over the playfield.
// The first line is the title and gets the accent color.
func (g *Game) renderOverlay(dst *core.Screen, accent core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, utf8.RuneCountInString(l))
	}
	box := core.Centered(dst.Width(), dst.Height(), w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, accent)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = accent
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
