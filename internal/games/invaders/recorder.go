package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// SpriteCall is one recorded DrawSprite.
type SpriteCall struct {
	Sprite Sprite
	X, Y   int
}

// TextCall is one recorded DrawText.
type TextCall struct {
	Text string
	X, Y int
}

// Recorder is a headless Driver with a fixed-step clock. It keeps the draw
// calls of the current frame so they can be inspected or rasterized.
type Recorder struct {
	Step   float64            // Seconds per frame
	Limit  int                // Frames before StartFrame reports quit; 0 = no limit
	Hold   Input              // Input used when Script is nil
	Script func(frame int) Input

	Sprites []SpriteCall
	Texts   []TextCall

	frame int
	clock float64
}

// NewRecorder creates a recorder ticking at the given rate. A non-positive
// rate falls back to the platform default.
func NewRecorder(tickRate int) *Recorder {
	return &Recorder{Step: core.RuntimeConfig{TickRate: tickRate}.TickSeconds()}
}

// StartFrame advances the clock and drops the previous frame's draw calls.
func (r *Recorder) StartFrame() bool {
	if r.Limit > 0 && r.frame >= r.Limit {
		return false
	}
	if r.frame > 0 {
		r.clock += r.Step
	}
	r.frame++
	r.Sprites = r.Sprites[:0]
	r.Texts = r.Texts[:0]
	return true
}

// Input returns the scripted input for the current frame.
func (r *Recorder) Input() Input {
	if r.Script != nil {
		return r.Script(r.frame - 1)
	}
	return r.Hold
}

// ElapsedSeconds returns the simulated clock.
func (r *Recorder) ElapsedSeconds() float64 {
	return r.clock
}

// DrawSprite records a sprite.
func (r *Recorder) DrawSprite(s Sprite, x, y int) {
	r.Sprites = append(r.Sprites, SpriteCall{Sprite: s, X: x, Y: y})
}

// DrawText records a text line.
func (r *Recorder) DrawText(text string, x, y int) {
	r.Texts = append(r.Texts, TextCall{Text: text, X: x, Y: y})
}

// Frames returns how many frames have started.
func (r *Recorder) Frames() int {
	return r.frame
}

// Count returns how many sprites of a kind were drawn this frame.
func (r *Recorder) Count(s Sprite) int {
	n := 0
	for _, c := range r.Sprites {
		if c.Sprite == s {
			n++
		}
	}
	return n
}
