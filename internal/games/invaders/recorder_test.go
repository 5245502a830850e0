package invaders

import "testing"

func TestRecorderClockAndLimit(t *testing.T) {
	rec := NewRecorder(10)
	rec.Limit = 3

	var clocks []float64
	for rec.StartFrame() {
		clocks = append(clocks, rec.ElapsedSeconds())
	}

	if len(clocks) != 3 || rec.Frames() != 3 {
		t.Fatalf("ran %d frames, expected 3", len(clocks))
	}
	for i, want := range []float64{0, 0.1, 0.2} {
		if d := clocks[i] - want; d > 1e-9 || d < -1e-9 {
			t.Errorf("frame %d clock = %v, expected %v", i, clocks[i], want)
		}
	}
}

func TestRecorderDropsPreviousFrame(t *testing.T) {
	rec := NewRecorder(0)
	if rec.Step != 1.0/60 {
		t.Errorf("step = %v, expected the 60 fps default", rec.Step)
	}
	rec.StartFrame()
	rec.DrawSprite(SpriteBomb, 1, 2)
	rec.DrawSprite(SpriteBomb, 3, 4)
	rec.DrawText("hi", 0, 0)
	if rec.Count(SpriteBomb) != 2 || len(rec.Texts) != 1 {
		t.Fatalf("recorded %d bombs and %d texts", rec.Count(SpriteBomb), len(rec.Texts))
	}

	rec.StartFrame()
	if len(rec.Sprites) != 0 || len(rec.Texts) != 0 {
		t.Error("StartFrame should clear the previous frame")
	}
}

func TestRecorderScript(t *testing.T) {
	rec := NewRecorder(60)
	rec.Hold = Input{Left: true}
	rec.StartFrame()
	if !rec.Input().Left {
		t.Error("held input should be returned without a script")
	}

	rec.Script = func(frame int) Input { return Input{Fire: frame == 1} }
	if rec.Input().Fire {
		t.Error("frame 0 should not fire")
	}
	rec.StartFrame()
	if !rec.Input().Fire {
		t.Error("frame 1 should fire")
	}
}
