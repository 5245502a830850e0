package invaders

import (
	"math/bits"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/xorshift"
)

// Formation is the alien grid. Each row is a bitmask: bit j set means an
// alien is alive in column j. Bits at or above the column count stay zero.
type Formation struct {
	X, Y      float64 // Top-left of the grid in canvas pixels
	Rows      []uint32
	Sprite    Sprite
	Direction int     // +1 right, -1 left
	Width     float64 // Pixel width of the full grid
	Speed     float64 // Horizontal pixels per second

	columns    int
	colMask    uint32
	strideX    int
	strideY    int
	spriteSize int
	canvasW    float64
	yJump      float64
	correction float64
	startX     float64
	startY     float64
	startDir   int

	randomRows bool
	randomType bool
	tableRows  [][]uint32
	tableTypes []Sprite
	selector   int

	rng *xorshift.Rand
}

// NewFormation builds a formation from the config and resets it.
// The config must have passed Validate.
func NewFormation(cfg config.InvadersConfig, rng *xorshift.Rand) *Formation {
	f := &Formation{
		Rows:       make([]uint32, cfg.Formation.Rows),
		Speed:      cfg.Aliens.Speed,
		columns:    cfg.Formation.Columns,
		colMask:    config.ColumnMask(cfg.Formation.Columns),
		strideX:    cfg.Canvas.SpriteSize + cfg.Formation.PaddingX,
		strideY:    cfg.Canvas.SpriteSize + cfg.Formation.PaddingY,
		spriteSize: cfg.Canvas.SpriteSize,
		canvasW:    float64(cfg.Canvas.Width),
		yJump:      cfg.Aliens.YJump,
		correction: cfg.Aliens.BorderCorrection,
		startX:     cfg.Aliens.InitialX,
		startY:     cfg.Aliens.InitialY,
		startDir:   cfg.Aliens.InitialDirection,
		randomRows: cfg.Aliens.RandomFormation,
		randomType: cfg.Aliens.RandomType,
		rng:        rng,
	}
	for _, set := range cfg.Formation.Predetermined {
		f.tableRows = append(f.tableRows, set.Rows)
		f.tableTypes = append(f.tableTypes, enemySprite(set.Sprite))
	}
	f.Reset()
	return f
}

// Reset re-seeds position and direction and fills the grid with a new wave,
// either random or the next entry of the predetermined table.
func (f *Formation) Reset() {
	f.X = f.startX
	f.Y = f.startY
	f.Direction = f.startDir
	f.Width = float64(f.columns*f.strideX - (f.strideX - f.spriteSize))
	for i := range f.Rows {
		f.Rows[i] = 0
	}

	if f.randomRows {
		// A wave of zero aliens would reset again next frame; redraw instead.
		for f.CumulativeOr() == 0 {
			for i := range f.Rows {
				f.Rows[i] = f.rng.Uint32() & f.colMask
			}
		}
	} else {
		entry := f.tableRows[f.selector]
		for i := range f.Rows {
			f.Rows[i] = entry[i] & f.colMask
		}
	}

	if f.randomType {
		if f.rng.Unit() < 0.5 {
			f.Sprite = SpriteEnemy1
		} else {
			f.Sprite = SpriteEnemy2
		}
	} else {
		f.Sprite = f.tableTypes[f.selector]
	}

	if !f.randomRows || !f.randomType {
		f.selector = (f.selector + 1) % len(f.tableRows)
	}
}

// Step moves the formation horizontally and bounces it off the canvas edges.
// cor is the OR of every row mask this frame; it locates the outermost live
// columns without rescanning the grid. cor must be non-zero: an empty
// formation is Reset, not stepped.
func (f *Formation) Step(dt float64, cor uint32) {
	if cor == 0 {
		panic("invaders: Formation.Step on an empty formation, call Reset")
	}

	f.X += dt * f.Speed * float64(f.Direction)

	if f.X < 0 {
		leftmost := bits.TrailingZeros32(cor)
		margin := -float64(leftmost * f.strideX)
		if f.X < margin {
			f.Y += f.yJump
			f.Direction = 1
			f.X = margin + f.correction
		}
		return
	}

	margin := f.canvasW - f.Width
	if f.X > margin {
		rightmost := 31 - bits.LeadingZeros32(cor)
		margin += float64((f.columns - rightmost - 1) * f.strideX)
		if f.X > margin {
			f.Y += f.yJump
			f.Direction = -1
			f.X = margin - f.correction
		}
	}
}

// Kill clears the alien at (row, col).
func (f *Formation) Kill(row, col int) {
	f.Rows[row] &^= 1 << uint(col)
}

// CumulativeOr returns the OR of all row masks.
func (f *Formation) CumulativeOr() uint32 {
	var or uint32
	for _, r := range f.Rows {
		or |= r
	}
	return or
}

// Alive counts the live aliens.
func (f *Formation) Alive() int {
	n := 0
	for _, r := range f.Rows {
		n += bits.OnesCount32(r)
	}
	return n
}

// Empty reports whether every alien is dead.
func (f *Formation) Empty() bool {
	return f.CumulativeOr() == 0
}

// Origin returns the pixel position of column 0, row 0.
func (f *Formation) Origin() (int, int) {
	return int(f.X), int(f.Y)
}

// Stride returns the pixel distance between neighboring aliens.
func (f *Formation) Stride() (int, int) {
	return f.strideX, f.strideY
}

// BottomLine returns the pixel y of the lower edge of the given row.
func (f *Formation) BottomLine(row int) int {
	return int(f.Y) + f.spriteSize + row*f.strideY
}
