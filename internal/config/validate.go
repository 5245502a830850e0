package config

import (
	"errors"
	"fmt"
)

// MaxColumns is the width of a formation row mask in bits.
const MaxColumns = 32

// maxLogCapacity bounds the particle pools to 4096 slots.
const maxLogCapacity = 12

// Validation errors. Validate wraps these with the offending value.
var (
	ErrCanvas        = errors.New("canvas dimensions must be positive")
	ErrColumns       = errors.New("formation columns out of range")
	ErrRows          = errors.New("formation rows must be positive")
	ErrCapacity      = errors.New("pool log_capacity out of range")
	ErrSpeed         = errors.New("speeds must be positive")
	ErrDirection     = errors.New("initial_direction must be 1 or -1")
	ErrHealth        = errors.New("start_health out of range")
	ErrGhost         = errors.New("ghost blinks and period must be positive")
	ErrPredetermined = errors.New("predetermined formation table invalid")
)

// Validate checks the configuration for values the simulation cannot run with.
// These are startup errors; the simulation itself never validates at runtime.
func (c InvadersConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 || c.Canvas.SpriteSize <= 0 || c.Canvas.FontWidth <= 0 {
		return fmt.Errorf("%w: %dx%d sprite %d font %d", ErrCanvas,
			c.Canvas.Width, c.Canvas.Height, c.Canvas.SpriteSize, c.Canvas.FontWidth)
	}
	if c.Formation.Columns < 1 || c.Formation.Columns > MaxColumns {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrColumns, c.Formation.Columns, MaxColumns)
	}
	if c.Formation.Rows < 1 {
		return fmt.Errorf("%w: %d", ErrRows, c.Formation.Rows)
	}
	if c.Rockets.LogCapacity > maxLogCapacity || c.Bombs.LogCapacity > maxLogCapacity {
		return fmt.Errorf("%w: rockets %d bombs %d (max %d)", ErrCapacity,
			c.Rockets.LogCapacity, c.Bombs.LogCapacity, maxLogCapacity)
	}
	if c.Player.Speed <= 0 || c.Rockets.Speed <= 0 || c.Aliens.Speed <= 0 || c.Bombs.Speed <= 0 {
		return fmt.Errorf("%w: player %.1f rockets %.1f aliens %.1f bombs %.1f", ErrSpeed,
			c.Player.Speed, c.Rockets.Speed, c.Aliens.Speed, c.Bombs.Speed)
	}
	if c.Aliens.InitialDirection != 1 && c.Aliens.InitialDirection != -1 {
		return fmt.Errorf("%w: %d", ErrDirection, c.Aliens.InitialDirection)
	}
	// Health is stored in a byte.
	if c.Player.StartHealth < 1 || c.Player.StartHealth > 255 {
		return fmt.Errorf("%w: %d", ErrHealth, c.Player.StartHealth)
	}
	// Ghost phase is stored in a byte and counts up to blinks+1.
	if c.Ghost.Blinks < 1 || c.Ghost.Blinks > 254 || c.Ghost.BlinkPeriod <= 0 {
		return fmt.Errorf("%w: blinks %d period %.2f", ErrGhost, c.Ghost.Blinks, c.Ghost.BlinkPeriod)
	}

	if !c.Aliens.RandomFormation || !c.Aliens.RandomType {
		if err := c.validatePredetermined(); err != nil {
			return err
		}
	}
	return nil
}

func (c InvadersConfig) validatePredetermined() error {
	if len(c.Formation.Predetermined) == 0 {
		return fmt.Errorf("%w: table is empty but randomization is off", ErrPredetermined)
	}
	for i, set := range c.Formation.Predetermined {
		if !c.Aliens.RandomFormation && len(set.Rows) != c.Formation.Rows {
			return fmt.Errorf("%w: entry %d has %d rows, formation has %d",
				ErrPredetermined, i, len(set.Rows), c.Formation.Rows)
		}
		if !c.Aliens.RandomFormation && set.mask(c.Formation.Columns) == 0 {
			return fmt.Errorf("%w: entry %d has no aliens in the first %d columns",
				ErrPredetermined, i, c.Formation.Columns)
		}
		if !c.Aliens.RandomType && set.Sprite != "enemy1" && set.Sprite != "enemy2" {
			return fmt.Errorf("%w: entry %d sprite %q", ErrPredetermined, i, set.Sprite)
		}
	}
	return nil
}

// mask returns the OR of all rows limited to the given column count.
func (p PredeterminedSet) mask(columns int) uint32 {
	var or uint32
	for _, r := range p.Rows {
		or |= r
	}
	return or & ColumnMask(columns)
}

// ColumnMask returns a mask with the low columns bits set.
func ColumnMask(columns int) uint32 {
	return uint32((uint64(1) << uint(columns)) - 1)
}
