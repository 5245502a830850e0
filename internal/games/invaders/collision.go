package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Collides reports whether two points are within the per-axis thresholds.
// This is a proximity test on sprite origins, not a rectangle intersection;
// equality on an axis counts as a hit.
func Collides(x1, y1, x2, y2, xThreshold, yThreshold int) bool {
	return core.Abs(x1-x2) <= xThreshold && core.Abs(y1-y2) <= yThreshold
}

// within applies Collides with a configured threshold pair.
func within(x1, y1, x2, y2 int, t config.Threshold) bool {
	return Collides(x1, y1, x2, y2, t.X, t.Y)
}
