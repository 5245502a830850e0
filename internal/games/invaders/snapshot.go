package invaders

import "math"

// Snapshot contains the simulation state for replay and determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick         uint64
	Phase        int
	Health       int
	Ghost        int
	PlayerX      int
	AliensKilled int
	RocketsFired int
	BombsDropped int

	FormationX   int
	FormationY   int
	Direction    int
	Sprite       int
	FormationRow []uint32

	// Live particles, 2 ints each: X, Y
	RocketData []int
	BombData   []int

	RNGState uint32
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.stepper.Snapshot()
	s.Phase = int(g.phase)
	return s
}

// Snapshot returns the state of the round.
func (s *Stepper) Snapshot() Snapshot {
	st := s.State
	f := s.Aliens
	return Snapshot{
		Tick:         uint64(s.ticks), //#nosec G115 -- tick count is always positive
		Health:       int(st.Health),
		Ghost:        int(st.Ghost),
		PlayerX:      int(math.Round(st.PlayerX)),
		AliensKilled: int(st.AliensKilled),
		RocketsFired: int(st.RocketsFired),
		BombsDropped: int(st.BombsDropped),

		FormationX:   int(math.Round(f.X)),
		FormationY:   int(math.Round(f.Y)),
		Direction:    f.Direction,
		Sprite:       int(f.Sprite),
		FormationRow: append([]uint32(nil), f.Rows...),

		RocketData: particleData(s.Rockets),
		BombData:   particleData(s.Bombs),
		RNGState:   s.rng.State(),
	}
}

func particleData(p *ParticlePool) []int {
	data := make([]int, 0, p.Capacity()*2)
	for _, slot := range p.Slots() {
		if slot.Alive {
			data = append(data, slot.X, int(slot.Y))
		}
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Phase, snap.Health, snap.Ghost, snap.PlayerX,
		snap.AliensKilled, snap.RocketsFired, snap.BombsDropped,
		snap.FormationX, snap.FormationY, snap.Direction, snap.Sprite,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, r := range snap.FormationRow {
		h = h*31 + uint64(r)
	}
	for _, v := range snap.RocketData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BombData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h*31 + uint64(snap.RNGState)
}
