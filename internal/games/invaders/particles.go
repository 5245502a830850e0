package invaders

// Particle is a rocket or bomb in flight.
type Particle struct {
	Alive bool
	X     int     // Pixel column, fixed at spawn
	Y     float64 // Fractional pixel row
}

// Bound reports whether a particle at y has left the playfield.
type Bound func(y float64) bool

// ExitTop despawns particles that move above the canvas.
func ExitTop() Bound {
	return func(y float64) bool { return y < 0 }
}

// ExitBottom despawns particles that reach the bottom of a canvas of the given height.
func ExitBottom(height float64) Bound {
	return func(y float64) bool { return y >= height }
}

// ParticlePool is a fixed-capacity ring buffer of particles.
// Spawning past capacity silently reuses the oldest slot.
type ParticlePool struct {
	slots   []Particle
	mask    uint32
	counter uint32
}

// NewParticlePool creates a pool with 1<<log2Capacity dead slots.
func NewParticlePool(log2Capacity uint) *ParticlePool {
	capacity := 1 << log2Capacity
	return &ParticlePool{
		slots: make([]Particle, capacity),
		mask:  uint32(capacity - 1), //#nosec G115 -- capacity is bounded by config validation
	}
}

// Spawn activates the slot at counter mod capacity.
func (p *ParticlePool) Spawn(x int, y float64) {
	slot := &p.slots[p.counter&p.mask]
	slot.Alive = true
	slot.X = x
	slot.Y = y
	p.counter++
}

// StepAndDraw moves every live particle by dir*speed*dt and hands it to draw,
// unless the move took it past the bound, in which case it dies undrawn.
// Slots are visited in index order.
func (p *ParticlePool) StepAndDraw(dt, speed, dir float64, out Bound, draw func(*Particle)) {
	for i := range p.slots {
		slot := &p.slots[i]
		if !slot.Alive {
			continue
		}
		slot.Y += dir * speed * dt
		if out(slot.Y) {
			slot.Alive = false
			continue
		}
		draw(slot)
	}
}

// Slots exposes the backing array for collision passes.
func (p *ParticlePool) Slots() []Particle {
	return p.slots
}

// Capacity returns the number of slots.
func (p *ParticlePool) Capacity() int {
	return len(p.slots)
}

// Alive counts the live particles.
func (p *ParticlePool) Alive() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Alive {
			n++
		}
	}
	return n
}
