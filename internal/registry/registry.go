// Package registry maps variant IDs to game factories. Variants register
// from init, so the CLI can list and start them without importing each one.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrUnknown is returned by Create for an ID nobody registered.
var ErrUnknown = errors.New("registry: unknown variant")

// Game is a variant as the terminal platform drives it: fixed ticks of
// abstract input in, characters out. It knows nothing about Bubble Tea.
type Game interface {
	// ID is the registry key, e.g. "invaders" or "invaders_random".
	ID() string
	Title() string

	// Reset starts a new round. The platform calls it once at start and
	// again on restart after game over.
	Reset(cfg core.RuntimeConfig)

	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// Variant describes a registered game for listings.
type Variant struct {
	ID    string
	Title string
}

// Factory returns a fresh game, ready for Reset.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. It panics on a duplicate ID or when the factory
// builds a game whose ID differs from id, since screenshots and logs name
// the round by Game.ID.
func Register(id string, f Factory) {
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds %q", id, g.ID()))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	entries[id] = entry{factory: f, title: g.Title()}
}

// List returns the registered variants ordered by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	ids := slices.Sorted(maps.Keys(entries))
	out := make([]Variant, len(ids))
	for i, id := range ids {
		out[i] = Variant{ID: id, Title: entries[id].title}
	}
	return out
}

// Create builds a new game for the given variant ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
