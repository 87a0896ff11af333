// Package registry holds the table of playable difficulties.
// The CLI fills it from configuration at startup, and the menu, the
// scoreboard and the play command look presets up by ID.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// ErrUnknown is returned when a difficulty ID is not registered.
var ErrUnknown = errors.New("unknown difficulty")

// Registry is an ordered set of difficulties keyed by ID.
// It is safe for concurrent use; SSH sessions read it in parallel.
type Registry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]engine.Difficulty
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byID: make(map[string]engine.Difficulty)}
}

// Register validates d and appends it to the registry.
// Duplicate IDs are rejected.
func (r *Registry) Register(d engine.Difficulty) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; exists {
		return fmt.Errorf("registry: difficulty %q already registered", d.ID)
	}
	r.byID[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(d engine.Difficulty) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// List returns every difficulty in registration order.
func (r *Registry) List() []engine.Difficulty {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]engine.Difficulty, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result
}

// Get looks a difficulty up by ID.
func (r *Registry) Get(id string) (engine.Difficulty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return engine.Difficulty{}, fmt.Errorf("registry: %w %q", ErrUnknown, id)
	}
	return d, nil
}

// Exists checks if a difficulty with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok
}

// Len returns the number of registered difficulties.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// std is the process-wide registry used by the package-level functions.
var std = New()

// Default returns the process-wide registry.
func Default() *Registry { return std }

// Register adds d to the process-wide registry.
func Register(d engine.Difficulty) error { return std.Register(d) }

// List returns the process-wide difficulties in registration order.
func List() []engine.Difficulty { return std.List() }

// Get looks a difficulty up in the process-wide registry.
func Get(id string) (engine.Difficulty, error) { return std.Get(id) }

// Exists checks the process-wide registry for id.
func Exists(id string) bool { return std.Exists(id) }
