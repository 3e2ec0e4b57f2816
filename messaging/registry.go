package messaging

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// ErrNoHandlers is returned when a message type has no registered handler.
var ErrNoHandlers = errors.New("messaging: no handlers found")

// Handler processes one message.
type Handler interface {
	Handle(ctx context.Context, msg Message) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, msg Message) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, msg Message) error { return f(ctx, msg) }

// noHandlers reports a message type without handlers.
func noHandlers(t reflect.Type) error {
	return fmt.Errorf("%w for message type %q", ErrNoHandlers, typeName(t))
}

// Registry maps message types to their handlers.
type Registry struct {
	mu       sync.RWMutex
	mappings map[reflect.Type][]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{mappings: make(map[reflect.Type][]Handler)}
}

// Register adds handlers for message type M.
func Register[M Message](r *Registry, handlers ...Handler) {
	r.Add(TypeOf[M](), handlers...)
}

// Add appends handlers for message type t, keeping their order. Nil handlers are skipped.
func (r *Registry) Add(t reflect.Type, handlers ...Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range handlers {
		if h != nil {
			r.mappings[t] = append(r.mappings[t], h)
		}
	}
}

// Get returns a copy of the handlers for t, or nil when there are none.
func (r *Registry) Get(t reflect.Type) []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.mappings[t])
}

// Handlers is Get that reports a missing type as ErrNoHandlers.
func (r *Registry) Handlers(t reflect.Type) ([]Handler, error) {
	hs := r.Get(t)
	if len(hs) == 0 {
		return nil, noHandlers(t)
	}

	return hs, nil
}

// Remove drops and returns the handlers for t.
func (r *Registry) Remove(t reflect.Type) []Handler {
	r.mu.Lock()
	defer r.mu.Unlock()

	hs := r.mappings[t]
	delete(r.mappings, t)

	return hs
}

// Clear drops every mapping.
func (r *Registry) Clear() {
	r.mu.Lock()
	clear(r.mappings)
	r.mu.Unlock()
}

// Len returns the number of message types with handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.mappings)
}

// String renders the mappings sorted by type name, e.g.
// Registry{Greeting: 2 handlers}.
func (r *Registry) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make(map[string]int, len(r.mappings))
	for t, hs := range r.mappings {
		names[typeName(t)] = len(hs)
	}

	parts := make([]string, 0, len(names))
	for _, name := range slices.Sorted(maps.Keys(names)) {
		unit := "handlers"
		if names[name] == 1 {
			unit = "handler"
		}
		parts = append(parts, fmt.Sprintf("%s: %d %s", name, names[name], unit))
	}

	return "Registry{" + strings.Join(parts, ", ") + "}"
}
