// Package singleton is an explicit process-wide registry holding at most one
// instance per Go type.
//
// The first GetOrCreate[T] call for a type runs its factory and records the
// result; later calls return the recorded instance and ignore their factory.
// Reset[T] forgets the instance so the next GetOrCreate[T] builds a new one.
//
//	type Registry struct{ names []string }
//	r := singleton.GetOrCreate(func() *Registry { return &Registry{} })
//
// All functions are safe for concurrent use.
package singleton

import (
	"reflect"
	"sync"
)

var (
	mu        sync.Mutex
	instances = make(map[reflect.Type]any)
)

// GetOrCreate returns the instance registered for T, calling factory to build
// and register it when none exists yet. factory runs at most once per T
// between resets and is called with the registry locked, so it must not call
// back into this package.
func GetOrCreate[T any](factory func() T) T {
	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if inst, ok := instances[key]; ok {
		return inst.(T)
	}
	inst := factory()
	instances[key] = inst

	return inst
}

// Lookup returns the instance registered for T and whether one exists.
func Lookup[T any]() (T, bool) {
	mu.Lock()
	defer mu.Unlock()

	inst, ok := instances[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}

	return inst.(T), true
}

// Reset forgets the instance registered for T and reports whether there was one.
func Reset[T any]() bool {
	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	_, ok := instances[key]
	delete(instances, key)

	return ok
}
