// File: view.go
// Role: Read-only live views over mappings (View, DataView) and the adjacency table.
// Determinism:
//   - Keys() and All() enumerate keys in lexicographic ascending order.
// Policy:
//   - Views wrap the live maps; they never snapshot. Changes to the graph or
//     entity are visible on the next call.
//   - Views expose no mutators. Copy() is the only way to obtain writable data.

package core

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
)

// View is a read-only window onto a string-keyed map.
// The zero View is empty. A View must not outlive the structure it wraps being
// mutated concurrently (see Graph).
type View[V any] struct {
	data map[string]V
}

// DataView is the read-only view of an attribute mapping.
type DataView = View[any]

// NewView wraps data without copying it.
func NewView[V any](data map[string]V) View[V] {
	return View[V]{data: data}
}

// Len returns the number of keys.
func (v View[V]) Len() int { return len(v.data) }

// Contains reports whether key is present.
func (v View[V]) Contains(key string) bool {
	_, ok := v.data[key]

	return ok
}

// Keys returns the keys in ascending order.
func (v View[V]) Keys() []string {
	return slices.Sorted(maps.Keys(v.data))
}

// Get returns the value for key or a *KeyError wrapping ErrKeyNotFound.
func (v View[V]) Get(key string) (V, error) {
	val, ok := v.data[key]
	if !ok {
		var zero V
		return zero, notFound(key, ErrKeyNotFound)
	}

	return val, nil
}

// Lookup returns the value for key and whether it was present.
func (v View[V]) Lookup(key string) (V, bool) {
	val, ok := v.data[key]

	return val, ok
}

// All yields key/value pairs in ascending key order.
func (v View[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range v.Keys() {
			if !yield(k, v.data[k]) {
				return
			}
		}
	}
}

// Copy returns a View over a new map holding one-level copies of the values:
// a value is copied when it has a Copy method returning its own type, or is a
// map[string]any, Attrs or []any. Other values are shared.
func (v View[V]) Copy() View[V] {
	out := make(map[string]V, len(v.data))
	for k, val := range v.data {
		out[k] = copyValue(val)
	}

	return View[V]{data: out}
}

// Map returns a shallow copy of the wrapped map.
func (v View[V]) Map() map[string]V {
	return maps.Clone(v.data)
}

// String formats the wrapped map.
func (v View[V]) String() string { return fmt.Sprint(v.data) }

// GoString renders the view as View(map[...]).
func (v View[V]) GoString() string { return "View(" + fmt.Sprint(v.data) + ")" }

// copyValue copies val one level deep when it knows how.
func copyValue[V any](val V) V {
	switch c := any(val).(type) {
	case Attrs:
		if out, ok := any(maps.Clone(c)).(V); ok {
			return out
		}
	case map[string]any:
		if out, ok := any(maps.Clone(c)).(V); ok {
			return out
		}
	case []any:
		if out, ok := any(slices.Clone(c)).(V); ok {
			return out
		}
	default:
		if cp, ok := callCopy(any(val)); ok {
			if out, ok := cp.(V); ok {
				return out
			}
		}
	}

	return val
}

// callCopy calls val.Copy() when val has a Copy method taking no arguments
// and returning a single value of val's own type. Nil pointers are not copied.
func callCopy(val any) (any, bool) {
	if val == nil {
		return nil, false
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		if rv.IsNil() {
			return nil, false
		}
	}

	m := rv.MethodByName("Copy")
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || !mt.Out(0).AssignableTo(rv.Type()) {
		return nil, false
	}

	return m.Call(nil)[0].Interface(), true
}

// AdjacencyView is a view of views: indexing it by a node name yields a
// View over that node's neighbor table (neighbor name → *Edge).
type AdjacencyView struct {
	data map[string]map[string]*Edge
}

// Len returns the number of nodes.
func (a AdjacencyView) Len() int { return len(a.data) }

// Contains reports whether name has an adjacency entry.
func (a AdjacencyView) Contains(name string) bool {
	_, ok := a.data[name]

	return ok
}

// Keys returns node names in ascending order.
func (a AdjacencyView) Keys() []string {
	return slices.Sorted(maps.Keys(a.data))
}

// Get returns the neighbor view of name or a *KeyError wrapping ErrNodeNotFound.
func (a AdjacencyView) Get(name string) (View[*Edge], error) {
	nbrs, ok := a.data[name]
	if !ok {
		return View[*Edge]{}, notFound(name, ErrNodeNotFound)
	}

	return NewView(nbrs), nil
}

// Lookup returns the neighbor view of name and whether name was present.
func (a AdjacencyView) Lookup(name string) (View[*Edge], bool) {
	nbrs, ok := a.data[name]

	return NewView(nbrs), ok
}

// All yields (name, neighbor view) pairs in ascending name order.
func (a AdjacencyView) All() iter.Seq2[string, View[*Edge]] {
	return func(yield func(string, View[*Edge]) bool) {
		for _, k := range a.Keys() {
			if !yield(k, NewView(a.data[k])) {
				return
			}
		}
	}
}

// Copy returns a detached two-level copy of the table; the *Edge values are shared.
func (a AdjacencyView) Copy() AdjacencyView {
	out := make(map[string]map[string]*Edge, len(a.data))
	for k, nbrs := range a.data {
		out[k] = maps.Clone(nbrs)
	}

	return AdjacencyView{data: out}
}

// String formats the wrapped table.
func (a AdjacencyView) String() string { return fmt.Sprint(a.data) }

// GoString renders the view as AdjacencyView(map[...]).
func (a AdjacencyView) GoString() string { return "AdjacencyView(" + fmt.Sprint(a.data) + ")" }
