// File: methods_entity.go
// Role: Attribute mapping shared by Node and Edge (named data entity).
// Determinism:
//   - Keys() returns attribute keys sorted lexicographically ascending.
// Policy:
//   - All mutators (Set, Delete, Update) work in place on the entity's own map;
//     views taken earlier through Data() observe the change.

package core

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// entity is a named object carrying an attribute mapping.
// data is never nil once the owning Node/Edge is constructed.
type entity struct {
	named
	data Attrs
}

// newEntity returns an entity with an allocated attribute map.
func newEntity(kind Kind, name string) entity {
	return entity{named: named{kind: kind, name: name}, data: make(Attrs)}
}

// attrs exposes the raw map to package-internal equality checks.
func (e *entity) attrs() Attrs { return e.data }

// Len returns the number of attributes.
func (e *entity) Len() int { return len(e.data) }

// Has reports whether the attribute key is set.
func (e *entity) Has(key string) bool {
	_, ok := e.data[key]

	return ok
}

// Keys returns the attribute keys in ascending order.
func (e *entity) Keys() []string {
	return slices.Sorted(maps.Keys(e.data))
}

// Get returns the attribute value for key, or a *KeyError wrapping ErrAttrNotFound.
func (e *entity) Get(key string) (any, error) {
	v, ok := e.data[key]
	if !ok {
		return nil, notFound(key, ErrAttrNotFound)
	}

	return v, nil
}

// Lookup returns the attribute value for key and whether it was present.
func (e *entity) Lookup(key string) (any, bool) {
	v, ok := e.data[key]

	return v, ok
}

// GetOr returns the attribute value for key, or def when absent.
func (e *entity) GetOr(key string, def any) any {
	if v, ok := e.data[key]; ok {
		return v
	}

	return def
}

// Set stores value under key.
func (e *entity) Set(key string, value any) {
	e.data[key] = value
}

// Delete removes key. Deleting an absent key returns a *KeyError wrapping ErrAttrNotFound.
func (e *entity) Delete(key string) error {
	if _, ok := e.data[key]; !ok {
		return notFound(key, ErrAttrNotFound)
	}
	delete(e.data, key)

	return nil
}

// Update merges other into the attribute mapping (in place, last write wins).
func (e *entity) Update(other Attrs) {
	maps.Copy(e.data, other)
}

// Data returns a read-only live view of the attribute mapping.
func (e *entity) Data() DataView {
	return NewView[any](e.data)
}

// Equal reports whether other has a compatible kind, the same name and equal data.
// Unrelated kinds return ErrIncomparable.
func (e *entity) Equal(other Entity) (bool, error) {
	same, err := e.sameIdentity(other)
	if err != nil || !same {
		return false, err
	}
	o, ok := other.(interface{ attrs() Attrs })
	if !ok {
		return len(e.data) == 0, nil
	}

	return attrsEqual(e.data, o.attrs()), nil
}

// attrsEqual compares two attribute maps deeply; nil and empty are equal.
func attrsEqual(a, b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	return reflect.DeepEqual(map[string]any(a), map[string]any(b))
}

// goString renders an entity for %#v as Kind(name="n", key=value, ...) with sorted keys.
func goString(kind, name string, data Attrs) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(name=%q", kind, name)
	for _, k := range slices.Sorted(maps.Keys(data)) {
		fmt.Fprintf(&b, ", %s=%#v", k, data[k])
	}
	b.WriteString(")")

	return b.String()
}
