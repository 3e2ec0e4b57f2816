// SPDX-License-Identifier: MIT
//
// File: identity.go
// Role: Entity identity: kinds, names, equality and ordering.
// Policy:
//   - Identity is (Kind, Name). Equality is covariant along declared kind parents:
//     two entities compare when one kind is the other or one of its ancestors.
//   - Comparing unrelated kinds is an error (ErrIncomparable), never a silent false.

package core

import "strings"

// kindDesc is the shared descriptor behind a Kind value.
type kindDesc struct {
	label  string
	parent Kind
}

// Kind tags an entity with its type and declares its parent kind.
// Kinds are comparable and cheap to copy; the zero Kind has no label and no parent.
type Kind struct {
	d *kindDesc
}

// Built-in kinds. KindNode and KindEdge share KindEntity as parent and are
// therefore incomparable with each other.
var (
	KindEntity = NewKind("entity", Kind{})
	KindNode   = NewKind("node", KindEntity)
	KindEdge   = NewKind("edge", KindEntity)
)

// NewKind declares a new kind with the given label, derived from parent.
// Use it to model node or edge specializations:
//
//	city := core.NewKind("city", core.KindNode)
//	g.AttachNode(core.NewNode("Kyiv", core.WithNodeKind(city)), nil)
func NewKind(label string, parent Kind) Kind {
	return Kind{d: &kindDesc{label: label, parent: parent}}
}

// String returns the kind label ("" for the zero Kind).
func (k Kind) String() string {
	if k.d == nil {
		return ""
	}

	return k.d.label
}

// Parent returns the declared parent (zero Kind for roots).
func (k Kind) Parent() Kind {
	if k.d == nil {
		return Kind{}
	}

	return k.d.parent
}

// IsZero reports whether k is the zero Kind.
func (k Kind) IsZero() bool { return k.d == nil }

// Is reports whether k equals ancestor or derives from it.
// Complexity: O(depth of k).
func (k Kind) Is(ancestor Kind) bool {
	for cur := k; !cur.IsZero(); cur = cur.Parent() {
		if cur == ancestor {
			return true
		}
	}

	return k == ancestor
}

// Path renders the ancestry of k from the root, e.g. "entity/node/city".
func (k Kind) Path() string {
	var parts []string
	for cur := k; !cur.IsZero(); cur = cur.Parent() {
		parts = append(parts, cur.String())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return strings.Join(parts, "/")
}

// Compatible reports whether entities of kinds a and b may be compared.
func Compatible(a, b Kind) bool {
	return a.Is(b) || b.Is(a)
}

// Entity is anything with a kind and a name: *Node and *Edge.
type Entity interface {
	Name() string
	Kind() Kind
}

// EntityKey is the comparable identity of an entity; use it as a map key.
type EntityKey struct {
	Kind Kind
	Name string
}

// nilable is implemented by pointer-backed entities so typed nils can be
// detected behind the Entity interface without reflection.
type nilable interface {
	IsNil() bool
}

// isNilEntity reports whether e is nil or a typed nil pointer.
func isNilEntity(e Entity) bool {
	if e == nil {
		return true
	}
	if n, ok := e.(nilable); ok {
		return n.IsNil()
	}

	return false
}

// named holds the identity half of an entity.
type named struct {
	kind Kind
	name string
}

// Name returns the entity name.
func (n *named) Name() string { return n.name }

// Kind returns the entity kind.
func (n *named) Kind() Kind { return n.kind }

// String returns the entity name.
func (n *named) String() string { return n.name }

// Key returns the comparable (Kind, Name) identity.
func (n *named) Key() EntityKey { return EntityKey{Kind: n.kind, Name: n.name} }

// checkComparable returns ErrIncomparable unless other is a non-nil entity of a compatible kind.
func (n *named) checkComparable(other Entity) error {
	if isNilEntity(other) || !Compatible(n.kind, other.Kind()) {
		return ErrIncomparable
	}

	return nil
}

// sameIdentity reports whether other has a compatible kind and the same name.
func (n *named) sameIdentity(other Entity) (bool, error) {
	if err := n.checkComparable(other); err != nil {
		return false, err
	}

	return n.name == other.Name(), nil
}

// Less orders entities by name. Unrelated kinds return ErrIncomparable.
func (n *named) Less(other Entity) (bool, error) {
	if err := n.checkComparable(other); err != nil {
		return false, err
	}

	return n.name < other.Name(), nil
}
