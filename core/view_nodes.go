// File: view_nodes.go
// Role: Data-view modes and the node views (NodeView, NodeDataView).
// Determinism:
//   - Names(), All() and Items() enumerate nodes by name ascending.

package core

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// dataModeKind selects what a data view reports per entity.
type dataModeKind uint8

const (
	modeNames dataModeKind = iota // bare names / endpoint pairs
	modeAll                       // full attribute view
	modeAttr                      // one attribute with a default
)

// DataMode selects the projection a data view reports for each node or edge.
// The zero DataMode is NamesOnly.
type DataMode struct {
	kind dataModeKind
	key  string
	def  any
}

// NamesOnly reports bare names (values are nil during iteration).
func NamesOnly() DataMode { return DataMode{kind: modeNames} }

// AllData reports the full attribute DataView.
func AllData() DataMode { return DataMode{kind: modeAll} }

// AttrData reports the attribute key, or def when an entity lacks it.
func AttrData(key string, def any) DataMode {
	return DataMode{kind: modeAttr, key: key, def: def}
}

// String describes the mode: "names", "data" or "attr(key)".
func (m DataMode) String() string {
	switch m.kind {
	case modeAll:
		return "data"
	case modeAttr:
		return "attr(" + m.key + ")"
	default:
		return "names"
	}
}

// report is the per-entity value yielded during iteration.
func (m DataMode) report(attrs Attrs) any {
	switch m.kind {
	case modeAll:
		return NewView[any](attrs)
	case modeAttr:
		if v, ok := attrs[m.key]; ok {
			return v
		}
		return m.def
	default:
		return nil
	}
}

// lookup is the value returned when a data view is indexed: the full data
// view in names/all modes, the selected attribute in attr mode.
func (m DataMode) lookup(attrs Attrs) any {
	if m.kind == modeAttr {
		return m.report(attrs)
	}

	return NewView[any](attrs)
}

// sameValue compares projections; DataView and Attrs compare by their maps.
func sameValue(a, b any) bool {
	return reflect.DeepEqual(plainValue(a), plainValue(b))
}

// plainValue unwraps views and attribute maps to map[string]any.
func plainValue(v any) any {
	switch t := v.(type) {
	case DataView:
		return map[string]any(t.data)
	case Attrs:
		return map[string]any(t)
	}

	return v
}

// NodeItem is one reported entry of a NodeDataView.
type NodeItem struct {
	Name  string
	Value any
}

// NodeView is the set-and-mapping view over all nodes of a graph.
type NodeView struct {
	nodes map[string]*Node
}

// Len returns the number of nodes.
func (nv NodeView) Len() int { return len(nv.nodes) }

// Contains reports whether a node named name exists.
func (nv NodeView) Contains(name string) bool {
	_, ok := nv.nodes[name]

	return ok
}

// Get returns the node named name or a *KeyError wrapping ErrNodeNotFound.
func (nv NodeView) Get(name string) (*Node, error) {
	n, ok := nv.nodes[name]
	if !ok {
		return nil, notFound(name, ErrNodeNotFound)
	}

	return n, nil
}

// Lookup returns the node named name and whether it exists.
func (nv NodeView) Lookup(name string) (*Node, bool) {
	n, ok := nv.nodes[name]

	return n, ok
}

// Names returns node names in ascending order.
func (nv NodeView) Names() []string {
	return slices.Sorted(maps.Keys(nv.nodes))
}

// All yields (name, node) pairs in ascending name order.
func (nv NodeView) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, name := range nv.Names() {
			if !yield(name, nv.nodes[name]) {
				return
			}
		}
	}
}

// Data returns a NodeDataView reporting each node through mode.
func (nv NodeView) Data(mode DataMode) NodeDataView {
	return NodeDataView{nodes: nv.nodes, mode: mode}
}

// String formats the node names, e.g. [a b c].
func (nv NodeView) String() string { return fmt.Sprint(nv.Names()) }

// NodeDataView reports nodes together with a projection of their data.
type NodeDataView struct {
	nodes map[string]*Node
	mode  DataMode
}

// Mode returns the projection mode.
func (dv NodeDataView) Mode() DataMode { return dv.mode }

// Len returns the number of nodes.
func (dv NodeDataView) Len() int { return len(dv.nodes) }

// Contains reports whether a node named name exists.
func (dv NodeDataView) Contains(name string) bool {
	_, ok := dv.nodes[name]

	return ok
}

// ContainsPair reports whether node name exists and its reported value equals value.
// In AllData mode value may be an Attrs, a map[string]any or a DataView.
func (dv NodeDataView) ContainsPair(name string, value any) bool {
	n, ok := dv.nodes[name]
	if !ok {
		return false
	}

	return sameValue(dv.mode.lookup(n.data), value)
}

// Get returns the node's projection: its DataView in NamesOnly/AllData modes,
// the selected attribute (or default) in AttrData mode.
func (dv NodeDataView) Get(name string) (any, error) {
	n, ok := dv.nodes[name]
	if !ok {
		return nil, notFound(name, ErrNodeNotFound)
	}

	return dv.mode.lookup(n.data), nil
}

// All yields (name, value) in ascending name order; value is nil in NamesOnly mode.
func (dv NodeDataView) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range slices.Sorted(maps.Keys(dv.nodes)) {
			if !yield(name, dv.mode.report(dv.nodes[name].data)) {
				return
			}
		}
	}
}

// Items collects All into a slice.
func (dv NodeDataView) Items() []NodeItem {
	out := make([]NodeItem, 0, len(dv.nodes))
	for name, v := range dv.All() {
		out = append(out, NodeItem{Name: name, Value: v})
	}

	return out
}

// String formats the reported items, e.g. [a b] or [(a, map[x:1])].
func (dv NodeDataView) String() string {
	parts := make([]string, 0, len(dv.nodes))
	for name, v := range dv.All() {
		if dv.mode.kind == modeNames {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, fmt.Sprintf("(%s, %v)", name, v))
	}

	return "[" + strings.Join(parts, " ") + "]"
}
