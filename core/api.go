// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: graph identity, sizes, view constructors and ToMap.
// Policy:
//   - No algorithms or hidden state here.
//   - Views are built fresh on each call and never cached; they read the live tables.

package core

import (
	"maps"
)

// Name returns the graph name.
func (g *Graph) Name() string { return g.name }

// String returns the graph name.
func (g *Graph) String() string { return g.name }

// Attrs returns the live graph-level attribute mapping. Unlike node and edge
// data it is writable by the caller.
func (g *Graph) Attrs() Attrs { return g.attrs }

// Len returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.nodes) }

// Contains reports whether a node named name exists; it is HasNode.
func (g *Graph) Contains(name string) bool { return g.HasNode(name) }

// Adj returns a read-only view of the adjacency table.
//
// Behavior highlights:
//   - Adj().Get(u) is a View over u's neighbor table (neighbor name → *Edge).
//   - The view is a thin window: later mutations of g are visible through it.
//
// Complexity: O(1).
func (g *Graph) Adj() AdjacencyView {
	return AdjacencyView{data: g.adj}
}

// Nodes returns the live NodeView over all nodes.
// Complexity: O(1).
func (g *Graph) Nodes() NodeView {
	return NodeView{nodes: g.nodes}
}

// Edges returns the live EdgeView over all edges.
// Complexity: O(1).
func (g *Graph) Edges() EdgeView {
	return EdgeView{adj: g.adj}
}

// ToMap renders g as plain maps and slices for external serializers:
//
//	name:  graph name
//	graph: graph attributes
//	nodes: [{name, kind, data}, ...]            (name asc)
//	edges: [{name, kind, u, v, weight, data}, ...] (EdgeView order)
//
// Attribute maps are shallow copies; values are shared with the graph.
// Complexity: O(V + E).
func (g *Graph) ToMap() map[string]any {
	nodes := make([]any, 0, len(g.nodes))
	for name, n := range g.Nodes().All() {
		nodes = append(nodes, map[string]any{
			"name": name,
			"kind": n.kind.String(),
			"data": map[string]any(maps.Clone(n.data)),
		})
	}

	edges := make([]any, 0)
	for p, e := range g.Edges().All() {
		edges = append(edges, map[string]any{
			"name":   e.name,
			"kind":   e.kind.String(),
			"u":      p.U,
			"v":      p.V,
			"weight": e.weight,
			"data":   map[string]any(maps.Clone(e.data)),
		})
	}

	return map[string]any{
		"name":  g.name,
		"graph": map[string]any(maps.Clone(g.attrs)),
		"nodes": nodes,
		"edges": edges,
	}
}
