// File: methods_adjacent.go
// Role: Neighborhood APIs (Get, Neighbors, Degree).
// Determinism:
//   - Neighbors() returns neighbor names sorted lex asc.
// Policy:
//   - Degree counts a self-loop twice, matching EdgeView.Len's accounting.

package core

import (
	"maps"
	"slices"
)

// Get returns the read-only neighbor view of the node named name; it is
// equivalent to g.Adj().Get(name).
//
// Errors:
//   - *KeyError wrapping ErrNodeNotFound when the node does not exist.
//
// Complexity: O(1).
func (g *Graph) Get(name string) (View[*Edge], error) {
	return g.Adj().Get(name)
}

// Neighbors returns the names adjacent to name in ascending order.
// A node with a self-loop lists itself.
//
// Errors:
//   - *KeyError wrapping ErrNodeNotFound when the node does not exist.
//
// Complexity: O(d log d) where d = len(adj[name]).
func (g *Graph) Neighbors(name string) ([]string, error) {
	nbrs, ok := g.adj[name]
	if !ok {
		return nil, notFound(name, ErrNodeNotFound)
	}

	return slices.Sorted(maps.Keys(nbrs)), nil
}

// Degree returns the number of edge ends at name; a self-loop contributes 2.
//
// Errors:
//   - *KeyError wrapping ErrNodeNotFound when the node does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(name string) (int, error) {
	nbrs, ok := g.adj[name]
	if !ok {
		return 0, notFound(name, ErrNodeNotFound)
	}
	deg := len(nbrs)
	if _, loop := nbrs[name]; loop {
		deg++
	}

	return deg, nil
}
