// File: methods_nodes.go
// Role: Node construction, lifecycle & queries.
//
// Determinism:
//   - Node enumeration (Nodes().Names()) is sorted lexicographically ascending.
//
// Invariants:
//   - Every node in g.nodes has an entry in g.adj and vice versa.
//   - AddNode/AttachNode never create a second node for an existing name.

package core

import (
	"maps"

	"go.uber.org/zap"
)

// NewNode builds a detached Node named name. By default its kind is KindNode and
// its attribute mapping is empty.
func NewNode(name string, opts ...NodeOption) *Node {
	n := &Node{entity: newEntity(KindNode, name)}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (n *Node) IsNil() bool { return n == nil }

// GoString renders the node as Node(name, map[...]).
func (n *Node) GoString() string { return goString("Node", n.name, n.data) }

// HasNode reports whether a node named name exists.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]

	return ok
}

// AddNode returns the node named name, creating it if missing.
//
// Implementation:
//   - Stage 1: If the name is registered, merge attrs into the existing node's data in place.
//   - Stage 2: Otherwise build a Node holding a copy of attrs, register it and give it an
//     empty adjacency entry.
//
// Behavior highlights:
//   - Idempotent on the name: repeated calls yield one node whose data is the merge of all attrs.
//   - The caller's attrs map is never retained.
//
// Returns:
//   - *Node: the new or existing node.
//
// Complexity:
//   - Time O(1 + len(attrs)), Space O(len(attrs)).
func (g *Graph) AddNode(name string, attrs Attrs) *Node {
	if n, exists := g.nodes[name]; exists {
		n.Update(attrs)
		return n
	}

	n := NewNode(name, WithNodeData(maps.Clone(attrs)))
	g.registerNode(n)

	return n
}

// AttachNode registers a caller-built node, or merges into the node already
// registered under the same name.
//
// Implementation:
//   - Stage 1: Reject nil (ErrNilNode).
//   - Stage 2: If the name is registered, merge attrs into the existing node and
//     return it; n itself is not attached.
//   - Stage 3: Otherwise merge attrs into n, register n and create its adjacency entry.
//
// Returns:
//   - *Node: the node now owned by the graph.
//   - error: ErrNilNode when n is nil.
//
// Complexity:
//   - Time O(1 + len(attrs)).
func (g *Graph) AttachNode(n *Node, attrs Attrs) (*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if existing, ok := g.nodes[n.name]; ok {
		existing.Update(attrs)
		return existing, nil
	}

	n.Update(attrs)
	g.registerNode(n)

	return n, nil
}

// RemoveNode deletes the node named name and every adjacency reference to it.
//
// Implementation:
//   - Stage 1: Verify presence (ErrNodeNotFound).
//   - Stage 2: Delete the reciprocal entry from every neighbor's table.
//   - Stage 3: Delete the node's own adjacency entry and its node-table entry.
//
// Behavior highlights:
//   - Incident edges become unreachable from the graph. Edge values already held by
//     callers stay valid but orphaned; no per-edge notification is emitted.
//
// Returns:
//   - *Node: the removed node.
//   - error: *KeyError wrapping ErrNodeNotFound when absent.
//
// Complexity:
//   - Time O(deg(name)), Space O(1).
func (g *Graph) RemoveNode(name string) (*Node, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, notFound(name, ErrNodeNotFound)
	}

	for nbr := range g.adj[name] {
		delete(g.adj[nbr], name)
	}
	delete(g.adj, name)
	delete(g.nodes, name)

	g.log.Debug("node removed", zap.String("graph", g.name), zap.String("node", name))

	return n, nil
}
