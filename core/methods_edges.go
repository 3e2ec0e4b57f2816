// File: methods_edges.go
// Role: Edge construction, lifecycle & queries: NewEdge, HasEdge, AddEdge,
//       AttachEdge, RemoveEdge, DetachEdge.
// Invariants:
//   - adj[u][v] and adj[v][u] hold the same *Edge; a self-loop occupies one slot.
//   - Validation precedes mutation: a failing call leaves the graph untouched.

package core

import (
	"fmt"
	"maps"
)

// NewEdge builds a detached Edge joining u and v.
//
// Defaults: weight DefaultEdgeWeight, kind KindEdge, name "<u> - <v>", empty data.
// The endpoints are stored by reference; the data map given via WithEdgeData is adopted.
//
// Errors:
//   - ErrMissingEndpoint when u or v is nil.
func NewEdge(u, v *Node, opts ...EdgeOption) (*Edge, error) {
	if u == nil || v == nil {
		return nil, ErrMissingEndpoint
	}

	return buildEdge(u, v, newEdgeConfig(opts)), nil
}

// buildEdge assembles an Edge from a resolved configuration.
func buildEdge(u, v *Node, cfg edgeConfig) *Edge {
	name := u.name + EdgeNameSeparator + v.name
	if cfg.nameSet {
		name = cfg.name
	}
	e := &Edge{entity: newEntity(cfg.kind, name), u: u, v: v, weight: cfg.weight}
	if cfg.data != nil {
		e.data = cfg.data
	}

	return e
}

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (e *Edge) IsNil() bool { return e == nil }

// U returns the first endpoint.
func (e *Edge) U() *Node { return e.u }

// V returns the second endpoint.
func (e *Edge) V() *Node { return e.v }

// Endpoints returns (u, v).
func (e *Edge) Endpoints() (*Node, *Node) { return e.u, e.v }

// Pair returns the endpoint names.
func (e *Edge) Pair() Pair { return Pair{U: e.u.name, V: e.v.name} }

// IsLoop reports whether both endpoints carry the same name.
func (e *Edge) IsLoop() bool { return e.u.name == e.v.name }

// Other returns the endpoint opposite to the node named name, or nil if name is
// not an endpoint. For a self-loop it returns the loop node.
func (e *Edge) Other(name string) *Node {
	switch name {
	case e.u.name:
		return e.v
	case e.v.name:
		return e.u
	}

	return nil
}

// Weight returns the edge weight.
func (e *Edge) Weight() float64 { return e.weight }

// SetWeight replaces the edge weight.
func (e *Edge) SetWeight(w float64) { e.weight = w }

// GoString renders the edge as Edge(name, u, v, weight, data...).
func (e *Edge) GoString() string {
	return fmt.Sprintf("Edge(name=%q, u=%q, v=%q, weight=%g, data=%v)",
		e.name, e.u.name, e.v.name, e.weight, map[string]any(e.data))
}

// HasEdge reports whether v appears in u's neighbor table.
// Symmetry makes HasEdge(u, v) == HasEdge(v, u).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adj[u][v]

	return ok
}

// AddEdge returns the edge joining u and v, creating endpoints and edge as needed.
//
// Implementation:
//   - Stage 1: Resolve options (weight defaults to DefaultEdgeWeight unless WithWeight is given).
//   - Stage 2: AddNode(u), AddNode(v) so both endpoints are registered.
//   - Stage 3: Existing edge: apply WithWeight only if given and merge WithEdgeData in place;
//     WithEdgeName/WithEdgeKind are ignored for an existing edge.
//   - Stage 4: New edge: build it over the registered endpoint nodes and link both sides.
//
// Behavior highlights:
//   - Explicit WithWeight(0) is kept; only an absent WithWeight means "default".
//   - adj[u][v] and adj[v][u] point to the same *Edge.
//
// Complexity:
//   - Time O(1 + len(data)) amortized.
func (g *Graph) AddEdge(u, v string, opts ...EdgeOption) *Edge {
	cfg := newEdgeConfig(opts)

	un := g.AddNode(u, nil)
	vn := g.AddNode(v, nil)

	if e, exists := g.adj[u][v]; exists {
		if cfg.weightSet {
			e.weight = cfg.weight
		}
		e.Update(cfg.data)
		return e
	}

	cfg.data = maps.Clone(cfg.data) // the caller's map is not retained
	e := buildEdge(un, vn, cfg)
	g.linkEdge(e)

	return e
}

// AttachEdge registers a caller-built edge.
//
// Implementation:
//   - Stage 1: Reject nil edge or nil endpoint (ErrMissingEndpoint) before any mutation.
//   - Stage 2: Attach both endpoints (AttachNode); when a node of the same name is already
//     registered the edge is re-pointed at the graph-owned node.
//   - Stage 3: Link e on both sides, replacing any edge previously joining the endpoints.
//
// Returns:
//   - *Edge: e.
//   - error: ErrMissingEndpoint.
//
// Complexity:
//   - Time O(1) amortized (plus endpoint data merges).
func (g *Graph) AttachEdge(e *Edge) (*Edge, error) {
	if e == nil || e.u == nil || e.v == nil {
		return nil, ErrMissingEndpoint
	}

	// AttachNode cannot fail for non-nil nodes.
	e.u, _ = g.AttachNode(e.u, nil)
	e.v, _ = g.AttachNode(e.v, nil)
	g.linkEdge(e)

	return e, nil
}

// RemoveEdge unlinks and returns the edge joining u and v.
//
// Errors:
//   - *KeyError (Key is Pair{u, v}) wrapping ErrEdgeNotFound when no such edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) (*Edge, error) {
	e, ok := g.adj[u][v]
	if !ok {
		return nil, notFound(Pair{U: u, V: v}, ErrEdgeNotFound)
	}
	g.unlinkEdge(u, v)

	return e, nil
}

// DetachEdge removes the edge joining e's endpoints.
//
// Errors:
//   - ErrMissingEndpoint when e or one of its endpoints is nil.
//   - *KeyError wrapping ErrEdgeNotFound when the endpoints are not joined.
func (g *Graph) DetachEdge(e *Edge) (*Edge, error) {
	if e == nil || e.u == nil || e.v == nil {
		return nil, ErrMissingEndpoint
	}

	return g.RemoveEdge(e.u.name, e.v.name)
}
