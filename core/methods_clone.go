// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone rebuilds nodes and edges in name order; the result is independent of map order.
// Policy:
//   - Clone shares no Node, Edge or attribute map with the source. Attribute values are
//     copied one level (see View.Copy); deeper values are shared.
//   - Clear empties the existing maps in place so live views observe the empty state.

package core

import "go.uber.org/zap"

// Clone returns a structural copy of g: same name, graph attributes, nodes,
// edges, kinds, weights and logger, with fresh Node/Edge values.
//
// Complexity: O(V + E) plus attribute copying.
func (g *Graph) Clone() *Graph {
	out := NewGraph(WithName(g.name), WithLogger(g.log))
	for k, v := range g.attrs {
		out.attrs[k] = copyValue(v)
	}

	for name, n := range g.Nodes().All() {
		c := NewNode(name, WithNodeKind(n.kind), WithNodeData(attrsCopy(n.data)))
		out.registerNode(c)
	}

	for _, e := range g.Edges().All() {
		ne := buildEdge(out.nodes[e.u.name], out.nodes[e.v.name], edgeConfig{
			weight:  e.weight,
			name:    e.name,
			nameSet: true,
			kind:    e.kind,
			data:    attrsCopy(e.data),
		})
		out.linkEdge(ne)
	}

	return out
}

// attrsCopy copies a mapping and each copyable value in it.
func attrsCopy(a Attrs) Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = copyValue(v)
	}

	return out
}

// Clear removes every node, edge and graph attribute, returning g to its
// just-constructed state. The name and logger are kept.
//
// Complexity: O(V + len(attrs)).
func (g *Graph) Clear() {
	clear(g.adj)
	clear(g.nodes)
	clear(g.attrs)

	g.log.Debug("graph cleared", zap.String("graph", g.name))
}
