// File: view_edges.go
// Role: Edge views (EdgeView, EdgeDataView) over the symmetric adjacency table.
// Determinism:
//   - Iteration visits nodes by name ascending and each neighbor table by name ascending.
// Policy:
//   - The table stores every undirected edge twice (adj[u][v], adj[v][u]).
//     Iteration reports it once: a neighbor already fully visited is skipped.
//   - A self-loop is reported once.

package core

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// walkEdges yields every edge reachable from the nodes in order exactly once.
// seen accumulates the nodes whose neighbor tables have been fully visited.
func walkEdges(adj map[string]map[string]*Edge, order []string) iter.Seq2[Pair, *Edge] {
	return func(yield func(Pair, *Edge) bool) {
		seen := make(map[string]struct{}, len(order))
		for _, u := range order {
			nbrs := adj[u]
			for _, v := range slices.Sorted(maps.Keys(nbrs)) {
				if _, done := seen[v]; done {
					continue
				}
				if !yield(Pair{U: u, V: v}, nbrs[v]) {
					return
				}
			}
			seen[u] = struct{}{}
		}
	}
}

// lookupEdge finds the edge between u and v, checking both table sides.
func lookupEdge(adj map[string]map[string]*Edge, u, v string) (*Edge, bool) {
	if e, ok := adj[u][v]; ok {
		return e, true
	}
	e, ok := adj[v][u]

	return e, ok
}

// EdgeItem is one reported entry of an EdgeDataView.
type EdgeItem struct {
	Pair
	Value any
}

// EdgeView is the set-and-mapping view over all edges of a graph.
type EdgeView struct {
	adj map[string]map[string]*Edge
}

// Len returns the number of edges, each undirected edge counted once:
// (Σ neighbor-table sizes + self-loops) / 2.
// Complexity: O(V).
func (ev EdgeView) Len() int {
	var total int
	for u, nbrs := range ev.adj {
		total += len(nbrs)
		if _, loop := nbrs[u]; loop {
			total++ // a self-loop is stored once but counts for both ends
		}
	}

	return total / 2
}

// All yields each edge once with the endpoint order in which it was reached.
func (ev EdgeView) All() iter.Seq2[Pair, *Edge] {
	return walkEdges(ev.adj, slices.Sorted(maps.Keys(ev.adj)))
}

// Pairs returns the endpoint pairs of all edges, each edge once.
func (ev EdgeView) Pairs() []Pair {
	out := make([]Pair, 0, ev.Len())
	for p := range ev.All() {
		out = append(out, p)
	}

	return out
}

// Contains reports whether an edge joins u and v (in either order).
func (ev EdgeView) Contains(u, v string) bool {
	_, ok := lookupEdge(ev.adj, u, v)

	return ok
}

// Get returns the edge joining u and v or a *KeyError wrapping ErrEdgeNotFound.
// Get(u, v) and Get(v, u) return the same *Edge.
func (ev EdgeView) Get(u, v string) (*Edge, error) {
	e, ok := lookupEdge(ev.adj, u, v)
	if !ok {
		return nil, notFound(Pair{U: u, V: v}, ErrEdgeNotFound)
	}

	return e, nil
}

// Data returns an EdgeDataView reporting each edge through mode. When nbunch is
// non-empty only edges incident to those nodes are reported; unknown names are ignored.
func (ev EdgeView) Data(mode DataMode, nbunch ...string) EdgeDataView {
	dv := EdgeDataView{adj: ev.adj, mode: mode}
	if len(nbunch) > 0 {
		dv.nbunch = make(map[string]struct{}, len(nbunch))
		for _, n := range nbunch {
			dv.nbunch[n] = struct{}{}
		}
	}

	return dv
}

// String formats the endpoint pairs, e.g. [(a, b) (b, c)].
func (ev EdgeView) String() string {
	parts := make([]string, 0, ev.Len())
	for p := range ev.All() {
		parts = append(parts, p.String())
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// EdgeDataView reports edges together with a projection of their data,
// optionally restricted to the edges incident to a node subset.
type EdgeDataView struct {
	adj    map[string]map[string]*Edge
	nbunch map[string]struct{} // nil means every node
	mode   DataMode
}

// Mode returns the projection mode.
func (dv EdgeDataView) Mode() DataMode { return dv.mode }

// order lists the start nodes of the walk: nbunch members present in the graph,
// or every node.
func (dv EdgeDataView) order() []string {
	names := slices.Sorted(maps.Keys(dv.adj))
	if dv.nbunch == nil {
		return names
	}

	return slices.DeleteFunc(names, func(n string) bool {
		_, keep := dv.nbunch[n]
		return !keep
	})
}

// inBunch reports whether name passes the node subset filter.
func (dv EdgeDataView) inBunch(name string) bool {
	if dv.nbunch == nil {
		return true
	}
	_, ok := dv.nbunch[name]

	return ok
}

// All yields (pair, value) for each edge once; value is nil in NamesOnly mode.
func (dv EdgeDataView) All() iter.Seq2[Pair, any] {
	return func(yield func(Pair, any) bool) {
		for p, e := range walkEdges(dv.adj, dv.order()) {
			if !yield(p, dv.mode.report(e.data)) {
				return
			}
		}
	}
}

// Items collects All into a slice.
func (dv EdgeDataView) Items() []EdgeItem {
	var out []EdgeItem
	for p, v := range dv.All() {
		out = append(out, EdgeItem{Pair: p, Value: v})
	}

	return out
}

// Len returns the number of reported edges.
// Complexity: O(V + E).
func (dv EdgeDataView) Len() int {
	var n int
	for range walkEdges(dv.adj, dv.order()) {
		n++
	}

	return n
}

// Contains reports whether an edge joins u and v and is covered by the node subset.
// Both adj[u][v] and adj[v][u] are checked before concluding absence.
func (dv EdgeDataView) Contains(u, v string) bool {
	if !dv.inBunch(u) && !dv.inBunch(v) {
		return false
	}
	_, ok := lookupEdge(dv.adj, u, v)

	return ok
}

// ContainsData reports whether Contains(u, v) holds and the edge's reported
// value equals value. In NamesOnly mode it is equivalent to Contains.
func (dv EdgeDataView) ContainsData(u, v string, value any) bool {
	if !dv.inBunch(u) && !dv.inBunch(v) {
		return false
	}
	e, ok := lookupEdge(dv.adj, u, v)
	if !ok {
		return false
	}
	if dv.mode.kind == modeNames {
		return true
	}

	return sameValue(dv.mode.report(e.data), value)
}

// String formats the reported items, e.g. [(a, b) ...] or [(a, b, 2.5) ...].
func (dv EdgeDataView) String() string {
	var parts []string
	for p, v := range dv.All() {
		if dv.mode.kind == modeNames {
			parts = append(parts, p.String())
			continue
		}
		parts = append(parts, fmt.Sprintf("(%s, %s, %v)", p.U, p.V, v))
	}

	return "[" + strings.Join(parts, " ") + "]"
}
