// File: adjacency_list.go
// Role: Adjacency table maintenance.
// Policy:
//   - The table is a nested map adj[u][v] = *Edge kept symmetric: linking or
//     unlinking an edge writes both sides in one straight-line block with no
//     logging, callbacks or error returns between the two writes.

package core

import "go.uber.org/zap"

// registerNode stores n in the node table and gives it an empty neighbor table.
// The caller guarantees the name is not registered yet.
func (g *Graph) registerNode(n *Node) {
	g.nodes[n.name] = n
	g.adj[n.name] = make(map[string]*Edge)

	g.log.Debug("node added", zap.String("graph", g.name), zap.String("node", n.name))
}

// linkEdge stores e under both endpoint names. For a self-loop both writes hit the same slot.
func (g *Graph) linkEdge(e *Edge) {
	u, v := e.u.name, e.v.name
	g.adj[u][v] = e
	g.adj[v][u] = e

	g.log.Debug("edge added",
		zap.String("graph", g.name),
		zap.String("edge", e.name),
		zap.Float64("weight", e.weight),
	)
}

// unlinkEdge deletes the (u, v) entry from both sides.
func (g *Graph) unlinkEdge(u, v string) {
	delete(g.adj[u], v)
	delete(g.adj[v], u)

	g.log.Debug("edge removed", zap.String("graph", g.name), zap.String("u", u), zap.String("v", v))
}
