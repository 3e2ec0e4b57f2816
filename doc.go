// Package frequent is an in-memory toolkit for undirected weighted graphs
// whose nodes and edges are named and carry free-form attributes.
//
// Everything is organized under a few subpackages:
//
//	core/      Graph, Node, Edge, Kind and the live read-only views
//	builder/   deterministic topologies (path, cycle, star, wheel, grid, ...)
//	config/    dotted key-path configuration with JSON/YAML persistence
//	singleton/ one shared instance per type, created on first use
//	messaging/ in-process message bus with per-type handler registry
//
// The frequent command (cmd/frequent) builds topologies and edits the
// configuration file from the shell.
//
// Quick start:
//
//	g := core.NewGraph(core.WithName("g"))
//	g.AddNode("a", core.Attrs{"color": "red"})
//	g.AddEdge("a", "b", core.WithWeight(2.5))
//	for p, e := range g.Edges().All() {
//		fmt.Println(p, e.Weight())
//	}
//
// The root package holds no code; import the subpackages directly.
package frequent
