// Package core provides an in-memory undirected graph of named nodes and
// weighted edges, each carrying a free-form attribute mapping, together with
// live read-only views over the graph's contents.
//
// The Graph G = (V,E) keeps two tables:
//
//   - nodes[name] = *Node
//   - adj[u][v]   = *Edge, with adj[v][u] holding the same *Edge
//
// A self-loop occupies the single slot adj[u][u]. Edges are unique per
// unordered endpoint pair; adding an existing pair updates it in place.
//
// Identity:
//
//	Every Node and Edge has a Kind and a Name. Equality (Equal) and ordering
//	(Less) are defined along the Kind hierarchy: entities compare when one
//	kind is the other or one of its ancestors (KindNode and KindEdge both
//	derive from KindEntity). Comparing unrelated kinds returns ErrIncomparable.
//
// Views:
//
//	Nodes()  NodeView       names → *Node
//	Edges()  EdgeView       each edge once, Get(u, v) == Get(v, u)
//	Adj()    AdjacencyView  name → View over the neighbor table
//	Nodes().Data(mode), Edges().Data(mode, nbunch...) project entity data:
//	  NamesOnly()         names only
//	  AllData()           full attribute mapping
//	  AttrData(key, def)  one attribute, def when absent
//
//	Views hold no copies. Mutations of the graph are visible through views
//	obtained earlier, and views expose no mutators.
//
// Determinism:
//
//	Enumeration is sorted by node name. EdgeView reaches edges from their
//	lexicographically smaller start node, so output is stable across runs.
//
// Core Methods:
//
//	// Nodes
//	AddNode(name string, attrs Attrs) *Node                // O(1 + len(attrs))
//	AttachNode(n *Node, attrs Attrs) (*Node, error)         // O(1 + len(attrs))
//	RemoveNode(name string) (*Node, error)                  // O(deg)
//	HasNode(name string) bool                               // O(1)
//
//	// Edges
//	AddEdge(u, v string, opts ...EdgeOption) *Edge          // O(1)
//	AttachEdge(e *Edge) (*Edge, error)                      // O(1)
//	RemoveEdge(u, v string) (*Edge, error)                  // O(1)
//	DetachEdge(e *Edge) (*Edge, error)                      // O(1)
//	HasEdge(u, v string) bool                               // O(1)
//
//	// Queries
//	Get(name) (View[*Edge], error), Neighbors(name), Degree(name)
//	Len(), Contains(name), Clone(), Clear(), ToMap()
//
// Errors:
//
//	Missing keys are reported as *KeyError. errors.Is(err, ErrKeyNotFound) holds
//	for all of them; errors.Is against ErrNodeNotFound, ErrEdgeNotFound or
//	ErrAttrNotFound narrows the cause.
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Callers sharing a graph
//	between goroutines must serialize access themselves.
//
// Logging:
//
//	Mutations are logged at debug level through the *zap.Logger given with
//	WithLogger; the default logger discards everything.
package core
