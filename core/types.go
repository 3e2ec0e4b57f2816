// Package core defines the central Graph, Node and Edge types together with the
// read-only views (NodeView, EdgeView, AdjacencyView and their data sub-views)
// used to inspect a graph without mutating it.
//
// The Graph is undirected and simple: every pair of node names has at most one
// Edge, stored symmetrically in the adjacency table (adj[u][v] and adj[v][u]
// hold the same *Edge). A self-loop is stored once.
//
// This file declares Kind, Attrs, Node, Edge, Graph, the functional options,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrKeyNotFound      - a lookup referenced an absent key (all not-found errors match it).
//	ErrNodeNotFound     - requested node does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrAttrNotFound     - requested attribute key does not exist on an entity.
//	ErrMissingEndpoint  - an edge operation lacks one of its endpoint nodes.
//	ErrNilNode          - a nil *Node was passed where a node is required.
//	ErrIncomparable     - equality/ordering between entities of unrelated kinds.
package core

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrKeyNotFound indicates a lookup of an absent key. Every *KeyError matches it.
	ErrKeyNotFound = errors.New("core: key not found")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrAttrNotFound indicates an attribute key is absent from an entity's data.
	ErrAttrNotFound = errors.New("core: attribute not found")

	// ErrMissingEndpoint indicates an edge was given without both endpoint nodes.
	ErrMissingEndpoint = errors.New("core: missing edge endpoint")

	// ErrNilNode indicates a nil *Node was passed to a graph operation.
	ErrNilNode = errors.New("core: node is nil")

	// ErrIncomparable indicates a comparison between entities of unrelated kinds.
	ErrIncomparable = errors.New("core: unsupported comparison between unrelated kinds")
)

// KeyError carries the key of a failed lookup.
// errors.Is(err, ErrKeyNotFound) holds for every KeyError; errors.Is against the
// wrapped sentinel (ErrNodeNotFound, ErrEdgeNotFound, ...) narrows the cause.
type KeyError struct {
	// Key is the missing key: a node name, an attribute key, or a Pair for edges.
	Key any

	// Err is the specific not-found sentinel.
	Err error
}

// Error implements error.
func (e *KeyError) Error() string {
	return fmt.Sprintf("%v: %v", e.Err, e.Key)
}

// Unwrap exposes the specific sentinel to errors.Is / errors.As.
func (e *KeyError) Unwrap() error { return e.Err }

// Is makes every KeyError match ErrKeyNotFound.
func (e *KeyError) Is(target error) bool { return target == ErrKeyNotFound }

// notFound builds a *KeyError for key with the given sentinel.
func notFound(key any, sentinel error) error {
	return &KeyError{Key: key, Err: sentinel}
}

// Attrs is the attribute mapping carried by nodes, edges and graphs.
// It is a plain map so external serializers can walk it directly.
type Attrs map[string]any

// Pair names the two endpoints of an edge, in the order they were given.
type Pair struct {
	U, V string
}

// String renders the pair as "(u, v)".
func (p Pair) String() string { return "(" + p.U + ", " + p.V + ")" }

// EdgeNameSeparator joins endpoint names when an Edge is built without an explicit name.
const EdgeNameSeparator = " - "

// DefaultEdgeWeight is the weight of an Edge built without WithWeight.
const DefaultEdgeWeight float64 = 1.0

// Node is a named, attribute-bearing graph vertex.
//
// Node identity is (Kind, Name); its attribute data is reachable through the
// mapping methods (Get, Set, Delete, Update, ...) and the read-only Data view.
type Node struct {
	entity
}

// Edge is a named, weighted, attribute-bearing connection between two nodes.
//
// The endpoints are held by reference and are not owned by the Edge: the Graph
// owns every Node. Mutating an endpoint's data is visible through Edge.U()/V().
type Edge struct {
	entity

	u, v   *Node
	weight float64
}

// NodeOption configures a Node built by NewNode.
type NodeOption func(n *Node)

// WithNodeKind sets the node's kind (default KindNode).
func WithNodeKind(k Kind) NodeOption {
	return func(n *Node) { n.kind = k }
}

// WithNodeData makes attrs the node's attribute mapping. The map is adopted, not copied.
func WithNodeData(attrs Attrs) NodeOption {
	return func(n *Node) {
		if attrs != nil {
			n.data = attrs
		}
	}
}

// edgeConfig collects EdgeOption values before an Edge is built or updated.
type edgeConfig struct {
	weight    float64
	weightSet bool
	name      string
	nameSet   bool
	kind      Kind
	data      Attrs
}

// EdgeOption configures an Edge built by NewEdge or Graph.AddEdge.
type EdgeOption func(c *edgeConfig)

// WithWeight sets the edge weight. An explicit zero is kept; only an absent
// WithWeight falls back to DefaultEdgeWeight.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.weight, c.weightSet = w, true }
}

// WithEdgeName overrides the derived "<u> - <v>" edge name.
func WithEdgeName(name string) EdgeOption {
	return func(c *edgeConfig) { c.name, c.nameSet = name, true }
}

// WithEdgeKind sets the edge's kind (default KindEdge).
func WithEdgeKind(k Kind) EdgeOption {
	return func(c *edgeConfig) { c.kind = k }
}

// WithEdgeData supplies edge attributes. NewEdge adopts the map; Graph.AddEdge
// merges it into an existing edge.
func WithEdgeData(attrs Attrs) EdgeOption {
	return func(c *edgeConfig) { c.data = attrs }
}

// newEdgeConfig applies opts in order over the defaults.
func newEdgeConfig(opts []EdgeOption) edgeConfig {
	cfg := edgeConfig{weight: DefaultEdgeWeight, kind: KindEdge}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithName sets the graph name.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// WithGraphData seeds the graph-level attributes (copied).
func WithGraphData(attrs Attrs) GraphOption {
	return func(g *Graph) {
		for k, v := range attrs {
			g.attrs[k] = v
		}
	}
}

// WithLogger routes mutation events to l at debug level. A nil logger is ignored.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is an undirected, weighted, attribute-bearing graph.
//
// nodes maps a node name to its *Node. adj maps a node name to its neighbor
// table (neighbor name → *Edge) and is kept symmetric. Both tables always hold
// the same set of names.
//
// A Graph is not safe for concurrent use. Views returned by Adj, Nodes and
// Edges read the live tables; mutating the graph from another goroutine while a
// view is in use is a precondition violation.
type Graph struct {
	name  string
	attrs Attrs

	// Storage
	nodes map[string]*Node           // node name → Node
	adj   map[string]map[string]*Edge // adj[u][v] == adj[v][u]

	log *zap.Logger
}

// NewGraph creates an empty Graph configured by opts.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		attrs: make(Attrs),
		nodes: make(map[string]*Node),
		adj:   make(map[string]map[string]*Edge),
		log:   zap.NewNop(),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
