// Package builder defines shared constants used by graph builders.
package builder

// Constructor names used as error prefixes.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodGrid              = "Grid"
)

// CenterNodeID names the hub node of Star and Wheel.
const CenterNodeID = "Center"

// Minimum sizes per topology.
const (
	// MinCycleNodes: fewer than 3 nodes cannot form a ring without loops.
	MinCycleNodes = 3
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-node rim plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a single node.
	MinCompleteNodes = 1
	// MinGridDim: a 1×1 grid has no edges but is valid.
	MinGridDim = 1
	// MinPartitionSize: each side of K_{m,n} needs a node.
	MinPartitionSize = 1
	// MinRandomSparseNodes: at least one node to sample over.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
