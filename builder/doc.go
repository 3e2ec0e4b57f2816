// Package builder assembles deterministic graph fixtures on top of core.Graph.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a graph,
// resolves the builder configuration and applies each Constructor in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithName("ring")},
//		[]builder.BuilderOption{builder.WithLetterIDs(), builder.WithConstantWeight(2)},
//		builder.Cycle(5),
//	)
//
// Topologies:
//
//	Path(n)                   n ≥ 2, edges i-(i+1)
//	Cycle(n)                  n ≥ 3, edges i-(i+1)%n
//	Star(n)                   n ≥ 2, hub "Center" + leaves 1..n-1
//	Wheel(n)                  n ≥ 4, rim Cycle(n-1) + hub "Center"
//	Complete(n)               n ≥ 1, every unordered pair
//	CompleteBipartite(n1, n2) each ≥ 1, prefixes from WithPartitionPrefix
//	Grid(rows, cols)          each ≥ 1, node names "r,c", 4-neighborhood
//	RandomSparse(n, p)        n ≥ 1, 0 ≤ p ≤ 1, Bernoulli(p) per unordered pair
//
// Node names come from the ID scheme (DecimalIDs unless WithIDScheme or one of
// its shorthands is given; IDSchemeByName resolves registered names). A bounded
// scheme that runs out of names fails the constructor with ErrIDOutOfRange
// before anything is added. Edge weights come from the weight function
// (DefaultWeightFn unless WithWeightFn or a shorthand is given). WithNodeData
// attaches attributes to every node a constructor creates.
//
// Determinism:
//
//	Same options, seed and constructor order yield identical graphs. Stochastic
//	constructors draw only from the configured *rand.Rand (WithSeed/WithRand).
//
// Errors:
//
//	Constructors return sentinel errors wrapped with the constructor name:
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrIDOutOfRange, ErrConstructFailed. Branch with errors.Is.
package builder
