// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds nodes idFn(0..n-1) in ascending order.
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frequent/core"
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		ids, err := seqIDs(cfg.idFn, 0, n)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodCycle, err)
		}
		addNodes(g, cfg, ids)
		for i := 0; i < n; i++ {
			addEdge(g, cfg, ids[i], ids[(i+1)%n])
		}

		return nil
	}
}
