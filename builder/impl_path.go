// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds nodes idFn(0..n-1) in ascending order.
//   • Emits edges idFn(i-1)-idFn(i) for i=1..n-1.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frequent/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		ids, err := seqIDs(cfg.idFn, 0, n)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodPath, err)
		}
		addNodes(g, cfg, ids)
		for i := 1; i < n; i++ {
			addEdge(g, cfg, ids[i-1], ids[i])
		}

		return nil
	}
}
