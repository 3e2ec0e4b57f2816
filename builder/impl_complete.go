// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits idFn(i)-idFn(j) for every i<j, i ascending then j ascending.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frequent/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids, err := seqIDs(cfg.idFn, 0, n)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodComplete, err)
		}
		addNodes(g, cfg, ids)
		addCompleteEdges(g, cfg, ids)

		return nil
	}
}
