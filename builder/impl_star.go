// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); n counts the hub.
//   • Hub is CenterNodeID; leaves are idFn(1..n-1).
//   • Emits spokes Center-idFn(i) for i=1..n-1.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frequent/core"
)

// Star returns a Constructor that builds a star with hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		leaves, err := seqIDs(cfg.idFn, 1, n)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodStar, err)
		}
		addNodes(g, cfg, []string{CenterNodeID})
		addNodes(g, cfg, leaves)
		for _, leaf := range leaves {
			addEdge(g, cfg, CenterNodeID, leaf)
		}

		return nil
	}
}
