// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left nodes leftPrefix+0..n1-1, right nodes rightPrefix+0..n2-1
//     (prefixes "L"/"R" unless WithPartitionPrefix says otherwise).
//   • Emits every left-right pair, left index ascending then right.
//   • Nodes carry attribute "side" = "left" | "right".
//
// Complexity: O(n1+n2) nodes + O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frequent/core"
)

// Partition attribute written on bipartite nodes.
const (
	SideAttr  = "side"
	SideLeft  = "left"
	SideRight = "right"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		left := makeIDs(cfg.leftPrefix, n1)
		right := makeIDs(cfg.rightPrefix, n2)
		addNodes(g, cfg, left)
		addNodes(g, cfg, right)
		for _, id := range left {
			g.AddNode(id, core.Attrs{SideAttr: SideLeft})
		}
		for _, id := range right {
			g.AddNode(id, core.Attrs{SideAttr: SideRight})
		}

		for _, u := range left {
			for _, v := range right {
				addEdge(g, cfg, u, v)
			}
		}

		return nil
	}
}
