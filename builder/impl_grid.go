// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Node names "r,c" (the ID scheme does not apply), row-major.
//   • Each cell links right (r,c+1) then down (r+1,c); 4-neighborhood.
//   • Nodes carry attributes "row" and "col".
//
// Complexity: O(R·C) nodes + O(2·R·C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frequent/core"
)

// Grid coordinate attributes.
const (
	RowAttr = "row"
	ColAttr = "col"
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridNodeID(r, c)
				addNodes(g, cfg, []string{id})
				g.AddNode(id, core.Attrs{RowAttr: r, ColAttr: c})
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridNodeID(r, c)
				if c+1 < cols {
					addEdge(g, cfg, u, gridNodeID(r, c+1))
				}
				if r+1 < rows {
					addEdge(g, cfg, u, gridNodeID(r+1, c))
				}
			}
		}

		return nil
	}
}
