// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices); n counts the hub.
//   • Rim is Cycle(n-1) over idFn(0..n-2); hub is CenterNodeID.
//   • Emits the rim first, then spokes Center-idFn(i) for i=0..n-2.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frequent/core"
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		rims, err := seqIDs(cfg.idFn, 0, n-1)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodWheel, err)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n-1, err)
		}

		addNodes(g, cfg, []string{CenterNodeID})
		for _, rim := range rims {
			addEdge(g, cfg, CenterNodeID, rim)
		}

		return nil
	}
}
