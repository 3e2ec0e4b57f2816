// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for frequent/core.

package core_test

import (
	"github.com/katalvlaran/frequent/core"
)

// Common node names used across core tests.
const (
	NodeA = "a"
	NodeB = "b"
	NodeC = "c"
	NodeD = "d"
	NodeX = "x"
)

// Common attribute keys and weights (avoid magic values in test bodies).
const (
	KeyColor = "color"
	KeySize  = "size"

	Weight0   = 0.0
	Weight2_5 = 2.5
	Weight3   = 3.0
)

// triangle builds a-b, b-c, c-a with unit weights.
func triangle() *core.Graph {
	g := core.NewGraph(core.WithName("triangle"))
	g.AddEdge(NodeA, NodeB)
	g.AddEdge(NodeB, NodeC)
	g.AddEdge(NodeC, NodeA)

	return g
}
