// Package builder provides internal helpers shared by the constructors.
package builder

import (
	"strconv"

	"github.com/katalvlaran/frequent/core"
)

// addNodes registers ids in order, attaching the configured node data.
// Existing nodes are kept; their data is merged.
// Complexity: O(len(ids)).
func addNodes(g *core.Graph, cfg builderConfig, ids []string) {
	for _, id := range ids {
		g.AddNode(id, cfg.attrs(id))
	}
}

// addEdge joins u and v with the next configured weight.
func addEdge(g *core.Graph, cfg builderConfig, u, v string) {
	g.AddEdge(u, v, core.WithWeight(cfg.weight()))
}

// addCompleteEdges connects every unordered pair in ids, i<j in slice order.
// Complexity: O(m²) where m = len(ids).
func addCompleteEdges(g *core.Graph, cfg builderConfig, ids []string) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			addEdge(g, cfg, ids[i], ids[j])
		}
	}
}

// seqIDs returns idFn(from..to-1), stopping at the first index the scheme cannot name.
func seqIDs(idFn IDFn, from, to int) ([]string, error) {
	ids := make([]string, 0, max(to-from, 0))
	for i := from; i < to; i++ {
		id, err := idFn(i)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// makeIDs generates n names by concatenating prefix and index.
// Example: makeIDs("L",3) → {"L0","L1","L2"}.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}

// gridNodeID formats a 2D grid coordinate as "r,c".
func gridNodeID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
