// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n, p): each unordered pair {i,j}, i<j, is included
//     independently with probability p. No self-loops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order: i asc, then j asc (j > i). Fixed seed ⇒ fixed edge set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frequent/core"
)

// RandomSparse returns a Constructor that samples G(n, p) over idFn(0..n-1).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids, err := seqIDs(cfg.idFn, 0, n)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, err)
		}
		addNodes(g, cfg, ids)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !include(cfg, p) {
					continue
				}
				addEdge(g, cfg, ids[i], ids[j])
			}
		}

		return nil
	}
}

// include runs one Bernoulli(p) trial; p ∈ {0,1} consumes no randomness.
func include(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	}

	return cfg.rng.Float64() < p
}
