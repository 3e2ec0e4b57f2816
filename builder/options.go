// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • A nil argument leaves the current setting untouched.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/frequent/core"
)

// BuilderOption customizes the builder configuration before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node name generator: idx -> name. Nil is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders. Nil is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Nil is ignored.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithPartitionPrefix sets bipartite side prefixes. Empty values mean “use defaults”.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}

// WithNodeData attaches fn(name) as the attributes of every node a
// constructor creates or touches; attributes merge into existing nodes.
func WithNodeData(fn func(name string) core.Attrs) BuilderOption {
	return func(c *builderConfig) {
		c.nodeData = fn
	}
}
