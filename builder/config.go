// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DecimalIDs         ("0","1","2",...)
//   • rng         = nil                (no randomness unless seeded)
//   • weightFn    = DefaultWeightFn    (core.DefaultEdgeWeight)
//   • left/right  = "L" / "R"
//   • nodeData    = nil                (nodes carry no attributes)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/frequent/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node name strategy: index -> name.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for every emitted edge.
	weightFn WeightFn

	// Bipartite name prefixes (left/right). Empty → defaults.
	leftPrefix  string
	rightPrefix string

	// Attributes for each created node; nil adds none.
	nodeData func(name string) core.Attrs
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DecimalIDs,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}

// attrs returns the attributes for a new node named name.
func (c builderConfig) attrs(name string) core.Attrs {
	if c.nodeData == nil {
		return nil
	}

	return c.nodeData(name)
}
