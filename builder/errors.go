// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "Cycle: n=2 < min=3: builder: parameter too small".
//   • Validation order: size first, then probability, then RNG presence, then names.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition)
// is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without a
// configured *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not run at all
// (nil constructor, nil graph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrIDOutOfRange indicates an ID scheme cannot name the requested index
// (negative, or past the end of a bounded scheme such as LetterIDs).
var ErrIDOutOfRange = errors.New("builder: index outside id scheme")

// ErrUnknownIDScheme indicates IDSchemeByName got an unregistered name.
var ErrUnknownIDScheme = errors.New("builder: unknown id scheme")
