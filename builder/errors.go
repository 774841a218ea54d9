// SPDX-License-Identifier: MIT
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Constructors never panic; option constructors do on meaningless input.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyEdges indicates an edge count the requested node count cannot hold.
var ErrTooManyEdges = errors.New("builder: too many edges")

// ErrTooManyNodes indicates a subgraph request larger than its source graph.
var ErrTooManyNodes = errors.New("builder: too many nodes")

// ErrUnknownSolid indicates a PlatonicName outside the five solids.
var ErrUnknownSolid = errors.New("builder: unknown platonic solid")

// ErrUnsupportedGraphMode indicates a constructor that cannot honour the
// graph's orientation (RandomRegular on a directed graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates a nil constructor or exhausted retries.
var ErrConstructFailed = errors.New("builder: construction failed")
