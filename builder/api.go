// SPDX-License-Identifier: MIT
//
// api.go: Build orchestrator and the Constructor type.
//
// Determinism: equal inputs, options, seed and constructor order produce
// identical graphs (same ids, same adjacency order, same attributes).

package builder

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

// Constructor appends a topology to g using the resolved configuration.
// Constructors validate parameters before touching g and return sentinel
// errors wrapped with their name.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// Build creates a graph with gopts, resolves bopts and applies cons in order.
// The first constructor error is returned wrapped as "Build: %w".
// Complexity: Σ cost of the constructors.
func Build(gopts []graph.Option, bopts []Option, cons ...Constructor) (*graph.Graph, error) {
	g := graph.New(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
