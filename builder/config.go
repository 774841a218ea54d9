// SPDX-License-Identifier: MIT
//
// config.go: resolved builder configuration and its defaults.
//
// Defaults:
//   • rng      = nil (stochastic constructors refuse to run)
//   • nodeAttr = nil attribute for every node
//   • edgeAttr = nil attribute for every edge
//   • gopts    = none (Generate builds undirected graphs)

package builder

import (
	"math/rand"

	"github.com/dstoeckel/ball/graph"
)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand
	nodeAttr func(i int) any
	edgeAttr func(u, v int) any
	gopts    []graph.Option // graph options for Generate
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		nodeAttr: func(int) any { return nil },
		edgeAttr: func(int, int) any { return nil },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
