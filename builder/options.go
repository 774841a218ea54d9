// SPDX-License-Identifier: MIT
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves only return errors.

package builder

import (
	"math/rand"

	"github.com/dstoeckel/ball/graph"
)

// Option customizes builderConfig before construction.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithNodeAttr sets the node attribute generator. The argument is the node's
// index within the constructor (0..n-1). Panics on nil.
func WithNodeAttr(fn func(i int) any) Option {
	if fn == nil {
		panic("builder: WithNodeAttr(nil)")
	}

	return func(c *builderConfig) { c.nodeAttr = fn }
}

// WithEdgeAttr sets the edge attribute generator, called with the local
// indices of the endpoints in emission order. Panics on nil.
func WithEdgeAttr(fn func(u, v int) any) Option {
	if fn == nil {
		panic("builder: WithEdgeAttr(nil)")
	}

	return func(c *builderConfig) { c.edgeAttr = fn }
}

// WithGraphOptions sets the graph options Generate creates its graphs with.
func WithGraphOptions(opts ...graph.Option) Option {
	return func(c *builderConfig) { c.gopts = append([]graph.Option(nil), opts...) }
}
