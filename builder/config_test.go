// SPDX-License-Identifier: MIT
// Package builder contains unit tests for builderConfig and Option resolution.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstoeckel/ball/graph"
)

// TestConfigDefaults checks the documented defaults.
func TestConfigDefaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Nil(t, cfg.nodeAttr(3))
	assert.Nil(t, cfg.edgeAttr(1, 2))
	assert.Empty(t, cfg.gopts)
}

// TestRNGOptions checks seeding reproducibility and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(7), WithRand(r))
	assert.Same(t, r, c.rng)

	assert.Panics(t, func() { WithRand(nil) })
}

// TestAttrOptions checks attribute generators and their nil guards.
func TestAttrOptions(t *testing.T) {
	cfg := newBuilderConfig(
		WithNodeAttr(func(i int) any { return "n" }),
		WithEdgeAttr(func(u, v int) any { return u * v }),
		WithGraphOptions(graph.WithDirected(true)),
	)
	assert.Equal(t, "n", cfg.nodeAttr(0))
	assert.Equal(t, 6, cfg.edgeAttr(2, 3))
	assert.True(t, graph.New(cfg.gopts...).Directed())

	assert.Panics(t, func() { WithNodeAttr(nil) })
	assert.Panics(t, func() { WithEdgeAttr(nil) })
}
