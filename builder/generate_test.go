// SPDX-License-Identifier: MIT
package builder_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstoeckel/ball/builder"
	"github.com/dstoeckel/ball/graph"
)

// TestGenerate_Isomorphic verifies that perm carries every g1 edge onto g2.
func TestGenerate_Isomorphic(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g1, g2, perm, err := builder.Generate(30, 60, true,
			builder.WithSeed(11),
			builder.WithGraphOptions(graph.WithDirected(directed)),
			builder.WithNodeAttr(func(i int) any { return i % 3 }),
		)
		require.NoError(t, err)
		assert.Equal(t, 60, g1.Stats().Edges)
		assert.Equal(t, g1.Stats(), g2.Stats())
		assert.True(t, builder.IsConnected(g1))

		for u := 0; u < g1.NodeCount(); u++ {
			assert.Equal(t, g1.NodeAttr(graph.NodeID(u)), g2.NodeAttr(perm[u]))
			for _, e := range g1.OutEdges(graph.NodeID(u)) {
				assert.True(t, g2.HasEdge(perm[u], perm[e.Node]), "edge %d→%d", u, e.Node)
			}
		}
	}
}

// TestGenerate_Errors covers parameter validation.
func TestGenerate_Errors(t *testing.T) {
	_, _, _, err := builder.Generate(0, 0, false, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, _, _, err = builder.Generate(5, 3, true, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewNodes, "4 edges needed to connect 5 nodes")

	_, _, _, err = builder.Generate(4, 7, false, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooManyEdges)

	_, _, _, err = builder.Generate(4, 3, false)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestExtractSubgraph_Induced verifies the subgraph is exactly what picked induces.
func TestExtractSubgraph_Induced(t *testing.T) {
	g, _, _, err := builder.Generate(40, 80, true, builder.WithSeed(5))
	require.NoError(t, err)

	for _, connected := range []bool{true, false} {
		h, picked, err := builder.ExtractSubgraph(g, 12, connected, builder.WithSeed(9))
		require.NoError(t, err)
		require.Len(t, picked, 12)
		assert.True(t, slices.IsSorted(picked), "picked ascending")
		if connected {
			assert.True(t, builder.IsConnected(h))
		}
		for i := range picked {
			for j := range picked {
				assert.Equal(t,
					g.HasEdge(picked[i], picked[j]),
					h.HasEdge(graph.NodeID(i), graph.NodeID(j)),
					"pair %d,%d", i, j)
			}
		}
	}
}

// TestExtractSubgraph_Errors covers validation and a too-small component.
func TestExtractSubgraph_Errors(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Path(3), builder.Path(3))
	require.NoError(t, err)

	_, _, err = builder.ExtractSubgraph(g, 0, false, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, _, err = builder.ExtractSubgraph(g, 7, false, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooManyNodes)
	_, _, err = builder.ExtractSubgraph(g, 2, false)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, _, err = builder.ExtractSubgraph(g, 4, true, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}
