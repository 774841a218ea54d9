// SPDX-License-Identifier: MIT
// Shared fixtures and mapping checks for the vf2 black-box tests.

package vf2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dstoeckel/ball/builder"
	"github.com/dstoeckel/ball/graph"
	"github.com/dstoeckel/ball/vf2"
)

func build(t testing.TB, directed bool, cons ...builder.Constructor) *graph.Graph {
	t.Helper()
	g, err := builder.Build([]graph.Option{graph.WithDirected(directed)}, nil, cons...)
	require.NoError(t, err)

	return g
}

func labelled(t testing.TB, labels []any, edges [][3]any) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, l := range labels {
		g.AddNode(l)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(graph.NodeID(e[0].(int)), graph.NodeID(e[1].(int)), e[2]))
	}

	return g
}

// requireEmbedding checks that m maps every query node injectively and
// preserves query edges; with induced, target edges among images must have
// query preimages too.
func requireEmbedding(t testing.TB, q, tg graph.Accessor, m vf2.Mapping, induced bool) {
	t.Helper()
	require.Len(t, m, q.NodeCount())
	used := make(map[vf2.NodeID]bool, len(m))
	for i, p := range m {
		require.Equal(t, vf2.NodeID(i), p.Query, "mapping ordered by query id")
		require.False(t, used[p.Target], "target %d used twice", p.Target)
		used[p.Target] = true
	}
	requireCommon(t, q, tg, m, induced)
}

// requireCommon checks edge agreement over the mapped pairs only.
func requireCommon(t testing.TB, q, tg graph.Accessor, m vf2.Mapping, induced bool) {
	t.Helper()
	for _, a := range m {
		for _, b := range m {
			_, qe := q.EdgeBetween(a.Query, b.Query)
			_, te := tg.EdgeBetween(a.Target, b.Target)
			if qe {
				require.True(t, te, "query edge %d→%d lost", a.Query, b.Query)
			}
			if induced && te {
				require.True(t, qe, "target edge %d→%d has no preimage", a.Target, b.Target)
			}
		}
	}
}

func countAll(t testing.TB, kind vf2.Kind, q, tg graph.Accessor, opts ...vf2.StateOption) int {
	t.Helper()
	var n int
	err := vf2.Search(kind, q, tg, true, opts, func(s *vf2.State) error {
		n = vf2.MatchAll(s, nil)
		return nil
	})
	require.NoError(t, err)

	return n
}

func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()

	return nil
}
