// SPDX-License-Identifier: MIT
// Protocol tests: construction errors and the panics that guard the
// Clone/AddPair/Backtrack/Release discipline.

package vf2_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstoeckel/ball/builder"
	"github.com/dstoeckel/ball/graph"
	"github.com/dstoeckel/ball/vf2"
)

// huge reports a node count no arena can address.
type huge struct{}

func (huge) NodeCount() int                            { return math.MaxInt32 + 1 }
func (huge) OutEdges(graph.NodeID) []graph.Edge        { return nil }
func (huge) InEdges(graph.NodeID) []graph.Edge         { return nil }
func (huge) EdgeBetween(_, _ graph.NodeID) (any, bool) { return nil, false }
func (huge) NodeAttr(graph.NodeID) any                 { return nil }

// TestNewState_Errors covers the returned construction errors.
func TestNewState_Errors(t *testing.T) {
	g := build(t, false, builder.Cycle(3))

	_, err := vf2.NewIsoState(nil, g, true)
	require.ErrorIs(t, err, vf2.ErrNilGraph)
	_, err = vf2.NewSubState(g, nil, true)
	require.ErrorIs(t, err, vf2.ErrNilGraph)
	_, err = vf2.NewState(vf2.Kind(0), g, g, true)
	require.ErrorIs(t, err, vf2.ErrUnknownKind)
	_, err = vf2.NewMCSState(huge{}, g, false)
	require.ErrorIs(t, err, vf2.ErrGraphTooLarge)

	s, err := vf2.NewMCSState(g, g, false)
	require.NoError(t, err)
	defer s.Release()
	assert.Equal(t, vf2.KindMCS, s.Kind())
	q, tg := s.Graphs()
	assert.Same(t, g, q.(*graph.Graph))
	assert.Same(t, g, tg.(*graph.Graph))
}

// TestProtocol_Extend checks the committed child and its undo.
func TestProtocol_Extend(t *testing.T) {
	g := build(t, false, builder.Path(3))
	root, err := vf2.NewSubState(g, g, true)
	require.NoError(t, err)
	defer root.Release()

	assert.True(t, root.IsFeasible(1, 1))
	assert.False(t, root.IsFeasible(1, 0), "degree 2 cannot map to degree 1")
	assert.False(t, root.IsFeasible(-1, 0))
	assert.False(t, root.IsFeasible(0, 3))

	c := root.Extend(1, 1)
	assert.Equal(t, 1, c.CoreLen())
	assert.Equal(t, 1, c.Depth())
	assert.Equal(t, vf2.Mapping{{Query: 1, Target: 1}}, c.CoreSet())
	assert.False(t, c.IsFeasible(1, 0), "mapped query node")
	assert.False(t, c.IsFeasible(0, 1), "mapped target node")
	assert.Zero(t, root.CoreLen(), "parent header unchanged")

	c.Backtrack()
	c.Backtrack()
	assert.Empty(t, root.CoreSet())
	assert.NotPanics(t, func() { root.Backtrack() }, "root added nothing")
}

// TestProtocol_Panics checks every protocol violation.
func TestProtocol_Panics(t *testing.T) {
	g := build(t, false, builder.Cycle(4))
	root, err := vf2.NewIsoState(g, g, false)
	require.NoError(t, err)

	p := root.Clone()
	c := p.AddPair(0, 0)
	assert.PanicsWithValue(t, vf2.ErrPendingConsumed, func() { p.AddPair(1, 1) })

	assert.ErrorIs(t, recoverErr(func() { root.Extend(1, 1) }), vf2.ErrStaleState, "sibling still committed")
	assert.ErrorIs(t, recoverErr(func() { c.Extend(0, 1) }), vf2.ErrAlreadyMapped)
	assert.ErrorIs(t, recoverErr(func() { c.Extend(1, 0) }), vf2.ErrAlreadyMapped)

	gc := c.Extend(1, 1)
	assert.ErrorIs(t, recoverErr(func() { c.Backtrack() }), vf2.ErrStaleState, "descendant still committed")
	assert.PanicsWithValue(t, vf2.ErrNotRoot, func() { gc.Release() })
	gc.Backtrack()
	c.Backtrack()

	root.Release()
	root.Release()
	assert.PanicsWithValue(t, vf2.ErrReleased, func() { root.Clone() })
	assert.PanicsWithValue(t, vf2.ErrReleased, func() { root.CoreSet() })
	assert.PanicsWithValue(t, vf2.ErrReleased, func() { root.NextPair(vf2.NullPair) })
}

// TestOptions_NilPanics checks the comparator guards.
func TestOptions_NilPanics(t *testing.T) {
	assert.Panics(t, func() { vf2.WithNodeComparator(nil) })
	assert.Panics(t, func() { vf2.WithEdgeComparator(nil) })
}

// TestKind covers names and parsing.
func TestKind(t *testing.T) {
	for _, k := range []vf2.Kind{vf2.KindIso, vf2.KindSub, vf2.KindMCS} {
		got, err := vf2.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := vf2.ParseKind("subgraph")
	require.ErrorIs(t, err, vf2.ErrUnknownKind)
	assert.Equal(t, "Kind(7)", vf2.Kind(7).String())
}

// TestMapping covers lookups and pair rendering.
func TestMapping(t *testing.T) {
	m := vf2.Mapping{{Query: 0, Target: 3}, {Query: 2, Target: 1}}
	assert.Equal(t, vf2.NodeID(3), m.Target(0))
	assert.Equal(t, vf2.NodeID(1), m.Target(2))
	assert.Equal(t, vf2.NullNode, m.Target(1))
	assert.Equal(t, "2→1", m[1].String())
}
