// SPDX-License-Identifier: MIT
// Package molgraph_test checks molecule conversion, the comparators and
// fragment matching end to end.

package molgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstoeckel/ball/graph"
	"github.com/dstoeckel/ball/molgraph"
	"github.com/dstoeckel/ball/vf2"
)

func ethanol() *molgraph.Molecule {
	return &molgraph.Molecule{
		Name: "ethanol",
		Atoms: []molgraph.Atom{
			{Name: "C1", Element: "C"}, {Name: "C2", Element: "C"}, {Name: "O", Element: "O"},
		},
		Bonds: []molgraph.Bond{
			{A: "C1", B: "C2", Order: molgraph.Single},
			{A: "C2", B: "O", Order: molgraph.Single},
		},
	}
}

func acetaldehyde() *molgraph.Molecule {
	return &molgraph.Molecule{
		Name: "acetaldehyde",
		Atoms: []molgraph.Atom{
			{Name: "O1", Element: "O"}, {Name: "Ca", Element: "C"}, {Name: "Cb", Element: "C"},
		},
		Bonds: []molgraph.Bond{
			{A: "Ca", B: "O1", Order: molgraph.Double},
			{A: "Ca", B: "Cb", Order: molgraph.Single},
		},
	}
}

// TestMolecule_Graph checks nodes, edges and attributes.
func TestMolecule_Graph(t *testing.T) {
	g, err := ethanol().Graph()
	require.NoError(t, err)
	assert.Equal(t, graph.Stats{Nodes: 3, Edges: 2}, g.Stats())
	assert.Equal(t, molgraph.Element("O"), g.NodeAttr(2))
	order, ok := g.EdgeBetween(2, 1)
	require.True(t, ok)
	assert.Equal(t, molgraph.Single, order)

	id, ok := ethanol().AtomIndex("C2")
	assert.True(t, ok)
	assert.Equal(t, graph.NodeID(1), id)
	_, ok = ethanol().AtomIndex("N")
	assert.False(t, ok)
}

// TestMolecule_GraphErrors locks in the sentinel errors.
func TestMolecule_GraphErrors(t *testing.T) {
	cases := []struct {
		name string
		edit func(m *molgraph.Molecule)
		want error
	}{
		{"duplicate atom", func(m *molgraph.Molecule) { m.Atoms[1].Name = "C1" }, molgraph.ErrDuplicateAtom},
		{"empty element", func(m *molgraph.Molecule) { m.Atoms[0].Element = "" }, molgraph.ErrEmptyElement},
		{"unknown atom", func(m *molgraph.Molecule) { m.Bonds[0].B = "X" }, molgraph.ErrUnknownAtom},
		{"self bond", func(m *molgraph.Molecule) { m.Bonds[0].B = "C1" }, molgraph.ErrSelfBond},
		{"repeated bond", func(m *molgraph.Molecule) {
			m.Bonds = append(m.Bonds, molgraph.Bond{A: "C2", B: "C1"})
		}, graph.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := ethanol()
			tc.edit(m)
			require.ErrorIs(t, m.Validate(), tc.want)
		})
	}
}

// TestBondOrder_Text covers names, numbers and bad input.
func TestBondOrder_Text(t *testing.T) {
	var o molgraph.BondOrder
	require.NoError(t, o.UnmarshalText([]byte("Aromatic")))
	assert.Equal(t, molgraph.Aromatic, o)
	require.NoError(t, o.UnmarshalText([]byte("2")))
	assert.Equal(t, molgraph.Double, o)
	require.ErrorIs(t, o.UnmarshalText([]byte("quadruple")), molgraph.ErrBadBondOrder)
	require.ErrorIs(t, o.UnmarshalText([]byte("7")), molgraph.ErrBadBondOrder)

	b, err := molgraph.Triple.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "triple", string(b))
	_, err = molgraph.BondOrder(9).MarshalText()
	require.ErrorIs(t, err, molgraph.ErrBadBondOrder)
	assert.Equal(t, "BondOrder(9)", molgraph.BondOrder(9).String())
}

// TestComparators checks wildcards and type mismatches.
func TestComparators(t *testing.T) {
	ec := molgraph.ElementComparator
	assert.True(t, ec.Compatible(molgraph.Element("C"), molgraph.Element("C")))
	assert.False(t, ec.Compatible(molgraph.Element("C"), molgraph.Element("N")))
	assert.True(t, ec.Compatible(molgraph.WildcardElement, molgraph.Element("N")))
	assert.False(t, ec.Compatible(molgraph.Element("N"), molgraph.WildcardElement), "wildcard is query-only")
	assert.False(t, ec.Compatible("C", molgraph.Element("C")), "plain strings are not elements")

	bc := molgraph.BondOrderComparator
	assert.True(t, bc.Compatible(molgraph.AnyOrder, molgraph.Triple))
	assert.True(t, bc.Compatible(molgraph.Double, molgraph.Double))
	assert.False(t, bc.Compatible(molgraph.Double, molgraph.Single))
	assert.False(t, bc.Compatible(nil, molgraph.Single))
}

// TestFragmentMatch finds a C-O fragment in both molecules, distinguishing
// the bond orders.
func TestFragmentMatch(t *testing.T) {
	carbonyl := &molgraph.Molecule{
		Name:  "carbonyl",
		Atoms: []molgraph.Atom{{Name: "C", Element: "C"}, {Name: "O", Element: "O"}},
		Bonds: []molgraph.Bond{{A: "C", B: "O", Order: molgraph.Double}},
	}
	anyCO := &molgraph.Molecule{
		Name:  "any C-O",
		Atoms: []molgraph.Atom{{Name: "X", Element: molgraph.WildcardElement}, {Name: "O", Element: "O"}},
		Bonds: []molgraph.Bond{{A: "X", B: "O", Order: molgraph.AnyOrder}},
	}

	find := func(q, tg *molgraph.Molecule) ([]molgraph.AtomPair, bool) {
		qg, err := q.Graph()
		require.NoError(t, err)
		tgg, err := tg.Graph()
		require.NoError(t, err)
		root, err := vf2.NewSubState(qg, tgg, true, molgraph.StateOptions()...)
		require.NoError(t, err)
		defer root.Release()

		m, ok := vf2.Match(root)
		if !ok {
			return nil, false
		}
		pairs, err := molgraph.Bijection(q, tg, m)
		require.NoError(t, err)
		return pairs, true
	}

	_, ok := find(carbonyl, ethanol())
	assert.False(t, ok, "ethanol has no C=O")

	pairs, ok := find(carbonyl, acetaldehyde())
	require.True(t, ok)
	assert.Equal(t, []molgraph.AtomPair{
		{Query: carbonyl.Atoms[0], Target: molgraph.Atom{Name: "Ca", Element: "C"}},
		{Query: carbonyl.Atoms[1], Target: molgraph.Atom{Name: "O1", Element: "O"}},
	}, pairs)

	pairs, ok = find(anyCO, ethanol())
	require.True(t, ok)
	assert.Equal(t, "C2", pairs[0].Target.Name)
}

// TestBijection_Errors rejects mappings that do not fit.
func TestBijection_Errors(t *testing.T) {
	q, tg := ethanol(), acetaldehyde()
	_, err := molgraph.Bijection(q, tg, vf2.Mapping{{Query: 3, Target: 0}})
	require.ErrorIs(t, err, molgraph.ErrMappingMismatch)
	_, err = molgraph.Bijection(q, tg, vf2.Mapping{{Query: 0, Target: 1}, {Query: 1, Target: 1}})
	require.ErrorIs(t, err, molgraph.ErrMappingMismatch)

	pairs, err := molgraph.Bijection(q, tg, nil)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
