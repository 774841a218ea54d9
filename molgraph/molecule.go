// SPDX-License-Identifier: MIT
//
// File: molecule.go
// Role: Molecule → graph.Graph conversion and atom lookup.

package molgraph

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

// Graph builds an undirected graph with node i = Atoms[i] (attribute
// Element) and one edge per bond (attribute BondOrder).
//
// Returns ErrDuplicateAtom, ErrEmptyElement, ErrUnknownAtom, ErrSelfBond, or
// graph.ErrDuplicateEdge for a repeated bond.
// Complexity: O(atoms + bonds).
func (m *Molecule) Graph() (*graph.Graph, error) {
	index, err := m.index()
	if err != nil {
		return nil, err
	}

	g := graph.New()
	for _, a := range m.Atoms {
		g.AddNode(a.Element)
	}
	for i, b := range m.Bonds {
		u, ok := index[b.A]
		if !ok {
			return nil, fmt.Errorf("Graph(%s): bond %d: %q: %w", m.Name, i, b.A, ErrUnknownAtom)
		}
		v, ok := index[b.B]
		if !ok {
			return nil, fmt.Errorf("Graph(%s): bond %d: %q: %w", m.Name, i, b.B, ErrUnknownAtom)
		}
		if u == v {
			return nil, fmt.Errorf("Graph(%s): bond %d: %q: %w", m.Name, i, b.A, ErrSelfBond)
		}
		if err := g.AddEdge(u, v, b.Order); err != nil {
			return nil, fmt.Errorf("Graph(%s): bond %d %s-%s: %w", m.Name, i, b.A, b.B, err)
		}
	}

	return g, nil
}

// Validate reports the first structural problem Graph would reject.
func (m *Molecule) Validate() error {
	_, err := m.Graph()

	return err
}

// AtomIndex returns the node id of the named atom.
func (m *Molecule) AtomIndex(name string) (graph.NodeID, bool) {
	for i, a := range m.Atoms {
		if a.Name == name {
			return graph.NodeID(i), true
		}
	}

	return graph.NullNode, false
}

func (m *Molecule) index() (map[string]graph.NodeID, error) {
	index := make(map[string]graph.NodeID, len(m.Atoms))
	for i, a := range m.Atoms {
		if a.Element == "" {
			return nil, fmt.Errorf("Graph(%s): atom %q: %w", m.Name, a.Name, ErrEmptyElement)
		}
		if _, dup := index[a.Name]; dup {
			return nil, fmt.Errorf("Graph(%s): atom %q: %w", m.Name, a.Name, ErrDuplicateAtom)
		}
		index[a.Name] = graph.NodeID(i)
	}

	return index, nil
}
