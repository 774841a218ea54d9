// SPDX-License-Identifier: MIT
//
// File: compare.go
// Role: chemistry-aware comparators and the atom bijection.

package molgraph

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
	"github.com/dstoeckel/ball/vf2"
)

// ElementComparator matches equal elements; a query WildcardElement matches
// any target element.
var ElementComparator graph.Comparator = graph.CompareFunc(func(q, t any) bool {
	qe, ok := q.(Element)
	if !ok {
		return false
	}
	if qe == WildcardElement {
		return true
	}
	te, ok := t.(Element)

	return ok && qe == te
})

// BondOrderComparator matches equal orders; a query AnyOrder matches any
// target bond.
var BondOrderComparator graph.Comparator = graph.CompareFunc(func(q, t any) bool {
	qo, ok := q.(BondOrder)
	if !ok {
		return false
	}
	if qo == AnyOrder {
		return true
	}
	to, ok := t.(BondOrder)

	return ok && qo == to
})

// StateOptions returns the vf2 options that apply both comparators.
func StateOptions() []vf2.StateOption {
	return []vf2.StateOption{
		vf2.WithNodeComparator(ElementComparator),
		vf2.WithEdgeComparator(BondOrderComparator),
	}
}

// Bijection translates a mapping between query.Graph() and target.Graph()
// into atom pairs, in mapping order.
//
// Returns ErrMappingMismatch if a pair names a node outside either molecule
// or maps an atom twice.
func Bijection(query, target *Molecule, m vf2.Mapping) ([]AtomPair, error) {
	pairs := make([]AtomPair, 0, len(m))
	seenQ := make(map[vf2.NodeID]bool, len(m))
	seenT := make(map[vf2.NodeID]bool, len(m))
	for _, p := range m {
		if p.Query < 0 || int(p.Query) >= len(query.Atoms) ||
			p.Target < 0 || int(p.Target) >= len(target.Atoms) {
			return nil, fmt.Errorf("Bijection(%s, %s): pair %s out of range: %w",
				query.Name, target.Name, p, ErrMappingMismatch)
		}
		if seenQ[p.Query] || seenT[p.Target] {
			return nil, fmt.Errorf("Bijection(%s, %s): pair %s repeats an atom: %w",
				query.Name, target.Name, p, ErrMappingMismatch)
		}
		seenQ[p.Query], seenT[p.Target] = true, true
		pairs = append(pairs, AtomPair{Query: query.Atoms[p.Query], Target: target.Atoms[p.Target]})
	}

	return pairs, nil
}
