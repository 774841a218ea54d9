// SPDX-License-Identifier: MIT

// Package molgraph bridges a minimal atom/bond model onto graph.Graph so
// molecules and fragments can be matched with package vf2.
//
// Atoms become nodes carrying their Element; bonds become undirected edges
// carrying their BondOrder. ElementComparator and BondOrderComparator plug the
// chemistry into a search, with "*" and AnyOrder acting as query wildcards.
// Bijection turns a vf2.Mapping back into atom pairs.
//
//	q, _ := fragment.Graph()
//	t, _ := molecule.Graph()
//	root, _ := vf2.NewSubState(q, t, true, molgraph.StateOptions()...)
//	defer root.Release()
//	if m, ok := vf2.Match(root); ok {
//		pairs, _ := molgraph.Bijection(fragment, molecule, m)
//		...
//	}
//
// Errors:
//
//	ErrDuplicateAtom, ErrUnknownAtom, ErrEmptyElement, ErrSelfBond   Graph
//	ErrBadBondOrder                                                  BondOrder parsing
//	ErrMappingMismatch                                               Bijection
package molgraph
