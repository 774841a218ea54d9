// SPDX-License-Identifier: MIT

// Package vf2 implements the VF2 family of graph matching searches over any
// graph.Accessor: full isomorphism, subgraph monomorphism (optionally
// induced) and maximum common subgraph (MCS).
//
// A search is a depth-first walk over partial mappings. One State value is a
// node in that walk; it shares a single arena of mapping and frontier arrays
// with every other State of the same search, and undoes its own writes on
// Backtrack:
//
//	root, err := vf2.NewIsoState(query, target, true)
//	if err != nil { ... }
//	defer root.Release()
//	m, ok := vf2.Match(root)
//
// Search wraps construction and release:
//
//	err := vf2.Search(vf2.KindSub, query, target, true, nil, func(s *vf2.State) error {
//		n := vf2.MatchAll(s, func(m vf2.Mapping) bool { return false })
//		...
//	})
//
// Mutation protocol:
//
//	parent.Clone() returns a *Pending; Pending.AddPair commits one pair and
//	returns the committed child. A Pending can be consumed once. The child's
//	only mutating operation is Backtrack, which restores the shared arrays
//	bit-for-bit. Children are explored strictly one at a time.
//
// Drivers:
//
//	– Match     first goal state
//	– MatchAll  every goal state, via a Visitor that may stop the walk
//	– Maximize  largest mapping by branch-and-bound (MCS)
//
// Driver options (Option):
//
//	– WithLogger(*log.Logger)   debug logging of search start/finish
//	– WithHooks(Hooks)          per-step instrumentation (see Counters)
//	– WithPrune(func(*State) bool)  extra dead-state predicate (budgets, deadlines)
//
// Concurrency:
//
//	A State and its descendants must be driven by one goroutine. Independent
//	searches over the same immutable graphs may run in parallel.
//
// Errors:
//
//	ErrGraphTooLarge, ErrOutOfMemory   root construction (returned)
//	ErrNilGraph, ErrUnknownKind        root construction (returned)
//	ErrPendingConsumed, ErrStaleState,
//	ErrAlreadyMapped, ErrReleased,
//	ErrNotRoot                         protocol violations (panic)
package vf2
