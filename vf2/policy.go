// SPDX-License-Identifier: MIT
//
// File: policy.go
// Role: the per-kind rules plugged into State, plus the edge walks and
// frontier bookkeeping shared by the isomorphism and subgraph kinds.

package vf2

import (
	"fmt"
)

// policy supplies the semantics of one matching kind.
type policy interface {
	kind() Kind
	goal(s *State) bool
	dead(s *State) bool
	feasible(s *State, n1, n2 NodeID) bool
	// commit runs after the core arrays hold (n1, n2) and coreLen is incremented.
	commit(s *State, n1, n2 NodeID)
	// undo runs before the core arrays are cleared, at the committed coreLen.
	undo(s *State, n1, n2 NodeID)
	// exhaust is called when NextPair moves past the last target of n1.
	exhaust(s *State, n1 NodeID)
	// pivots reports whether every goal maps every query node, so a driver
	// may branch on a single query node per level.
	pivots() bool
	// tracksFrontier reports whether NextPair prefers terminal-set candidates.
	tracksFrontier() bool
}

func policyFor(k Kind) (policy, error) {
	switch k {
	case KindIso:
		return isoPolicy{}, nil
	case KindSub:
		return subPolicy{}, nil
	case KindMCS:
		return mcsPolicy{}, nil
	}

	return nil, fmt.Errorf("policyFor(%s): %w", k, ErrUnknownKind)
}

// lookahead counts the unmapped neighbours of a candidate, per edge walked.
type lookahead struct {
	termin, termout int // neighbours already in the in/out terminal set
	fresh           int // neighbours in neither terminal set
	outFree, inFree int // unmapped neighbours via out/in edges
}

func (l *lookahead) add(in, out int32) {
	if in != 0 {
		l.termin++
	}
	if out != 0 {
		l.termout++
	}
	if in == 0 && out == 0 {
		l.fresh++
	}
}

// walkQuery checks that every query edge between n1 and a mapped node has a
// compatible image at n2, and counts n1's unmapped neighbours.
// Self-loops are left to loopsAgree.
func walkQuery(a *arena, n1, n2 NodeID, la *lookahead) bool {
	for _, e := range a.q.OutEdges(n1) {
		o := e.Node
		if o == n1 {
			continue
		}
		if m := a.core1[o]; m != NullNode {
			ta, ok := a.t.EdgeBetween(n2, m)
			if !ok || !a.edgeCmp.Compatible(e.Attr, ta) {
				return false
			}
			continue
		}
		la.add(a.in1[o], a.out1[o])
		la.outFree++
	}
	for _, e := range a.q.InEdges(n1) {
		o := e.Node
		if o == n1 {
			continue
		}
		if m := a.core1[o]; m != NullNode {
			ta, ok := a.t.EdgeBetween(m, n2)
			if !ok || !a.edgeCmp.Compatible(e.Attr, ta) {
				return false
			}
			continue
		}
		la.add(a.in1[o], a.out1[o])
		la.inFree++
	}

	return true
}

// walkTarget counts n2's unmapped neighbours and, with reverse set, checks
// that every target edge between n2 and a mapped node has a compatible
// preimage at n1.
func walkTarget(a *arena, n1, n2 NodeID, la *lookahead, reverse bool) bool {
	for _, e := range a.t.OutEdges(n2) {
		o := e.Node
		if o == n2 {
			continue
		}
		if m := a.core2[o]; m != NullNode {
			if reverse {
				qa, ok := a.q.EdgeBetween(n1, m)
				if !ok || !a.edgeCmp.Compatible(qa, e.Attr) {
					return false
				}
			}
			continue
		}
		la.add(a.in2[o], a.out2[o])
		la.outFree++
	}
	for _, e := range a.t.InEdges(n2) {
		o := e.Node
		if o == n2 {
			continue
		}
		if m := a.core2[o]; m != NullNode {
			if reverse {
				qa, ok := a.q.EdgeBetween(m, n1)
				if !ok || !a.edgeCmp.Compatible(qa, e.Attr) {
					return false
				}
			}
			continue
		}
		la.add(a.in2[o], a.out2[o])
		la.inFree++
	}

	return true
}

// loopsAgree compares self-loops on n1 and n2. A query loop always needs a
// compatible target loop; a target loop needs a query loop only if mutual.
func loopsAgree(a *arena, n1, n2 NodeID, mutual bool) bool {
	qa, qok := a.q.EdgeBetween(n1, n1)
	ta, tok := a.t.EdgeBetween(n2, n2)
	switch {
	case qok && tok:
		return a.edgeCmp.Compatible(qa, ta)
	case qok:
		return false
	case tok:
		return !mutual
	}

	return true
}

// enter stamps set[n] with depth d if unset and maintains the counts.
func enter(set, other []int32, n NodeID, d int32, setLen, bothLen *int) {
	if set[n] != 0 {
		return
	}
	set[n] = d
	*setLen++
	if other[n] != 0 {
		*bothLen++
	}
}

// leave clears set[n] if it was stamped at depth d.
func leave(set []int32, n NodeID, d int32) {
	if set[n] == d {
		set[n] = 0
	}
}

// commitFrontier adds n1, n2 and their neighbours to the terminal sets of
// their own graph.
func commitFrontier(s *State, n1, n2 NodeID) {
	a, f, d := s.a, &s.fr, int32(s.coreLen)

	enter(a.in1, a.out1, n1, d, &f.t1in, &f.t1both)
	enter(a.out1, a.in1, n1, d, &f.t1out, &f.t1both)
	for _, e := range a.q.InEdges(n1) {
		enter(a.in1, a.out1, e.Node, d, &f.t1in, &f.t1both)
	}
	for _, e := range a.q.OutEdges(n1) {
		enter(a.out1, a.in1, e.Node, d, &f.t1out, &f.t1both)
	}

	enter(a.in2, a.out2, n2, d, &f.t2in, &f.t2both)
	enter(a.out2, a.in2, n2, d, &f.t2out, &f.t2both)
	for _, e := range a.t.InEdges(n2) {
		enter(a.in2, a.out2, e.Node, d, &f.t2in, &f.t2both)
	}
	for _, e := range a.t.OutEdges(n2) {
		enter(a.out2, a.in2, e.Node, d, &f.t2out, &f.t2both)
	}
}

// undoFrontier clears the stamps commitFrontier wrote. Counts are restored
// by the caller.
func undoFrontier(s *State, n1, n2 NodeID) {
	a, d := s.a, int32(s.coreLen)

	for _, e := range a.q.InEdges(n1) {
		leave(a.in1, e.Node, d)
	}
	for _, e := range a.q.OutEdges(n1) {
		leave(a.out1, e.Node, d)
	}
	leave(a.in1, n1, d)
	leave(a.out1, n1, d)

	for _, e := range a.t.InEdges(n2) {
		leave(a.in2, e.Node, d)
	}
	for _, e := range a.t.OutEdges(n2) {
		leave(a.out2, e.Node, d)
	}
	leave(a.in2, n2, d)
	leave(a.out2, n2, d)
}

// isoPolicy: full isomorphism. Frontiers must match exactly.
type isoPolicy struct{}

func (isoPolicy) kind() Kind { return KindIso }

func (isoPolicy) goal(s *State) bool {
	return s.coreLen == s.a.n1 && s.a.n1 == s.a.n2
}

func (isoPolicy) dead(s *State) bool {
	f := s.fr
	return s.a.n1 != s.a.n2 ||
		f.t1both != f.t2both ||
		f.t1out != f.t2out ||
		f.t1in != f.t2in
}

func (isoPolicy) feasible(s *State, n1, n2 NodeID) bool {
	a := s.a
	if !a.nodeCmp.Compatible(a.q.NodeAttr(n1), a.t.NodeAttr(n2)) {
		return false
	}
	if !loopsAgree(a, n1, n2, true) {
		return false
	}
	var q, t lookahead
	if !walkQuery(a, n1, n2, &q) || !walkTarget(a, n1, n2, &t, true) {
		return false
	}

	return q.termin == t.termin && q.termout == t.termout && q.fresh == t.fresh
}

func (isoPolicy) commit(s *State, n1, n2 NodeID) { commitFrontier(s, n1, n2) }
func (isoPolicy) undo(s *State, n1, n2 NodeID)   { undoFrontier(s, n1, n2) }
func (isoPolicy) exhaust(*State, NodeID)         {}
func (isoPolicy) pivots() bool                   { return true }
func (isoPolicy) tracksFrontier() bool           { return true }

// subPolicy: the query embeds into the target; the target may carry extra
// nodes and, unless induced, extra edges among mapped nodes.
type subPolicy struct{}

func (subPolicy) kind() Kind { return KindSub }

func (subPolicy) goal(s *State) bool { return s.coreLen == s.a.n1 }

func (subPolicy) dead(s *State) bool {
	f := s.fr
	return s.a.n1 > s.a.n2 ||
		f.t1both > f.t2both ||
		f.t1out > f.t2out ||
		f.t1in > f.t2in
}

func (subPolicy) feasible(s *State, n1, n2 NodeID) bool {
	a := s.a
	if !a.nodeCmp.Compatible(a.q.NodeAttr(n1), a.t.NodeAttr(n2)) {
		return false
	}
	if !loopsAgree(a, n1, n2, a.induced) {
		return false
	}
	var q, t lookahead
	if !walkQuery(a, n1, n2, &q) || !walkTarget(a, n1, n2, &t, a.induced) {
		return false
	}
	if q.termin > t.termin || q.termout > t.termout {
		return false
	}
	if a.induced {
		return q.fresh <= t.fresh
	}
	// a non-terminal query neighbour may map onto a terminal target node,
	// so only the per-direction totals bound it
	return q.outFree <= t.outFree && q.inFree <= t.inFree
}

func (subPolicy) commit(s *State, n1, n2 NodeID) { commitFrontier(s, n1, n2) }
func (subPolicy) undo(s *State, n1, n2 NodeID)   { undoFrontier(s, n1, n2) }
func (subPolicy) exhaust(*State, NodeID)         {}
func (subPolicy) pivots() bool                   { return true }
func (subPolicy) tracksFrontier() bool           { return true }
