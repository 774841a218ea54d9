// SPDX-License-Identifier: MIT
//
// File: mcs.go
// Role: maximum common subgraph rules.
//
// MCS keeps no terminal sets. Instead each query node is stamped with depth+1
// once every target candidate for it has been tried at that depth; stamped
// nodes are skipped for the rest of that subtree. The arena watermark holds
// the best mapping size committed so far and bounds every branch.

package vf2

type mcsPolicy struct{}

func (mcsPolicy) kind() Kind { return KindMCS }

func (mcsPolicy) goal(s *State) bool {
	return s.coreLen == s.a.n1 || s.coreLen == s.a.n2
}

// dead: the query side is used up, or even pairing every remaining query
// node cannot beat the watermark.
func (mcsPolicy) dead(s *State) bool {
	a := s.a
	free1 := a.n1 - s.coreLen - s.fr.exhausted
	free2 := a.n2 - s.coreLen
	if free1 <= 0 {
		return true
	}

	return s.coreLen+min(free1, free2) <= a.longest
}

func (mcsPolicy) feasible(s *State, n1, n2 NodeID) bool {
	a := s.a
	if !a.nodeCmp.Compatible(a.q.NodeAttr(n1), a.t.NodeAttr(n2)) {
		return false
	}
	if !loopsAgree(a, n1, n2, true) {
		return false
	}
	var la lookahead

	return walkQuery(a, n1, n2, &la) && walkTarget(a, n1, n2, &la, true)
}

func (mcsPolicy) commit(s *State, _, _ NodeID) {
	if s.coreLen > s.a.longest {
		s.a.longest = s.coreLen
	}
}

// undo clears the exhaustion stamps written below this state.
func (mcsPolicy) undo(s *State, _, _ NodeID) {
	if s.fr.exhausted == s.saved.exhausted {
		return
	}
	a, d := s.a, int32(s.coreLen+1)
	for i, st := range a.exhausted {
		if st >= d {
			a.exhausted[i] = 0
		}
	}
}

func (mcsPolicy) exhaust(s *State, n1 NodeID) {
	s.a.exhausted[n1] = int32(s.coreLen + 1)
	s.fr.exhausted++
}

func (mcsPolicy) pivots() bool         { return false }
func (mcsPolicy) tracksFrontier() bool { return false }
