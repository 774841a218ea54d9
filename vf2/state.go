// SPDX-License-Identifier: MIT
//
// File: state.go
// Role: State (one node of the search tree), Pending (a not-yet-committed
// child) and the operations shared by every matching kind.
//
// A State is a small header (depth, frontier counts, the pair it added) over
// the shared arena. Clone is O(1); AddPair and Backtrack touch only the two
// added nodes and their neighbours.

package vf2

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

// frontier caches the sizes of the terminal sets. Mapped nodes are counted
// too (they carry both stamps), so a frontier is non-empty when its count
// exceeds coreLen.
type frontier struct {
	t1in, t1out, t1both int
	t2in, t2out, t2both int
	exhausted           int // MCS: exhausted query nodes
}

// State is one partial mapping in a search.
type State struct {
	a   *arena
	pol policy

	coreLen int
	added   NodeID // query node committed by this state, NullNode if none
	fr      frontier
	saved   frontier // fr before AddPair
	root    bool
}

// Pending is a cloned state that has not been committed yet.
// Its only operation is AddPair, which may be called once.
type Pending struct {
	s *State
}

// NewState builds the root state of a search of the given kind.
// With sortNodes the query is enumerated in SortNodesByFrequency order,
// otherwise by ascending id.
//
// Returns ErrNilGraph, ErrUnknownKind, ErrGraphTooLarge or ErrOutOfMemory.
// Complexity: O(V1 + V2) plus the ordering cost.
func NewState(kind Kind, q, t graph.Accessor, sortNodes bool, opts ...StateOption) (*State, error) {
	if q == nil || t == nil {
		return nil, fmt.Errorf("NewState(%s): %w", kind, ErrNilGraph)
	}
	pol, err := policyFor(kind)
	if err != nil {
		return nil, fmt.Errorf("NewState: %w", err)
	}
	if q.NodeCount() > MaxNodes || t.NodeCount() > MaxNodes {
		return nil, fmt.Errorf("NewState(%s): %w", kind, ErrGraphTooLarge)
	}

	cfg := stateConfig{nodeCmp: graph.AnyAttrs, edgeCmp: graph.AnyAttrs}
	for _, opt := range opts {
		opt(&cfg)
	}

	var ord Ordering
	if sortNodes {
		ord = SortNodesByFrequency(q)
	} else {
		ord = IdentityOrdering(q.NodeCount())
	}

	a, err := newArena(q, t, ord, cfg)
	if err != nil {
		return nil, fmt.Errorf("NewState(%s): %w", kind, err)
	}

	return &State{a: a, pol: pol, added: NullNode, root: true}, nil
}

// NewIsoState builds the root state of a full-isomorphism search.
func NewIsoState(q, t graph.Accessor, sortNodes bool, opts ...StateOption) (*State, error) {
	s, err := NewState(KindIso, q, t, sortNodes, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewIsoState: %w", err)
	}

	return s, nil
}

// NewSubState builds the root state of a subgraph monomorphism search
// (query embedded into target).
func NewSubState(q, t graph.Accessor, sortNodes bool, opts ...StateOption) (*State, error) {
	s, err := NewState(KindSub, q, t, sortNodes, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewSubState: %w", err)
	}

	return s, nil
}

// NewMCSState builds the root state of a maximum-common-subgraph search.
func NewMCSState(q, t graph.Accessor, sortNodes bool, opts ...StateOption) (*State, error) {
	s, err := NewState(KindMCS, q, t, sortNodes, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewMCSState: %w", err)
	}

	return s, nil
}

// Graphs returns the query and target graphs.
func (s *State) Graphs() (query, target graph.Accessor) { return s.a.q, s.a.t }

// Kind reports the matching semantics.
func (s *State) Kind() Kind { return s.pol.kind() }

// CoreLen returns the number of mapped pairs.
func (s *State) CoreLen() int { return s.coreLen }

// Depth returns the depth of the state in the search tree (equal to CoreLen).
func (s *State) Depth() int { return s.coreLen }

// LongestKnown returns the largest mapping size committed anywhere in this
// search so far. Only MCS searches prune on it.
func (s *State) LongestKnown() int { return s.a.longest }

// IsGoal reports whether the mapping is a complete solution.
func (s *State) IsGoal() bool { return s.pol.goal(s) }

// IsDead reports whether no descendant can reach a (better) solution.
func (s *State) IsDead() bool { return s.pol.dead(s) }

// CoreSet returns the current mapping ordered by query id.
// Complexity: O(V1).
func (s *State) CoreSet() Mapping {
	a := s.a
	a.checkLive()
	m := make(Mapping, 0, s.coreLen)
	for u, v := range a.core1 {
		if v != NullNode {
			m = append(m, Pair{Query: NodeID(u), Target: v})
		}
	}

	return m
}

// IsFeasible reports whether adding (n1, n2) keeps the mapping consistent.
// It never mutates shared state. Out-of-range or mapped nodes are infeasible.
func (s *State) IsFeasible(n1, n2 NodeID) bool {
	a := s.a
	a.checkLive()
	if n1 < 0 || int(n1) >= a.n1 || n2 < 0 || int(n2) >= a.n2 {
		return false
	}
	if a.core1[n1] != NullNode || a.core2[n2] != NullNode {
		return false
	}

	return s.pol.feasible(s, n1, n2)
}

// Clone returns an uncommitted child sharing the arena. Panics with
// ErrReleased after Release.
// Complexity: O(1).
func (s *State) Clone() *Pending {
	s.a.checkLive()
	c := *s
	c.added = NullNode
	c.saved = frontier{}
	c.root = false

	return &Pending{s: &c}
}

// Extend is Clone().AddPair(n1, n2).
func (s *State) Extend(n1, n2 NodeID) *State {
	return s.Clone().AddPair(n1, n2)
}

// AddPair commits (n1, n2) and returns the committed child.
//
// Panics with ErrPendingConsumed on a second call, ErrAlreadyMapped if either
// node is mapped or out of range, and ErrStaleState if a sibling or descendant
// is still committed.
// Complexity: O(deg(n1) + deg(n2)).
func (p *Pending) AddPair(n1, n2 NodeID) *State {
	if p.s == nil {
		panic(ErrPendingConsumed)
	}
	s := p.s
	p.s = nil

	a := s.a
	a.checkLive()
	if a.live != s.coreLen {
		panic(fmt.Errorf("AddPair(%d,%d) at depth %d, live depth %d: %w", n1, n2, s.coreLen, a.live, ErrStaleState))
	}
	if n1 < 0 || int(n1) >= a.n1 || n2 < 0 || int(n2) >= a.n2 ||
		a.core1[n1] != NullNode || a.core2[n2] != NullNode {
		panic(fmt.Errorf("AddPair(%d,%d): %w", n1, n2, ErrAlreadyMapped))
	}

	s.saved = s.fr
	s.coreLen++
	a.live++
	s.added = n1
	a.core1[n1] = n2
	a.core2[n2] = n1
	s.pol.commit(s, n1, n2)

	return s
}

// Backtrack undoes the pair added by AddPair, restoring every shared array
// to its previous contents. It is a no-op on a state that added nothing and
// idempotent afterwards.
//
// Panics with ErrStaleState if a descendant is still committed.
func (s *State) Backtrack() {
	if s.added == NullNode {
		return
	}
	a := s.a
	a.checkLive()
	if a.live != s.coreLen {
		panic(fmt.Errorf("Backtrack at depth %d, live depth %d: %w", s.coreLen, a.live, ErrStaleState))
	}

	n1 := s.added
	n2 := a.core1[n1]
	s.pol.undo(s, n1, n2)
	a.core1[n1] = NullNode
	a.core2[n2] = NullNode
	s.coreLen--
	a.live--
	s.fr = s.saved
	s.added = NullNode
}

// Release returns the arena buffers to the pool. Only a root may be released;
// every state of the search becomes unusable. Idempotent.
func (s *State) Release() {
	if !s.root {
		panic(ErrNotRoot)
	}
	s.a.release()
}

// NextPair returns the candidate pair following prev (NullPair restarts).
//
// Query nodes are enumerated frontier-first in ordering position, targets
// frontier-first by ascending id; together they cover every unmapped
// (n1, n2) pair exactly once. MCS states mark a query node exhausted when
// enumeration moves past its last target.
func (s *State) NextPair(prev Pair) (Pair, bool) {
	s.a.checkLive()
	c := s.class()

	n1 := prev.Query
	after := prev.Target
	if n1 == NullNode {
		n1 = s.nextQuery(NullNode, c)
		after = NullNode
	}
	for n1 != NullNode {
		n2 := s.nextTarget(after, c)
		if n2 != NullNode {
			return Pair{Query: n1, Target: n2}, true
		}
		if after == NullNode {
			// no unmapped target at all
			return NullPair, false
		}
		s.pol.exhaust(s, n1)
		n1 = s.nextQuery(n1, c)
		after = NullNode
	}

	return NullPair, false
}

// class is the terminal set candidates are drawn from first.
type class uint8

const (
	classFree class = iota
	classIn
	classOut
	classBoth
)

func (s *State) class() class {
	if !s.pol.tracksFrontier() {
		return classFree
	}
	cl, f := s.coreLen, s.fr
	switch {
	case f.t1both > cl && f.t2both > cl:
		return classBoth
	case f.t1out > cl && f.t2out > cl:
		return classOut
	case f.t1in > cl && f.t2in > cl:
		return classIn
	}

	return classFree
}

// rank is 0 for members of class c, 1 otherwise.
func rank(in, out []int32, n NodeID, c class) int {
	var member bool
	switch c {
	case classBoth:
		member = in[n] != 0 && out[n] != 0
	case classOut:
		member = out[n] != 0
	case classIn:
		member = in[n] != 0
	default:
		member = true
	}
	if member {
		return 0
	}

	return 1
}

// nextQuery returns the eligible query node after `after` in (rank, position) order.
func (s *State) nextQuery(after NodeID, c class) NodeID {
	a := s.a
	startRank, from := 0, 0
	if after != NullNode {
		startRank, from = rank(a.in1, a.out1, after, c), int(a.pos[after])+1
	}
	for rk := startRank; rk < 2; rk++ {
		for i := from; i < a.n1; i++ {
			u := a.order[i]
			if a.core1[u] == NullNode && a.exhausted[u] == 0 && rank(a.in1, a.out1, u, c) == rk {
				return u
			}
		}
		if c == classFree {
			break
		}
		from = 0
	}

	return NullNode
}

// nextTarget returns the unmapped target node after `after` in (rank, id) order.
func (s *State) nextTarget(after NodeID, c class) NodeID {
	a := s.a
	startRank, from := 0, 0
	if after != NullNode {
		startRank, from = rank(a.in2, a.out2, after, c), int(after)+1
	}
	for rk := startRank; rk < 2; rk++ {
		for v := from; v < a.n2; v++ {
			if a.core2[v] == NullNode && rank(a.in2, a.out2, NodeID(v), c) == rk {
				return NodeID(v)
			}
		}
		if c == classFree {
			break
		}
		from = 0
	}

	return NullNode
}
