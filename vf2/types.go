// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: pair/mapping value types, search kinds, state options and sentinel errors.

package vf2

import (
	"errors"
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

// NodeID is the node id type of the matched graphs.
type NodeID = graph.NodeID

// NullNode marks an unmapped slot.
const NullNode = graph.NullNode

// MaxNodes is the largest graph the arena can address.
const MaxNodes = graph.MaxNodes

// Pair is one (query, target) node correspondence.
type Pair struct {
	Query  NodeID
	Target NodeID
}

// NullPair restarts NextPair enumeration.
var NullPair = Pair{Query: NullNode, Target: NullNode}

// String renders the pair as "q→t".
func (p Pair) String() string { return fmt.Sprintf("%d→%d", p.Query, p.Target) }

// Mapping is a set of pairs ordered by ascending query id.
type Mapping []Pair

// Target returns the image of query node q, or NullNode.
func (m Mapping) Target(q NodeID) NodeID {
	for _, p := range m {
		if p.Query == q {
			return p.Target
		}
	}

	return NullNode
}

// Kind selects the matching semantics of a state.
type Kind uint8

const (
	// KindIso is full graph isomorphism.
	KindIso Kind = iota + 1
	// KindSub is subgraph monomorphism (induced with WithInduced).
	KindSub
	// KindMCS is maximum common (induced) subgraph.
	KindMCS
)

// String returns the CLI name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIso:
		return "iso"
	case KindSub:
		return "sub"
	case KindMCS:
		return "mcs"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps "iso", "sub" or "mcs" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "iso":
		return KindIso, nil
	case "sub":
		return KindSub, nil
	case "mcs":
		return KindMCS, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Sentinel errors.
var (
	// ErrGraphTooLarge indicates a node count the arena cannot address.
	ErrGraphTooLarge = errors.New("vf2: graph too large")

	// ErrOutOfMemory indicates the arena buffers could not be allocated.
	ErrOutOfMemory = errors.New("vf2: out of memory")

	// ErrNilGraph indicates a nil query or target accessor.
	ErrNilGraph = errors.New("vf2: nil graph")

	// ErrUnknownKind indicates an unsupported Kind.
	ErrUnknownKind = errors.New("vf2: unknown match kind")

	// ErrPendingConsumed is the panic value of a second AddPair on one Pending.
	ErrPendingConsumed = errors.New("vf2: pending state already committed")

	// ErrStaleState is the panic value when a state is committed or undone
	// out of depth-first order.
	ErrStaleState = errors.New("vf2: state is not at the top of the search stack")

	// ErrAlreadyMapped is the panic value of AddPair on a mapped or invalid node.
	ErrAlreadyMapped = errors.New("vf2: node already mapped")

	// ErrReleased is the panic value of using a state whose arena was released.
	ErrReleased = errors.New("vf2: arena released")

	// ErrNotRoot is the panic value of Release on a non-root state.
	ErrNotRoot = errors.New("vf2: release of non-root state")
)

// stateConfig holds StateOption results.
type stateConfig struct {
	nodeCmp graph.Comparator
	edgeCmp graph.Comparator
	induced bool
}

// StateOption configures a root state.
type StateOption func(*stateConfig)

// WithNodeComparator sets the node attribute comparator (default graph.AnyAttrs).
// Panics if c is nil.
func WithNodeComparator(c graph.Comparator) StateOption {
	if c == nil {
		panic("vf2: WithNodeComparator(nil)")
	}

	return func(cfg *stateConfig) { cfg.nodeCmp = c }
}

// WithEdgeComparator sets the edge attribute comparator (default graph.AnyAttrs).
// Panics if c is nil.
func WithEdgeComparator(c graph.Comparator) StateOption {
	if c == nil {
		panic("vf2: WithEdgeComparator(nil)")
	}

	return func(cfg *stateConfig) { cfg.edgeCmp = c }
}

// WithInduced makes KindSub an induced-subgraph search: target edges between
// mapped nodes must also exist in the query. Ignored by the other kinds.
func WithInduced() StateOption {
	return func(cfg *stateConfig) { cfg.induced = true }
}
