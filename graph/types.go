// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID, Edge, Accessor contract, Graph storage, options and sentinel errors.

package graph

import (
	"errors"
	"math"
)

// NodeID identifies a node inside one graph. Valid ids are 0..NodeCount()-1.
type NodeID int32

// NullNode marks "no node" (an unmapped slot, or a restart position).
const NullNode NodeID = -1

// MaxNodes is the largest node count a NodeID can address.
const MaxNodes = math.MaxInt32

// Sentinel errors for graph construction.
var (
	// ErrNodeOutOfRange indicates a node id outside 0..n-1.
	ErrNodeOutOfRange = errors.New("graph: node out of range")

	// ErrLoopNotAllowed indicates a self-loop on a graph built without WithLoops.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same endpoints.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrBadPermutation indicates Permute received a slice that is not a permutation of 0..n-1.
	ErrBadPermutation = errors.New("graph: invalid permutation")
)

// Edge is one adjacency entry: the node on the other end and the edge attribute.
type Edge struct {
	// Node is the opposite endpoint (target for OutEdges, source for InEdges).
	Node NodeID

	// Attr is the opaque edge attribute.
	Attr any
}

// Accessor is the read-only view of a graph required by the matcher.
// Implementations must stay immutable while a search runs over them.
type Accessor interface {
	NodeCount() int
	OutEdges(n NodeID) []Edge
	InEdges(n NodeID) []Edge
	EdgeBetween(a, b NodeID) (any, bool)
	NodeAttr(n NodeID) any
}

// Option configures a Graph before the first node is added.
type Option func(g *Graph)

// WithDirected sets the orientation of all edges (true = directed).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops.
func WithLoops() Option {
	return func(g *Graph) { g.loops = true }
}

// edgeKey packs an ordered endpoint pair into one map key.
type edgeKey uint64

func keyOf(a, b NodeID) edgeKey {
	return edgeKey(uint64(uint32(a))<<32 | uint64(uint32(b)))
}

// Graph is a dense attributed graph with integer node ids.
//
// Adjacency is stored twice: as ordered edge lists per node (deterministic
// iteration in insertion order) and as a map keyed by the endpoint pair
// (O(1) EdgeBetween). Undirected edges are mirrored in both.
type Graph struct {
	directed bool
	loops    bool

	attrs []any    // node id → attribute
	out   [][]Edge // node id → outgoing (or incident, if undirected) edges
	in    [][]Edge // node id → incoming edges; unused when undirected

	edges     map[edgeKey]any // (from,to) → attribute; mirrored when undirected
	edgeCount int             // logical edges (a mirrored pair counts once)
}

// Stats is a snapshot of graph size and configuration.
type Stats struct {
	Nodes    int
	Edges    int
	Directed bool
	Loops    bool
}

// New creates an empty Graph. By default it is undirected without self-loops.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{edges: make(map[edgeKey]any)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
