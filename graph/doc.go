// SPDX-License-Identifier: MIT

// Package graph defines the graph accessor contract consumed by the vf2 matcher
// and a dense, attributed graph implementation that satisfies it.
//
// Nodes are dense integer ids 0..n-1 (NodeID). Every node and every edge
// carries an opaque attribute (any) that is only ever interpreted by a
// Comparator supplied by the caller.
//
// Accessor contract:
//
//	NodeCount() int                       // n
//	OutEdges(n NodeID) []Edge             // edges n→e.Node
//	InEdges(n NodeID) []Edge              // edges e.Node→n
//	EdgeBetween(a, b NodeID) (any, bool)  // attribute of a→b
//	NodeAttr(n NodeID) any
//
// For undirected graphs OutEdges and InEdges both enumerate every incident
// edge and EdgeBetween is symmetric. Self-loops appear once.
//
// Graph:
//
//	g := graph.New(graph.WithDirected(false))
//	c := g.AddNode("C")
//	o := g.AddNode("O")
//	_ = g.AddEdge(c, o, 2)
//
// Configuration Options (Option):
//
//	– WithDirected(bool)  default orientation of edges (undirected by default)
//	– WithLoops()         permit self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Once built it is only read,
//	and any number of goroutines may run searches over it at the same time.
//
// Errors:
//
//	ErrNodeOutOfRange   – node id outside 0..n-1
//	ErrLoopNotAllowed   – self-loop when loops are disabled
//	ErrDuplicateEdge    – a second edge between the same ordered endpoints
//	ErrBadPermutation   – Permute received a slice that is not a permutation
package graph
