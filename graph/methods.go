// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Graph construction (nodes, edges, attributes), queries and the
// Accessor implementation consumed by the matcher.
//
// Adjacency lists keep insertion order so every traversal over a Graph is
// deterministic. The edges map answers EdgeBetween in O(1).

package graph

import (
	"fmt"
)

// AddNode appends a node carrying attr and returns its id.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(attr any) NodeID {
	id := NodeID(len(g.attrs))
	g.attrs = append(g.attrs, attr)
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return id
}

// AddNodes appends k nodes with nil attributes and returns the id of the first.
// For k <= 0 it returns the id the next node would get and adds nothing.
// Complexity: O(k).
func (g *Graph) AddNodes(k int) NodeID {
	first := NodeID(len(g.attrs))
	for i := 0; i < k; i++ {
		g.AddNode(nil)
	}

	return first
}

// SetNodeAttr replaces the attribute of node n.
// Returns ErrNodeOutOfRange if n is not a node of g.
func (g *Graph) SetNodeAttr(n NodeID, attr any) error {
	if !g.valid(n) {
		return fmt.Errorf("SetNodeAttr(%d): %w", n, ErrNodeOutOfRange)
	}
	g.attrs[n] = attr

	return nil
}

// AddEdge inserts the edge a→b (or a–b when undirected) with attribute attr.
//
// Returns ErrNodeOutOfRange, ErrLoopNotAllowed or ErrDuplicateEdge.
// An undirected edge is stored once in each endpoint's list; a self-loop once.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b NodeID, attr any) error {
	// 1) Endpoint validation
	if !g.valid(a) || !g.valid(b) {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrNodeOutOfRange)
	}
	// 2) Loop constraint
	if a == b && !g.loops {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}
	// 3) Simple graph: at most one edge per ordered pair
	if _, ok := g.edges[keyOf(a, b)]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrDuplicateEdge)
	}

	g.edges[keyOf(a, b)] = attr
	g.out[a] = append(g.out[a], Edge{Node: b, Attr: attr})
	switch {
	case g.directed:
		g.in[b] = append(g.in[b], Edge{Node: a, Attr: attr})
	case a != b:
		// mirror for undirected
		g.edges[keyOf(b, a)] = attr
		g.out[b] = append(g.out[b], Edge{Node: a, Attr: attr})
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the edge a→b exists (symmetric when undirected).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b NodeID) bool {
	_, ok := g.edges[keyOf(a, b)]

	return ok
}

// Degree returns the in- and out-degree of n. For undirected graphs both
// values equal the number of incident edges.
// Complexity: O(1).
func (g *Graph) Degree(n NodeID) (in, out int, err error) {
	if !g.valid(n) {
		return 0, 0, fmt.Errorf("Degree(%d): %w", n, ErrNodeOutOfRange)
	}
	out = len(g.out[n])
	if g.directed {
		return len(g.in[n]), out, nil
	}

	return out, out, nil
}

// Directed reports whether edges are oriented.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.loops }

// Stats returns node/edge counts and configuration flags.
func (g *Graph) Stats() Stats {
	return Stats{
		Nodes:    len(g.attrs),
		Edges:    g.edgeCount,
		Directed: g.directed,
		Loops:    g.loops,
	}
}

// Clone returns a deep copy of the structure. Attributes are copied by value
// (the any values themselves are shared).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed:  g.directed,
		loops:     g.loops,
		attrs:     append([]any(nil), g.attrs...),
		out:       cloneLists(g.out),
		in:        cloneLists(g.in),
		edges:     make(map[edgeKey]any, len(g.edges)),
		edgeCount: g.edgeCount,
	}
	for k, v := range g.edges {
		c.edges[k] = v
	}

	return c
}

// Permute returns a relabelled copy in which node i of g becomes node perm[i].
// Edges are inserted in the order of g's adjacency walk, so the result is
// deterministic for a given permutation.
//
// Returns ErrBadPermutation if perm is not a permutation of 0..n-1.
// Complexity: O(V + E).
func (g *Graph) Permute(perm []NodeID) (*Graph, error) {
	n := len(g.attrs)
	if len(perm) != n {
		return nil, fmt.Errorf("Permute: len %d for %d nodes: %w", len(perm), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || int(p) >= n || seen[p] {
			return nil, fmt.Errorf("Permute: entry %d: %w", p, ErrBadPermutation)
		}
		seen[p] = true
	}

	opts := []Option{WithDirected(g.directed)}
	if g.loops {
		opts = append(opts, WithLoops())
	}
	h := New(opts...)
	h.AddNodes(n)
	for i, attr := range g.attrs {
		h.attrs[perm[i]] = attr
	}
	for u := range g.out {
		for _, e := range g.out[u] {
			// undirected edges appear in both lists; insert once
			if !g.directed && e.Node < NodeID(u) {
				continue
			}
			if err := h.AddEdge(perm[u], perm[e.Node], e.Attr); err != nil {
				return nil, fmt.Errorf("Permute: %w", err)
			}
		}
	}

	return h, nil
}

// NodeCount implements Accessor.
func (g *Graph) NodeCount() int { return len(g.attrs) }

// OutEdges implements Accessor. The returned slice must not be modified.
func (g *Graph) OutEdges(n NodeID) []Edge { return g.out[n] }

// InEdges implements Accessor. For undirected graphs it is the same list as OutEdges.
func (g *Graph) InEdges(n NodeID) []Edge {
	if g.directed {
		return g.in[n]
	}

	return g.out[n]
}

// EdgeBetween implements Accessor.
func (g *Graph) EdgeBetween(a, b NodeID) (any, bool) {
	attr, ok := g.edges[keyOf(a, b)]

	return attr, ok
}

// NodeAttr implements Accessor.
func (g *Graph) NodeAttr(n NodeID) any { return g.attrs[n] }

// valid reports whether n addresses an existing node.
func (g *Graph) valid(n NodeID) bool {
	return n >= 0 && int(n) < len(g.attrs)
}

func cloneLists(src [][]Edge) [][]Edge {
	if src == nil {
		return nil
	}
	dst := make([][]Edge, len(src))
	for i, l := range src {
		dst[i] = append([]Edge(nil), l...)
	}

	return dst
}

var _ Accessor = (*Graph)(nil)
