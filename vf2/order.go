// SPDX-License-Identifier: MIT
//
// File: order.go
// Role: query node ordering. Rare (out-degree, in-degree) profiles are tried
// first, then higher combined degree.

package vf2

import (
	"cmp"
	"iter"
	"slices"

	"github.com/dstoeckel/ball/graph"
)

// Ordering is a permutation of the node ids of one graph together with its
// inverse. The zero value is an empty ordering.
type Ordering struct {
	nodes []NodeID
	pos   []int32
}

// IdentityOrdering returns 0..n-1 in ascending order.
func IdentityOrdering(n int) Ordering {
	o := Ordering{nodes: make([]NodeID, n), pos: make([]int32, n)}
	for i := range o.nodes {
		o.nodes[i] = NodeID(i)
		o.pos[i] = int32(i)
	}

	return o
}

// SortNodesByFrequency orders the nodes of g so that nodes whose
// (out-degree, in-degree) profile is shared by fewer nodes come first.
// Within equal frequency, higher combined degree comes first; remaining ties
// keep profiles contiguous and fall back to ascending id.
//
// The result is deterministic for a fixed graph.
// Complexity: O(V log V + E) for list-backed accessors.
func SortNodesByFrequency(g graph.Accessor) Ordering {
	n := g.NodeCount()

	type profile struct{ out, in int }
	type info struct {
		id   NodeID
		prof profile
		freq int
	}

	infos := make([]info, n)
	freq := make(map[profile]int)
	for i := range infos {
		id := NodeID(i)
		p := profile{out: len(g.OutEdges(id)), in: len(g.InEdges(id))}
		infos[i] = info{id: id, prof: p}
		freq[p]++
	}
	for i := range infos {
		infos[i].freq = freq[infos[i].prof]
	}

	slices.SortStableFunc(infos, func(a, b info) int {
		return cmp.Or(
			cmp.Compare(a.freq, b.freq),
			cmp.Compare(b.prof.out+b.prof.in, a.prof.out+a.prof.in),
			cmp.Compare(b.prof.out, a.prof.out),
			cmp.Compare(b.prof.in, a.prof.in),
			cmp.Compare(a.id, b.id),
		)
	})

	o := Ordering{nodes: make([]NodeID, n), pos: make([]int32, n)}
	for i, in := range infos {
		o.nodes[i] = in.id
		o.pos[in.id] = int32(i)
	}

	return o
}

// Len returns the number of nodes.
func (o Ordering) Len() int { return len(o.nodes) }

// At returns the node at position i.
func (o Ordering) At(i int) NodeID { return o.nodes[i] }

// Position returns the position of node n.
func (o Ordering) Position(n NodeID) int { return int(o.pos[n]) }

// Nodes returns a copy of the ordered node ids.
func (o Ordering) Nodes() []NodeID { return slices.Clone(o.nodes) }

// All yields (position, node) from the start; each call restarts.
func (o Ordering) All() iter.Seq2[int, NodeID] {
	return func(yield func(int, NodeID) bool) {
		for i, n := range o.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}
