// SPDX-License-Identifier: MIT
//
// impl_extract.go: ExtractSubgraph and IsConnected.
//
// Node sets are roaring bitmaps: membership tests during the induced edge
// walk are O(1) and the growth frontier supports uniform random picks via
// Select without a parallel slice.

package builder

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/dstoeckel/ball/graph"
)

const methodExtractSubgraph = "ExtractSubgraph"

// ExtractSubgraph picks `nodes` random nodes of g and returns the subgraph they
// induce, renumbered in ascending original id, together with picked where
// picked[i] is the original id of subgraph node i. Attributes are copied.
//
// With connected the selection grows from a random seed node through random
// frontier nodes (edges followed in both directions), so the result is weakly
// connected; ErrConstructFailed is returned if the seed's component is
// smaller than requested.
//
// Errors: ErrTooFewNodes, ErrTooManyNodes, ErrNeedRandSource, ErrConstructFailed.
// Complexity: O(V + E) bitmap operations.
func ExtractSubgraph(g *graph.Graph, nodes int, connected bool, opts ...Option) (*graph.Graph, []graph.NodeID, error) {
	cfg := newBuilderConfig(opts...)
	n := g.NodeCount()
	if nodes < 1 {
		return nil, nil, tooFew(methodExtractSubgraph, "nodes", nodes, 1)
	}
	if nodes > n {
		return nil, nil, fmt.Errorf("%s: nodes=%d > %d: %w", methodExtractSubgraph, nodes, n, ErrTooManyNodes)
	}
	if cfg.rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodExtractSubgraph, ErrNeedRandSource)
	}

	selected := roaring.New()
	if connected {
		if err := growConnected(g, cfg, nodes, selected); err != nil {
			return nil, nil, err
		}
	} else {
		for _, v := range cfg.rng.Perm(n)[:nodes] {
			selected.Add(uint32(v))
		}
	}

	ids := selected.ToArray()
	picked := make([]graph.NodeID, len(ids))
	index := make(map[graph.NodeID]graph.NodeID, len(ids))
	for i, v := range ids {
		picked[i] = graph.NodeID(v)
		index[graph.NodeID(v)] = graph.NodeID(i)
	}

	gopts := []graph.Option{graph.WithDirected(g.Directed())}
	if g.Looped() {
		gopts = append(gopts, graph.WithLoops())
	}
	h := graph.New(gopts...)
	for _, u := range picked {
		h.AddNode(g.NodeAttr(u))
	}
	for _, u := range picked {
		for _, e := range g.OutEdges(u) {
			if !selected.Contains(uint32(e.Node)) {
				continue
			}
			if !g.Directed() && e.Node < u {
				continue
			}
			if err := h.AddEdge(index[u], index[e.Node], e.Attr); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", methodExtractSubgraph, err)
			}
		}
	}

	return h, picked, nil
}

// growConnected fills selected with `nodes` nodes reachable from a random seed.
func growConnected(g *graph.Graph, cfg builderConfig, nodes int, selected *roaring.Bitmap) error {
	frontier := roaring.New()
	visit := func(v graph.NodeID) {
		selected.Add(uint32(v))
		frontier.Remove(uint32(v))
		for _, e := range g.OutEdges(v) {
			if !selected.Contains(uint32(e.Node)) {
				frontier.Add(uint32(e.Node))
			}
		}
		for _, e := range g.InEdges(v) {
			if !selected.Contains(uint32(e.Node)) {
				frontier.Add(uint32(e.Node))
			}
		}
	}

	visit(graph.NodeID(cfg.rng.Intn(g.NodeCount())))
	for int(selected.GetCardinality()) < nodes {
		size := frontier.GetCardinality()
		if size == 0 {
			return fmt.Errorf("%s: component has %d nodes, want %d: %w",
				methodExtractSubgraph, selected.GetCardinality(), nodes, ErrConstructFailed)
		}
		v, err := frontier.Select(uint32(cfg.rng.Int63n(int64(size))))
		if err != nil {
			return fmt.Errorf("%s: %w", methodExtractSubgraph, err)
		}
		visit(graph.NodeID(v))
	}

	return nil
}

// IsConnected reports whether g is weakly connected. The empty graph is connected.
// Complexity: O(V + E).
func IsConnected(g graph.Accessor) bool {
	n := g.NodeCount()
	if n == 0 {
		return true
	}
	seen := roaring.New()
	seen.Add(0)
	stack := []graph.NodeID{0}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, list := range [2][]graph.Edge{g.OutEdges(v), g.InEdges(v)} {
			for _, e := range list {
				if seen.CheckedAdd(uint32(e.Node)) {
					stack = append(stack, e.Node)
				}
			}
		}
	}

	return int(seen.GetCardinality()) == n
}
