// SPDX-License-Identifier: MIT
//
// impl_generate.go: Generate: a random graph plus a randomly relabelled
// isomorphic copy, the standard input for isomorphism tests and benchmarks.
//
// Model:
//   • With connected, a random spanning tree is laid first: nodes are visited
//     in random order and each one attaches to a random earlier node.
//   • Remaining edges are drawn uniformly among absent admissible pairs.
//   • perm is uniform; node i of g1 is node perm[i] of g2.

package builder

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

const methodGenerate = "Generate"

// Generate returns g1 with the requested node and edge counts, its isomorphic
// copy g2 and the permutation relating them. Graph orientation and loops come
// from WithGraphOptions; node and edge attributes from WithNodeAttr/WithEdgeAttr
// and travel with their nodes and edges into g2.
//
// Errors: ErrTooFewNodes (nodes < 1, or too few edges to connect),
// ErrTooManyEdges, ErrNeedRandSource.
// Complexity: expected O(V + E) for sparse requests.
func Generate(nodes, edges int, connected bool, opts ...Option) (g1, g2 *graph.Graph, perm []graph.NodeID, err error) {
	cfg := newBuilderConfig(opts...)
	if nodes < 1 {
		return nil, nil, nil, tooFew(methodGenerate, "nodes", nodes, 1)
	}
	if connected && edges < nodes-1 {
		return nil, nil, nil, tooFew(methodGenerate, "edges", edges, nodes-1)
	}
	if cfg.rng == nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	g1 = graph.New(cfg.gopts...)
	if limit := maxEdges(nodes, g1.Directed(), g1.Looped()); edges < 0 || edges > limit {
		return nil, nil, nil, fmt.Errorf("%s: edges=%d not in [0,%d]: %w", methodGenerate, edges, limit, ErrTooManyEdges)
	}

	rng := cfg.rng
	addNodes(g1, cfg, nodes)
	added := 0
	if connected {
		order := rng.Perm(nodes)
		for k := 1; k < nodes; k++ {
			u, v := order[k], order[rng.Intn(k)]
			if g1.Directed() && rng.Intn(2) == 0 {
				u, v = v, u
			}
			if err := link(g1, cfg, methodGenerate, 0, u, v, false); err != nil {
				return nil, nil, nil, err
			}
			added++
		}
	}
	for added < edges {
		u, v := rng.Intn(nodes), rng.Intn(nodes)
		if u == v && !g1.Looped() {
			continue
		}
		if g1.HasEdge(graph.NodeID(u), graph.NodeID(v)) {
			continue
		}
		if err := link(g1, cfg, methodGenerate, 0, u, v, false); err != nil {
			return nil, nil, nil, err
		}
		added++
	}

	perm = make([]graph.NodeID, nodes)
	for i, p := range rng.Perm(nodes) {
		perm[i] = graph.NodeID(p)
	}
	g2, err = g1.Permute(perm)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return g1, g2, perm, nil
}

// maxEdges is the simple-graph edge capacity for n nodes.
func maxEdges(n int, directed, loops bool) int {
	m := n * (n - 1)
	if !directed {
		m /= 2
	}
	if loops {
		m += n
	}

	return m
}
