// SPDX-License-Identifier: MIT
//
// helpers.go: shared node/edge emission for constructors.

package builder

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

// chord is an unordered local edge {U,V}.
type chord struct{ U, V int }

// addNodes appends n nodes with cfg.nodeAttr(i) and returns the first id.
func addNodes(g *graph.Graph, cfg builderConfig, n int) graph.NodeID {
	base := graph.NodeID(g.NodeCount())
	for i := 0; i < n; i++ {
		g.AddNode(cfg.nodeAttr(i))
	}

	return base
}

// link adds base+u → base+v. With mirror set on a directed graph the reverse
// arc is added too, so symmetric topologies stay symmetric.
func link(g *graph.Graph, cfg builderConfig, method string, base graph.NodeID, u, v int, mirror bool) error {
	a, b := base+graph.NodeID(u), base+graph.NodeID(v)
	if err := g.AddEdge(a, b, cfg.edgeAttr(u, v)); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
	}
	if mirror && g.Directed() {
		if err := g.AddEdge(b, a, cfg.edgeAttr(v, u)); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, v, u, err)
		}
	}

	return nil
}

// tooFew formats the standard size error.
func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewNodes)
}
