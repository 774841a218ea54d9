// SPDX-License-Identifier: MIT
//
// impl_star.go: Star(n): hub 0 with spokes to leaves 1..n-1 (n ≥ 2).

package builder

import (
	"github.com/dstoeckel/ball/graph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star; local node 0 is the hub.
// Spokes are mirrored on directed graphs.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		base := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, base, 0, i, true); err != nil {
				return err
			}
		}

		return nil
	}
}
