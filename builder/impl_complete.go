// SPDX-License-Identifier: MIT
//
// impl_complete.go: Complete(n): K_n (n ≥ 1).
//
// Emits each unordered pair {i,j}, i<j, in lexicographic order; directed
// graphs receive both arcs.

package builder

import (
	"github.com/dstoeckel/ball/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends the complete graph on n nodes.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		base := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, base, i, j, true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
