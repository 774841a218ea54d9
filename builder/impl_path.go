// SPDX-License-Identifier: MIT
//
// impl_path.go: Path(n): P_n with edges i→i+1 (n ≥ 2).

package builder

import (
	"github.com/dstoeckel/ball/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends the path 0→1→…→n-1.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		base := addNodes(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, base, i, i+1, false); err != nil {
				return err
			}
		}

		return nil
	}
}
