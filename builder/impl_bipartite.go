// SPDX-License-Identifier: MIT
//
// impl_bipartite.go: CompleteBipartite(n1, n2): K_{n1,n2} (n1, n2 ≥ 1).
//
// Local ids: left side 0..n1-1, right side n1..n1+n2-1. Edges left→right in
// row-major order, mirrored on directed graphs.

package builder

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewNodes)
		}
		base := addNodes(g, cfg, n1+n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := link(g, cfg, methodCompleteBipartite, base, i, n1+j, true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
