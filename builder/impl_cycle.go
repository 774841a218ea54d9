// SPDX-License-Identifier: MIT
//
// impl_cycle.go: Cycle(n): C_n with edges i→(i+1)%n (n ≥ 3).
//
// Determinism: edges are emitted by increasing i; the closing edge is last.

package builder

import (
	"github.com/dstoeckel/ball/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends an n-node simple cycle.
// On a directed graph the cycle is oriented.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		base := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, base, i, (i+1)%n, false); err != nil {
				return err
			}
		}

		return nil
	}
}
