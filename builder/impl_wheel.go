// SPDX-License-Identifier: MIT
//
// impl_wheel.go: Wheel(n): W_n = C_{n-1} plus a hub (n ≥ 4).
//
// Local ids: ring 0..n-2 in cycle order, hub n-1. Ring edges first, then
// spokes by ring index; spokes are mirrored on directed graphs.

package builder

import (
	"github.com/dstoeckel/ball/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends a wheel with n nodes.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		base := addNodes(g, cfg, n)
		ring, hub := n-1, n-1
		for i := 0; i < ring; i++ {
			if err := link(g, cfg, methodWheel, base, i, (i+1)%ring, false); err != nil {
				return err
			}
		}
		for i := 0; i < ring; i++ {
			if err := link(g, cfg, methodWheel, base, hub, i, true); err != nil {
				return err
			}
		}

		return nil
	}
}
