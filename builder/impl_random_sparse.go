// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Trial order:
//   • Undirected: unordered pairs {i,j}, i<j, i then j ascending.
//   • Directed: ordered pairs (i,j), i then j ascending; (i,i) only if g.Looped().
//
// p ∈ {0,1} needs no RNG; any other p does.

package builder

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each admissible edge
// independently with probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		take := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}

			return rng.Float64() < p
		}

		base := addNodes(g, cfg, n)
		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			from := i + 1
			if directed {
				from = 0
			}
			for j := from; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !take() {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, base, i, j, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
