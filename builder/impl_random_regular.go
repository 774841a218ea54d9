// SPDX-License-Identifier: MIT
//
// impl_random_regular.go: RandomRegular(n, d): undirected d-regular simple
// graph by stub matching.
//
// The n·d stubs are shuffled and paired consecutively; a pairing with a loop
// or a repeated pair is rejected before the graph is touched, and the stubs
// are reshuffled up to maxStubMatchingAttempts times.
//
// Regular graphs defeat degree-based ordering entirely, which makes them the
// hard case for isomorphism tests.

package builder

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 1000
)

// RandomRegular returns a Constructor for a random d-regular graph on n nodes.
// Requires an undirected graph, 0 ≤ d < n, n·d even and an RNG.
// Complexity: O(n·d) per attempt.
func RandomRegular(n, d int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: directed graph: %w", methodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < minRRVertices {
			return tooFew(methodRandomRegular, "n", n, minRRVertices)
		}
		if d < 0 || d >= n || (n*d)%2 != 0 {
			return fmt.Errorf("%s: no simple %d-regular graph on %d nodes: %w",
				methodRandomRegular, d, n, ErrTooFewNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			base := addNodes(g, cfg, n)
			for i := 0; i < len(stubs); i += 2 {
				if err := link(g, cfg, methodRandomRegular, base, stubs[i], stubs[i+1], false); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[chord]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		if _, dup := seen[chord{u, v}]; dup {
			return false
		}
		seen[chord{u, v}] = struct{}{}
	}

	return true
}
