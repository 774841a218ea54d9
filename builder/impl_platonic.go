// SPDX-License-Identifier: MIT
//
// impl_platonic.go: PlatonicSolid(name, withCenter): the five Platonic
// graphs, optionally with a hub joined to every shell node.
//
// The solids are vertex-transitive with known automorphism groups (24, 48,
// 48, 120, 120), which makes them the canonical stress fixtures for
// exhaustive isomorphism enumeration.

package builder

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String returns the solid's name.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return fmt.Sprintf("PlatonicName(%d)", int(p))
	}
}

type solid struct {
	nodes int
	edges []chord
}

var platonicSolids = map[PlatonicName]solid{
	Tetrahedron: {4, []chord{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}},
	// bottom face 0-1-2-3, top face 4-5-6-7, verticals i–i+4
	Cube: {8, []chord{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	}},
	// poles 0,1; equator 2-4-3-5
	Octahedron: {6, []chord{
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	}},
	// top pentagon 0..4 on even ring nodes, bottom pentagon 5..9 on odd ring
	// nodes, middle 10-cycle 10..19
	Dodecahedron: {20, []chord{
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
		{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
		{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
		{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
	}},
	// poles 0 and 11, pentagon rings 1..5 and 6..10, ring i joins i+5 and i+6
	Icosahedron: {12, []chord{
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	}},
}

// PlatonicSolid returns a Constructor for the named solid. With withCenter a
// hub (local id = shell size) is joined to every shell node. Shell edges and
// spokes are mirrored on directed graphs.
// Complexity: O(V+E), V ≤ 21.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		s, ok := platonicSolids[name]
		if !ok {
			return fmt.Errorf("%s: %s: %w", methodPlatonicSolid, name, ErrUnknownSolid)
		}
		n := s.nodes
		if withCenter {
			n++
		}
		base := addNodes(g, cfg, n)
		for _, ch := range s.edges {
			if err := link(g, cfg, methodPlatonicSolid, base, ch.U, ch.V, true); err != nil {
				return err
			}
		}
		if withCenter {
			for i := 0; i < s.nodes; i++ {
				if err := link(g, cfg, methodPlatonicSolid, base, s.nodes, i, true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
