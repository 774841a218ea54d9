// SPDX-License-Identifier: MIT

package vf2_test

import (
	"fmt"

	"github.com/dstoeckel/ball/builder"
	"github.com/dstoeckel/ball/graph"
	"github.com/dstoeckel/ball/vf2"
)

// ExampleMatch finds one triangle inside K4.
func ExampleMatch() {
	q, _ := builder.Build(nil, nil, builder.Cycle(3))
	t, _ := builder.Build(nil, nil, builder.Complete(4))

	root, err := vf2.NewSubState(q, t, true, vf2.WithInduced())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer root.Release()

	m, ok := vf2.Match(root)
	fmt.Println(ok, m)
	// Output: true [0→0 1→1 2→2]
}

// ExampleMatchAll counts the symmetries of a cube.
func ExampleMatchAll() {
	cube, _ := builder.Build(nil, nil, builder.PlatonicSolid(builder.Cube, false))

	var n int
	_ = vf2.Search(vf2.KindIso, cube, cube, true, nil, func(s *vf2.State) error {
		n = vf2.MatchAll(s, nil)
		return nil
	})
	fmt.Println(n)
	// Output: 48
}

// ExampleMaximize finds the largest labelled fragment two chains share.
func ExampleMaximize() {
	chain := func(labels ...string) *graph.Graph {
		g := graph.New()
		for i, l := range labels {
			g.AddNode(l)
			if i > 0 {
				_ = g.AddEdge(graph.NodeID(i-1), graph.NodeID(i), nil)
			}
		}
		return g
	}
	q := chain("C", "C", "O", "N")
	t := chain("N", "C", "C", "O", "C")

	root, _ := vf2.NewMCSState(q, t, true, vf2.WithNodeComparator(graph.EqualAttrs))
	defer root.Release()

	best := vf2.Maximize(root)
	fmt.Println(len(best), best)
	// Output: 3 [0→1 1→2 2→3]
}
