// SPDX-License-Identifier: MIT
//
// impl_grid.go: Grid(rows, cols): 4-neighbourhood lattice (rows, cols ≥ 1).
//
// Local id of cell (r,c) is r*cols+c. For each cell in row-major order the
// right neighbour is linked before the bottom one; mirrored on directed graphs.

package builder

import (
	"fmt"

	"github.com/dstoeckel/ball/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols grid.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}
		base := addNodes(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, base, u, u+1, true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, base, u, u+cols, true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
