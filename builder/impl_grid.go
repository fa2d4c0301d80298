// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/timetable/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid links a rows×cols lattice where node r*cols+c is cell (r,c).
// Each horizontal and vertical neighbour pair gets both directions on a
// directed graph, and one (mirrored) edge on an undirected graph.
// Requires rows*cols == N.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if rows*cols != g.NodeCount() {
			return fmt.Errorf("%s: %d×%d != N=%d: %w", methodGrid, rows, cols, g.NodeCount(), ErrBadSize)
		}

		link := func(u, v int) error {
			if err := addEdge(g, cfg, methodGrid, u, v); err != nil {
				return err
			}
			if g.Undirected() {
				return nil
			}

			return addEdge(g, cfg, methodGrid, v, u)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
