// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/timetable/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete links every ordered pair u≠v (every unordered pair once on an
// undirected graph).
// Complexity: O(N²).
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for u := 0; u < n; u++ {
			from := 0
			if g.Undirected() {
				from = u + 1
			}
			for v := from; v < n; v++ {
				if u == v {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
