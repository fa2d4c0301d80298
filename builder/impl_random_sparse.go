// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/timetable/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse adds each ordered pair u→v (u≠v; u<v on undirected graphs,
// self-loops included when the graph allows them) independently with
// probability p. Pairs are visited in ascending (u,v) order.
//
// Errors:
//   - ErrTooFewVertices if N < 1.
//   - ErrInvalidProbability if p ∉ [0,1].
//   - ErrNeedRandSource if 0 < p < 1 and no rng was configured.
//
// Complexity: O(N²).
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for u := 0; u < n; u++ {
			from := 0
			if g.Undirected() {
				from = u
			}
			for v := from; v < n; v++ {
				if u == v && !g.Looped() {
					continue
				}
				if !keep(cfg, p) {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// keep draws one Bernoulli(p) trial; p of exactly 0 or 1 needs no rng.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
