// File: methods_edges.go
// Role: edge insertion and queries.
// Determinism:
//   - Neighbors(u) preserves insertion order.
//   - Edges() lists tails ascending, then insertion order.

package core

import (
	"fmt"

	"github.com/katalvlaran/timetable/timing"
)

// AddEdge appends a directed edge from→to with schedule s to from's adjacency
// list. On an undirected graph the mirror to→from is appended as well.
//
// Errors:
//   - ErrNodeOutOfRange if either endpoint is not in [0, N).
//   - ErrLoopNotAllowed if from == to and WithLoops was not given.
func (g *Graph) AddEdge(from, to int, s timing.Schedule) error {
	if !g.HasNode(from) || !g.HasNode(to) {
		return fmt.Errorf("%w: %d→%d with N=%d", ErrNodeOutOfRange, from, to, len(g.adj))
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	g.adj[from] = append(g.adj[from], Edge{from: from, to: to, sched: s})
	g.edges++
	if g.undirected && from != to {
		g.adj[to] = append(g.adj[to], Edge{from: to, to: from, sched: s})
		g.edges++
	}

	return nil
}

// AddStaticEdge adds an always-available edge whose transit duration is w.
func (g *Graph) AddStaticEdge(from, to int, w int64) error {
	s, err := timing.Always(w)
	if err != nil {
		return fmt.Errorf("edge %d→%d: %w", from, to, err)
	}

	return g.AddEdge(from, to, s)
}

// AddTimedEdge adds an edge described by the timetable triple
// (windowStart t0, period p, transit d); p == 0 means a single window.
func (g *Graph) AddTimedEdge(from, to int, t0, p, d int64) error {
	s, err := timing.FromTriple(t0, p, d)
	if err != nil {
		return fmt.Errorf("edge %d→%d: %w", from, to, err)
	}

	return g.AddEdge(from, to, s)
}

// Neighbors returns the outgoing edges of u. The slice is owned by the graph
// and must not be modified.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasNode(u) {
		return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, u)
	}

	return g.adj[u], nil
}

// Edges returns a copy of every stored edge.
// Complexity: O(N+M).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, list := range g.adj {
		out = append(out, list...)
	}

	return out
}

// EdgeCount returns the number of stored directed edges (mirrors included).
func (g *Graph) EdgeCount() int { return g.edges }
