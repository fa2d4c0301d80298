// File: types.go
// Role: Graph, Edge, GraphOption and sentinel errors.

package core

import (
	"errors"

	"github.com/katalvlaran/timetable/timing"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeCount indicates NewGraph was asked for fewer than zero nodes.
	ErrNegativeNodeCount = errors.New("core: node count must be non-negative")

	// ErrNodeOutOfRange indicates a node index outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a directed, immutable connection owned by its tail's adjacency list.
type Edge struct {
	from, to int
	sched    timing.Schedule
}

// From returns the tail node index.
func (e Edge) From() int { return e.from }

// To returns the head node index.
func (e Edge) To() int { return e.to }

// Schedule returns the availability descriptor.
func (e Edge) Schedule() timing.Schedule { return e.sched }

// Traverse delegates to the schedule: time at the head for a traveller
// reaching the tail at arrival, or ok=false if the edge cannot be used.
func (e Edge) Traverse(arrival int64) (int64, bool) { return e.sched.Traverse(arrival) }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithUndirected mirrors every inserted edge.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// Graph is a network of N nodes with per-node outgoing adjacency lists.
type Graph struct {
	// Configuration flags
	allowLoops bool
	undirected bool

	// Storage
	adj   [][]Edge // adj[u] = edges with tail u, in insertion order
	edges int      // stored (directed) edge count
}

// NewGraph creates a Graph with n isolated nodes 0..n-1.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeNodeCount
	}
	g := &Graph{adj: make([][]Edge, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Undirected reports whether inserted edges are mirrored.
func (g *Graph) Undirected() bool { return g.undirected }
