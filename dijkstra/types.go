package dijkstra

import (
	"errors"
	"math"
	"time"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNoSource indicates that Source was never supplied.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source index outside [0, N).
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

	// ErrNegativeStartTime indicates WithStartTime received a value below zero.
	ErrNegativeStartTime = errors.New("dijkstra: start time must be non-negative")

	// ErrBadMaxTime indicates WithMaxTime received a cap below the start time.
	ErrBadMaxTime = errors.New("dijkstra: max time must not precede the start time")

	// ErrOutOfRange is returned by Result queries for an invalid node index.
	ErrOutOfRange = errors.New("dijkstra: node out of range")
)

// Unreached is the label of a node no edge has reached. It belongs to the
// Result type; callers should prefer the ok flag of Distance and Cost.
const Unreached int64 = math.MaxInt64

// noPredecessor marks a node without a recorded predecessor.
const noPredecessor = -1

// Stats counts the work done by one search.
type Stats struct {
	Pops             int // frontier entries removed, stale ones included
	StaleDiscards    int // entries dropped because the node was already final
	Finalized        int // nodes whose label became final
	Relaxations      int // successful label improvements
	UnreachableEdges int // edges rejected by their schedule
}

// Recorder receives the statistics of each finished search.
// The metrics package provides a Prometheus implementation.
type Recorder interface {
	ObserveSearch(s Stats, elapsed time.Duration)
}

// Options configures the behavior of the search.
type Options struct {
	Source     int
	StartTime  int64
	MaxTime    int64 // default math.MaxInt64 (no cap)
	OnFinalize func(node int, at int64)
	Recorder   Recorder

	sourceSet bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start node. It must be called.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
		o.sourceSet = true
	}
}

// WithStartTime seeds the source label with t instead of 0. Costs are
// reported as elapsed time, that is label minus t.
func WithStartTime(t int64) Option {
	return func(o *Options) {
		o.StartTime = t
	}
}

// WithMaxTime stops finalizing nodes whose label would exceed t. Nodes beyond
// the cap are reported unreached.
func WithMaxTime(t int64) Option {
	return func(o *Options) {
		o.MaxTime = t
	}
}

// WithOnFinalize registers fn to be called once per finalized node, in
// finalization order (non-decreasing time).
func WithOnFinalize(fn func(node int, at int64)) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// WithRecorder registers r to receive search statistics.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// DefaultOptions returns Options with no source, start time 0 and no cap.
func DefaultOptions() Options {
	return Options{
		StartTime: 0,
		MaxTime:   math.MaxInt64,
	}
}
