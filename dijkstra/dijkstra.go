package dijkstra

import (
	"fmt"
	"time"

	"github.com/katalvlaran/timetable/core"
	"github.com/katalvlaran/timetable/frontier"
)

// Dijkstra computes earliest arrival times from the source (Options.Source)
// to every node of g.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be a node of g (ErrSourceOutOfRange).
//  4. StartTime ≥ 0 (ErrNegativeStartTime).
//  5. MaxTime ≥ StartTime (ErrBadMaxTime).
//
// Malformed edge timing cannot reach this point: timing constructors reject it
// when the graph is built.
//
// Without WithMaxTime the search runs until the frontier is empty. The
// returned Result is read-only.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.sourceSet {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %d with N=%d", ErrSourceOutOfRange, cfg.Source, g.NodeCount())
	}
	if cfg.StartTime < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeStartTime, cfg.StartTime)
	}
	if cfg.MaxTime < cfg.StartTime {
		return nil, fmt.Errorf("%w: max=%d start=%d", ErrBadMaxTime, cfg.MaxTime, cfg.StartTime)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		labels:  make([]label, n),
		pq:      frontier.New(n),
	}

	began := time.Now()
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	if cfg.Recorder != nil {
		cfg.Recorder.ObserveSearch(r.stats, time.Since(began))
	}

	return &Result{
		source: cfg.Source,
		start:  cfg.StartTime,
		labels: r.labels,
		stats:  r.stats,
	}, nil
}

// label is the per-node search state, stored in a flat table indexed by node.
type label struct {
	dist      int64
	prev      int
	finalized bool
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph
	options Options
	labels  []label
	pq      *frontier.Frontier
	stats   Stats
}

// init marks every node Open and unreached, then seeds the source.
func (r *runner) init() {
	for i := range r.labels {
		r.labels[i] = label{dist: Unreached, prev: noPredecessor}
	}

	src := r.options.Source
	r.labels[src].dist = r.options.StartTime
	r.pq.Push(r.options.StartTime, src)
}

// process pops the earliest open label until the frontier is empty or the
// earliest label exceeds MaxTime.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		item, err := r.pq.PopMin()
		if err != nil {
			return err
		}
		r.stats.Pops++

		// Stale duplicate of an already finalized node.
		if r.labels[item.Node].finalized {
			r.stats.StaleDiscards++
			continue
		}

		// Every remaining entry is at least as late, so nothing else can
		// be finalized within the cap. Labels of nodes past the cap were
		// tentatively set by relax and must be rolled back.
		if item.Time > r.options.MaxTime {
			r.dropOpen()
			break
		}

		r.labels[item.Node].finalized = true
		r.stats.Finalized++
		if r.options.OnFinalize != nil {
			r.options.OnFinalize(item.Node, item.Time)
		}

		if err := r.relax(item.Node); err != nil {
			return err
		}
	}

	return nil
}

// relax asks each outgoing edge of the just-finalized node u for the arrival
// time at its head and improves open neighbours.
func (r *runner) relax(u int) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	at := r.labels[u].dist
	for _, e := range edges {
		v := e.To()
		if r.labels[v].finalized {
			continue
		}

		reached, ok := e.Traverse(at)
		if !ok {
			r.stats.UnreachableEdges++
			continue
		}
		if reached >= r.labels[v].dist {
			continue
		}

		r.labels[v].dist = reached
		r.labels[v].prev = u
		r.stats.Relaxations++
		r.pq.Push(reached, v)
	}

	return nil
}

// dropOpen resets every open label to unreached. Used when MaxTime halts the
// search, so that only finalized labels are reported.
func (r *runner) dropOpen() {
	for i := range r.labels {
		if !r.labels[i].finalized {
			r.labels[i] = label{dist: Unreached, prev: noPredecessor}
		}
	}
}
