package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/timetable/dijkstra"
)

// ErrNilRegisterer is returned by NewCollector when no registerer is given.
var ErrNilRegisterer = errors.New("metrics: nil registerer")

// Collector holds the Prometheus instruments fed by finished searches.
type Collector struct {
	Searches         prometheus.Counter
	Pops             prometheus.Counter
	StaleDiscards    prometheus.Counter
	Relaxations      prometheus.Counter
	UnreachableEdges prometheus.Counter
	Finalized        prometheus.Counter
	SearchDuration   prometheus.Histogram

	// Cases counts solved input cases by problem kind.
	Cases *prometheus.CounterVec
}

// NewCollector creates the instruments under namespace and registers them on reg.
func NewCollector(namespace string, reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	c := &Collector{
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Total number of completed searches",
		}),
		Pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "frontier_pops_total",
			Help:      "Entries removed from the frontier, stale ones included",
		}),
		StaleDiscards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "stale_entries_total",
			Help:      "Frontier entries discarded because their node was already finalized",
		}),
		Relaxations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "relaxations_total",
			Help:      "Edge relaxations that improved a label",
		}),
		UnreachableEdges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "unreachable_edges_total",
			Help:      "Edges found closed for good at the arrival time",
		}),
		Finalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "finalized_nodes_total",
			Help:      "Nodes whose earliest arrival was fixed",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time of a single search",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		}),
		Cases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cases_total",
			Help:      "Input cases solved, by problem kind",
		}, []string{"kind"}),
	}

	for _, col := range []prometheus.Collector{
		c.Searches, c.Pops, c.StaleDiscards, c.Relaxations,
		c.UnreachableEdges, c.Finalized, c.SearchDuration, c.Cases,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObserveSearch implements dijkstra.Recorder.
func (c *Collector) ObserveSearch(s dijkstra.Stats, elapsed time.Duration) {
	c.Searches.Inc()
	c.Pops.Add(float64(s.Pops))
	c.StaleDiscards.Add(float64(s.StaleDiscards))
	c.Relaxations.Add(float64(s.Relaxations))
	c.UnreachableEdges.Add(float64(s.UnreachableEdges))
	c.Finalized.Add(float64(s.Finalized))
	c.SearchDuration.Observe(elapsed.Seconds())
}

// CaseSolved counts one solved case of the given kind.
func (c *Collector) CaseSolved(kind string) {
	c.Cases.WithLabelValues(kind).Inc()
}

var _ dijkstra.Recorder = (*Collector)(nil)
