package dijkstra

import (
	"fmt"
	"strconv"
)

// Impossible is how an unreachable destination is rendered.
const Impossible = "Impossible"

// Result is the label table left by a finished search. It is read-only;
// every query below is stateless with respect to it.
type Result struct {
	source int
	start  int64
	labels []label
	stats  Stats
}

// Source returns the start node of the search.
func (r *Result) Source() int { return r.source }

// StartTime returns the clock value the source was seeded with.
func (r *Result) StartTime() int64 { return r.start }

// NodeCount returns the number of nodes searched.
func (r *Result) NodeCount() int { return len(r.labels) }

// Stats returns the work counters of the search.
func (r *Result) Stats() Stats { return r.stats }

func (r *Result) valid(v int) bool { return v >= 0 && v < len(r.labels) }

// Distance returns the absolute earliest arrival time at v.
// ok is false when v was never reached (or is not a node).
func (r *Result) Distance(v int) (int64, bool) {
	if !r.valid(v) || r.labels[v].dist == Unreached {
		return Unreached, false
	}

	return r.labels[v].dist, true
}

// Cost returns the elapsed time from the start to the earliest arrival at v.
func (r *Result) Cost(v int) (int64, bool) {
	d, ok := r.Distance(v)
	if !ok {
		return 0, false
	}

	return d - r.start, true
}

// Finalized reports whether v's label was locked by the search.
func (r *Result) Finalized(v int) bool {
	return r.valid(v) && r.labels[v].finalized
}

// Predecessor returns the node preceding v on the recorded best path.
// ok is false for the source, for unreached nodes and for invalid indices.
func (r *Result) Predecessor(v int) (int, bool) {
	if !r.valid(v) || r.labels[v].prev == noPredecessor {
		return noPredecessor, false
	}

	return r.labels[v].prev, true
}

// Path returns the nodes from the source to v, both included.
// It is empty when v is unreachable; Path(source) is [source].
//
// Complexity: O(path length).
func (r *Result) Path(v int) []int {
	if !r.valid(v) {
		return nil
	}
	if r.labels[v].prev == noPredecessor && v != r.source {
		return []int{}
	}

	// Walk back to the source, then reverse in place.
	path := []int{v}
	for cur := v; r.labels[cur].prev != noPredecessor; {
		cur = r.labels[cur].prev
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Answer is the outcome of one destination query.
type Answer struct {
	Node      int
	Cost      int64
	Reachable bool
}

// String renders the cost, or Impossible.
func (a Answer) String() string {
	if !a.Reachable {
		return Impossible
	}

	return strconv.FormatInt(a.Cost, 10)
}

// Answer queries a single destination.
func (r *Result) Answer(v int) Answer {
	c, ok := r.Cost(v)

	return Answer{Node: v, Cost: c, Reachable: ok}
}

// Answers queries a batch of destinations in order.
// It fails with ErrOutOfRange on the first invalid index.
func (r *Result) Answers(vs []int) ([]Answer, error) {
	out := make([]Answer, 0, len(vs))
	for _, v := range vs {
		if !r.valid(v) {
			return nil, fmt.Errorf("%w: %d with N=%d", ErrOutOfRange, v, len(r.labels))
		}
		out = append(out, r.Answer(v))
	}

	return out, nil
}
