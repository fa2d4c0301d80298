// Package dijkstra runs a single-source earliest-arrival search over a
// core.Graph whose edges carry timing schedules.
//
// Overview:
//
//   - The label of a node is the earliest known time a traveller leaving the
//     source at the start time can stand on it.
//   - Relaxing edge u→v asks the edge schedule for the time at v given the
//     label of u; waiting for a window and the transit itself are both folded
//     into that single value, which is never smaller than the label of u.
//   - Because every relaxation is a non-negative increment, the classical
//     argument applies: the first time a node is popped from the frontier its
//     label is final.
//
// State machine per node:
//
//	Open ──pop (not stale)──▶ Finalized
//
// Finalized labels never change again. Stale frontier entries (a node pushed
// more than once) are discarded on pop by checking the finalized flag, the
// "lazy decrease-key" strategy.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) of it for stale frontier entries.
//
// Options:
//
//   - Source(v):             required start node.
//   - WithStartTime(t):      clock value at the source, default 0.
//   - WithMaxTime(t):        stop once the earliest open label exceeds t.
//   - WithOnFinalize(fn):    hook called as each node is finalized.
//   - WithRecorder(r):       receives search statistics when the run ends.
//
// Unreachable nodes are not an error: Result.Cost reports ok=false and
// Answer renders "Impossible".
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithStartTime(20))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Answer(5), res.Path(5))
package dijkstra
