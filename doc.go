// Package timetable answers earliest-arrival questions on networks whose
// edges are only usable at certain times.
//
// What is a time-dependent network?
//
//	A directed graph of N nodes where every edge carries a Schedule:
//		• always   – enter whenever you like, travel d units
//		• window   – enter once, during [t0, t0+d)
//		• periodic – enter at t0, t0+P, t0+2P, … (late arrivals wait)
//		• blocked  – an obstacle occupies the edge during [t0, t0+d)
//
// Because arriving earlier never means arriving later, a Dijkstra-style
// search over arrival times finds the earliest arrival at every node.
//
// Under the hood the work is split into small packages:
//
//	timing/   - Schedule: wait and traversal rules of one edge
//	frontier/ - min-priority queue of (time, node) entries
//	core/     - Graph of indexed nodes with scheduled edges
//	dijkstra/ - the search, its options, Result with paths and costs
//	builder/  - deterministic generators for tests and benchmarks
//	ingest/   - readers for timetable, static and obstacle case files
//	metrics/  - Prometheus recorder for search statistics
//	cmd/timetable - batch CLI
//
// Quick example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddTimedEdge(0, 1, 15, 10, 5) // opens at 15, 25, 35, …
//	_ = g.AddStaticEdge(1, 2, 4)
//	res, _ := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	fmt.Println(res.Answer(2), res.Path(2)) // 24 [0 1 2]
package timetable
