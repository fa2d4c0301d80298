// Package core provides the network a time-dependent search runs over: a
// fixed set of nodes identified by dense indices in [0, N) and, per node, an
// adjacency list of outgoing edges.
//
// Every Edge carries a timing.Schedule. A static weight is simply
// timing.Always(w), so classical shortest-path inputs live in the same type.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithUndirected()
//	    Every AddEdge(u,v,s) also stores v→u with the same schedule.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//	AddEdge(from, to int, s timing.Schedule) error       // O(1) amortized
//	AddStaticEdge(from, to int, w int64) error           // O(1) amortized
//	AddTimedEdge(from, to int, t0, p, d int64) error     // O(1) amortized
//	Neighbors(u int) ([]Edge, error)                     // O(1)
//	Edges() []Edge                                       // O(N+M)
//
// Ownership:
//
//   - Edges are values owned by the tail node's adjacency list and cannot be
//     altered after insertion; there is no RemoveEdge.
//   - Nodes are created once by NewGraph and live as long as the Graph.
//
// Concurrency:
//
//   - A Graph is built by one goroutine and then only read. Concurrent reads
//     are safe; reads concurrent with AddEdge are not.
package core
