// File: methods_nodes.go
// Role: node count and node queries.

package core

// NodeCount returns N.
func (g *Graph) NodeCount() int { return len(g.adj) }

// HasNode reports whether v is a valid node index.
func (g *Graph) HasNode(v int) bool { return v >= 0 && v < len(g.adj) }

// OutDegree returns the number of edges with tail u, or 0 for an invalid index.
func (g *Graph) OutDegree(u int) int {
	if !g.HasNode(u) {
		return 0
	}

	return len(g.adj[u])
}
