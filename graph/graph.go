package graph

import "slices"

// New returns an empty graph with no nodes and no edges.
func New[N Node[N]]() *Graph[N] {
	return &Graph[N]{adjacency: make(map[N][]Edge[N])}
}

// AddEdge inserts the directed edge from→to with the given cost.
// Both endpoints become known nodes; to gets an empty edge list if it had
// none. Duplicate edges are appended, not merged.
// Complexity: O(1) amortised.
func (g *Graph[N]) AddEdge(from, to N, cost int64) {
	g.adjacency[from] = append(g.adjacency[from], Edge[N]{To: to, Cost: cost})
	if _, ok := g.adjacency[to]; !ok {
		g.adjacency[to] = nil
	}
	g.edges++
}

// HasNode reports whether n was referenced by any AddEdge call.
func (g *Graph[N]) HasNode(n N) bool {
	_, ok := g.adjacency[n]

	return ok
}

// Len returns the number of known nodes.
func (g *Graph[N]) Len() int { return len(g.adjacency) }

// EdgeCount returns the number of inserted edges, duplicates included.
func (g *Graph[N]) EdgeCount() int { return g.edges }

// Nodes returns every known node sorted by Compare.
// Complexity: O(V log V).
func (g *Graph[N]) Nodes() []N {
	out := make([]N, 0, len(g.adjacency))
	for n := range g.adjacency {
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b N) int { return a.Compare(b) })

	return out
}

// Neighbours returns a copy of n's outgoing edges in insertion order.
// Unknown nodes and sinks both yield an empty slice; use HasNode to tell
// them apart.
func (g *Graph[N]) Neighbours(n N) []Edge[N] {
	return slices.Clone(g.adjacency[n])
}
