package graph

// Node is the constraint on graph node types: usable as a map key and
// totally ordered by Compare (negative, zero or positive like cmp.Compare).
type Node[N any] interface {
	comparable
	Compare(N) int
}

// Edge is one outgoing arc: the destination node and the cost to reach it.
type Edge[N any] struct {
	To   N     // destination node
	Cost int64 // non-negative traversal cost
}

// Graph is a directed weighted graph keyed by node identity.
//
// adjacency[n] exists for every node ever passed to AddEdge, as source or
// destination; its slice holds n's outgoing edges in insertion order.
type Graph[N Node[N]] struct {
	adjacency map[N][]Edge[N]
	edges     int
}
