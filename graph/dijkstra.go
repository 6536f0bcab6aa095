package graph

import (
	"container/heap"
	"math"
)

// unknown is the distance of a node with no recorded path yet.
const unknown = math.MaxInt64

// Dijkstra returns the cost of the cheapest path from start to goal.
//
// Behavior:
//  1. start == goal → (0, true), even if neither was ever inserted.
//  2. start or goal unknown to the graph → (0, false).
//  3. Otherwise the result of DijkstraMany([]N{start}, goal).
func (g *Graph[N]) Dijkstra(start, goal N) (int64, bool) {
	if start == goal {
		return 0, true
	}
	if !g.HasNode(start) || !g.HasNode(goal) {
		return 0, false
	}

	return g.DijkstraMany([]N{start}, goal)
}

// DijkstraMany returns the cost of the cheapest path from whichever of
// starts is nearest to goal. All starts are seeded at distance zero and
// relaxed together in one search. ok is false when the frontier empties
// without reaching goal, including when starts is empty.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func (g *Graph[N]) DijkstraMany(starts []N, goal N) (cost int64, ok bool) {
	r := &runner[N]{
		g:    g,
		goal: goal,
		dist: make(map[N]int64, len(starts)),
		pq:   make(nodePQ[N], 0, len(starts)),
	}
	r.init(starts)

	return r.process()
}

// runner holds the mutable state for a single query. The graph itself is
// only read.
type runner[N Node[N]] struct {
	g    *Graph[N]   // graph being searched
	goal N           // node whose distance is requested
	dist map[N]int64 // best-known distance; absent means unknown
	pq   nodePQ[N]   // min-heap frontier with lazy decrease-key
}

// init records every start at distance zero and seeds the frontier.
func (r *runner[N]) init(starts []N) {
	for _, s := range starts {
		r.dist[s] = 0
		r.pq = append(r.pq, &nodeItem[N]{id: s, dist: 0})
	}
	heap.Init(&r.pq)
}

// distance returns the best-known distance to n, or unknown.
func (r *runner[N]) distance(n N) int64 {
	if d, ok := r.dist[n]; ok {
		return d
	}

	return unknown
}

// process pops the cheapest frontier entry until the goal is settled or
// the frontier is exhausted.
func (r *runner[N]) process() (int64, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[N])

		// Stale entry: a cheaper path was recorded after this push.
		if item.dist > r.distance(item.id) {
			continue
		}
		if item.id == r.goal {
			return item.dist, true
		}
		r.relax(item.id, item.dist)
	}

	return 0, false
}

// relax offers every outgoing edge of u, settled at distance d, to its
// destination and pushes any strictly shorter path found.
func (r *runner[N]) relax(u N, d int64) {
	for _, e := range r.g.adjacency[u] {
		next := saturatingAdd(d, e.Cost)
		if next >= r.distance(e.To) {
			continue
		}
		r.dist[e.To] = next
		heap.Push(&r.pq, &nodeItem[N]{id: e.To, dist: next})
	}
}

// saturatingAdd returns a + w clamped to math.MaxInt64. Both operands are
// expected to be non-negative.
func saturatingAdd(a, w int64) int64 {
	if w > math.MaxInt64-a {
		return math.MaxInt64
	}

	return a + w
}

// nodeItem is a frontier entry: a node and the distance it was pushed with.
type nodeItem[N Node[N]] struct {
	id   N
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by node order so
// equal-cost entries pop in a reproducible sequence.
type nodePQ[N Node[N]] []*nodeItem[N]

// Len returns the number of items in the heap.
func (pq nodePQ[N]) Len() int { return len(pq) }

// Less orders by distance, then by node.
func (pq nodePQ[N]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id.Compare(pq[j].id) < 0
}

// Swap swaps two elements in the heap.
func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
