// Package graph provides a directed weighted graph over any orderable,
// comparable node type, with Dijkstra shortest-path queries from one or
// many sources to a single goal.
//
// Overview:
//
//   - Graph[N] is an adjacency map N → []Edge[N]. AddEdge upserts both
//     endpoints: the destination becomes a known node even with no
//     outgoing edges, which is distinct from a node never seen at all.
//   - Edges are directed. Parallel edges between the same ordered pair are
//     kept as inserted; relaxation naturally prefers the cheaper one.
//   - Dijkstra(start, goal) and DijkstraMany(starts, goal) return
//     (cost, true) for a shortest path or (0, false) when there is none.
//     A miss is a normal result, never an error or a panic.
//
// Node types:
//
//   - Any type satisfying Node[N]: comparable (usable as a map key) and
//     Compare(N) int for a total order. grid.Point qualifies. The order
//     breaks ties between equal-cost frontier entries so runs are
//     reproducible.
//
// Costs:
//
//   - Edge costs are int64 and must be non-negative. Negative costs are not
//     detected; shortest-path results are then undefined.
//   - Path sums saturate at math.MaxInt64 instead of wrapping. A saturated
//     sum never improves on "unknown", so an overflowing edge behaves as
//     unreachable at that cost.
//
// Complexity:
//
//   - AddEdge:      O(1) amortised.
//   - DijkstraMany: O((V + E) log V) time, O(V + E) memory
//     (lazy decrease-key; stale heap entries are skipped on pop).
//
// Thread safety:
//
//   - A Graph has no locks. Build it from one goroutine; once built, any
//     number of goroutines may query it concurrently because queries never
//     mutate the graph.
package graph
