// Package questgrid is the shared toolkit behind a set of puzzle solvers:
// grid geometry, a weighted directed graph with Dijkstra queries, input
// loading, and a configurable maze solver built on top of them.
//
// What's inside:
//
//	grid/          — Point, Compass, Connectivity and the rectangular Grid[T]
//	graph/         — Graph[N] with AddEdge, Dijkstra and DijkstraMany
//	input/         — puzzle input files keyed by event, quest and part
//	maze/          — character map → graph under TOML-configurable rules
//	internal/cli/  — cobra commands behind cmd/questgrid
//
// Typical flow:
//
//	m := grid.Parse(text)                  // discover geometry
//	g := graph.New[grid.Point]()           // walk it, inserting edges
//	for p, r := range m.Cells() { ... g.AddEdge(p, q, cost) ... }
//	d, ok := g.DijkstraMany(starts, goal)  // ok == false: no path
//
// Quick ASCII example:
//
//	S . . #
//	. # . .      two starts, one goal:
//	. . . S      the right-hand S is 3 steps from E
//	# E . .
//
// The graph package never imports grid: any comparable node type with a
// Compare method works.
//
//	go install github.com/katalvlaran/questgrid/cmd/questgrid@latest
package questgrid
