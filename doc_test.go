package questgrid_test

import (
	"fmt"

	"github.com/katalvlaran/questgrid/graph"
	"github.com/katalvlaran/questgrid/grid"
)

// Example walks the map from the package documentation end to end.
func Example() {
	m := grid.Parse("S..#\n.#..\n...S\n#E..")

	g := graph.New[grid.Point]()
	for p, r := range m.Cells() {
		if r == '#' {
			continue
		}
		for _, q := range p.Neighbours4() {
			if v, ok := m.At(q); ok && v != '#' {
				g.AddEdge(p, q, 1)
			}
		}
	}

	starts := m.FindAll(func(r rune) bool { return r == 'S' })
	goal, _ := m.Find(func(r rune) bool { return r == 'E' })
	for _, s := range starts {
		d, _ := g.Dijkstra(s, goal)
		fmt.Println(s, "→", goal, d)
	}

	// Output:
	// (0, 0) → (1, 3) 4
	// (3, 2) → (1, 3) 3
}
