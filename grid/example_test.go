// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/questgrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse + At
////////////////////////////////////////////////////////////////////////////////

// ExampleParse reads a small map and probes cells inside and outside it.
// Reading outside the map is not an error: ok simply reports false.
func ExampleParse() {
	g := grid.Parse("#S#\n#.E\n###")
	fmt.Println("size:", g.Width(), "x", g.Height())

	start, _ := g.Find(func(r rune) bool { return r == 'S' })
	for _, n := range start.Neighbours4() {
		r, ok := g.At(n)
		if !ok {
			fmt.Printf("%v off the map\n", n)
			continue
		}
		fmt.Printf("%v %q\n", n, r)
	}

	// Output:
	// size: 3 x 3
	// (1, -1) off the map
	// (2, 0) '#'
	// (1, 1) '.'
	// (0, 0) '#'
}

////////////////////////////////////////////////////////////////////////////////
// Example: Moved
////////////////////////////////////////////////////////////////////////////////

// ExamplePoint_Moved walks a point around with compass steps.
func ExamplePoint_Moved() {
	p := grid.Zero().Moved(grid.East, 3).Step(grid.South)
	fmt.Println(p, p.ManhattanDistance(grid.Zero()))
	fmt.Println(p.Moved(grid.North, -2))

	// Output:
	// (3, 1) 4
	// (3, 3)
}
