package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/questgrid/grid"
)

// BenchmarkParse measures parsing a 500×500 character map.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	const n = 500
	line := strings.Repeat(".", n)
	text := strings.TrimSuffix(strings.Repeat(line+"\n", n), "\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.Parse(text)
	}
}

// BenchmarkNeighbourScan measures a full Conn4 neighbour scan with bounds
// checks, the usual first step before building a graph.
func BenchmarkNeighbourScan(b *testing.B) {
	g := grid.New(500, 500, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for p := range g.Cells() {
			for _, q := range p.Neighbours4() {
				if v, ok := g.At(q); ok {
					sum += v
				}
			}
		}
		_ = sum
	}
}
