package grid

import (
	"cmp"
	"fmt"
)

// neighbour8Offsets lists the eight (dx, dy) offsets clockwise from North.
var neighbour8Offsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Pt returns the Point (x, y).
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Zero returns the origin (0, 0).
func Zero() Point {
	return Point{}
}

// North returns p moved one row up.
func (p Point) North() Point { return Point{p.X, p.Y - 1} }

// South returns p moved one row down.
func (p Point) South() Point { return Point{p.X, p.Y + 1} }

// East returns p moved one column right.
func (p Point) East() Point { return Point{p.X + 1, p.Y} }

// West returns p moved one column left.
func (p Point) West() Point { return Point{p.X - 1, p.Y} }

// Neighbours4 returns the orthogonal neighbours in N, E, S, W order.
func (p Point) Neighbours4() [4]Point {
	return [4]Point{p.North(), p.East(), p.South(), p.West()}
}

// Neighbours8 returns all eight neighbours clockwise from North:
// N, NE, E, SE, S, SW, W, NW.
func (p Point) Neighbours8() [8]Point {
	var out [8]Point
	for i, d := range neighbour8Offsets {
		out[i] = Point{p.X + d[0], p.Y + d[1]}
	}

	return out
}

// Neighbours returns Neighbours4 or Neighbours8 depending on conn.
func (p Point) Neighbours(conn Connectivity) []Point {
	if conn == Conn8 {
		n := p.Neighbours8()
		return n[:]
	}
	n := p.Neighbours4()

	return n[:]
}

// ManhattanDistance returns |dx| + |dy| between p and q.
func (p Point) ManhattanDistance(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Moved returns p translated n units towards dir. A negative n travels
// backwards along dir.
func (p Point) Moved(dir Compass, n int) Point {
	dx, dy := dir.Delta()

	return Point{p.X + dx*n, p.Y + dy*n}
}

// Step returns p moved one unit towards dir.
func (p Point) Step(dir Compass) Point {
	return p.Moved(dir, 1)
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Tuple returns the coordinates as a pair.
func (p Point) Tuple() (x, y int) { return p.X, p.Y }

// Compare orders points lexicographically on (X, Y).
// It returns -1, 0 or +1, like cmp.Compare.
func (p Point) Compare(q Point) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}

	return cmp.Compare(p.Y, q.Y)
}

// Less reports whether p sorts before q.
func (p Point) Less(q Point) bool { return p.Compare(q) < 0 }

// String formats p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// InBounds reports whether p lies inside g. Negative coordinates are
// always out of bounds.
func InBounds[T any](p Point, g *Grid[T]) bool {
	return g.Contains(p)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
