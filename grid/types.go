// Package grid defines the Point, Compass and Connectivity types
// used throughout the geometry helpers.
package grid

// Point is a 2D integer coordinate. X is the column (increasing to the
// right) and Y is the row (increasing downward), matching rows[y][x].
type Point struct {
	X, Y int
}

// Compass names one of the four cardinal directions.
type Compass int

const (
	// North moves towards row 0 (Y - 1).
	North Compass = iota
	// East moves right (X + 1).
	East
	// South moves down (Y + 1).
	South
	// West moves left (X - 1).
	West
)

// compassDeltas holds the unit (dx, dy) for each Compass value, in
// declaration order.
var compassDeltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit vector (dx, dy) for c.
// Unknown values yield (0, 0).
func (c Compass) Delta() (dx, dy int) {
	if c < North || c > West {
		return 0, 0
	}
	d := compassDeltas[c]

	return d[0], d[1]
}

// String returns the direction name.
func (c Compass) String() string {
	switch c {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Compass(?)"
	}
}

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Grid is a rectangular 2D container of cells addressed by Point.
// Width and Height are fixed at construction; cells may be mutated in place.
type Grid[T any] struct {
	rows   [][]T
	width  int
	height int
}
