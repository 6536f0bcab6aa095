// Package grid provides the 2D geometry shared by the puzzle solvers:
// an integer Point with compass stepping and neighbour enumeration, and a
// rectangular Grid[T] addressed by Point.
//
// What:
//
//   - Point is a value type (X grows to the right, Y grows downward, so
//     North decreases Y). Points compare structurally with == and order
//     lexicographically on (X, Y) via Compare.
//   - Neighbours4 returns N, E, S, W; Neighbours8 returns N, NE, E, SE, S,
//     SW, W, NW. Both orders are fixed.
//   - Grid[T] is rectangular. Every row has Width cells; ragged input is a
//     programming error and FromRows / Parse panic with ErrNonRectangular.
//   - At and AtPtr report absence (ok == false) for any point outside
//     [0,Width)×[0,Height). Absence means "off the map", not failure.
//
// Why:
//
//   - Callers scan a Grid to discover walkable cells, then feed adjacent
//     Points into a graph.Graph as weighted edges.
//
// Complexity:
//
//   - Point operations:  O(1).
//   - At / AtPtr / Set:  O(1).
//   - FromRows / Parse:  O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths. Panics from FromRows
//     and Parse wrap it; TryFromRows and TryParse return it.
package grid
