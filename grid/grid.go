package grid

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// FromRows constructs a Grid from rows, taking ownership of the slices.
// It panics with an error wrapping ErrNonRectangular if any row length
// differs from the first row. An empty rows slice yields a 0×0 grid.
// Complexity: O(H).
func FromRows[T any](rows [][]T) *Grid[T] {
	g, err := TryFromRows(rows)
	if err != nil {
		panic(err)
	}

	return g
}

// TryFromRows is FromRows for untrusted input: it returns the
// ErrNonRectangular error instead of panicking.
func TryFromRows[T any](rows [][]T) (*Grid[T], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
	}

	return &Grid[T]{rows: rows, width: w, height: h}, nil
}

// New returns a width×height grid with every cell set to fill.
func New[T any](width, height int, fill T) *Grid[T] {
	rows := make([][]T, height)
	for y := range rows {
		row := make([]T, width)
		for x := range row {
			row[x] = fill
		}
		rows[y] = row
	}

	return &Grid[T]{rows: rows, width: width, height: height}
}

// Parse builds a rune grid from newline-delimited text: one row per line,
// one cell per rune. A trailing newline does not add an empty row and a
// trailing '\r' on each line is dropped. Ragged lines panic like FromRows.
func Parse(s string) *Grid[rune] {
	g, err := TryParse(s)
	if err != nil {
		panic(err)
	}

	return g
}

// TryParse is Parse returning ErrNonRectangular instead of panicking.
func TryParse(s string) (*Grid[rune], error) {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return TryFromRows[rune](nil)
	}
	lines := strings.Split(s, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimSuffix(line, "\r"))
	}

	return TryFromRows(rows)
}

// Map returns a grid of the same shape whose cells are f applied to g's cells.
func Map[T, U any](g *Grid[T], f func(Point, T) U) *Grid[U] {
	rows := make([][]U, g.height)
	for y, src := range g.rows {
		row := make([]U, g.width)
		for x, v := range src {
			row[x] = f(Point{x, y}, v)
		}
		rows[y] = row
	}

	return &Grid[U]{rows: rows, width: g.width, height: g.height}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Contains reports whether p lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid[T]) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// At returns the cell at p. ok is false when p is outside the grid; the
// returned value is then T's zero value.
func (g *Grid[T]) At(p Point) (v T, ok bool) {
	if !g.Contains(p) {
		return v, false
	}

	return g.rows[p.Y][p.X], true
}

// AtPtr returns a pointer to the cell at p for in-place mutation, or
// (nil, false) when p is outside the grid.
func (g *Grid[T]) AtPtr(p Point) (*T, bool) {
	if !g.Contains(p) {
		return nil, false
	}

	return &g.rows[p.Y][p.X], true
}

// Set stores v at p and reports whether p was inside the grid.
func (g *Grid[T]) Set(p Point, v T) bool {
	ptr, ok := g.AtPtr(p)
	if ok {
		*ptr = v
	}

	return ok
}

// Rows yields (y, row) top to bottom. Each row is a copy, so writes to it
// do not reach the grid.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y, row := range g.rows {
			if !yield(y, slices.Clone(row)) {
				return
			}
		}
	}
}

// RowsMut yields (y, row) top to bottom with the grid's own backing
// slices. Writes through a yielded row change the grid; its length must
// not be changed.
func (g *Grid[T]) RowsMut() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y, row := range g.rows {
			if !yield(y, row[:len(row):len(row)]) {
				return
			}
		}
	}
}

// Cells yields every (point, value) pair in row-major order.
func (g *Grid[T]) Cells() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for y, row := range g.rows {
			for x, v := range row {
				if !yield(Point{x, y}, v) {
					return
				}
			}
		}
	}
}

// Find returns the first point in row-major order whose cell satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for p, v := range g.Cells() {
		if match(v) {
			return p, true
		}
	}

	return Point{}, false
}

// FindAll returns every point whose cell satisfies match, in row-major order.
func (g *Grid[T]) FindAll(match func(T) bool) []Point {
	var out []Point
	for p, v := range g.Cells() {
		if match(v) {
			out = append(out, p)
		}
	}

	return out
}
