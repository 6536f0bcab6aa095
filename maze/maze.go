package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/questgrid/graph"
	"github.com/katalvlaran/questgrid/grid"
)

var (
	// ErrNoStart indicates the map has no start cell.
	ErrNoStart = errors.New("maze: no start cell")
	// ErrNoGoal indicates the map has no goal cell.
	ErrNoGoal = errors.New("maze: no goal cell")
	// ErrManyGoals indicates the map has more than one goal cell.
	ErrManyGoals = errors.New("maze: more than one goal cell")
)

// Result is the outcome of Solve.
type Result struct {
	Distance  int64        // shortest distance; meaningful only when Reachable
	Reachable bool         // false when no start can reach the goal
	Starts    []grid.Point // start cells, row-major
	Goal      grid.Point   // goal cell
	Nodes     int          // nodes in the built graph
	Edges     int          // edges in the built graph
}

// Build walks every passable cell of m and inserts an edge to each
// passable in-bounds neighbour, priced by r. Walls never become nodes.
// Complexity: O(W×H×d) where d is 4 or 8.
func Build(m *grid.Grid[rune], r Rules) (*graph.Graph[grid.Point], error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	g := graph.New[grid.Point]()
	conn := r.conn()
	for p, c := range m.Cells() {
		if !r.passable(c) {
			continue
		}
		for _, q := range p.Neighbours(conn) {
			n, ok := m.At(q)
			if !ok || !r.passable(n) {
				continue
			}
			g.AddEdge(p, q, r.stepCost(c, n))
		}
	}

	return g, nil
}

// Solve parses text as a map, builds its graph and returns the distance
// from the nearest start to the goal. An unreachable goal is reported via
// Result.Reachable, not as an error.
func Solve(text string, r Rules) (Result, error) {
	if err := r.Validate(); err != nil {
		return Result{}, err
	}
	m, err := grid.TryParse(text)
	if err != nil {
		return Result{}, fmt.Errorf("maze: parse map: %w", err)
	}

	starts := m.FindAll(r.isStart)
	if len(starts) == 0 {
		return Result{}, ErrNoStart
	}
	goals := m.FindAll(r.isGoal)
	switch {
	case len(goals) == 0:
		return Result{}, ErrNoGoal
	case len(goals) > 1:
		return Result{}, fmt.Errorf("%w: found %d", ErrManyGoals, len(goals))
	}

	g, err := Build(m, r)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Starts: starts,
		Goal:   goals[0],
		Nodes:  g.Len(),
		Edges:  g.EdgeCount(),
	}
	res.Distance, res.Reachable = g.DijkstraMany(starts, res.Goal)

	return res, nil
}
