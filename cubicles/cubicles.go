// Package cubicles walks an unbounded office floor whose walls are derived
// from a designer's favourite number.
package cubicles

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/statespace/grid"
	"github.com/katalvlaran/statespace/search"
)

// Origin is where every walk starts.
var Origin = grid.Point{X: 1, Y: 1}

// ErrNegative indicates a negative favourite number, target coordinate or step bound.
var ErrNegative = errors.New("cubicles: negative argument")

// Open reports whether p is an open space for the favourite number fav.
// Negative coordinates are walls.
func Open(fav int, p grid.Point) bool {
	x, y := p.X, p.Y
	if x < 0 || y < 0 {
		return false
	}

	return bits.OnesCount(uint(x*x+3*x+2*x*y+y+y*y+fav))%2 == 0
}

func problem(fav int) search.Problem[grid.Point, int] {
	return search.Problem[grid.Point, int]{
		Start: Origin,
		Successors: func(p grid.Point) []search.Edge[grid.Point, int] {
			var out []search.Edge[grid.Point, int]
			for _, n := range p.Neighbors(grid.Conn4) {
				if Open(fav, n) {
					out = append(out, search.Edge[grid.Point, int]{To: n, Cost: 1})
				}
			}
			return out
		},
	}
}

// Steps returns the fewest steps from Origin to target.
func Steps(fav int, target grid.Point) (int, error) {
	if fav < 0 || target.X < 0 || target.Y < 0 {
		return 0, ErrNegative
	}
	p := problem(fav)
	p.Goal = func(s grid.Point) bool { return s == target }
	res, err := search.Search(p, search.WithOrder(search.FIFO))
	if err != nil {
		return 0, fmt.Errorf("cubicles: %w", err)
	}

	return res.Depth, nil
}

// Reachable counts the distinct locations, Origin included, reachable in at
// most maxSteps steps.
func Reachable(fav, maxSteps int) (int, error) {
	if fav < 0 || maxSteps < 0 {
		return 0, ErrNegative
	}
	if maxSteps == 0 {
		return 1, nil
	}
	reach, err := search.Explore(problem(fav),
		search.WithOrder(search.FIFO),
		search.WithMaxDepth(maxSteps),
	)
	if err != nil {
		return 0, fmt.Errorf("cubicles: %w", err)
	}

	return len(reach.Cost), nil
}
