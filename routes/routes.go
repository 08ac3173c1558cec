package routes

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statespace/search"
)

// origin is the virtual location every route departs from.
const origin = -1

// tour is a search state: the current location and the set already visited.
type tour struct {
	at      int
	visited uint32
}

// problem builds the (location, visited) search over g.
func problem(g *Graph) search.Problem[tour, int] {
	n := g.Len()
	all := uint32(1)<<n - 1

	return search.Problem[tour, int]{
		Start: tour{at: origin},
		Successors: func(s tour) []search.Edge[tour, int] {
			out := make([]search.Edge[tour, int], 0, n)
			for next := 0; next < n; next++ {
				if s.visited&(1<<next) != 0 {
					continue
				}
				cost := 0
				if s.at != origin {
					if cost = g.Dist[s.at][next]; cost == NoEdge {
						continue
					}
				}
				out = append(out, search.Edge[tour, int]{
					To:   tour{at: next, visited: s.visited | 1<<next},
					Cost: cost,
				})
			}

			return out
		},
		Goal: func(s tour) bool { return s.visited == all },
	}
}

// Shortest returns the cheapest open route visiting every location once.
func Shortest(g *Graph) (Route, error) {
	return solve(g, search.Search[tour, int])
}

// Longest returns the dearest open route visiting every location once.
func Longest(g *Graph) (Route, error) {
	return solve(g, search.Longest[tour, int])
}

type solver func(search.Problem[tour, int], ...search.Option) (*search.Result[tour, int], error)

func solve(g *Graph, run solver) (Route, error) {
	if g.Len() == 0 {
		return Route{}, ErrNoLocations
	}
	if g.Len() > MaxLocations {
		return Route{}, fmt.Errorf("%w: %d > %d", ErrTooManyLocations, g.Len(), MaxLocations)
	}
	res, err := run(problem(g), search.WithReturnPath())
	if errors.Is(err, search.ErrUnreachable) {
		return Route{}, ErrNoRoute
	}
	if err != nil {
		return Route{}, err
	}

	order := make([]int, 0, len(res.Path)-1)
	for _, s := range res.Path[1:] {
		order = append(order, s.at)
	}

	return Route{Order: order, Cost: res.Cost}, nil
}
