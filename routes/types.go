package routes

import "errors"

// MaxLocations bounds the number of distinct locations a Graph may hold.
const MaxLocations = 20

// NoEdge marks a missing distance in Graph.Dist.
const NoEdge = -1

var (
	// ErrBadLine is returned by Parse for a line not of the form "A to B = n".
	ErrBadLine = errors.New("routes: malformed distance line")

	// ErrNoLocations is returned for an input without any distance line.
	ErrNoLocations = errors.New("routes: no locations")

	// ErrTooManyLocations is returned when a graph exceeds MaxLocations.
	ErrTooManyLocations = errors.New("routes: too many locations")

	// ErrNoRoute is returned when no route visits every location.
	ErrNoRoute = errors.New("routes: no route visits every location")
)

// Graph is a symmetric distance matrix over named locations.
type Graph struct {
	// Names maps an index to its location name.
	Names []string

	// Dist[i][j] is the distance between i and j, NoEdge if unknown, 0 on the diagonal.
	Dist [][]int
}

// Len returns the number of locations.
func (g *Graph) Len() int { return len(g.Names) }

// Route is a sequence of location indices and its total distance.
type Route struct {
	Order []int
	Cost  int
}

// Named returns the location names along r.
func (g *Graph) Named(r Route) []string {
	out := make([]string, len(r.Order))
	for i, idx := range r.Order {
		out[i] = g.Names[idx]
	}

	return out
}

// Objective selects whether HeldKarp minimises or maximises.
type Objective int

const (
	// Minimize looks for the cheapest route.
	Minimize Objective = iota
	// Maximize looks for the dearest route.
	Maximize
)
