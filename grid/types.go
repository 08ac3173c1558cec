// Package grid defines core types and sentinel errors for grid maps.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [...]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [...]Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbour offsets for c. The returned slice must not be modified.
func (c Connectivity) Offsets() []Point {
	if c == Conn8 {
		return offsets8[:]
	}

	return offsets4[:]
}

// Point is a cell coordinate. Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Neighbors returns the points adjacent to p under c, without bounds checks.
func (p Point) Neighbors(c Connectivity) []Point {
	offs := c.Offsets()
	out := make([]Point, len(offs))
	for i, d := range offs {
		out[i] = p.Add(d)
	}

	return out
}

// String formats p as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
