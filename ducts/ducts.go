// Package ducts finds the shortest walk through an air-duct map that touches
// every numbered point of interest, optionally returning to point 0.
package ducts

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/statespace/grid"
	"github.com/katalvlaran/statespace/search"
)

var (
	// ErrNoStart indicates a map without point 0.
	ErrNoStart = errors.New("ducts: map has no point 0")
	// ErrDuplicatePoint indicates a digit that appears more than once.
	ErrDuplicatePoint = errors.New("ducts: duplicate point of interest")
)

// Map is a parsed duct layout.
type Map struct {
	*grid.Map
	start grid.Point
	all   uint16
}

// Parse reads the ASCII duct map. Digits mark points of interest.
func Parse(r io.Reader) (*Map, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ducts: read input: %w", err)
	}
	g, err := grid.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("ducts: %w", err)
	}

	m := &Map{Map: g}
	for d, at := range g.Find(isPoint) {
		if len(at) > 1 {
			return nil, fmt.Errorf("%w: %c at %v", ErrDuplicatePoint, d, at)
		}
		m.all |= 1 << (d - '0')
		if d == '0' {
			m.start = at[0]
		}
	}
	if m.all&1 == 0 {
		return nil, ErrNoStart
	}

	return m, nil
}

// Points returns the number of points of interest.
func (m *Map) Points() int {
	n := 0
	for bits := m.all; bits != 0; bits &= bits - 1 {
		n++
	}

	return n
}

func isPoint(r rune) bool { return r >= '0' && r <= '9' }

// walker is a search state: a position and the points touched so far.
type walker struct {
	pos  grid.Point
	seen uint16
}

// Steps returns the fewest steps to touch every point starting from 0
// (visitAll) and the fewest to do so and then return to 0 (roundTrip).
//
// Both answers come from a single breadth-first traversal: the first state
// holding every point is observed through the visit hook on the way to the
// round-trip goal.
func (m *Map) Steps() (visitAll, roundTrip int, err error) {
	visitAll = -1
	res, err := search.Search(search.Problem[walker, int]{
		Start: walker{pos: m.start, seen: 1},
		Successors: func(w walker) []search.Edge[walker, int] {
			var out []search.Edge[walker, int]
			for _, n := range m.OpenNeighbors(w.pos, grid.Conn4) {
				next := walker{pos: n, seen: w.seen}
				if c := m.At(n); isPoint(c) {
					next.seen |= 1 << (c - '0')
				}
				out = append(out, search.Edge[walker, int]{To: next, Cost: 1})
			}
			return out
		},
		Goal: func(w walker) bool { return w.seen == m.all && w.pos == m.start },
		Visit: func(w walker, _ int, depth int) error {
			if visitAll < 0 && w.seen == m.all {
				visitAll = depth
			}
			return nil
		},
	}, search.WithOrder(search.FIFO))
	if err != nil {
		return 0, 0, fmt.Errorf("ducts: %w", err)
	}

	return visitAll, res.Depth, nil
}
