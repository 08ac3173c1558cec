// Package grid implements rectangular ASCII maps.
package grid

import "strings"

// Wall is the rune Parse treats as impassable by default.
const Wall = '#'

// Map is an immutable rectangular grid of runes.
type Map struct {
	Width, Height int
	cells         [][]rune
	wall          rune
}

// Parse builds a Map from newline-separated rows, ignoring a trailing newline
// and carriage returns. Returns ErrEmptyGrid or ErrNonRectangular.
func Parse(text string) (*Map, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}

	return New(strings.Split(text, "\n"))
}

// New constructs a Map from rows, deep-copying them.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(rows))
	w := len([]rune(rows[0]))
	for y, row := range rows {
		cells[y] = []rune(row)
		if len(cells[y]) != w {
			return nil, ErrNonRectangular
		}
	}

	return &Map{Width: w, Height: len(rows), cells: cells, wall: Wall}, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// At returns the rune at p, or the wall rune when p is out of bounds.
func (m *Map) At(p Point) rune {
	if !m.InBounds(p) {
		return m.wall
	}

	return m.cells[p.Y][p.X]
}

// Open reports whether p is in bounds and not a wall.
func (m *Map) Open(p Point) bool {
	return m.At(p) != m.wall
}

// OpenNeighbors returns the open cells adjacent to p under c.
func (m *Map) OpenNeighbors(p Point, c Connectivity) []Point {
	out := make([]Point, 0, len(c.Offsets()))
	for _, d := range c.Offsets() {
		if n := p.Add(d); m.Open(n) {
			out = append(out, n)
		}
	}

	return out
}

// Find returns the position of every cell for which match returns true,
// in row-major order.
func (m *Map) Find(match func(r rune) bool) map[rune][]Point {
	found := make(map[rune][]Point)
	for y, row := range m.cells {
		for x, r := range row {
			if match(r) {
				found[r] = append(found[r], Point{X: x, Y: y})
			}
		}
	}

	return found
}
