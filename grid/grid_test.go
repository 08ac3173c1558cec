package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/grid"
)

// TestParse_Errors verifies that Parse rejects empty or ragged inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewline", "\n", grid.ErrEmptyGrid},
		{"NonRectangular", "###\n##\n", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.text)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
		})
	}
}

func TestMap_OpenAndBounds(t *testing.T) {
	m, err := grid.Parse("#####\r\n#0.1#\r\n#####\r\n")
	require.NoError(t, err)
	require.Equal(t, 5, m.Width)
	require.Equal(t, 3, m.Height)

	assert.True(t, m.Open(grid.Point{X: 1, Y: 1}))
	assert.False(t, m.Open(grid.Point{X: 0, Y: 1}))
	assert.False(t, m.Open(grid.Point{X: -1, Y: 1}), "out of bounds counts as wall")
	assert.Equal(t, '#', m.At(grid.Point{X: 9, Y: 9}))

	nbrs := m.OpenNeighbors(grid.Point{X: 2, Y: 1}, grid.Conn4)
	assert.ElementsMatch(t, []grid.Point{{X: 1, Y: 1}, {X: 3, Y: 1}}, nbrs)
}

func TestMap_Find(t *testing.T) {
	m, err := grid.Parse("#0.1\n#.2.")
	require.NoError(t, err)
	digits := m.Find(func(r rune) bool { return r >= '0' && r <= '9' })
	require.Len(t, digits, 3)
	assert.Equal(t, []grid.Point{{X: 1, Y: 0}}, digits['0'])
	assert.Equal(t, []grid.Point{{X: 3, Y: 0}}, digits['1'])
	assert.Equal(t, []grid.Point{{X: 2, Y: 1}}, digits['2'])
}

func TestPoint_Neighbors(t *testing.T) {
	p := grid.Point{X: 0, Y: 0}
	assert.Len(t, p.Neighbors(grid.Conn4), 4)
	assert.Len(t, p.Neighbors(grid.Conn8), 8)
	assert.Contains(t, p.Neighbors(grid.Conn8), grid.Point{X: -1, Y: -1})
	assert.NotContains(t, p.Neighbors(grid.Conn4), grid.Point{X: 1, Y: 1})

	assert.Equal(t, 7, grid.Point{X: 1, Y: -2}.Manhattan(grid.Point{X: -2, Y: 2}))
	assert.Equal(t, "3,4", grid.Point{X: 3, Y: 4}.String())
}
