// Package storagegrid analyses a grid of storage nodes listed by df and moves
// the data of the top-right node to the top-left one through the single empty
// node.
package storagegrid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/grid"
	"github.com/katalvlaran/statespace/search"
)

var (
	// ErrBadLine indicates a /dev/grid line that does not parse.
	ErrBadLine = errors.New("storagegrid: malformed node line")
	// ErrNoNodes indicates an input without nodes.
	ErrNoNodes = errors.New("storagegrid: no nodes")
	// ErrNoEmptyNode indicates that no node has zero used space.
	ErrNoEmptyNode = errors.New("storagegrid: no empty node")
)

var nodeRE = regexp.MustCompile(`^/dev/grid/node-x(\d+)-y(\d+)\s+(\d+)T\s+(\d+)T\s+(\d+)T\s+(\d+)%$`)

// Node is one storage node; sizes are in terabytes.
type Node struct {
	Pos                    grid.Point
	Size, Used, Available int
}

// Cluster holds every node indexed by position.
type Cluster struct {
	Width, Height int
	Nodes         map[grid.Point]Node
}

// Parse reads df output. Lines not starting with /dev/grid are skipped.
func Parse(r io.Reader) (*Cluster, error) {
	c := &Cluster{Nodes: make(map[grid.Point]Node)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "/dev/grid") {
			continue
		}
		m := nodeRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
		}
		var v [5]int
		for i := range v {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadLine, line, err)
			}
			v[i] = n
		}
		n := Node{Pos: grid.Point{X: v[0], Y: v[1]}, Size: v[2], Used: v[3], Available: v[4]}
		c.Nodes[n.Pos] = n
		c.Width = max(c.Width, n.Pos.X+1)
		c.Height = max(c.Height, n.Pos.Y+1)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storagegrid: read input: %w", err)
	}
	if len(c.Nodes) == 0 {
		return nil, ErrNoNodes
	}

	return c, nil
}

// ViablePairs counts ordered pairs (A, B) with A non-empty, A != B and A's
// data fitting in B's available space.
func (c *Cluster) ViablePairs() int {
	count := 0
	for _, a := range c.Nodes {
		if a.Used == 0 {
			continue
		}
		for _, b := range c.Nodes {
			if a.Pos != b.Pos && a.Used <= b.Available {
				count++
			}
		}
	}

	return count
}

// empty returns the node with no used space.
func (c *Cluster) empty() (Node, error) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if n, ok := c.Nodes[grid.Point{X: x, Y: y}]; ok && n.Used == 0 {
				return n, nil
			}
		}
	}

	return Node{}, ErrNoEmptyNode
}

// Render draws the cluster: '_' is the empty node, '#' a node whose data can
// never fit in the empty node, '.' any other node. Missing nodes are walls.
func (c *Cluster) Render() (*grid.Map, error) {
	hole, err := c.empty()
	if err != nil {
		return nil, err
	}
	rows := make([]string, c.Height)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < c.Width; x++ {
			n, ok := c.Nodes[grid.Point{X: x, Y: y}]
			switch {
			case !ok || n.Used > hole.Size:
				b.WriteRune(grid.Wall)
			case n.Pos == hole.Pos:
				b.WriteByte('_')
			default:
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}

	return grid.New(rows)
}

// transfer is a search state: where the goal data and the empty node are.
type transfer struct {
	data, empty grid.Point
}

// MoveSteps returns the fewest single-node moves that bring the data of the
// top-right node to the top-left node.
func (c *Cluster) MoveSteps() (int, error) {
	m, err := c.Render()
	if err != nil {
		return 0, err
	}
	hole, _ := c.empty()
	origin := grid.Point{}

	res, err := search.Search(search.Problem[transfer, int]{
		Start: transfer{data: grid.Point{X: c.Width - 1}, empty: hole.Pos},
		Successors: func(s transfer) []search.Edge[transfer, int] {
			var out []search.Edge[transfer, int]
			for _, n := range m.OpenNeighbors(s.empty, grid.Conn4) {
				next := transfer{data: s.data, empty: n}
				if n == s.data {
					next.data = s.empty
				}
				out = append(out, search.Edge[transfer, int]{To: next, Cost: 1})
			}
			return out
		},
		Goal: func(s transfer) bool { return s.data == origin },
	}, search.WithOrder(search.FIFO))
	if err != nil {
		return 0, fmt.Errorf("storagegrid: %w", err)
	}

	return res.Depth, nil
}
