package routes

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var lineRE = regexp.MustCompile(`^(\S+) to (\S+) = (\d+)$`)

// Parse reads "A to B = n" lines into a Graph. Blank lines are ignored.
func Parse(r io.Reader) (*Graph, error) {
	g := &Graph{}
	index := make(map[string]int)
	type link struct{ a, b, d int }
	var links []link

	id := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(g.Names)
		g.Names = append(g.Names, name)

		return index[name]
	}

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNo, line)
		}
		d, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, lineNo, err)
		}
		links = append(links, link{a: id(m[1]), b: id(m[2]), d: d})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("routes: read input: %w", err)
	}
	if len(g.Names) == 0 {
		return nil, ErrNoLocations
	}
	if len(g.Names) > MaxLocations {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyLocations, len(g.Names), MaxLocations)
	}

	n := len(g.Names)
	g.Dist = make([][]int, n)
	for i := range g.Dist {
		g.Dist[i] = make([]int, n)
		for j := range g.Dist[i] {
			if i != j {
				g.Dist[i][j] = NoEdge
			}
		}
	}
	for _, l := range links {
		g.Dist[l.a][l.b] = l.d
		g.Dist[l.b][l.a] = l.d
	}

	return g, nil
}
