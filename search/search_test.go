package search_test

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/search"
)

// adjacency is a tiny explicit graph used to drive the implicit engine.
type adjacency map[string][]search.Edge[string, int]

func (a adjacency) successors(s string) []search.Edge[string, int] { return a[s] }

func (a adjacency) undirected(u, v string, w int) {
	a[u] = append(a[u], search.Edge[string, int]{To: v, Cost: w})
	a[v] = append(a[v], search.Edge[string, int]{To: u, Cost: w})
}

func equals(target string) func(string) bool {
	return func(s string) bool { return s == target }
}

// cityState is a (current city, visited bitmask) pair for Hamiltonian routes.
type cityState struct {
	city    int
	visited uint32
}

// fourCities holds the symmetric distances A-B:1, A-C:4, A-D:9, B-C:5, B-D:3, C-D:8.
var fourCities = [4][4]int{
	{0, 1, 4, 9},
	{1, 0, 5, 3},
	{4, 5, 0, 8},
	{9, 3, 8, 0},
}

func routeProblem(start int) search.Problem[cityState, int] {
	n := len(fourCities)
	all := uint32(1)<<n - 1

	return search.Problem[cityState, int]{
		Start: cityState{city: start, visited: 1 << start},
		Successors: func(s cityState) []search.Edge[cityState, int] {
			var out []search.Edge[cityState, int]
			for next := 0; next < n; next++ {
				if s.visited&(1<<next) != 0 {
					continue
				}
				out = append(out, search.Edge[cityState, int]{
					To:   cityState{city: next, visited: s.visited | 1<<next},
					Cost: fourCities[s.city][next],
				})
			}
			return out
		},
		Goal: func(s cityState) bool { return s.visited == all },
	}
}

// bruteForceRoutes enumerates every permutation of the four cities.
func bruteForceRoutes() (minCost, maxCost int) {
	perm := []int{0, 1, 2, 3}
	minCost, maxCost = int(^uint(0)>>1), 0
	var rec func(k int)
	rec = func(k int) {
		if k == len(perm) {
			c := 0
			for i := 0; i+1 < len(perm); i++ {
				c += fourCities[perm[i]][perm[i+1]]
			}
			minCost = min(minCost, c)
			maxCost = max(maxCost, c)
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return minCost, maxCost
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilSuccessors(t *testing.T) {
	_, err := search.Search(search.Problem[string, int]{Start: "A", Goal: equals("A")})
	require.ErrorIs(t, err, search.ErrNilSuccessors)

	_, err = search.Explore(search.Problem[string, int]{Start: "A"})
	require.ErrorIs(t, err, search.ErrNilSuccessors)

	_, err = search.Longest(search.Problem[string, int]{Start: "A", Goal: equals("A")})
	require.ErrorIs(t, err, search.ErrNilSuccessors)
}

func TestSearch_NilGoal(t *testing.T) {
	g := adjacency{}
	_, err := search.Search(search.Problem[string, int]{Start: "A", Successors: g.successors})
	require.ErrorIs(t, err, search.ErrNilGoal)

	_, err = search.Longest(search.Problem[string, int]{Start: "A", Successors: g.successors})
	require.ErrorIs(t, err, search.ErrNilGoal)
}

func TestSearch_OptionViolations(t *testing.T) {
	g := adjacency{}
	p := search.Problem[string, int]{Start: "A", Successors: g.successors, Goal: equals("A")}

	cases := map[string]search.Option{
		"negative depth": search.WithMaxDepth(-1),
		"negative cost":  search.WithMaxCost(-0.5),
		"unknown order":  search.WithOrder(search.Order(42)),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := search.Search(p, opt)
			assert.ErrorIs(t, err, search.ErrOptionViolation)
		})
	}

	_, err := search.Longest(p, search.WithMaxCost(10))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Termination
// ------------------------------------------------------------------------

func TestSearch_UnreachableGoal(t *testing.T) {
	// Two nodes, A→B cost 1, looking for C.
	g := adjacency{"A": {{To: "B", Cost: 1}}}
	for _, order := range []search.Order{search.MinCost, search.FIFO} {
		t.Run(order.String(), func(t *testing.T) {
			res, err := search.Search(search.Problem[string, int]{
				Start:      "A",
				Successors: g.successors,
				Goal:       equals("C"),
			}, search.WithOrder(order))
			require.ErrorIs(t, err, search.ErrUnreachable)
			require.Nil(t, res)
		})
	}
}

func TestSearch_StartIsGoal(t *testing.T) {
	calls := 0
	res, err := search.Search(search.Problem[string, int]{
		Start: "A",
		Successors: func(string) []search.Edge[string, int] {
			calls++
			return nil
		},
		Goal: equals("A"),
	}, search.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, "A", res.Goal)
	require.Equal(t, 0, res.Cost)
	require.Equal(t, []string{"A"}, res.Path)
	require.Zero(t, calls, "goal states are never expanded")
}

// ------------------------------------------------------------------------
// 3. Optimality and step counts
// ------------------------------------------------------------------------

func TestSearch_TriangleWithPath(t *testing.T) {
	// A-B(1), B-C(2), A-C(5)
	g := adjacency{}
	g.undirected("A", "B", 1)
	g.undirected("B", "C", 2)
	g.undirected("A", "C", 5)

	res, err := search.Search(search.Problem[string, int]{
		Start:      "A",
		Successors: g.successors,
		Goal:       equals("C"),
	}, search.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 3, res.Cost)
	require.Equal(t, 2, res.Depth)
	require.Equal(t, []string{"A", "B", "C"}, res.Path)
}

// randomGraph builds a directed graph on n nodes with weights in [0, maxW].
func randomGraph(rng *rand.Rand, n, maxW int, density float64) adjacency {
	g := adjacency{}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || rng.Float64() > density {
				continue
			}
			w := 1
			if maxW > 1 {
				w = rng.Intn(maxW + 1)
			}
			us, vs := strconv.Itoa(u), strconv.Itoa(v)
			g[us] = append(g[us], search.Edge[string, int]{To: vs, Cost: w})
		}
	}

	return g
}

// bruteForce enumerates every simple path from start and returns the minimum
// cost and minimum edge count to goal; ok is false if goal is unreachable.
func bruteForce(g adjacency, start, goal string) (minCost, minEdges int, ok bool) {
	onPath := map[string]bool{start: true}
	var rec func(cur string, cost, edges int)
	rec = func(cur string, cost, edges int) {
		if cur == goal {
			if !ok || cost < minCost {
				minCost = cost
			}
			if !ok || edges < minEdges {
				minEdges = edges
			}
			ok = true
			return
		}
		for _, e := range g[cur] {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			rec(e.To, cost+e.Cost, edges+1)
			onPath[e.To] = false
		}
	}
	rec(start, 0, 0)

	return minCost, minEdges, ok
}

func TestSearch_OptimalAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 60; trial++ {
		n := 3 + rng.Intn(5) // 3..7 nodes
		g := randomGraph(rng, n, 9, 0.45)
		goal := strconv.Itoa(n - 1)

		want, _, ok := bruteForce(g, "0", goal)
		res, err := search.Search(search.Problem[string, int]{
			Start:      "0",
			Successors: g.successors,
			Goal:       equals(goal),
		})
		if !ok {
			require.ErrorIs(t, err, search.ErrUnreachable, "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		require.Equal(t, want, res.Cost, "trial %d", trial)
	}
}

func TestSearch_FIFOStepCountAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 60; trial++ {
		n := 3 + rng.Intn(8) // 3..10 nodes
		g := randomGraph(rng, n, 1, 0.35)
		goal := strconv.Itoa(n - 1)

		_, want, ok := bruteForce(g, "0", goal)
		res, err := search.Search(search.Problem[string, int]{
			Start:      "0",
			Successors: g.successors,
			Goal:       equals(goal),
		}, search.WithOrder(search.FIFO))
		if !ok {
			require.ErrorIs(t, err, search.ErrUnreachable, "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		require.Equal(t, want, res.Cost, "trial %d", trial)
		require.Equal(t, want, res.Depth, "trial %d", trial)
	}
}

func TestSearch_AtMostOnceExpansion(t *testing.T) {
	// Dense graph with many duplicate enqueues.
	g := adjacency{}
	for u := 0; u < 6; u++ {
		for v := 0; v < 6; v++ {
			if u != v {
				g.undirected(strconv.Itoa(u), strconv.Itoa(v), 1+(u*v)%4)
			}
		}
	}
	for _, order := range []search.Order{search.MinCost, search.FIFO} {
		t.Run(order.String(), func(t *testing.T) {
			calls := map[string]int{}
			res, err := search.Search(search.Problem[string, int]{
				Start: "0",
				Successors: func(s string) []search.Edge[string, int] {
					calls[s]++
					return g[s]
				},
				Goal: func(string) bool { return false },
			}, search.WithOrder(order))
			require.ErrorIs(t, err, search.ErrUnreachable)
			require.Nil(t, res)
			require.Len(t, calls, 6)
			for s, c := range calls {
				require.Equal(t, 1, c, "state %s expanded %d times", s, c)
			}
		})
	}
}

func TestSearch_BackEdgesNeverReachFrontier(t *testing.T) {
	// Every state links back to all earlier ones. Visit must see each state
	// once, and the settled costs must match a search run per target.
	g := adjacency{}
	for u := 1; u < 5; u++ {
		for v := 0; v < u; v++ {
			g.undirected(strconv.Itoa(u), strconv.Itoa(v), u+v)
		}
	}
	visits := map[string]int{}
	reach, err := search.Explore(search.Problem[string, int]{
		Start:      "0",
		Successors: g.successors,
		Visit: func(s string, _ int, _ int) error {
			visits[s]++
			return nil
		},
	})
	require.NoError(t, err)
	require.Len(t, visits, 5)
	for s, n := range visits {
		assert.Equal(t, 1, n, "state %s", s)

		res, err := search.Search(search.Problem[string, int]{Start: "0", Successors: g.successors, Goal: equals(s)})
		require.NoError(t, err)
		assert.Equal(t, res.Cost, reach.Cost[s], "state %s", s)
	}
}

func TestSearch_ExpandedMatchesSuccessorCalls(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := randomGraph(rng, 9, 5, 0.5)
	calls := 0
	res, err := search.Search(search.Problem[string, int]{
		Start: "0",
		Successors: func(s string) []search.Edge[string, int] {
			calls++
			return g[s]
		},
		Goal: equals("8"),
	})
	if errors.Is(err, search.ErrUnreachable) {
		t.Skip("seeded graph does not reach 8")
	}
	require.NoError(t, err)
	require.Equal(t, calls, res.Expanded)
}

func TestSearch_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := randomGraph(rng, 8, 3, 0.6)
	run := func() (*search.Result[string, int], error) {
		return search.Search(search.Problem[string, int]{
			Start:      "0",
			Successors: g.successors,
			Goal:       equals("7"),
		}, search.WithReturnPath())
	}
	first, err1 := run()
	for i := 0; i < 5; i++ {
		again, err2 := run()
		if err1 != nil {
			require.ErrorIs(t, err2, search.ErrUnreachable)
			continue
		}
		require.NoError(t, err2)
		require.Equal(t, first.Cost, again.Cost)
		require.Equal(t, first.Path, again.Path)
	}
}

// ------------------------------------------------------------------------
// 4. Routes over a visited bitmask
// ------------------------------------------------------------------------

func TestSearch_FourCitiesShortest(t *testing.T) {
	wantMin, _ := bruteForceRoutes()
	require.Equal(t, 8, wantMin)

	best := -1
	for start := 0; start < 4; start++ {
		res, err := search.Search(routeProblem(start))
		require.NoError(t, err)
		if best < 0 || res.Cost < best {
			best = res.Cost
		}
	}
	require.Equal(t, 8, best) // C-A-B-D
}

func TestLongest_FourCitiesSignInversion(t *testing.T) {
	_, wantMax := bruteForceRoutes()
	require.Equal(t, 22, wantMax)

	best := 0
	for start := 0; start < 4; start++ {
		res, err := search.Longest(routeProblem(start), search.WithReturnPath())
		require.NoError(t, err)
		require.Len(t, res.Path, 4)
		best = max(best, res.Cost)
	}
	require.Equal(t, 22, best) // A-D-C-B
}

func TestLongest_DAGWithLateImprovement(t *testing.T) {
	// S→A(1), S→B(2), A→C(10), B→C(1). Popping the most negative label first
	// reaches C via B before the better route through A is known.
	g := adjacency{
		"S": {{To: "A", Cost: 1}, {To: "B", Cost: 2}},
		"A": {{To: "C", Cost: 10}},
		"B": {{To: "C", Cost: 1}},
	}
	res, err := search.Longest(search.Problem[string, int]{
		Start:      "S",
		Successors: g.successors,
		Goal:       equals("C"),
	}, search.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 11, res.Cost)
	require.Equal(t, []string{"S", "A", "C"}, res.Path)
}

func TestLongest_Unreachable(t *testing.T) {
	g := adjacency{"A": {{To: "B", Cost: 1}}}
	_, err := search.Longest(search.Problem[string, int]{
		Start:      "A",
		Successors: g.successors,
		Goal:       equals("C"),
	})
	require.ErrorIs(t, err, search.ErrUnreachable)
}

// ------------------------------------------------------------------------
// 5. Tie-break, hooks and bounds
// ------------------------------------------------------------------------

func TestSearch_TieBreakOrdersEqualCosts(t *testing.T) {
	g := adjacency{"S": {{To: "x", Cost: 1}, {To: "y", Cost: 1}, {To: "z", Cost: 1}}}
	rank := map[string]int64{"x": 3, "y": 1, "z": 2}

	var order []string
	_, err := search.Search(search.Problem[string, int]{
		Start:      "S",
		Successors: g.successors,
		Goal:       func(string) bool { return false },
		TieBreak:   func(s string) int64 { return rank[s] },
		Visit: func(s string, _ int, _ int) error {
			order = append(order, s)
			return nil
		},
	})
	require.ErrorIs(t, err, search.ErrUnreachable)
	require.Equal(t, []string{"S", "y", "z", "x"}, order)
}

func TestSearch_VisitErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	g := adjacency{}
	g.undirected("A", "B", 1)
	_, err := search.Search(search.Problem[string, int]{
		Start:      "A",
		Successors: g.successors,
		Goal:       equals("B"),
		Visit: func(s string, _ int, _ int) error {
			if s == "A" {
				return boom
			}
			return nil
		},
	})
	require.ErrorIs(t, err, boom)
}

func TestSearch_MaxDepthHidesDeepGoal(t *testing.T) {
	g := adjacency{}
	g.undirected("A", "B", 1)
	g.undirected("B", "C", 1)
	g.undirected("C", "D", 1)
	p := search.Problem[string, int]{Start: "A", Successors: g.successors, Goal: equals("D")}

	_, err := search.Search(p, search.WithOrder(search.FIFO), search.WithMaxDepth(2))
	require.ErrorIs(t, err, search.ErrUnreachable)

	res, err := search.Search(p, search.WithOrder(search.FIFO), search.WithMaxDepth(3))
	require.NoError(t, err)
	require.Equal(t, 3, res.Depth)
}

func TestSearch_MaxDepthRequiresFIFO(t *testing.T) {
	// A is reached cheaply through B at depth 2 and expensively at depth 1.
	// Under MinCost the cheap label would settle A and push G past depth 2.
	g := adjacency{
		"S": {{To: "A", Cost: 5}, {To: "B", Cost: 1}},
		"B": {{To: "A", Cost: 1}},
		"A": {{To: "G", Cost: 1}},
	}
	p := search.Problem[string, int]{Start: "S", Successors: g.successors, Goal: equals("G")}

	_, err := search.Search(p, search.WithMaxDepth(2))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Explore(search.Problem[string, int]{Start: "S", Successors: g.successors}, search.WithMaxDepth(2))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Longest(p, search.WithOrder(search.FIFO), search.WithMaxDepth(2))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	res, err := search.Search(p, search.WithOrder(search.FIFO), search.WithMaxDepth(2), search.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 2, res.Depth)
	require.Equal(t, []string{"S", "A", "G"}, res.Path)
}

func TestSearch_MaxCost(t *testing.T) {
	g := adjacency{}
	g.undirected("A", "B", 4)
	g.undirected("B", "C", 4)
	p := search.Problem[string, int]{Start: "A", Successors: g.successors, Goal: equals("C")}

	_, err := search.Search(p, search.WithMaxCost(7))
	require.ErrorIs(t, err, search.ErrUnreachable)

	res, err := search.Search(p, search.WithMaxCost(8))
	require.NoError(t, err)
	require.Equal(t, 8, res.Cost)
}

func TestSearch_FloatCosts(t *testing.T) {
	g := map[int][]search.Edge[int, float64]{
		0: {{To: 1, Cost: 0.5}, {To: 2, Cost: 2.25}},
		1: {{To: 2, Cost: 0.25}},
	}
	res, err := search.Search(search.Problem[int, float64]{
		Start:      0,
		Successors: func(s int) []search.Edge[int, float64] { return g[s] },
		Goal:       func(s int) bool { return s == 2 },
	})
	require.NoError(t, err)
	require.InDelta(t, 0.75, res.Cost, 1e-9)
}

// ------------------------------------------------------------------------
// 6. Explore
// ------------------------------------------------------------------------

func TestExplore_CountsWithinDepth(t *testing.T) {
	// Chain 0-1-2-3-4-5 plus a branch 2-x.
	g := adjacency{}
	for i := 0; i < 5; i++ {
		g.undirected(strconv.Itoa(i), strconv.Itoa(i+1), 1)
	}
	g.undirected("2", "x", 1)

	reach, err := search.Explore(search.Problem[string, int]{
		Start:      "0",
		Successors: g.successors,
	}, search.WithOrder(search.FIFO), search.WithMaxDepth(3))
	require.NoError(t, err)
	// 0,1,2,3 and x are within three steps.
	require.Len(t, reach.Cost, 5)
	require.Equal(t, 3, reach.Depth["x"])
	require.Equal(t, "0", reach.Order[0])
	require.Empty(t, reach.Goals)
	_, deep := reach.Cost["4"]
	require.False(t, deep)
}

func TestExplore_GoalsAreTerminal(t *testing.T) {
	g := adjacency{
		"S": {{To: "G", Cost: 1}, {To: "A", Cost: 1}},
		"G": {{To: "H", Cost: 1}},
		"A": {{To: "B", Cost: 1}},
	}
	reach, err := search.Explore(search.Problem[string, int]{
		Start:      "S",
		Successors: g.successors,
		Goal:       equals("G"),
	}, search.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, []string{"G"}, reach.Goals)
	_, through := reach.Cost["H"]
	require.False(t, through, "goal states must not be expanded")

	path, err := reach.PathTo("B")
	require.NoError(t, err)
	require.Equal(t, []string{"S", "A", "B"}, path)

	_, err = reach.PathTo("H")
	require.ErrorIs(t, err, search.ErrUnreachable)
}

func TestExplore_PathToRequiresTracking(t *testing.T) {
	g := adjacency{"S": {{To: "A", Cost: 1}}}
	reach, err := search.Explore(search.Problem[string, int]{Start: "S", Successors: g.successors})
	require.NoError(t, err)
	_, err = reach.PathTo("A")
	require.ErrorIs(t, err, search.ErrOptionViolation)
}
