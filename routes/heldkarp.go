package routes

import "fmt"

// HeldKarp solves the route problem on g exactly with bitmask dynamic
// programming.
//
// With closed == false it returns the best open path over every start and end
// location. With closed == true it returns the best cycle through location 0,
// listed as n+1 indices starting and ending at 0.
//
// dp[mask][j] holds the best cost of a path that visits exactly the locations
// in mask and ends at j. Missing edges (NoEdge) are never traversed.
//
// Time complexity:  O(n²·2ⁿ)
// Memory complexity: O(n·2ⁿ)
func HeldKarp(g *Graph, closed bool, obj Objective) (Route, error) {
	n := g.Len()
	if n == 0 {
		return Route{}, ErrNoLocations
	}
	if n > MaxLocations {
		return Route{}, fmt.Errorf("%w: %d > %d", ErrTooManyLocations, n, MaxLocations)
	}
	if n == 1 {
		if closed {
			return Route{Order: []int{0, 0}}, nil
		}
		return Route{Order: []int{0}}, nil
	}

	better := func(a, b int) bool { return a < b }
	if obj == Maximize {
		better = func(a, b int) bool { return a > b }
	}

	allMask := 1<<n - 1
	dp := make([][]int, 1<<n)
	parent := make([][]int, 1<<n)
	reached := make([][]bool, 1<<n)
	for mask := range dp {
		dp[mask] = make([]int, n)
		parent[mask] = make([]int, n)
		reached[mask] = make([]bool, n)
		for j := range parent[mask] {
			parent[mask][j] = -1
		}
	}

	// Base cases: a closed tour starts at 0, an open path anywhere.
	for j := 0; j < n; j++ {
		if closed && j != 0 {
			break
		}
		reached[1<<j][j] = true
	}

	for mask := 1; mask <= allMask; mask++ {
		if closed && mask&1 == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if mask&(1<<j) == 0 || mask == 1<<j {
				continue
			}
			prev := mask ^ (1 << j)
			for k := 0; k < n; k++ {
				if !reached[prev][k] || g.Dist[k][j] == NoEdge {
					continue
				}
				cand := dp[prev][k] + g.Dist[k][j]
				if !reached[mask][j] || better(cand, dp[mask][j]) {
					dp[mask][j] = cand
					parent[mask][j] = k
					reached[mask][j] = true
				}
			}
		}
	}

	// Pick the best end point, closing back to 0 if required.
	last, bestCost, found := -1, 0, false
	for j := 0; j < n; j++ {
		if !reached[allMask][j] {
			continue
		}
		total := dp[allMask][j]
		if closed {
			if j == 0 || g.Dist[j][0] == NoEdge {
				continue
			}
			total += g.Dist[j][0]
		}
		if !found || better(total, bestCost) {
			last, bestCost, found = j, total, true
		}
	}
	if !found {
		return Route{}, ErrNoRoute
	}

	// Walk the parent table back from the chosen end point.
	order := make([]int, n)
	mask, j := allMask, last
	for i := n - 1; i >= 0; i-- {
		order[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}
	if closed {
		order = append(order, 0)
	}

	return Route{Order: order, Cost: bestCost}, nil
}
