package search

import (
	"fmt"
	"math"
)

// Longest maximises the accumulated cost of reaching a goal state by negating
// every increment and minimising over the same MinCost frontier. The reported
// Cost is negated back.
//
// Negated increments break Dijkstra's settle-once argument (a state popped
// first is no longer guaranteed final), so Longest re-opens a state whenever a
// strictly better negated cost reaches it and returns the best goal once the
// frontier drains. This terminates on graphs without positive-weight cycles,
// which is the case when the state itself encodes what has been visited
// (e.g. a city plus a visited-set bitmask).
//
// Goal states are terminal. The Visit hook, if any, receives the original
// (positive) cost and may be called more than once for a re-opened state.
// Options.Order is forced to MinCost. WithMaxCost and WithMaxDepth are
// rejected: bounds on the negated cost are meaningless, and a depth cut
// applied to cost-ordered labels depends on successor order.
func Longest[S comparable, C Cost](p Problem[S, C], opts ...Option) (*Result[S, C], error) {
	if p.Successors == nil {
		return nil, ErrNilSuccessors
	}
	if p.Goal == nil {
		return nil, ErrNilGoal
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !math.IsInf(cfg.MaxCost, 1) {
		return nil, fmt.Errorf("%w: MaxCost is not supported by Longest", ErrOptionViolation)
	}
	if cfg.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: MaxDepth is not supported by Longest", ErrOptionViolation)
	}
	cfg.Order = MinCost

	l := &labeler[S, C]{
		p:     negate(p),
		opts:  cfg,
		front: newFrontier[S, C](MinCost),
		best:  make(map[S]C),
		depth: make(map[S]int),
	}
	if cfg.ReturnPath {
		l.parent = make(map[S]S)
	}
	if err = l.run(); err != nil {
		return nil, err
	}
	if !l.found {
		return nil, fmt.Errorf("%w: %d expansions from %v", ErrUnreachable, l.expanded, p.Start)
	}

	res := &Result[S, C]{
		Goal:     l.goal,
		Cost:     -l.best[l.goal],
		Depth:    l.depth[l.goal],
		Expanded: l.expanded,
	}
	if cfg.ReturnPath {
		res.Path = buildPath(l.parent, l.goal)
	}

	return res, nil
}

// negate returns a copy of p whose increments are negated. The Visit hook is
// wrapped so callers still observe positive costs.
func negate[S comparable, C Cost](p Problem[S, C]) Problem[S, C] {
	succ := p.Successors
	out := p
	out.Successors = func(s S) []Edge[S, C] {
		edges := succ(s)
		neg := make([]Edge[S, C], len(edges))
		for i, e := range edges {
			neg[i] = Edge[S, C]{To: e.To, Cost: -e.Cost}
		}

		return neg
	}
	if visit := p.Visit; visit != nil {
		out.Visit = func(s S, cost C, depth int) error { return visit(s, -cost, depth) }
	}

	return out
}

// labeler is a label-correcting variant of runner: a state's label may be
// improved after it was expanded, in which case it is expanded again.
type labeler[S comparable, C Cost] struct {
	p        Problem[S, C]
	opts     Options
	front    frontier[S, C]
	best     map[S]C
	depth    map[S]int
	parent   map[S]S
	seq      uint64
	expanded int

	goal  S
	found bool
}

// relax records cost for s if it improves the current label and enqueues it.
func (l *labeler[S, C]) relax(s S, cost C, depth int, parent S, hasParent bool) {
	if old, ok := l.best[s]; ok && cost >= old {
		return
	}
	l.best[s] = cost
	l.depth[s] = depth
	if l.parent != nil && hasParent {
		l.parent[s] = parent
	}
	e := entry[S, C]{state: s, cost: cost, depth: depth, seq: l.seq}
	l.seq++
	if l.p.TieBreak != nil {
		e.tie = l.p.TieBreak(s)
	}
	l.front.push(e)
}

// run drains the frontier, keeping the lowest negated goal label.
func (l *labeler[S, C]) run() error {
	var zero S
	l.relax(l.p.Start, 0, 0, zero, false)
	for l.front.len() > 0 {
		e := l.front.pop()

		// Superseded by a better label pushed later.
		if e.cost != l.best[e.state] {
			continue
		}
		if l.p.Visit != nil {
			if err := l.p.Visit(e.state, e.cost, e.depth); err != nil {
				return fmt.Errorf("search: visit hook at %v: %w", e.state, err)
			}
		}
		if l.p.Goal(e.state) {
			if !l.found || e.cost < l.best[l.goal] {
				l.goal, l.found = e.state, true
			}
			continue
		}

		l.expanded++
		for _, edge := range l.p.Successors(e.state) {
			l.relax(edge.To, e.cost+edge.Cost, e.depth+1, e.state, true)
		}
	}

	return nil
}
