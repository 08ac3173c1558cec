// Package search implements the settle-once engine shared by Search and
// Explore.
//
// Notes on implementation choices:
//
//   - Goal test happens on dequeue, never on enqueue, so MinCost results are
//     optimal.
//   - "Lazy" decrease-key: improved entries are pushed again and stale entries
//     are dropped when popped, because the state is already in visited.
//   - Successors that are already expanded are filtered at enqueue time
//     instead of being pushed and discarded on dequeue. With non-negative
//     increments their cost is final, so the result is the same and the
//     frontier stays smaller.
package search

import (
	"fmt"
)

// Search finds the first goal state reachable from p.Start, expanding states
// in the order selected by Options.Order. Successors whose state was already
// expanded are dropped before they reach the frontier.
//
// Returns:
//
//   - *Result with Goal, Cost, Depth, Expanded and (if WithReturnPath) Path.
//   - ErrNilSuccessors / ErrNilGoal for an incomplete Problem.
//   - ErrOptionViolation for invalid options, including WithMaxDepth
//     without FIFO.
//   - ErrUnreachable if the frontier empties without a goal.
//   - a wrapped error returned by Problem.Visit.
//
// Complexity: O((V + E) log E) time for MinCost, O(V + E) for FIFO;
// O(V + E) space.
func Search[S comparable, C Cost](p Problem[S, C], opts ...Option) (*Result[S, C], error) {
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

	r := newRunner(p, cfg)
	r.init()
	goal, found, err := r.run(true)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %d states expanded from %v", ErrUnreachable, r.expanded, p.Start)
	}

	res := &Result[S, C]{
		Goal:     goal.state,
		Cost:     goal.cost,
		Depth:    goal.depth,
		Expanded: r.expanded,
	}
	if cfg.ReturnPath {
		res.Path = buildPath(r.parent, goal.state)
	}

	return res, nil
}

// Explore performs the same traversal as Search but never stops early. Every
// state reachable within MaxDepth/MaxCost is settled with its optimal cost.
// States satisfying p.Goal (when non-nil) are recorded in Reach.Goals and are
// treated as terminal: they are not expanded.
//
// Explore never returns ErrUnreachable; an empty Goals slice tells the caller
// that no goal was found.
func Explore[S comparable, C Cost](p Problem[S, C], opts ...Option) (*Reach[S, C], error) {
	if p.Successors == nil {
		return nil, ErrNilSuccessors
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	reach := &Reach[S, C]{
		Cost:  make(map[S]C),
		Depth: make(map[S]int),
	}
	r := newRunner(p, cfg)
	r.onSettle = func(e entry[S, C], goal bool) {
		reach.Cost[e.state] = e.cost
		reach.Depth[e.state] = e.depth
		reach.Order = append(reach.Order, e.state)
		if goal {
			reach.Goals = append(reach.Goals, e.state)
		}
	}
	r.init()
	if _, _, err = r.run(false); err != nil {
		return nil, err
	}
	reach.Expanded = r.expanded
	reach.parent = r.parent

	return reach, nil
}

// buildOptions applies opts over DefaultOptions and surfaces any recorded
// violation.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Options{}, cfg.err
	}
	if cfg.MaxDepth > 0 && cfg.Order != FIFO {
		return Options{}, fmt.Errorf("%w: MaxDepth requires FIFO order, got %s", ErrOptionViolation, cfg.Order)
	}

	return cfg, nil
}

// runner holds the mutable state of one settle-once traversal.
type runner[S comparable, C Cost] struct {
	p        Problem[S, C]
	opts     Options
	front    frontier[S, C]
	visited  map[S]struct{}
	parent   map[S]S // nil unless ReturnPath
	seq      uint64
	expanded int

	// onSettle, if set, observes every state the first time it is dequeued.
	onSettle func(e entry[S, C], goal bool)
}

// newRunner allocates the frontier and bookkeeping maps.
func newRunner[S comparable, C Cost](p Problem[S, C], cfg Options) *runner[S, C] {
	r := &runner[S, C]{
		p:       p,
		opts:    cfg,
		front:   newFrontier[S, C](cfg.Order),
		visited: make(map[S]struct{}),
	}
	if cfg.ReturnPath {
		r.parent = make(map[S]S)
	}

	return r
}

// init seeds the frontier with the start state at cost 0.
func (r *runner[S, C]) init() {
	r.push(entry[S, C]{state: r.p.Start})
}

// push stamps the insertion sequence and tie-break key, then enqueues.
func (r *runner[S, C]) push(e entry[S, C]) {
	e.seq = r.seq
	r.seq++
	if r.p.TieBreak != nil && r.opts.Order == MinCost {
		e.tie = r.p.TieBreak(e.state)
	}
	r.front.push(e)
}

// run is the dequeue/expand loop. With stopAtGoal it returns the first goal
// entry; otherwise it drains the frontier and reports found == false.
func (r *runner[S, C]) run(stopAtGoal bool) (entry[S, C], bool, error) {
	var zero entry[S, C]
	for r.front.len() > 0 {
		e := r.front.pop()

		// Stale duplicate of an already expanded state.
		if _, seen := r.visited[e.state]; seen {
			continue
		}
		r.visited[e.state] = struct{}{}
		if r.parent != nil && e.hasParent {
			r.parent[e.state] = e.parent
		}

		goal := r.p.Goal != nil && r.p.Goal(e.state)
		if r.onSettle != nil {
			r.onSettle(e, goal)
		}
		if r.p.Visit != nil {
			if err := r.p.Visit(e.state, e.cost, e.depth); err != nil {
				return zero, false, fmt.Errorf("search: visit hook at %v: %w", e.state, err)
			}
		}

		if goal {
			if stopAtGoal {
				return e, true, nil
			}
			continue
		}
		r.expand(e)
	}

	return zero, false, nil
}

// expand requests the successors of e and enqueues those within bounds.
func (r *runner[S, C]) expand(e entry[S, C]) {
	nextDepth := e.depth + 1
	if r.opts.MaxDepth > 0 && nextDepth > r.opts.MaxDepth {
		return
	}
	r.expanded++
	for _, edge := range r.p.Successors(e.state) {
		// Expanded states hold their final cost, so pushing them again would
		// only produce a stale entry for run to drop.
		if _, seen := r.visited[edge.To]; seen {
			continue
		}
		next := e.cost + edge.Cost
		if float64(next) > r.opts.MaxCost {
			continue
		}
		r.push(entry[S, C]{
			state:     edge.To,
			cost:      next,
			depth:     nextDepth,
			parent:    e.state,
			hasParent: true,
		})
	}
}
