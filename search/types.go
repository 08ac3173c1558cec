// Package search defines the problem description, tunable options, results
// and sentinel errors of the implicit-graph search engine.
package search

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the search engine.
var (
	// ErrUnreachable indicates that the frontier was exhausted without
	// dequeuing a goal state.
	ErrUnreachable = errors.New("search: goal unreachable")

	// ErrNilSuccessors indicates that Problem.Successors was not provided.
	ErrNilSuccessors = errors.New("search: successor function is nil")

	// ErrNilGoal indicates that Problem.Goal was not provided to a call that
	// must stop at a goal.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrOptionViolation indicates that an Option received an invalid argument.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Cost is the numeric type of transition costs. Signed so that Longest can
// negate increments.
type Cost interface {
	constraints.Signed | constraints.Float
}

// Order selects how the frontier is ordered.
type Order int

const (
	// MinCost expands the entry with the lowest accumulated cost first
	// (Dijkstra). Required for non-uniform, non-negative increments.
	MinCost Order = iota

	// FIFO expands entries in insertion order (breadth-first search). Only
	// optimal when every increment is identical.
	FIFO
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case MinCost:
		return "min-cost"
	case FIFO:
		return "fifo"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Edge is one outgoing transition of a state: the successor and the
// incremental cost of reaching it.
type Edge[S comparable, C Cost] struct {
	To   S
	Cost C
}

// Problem describes an implicit graph and what to look for in it.
//
// Start      – initial state; not validated.
// Successors – finite successor list per state; called at most once per
// distinct expanded state.
// Goal       – termination test evaluated when a state is dequeued.
// TieBreak   – optional secondary priority key; lower keys pop first among
// entries of equal cost. Ignored by FIFO.
// Visit      – optional hook called once per expanded state (after the goal
// test passed or failed, before expansion). A non-nil error aborts the call.
type Problem[S comparable, C Cost] struct {
	Start      S
	Successors func(S) []Edge[S, C]
	Goal       func(S) bool
	TieBreak   func(S) int64
	Visit      func(s S, cost C, depth int) error
}

// Options configures the engine.
//
// Order      – MinCost (default) or FIFO.
// ReturnPath – if true, predecessors are kept and Result.Path is filled.
// MaxDepth   – if > 0, states deeper than this many transitions are never
// enqueued. 0 means unlimited. Requires FIFO: under MinCost a cheaper but
// deeper arrival would settle a state and hide a shallower route.
// MaxCost    – states whose accumulated cost exceeds this bound are never
// enqueued. Default +Inf.
type Options struct {
	Order      Order
	ReturnPath bool
	MaxDepth   int
	MaxCost    float64

	// error recorded while applying options
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with MinCost ordering, no path tracking and
// no bounds.
func DefaultOptions() Options {
	return Options{
		Order:      MinCost,
		ReturnPath: false,
		MaxDepth:   0,
		MaxCost:    math.Inf(1),
	}
}

// WithOrder selects the frontier ordering.
func WithOrder(o Order) Option {
	return func(opts *Options) {
		switch o {
		case MinCost, FIFO:
			opts.Order = o
		default:
			opts.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, int(o))
		}
	}
}

// WithReturnPath enables predecessor tracking so Result.Path is populated.
func WithReturnPath() Option {
	return func(opts *Options) {
		opts.ReturnPath = true
	}
}

// WithMaxDepth bounds the number of transitions from the start state.
//
//	d > 0: states more than d transitions away are not enqueued
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
//
// A positive bound is only accepted together with WithOrder(FIFO); Search
// and Explore return ErrOptionViolation otherwise, and Longest always does.
func WithMaxDepth(d int) Option {
	return func(opts *Options) {
		if d < 0 {
			opts.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		opts.MaxDepth = d
	}
}

// WithMaxCost bounds the accumulated cost of enqueued states. Must be
// non-negative and not NaN.
func WithMaxCost(c float64) Option {
	return func(opts *Options) {
		if c < 0 || math.IsNaN(c) {
			opts.err = fmt.Errorf("%w: MaxCost must be non-negative (%v)", ErrOptionViolation, c)
			return
		}
		opts.MaxCost = c
	}
}

// Result is the outcome of Search or Longest.
type Result[S comparable, C Cost] struct {
	// Goal is the first goal state dequeued.
	Goal S

	// Cost is the accumulated cost from Start to Goal.
	Cost C

	// Depth is the number of transitions from Start to Goal.
	Depth int

	// Path lists the states from Start to Goal inclusive. Nil unless
	// WithReturnPath was given.
	Path []S

	// Expanded counts the distinct states whose successors were requested.
	Expanded int
}

// Reach is the outcome of Explore.
type Reach[S comparable, C Cost] struct {
	// Cost maps every settled state to its optimal accumulated cost.
	Cost map[S]C

	// Depth maps every settled state to its transition count.
	Depth map[S]int

	// Goals lists the settled states satisfying Problem.Goal, in the order
	// they were dequeued.
	Goals []S

	// Order lists every settled state in dequeue order.
	Order []S

	// Expanded counts the distinct states whose successors were requested.
	Expanded int

	parent map[S]S
}

// PathTo reconstructs the path from the start state to dest. Requires
// WithReturnPath; returns ErrUnreachable if dest was never settled.
func (r *Reach[S, C]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Cost[dest]; !ok {
		return nil, fmt.Errorf("%w: %v was not reached", ErrUnreachable, dest)
	}
	if r.parent == nil {
		return nil, fmt.Errorf("%w: path tracking disabled", ErrOptionViolation)
	}

	return buildPath(r.parent, dest), nil
}

// buildPath walks parent links back from dest and reverses them.
func buildPath[S comparable](parent map[S]S, dest S) []S {
	path := []S{dest}
	for cur := dest; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
