// Package search provides a generic shortest/longest-path engine over an
// implicit state graph.
//
// Overview:
//
//   - The graph is never materialised. The caller supplies a start state, a
//     successor function returning (next state, incremental cost) pairs and a
//     goal predicate. States are any comparable Go value.
//   - Two frontier orderings are available: MinCost (Dijkstra with a binary
//     min-heap) and FIFO (plain breadth-first search for uniform step costs).
//   - Expansion uses "lazy deletion": duplicates may sit in the frontier, and a
//     dequeued state that was already expanded is simply discarded.
//
// Key features:
//
//   - Search: first goal state in frontier order with its accumulated cost.
//   - Longest: maximisation by negating increments over the same frontier;
//     a state is re-opened whenever a better label reaches it.
//   - Explore: the same traversal without stopping, recording the optimal cost
//     of every reachable state within optional depth and cost bounds.
//   - TieBreak: optional secondary priority key for equal-cost entries.
//   - Visit: optional hook invoked once per expanded state, used to accumulate
//     side results (counts, first occurrences) during a single traversal.
//   - WithReturnPath: predecessor tracking and start→goal path reconstruction.
//
// Guarantees:
//
//   - MinCost with non-negative increments returns a globally minimal cost.
//   - FIFO with unit increments returns the minimum number of transitions.
//   - Search and Explore expand every distinct state (request its successors)
//     at most once.
//   - Equal-cost entries are popped in (TieBreak, insertion) order, so repeated
//     runs over identical inputs produce identical results.
//
// Error handling (sentinel errors):
//
//   - ErrUnreachable:     the frontier emptied before any goal was dequeued.
//   - ErrNilSuccessors:   Problem.Successors is nil.
//   - ErrNilGoal:         Problem.Goal is nil for Search or Longest.
//   - ErrOptionViolation: an Option received an invalid argument.
//
// Complexity (MinCost):
//
//   - Time:  O((V + E) log E) for V expanded states and E generated edges.
//   - Space: O(V + E) for the visited set and the lazily pruned frontier.
//
// Concurrency:
//
//   - A call is synchronous and owns its frontier and visited set. Independent
//     calls may run on separate goroutines as long as the caller's closures
//     are themselves safe to share.
package search
