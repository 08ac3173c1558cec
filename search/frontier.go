package search

import "container/heap"

// entry is one frontier item: a state, how it was reached and its priority.
type entry[S comparable, C Cost] struct {
	state     S
	cost      C
	tie       int64 // secondary key, lower first
	seq       uint64
	depth     int
	parent    S
	hasParent bool
}

// frontier abstracts the FIFO queue and the priority queue.
type frontier[S comparable, C Cost] interface {
	push(e entry[S, C])
	pop() entry[S, C]
	len() int
}

// newFrontier returns the frontier implementation for the requested order.
func newFrontier[S comparable, C Cost](o Order) frontier[S, C] {
	if o == FIFO {
		return &fifoQueue[S, C]{}
	}
	pq := &priorityQueue[S, C]{}
	heap.Init(pq)

	return pq
}

// fifoQueue is a slice-backed queue. The consumed prefix is reclaimed once it
// dominates the backing array.
type fifoQueue[S comparable, C Cost] struct {
	items []entry[S, C]
	head  int
}

func (q *fifoQueue[S, C]) push(e entry[S, C]) { q.items = append(q.items, e) }

func (q *fifoQueue[S, C]) pop() entry[S, C] {
	e := q.items[q.head]
	var zero entry[S, C]
	q.items[q.head] = zero
	q.head++
	if q.head > 1024 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return e
}

func (q *fifoQueue[S, C]) len() int { return len(q.items) - q.head }

// priorityQueue is a binary min-heap ordered by (cost, tie, seq).
// The "lazy-decrease-key" approach is used: improved entries are pushed again
// and stale ones are dropped by the caller when popped.
type priorityQueue[S comparable, C Cost] []entry[S, C]

func (pq *priorityQueue[S, C]) push(e entry[S, C]) { heap.Push(pq, e) }

func (pq *priorityQueue[S, C]) pop() entry[S, C] { return heap.Pop(pq).(entry[S, C]) }

func (pq *priorityQueue[S, C]) len() int { return len(*pq) }

// Len returns the number of items in the heap.
func (pq priorityQueue[S, C]) Len() int { return len(pq) }

// Less orders by accumulated cost, then by tie-break key, then by insertion.
func (pq priorityQueue[S, C]) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.tie != b.tie {
		return a.tie < b.tie
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq priorityQueue[S, C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an entry.
func (pq *priorityQueue[S, C]) Push(x any) { *pq = append(*pq, x.(entry[S, C])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *priorityQueue[S, C]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	var zero entry[S, C]
	old[n-1] = zero
	*pq = old[:n-1]

	return item
}
