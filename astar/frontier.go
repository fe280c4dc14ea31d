package astar

import "container/heap"

// item is a frontier entry; seq records insertion order for tie-breaks.
type item struct {
	node *Node
	f    float64
	seq  uint64
}

// frontier is a min-heap of *item ordered by f, then by seq.
// Equal-f nodes therefore pop first-in first-out.
type frontier []*item

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f, falling back to insertion order.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

// Pop removes and returns the minimum element.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}

// push wraps heap.Push for a node.
func (pq *frontier) push(n *Node, seq uint64) {
	heap.Push(pq, &item{node: n, f: n.F(), seq: seq})
}

// pop wraps heap.Pop.
func (pq *frontier) pop() *Node {
	return heap.Pop(pq).(*item).node
}
