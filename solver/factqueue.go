package solver

import "container/heap"

// factQueue is a max-heap of flat (coset*rank+gen) fact indices: the
// largest index is always drained first, so deductions at larger cosets
// are processed before smaller ones within a single fact burst — this
// avoids redundant work when multiple coincidences collapse the
// frontier. Built on container/heap, the same way a graph-shortest-path
// priority queue is, just inverted into a max-heap instead of a min-heap.
type factQueue []int

func (q factQueue) Len() int            { return len(q) }
func (q factQueue) Less(i, j int) bool  { return q[i] > q[j] } // max-heap
func (q factQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *factQueue) Push(x interface{}) { *q = append(*q, x.(int)) }
func (q *factQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

func newFactQueue() *factQueue {
	q := &factQueue{}
	heap.Init(q)
	return q
}

func (q *factQueue) push(fact int) {
	heap.Push(q, fact)
}

func (q *factQueue) pop() int {
	return heap.Pop(q).(int)
}
