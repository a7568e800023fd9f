package solver

import "container/heap"

// frontierItem is one priority-queue entry. seq is a monotonically
// increasing insertion stamp; equal-f entries leave the queue in the
// order they arrived, which keeps A* deterministic.
type frontierItem struct {
	node  int32
	f     int32
	seq   uint64
	index int
}

type frontierQueue struct {
	items   []*frontierItem
	nextSeq uint64
}

func (q *frontierQueue) Len() int { return len(q.items) }

func (q *frontierQueue) Less(i, j int) bool {
	if q.items[i].f != q.items[j].f {
		return q.items[i].f < q.items[j].f
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *frontierQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *frontierQueue) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(q.items)
	q.items = append(q.items, item)
}

func (q *frontierQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}

// push stamps the entry and pushes it through container/heap.
func (q *frontierQueue) push(node, f int32) {
	item := &frontierItem{node: node, f: f, seq: q.nextSeq}
	q.nextSeq++
	heap.Push(q, item)
}
