package solver

import (
	"container/heap"
	"time"

	"github.com/castilho/ocho/board"
)

// solveAStar orders the frontier by f = g + h, with h the Manhattan
// distance to the goal. The heuristic is admissible and consistent, so
// the first time the goal leaves the priority queue its path cost is the
// true shortest distance.
func solveAStar(start board.Board, o searchOptions) *Result {
	t0 := time.Now()
	res := &Result{Algorithm: AStar}

	arena := newArena()
	root := arena.add(start, noParent, 0)

	pq := &frontierQueue{}
	pq.push(root, int32(start.Manhattan()))
	res.MaxFrontier = 1

	// Best known path cost per position. A popped entry whose recorded
	// cost beat the entry's own is stale and skipped; stale entries are
	// never removed from the queue eagerly.
	bestCost := map[uint64]int32{start.Key(): 0}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*frontierItem)
		node := arena.at(item.node)
		if c, ok := bestCost[node.board.Key()]; ok && c < node.cost {
			continue
		}
		res.NodesExpanded++

		if node.board.IsGoal() {
			res.Success = true
			res.Path = arena.path(item.node)
			res.Depth = len(res.Path) - 1
			res.Elapsed = time.Since(t0)
			return res
		}

		cost := node.cost
		for _, s := range node.board.Successors() {
			k := s.Board.Key()
			g := cost + 1
			if c, ok := bestCost[k]; ok && c <= g {
				continue
			}
			if o.maxNodes > 0 && arena.len() >= o.maxNodes {
				return budgetExhausted(res, o.maxNodes, t0)
			}
			bestCost[k] = g
			child := arena.add(s.Board, item.node, g)
			pq.push(child, g+int32(s.Board.Manhattan()))
		}
		if pq.Len() > res.MaxFrontier {
			res.MaxFrontier = pq.Len()
		}
	}

	res.Message = "search space exhausted without reaching the goal"
	res.Elapsed = time.Since(t0)
	return res
}
