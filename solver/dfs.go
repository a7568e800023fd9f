package solver

import (
	"fmt"
	"time"

	"github.com/castilho/ocho/board"
)

// solveDFS explores positions in LIFO order down to a configurable depth
// limit. Nodes sitting at the limit are popped but not expanded. A global
// visited set keeps the stack finite; the price is that the engine finds
// some solution within the limit, not necessarily the shallowest one.
func solveDFS(start board.Board, o searchOptions) *Result {
	t0 := time.Now()
	res := &Result{Algorithm: DFS}
	limit := int32(o.depthLimit)

	arena := newArena()
	stack := []int32{arena.add(start, noParent, 0)}
	res.MaxFrontier = 1

	// Marked on push, like BFS marks on enqueue.
	visited := map[uint64]bool{start.Key(): true}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := arena.at(idx)
		res.NodesExpanded++

		if node.board.IsGoal() {
			res.Success = true
			res.Path = arena.path(idx)
			res.Depth = len(res.Path) - 1
			res.Elapsed = time.Since(t0)
			return res
		}

		cost := node.cost
		if cost >= limit {
			continue
		}

		// Push in reverse canonical order so Up is expanded first,
		// keeping the exploration order deterministic.
		succs := node.board.Successors()
		for i := len(succs) - 1; i >= 0; i-- {
			k := succs[i].Board.Key()
			if visited[k] {
				continue
			}
			if o.maxNodes > 0 && arena.len() >= o.maxNodes {
				return budgetExhausted(res, o.maxNodes, t0)
			}
			visited[k] = true
			stack = append(stack, arena.add(succs[i].Board, idx, cost+1))
		}
		if len(stack) > res.MaxFrontier {
			res.MaxFrontier = len(stack)
		}
	}

	res.Message = fmt.Sprintf("no solution found within depth limit of %d", o.depthLimit)
	res.Elapsed = time.Since(t0)
	return res
}
