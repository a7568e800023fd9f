package solver

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/castilho/ocho/board"
)

// solveBFS explores positions in FIFO order. With every move costing 1,
// nodes leave the queue in non-decreasing path-cost order, so the first
// goal dequeued is a shortest solution.
func solveBFS(start board.Board, o searchOptions) *Result {
	t0 := time.Now()
	res := &Result{Algorithm: BFS}

	arena := newArena()
	root := arena.add(start, noParent, 0)

	// Frontier of arena indices; head advances instead of re-slicing so
	// the backing array is reused.
	queue := []int32{root}
	head := 0
	res.MaxFrontier = 1

	// Visited is marked on enqueue, never on dequeue, so a position is
	// queued at most once.
	visited := map[uint64]bool{start.Key(): true}

	for head < len(queue) {
		idx := queue[head]
		head++
		node := arena.at(idx)
		res.NodesExpanded++

		if node.board.IsGoal() {
			res.Success = true
			res.Path = arena.path(idx)
			res.Depth = len(res.Path) - 1
			res.Elapsed = time.Since(t0)
			log.Debug().Int("nodesExpanded", res.NodesExpanded).
				Int("depth", res.Depth).Msg("bfs-found")
			return res
		}

		cost := node.cost
		for _, s := range node.board.Successors() {
			k := s.Board.Key()
			if visited[k] {
				continue
			}
			if o.maxNodes > 0 && arena.len() >= o.maxNodes {
				return budgetExhausted(res, o.maxNodes, t0)
			}
			visited[k] = true
			queue = append(queue, arena.add(s.Board, idx, cost+1))
		}
		if f := len(queue) - head; f > res.MaxFrontier {
			res.MaxFrontier = f
		}
	}

	res.Message = "search space exhausted without reaching the goal"
	res.Elapsed = time.Since(t0)
	return res
}

func budgetExhausted(res *Result, budget int, t0 time.Time) *Result {
	res.Message = fmt.Sprintf("node budget of %d exhausted", budget)
	res.Elapsed = time.Since(t0)
	log.Warn().Stringer("algorithm", res.Algorithm).Int("budget", budget).
		Msg("node-budget-exhausted")
	return res
}
