package solver

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/castilho/ocho/board"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func mustBoard(t *testing.T, grid [][]int) board.Board {
	t.Helper()
	b, err := board.New(grid)
	if err != nil {
		t.Fatalf("bad test board: %v", err)
	}
	return b
}

// checkPath verifies the invariants every returned solution must hold:
// it starts at the start board, ends at the goal, and every consecutive
// pair differs by exactly one legal blank move.
func checkPath(t *testing.T, start board.Board, res *Result) {
	t.Helper()
	is := is.New(t)

	is.True(res.Success)
	is.True(len(res.Path) >= 1)
	is.Equal(res.Path[0], start)
	is.True(res.Path[len(res.Path)-1].IsGoal())
	is.Equal(res.Depth, len(res.Path)-1)

	for i := 0; i+1 < len(res.Path); i++ {
		legal := false
		for _, s := range res.Path[i].Successors() {
			if s.Board == res.Path[i+1] {
				legal = true
				break
			}
		}
		is.True(legal)
	}
}

func TestParseAlgorithm(t *testing.T) {
	is := is.New(t)

	for wire, want := range map[string]Algorithm{
		"BFS": BFS, "bfs": BFS,
		"DFS": DFS, "dfs": DFS,
		"A*": AStar, "astar": AStar, "ASTAR": AStar, "a-star": AStar,
	} {
		got, err := ParseAlgorithm(wire)
		is.NoErr(err)
		is.Equal(got, want)
	}

	_, err := ParseAlgorithm("IDA*")
	is.True(errors.Is(err, ErrUnknownAlgorithm))
}

func TestSolveGoalImmediately(t *testing.T) {
	is := is.New(t)

	for _, alg := range []Algorithm{BFS, DFS, AStar} {
		for _, size := range []int{2, 3} {
			res, err := Solve(board.Goal(size), alg)
			is.NoErr(err)
			is.True(res.Success)
			is.Equal(res.Depth, 0)
			is.Equal(len(res.Path), 1)
			is.Equal(res.NodesExpanded, 1)
		}
	}
}

func TestBFSAndAStarOptimal(t *testing.T) {
	is := is.New(t)

	cases := []struct {
		grid  [][]int
		depth int
	}{
		{[][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}}, 1},
		{[][]int{{1, 2, 3}, {4, 0, 6}, {7, 5, 8}}, 2},
		{[][]int{{0, 1, 3}, {4, 2, 5}, {7, 8, 6}}, 4},
		{[][]int{{1, 2}, {0, 3}}, 1},
		{[][]int{{0, 2}, {1, 3}}, 2},
	}

	for _, tc := range cases {
		start := mustBoard(t, tc.grid)

		bfsRes, err := Solve(start, BFS)
		is.NoErr(err)
		checkPath(t, start, bfsRes)
		is.Equal(bfsRes.Depth, tc.depth)

		astarRes, err := Solve(start, AStar)
		is.NoErr(err)
		checkPath(t, start, astarRes)
		is.Equal(astarRes.Depth, tc.depth)

		// Both optimal searches agree on the depth; the informed one
		// should never work harder than the uninformed one by much.
		is.Equal(astarRes.Depth, bfsRes.Depth)
		if tc.depth > 0 {
			is.True(bfsRes.NodesExpanded >= 1)
			is.True(astarRes.NodesExpanded >= 1)
			is.True(bfsRes.MaxFrontier >= 1)
		}
	}
}

func TestOptimalOnShuffledBoards(t *testing.T) {
	is := is.New(t)

	for i := 0; i < 10; i++ {
		start, err := board.Shuffle(3, 25)
		is.NoErr(err)

		bfsRes, err := Solve(start, BFS)
		is.NoErr(err)
		astarRes, err := Solve(start, AStar)
		is.NoErr(err)

		checkPath(t, start, bfsRes)
		checkPath(t, start, astarRes)
		is.Equal(bfsRes.Depth, astarRes.Depth)

		dfsRes, err := Solve(start, DFS)
		is.NoErr(err)
		if dfsRes.Success {
			checkPath(t, start, dfsRes)
			is.True(dfsRes.Depth >= bfsRes.Depth)
			is.True(dfsRes.Depth <= DefaultDepthLimit)
		}
	}
}

func TestDFSFindsSomePath(t *testing.T) {
	is := is.New(t)

	start := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 5, 8}})
	res, err := Solve(start, DFS)
	is.NoErr(err)
	checkPath(t, start, res)
	is.True(res.Depth >= 2)
	is.True(res.Depth <= DefaultDepthLimit)
}

func TestDFSDepthLimitExhaustion(t *testing.T) {
	is := is.New(t)

	// Optimal solution is 4 moves; a limit of 2 cannot reach it.
	start := mustBoard(t, [][]int{{0, 1, 3}, {4, 2, 5}, {7, 8, 6}})
	res, err := Solve(start, DFS, WithDepthLimit(2))
	is.NoErr(err)
	is.True(!res.Success)
	is.Equal(len(res.Path), 0)
	is.True(res.Message != "")
	is.True(res.NodesExpanded >= 1)
}

func TestUnsolvableRejectedBeforeSearch(t *testing.T) {
	is := is.New(t)

	start := mustBoard(t, [][]int{{1, 2, 3}, {4, 5, 6}, {8, 7, 0}})
	res, err := Solve(start, BFS)
	is.True(res == nil)

	var unsolvable *UnsolvableError
	is.True(errors.As(err, &unsolvable))
	is.Equal(unsolvable.Feasibility.Inversions, 1)
	is.Equal(unsolvable.Size, 3)
}

func TestEnginesTerminateOnUnsolvableInput(t *testing.T) {
	is := is.New(t)

	// Bypass the parity check with a 2x2 board from the unreachable
	// half of the state space. Each engine must walk the 12 reachable
	// positions and report exhaustion instead of looping.
	start := mustBoard(t, [][]int{{2, 1}, {3, 0}})
	for _, alg := range []Algorithm{BFS, DFS, AStar} {
		res, err := Solve(start, alg, WithoutFeasibilityCheck())
		is.NoErr(err)
		is.True(!res.Success)
		is.True(res.Message != "")
		is.Equal(res.NodesExpanded, 12)
	}
}

func TestNodeBudget(t *testing.T) {
	is := is.New(t)

	// A deep scramble with a tiny budget: the engine must stop and say
	// why rather than grow without bound.
	start := mustBoard(t, [][]int{{8, 7, 6}, {5, 4, 3}, {2, 1, 0}})
	for _, alg := range []Algorithm{BFS, DFS, AStar} {
		res, err := Solve(start, alg, WithMaxNodes(20))
		is.NoErr(err)
		is.True(!res.Success)
		is.True(res.Message != "")
	}
}

func TestAStarDeterministic(t *testing.T) {
	is := is.New(t)

	// Equal-f ties break by insertion order, so repeated runs expand
	// the same nodes and find the same path.
	start := mustBoard(t, [][]int{{4, 1, 3}, {7, 2, 5}, {0, 8, 6}})
	first, err := Solve(start, AStar)
	is.NoErr(err)
	checkPath(t, start, first)
	for i := 0; i < 3; i++ {
		again, err := Solve(start, AStar)
		is.NoErr(err)
		is.Equal(again.NodesExpanded, first.NodesExpanded)
		is.Equal(again.Depth, first.Depth)
		is.Equal(again.Path, first.Path)
	}
}
