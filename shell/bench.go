package shell

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/castilho/ocho/board"
	"github.com/castilho/ocho/config"
	"github.com/castilho/ocho/solver"
)

// benchmark solves a series of freshly shuffled boards with one engine
// and prints a histogram of nodes expanded, to compare how hard the
// engines work on typical scrambles.
func (sc *ShellController) benchmark(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: bench <runs> [bfs|dfs|astar]")
	}
	runs, err := strconv.Atoi(args[0])
	if err != nil || runs < 1 {
		return fmt.Errorf("bad run count %q", args[0])
	}
	alg := solver.AStar
	if len(args) > 1 {
		alg, err = solver.ParseAlgorithm(args[1])
		if err != nil {
			return err
		}
	}

	expanded := make([]float64, 0, runs)
	var totalElapsed time.Duration
	solved := 0
	for i := 0; i < runs; i++ {
		b, err := board.Shuffle(sc.cur.Size(), defaultShuffleSteps)
		if err != nil {
			return err
		}
		res, err := solver.Solve(b, alg,
			solver.WithDepthLimit(sc.cfg.GetInt(config.KeyDepthLimit)),
			solver.WithMaxNodes(sc.cfg.GetInt(config.KeyMaxNodes)))
		if err != nil {
			return err
		}
		expanded = append(expanded, float64(res.NodesExpanded))
		totalElapsed += res.Elapsed
		if res.Success {
			solved++
		}
	}

	showMessage(fmt.Sprintf("%s solved %d/%d scrambles in %v total; nodes expanded:",
		alg, solved, runs, totalElapsed), sc.out())
	hist := histogram.Hist(10, expanded)
	if err := histogram.Fprint(sc.out(), hist, histogram.Linear(40)); err != nil {
		return err
	}
	return nil
}
