// Package shell is an interactive console for the puzzle engine: set up
// a board, scramble it, move tiles by hand, run any of the three search
// engines, and step through the solution.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/castilho/ocho/board"
	"github.com/castilho/ocho/config"
	"github.com/castilho/ocho/solver"
)

const defaultShuffleSteps = 40

var errQuit = errors.New("sending quit signal")

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	cur        board.Board
	lastResult *solver.Result
	pathPos    int
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mocho>\033[0m ",
		HistoryFile:     "/tmp/ocho_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg, cur: board.Goal(3)}
}

func (sc *ShellController) out() io.Writer {
	return sc.l.Stderr()
}

func (sc *ShellController) showBoard() {
	showMessage(sc.cur.String(), sc.out())
}

func (sc *ShellController) handle(line string, sig chan os.Signal) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		fields = strings.Fields(line)
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "new", "reset":
		size := 3
		if len(args) > 0 {
			size, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad size %q", args[0])
			}
		}
		if size != 2 && size != 3 {
			return board.ErrUnsupportedSize
		}
		sc.cur = board.Goal(size)
		sc.lastResult = nil
		sc.showBoard()

	case "show":
		sc.showBoard()

	case "shuffle":
		steps := defaultShuffleSteps
		if len(args) > 0 {
			steps, err = strconv.Atoi(args[0])
			if err != nil || steps < 1 {
				return fmt.Errorf("bad step count %q", args[0])
			}
		}
		sc.cur, err = board.Shuffle(sc.cur.Size(), steps)
		if err != nil {
			return err
		}
		sc.lastResult = nil
		sc.showBoard()

	case "move", "m":
		if len(args) == 0 {
			return errors.New("usage: move u|d|l|r")
		}
		m, err := parseMove(args[0])
		if err != nil {
			return err
		}
		nb, ok := sc.cur.Apply(m)
		if !ok {
			showMessage("illegal move", sc.out())
			return nil
		}
		sc.cur = nb
		sc.lastResult = nil
		sc.showBoard()

	case "check":
		showMessage(sc.cur.CheckFeasible().String(), sc.out())

	case "solve":
		alg := solver.AStar
		if len(args) > 0 {
			alg, err = solver.ParseAlgorithm(args[0])
			if err != nil {
				return err
			}
		}
		sc.runSolve(alg)

	case "path":
		sc.stepPath()

	case "bench":
		return sc.benchmark(args)

	case "set":
		return sc.setParam(args)

	case "bye", "exit":
		sig <- syscall.SIGINT
		return errQuit

	case "help":
		usage(sc.out())

	default:
		if strings.TrimSpace(line) != "" {
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
			showMessage("unknown command; try help", sc.out())
		}
	}
	return nil
}

func parseMove(s string) (board.Move, error) {
	switch strings.ToLower(s) {
	case "u", "up":
		return board.Up, nil
	case "d", "down":
		return board.Down, nil
	case "l", "left":
		return board.Left, nil
	case "r", "right":
		return board.Right, nil
	}
	return 0, fmt.Errorf("bad move %q; want u, d, l, or r", s)
}

func (sc *ShellController) runSolve(alg solver.Algorithm) {
	res, err := solver.Solve(sc.cur, alg,
		solver.WithDepthLimit(sc.cfg.GetInt(config.KeyDepthLimit)),
		solver.WithMaxNodes(sc.cfg.GetInt(config.KeyMaxNodes)))
	if err != nil {
		showMessage(err.Error(), sc.out())
		return
	}
	if !res.Success {
		showMessage(fmt.Sprintf("%s: %s (%d nodes expanded)",
			res.Algorithm, res.Message, res.NodesExpanded), sc.out())
		return
	}
	sc.lastResult = res
	sc.pathPos = 0
	showMessage(fmt.Sprintf(
		"%s found a %d-move solution in %v; %d nodes expanded, frontier peaked at %d",
		res.Algorithm, res.Depth, res.Elapsed, res.NodesExpanded, res.MaxFrontier),
		sc.out())
	showMessage("use path to step through it", sc.out())
}

func (sc *ShellController) stepPath() {
	if sc.lastResult == nil {
		showMessage("no solution to step through; run solve first", sc.out())
		return
	}
	path := sc.lastResult.Path
	if sc.pathPos >= len(path) {
		showMessage("end of solution; run path again to restart", sc.out())
		sc.pathPos = 0
		return
	}
	showMessage(fmt.Sprintf("step %d of %d", sc.pathPos, len(path)-1), sc.out())
	showMessage(path[sc.pathPos].String(), sc.out())
	sc.pathPos++
}

func (sc *ShellController) setParam(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: set depth-limit|max-nodes <n>")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		return fmt.Errorf("bad value %q", args[1])
	}
	switch args[0] {
	case config.KeyDepthLimit, config.KeyMaxNodes:
		sc.cfg.Set(args[0], n)
	default:
		return fmt.Errorf("unknown parameter %q", args[0])
	}
	showMessage(fmt.Sprintf("%s = %d", args[0], n), sc.out())
	return nil
}

// Loop reads commands until interrupted.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if err := sc.handle(line, sig); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			showMessage(err.Error(), sc.out())
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line and returns, for one-shot
// invocations from the command line.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if err := sc.handle(strings.TrimSpace(line), sig); err != nil {
		log.Error().Err(err).Msg("")
	}
}

func (sc *ShellController) Cleanup() {
	sc.l.Close()
}
