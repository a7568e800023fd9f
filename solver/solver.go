// Package solver implements the three search strategies for sliding-tile
// puzzles: breadth-first search, depth-limited depth-first search, and A*
// with the Manhattan-distance heuristic. Every call builds its own
// frontier and visited structures, so concurrent solves share nothing.
package solver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/castilho/ocho/board"
)

// DefaultDepthLimit bounds the depth-first engine when the caller does
// not supply a limit.
const DefaultDepthLimit = 50

var (
	// ErrUnknownAlgorithm is returned by ParseAlgorithm for names that do
	// not map to an engine.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// An UnsolvableError reports a structurally valid board that fails the
// parity test. Search is not attempted; the verdict carries the inversion
// diagnostics for the caller to render.
type UnsolvableError struct {
	Size        int
	Feasibility board.Feasibility
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("%dx%d board is %s", e.Size, e.Size, e.Feasibility)
}

// Algorithm selects a search engine.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	AStar
)

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case AStar:
		return "A*"
	}
	return "unknown"
}

// ParseAlgorithm maps the wire spellings of the three engines to an
// Algorithm, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BFS":
		return BFS, nil
	case "DFS":
		return DFS, nil
	case "A*", "ASTAR", "A-STAR":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result is the terminal outcome of one engine run. Path runs from the
// start board to the goal inclusive and is empty when Success is false.
// MaxFrontier is the high-water mark of the queue, stack, or priority
// queue, depending on the engine.
type Result struct {
	Success       bool
	Algorithm     Algorithm
	Path          []board.Board
	Depth         int
	NodesExpanded int
	MaxFrontier   int
	Elapsed       time.Duration
	Message       string
}

type searchOptions struct {
	depthLimit       int
	maxNodes         int
	feasibilityCheck bool
}

// Option adjusts a single Solve call.
type Option func(*searchOptions)

// WithDepthLimit sets the depth-first engine's move limit. The other
// engines ignore it.
func WithDepthLimit(limit int) Option {
	return func(o *searchOptions) { o.depthLimit = limit }
}

// WithMaxNodes imposes a caller-side budget on the number of search nodes
// an engine may create before giving up. Zero means no budget.
func WithMaxNodes(n int) Option {
	return func(o *searchOptions) { o.maxNodes = n }
}

// WithoutFeasibilityCheck skips the parity test. The engines still
// terminate on unsolvable input; they just do so by exhausting the
// reachable state space first.
func WithoutFeasibilityCheck() Option {
	return func(o *searchOptions) { o.feasibilityCheck = false }
}

// Solve runs the parity-based feasibility check and then the chosen
// engine against the fixed goal for the board's size. It returns an
// *UnsolvableError without searching when the check fails; an exhausted
// search is not an error but a Result with Success=false.
func Solve(start board.Board, alg Algorithm, opts ...Option) (*Result, error) {
	o := searchOptions{
		depthLimit:       DefaultDepthLimit,
		feasibilityCheck: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.feasibilityCheck {
		if f := start.CheckFeasible(); !f.Solvable {
			return nil, &UnsolvableError{Size: start.Size(), Feasibility: f}
		}
	}

	switch alg {
	case BFS:
		return solveBFS(start, o), nil
	case DFS:
		return solveDFS(start, o), nil
	case AStar:
		return solveAStar(start, o), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, alg)
}
