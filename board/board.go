// Package board implements the sliding-tile puzzle board: an immutable
// N×N grid of tile labels with a single blank, for N = 2 or 3. Every
// transition produces a fresh Board value; nothing in this package mutates
// a board in place.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCells is the largest supported cell count (3×3).
const MaxCells = 9

// Blank is the label of the empty square.
const Blank = 0

var (
	// ErrUnsupportedSize is returned for any grid dimension other than 2
	// or 3. Larger puzzles are intractable for the search strategies this
	// engine implements.
	ErrUnsupportedSize = errors.New("only 2x2 and 3x3 puzzles are supported")
)

// A MalformedBoardError describes a grid that is the right size but not a
// valid puzzle position: duplicate or missing labels, out-of-range values,
// or ragged rows.
type MalformedBoardError struct {
	Reason string
}

func (e *MalformedBoardError) Error() string {
	return "malformed board: " + e.Reason
}

// Board is a puzzle position. It is a comparable value type; == is exact
// cell-wise equality and Board works directly as a map key. Only the first
// size*size entries of cells are meaningful.
type Board struct {
	size  uint8
	cells [MaxCells]uint8
}

// New validates a row-major grid and builds a Board from it. The grid must
// be square, of dimension 2 or 3, and contain every label in 0..N²-1
// exactly once.
func New(grid [][]int) (Board, error) {
	n := len(grid)
	if n != 2 && n != 3 {
		return Board{}, ErrUnsupportedSize
	}
	var b Board
	b.size = uint8(n)
	var seen [MaxCells]bool
	for r, row := range grid {
		if len(row) != n {
			return Board{}, &MalformedBoardError{
				Reason: fmt.Sprintf("row %d has %d cells, want %d", r, len(row), n),
			}
		}
		for c, v := range row {
			if v < 0 || v >= n*n {
				return Board{}, &MalformedBoardError{
					Reason: fmt.Sprintf("cell value %d out of range for a %dx%d board", v, n, n),
				}
			}
			if seen[v] {
				return Board{}, &MalformedBoardError{
					Reason: fmt.Sprintf("cell value %d appears more than once", v),
				}
			}
			seen[v] = true
			b.cells[r*n+c] = uint8(v)
		}
	}
	// A full permutation of 0..n²-1 necessarily has exactly one blank, so
	// the seen check above covers the single-blank invariant too.
	return b, nil
}

// Goal returns the solved position for the given dimension: tiles 1..N²-1
// in row-major order with the blank in the last cell. It panics on an
// unsupported size; callers reach it only through validated boards.
func Goal(size int) Board {
	if size != 2 && size != 3 {
		panic("board: unsupported goal size")
	}
	var b Board
	b.size = uint8(size)
	for i := 0; i < size*size-1; i++ {
		b.cells[i] = uint8(i + 1)
	}
	return b
}

// Size returns the grid dimension N.
func (b Board) Size() int {
	return int(b.size)
}

// Cell returns the label at row r, column c.
func (b Board) Cell(r, c int) int {
	return int(b.cells[r*int(b.size)+c])
}

// Grid returns the position as a freshly allocated row-major [][]int,
// suitable for JSON serialization.
func (b Board) Grid() [][]int {
	n := int(b.size)
	grid := make([][]int, n)
	for r := 0; r < n; r++ {
		grid[r] = make([]int, n)
		for c := 0; c < n; c++ {
			grid[r][c] = int(b.cells[r*n+c])
		}
	}
	return grid
}

// Key packs the flattened cell sequence into a canonical uint64, 4 bits
// per cell. Two boards of the same size are equal iff their keys are
// equal, so the key serves visited-set membership without hashing the
// whole grid.
func (b Board) Key() uint64 {
	n := int(b.size) * int(b.size)
	var k uint64
	for i := 0; i < n; i++ {
		k = k<<4 | uint64(b.cells[i])
	}
	return k
}

// IsGoal reports whether b is the solved position for its size.
func (b Board) IsGoal() bool {
	return b == Goal(int(b.size))
}

// Blank returns the row and column of the blank square.
func (b Board) Blank() (int, int) {
	n := int(b.size)
	for i := 0; i < n*n; i++ {
		if b.cells[i] == Blank {
			return i / n, i % n
		}
	}
	// Unreachable for boards built through New, Goal, or Apply.
	panic("board: no blank cell")
}

// Manhattan returns the sum over all non-blank tiles of the row plus
// column distance from the tile's current cell to its goal cell. The
// heuristic is admissible (a single move changes one tile's distance by
// at most 1) and consistent, which A* relies on for optimality.
func (b Board) Manhattan() int {
	n := int(b.size)
	dist := 0
	for i := 0; i < n*n; i++ {
		v := int(b.cells[i])
		if v == Blank {
			continue
		}
		// Tile v belongs at flat index v-1 in the goal arrangement.
		goalIdx := v - 1
		dr := i/n - goalIdx/n
		if dr < 0 {
			dr = -dr
		}
		dc := i%n - goalIdx%n
		if dc < 0 {
			dc = -dc
		}
		dist += dr + dc
	}
	return dist
}

// String renders the position as a small text grid, blank shown as a dot.
func (b Board) String() string {
	n := int(b.size)
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.cells[r*n+c]
			if v == Blank {
				sb.WriteByte('.')
			} else {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
