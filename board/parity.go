package board

import "fmt"

// Feasibility is the verdict of the parity-based solvability test, with
// the numbers behind it kept for diagnostic reporting.
type Feasibility struct {
	Solvable           bool
	Inversions         int
	BlankRowFromBottom int // 1-indexed; only meaningful for even N
}

// Inversions counts ordered pairs in the blank-excluded flattened cell
// sequence that are out of their goal order.
func (b Board) Inversions() int {
	n := int(b.size) * int(b.size)
	inv := 0
	for i := 0; i < n; i++ {
		if b.cells[i] == Blank {
			continue
		}
		for j := i + 1; j < n; j++ {
			if b.cells[j] != Blank && b.cells[i] > b.cells[j] {
				inv++
			}
		}
	}
	return inv
}

// CheckFeasible runs the parity test. For odd N the position is solvable
// iff the inversion count is even; for even N, iff inversions plus the
// blank's row counted from the bottom (1-indexed) is odd, which holds
// for the goal itself (0 inversions, blank on row 1 from the bottom).
// Running this before search matters: an unsolvable board would
// otherwise make BFS or A* enumerate the entire reachable half of the
// state space.
func (b Board) CheckFeasible() Feasibility {
	n := int(b.size)
	inv := b.Inversions()
	br, _ := b.Blank()
	fromBottom := n - br
	f := Feasibility{
		Inversions:         inv,
		BlankRowFromBottom: fromBottom,
	}
	if n%2 == 1 {
		f.Solvable = inv%2 == 0
	} else {
		f.Solvable = (inv+fromBottom)%2 == 1
	}
	return f
}

func (f Feasibility) String() string {
	verdict := "solvable"
	if !f.Solvable {
		verdict = "unsolvable"
	}
	return fmt.Sprintf("%s (%d inversions)", verdict, f.Inversions)
}
