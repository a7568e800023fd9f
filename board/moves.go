package board

// Move names the direction the blank travels. The canonical generation
// order is Up, Down, Left, Right; tests and the depth-first engine depend
// on it being stable.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

// Deltas indexed by Move, in canonical order.
var moveDeltas = [4]struct{ dr, dc int }{
	{-1, 0}, // Up
	{1, 0},  // Down
	{0, -1}, // Left
	{0, 1},  // Right
}

func (m Move) String() string {
	switch m {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return "NONE"
}

// A Successor is a position one legal blank-move away from its source,
// tagged with the move that produced it.
type Successor struct {
	Move  Move
	Board Board
}

// Apply slides the blank in direction m, returning the new position and
// true, or the zero Board and false when the move would leave the grid.
func (b Board) Apply(m Move) (Board, bool) {
	n := int(b.size)
	r, c := b.Blank()
	nr := r + moveDeltas[m].dr
	nc := c + moveDeltas[m].dc
	if nr < 0 || nr >= n || nc < 0 || nc >= n {
		return Board{}, false
	}
	nb := b
	nb.cells[r*n+c], nb.cells[nr*n+nc] = nb.cells[nr*n+nc], nb.cells[r*n+c]
	return nb, true
}

// Successors returns every position reachable by one blank move, in
// canonical order. A corner blank yields 2 successors, an edge blank 3,
// and the center of a 3×3 board 4.
func (b Board) Successors() []Successor {
	succs := make([]Successor, 0, 4)
	for m := Up; m <= Right; m++ {
		if nb, ok := b.Apply(m); ok {
			succs = append(succs, Successor{Move: m, Board: nb})
		}
	}
	return succs
}
