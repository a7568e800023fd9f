package board

import "lukechampine.com/frand"

// inverse move, indexed by Move.
var inverseMoves = [4]Move{Down, Up, Right, Left}

// Shuffle scrambles the goal position with a random walk of legal blank
// moves, skipping any move that would undo the previous one. Because the
// walk starts at the goal and applies only legal moves, the result is
// always solvable.
func Shuffle(size, steps int) (Board, error) {
	if size != 2 && size != 3 {
		return Board{}, ErrUnsupportedSize
	}
	b := Goal(size)
	last := Move(255)
	for i := 0; i < steps; i++ {
		succs := b.Successors()
		// Drop the undo of the previous move so short walks don't
		// collapse back to the goal.
		if last != Move(255) {
			filtered := succs[:0]
			for _, s := range succs {
				if s.Move != inverseMoves[last] {
					filtered = append(filtered, s)
				}
			}
			succs = filtered
		}
		pick := succs[frand.Intn(len(succs))]
		b = pick.Board
		last = pick.Move
	}
	return b, nil
}
