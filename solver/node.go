package solver

import "github.com/castilho/ocho/board"

const noParent = int32(-1)

// A searchNode ties a position to the path that reached it. Nodes are
// never mutated after creation; parent links are indices into the arena
// rather than pointers, so a finished search frees everything at once.
type searchNode struct {
	board  board.Board
	parent int32
	cost   int32 // moves from the start; child cost = parent cost + 1
}

// nodeArena owns every node created during one engine run.
type nodeArena struct {
	nodes []searchNode
}

func newArena() *nodeArena {
	return &nodeArena{nodes: make([]searchNode, 0, 256)}
}

// add appends a node and returns its index.
func (a *nodeArena) add(b board.Board, parent int32, cost int32) int32 {
	a.nodes = append(a.nodes, searchNode{board: b, parent: parent, cost: cost})
	return int32(len(a.nodes) - 1)
}

func (a *nodeArena) at(idx int32) *searchNode {
	return &a.nodes[idx]
}

func (a *nodeArena) len() int {
	return len(a.nodes)
}

// path walks parent links from idx back to the root and returns the
// boards in start-to-goal order.
func (a *nodeArena) path(idx int32) []board.Board {
	depth := 0
	for i := idx; i != noParent; i = a.nodes[i].parent {
		depth++
	}
	path := make([]board.Board, depth)
	for i := idx; i != noParent; i = a.nodes[i].parent {
		depth--
		path[depth] = a.nodes[i].board
	}
	return path
}
