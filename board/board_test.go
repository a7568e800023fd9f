package board

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func mustBoard(t *testing.T, grid [][]int) Board {
	t.Helper()
	b, err := New(grid)
	if err != nil {
		t.Fatalf("bad test board: %v", err)
	}
	return b
}

func TestNewValidation(t *testing.T) {
	is := is.New(t)

	_, err := New([][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 0}})
	is.True(errors.Is(err, ErrUnsupportedSize))

	_, err = New([][]int{{1}})
	is.True(errors.Is(err, ErrUnsupportedSize))

	var malformed *MalformedBoardError
	_, err = New([][]int{{1, 2, 3}, {4, 5}, {7, 8, 0}})
	is.True(errors.As(err, &malformed)) // ragged rows

	_, err = New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	is.True(errors.As(err, &malformed)) // 9 out of range, no blank

	_, err = New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 7, 0}})
	is.True(errors.As(err, &malformed)) // duplicate label

	_, err = New([][]int{{1, 2, 3}, {4, -1, 6}, {7, 8, 0}})
	is.True(errors.As(err, &malformed)) // negative label

	b, err := New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}})
	is.NoErr(err)
	is.True(b.IsGoal())
}

func TestGoal(t *testing.T) {
	is := is.New(t)

	g3 := Goal(3)
	is.Equal(g3.Grid(), [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}})

	g2 := Goal(2)
	is.Equal(g2.Grid(), [][]int{{1, 2}, {3, 0}})

	r, c := g3.Blank()
	is.Equal(r, 2)
	is.Equal(c, 2)
}

func TestEqualityAndKey(t *testing.T) {
	is := is.New(t)

	a := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 5, 8}})
	b := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 5, 8}})
	c := mustBoard(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})

	is.True(a == b)
	is.Equal(a.Key(), b.Key())
	is.True(a != c)
	is.True(a.Key() != c.Key())
}

func TestManhattan(t *testing.T) {
	is := is.New(t)

	is.Equal(Goal(3).Manhattan(), 0)
	is.Equal(Goal(2).Manhattan(), 0)

	// One move from the goal: only one tile is off by one cell.
	oneAway := mustBoard(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
	is.Equal(oneAway.Manhattan(), 1)

	// Consistency: no single move changes the heuristic by more than 1.
	b := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 5, 8}})
	h := b.Manhattan()
	for _, s := range b.Successors() {
		dh := s.Board.Manhattan() - h
		if dh < 0 {
			dh = -dh
		}
		is.True(dh <= 1)
	}
}

func TestSuccessorCounts(t *testing.T) {
	is := is.New(t)

	// Blank at a corner: 2 successors.
	corner := mustBoard(t, [][]int{{0, 1, 3}, {4, 2, 5}, {7, 8, 6}})
	is.Equal(len(corner.Successors()), 2)

	// Blank at an edge: 3 successors.
	edge := mustBoard(t, [][]int{{1, 0, 3}, {4, 2, 5}, {7, 8, 6}})
	is.Equal(len(edge.Successors()), 3)

	// Blank at the center: 4 successors.
	center := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 5, 8}})
	is.Equal(len(center.Successors()), 4)

	// 2x2 boards only ever have corner blanks.
	is.Equal(len(Goal(2).Successors()), 2)
}

func TestSuccessorOrder(t *testing.T) {
	is := is.New(t)

	center := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 5, 8}})
	succs := center.Successors()
	is.Equal(len(succs), 4)
	is.Equal(succs[0].Move, Up)
	is.Equal(succs[1].Move, Down)
	is.Equal(succs[2].Move, Left)
	is.Equal(succs[3].Move, Right)

	// Up moves the blank up, swapping with the tile above.
	is.Equal(succs[0].Board.Grid(), [][]int{{1, 0, 3}, {4, 2, 6}, {7, 5, 8}})
}

func TestApplyOutOfBounds(t *testing.T) {
	is := is.New(t)

	// Blank in the bottom-right corner: Down and Right are illegal.
	g := Goal(3)
	_, ok := g.Apply(Down)
	is.True(!ok)
	_, ok = g.Apply(Right)
	is.True(!ok)

	nb, ok := g.Apply(Up)
	is.True(ok)
	is.Equal(nb.Grid(), [][]int{{1, 2, 3}, {4, 5, 0}, {7, 8, 6}})

	// Applying a move never touches the original.
	is.True(g.IsGoal())
}

func TestString(t *testing.T) {
	is := is.New(t)
	is.Equal(Goal(2).String(), "1 2\n3 .\n")
}
