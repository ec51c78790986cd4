package model

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	got := Neighbors(Cell{X: 5, Y: -3})

	want := [8]Cell{
		{4, -4}, {5, -4}, {6, -4},
		{4, -3}, {6, -3},
		{4, -2}, {5, -2}, {6, -2},
	}
	assert.Equal(t, want, got)
}

func TestNeighborsAreMooreNeighborhood(t *testing.T) {
	check := func(x, y int32) bool {
		c := Cell{X: int(x), Y: int(y)}
		seen := make(map[Cell]bool, 8)
		for _, n := range Neighbors(c) {
			dx, dy := n.X-c.X, n.Y-c.Y
			if n == c || dx < -1 || dx > 1 || dy < -1 || dy > 1 || seen[n] {
				return false
			}
			seen[n] = true
		}
		return len(seen) == 8
	}
	require.NoError(t, quick.Check(check, nil))
}

func TestCellOrdering(t *testing.T) {
	assert.True(t, Cell{1, 9}.Less(Cell{2, 0}), "x dominates")
	assert.True(t, Cell{1, 0}.Less(Cell{1, 1}), "y breaks ties")
	assert.False(t, Cell{1, 1}.Less(Cell{1, 1}), "irreflexive")
	assert.Equal(t, 0, Cell{3, 4}.Compare(Cell{3, 4}))
}

func TestCellOrderingIsStrict(t *testing.T) {
	trichotomy := func(ax, ay, bx, by int16) bool {
		a, b := Cell{int(ax), int(ay)}, Cell{int(bx), int(by)}
		if a == b {
			return !a.Less(b) && !b.Less(a)
		}
		return a.Less(b) != b.Less(a)
	}
	require.NoError(t, quick.Check(trichotomy, nil))

	transitive := func(ax, ay, bx, by, cx, cy int8) bool {
		a, b, c := Cell{int(ax), int(ay)}, Cell{int(bx), int(by)}, Cell{int(cx), int(cy)}
		if a.Less(b) && b.Less(c) {
			return a.Less(c)
		}
		return true
	}
	require.NoError(t, quick.Check(transitive, &quick.Config{MaxCount: 5000}))
}

func TestSortCells(t *testing.T) {
	cells := []Cell{{2, 0}, {0, 3}, {0, -1}, {1, 1}}
	SortCells(cells)
	assert.Equal(t, []Cell{{0, -1}, {0, 3}, {1, 1}, {2, 0}}, cells)
}
