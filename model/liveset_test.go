package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveSetDedupesOnInsert(t *testing.T) {
	s := NewLiveSet(Cell{1, 1}, Cell{1, 1}, Cell{2, 2})
	assert.Equal(t, 2, s.Len())

	assert.False(t, s.Add(Cell{2, 2}), "already alive")
	assert.True(t, s.Add(Cell{3, 3}))
	assert.Equal(t, 3, s.Len())
}

func TestLiveSetZeroValue(t *testing.T) {
	var s LiveSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(Cell{}))
	assert.False(t, s.Remove(Cell{}))

	assert.True(t, s.Add(Cell{}))
	assert.True(t, s.Contains(Cell{}))
}

func TestLiveSetToggleAndRemove(t *testing.T) {
	s := NewLiveSet()
	c := Cell{-4, 9}

	assert.True(t, s.Toggle(c))
	assert.True(t, s.Contains(c))
	assert.False(t, s.Toggle(c))
	assert.False(t, s.Contains(c))

	s.Add(c)
	assert.True(t, s.Remove(c))
	assert.False(t, s.Remove(c))
}

func TestLiveSetCloneIsIndependent(t *testing.T) {
	s := NewLiveSet(Cell{0, 0})
	clone := s.Clone()
	clone.Add(Cell{5, 5})

	assert.False(t, s.Contains(Cell{5, 5}))
	assert.False(t, s.Equal(clone))

	clone.Remove(Cell{5, 5})
	assert.True(t, s.Equal(clone))
}

func TestLiveSetClear(t *testing.T) {
	s := NewLiveSet(Cell{0, 0}, Cell{1, 0})
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestLiveSetSortedAndEach(t *testing.T) {
	s := NewLiveSet(Cell{3, 0}, Cell{-1, 5}, Cell{-1, 2})
	assert.Equal(t, []Cell{{-1, 2}, {-1, 5}, {3, 0}}, s.Sorted())

	seen := 0
	s.Each(func(c Cell) {
		assert.True(t, s.Contains(c))
		seen++
	})
	assert.Equal(t, 3, seen)
}

func TestBounds(t *testing.T) {
	empty := NewLiveSet().Bounds()
	assert.True(t, empty.Empty)
	assert.Equal(t, 0, empty.Area())

	b := NewLiveSet(Cell{-2, 3}, Cell{4, -1}, Cell{0, 0}).Bounds()
	assert.Equal(t, Bounds{MinX: -2, MaxX: 4, MinY: -1, MaxY: 3}, b)
	assert.Equal(t, 7, b.Width())
	assert.Equal(t, 5, b.Height())
	assert.Equal(t, 35, b.Area())
	assert.True(t, b.Contains(Cell{4, 3}))
	assert.False(t, b.Contains(Cell{5, 3}))
}

func TestNewBounds(t *testing.T) {
	b := NewBounds(10, 20, 3, 2)
	assert.Equal(t, Bounds{MinX: 10, MaxX: 12, MinY: 20, MaxY: 21}, b)
	assert.True(t, NewBounds(0, 0, 0, 5).Empty)
	assert.False(t, NewBounds(0, 0, 0, 5).Contains(Cell{}))
}
