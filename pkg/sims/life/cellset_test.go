package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellSetBasics(t *testing.T) {
	s := NewCellSet()
	c := Cell{Row: -4, Col: 9}

	assert.False(t, s.Contains(c))
	s.Add(c)
	s.Add(c)
	assert.True(t, s.Contains(c))
	assert.Equal(t, 1, s.Len())

	s.Remove(Cell{Row: 100, Col: 100})
	assert.Equal(t, 1, s.Len())

	s.Remove(c)
	assert.False(t, s.Contains(c))
	assert.Equal(t, 0, s.Len())

	s.Add(Cell{1, 1})
	s.Add(Cell{2, 2})
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestCellSetCloneIsIndependent(t *testing.T) {
	s := NewCellSet(Cell{0, 0}, Cell{1, 1})
	c := s.Clone()
	c.Add(Cell{5, 5})
	s.Remove(Cell{0, 0})

	assert.True(t, c.Contains(Cell{0, 0}))
	assert.False(t, s.Contains(Cell{5, 5}))
}

func TestCellSetCellsSorted(t *testing.T) {
	s := NewCellSet(Cell{3, 1}, Cell{-2, 7}, Cell{3, 0}, Cell{0, 0})
	assert.Equal(t, []Cell{{-2, 7}, {0, 0}, {3, 0}, {3, 1}}, s.Cells())
}

func TestCellSetBounds(t *testing.T) {
	_, _, ok := NewCellSet().Bounds()
	assert.False(t, ok)

	lo, hi, ok := NewCellSet(Cell{3, -1}, Cell{-2, 7}, Cell{5, 0}).Bounds()
	require.True(t, ok)
	assert.Equal(t, Cell{-2, -1}, lo)
	assert.Equal(t, Cell{5, 7}, hi)
}

func TestCellSetTranslateAndEqual(t *testing.T) {
	s := NewCellSet(Cell{0, 0}, Cell{1, 2})
	moved := s.Translate(-3, 4)

	assert.True(t, moved.Equal(NewCellSet(Cell{-3, 4}, Cell{-2, 6})))
	assert.False(t, moved.Equal(s))
	assert.False(t, s.Equal(NewCellSet(Cell{0, 0})))
}
