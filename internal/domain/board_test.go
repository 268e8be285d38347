package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardWith(assignments map[Cell]uint8) *Board {
	var values [9][9]uint8
	for c, d := range assignments {
		values[c.Row][c.Col] = d
	}
	return NewBoard(values)
}

func TestNewBoardMarksGivens(t *testing.T) {
	b := boardWith(map[Cell]uint8{{Row: 0, Col: 0}: 5})
	assert.True(t, b.Given(Cell{Row: 0, Col: 0}))
	assert.False(t, b.Given(Cell{Row: 0, Col: 1}))

	b.Assign(Cell{Row: 0, Col: 1}, 3)
	assert.Equal(t, uint8(3), b.Value(Cell{Row: 0, Col: 1}))
	assert.False(t, b.Given(Cell{Row: 0, Col: 1}), "solved-in cells are not givens")
}

func TestAssignRejectsOutOfRangeDigit(t *testing.T) {
	b := NewBoard([9][9]uint8{})
	require.Panics(t, func() { b.Assign(Cell{}, 0) })
	require.Panics(t, func() { b.Assign(Cell{}, 10) })
}

func TestUnassigned(t *testing.T) {
	b := boardWith(map[Cell]uint8{{Row: 2, Col: 3}: 7})
	un := b.Unassigned()
	assert.Len(t, un, 80)
	assert.NotContains(t, un, Cell{Row: 2, Col: 3})
}

func TestIsComplete(t *testing.T) {
	var values [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			values[r][c] = uint8((r*3+r/3+c)%9) + 1
		}
	}
	b := NewBoard(values)
	assert.True(t, b.IsComplete())

	b2 := boardWith(map[Cell]uint8{{Row: 0, Col: 0}: 1})
	assert.False(t, b2.IsComplete())
}

func TestIsConsistentDetectsDuplicates(t *testing.T) {
	assert.True(t, NewBoard([9][9]uint8{}).IsConsistent())

	row := boardWith(map[Cell]uint8{{Row: 0, Col: 1}: 7, {Row: 0, Col: 6}: 7})
	assert.False(t, row.IsConsistent(), "row duplicate")

	col := boardWith(map[Cell]uint8{{Row: 1, Col: 4}: 2, {Row: 8, Col: 4}: 2})
	assert.False(t, col.IsConsistent(), "column duplicate")

	box := boardWith(map[Cell]uint8{{Row: 0, Col: 0}: 9, {Row: 2, Col: 2}: 9})
	assert.False(t, box.IsConsistent(), "box duplicate")

	ok := boardWith(map[Cell]uint8{{Row: 0, Col: 0}: 9, {Row: 3, Col: 3}: 9})
	assert.True(t, ok.IsConsistent())
}

func TestCloneIsIndependent(t *testing.T) {
	b := boardWith(map[Cell]uint8{{Row: 0, Col: 0}: 5})
	cp := b.Clone()
	cp.Assign(Cell{Row: 1, Col: 1}, 8)
	assert.Equal(t, uint8(0), b.Value(Cell{Row: 1, Col: 1}))
	assert.Equal(t, uint8(8), cp.Value(Cell{Row: 1, Col: 1}))
}
