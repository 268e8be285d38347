package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryUnitHasNineDistinctCells(t *testing.T) {
	for i := range Units {
		seen := map[Cell]bool{}
		for _, c := range Units[i].Cells {
			assert.False(t, seen[c], "unit %d repeats cell %v", i, c)
			seen[c] = true
			assert.GreaterOrEqual(t, c.Row, 0)
			assert.Less(t, c.Row, 9)
			assert.GreaterOrEqual(t, c.Col, 0)
			assert.Less(t, c.Col, 9)
		}
	}
}

func TestEveryCellBelongsToThreeUnits(t *testing.T) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := Cell{Row: r, Col: c}
			n := 0
			for i := range Units {
				if Units[i].Contains(cell) {
					n++
				}
			}
			assert.Equal(t, 3, n, "cell %v", cell)
		}
	}
}

func TestUnitsOf(t *testing.T) {
	cell := Cell{Row: 4, Col: 7}
	us := UnitsOf(cell)
	assert.Equal(t, RowUnit, us[0].Kind)
	assert.Equal(t, 4, us[0].Index)
	assert.Equal(t, ColUnit, us[1].Kind)
	assert.Equal(t, 7, us[1].Index)
	assert.Equal(t, BoxUnit, us[2].Kind)
	assert.Equal(t, 5, us[2].Index)
	for _, u := range us {
		assert.True(t, u.Contains(cell))
	}
}

func TestBoxIndex(t *testing.T) {
	assert.Equal(t, 0, BoxIndex(Cell{Row: 0, Col: 0}))
	assert.Equal(t, 2, BoxIndex(Cell{Row: 1, Col: 8}))
	assert.Equal(t, 4, BoxIndex(Cell{Row: 4, Col: 4}))
	assert.Equal(t, 8, BoxIndex(Cell{Row: 8, Col: 8}))
}

func TestUnitSlices(t *testing.T) {
	assert.Len(t, Rows(), 9)
	assert.Len(t, Cols(), 9)
	assert.Len(t, Boxes(), 9)
	assert.Len(t, Lines(), 18)
	for _, u := range Lines() {
		assert.NotEqual(t, BoxUnit, u.Kind)
	}
}
