package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokulogic/internal/domain"
	"svw.info/sudokulogic/internal/gridio"
)

func TestValidBoardHasNoConflicts(t *testing.T) {
	b, err := gridio.Parse("534678912672195348198342567859761423426853791713924856961537284287419635345286179")
	require.NoError(t, err)

	ok, conf, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestBlankBoardIsValid(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), domain.NewBoard([9][9]uint8{}))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestRowConflictReported(t *testing.T) {
	var values [9][9]uint8
	values[4][1] = 6
	values[4][7] = 6

	ok, conf, err := New().Validate(context.Background(), domain.NewBoard(values))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.Cell{Row: 4, Col: 7})
}

func TestConflictsAcrossUnitKinds(t *testing.T) {
	var values [9][9]uint8
	values[0][3] = 2 // row 0 pair
	values[0][8] = 2
	values[2][5] = 7 // column 5 pair
	values[8][5] = 7
	values[6][0] = 9 // box 6 pair
	values[7][1] = 9

	ok, conf, err := New().Validate(context.Background(), domain.NewBoard(values))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.Cell{Row: 0, Col: 8})
	assert.Contains(t, conf, domain.Cell{Row: 8, Col: 5})
	assert.Contains(t, conf, domain.Cell{Row: 7, Col: 1})
}
