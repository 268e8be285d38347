package gridio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokulogic/internal/domain"
)

const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

const classicDots = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

const classicCSV = `5,3,0,0,7,0,0,0,0
6,0,0,1,9,5,0,0,0
0,9,8,0,0,0,0,6,0
8,0,0,0,6,0,0,0,3
4,0,0,8,0,3,0,0,1
7,0,0,0,2,0,0,0,6
0,6,0,0,0,0,2,8,0
0,0,0,4,1,9,0,0,5
0,0,0,0,8,0,0,7,9
`

func TestReadCSV(t *testing.T) {
	b, err := Read(strings.NewReader(classicCSV))
	require.NoError(t, err)
	assert.Equal(t, classicDots, Flatten(b.Grid()))
	assert.True(t, b.Given(domain.Cell{Row: 0, Col: 0}))
	assert.False(t, b.Given(domain.Cell{Row: 0, Col: 2}))
}

func TestReadAcceptsBlankFields(t *testing.T) {
	csv := strings.Replace(classicCSV, "5,3,0", "5,3,", 1)
	b, err := Read(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), b.Value(domain.Cell{Row: 0, Col: 2}))
}

func TestReadRejectsWrongShape(t *testing.T) {
	short := strings.Join(strings.Split(classicCSV, "\n")[:5], "\n")
	_, err := Read(strings.NewReader(short))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGrid)

	_, err = Read(strings.NewReader(classicCSV + "1,2,3,4,5,6,7,8,9\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGrid)

	_, err = Read(strings.NewReader("1,2,3\n"))
	require.Error(t, err)
}

func TestReadRejectsBadValues(t *testing.T) {
	for _, bad := range []string{"x", "12", "-1"} {
		csv := strings.Replace(classicCSV, "5,3,0", "5,3,"+bad, 1)
		_, err := Read(strings.NewReader(csv))
		assert.ErrorIs(t, err, ErrBadGrid, "value %q", bad)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte(classicCSV), 0o644))
	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, classicDots, Flatten(b.Grid()))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	b, err := Parse(classic)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), b.Value(domain.Cell{Row: 0, Col: 0}))
	assert.Equal(t, uint8(0), b.Value(domain.Cell{Row: 0, Col: 2}))

	b2, err := Parse(classicDots)
	require.NoError(t, err)
	assert.Equal(t, b.Grid(), b2.Grid())
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse("123")
	assert.ErrorIs(t, err, ErrBadGrid)

	bad := classic[:40] + "x" + classic[41:]
	_, err = Parse(bad)
	assert.ErrorIs(t, err, ErrBadGrid)
}

func TestFlattenUnflattenRoundTrip(t *testing.T) {
	g, err := Unflatten(classic)
	require.NoError(t, err)
	assert.Equal(t, classicDots, Flatten(g))

	g2, err := Unflatten(classicDots)
	require.NoError(t, err)
	assert.Equal(t, g, g2)
}
