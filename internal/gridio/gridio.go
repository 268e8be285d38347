// Package gridio reads and writes 9x9 grids as text. The primary
// format is comma-delimited: nine rows of nine integer fields, with 0
// or an empty field for a blank cell. An 81-character single-line
// format ('.' or '0' for blanks) is also accepted.
package gridio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"svw.info/sudokulogic/internal/domain"
)

// ErrBadGrid wraps every malformed-input error from this package.
var ErrBadGrid = errors.New("malformed grid")

// Read parses a comma-delimited grid from r into a Board.
func Read(r io.Reader) (*domain.Board, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 9
	cr.TrimLeadingSpace = true

	var values [9][9]uint8
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadGrid, err)
		}
		if row >= 9 {
			return nil, fmt.Errorf("%w: more than 9 rows", ErrBadGrid)
		}
		for col, field := range rec {
			d, err := parseField(field)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrBadGrid, row, col, err)
			}
			values[row][col] = d
		}
		row++
	}
	if row != 9 {
		return nil, fmt.Errorf("%w: got %d rows, want 9", ErrBadGrid, row)
	}
	return domain.NewBoard(values), nil
}

func parseField(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" || s == "." {
		return 0, nil
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return s[0] - '0', nil
	}
	return 0, fmt.Errorf("invalid value %q", s)
}

// Load reads a comma-delimited grid file.
func Load(path string) (*domain.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Parse builds a Board from an 81-character string, row-major, with
// '.' or '0' for blank cells.
func Parse(s string) (*domain.Board, error) {
	s = strings.TrimSpace(s)
	if len(s) != 81 {
		return nil, fmt.Errorf("%w: got %d characters, want 81", ErrBadGrid, len(s))
	}
	var values [9][9]uint8
	for i := 0; i < 81; i++ {
		ch := s[i]
		switch {
		case ch == '.' || ch == '0':
		case ch >= '1' && ch <= '9':
			values[i/9][i%9] = ch - '0'
		default:
			return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrBadGrid, ch, i)
		}
	}
	return domain.NewBoard(values), nil
}

// Flatten serializes a value grid to the 81-character format.
func Flatten(values [9][9]uint8) string {
	var b strings.Builder
	b.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if values[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + values[r][c])
			}
		}
	}
	return b.String()
}

// Unflatten is the inverse of Flatten.
func Unflatten(s string) ([9][9]uint8, error) {
	b, err := Parse(s)
	if err != nil {
		return [9][9]uint8{}, err
	}
	return b.Grid(), nil
}
