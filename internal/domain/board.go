package domain

// Cell identifies one grid position. Row and Col are in [0,9).
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board holds the 9x9 grid of assigned digits (0 = unassigned) and
// remembers which cells were given in the initial puzzle. It is a dumb
// store: Assign performs no conflict checking, that is the propagation
// engine's job.
type Board struct {
	values [9][9]uint8
	given  [9][9]bool
}

// NewBoard builds a Board from a value grid, marking every nonzero
// cell as a given.
func NewBoard(values [9][9]uint8) *Board {
	b := &Board{values: values}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.given[r][c] = values[r][c] != 0
		}
	}
	return b
}

// Value returns the digit at c, 0 if unassigned.
func (b *Board) Value(c Cell) uint8 {
	return b.values[c.Row][c.Col]
}

// Assign sets the digit at c. The digit must be in 1..9.
func (b *Board) Assign(c Cell, d uint8) {
	if d < 1 || d > 9 {
		panic("board: digit out of range")
	}
	b.values[c.Row][c.Col] = d
}

// Given reports whether c was part of the initial puzzle.
func (b *Board) Given(c Cell) bool {
	return b.given[c.Row][c.Col]
}

// Unassigned returns all cells with value 0, in row-major order.
func (b *Board) Unassigned() []Cell {
	out := make([]Cell, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.values[r][c] == 0 {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}
	return out
}

// IsComplete reports whether every cell is assigned.
func (b *Board) IsComplete() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// IsConsistent reports whether no unit contains a repeated digit. It
// scans all 27 units directly so it can detect an invalid board no
// matter how it was produced.
func (b *Board) IsConsistent() bool {
	for i := range Units {
		var seen CandidateSet
		for _, c := range Units[i].Cells {
			d := b.values[c.Row][c.Col]
			if d == 0 {
				continue
			}
			if seen.Has(d) {
				return false
			}
			seen |= SetOf(d)
		}
	}
	return true
}

// Grid returns a copy of the current value grid.
func (b *Board) Grid() [9][9]uint8 {
	return b.values
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}
