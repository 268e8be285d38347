package domain

// UnitKind distinguishes the three unit families.
type UnitKind int

const (
	RowUnit UnitKind = iota
	ColUnit
	BoxUnit
)

func (k UnitKind) String() string {
	switch k {
	case RowUnit:
		return "row"
	case ColUnit:
		return "col"
	case BoxUnit:
		return "box"
	}
	return "unit"
}

// Unit is one of the 27 fixed 9-cell groups in which each digit may
// appear at most once. Units are immutable and shared.
type Unit struct {
	Kind  UnitKind
	Index int
	Cells [9]Cell
}

// Contains reports whether c is one of the unit's cells.
func (u *Unit) Contains(c Cell) bool {
	for _, uc := range u.Cells {
		if uc == c {
			return true
		}
	}
	return false
}

// Units holds all 27 units: rows 0-8, then columns 9-17, then boxes 18-26.
var Units = buildUnits()

func buildUnits() [27]Unit {
	var us [27]Unit
	for i := 0; i < 9; i++ {
		row := Unit{Kind: RowUnit, Index: i}
		col := Unit{Kind: ColUnit, Index: i}
		for j := 0; j < 9; j++ {
			row.Cells[j] = Cell{Row: i, Col: j}
			col.Cells[j] = Cell{Row: j, Col: i}
		}
		us[i] = row
		us[9+i] = col

		box := Unit{Kind: BoxUnit, Index: i}
		br, bc := (i/3)*3, (i%3)*3
		for j := 0; j < 9; j++ {
			box.Cells[j] = Cell{Row: br + j/3, Col: bc + j%3}
		}
		us[18+i] = box
	}
	return us
}

// BoxIndex returns the index 0-8 of the box containing c.
func BoxIndex(c Cell) int {
	return (c.Row/3)*3 + c.Col/3
}

// UnitsOf returns the row, column, and box units containing c.
func UnitsOf(c Cell) [3]*Unit {
	return [3]*Unit{
		&Units[c.Row],
		&Units[9+c.Col],
		&Units[18+BoxIndex(c)],
	}
}

// Rows returns the nine row units.
func Rows() []Unit { return Units[0:9] }

// Cols returns the nine column units.
func Cols() []Unit { return Units[9:18] }

// Boxes returns the nine box units.
func Boxes() []Unit { return Units[18:27] }

// Lines returns the eighteen row and column units.
func Lines() []Unit { return Units[0:18] }
