package engine

import "svw.info/sudokulogic/internal/domain"

// intersections applies both directions of row/column x box
// intersection geometry. Pointing: when every candidate for a digit in
// a row or column sits inside one box, the digit cannot appear
// elsewhere in that box. Box-line: when every candidate for a digit in
// a box sits on one row or column, the digit cannot appear elsewhere on
// that line.
func (e *Engine) intersections() bool {
	changed := false
	if e.pointing() {
		changed = true
	}
	if e.boxLine() {
		changed = true
	}
	return changed
}

func (e *Engine) pointing() bool {
	changed := false
	for _, u := range domain.Lines() {
		for d := uint8(1); d <= 9; d++ {
			cells := e.cellsWith(&u, d)
			if len(cells) == 0 {
				continue
			}
			box := domain.BoxIndex(cells[0])
			confined := true
			for _, c := range cells[1:] {
				if domain.BoxIndex(c) != box {
					confined = false
					break
				}
			}
			if !confined {
				continue
			}
			rm := domain.SetOf(d)
			for _, c := range domain.Units[18+box].Cells {
				if u.Contains(c) {
					continue
				}
				if e.narrow(c, rm) {
					changed = true
				}
			}
		}
	}
	return changed
}

func (e *Engine) boxLine() bool {
	changed := false
	for _, u := range domain.Boxes() {
		for d := uint8(1); d <= 9; d++ {
			cells := e.cellsWith(&u, d)
			if len(cells) == 0 {
				continue
			}
			sameRow, sameCol := true, true
			for _, c := range cells[1:] {
				if c.Row != cells[0].Row {
					sameRow = false
				}
				if c.Col != cells[0].Col {
					sameCol = false
				}
			}
			rm := domain.SetOf(d)
			if sameRow {
				for _, c := range domain.Units[cells[0].Row].Cells {
					if domain.BoxIndex(c) == u.Index {
						continue
					}
					if e.narrow(c, rm) {
						changed = true
					}
				}
			}
			if sameCol {
				for _, c := range domain.Units[9+cells[0].Col].Cells {
					if domain.BoxIndex(c) == u.Index {
						continue
					}
					if e.narrow(c, rm) {
						changed = true
					}
				}
			}
		}
	}
	return changed
}

// cellsWith lists the unassigned cells of u holding d as a candidate.
func (e *Engine) cellsWith(u *domain.Unit, d uint8) []domain.Cell {
	var out []domain.Cell
	for _, c := range u.Cells {
		if s, ok := e.candidates(c); ok && s.Has(d) {
			out = append(out, c)
		}
	}
	return out
}
