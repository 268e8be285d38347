package engine

import "svw.info/sudokulogic/internal/domain"

// nakedSingles assigns every cell whose candidate set has exactly one
// member. Cells are scanned in row-major order; each assignment narrows
// peers immediately, so later cells in the same pass see the effect.
func (e *Engine) nakedSingles() bool {
	changed := false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := domain.Cell{Row: r, Col: c}
			s, ok := e.candidates(cell)
			if !ok {
				continue
			}
			if d, one := s.Sole(); one {
				e.assign(cell, d)
				changed = true
			}
		}
	}
	return changed
}

// hiddenSingles assigns, per unit, any digit that has exactly one cell
// left to go to, even if that cell still has other candidates.
func (e *Engine) hiddenSingles() bool {
	changed := false
	for i := range domain.Units {
		u := &domain.Units[i]
		for d := uint8(1); d <= 9; d++ {
			var only domain.Cell
			n := 0
			for _, c := range u.Cells {
				if s, ok := e.candidates(c); ok && s.Has(d) {
					only = c
					n++
					if n > 1 {
						break
					}
				}
			}
			if n == 1 {
				e.assign(only, d)
				changed = true
			}
		}
	}
	return changed
}

// singles runs one pass of both forced-value rules.
func (e *Engine) singles() bool {
	naked := e.nakedSingles()
	hidden := e.hiddenSingles()
	return naked || hidden
}
