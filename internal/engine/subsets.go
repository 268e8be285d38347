package engine

import (
	"gonum.org/v1/gonum/stat/combin"

	"svw.info/sudokulogic/internal/domain"
)

// nakedSubsets finds, in each unit, n cells whose candidate sets
// collectively span exactly n digits, then removes those digits from
// every other cell of the unit. Only cells with 2..n candidates can
// participate; a group whose union exceeds n digits does not qualify.
func (e *Engine) nakedSubsets(n int) bool {
	changed := false
	for i := range domain.Units {
		u := &domain.Units[i]
		var members []domain.Cell
		for _, c := range u.Cells {
			if s, ok := e.candidates(c); ok && s.Count() >= 2 && s.Count() <= n {
				members = append(members, c)
			}
		}
		if len(members) < n {
			continue
		}
		for _, combo := range combin.Combinations(len(members), n) {
			var union domain.CandidateSet
			for _, idx := range combo {
				s, _ := e.candidates(members[idx])
				union = union.Union(s)
			}
			if union.Count() != n {
				continue
			}
			inGroup := func(c domain.Cell) bool {
				for _, idx := range combo {
					if members[idx] == c {
						return true
					}
				}
				return false
			}
			for _, c := range u.Cells {
				if inGroup(c) {
					continue
				}
				if e.narrow(c, union) {
					changed = true
				}
			}
		}
	}
	return changed
}

// hiddenSubsets finds, in each unit, n digits confined to exactly n
// cells, then restricts those cells to exactly those digits. The union
// check guards against combinations where some digit of the group does
// not occur among the n cells at all.
func (e *Engine) hiddenSubsets(n int) bool {
	changed := false
	digitCombos := combin.Combinations(9, n)
	for i := range domain.Units {
		u := &domain.Units[i]
		var blanks []domain.Cell
		for _, c := range u.Cells {
			if _, ok := e.candidates(c); ok {
				blanks = append(blanks, c)
			}
		}
		if len(blanks) < n {
			continue
		}
		for _, combo := range digitCombos {
			var group domain.CandidateSet
			for _, idx := range combo {
				group |= domain.SetOf(uint8(idx + 1))
			}
			var holders []domain.Cell
			for _, c := range blanks {
				if s, _ := e.candidates(c); s&group != 0 {
					holders = append(holders, c)
				}
			}
			if len(holders) != n {
				continue
			}
			var covered domain.CandidateSet
			for _, c := range holders {
				s, _ := e.candidates(c)
				covered |= s & group
			}
			if covered.Count() != n {
				continue
			}
			for _, c := range holders {
				if e.restrict(c, group) {
					changed = true
				}
			}
		}
	}
	return changed
}
