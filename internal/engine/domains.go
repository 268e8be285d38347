package engine

import (
	"github.com/rs/zerolog/log"

	"svw.info/sudokulogic/internal/domain"
)

// initialize builds the domain map from scratch: every unassigned cell
// starts with {1..9} minus the digits already assigned in its row,
// column, or box. This runs exactly once per solve; all later mutation
// goes through narrow, restrict, or assign.
func (e *Engine) initialize() {
	e.domains = make(map[domain.Cell]domain.CandidateSet, 81)
	for _, c := range e.board.Unassigned() {
		s := domain.AllDigits
		for _, u := range domain.UnitsOf(c) {
			for _, peer := range u.Cells {
				if d := e.board.Value(peer); d != 0 {
					s.Remove(d)
				}
			}
		}
		e.domains[c] = s
	}
}

// assign writes d to the board, drops the cell's domain entry, and
// narrows every peer before any rule continues. All board mutation in
// the engine funnels through here.
func (e *Engine) assign(c domain.Cell, d uint8) {
	e.board.Assign(c, d)
	delete(e.domains, c)
	e.stats.Assignments++
	rm := domain.SetOf(d)
	for _, u := range domain.UnitsOf(c) {
		for _, peer := range u.Cells {
			e.narrow(peer, rm)
		}
	}
	log.Debug().Int("row", c.Row).Int("col", c.Col).Uint8("digit", d).Msg("assign")
}

// narrow removes the digits of rm from the cell's candidate set,
// reporting whether the set actually shrank. Cells without a domain
// entry (assigned cells) are ignored.
func (e *Engine) narrow(c domain.Cell, rm domain.CandidateSet) bool {
	s, ok := e.domains[c]
	if !ok {
		return false
	}
	before := s.Count()
	if !s.RemoveAll(rm) {
		return false
	}
	e.domains[c] = s
	e.stats.Eliminations += before - s.Count()
	return true
}

// restrict intersects the cell's candidate set with keep, reporting
// whether the set actually shrank.
func (e *Engine) restrict(c domain.Cell, keep domain.CandidateSet) bool {
	s, ok := e.domains[c]
	if !ok {
		return false
	}
	before := s.Count()
	if !s.KeepOnly(keep) {
		return false
	}
	e.domains[c] = s
	e.stats.Eliminations += before - s.Count()
	return true
}

// candidates returns the cell's current candidate set and whether the
// cell is still unassigned.
func (e *Engine) candidates(c domain.Cell) (domain.CandidateSet, bool) {
	s, ok := e.domains[c]
	return s, ok
}
