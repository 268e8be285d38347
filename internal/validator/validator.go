package validator

import (
	"context"

	"svw.info/sudokulogic/internal/domain"
)

// UnitScan checks every one of the 27 units for repeated digits and
// reports the offending cells. It trusts nothing about how the board
// was produced.
type UnitScan struct{}

func New() *UnitScan { return &UnitScan{} }

func (v *UnitScan) Validate(ctx context.Context, b *domain.Board) (bool, []domain.Cell, error) {
	conf := make([]domain.Cell, 0, 8)
	for i := range domain.Units {
		var seen domain.CandidateSet
		for _, c := range domain.Units[i].Cells {
			d := b.Value(c)
			if d == 0 {
				continue
			}
			if seen.Has(d) {
				conf = append(conf, c)
				continue
			}
			seen |= domain.SetOf(d)
		}
	}
	return len(conf) == 0, conf, nil
}
